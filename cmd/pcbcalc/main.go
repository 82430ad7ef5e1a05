// cmd/pcbcalc/main.go
package main

import (
	"os"

	"pcbcalc/cmd/pcbcalc/cmd"
)

func main() {
	os.Exit(cmd.Run(os.Args[1:], os.Stdout, os.Stderr))
}
