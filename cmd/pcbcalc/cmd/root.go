// cmd/pcbcalc/cmd/root.go
package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"pcbcalc/internal/output"
	"pcbcalc/internal/version"
)

// globals are the persistent flags shared by every subcommand.
type globals struct {
	output string
	quiet  bool
}

// writeError marks failures on the output path so Run can tell a broken
// write (exit 3) from a bad input (exit 2).
type writeError struct{ err error }

func (e *writeError) Error() string { return e.err.Error() }
func (e *writeError) Unwrap() error { return e.err }

func markWrite(err error) error {
	if err == nil {
		return nil
	}
	return &writeError{err: err}
}

func newRootCmd() *cobra.Command {
	g := &globals{}
	root := &cobra.Command{
		Use:   "pcbcalc",
		Short: "PCB design parameter calculator",
		Long: `Sizing and compliance calculations for board layout: IPC-2152 trace
widths, plated via ampacity, microstrip impedance, voltage drop and
IPC-2221B clearance, with advisory cross-checks between them.

Examples:
  pcbcalc trace --current 2.5A --copper 2oz --temp-rise 10C
  pcbcalc via --current 2A --thickness 1.6mm --count 2
  pcbcalc impedance --width 0.25mm --material "Rogers 4350B"
  pcbcalc trace --sweep 0.2A:5A:25 --output json
  pcbcalc report --design board.json --output json`,
		Version:       version.String(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if g.output != output.FormatText && g.output != output.FormatJSON {
				return fmt.Errorf("unknown output format %q (want text or json)", g.output)
			}
			return nil
		},
	}
	root.PersistentFlags().StringVarP(&g.output, "output", "o", output.FormatText, "output format: text or json")
	root.PersistentFlags().BoolVarP(&g.quiet, "quiet", "q", false, "suppress advisory lines on stderr")

	root.AddCommand(
		newTraceCmd(g),
		newViaCmd(g),
		newImpedanceCmd(g),
		newVdropCmd(g),
		newClearanceCmd(g),
		newMaterialsCmd(g),
		newReportCmd(g),
	)
	return root
}

// Run executes the CLI. Exit codes: 0 ok, 2 bad input, 3 write failure.
func Run(argv []string, stdout, stderr io.Writer) int {
	root := newRootCmd()
	root.SetArgs(argv)
	root.SetOut(stdout)
	root.SetErr(stderr)
	if err := root.Execute(); err != nil {
		if output.IsBrokenPipe(err) {
			return 0
		}
		_, _ = fmt.Fprintln(stderr, err)
		var we *writeError
		if errors.As(err, &we) {
			return 3
		}
		return 2
	}
	return 0
}
