// cmd/pcbcalc/cmd/materials.go
package cmd

import (
	"github.com/spf13/cobra"

	"pcbcalc-core/pcb"

	"pcbcalc/internal/output"
)

func newMaterialsCmd(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:   "materials",
		Short: "List the built-in laminate presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return markWrite(output.WriteMaterials(cmd.OutOrStdout(), g.output, pcb.Materials()))
		},
	}
}
