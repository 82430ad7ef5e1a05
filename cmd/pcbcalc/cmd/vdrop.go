// cmd/pcbcalc/cmd/vdrop.go
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"pcbcalc-core/advise"
	"pcbcalc-core/pcb"
	"pcbcalc-core/units"

	"pcbcalc/internal/output"
)

func newVdropCmd(g *globals) *cobra.Command {
	var (
		width   = "0.5mm"
		copper  = "35um"
		length  = "50mm"
		current = "2A"
	)
	cmd := &cobra.Command{
		Use:   "vdrop",
		Short: "DC resistance, voltage drop and power loss of a trace",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var in pcb.VoltageDropInput
			var err error
			if in.WidthMM, err = units.LengthMM(width); err != nil {
				return fmt.Errorf("bad --width %q: %w", width, err)
			}
			if in.CopperUM, err = units.CopperUM(copper); err != nil {
				return fmt.Errorf("bad --copper %q: %w", copper, err)
			}
			if in.LengthMM, err = units.LengthMM(length); err != nil {
				return fmt.Errorf("bad --length %q: %w", length, err)
			}
			if in.CurrentA, err = units.Current(current); err != nil {
				return fmt.Errorf("bad --current %q: %w", current, err)
			}

			res, err := pcb.VoltageDrop(in)
			if err != nil {
				return err
			}
			if err := output.WriteVdrop(cmd.OutOrStdout(), g.output, res); err != nil {
				return markWrite(err)
			}
			s := advise.NewState()
			s.SetVoltageDrop(res)
			printAdvice(cmd.ErrOrStderr(), g.quiet, s)
			return nil
		},
	}
	cmd.Flags().StringVar(&width, "width", width, "trace width (0.5mm, 20mil)")
	cmd.Flags().StringVar(&copper, "copper", copper, "copper thickness (35um, 1oz)")
	cmd.Flags().StringVar(&length, "length", length, "trace length (50mm, 5cm)")
	cmd.Flags().StringVar(&current, "current", current, "load current (2A, 500mA)")
	return cmd
}
