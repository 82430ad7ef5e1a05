// cmd/pcbcalc/cmd/trace.go
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"pcbcalc-core/advise"
	"pcbcalc-core/pcb"
	"pcbcalc-core/units"

	"pcbcalc/internal/output"
)

func newTraceCmd(g *globals) *cobra.Command {
	var (
		current  = "1A"
		copper   = "35um"
		tempRise = "20C"
		layer    = "external"
		sweep    string
	)
	cmd := &cobra.Command{
		Use:   "trace",
		Short: "Size a trace for a current budget (IPC-2152)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var in pcb.TraceInput
			var err error
			if in.CurrentA, err = units.Current(current); err != nil {
				return fmt.Errorf("bad --current %q: %w", current, err)
			}
			if in.CopperUM, err = units.CopperUM(copper); err != nil {
				return fmt.Errorf("bad --copper %q: %w", copper, err)
			}
			if in.TempRiseC, err = units.TempRiseC(tempRise); err != nil {
				return fmt.Errorf("bad --temp-rise %q: %w", tempRise, err)
			}
			switch layer {
			case "external":
				in.External = true
			case "internal":
				in.External = false
			default:
				return fmt.Errorf("unknown layer %q (want external or internal)", layer)
			}

			if sweep != "" {
				from, to, n, err := splitSweep(sweep, units.Current)
				if err != nil {
					return err
				}
				points, err := pcb.TraceWidthSweep(in, from, to, n)
				if err != nil {
					return err
				}
				return markWrite(output.WriteSweep(cmd.OutOrStdout(), g.output, output.Sweep{
					XLabel: "current_a",
					YLabel: "width_mm",
					Points: points,
				}))
			}

			res, err := pcb.TraceWidth(in)
			if err != nil {
				return err
			}
			if err := output.WriteTrace(cmd.OutOrStdout(), g.output, res); err != nil {
				return markWrite(err)
			}
			s := advise.NewState()
			s.SetTrace(res)
			printAdvice(cmd.ErrOrStderr(), g.quiet, s)
			return nil
		},
	}
	cmd.Flags().StringVar(&current, "current", current, "load current (1A, 500mA)")
	cmd.Flags().StringVar(&copper, "copper", copper, "copper thickness (35um, 1oz, 1.4mil)")
	cmd.Flags().StringVar(&tempRise, "temp-rise", tempRise, "allowed temperature rise (20C, 10K)")
	cmd.Flags().StringVar(&layer, "layer", layer, "trace layer: external or internal")
	cmd.Flags().StringVar(&sweep, "sweep", "", "sweep current as from:to:points (0.2A:5A:25)")
	return cmd
}
