// cmd/pcbcalc/cmd/via.go
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"pcbcalc-core/advise"
	"pcbcalc-core/pcb"
	"pcbcalc-core/units"

	"pcbcalc/internal/output"
)

func newViaCmd(g *globals) *cobra.Command {
	var (
		current   = "1A"
		thickness = "1.6mm"
		plating   = "25um"
		tempRise  = "20C"
		count     = 1
		sweep     bool
	)
	cmd := &cobra.Command{
		Use:   "via",
		Short: "Evaluate standard via sizes against a load",
		Long: `Evaluates every standard drill size against the load and prints the
candidate table. Capacity is per via; compliance accounts for --count
parallel vias and the 10:1 plating aspect limit.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			q := pcb.ViaQuery{Count: count}
			var err error
			if q.CurrentA, err = units.Current(current); err != nil {
				return fmt.Errorf("bad --current %q: %w", current, err)
			}
			if q.ThicknessMM, err = units.LengthMM(thickness); err != nil {
				return fmt.Errorf("bad --thickness %q: %w", thickness, err)
			}
			if q.PlatingUM, err = units.CopperUM(plating); err != nil {
				return fmt.Errorf("bad --plating %q: %w", plating, err)
			}
			if q.TempRiseC, err = units.TempRiseC(tempRise); err != nil {
				return fmt.Errorf("bad --temp-rise %q: %w", tempRise, err)
			}

			if sweep {
				points, err := pcb.ViaAmpacitySweep(q)
				if err != nil {
					return err
				}
				return markWrite(output.WriteSweep(cmd.OutOrStdout(), g.output, output.Sweep{
					XLabel: "diameter_mm",
					YLabel: "capacity_a",
					Points: points,
				}))
			}

			cands, err := pcb.RecommendVias(q)
			if err != nil {
				return err
			}
			if err := output.WriteVias(cmd.OutOrStdout(), g.output, cands); err != nil {
				return markWrite(err)
			}
			s := advise.NewState()
			s.SetVias(cands)
			printAdvice(cmd.ErrOrStderr(), g.quiet, s)
			return nil
		},
	}
	cmd.Flags().StringVar(&current, "current", current, "total current across the via group (1A, 500mA)")
	cmd.Flags().StringVar(&thickness, "thickness", thickness, "board thickness (1.6mm, 63mil)")
	cmd.Flags().StringVar(&plating, "plating", plating, "barrel plating thickness (25um, 1oz)")
	cmd.Flags().StringVar(&tempRise, "temp-rise", tempRise, "allowed temperature rise (20C)")
	cmd.Flags().IntVar(&count, "count", count, "parallel vias sharing the load")
	cmd.Flags().BoolVar(&sweep, "sweep", false, "print group capacity per drill size instead of the table")
	return cmd
}
