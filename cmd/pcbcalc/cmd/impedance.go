// cmd/pcbcalc/cmd/impedance.go
package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"pcbcalc-core/advise"
	"pcbcalc-core/pcb"
	"pcbcalc-core/units"

	"pcbcalc/internal/output"
)

// fr4Er is the default substrate when neither --er nor --material is set.
const fr4Er = 4.4

func newImpedanceCmd(g *globals) *cobra.Command {
	var (
		width    = "0.25mm"
		height   = "0.18mm"
		copper   = "0.035mm"
		erSpec   string
		material string
		sweep    string
	)
	cmd := &cobra.Command{
		Use:   "impedance",
		Short: "Microstrip impedance (Hammerstad/Jensen)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var in pcb.MicrostripInput
			var err error
			if in.WidthMM, err = units.LengthMM(width); err != nil {
				return fmt.Errorf("bad --width %q: %w", width, err)
			}
			if in.HeightMM, err = units.LengthMM(height); err != nil {
				return fmt.Errorf("bad --height %q: %w", height, err)
			}
			if in.CopperMM, err = units.LengthMM(copper); err != nil {
				return fmt.Errorf("bad --copper %q: %w", copper, err)
			}
			switch {
			case erSpec != "" && material != "":
				return fmt.Errorf("set --er or --material, not both")
			case erSpec != "":
				if in.Er, err = strconv.ParseFloat(erSpec, 64); err != nil {
					return fmt.Errorf("bad --er %q: %w", erSpec, err)
				}
			case material != "":
				m, err := pcb.MaterialByName(material)
				if err != nil {
					return err
				}
				in.Er = m.Er
			default:
				in.Er = fr4Er
			}

			if sweep != "" {
				from, to, n, err := splitSweep(sweep, units.LengthMM)
				if err != nil {
					return err
				}
				points, err := pcb.ImpedanceSweep(in, from, to, n)
				if err != nil {
					return err
				}
				return markWrite(output.WriteSweep(cmd.OutOrStdout(), g.output, output.Sweep{
					XLabel: "width_mm",
					YLabel: "impedance_ohm",
					Points: points,
				}))
			}

			res, err := pcb.MicrostripImpedance(in)
			if err != nil {
				return err
			}
			if err := output.WriteImpedance(cmd.OutOrStdout(), g.output, res); err != nil {
				return markWrite(err)
			}
			s := advise.NewState()
			s.SetImpedance(res)
			printAdvice(cmd.ErrOrStderr(), g.quiet, s)
			return nil
		},
	}
	cmd.Flags().StringVar(&width, "width", width, "trace width (0.25mm, 10mil)")
	cmd.Flags().StringVar(&height, "height", height, "dielectric height (0.18mm)")
	cmd.Flags().StringVar(&copper, "copper", copper, "copper thickness (0.035mm, 1.4mil)")
	cmd.Flags().StringVar(&erSpec, "er", "", "relative permittivity (defaults to FR-4's 4.4)")
	cmd.Flags().StringVar(&material, "material", "", `laminate preset, see "pcbcalc materials"`)
	cmd.Flags().StringVar(&sweep, "sweep", "", "sweep width as from:to:points (0.04mm:0.80mm:39)")
	return cmd
}
