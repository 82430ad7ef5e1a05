// cmd/pcbcalc/cmd/clearance.go
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"pcbcalc-core/advise"
	"pcbcalc-core/pcb"
	"pcbcalc-core/units"

	"pcbcalc/internal/cmdutil"
	"pcbcalc/internal/output"
)

func newClearanceCmd(g *globals) *cobra.Command {
	var (
		voltage  = "60V"
		location = string(pcb.LocationExternalUncoated)
	)
	cmd := &cobra.Command{
		Use:   "clearance",
		Short: "Minimum conductor spacing at a working voltage (IPC-2221B)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			q := pcb.ClearanceQuery{Location: pcb.LocationClass(location)}
			var err error
			if q.VoltageV, err = units.Voltage(voltage); err != nil {
				return fmt.Errorf("bad --voltage %q: %w", voltage, err)
			}

			res, err := pcb.MinClearance(q)
			if err != nil {
				return err
			}
			if q.VoltageV > pcb.ClearanceTableMaxV {
				cmdutil.Warnf(cmd.ErrOrStderr(), g.quiet,
					"%.0fV is beyond the IPC-2221B table; using the %.1f mm fallback", q.VoltageV, res.ClearanceMM)
			}
			if err := output.WriteClearance(cmd.OutOrStdout(), g.output, res); err != nil {
				return markWrite(err)
			}
			s := advise.NewState()
			s.SetClearance(res)
			printAdvice(cmd.ErrOrStderr(), g.quiet, s)
			return nil
		},
	}
	cmd.Flags().StringVar(&voltage, "voltage", voltage, "working voltage (60V, 2kV)")
	cmd.Flags().StringVar(&location, "location", location, "internal, external_uncoated or external_coated")
	return cmd
}
