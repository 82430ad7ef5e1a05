// cmd/pcbcalc/cmd/report.go
package cmd

import (
	"github.com/spf13/cobra"

	"pcbcalc-core/advise"

	"pcbcalc/internal/design"
	"pcbcalc/internal/output"
	"pcbcalc/internal/report"
)

func newReportCmd(g *globals) *cobra.Command {
	var designPath string
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Compute every block of a design file and render the combined report",
		Long: `Reads a JSON design document, runs each block it names through the
engine and renders the combined report: framed text blocks plus the
advisory summary, or one JSON document with --output json.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := design.Load(designPath)
			if err != nil {
				return err
			}
			s := advise.NewState()
			if err := design.Compute(d, s); err != nil {
				return err
			}
			if g.output == output.FormatJSON {
				return markWrite(output.WriteReport(cmd.OutOrStdout(), g.output, output.BuildReport(s)))
			}
			return markWrite(report.Write(cmd.OutOrStdout(), s))
		},
	}
	cmd.Flags().StringVarP(&designPath, "design", "d", "-", `design file (JSON); "-" reads stdin`)
	return cmd
}
