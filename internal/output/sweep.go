// internal/output/sweep.go
package output

import (
	"fmt"
	"io"

	"pcbcalc-core/pcb"

	"pcbcalc/internal/jsonutil"
	"pcbcalc/pkg/api"
)

// Sweep pairs a sampled curve with its axis labels.
type Sweep struct {
	XLabel string
	YLabel string
	Points []pcb.SweepPoint
}

// writeSweepText prints a TSV curve with a labeled header row.
func writeSweepText(w io.Writer, s Sweep) error {
	if _, err := fmt.Fprintf(w, "%s\t%s\n", s.XLabel, s.YLabel); err != nil {
		return err
	}
	for _, p := range s.Points {
		if _, err := fmt.Fprintf(w, "%g\t%g\n", p.X, p.Y); err != nil {
			return err
		}
	}
	return nil
}

func writeSweepJSON(w io.Writer, s Sweep) error {
	out := make([]api.SweepPointV1, 0, len(s.Points))
	for _, p := range s.Points {
		out = append(out, api.SweepPointV1{X: p.X, Y: p.Y})
	}
	return jsonutil.EncodePretty(w, out)
}
