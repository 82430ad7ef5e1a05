// internal/output/text.go
package output

import (
	"fmt"
	"io"
	"strings"

	"pcbcalc-core/pcb"
)

// ViaTableHeader is the canonical header row for the via table.
// Keep this as the single source of truth; all writers should use it.
const ViaTableHeader = "Dia, Pad, Cap, AR, ✔"

// CompliantMark flags a passing via row; failing rows carry an empty cell.
const CompliantMark = "✔"

func writeTraceText(w io.Writer, r pcb.TraceResult) error {
	_, err := fmt.Fprintf(w, "Required width: %.3f mm (IPC-2152)\n", r.WidthMM)
	return err
}

// writeViaText prints the 5-column table: drill, pad, per-via ampacity,
// aspect ratio, compliance mark.
func writeViaText(w io.Writer, cands []pcb.ViaCandidate) error {
	if _, err := fmt.Fprintln(w, ViaTableHeader); err != nil {
		return err
	}
	for _, c := range cands {
		mark := ""
		if c.Compliant {
			mark = CompliantMark
		}
		row := strings.Join([]string{
			fmt.Sprintf("%.2f", c.DiameterMM),
			fmt.Sprintf("%.2f", c.PadMM),
			fmt.Sprintf("%.2f", c.AmpacityA),
			fmt.Sprintf("%.1f", c.AspectRatio),
			mark,
		}, ", ")
		if _, err := fmt.Fprintln(w, row); err != nil {
			return err
		}
	}
	return nil
}

func writeImpedanceText(w io.Writer, r pcb.ImpedanceResult) error {
	_, err := fmt.Fprintf(w, "Impedance: %.2f Ω (Hammerstad/Jensen)\n", r.ImpedanceOhm)
	return err
}

func writeVdropText(w io.Writer, r pcb.VoltageDropResult) error {
	_, err := fmt.Fprintf(w, "Resistance: %.5f Ω\nVoltage drop: %.4f V\nPower loss: %.2f mW\n",
		r.ResistanceOhm, r.DropV, r.PowerW*1000)
	return err
}

func writeClearanceText(w io.Writer, r pcb.ClearanceResult) error {
	_, err := fmt.Fprintf(w, "Minimum clearance: %.3f mm (IPC-2221B)\n", r.ClearanceMM)
	return err
}

func writeMaterialsText(w io.Writer, ms []pcb.Material) error {
	for _, m := range ms {
		if _, err := fmt.Fprintf(w, "%s (%g)\n", m.Name, m.Er); err != nil {
			return err
		}
	}
	return nil
}
