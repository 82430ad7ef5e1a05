// internal/output/json.go
package output

import (
	"io"

	"pcbcalc-core/pcb"

	"pcbcalc/internal/jsonutil"
	"pcbcalc/pkg/api"
)

func writeTraceJSON(w io.Writer, r pcb.TraceResult) error {
	return jsonutil.EncodePretty(w, ToAPITrace(r))
}

// writeViaJSON writes a single JSON array of v1 candidates (pretty-indented).
func writeViaJSON(w io.Writer, cands []pcb.ViaCandidate) error {
	return jsonutil.EncodePretty(w, ToAPIVias(cands))
}

func writeImpedanceJSON(w io.Writer, r pcb.ImpedanceResult) error {
	return jsonutil.EncodePretty(w, ToAPIImpedance(r))
}

func writeVdropJSON(w io.Writer, r pcb.VoltageDropResult) error {
	return jsonutil.EncodePretty(w, ToAPIVdrop(r))
}

func writeClearanceJSON(w io.Writer, r pcb.ClearanceResult) error {
	return jsonutil.EncodePretty(w, ToAPIClearance(r))
}

func writeMaterialsJSON(w io.Writer, ms []pcb.Material) error {
	type materialV1 struct {
		Name string  `json:"name"`
		Er   float64 `json:"er"`
	}
	out := make([]materialV1, 0, len(ms))
	for _, m := range ms {
		out = append(out, materialV1{Name: m.Name, Er: m.Er})
	}
	return jsonutil.EncodePretty(w, out)
}

func writeReportJSON(w io.Writer, r api.ReportV1) error {
	return jsonutil.EncodePretty(w, r)
}
