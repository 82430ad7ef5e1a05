// internal/output/registry.go
package output

import (
	"fmt"
	"io"

	"pcbcalc-core/pcb"

	"pcbcalc/pkg/api"
)

// Writer registries (format → handler), one per payload kind. Dispatch
// replaces per-command switch statements.
type registry[T any] map[string]func(io.Writer, T) error

func write[T any](reg registry[T], format string, w io.Writer, v T) error {
	fn, ok := reg[format]
	if !ok {
		return fmt.Errorf("unknown output format %q (want text or json)", format)
	}
	return fn(w, v)
}

var (
	traceWriters = registry[pcb.TraceResult]{
		FormatText: writeTraceText,
		FormatJSON: writeTraceJSON,
	}
	viaWriters = registry[[]pcb.ViaCandidate]{
		FormatText: writeViaText,
		FormatJSON: writeViaJSON,
	}
	impedanceWriters = registry[pcb.ImpedanceResult]{
		FormatText: writeImpedanceText,
		FormatJSON: writeImpedanceJSON,
	}
	vdropWriters = registry[pcb.VoltageDropResult]{
		FormatText: writeVdropText,
		FormatJSON: writeVdropJSON,
	}
	clearanceWriters = registry[pcb.ClearanceResult]{
		FormatText: writeClearanceText,
		FormatJSON: writeClearanceJSON,
	}
	materialWriters = registry[[]pcb.Material]{
		FormatText: writeMaterialsText,
		FormatJSON: writeMaterialsJSON,
	}
	sweepWriters = registry[Sweep]{
		FormatText: writeSweepText,
		FormatJSON: writeSweepJSON,
	}
	reportWriters = registry[api.ReportV1]{
		FormatJSON: writeReportJSON,
	}
)

// Supported format names.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// WriteTrace renders a trace sizing in the requested format.
func WriteTrace(w io.Writer, format string, r pcb.TraceResult) error {
	return write(traceWriters, format, w, r)
}

// WriteVias renders a via candidate table.
func WriteVias(w io.Writer, format string, cands []pcb.ViaCandidate) error {
	return write(viaWriters, format, w, cands)
}

// WriteImpedance renders a microstrip result.
func WriteImpedance(w io.Writer, format string, r pcb.ImpedanceResult) error {
	return write(impedanceWriters, format, w, r)
}

// WriteVdrop renders a voltage drop result.
func WriteVdrop(w io.Writer, format string, r pcb.VoltageDropResult) error {
	return write(vdropWriters, format, w, r)
}

// WriteClearance renders a spacing lookup.
func WriteClearance(w io.Writer, format string, r pcb.ClearanceResult) error {
	return write(clearanceWriters, format, w, r)
}

// WriteMaterials renders the laminate presets.
func WriteMaterials(w io.Writer, format string, ms []pcb.Material) error {
	return write(materialWriters, format, w, ms)
}

// WriteSweep renders a swept curve.
func WriteSweep(w io.Writer, format string, s Sweep) error {
	return write(sweepWriters, format, w, s)
}

// WriteReport renders the bundled JSON report; the text form lives in
// internal/report, which owns the block framing.
func WriteReport(w io.Writer, format string, r api.ReportV1) error {
	return write(reportWriters, format, w, r)
}
