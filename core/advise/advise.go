// Package advise synthesizes cross-domain design advice from the latest
// result of each calculator domain. Rules are deliberately coarse: they
// flag the obvious (hair-thin traces, starved vias, off-target Z0) and
// leave judgement to the designer.
package advise

import (
	"fmt"

	"pcbcalc-core/pcb"
)

// Domain names one calculator result slot.
type Domain string

const (
	DomainTrace     Domain = "trace"
	DomainVia       Domain = "via"
	DomainImpedance Domain = "impedance"
	DomainVdrop     Domain = "vdrop"
	DomainClearance Domain = "clearance"
)

// Evaluation order is fixed regardless of when results arrived.
var adviseOrder = []Domain{DomainTrace, DomainVia, DomainImpedance, DomainVdrop, DomainClearance}

// Level grades one advisory line.
type Level uint8

const (
	Pass Level = iota
	Warn
	Fail
)

var levelNames = map[Level]string{
	Pass: "PASS",
	Warn: "WARN",
	Fail: "FAIL",
}

func (l Level) String() string {
	if s, ok := levelNames[l]; ok {
		return s
	}
	return "UNKNOWN"
}

// Advice is one synthesized line for one domain.
type Advice struct {
	Domain Domain
	Level  Level
	Text   string
}

// Rule thresholds. Raw results are compared, not their printed forms.
const (
	thinTraceMM     = 0.2
	largeTraceMM    = 2.0
	targetZ0Ohm     = 50.0
	idealZ0BandOhm  = 2.0
	highZ0Ohm       = 60.0
	noticeableDropV = 0.2
	highVoltageMM   = 3.0
)

// Advise evaluates every populated domain in fixed order. Domains
// without a result contribute nothing, not even a placeholder; a small
// voltage drop likewise stays silent.
func (s *State) Advise() []Advice {
	snap := s.view()
	out := make([]Advice, 0, len(adviseOrder))
	for _, d := range adviseOrder {
		switch d {
		case DomainTrace:
			if snap.trace != nil {
				out = append(out, adviseTrace(*snap.trace))
			}
		case DomainVia:
			if snap.vias != nil {
				out = append(out, adviseVias(snap.vias))
			}
		case DomainImpedance:
			if snap.impedance != nil {
				out = append(out, adviseImpedance(*snap.impedance))
			}
		case DomainVdrop:
			if snap.vdrop != nil {
				if a, ok := adviseVdrop(*snap.vdrop); ok {
					out = append(out, a)
				}
			}
		case DomainClearance:
			if snap.clearance != nil {
				out = append(out, adviseClearance(*snap.clearance))
			}
		}
	}
	return out
}

func adviseTrace(r pcb.TraceResult) Advice {
	switch {
	case r.WidthMM < thinTraceMM:
		return Advice{DomainTrace, Warn, "Trace width is quite thin (<0.2 mm); increase copper thickness or reduce current."}
	case r.WidthMM > largeTraceMM:
		return Advice{DomainTrace, Warn, "Trace width is large; use a pour or thicker copper for compactness."}
	default:
		return Advice{DomainTrace, Pass, "Trace width is optimal for the target current and thermal rise."}
	}
}

func adviseVias(cands []pcb.ViaCandidate) Advice {
	if best, ok := pcb.FirstCompliant(cands); ok {
		return Advice{DomainVia, Pass, fmt.Sprintf("Recommended via diameter: %.2f mm (adequate current capacity).", best.DiameterMM)}
	}
	return Advice{DomainVia, Fail, "No via meets required ampacity; increase via count or diameter."}
}

// The 50 Ω window wins over the >60 Ω check, so a 50±2 Ω result always
// reads as ideal.
func adviseImpedance(r pcb.ImpedanceResult) Advice {
	z := r.ImpedanceOhm
	switch {
	case z > targetZ0Ohm-idealZ0BandOhm && z < targetZ0Ohm+idealZ0BandOhm:
		return Advice{DomainImpedance, Pass, "Trace impedance very close to 50 Ω; ideal for most RF and high-speed signals."}
	case z > highZ0Ohm:
		return Advice{DomainImpedance, Warn, "Impedance too high; reduce width or raise εr."}
	default:
		return Advice{DomainImpedance, Warn, "Impedance low; increase width or reduce εr."}
	}
}

func adviseVdrop(r pcb.VoltageDropResult) (Advice, bool) {
	if r.DropV > noticeableDropV {
		return Advice{DomainVdrop, Warn, fmt.Sprintf("Voltage drop is noticeable (%.3f V); consider a shorter or wider trace.", r.DropV)}, true
	}
	return Advice{}, false
}

func adviseClearance(r pcb.ClearanceResult) Advice {
	if r.ClearanceMM > highVoltageMM {
		return Advice{DomainClearance, Warn, "High-voltage spacing; verify creepage distance as well."}
	}
	return Advice{DomainClearance, Pass, fmt.Sprintf("Clearance %.2f mm set for %.0fV per IPC-2221B.", r.ClearanceMM, r.Input.VoltageV)}
}
