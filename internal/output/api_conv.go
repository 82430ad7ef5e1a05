// internal/output/api_conv.go
package output

import (
	"pcbcalc-core/advise"
	"pcbcalc-core/pcb"

	"pcbcalc/pkg/api"
)

// ToAPITrace converts a trace sizing to the stable wire schema (v1).
func ToAPITrace(r pcb.TraceResult) api.TraceResultV1 {
	layer := "internal"
	if r.Input.External {
		layer = "external"
	}
	return api.TraceResultV1{
		CurrentA:  r.Input.CurrentA,
		CopperUM:  r.Input.CopperUM,
		TempRiseC: r.Input.TempRiseC,
		Layer:     layer,
		AreaMM2:   r.AreaMM2,
		WidthMM:   r.WidthMM,
	}
}

// ToAPIVias converts a candidate table to the stable wire schema (v1).
func ToAPIVias(cands []pcb.ViaCandidate) []api.ViaCandidateV1 {
	out := make([]api.ViaCandidateV1, 0, len(cands))
	for _, c := range cands {
		out = append(out, api.ViaCandidateV1{
			DiameterMM:    c.DiameterMM,
			PadMM:         c.PadMM,
			BarrelAreaMM2: c.BarrelAreaMM2,
			ResistanceOhm: c.ResistanceOhm,
			AmpacityA:     c.AmpacityA,
			AspectRatio:   c.AspectRatio,
			Compliant:     c.Compliant,
		})
	}
	return out
}

// ToAPIImpedance converts a microstrip result to the stable wire schema (v1).
func ToAPIImpedance(r pcb.ImpedanceResult) api.ImpedanceResultV1 {
	return api.ImpedanceResultV1{
		WidthMM:      r.Input.WidthMM,
		HeightMM:     r.Input.HeightMM,
		CopperMM:     r.Input.CopperMM,
		Er:           r.Input.Er,
		WidthEffMM:   r.WidthEffMM,
		EpsEff:       r.EpsEff,
		ImpedanceOhm: r.ImpedanceOhm,
	}
}

// ToAPIVdrop converts a drop result to the stable wire schema (v1).
func ToAPIVdrop(r pcb.VoltageDropResult) api.VoltageDropResultV1 {
	return api.VoltageDropResultV1{
		WidthMM:       r.Input.WidthMM,
		CopperUM:      r.Input.CopperUM,
		LengthMM:      r.Input.LengthMM,
		CurrentA:      r.Input.CurrentA,
		ResistanceOhm: r.ResistanceOhm,
		DropV:         r.DropV,
		PowerW:        r.PowerW,
	}
}

// ToAPIClearance converts a spacing lookup to the stable wire schema (v1).
func ToAPIClearance(r pcb.ClearanceResult) api.ClearanceResultV1 {
	return api.ClearanceResultV1{
		VoltageV:    r.Input.VoltageV,
		Location:    string(r.Input.Location),
		ClearanceMM: r.ClearanceMM,
	}
}

// ToAPIAdvice converts advisory lines to the stable wire schema (v1).
func ToAPIAdvice(advice []advise.Advice) []api.AdviceV1 {
	out := make([]api.AdviceV1, 0, len(advice))
	for _, a := range advice {
		out = append(out, api.AdviceV1{
			Domain: string(a.Domain),
			Level:  a.Level.String(),
			Text:   a.Text,
		})
	}
	return out
}

// BuildReport bundles everything a State holds, preserving the
// computation order in Domains.
func BuildReport(s *advise.State) api.ReportV1 {
	rep := api.ReportV1{}
	for _, d := range s.Domains() {
		rep.Domains = append(rep.Domains, string(d))
	}
	if r, ok := s.Trace(); ok {
		v := ToAPITrace(r)
		rep.Trace = &v
	}
	if cands, ok := s.Vias(); ok {
		rep.Vias = ToAPIVias(cands)
	}
	if r, ok := s.Impedance(); ok {
		v := ToAPIImpedance(r)
		rep.Impedance = &v
	}
	if r, ok := s.VoltageDrop(); ok {
		v := ToAPIVdrop(r)
		rep.Vdrop = &v
	}
	if r, ok := s.Clearance(); ok {
		v := ToAPIClearance(r)
		rep.Clearance = &v
	}
	rep.Advice = ToAPIAdvice(s.Advise())
	return rep
}
