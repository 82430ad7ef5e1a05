// internal/design/design.go
// Package design loads a whole-board parameter document and runs every
// block it names through the engine, feeding one shared State.
package design

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"pcbcalc-core/advise"
	"pcbcalc-core/pcb"

	"pcbcalc/pkg/api"
)

// Decode reads one strict JSON design document. Unknown fields are
// rejected so typos fail loudly instead of silently computing defaults.
func Decode(r io.Reader) (api.DesignV1, error) {
	var d api.DesignV1
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&d); err != nil {
		return api.DesignV1{}, err
	}
	if d.Trace == nil && d.Via == nil && d.Impedance == nil && d.Vdrop == nil && d.Clearance == nil {
		return api.DesignV1{}, fmt.Errorf("empty design: want at least one of trace, via, impedance, vdrop, clearance")
	}
	return d, nil
}

// Load reads a design document from path; "-" means stdin.
func Load(path string) (api.DesignV1, error) {
	var r io.ReadCloser
	if path == "-" {
		r = io.NopCloser(os.Stdin)
	} else {
		fh, err := os.Open(path)
		if err != nil {
			return api.DesignV1{}, err
		}
		r = fh
	}
	defer func() { _ = r.Close() }()
	d, err := Decode(r)
	if err != nil {
		return api.DesignV1{}, fmt.Errorf("design %s: %w", path, err)
	}
	return d, nil
}

// Compute runs each present block in the canonical order (trace, via,
// impedance, vdrop, clearance) and records results on s. The first
// failing block aborts the run.
func Compute(d api.DesignV1, s *advise.State) error {
	if d.Trace != nil {
		if err := computeTrace(*d.Trace, s); err != nil {
			return fmt.Errorf("trace: %w", err)
		}
	}
	if d.Via != nil {
		if err := computeVia(*d.Via, s); err != nil {
			return fmt.Errorf("via: %w", err)
		}
	}
	if d.Impedance != nil {
		if err := computeImpedance(*d.Impedance, s); err != nil {
			return fmt.Errorf("impedance: %w", err)
		}
	}
	if d.Vdrop != nil {
		if err := computeVdrop(*d.Vdrop, s); err != nil {
			return fmt.Errorf("vdrop: %w", err)
		}
	}
	if d.Clearance != nil {
		if err := computeClearance(*d.Clearance, s); err != nil {
			return fmt.Errorf("clearance: %w", err)
		}
	}
	return nil
}

func computeTrace(spec api.TraceSpecV1, s *advise.State) error {
	in := pcb.TraceInput{
		CurrentA:  spec.CurrentA,
		CopperUM:  spec.CopperUM,
		TempRiseC: spec.TempRiseC,
	}
	switch spec.Layer {
	case "", "external":
		in.External = true
	case "internal":
		in.External = false
	default:
		return fmt.Errorf("unknown layer %q (want external or internal)", spec.Layer)
	}
	r, err := pcb.TraceWidth(in)
	if err != nil {
		return err
	}
	s.SetTrace(r)
	return nil
}

func computeVia(spec api.ViaSpecV1, s *advise.State) error {
	count := spec.Count
	if count == 0 {
		count = 1
	}
	cands, err := pcb.RecommendVias(pcb.ViaQuery{
		CurrentA:    spec.CurrentA,
		ThicknessMM: spec.ThicknessMM,
		PlatingUM:   spec.PlatingUM,
		TempRiseC:   spec.TempRiseC,
		Count:       count,
	})
	if err != nil {
		return err
	}
	s.SetVias(cands)
	return nil
}

func computeImpedance(spec api.ImpedanceSpecV1, s *advise.State) error {
	er := spec.Er
	if spec.Material != "" {
		if spec.Er != 0 {
			return fmt.Errorf("set er or material, not both")
		}
		m, err := pcb.MaterialByName(spec.Material)
		if err != nil {
			return err
		}
		er = m.Er
	}
	r, err := pcb.MicrostripImpedance(pcb.MicrostripInput{
		WidthMM:  spec.WidthMM,
		HeightMM: spec.HeightMM,
		CopperMM: spec.CopperMM,
		Er:       er,
	})
	if err != nil {
		return err
	}
	s.SetImpedance(r)
	return nil
}

func computeVdrop(spec api.VdropSpecV1, s *advise.State) error {
	r, err := pcb.VoltageDrop(pcb.VoltageDropInput{
		WidthMM:  spec.WidthMM,
		CopperUM: spec.CopperUM,
		LengthMM: spec.LengthMM,
		CurrentA: spec.CurrentA,
	})
	if err != nil {
		return err
	}
	s.SetVoltageDrop(r)
	return nil
}

func computeClearance(spec api.ClearanceSpecV1, s *advise.State) error {
	r, err := pcb.MinClearance(pcb.ClearanceQuery{
		VoltageV: spec.VoltageV,
		Location: pcb.LocationClass(spec.Location),
	})
	if err != nil {
		return err
	}
	s.SetClearance(r)
	return nil
}
