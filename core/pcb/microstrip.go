package pcb

import "math"

// MicrostripInput is a surface trace over a single reference plane.
type MicrostripInput struct {
	WidthMM  float64 // trace width
	HeightMM float64 // dielectric height to the plane
	CopperMM float64 // trace copper thickness, in mm here
	Er       float64 // substrate relative permittivity
}

// ImpedanceResult carries Z0 plus the intermediates designers ask about.
type ImpedanceResult struct {
	Input        MicrostripInput
	WidthEffMM   float64 // thickness-corrected effective width
	EpsEff       float64 // effective permittivity of the mixed air/substrate field
	ImpedanceOhm float64
}

// MicrostripImpedance computes Z0 with the Hammerstad-Jensen closed form.
// The fit is tuned for narrow traces (w/h below about 1); outside that
// range it degrades smoothly and can even go non-physical for very wide
// traces, which is reported as-is rather than clamped.
func MicrostripImpedance(in MicrostripInput) (ImpedanceResult, error) {
	if err := positive("trace width", in.WidthMM); err != nil {
		return ImpedanceResult{}, err
	}
	if err := positive("dielectric height", in.HeightMM); err != nil {
		return ImpedanceResult{}, err
	}
	if err := positive("copper thickness", in.CopperMM); err != nil {
		return ImpedanceResult{}, err
	}
	if err := positive("relative permittivity", in.Er); err != nil {
		return ImpedanceResult{}, err
	}
	w, h, t, er := in.WidthMM, in.HeightMM, in.CopperMM, in.Er
	weff := w + t/math.Pi*math.Log(1+4*math.E/(t/h+1/math.Pi))
	epsEff := (er+1)/2 + (er-1)/2*(1/math.Sqrt(1+12*h/w))
	z0 := 60 / math.Sqrt(epsEff) * math.Log(8*h/(weff+t))
	if err := finiteResult("microstrip impedance", weff, epsEff, z0); err != nil {
		return ImpedanceResult{}, err
	}
	return ImpedanceResult{Input: in, WidthEffMM: weff, EpsEff: epsEff, ImpedanceOhm: z0}, nil
}
