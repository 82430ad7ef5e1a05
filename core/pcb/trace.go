package pcb

import "math"

// IPC-2152 power-law constants for the required cross-section,
// outer vs. buried copper.
const (
	kExternal = 0.024
	kInternal = 0.012
)

// TraceInput describes one copper trace carrying DC current.
type TraceInput struct {
	CurrentA  float64 // load current
	CopperUM  float64 // copper weight in microns (35 = 1 oz)
	TempRiseC float64 // allowed rise above ambient
	External  bool    // trace on an outer layer
}

// TraceResult is the IPC-2152 sizing for a TraceInput.
type TraceResult struct {
	Input   TraceInput
	AreaMM2 float64 // required copper cross-section
	WidthMM float64 // required width at the given copper weight
}

// TraceWidth sizes a trace per the IPC-2152 power-law approximation:
// area = K * I^0.44 * dT^-0.725, width = area / thickness.
// Zero current is legal and sizes to zero width.
func TraceWidth(in TraceInput) (TraceResult, error) {
	if err := nonNegative("current", in.CurrentA); err != nil {
		return TraceResult{}, err
	}
	if err := positive("copper thickness", in.CopperUM); err != nil {
		return TraceResult{}, err
	}
	if err := positive("temperature rise", in.TempRiseC); err != nil {
		return TraceResult{}, err
	}
	k := kInternal
	if in.External {
		k = kExternal
	}
	area := k * math.Pow(in.CurrentA, 0.44) * math.Pow(in.TempRiseC, -0.725)
	width := area / (in.CopperUM / 1000.0)
	if err := finiteResult("trace width", area, width); err != nil {
		return TraceResult{}, err
	}
	return TraceResult{Input: in, AreaMM2: area, WidthMM: width}, nil
}
