package pcb

// Resistivity of annealed copper at 20 °C, Ω·m.
const copperResistivity = 1.68e-8

// VoltageDropInput is a straight trace segment under DC load.
type VoltageDropInput struct {
	WidthMM  float64 // trace width
	CopperUM float64 // copper weight in microns
	LengthMM float64 // routed length
	CurrentA float64 // load current
}

// VoltageDropResult is the resistive loss along the segment.
type VoltageDropResult struct {
	Input         VoltageDropInput
	ResistanceOhm float64
	DropV         float64
	PowerW        float64
}

// VoltageDrop computes end-to-end resistance, IR drop and dissipated
// power for a rectangular copper cross-section.
func VoltageDrop(in VoltageDropInput) (VoltageDropResult, error) {
	if err := positive("trace width", in.WidthMM); err != nil {
		return VoltageDropResult{}, err
	}
	if err := positive("copper thickness", in.CopperUM); err != nil {
		return VoltageDropResult{}, err
	}
	if err := positive("trace length", in.LengthMM); err != nil {
		return VoltageDropResult{}, err
	}
	if err := positive("current", in.CurrentA); err != nil {
		return VoltageDropResult{}, err
	}
	areaMM2 := in.WidthMM * (in.CopperUM / 1000.0)
	r := copperResistivity * (in.LengthMM / 1000.0) / (areaMM2 * 1e-6)
	v := in.CurrentA * r
	p := in.CurrentA * v
	if err := finiteResult("voltage drop", r, v, p); err != nil {
		return VoltageDropResult{}, err
	}
	return VoltageDropResult{Input: in, ResistanceOhm: r, DropV: v, PowerW: p}, nil
}
