// pkg/api/design_v1.go
package api

// DesignV1 is the input document for whole-design reports: one optional
// block per domain, canonical units throughout. At least one block must
// be present.
type DesignV1 struct {
	Trace     *TraceSpecV1     `json:"trace,omitempty"`
	Via       *ViaSpecV1       `json:"via,omitempty"`
	Impedance *ImpedanceSpecV1 `json:"impedance,omitempty"`
	Vdrop     *VdropSpecV1     `json:"vdrop,omitempty"`
	Clearance *ClearanceSpecV1 `json:"clearance,omitempty"`
}

// TraceSpecV1 sizes one trace. Layer defaults to "external".
type TraceSpecV1 struct {
	CurrentA  float64 `json:"current_a"`
	CopperUM  float64 `json:"copper_um"`
	TempRiseC float64 `json:"temp_rise_c"`
	Layer     string  `json:"layer,omitempty"` // "external" | "internal"
}

// ViaSpecV1 asks for a via recommendation. Count defaults to 1.
type ViaSpecV1 struct {
	CurrentA    float64 `json:"current_a"`
	ThicknessMM float64 `json:"thickness_mm"`
	PlatingUM   float64 `json:"plating_um"`
	TempRiseC   float64 `json:"temp_rise_c"`
	Count       int     `json:"count,omitempty"`
}

// ImpedanceSpecV1 describes a microstrip. Set er or material, not both;
// material names a built-in laminate preset.
type ImpedanceSpecV1 struct {
	WidthMM  float64 `json:"width_mm"`
	HeightMM float64 `json:"height_mm"`
	CopperMM float64 `json:"copper_mm"`
	Er       float64 `json:"er,omitempty"`
	Material string  `json:"material,omitempty"`
}

// VdropSpecV1 describes a loaded trace segment.
type VdropSpecV1 struct {
	WidthMM  float64 `json:"width_mm"`
	CopperUM float64 `json:"copper_um"`
	LengthMM float64 `json:"length_mm"`
	CurrentA float64 `json:"current_a"`
}

// ClearanceSpecV1 asks for the minimum spacing at a working voltage.
type ClearanceSpecV1 struct {
	VoltageV float64 `json:"voltage_v"`
	Location string  `json:"location"` // "internal" | "external_uncoated" | "external_coated"
}
