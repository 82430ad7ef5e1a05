// pkg/api/results_v1.go
package api

// TraceResultV1 is the stable JSON schema for trace sizing results.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type TraceResultV1 struct {
	CurrentA  float64 `json:"current_a"`
	CopperUM  float64 `json:"copper_um"`
	TempRiseC float64 `json:"temp_rise_c"`
	Layer     string  `json:"layer"` // "external" | "internal"
	AreaMM2   float64 `json:"area_mm2"`
	WidthMM   float64 `json:"width_mm"`
}

// ViaCandidateV1 is the stable schema for one evaluated drill size.
type ViaCandidateV1 struct {
	DiameterMM    float64 `json:"diameter_mm"`
	PadMM         float64 `json:"pad_mm"`
	BarrelAreaMM2 float64 `json:"barrel_area_mm2"`
	ResistanceOhm float64 `json:"resistance_ohm"`
	AmpacityA     float64 `json:"ampacity_a"`
	AspectRatio   float64 `json:"aspect_ratio"`
	Compliant     bool    `json:"compliant"`
}

// ImpedanceResultV1 is the stable schema for microstrip results.
type ImpedanceResultV1 struct {
	WidthMM      float64 `json:"width_mm"`
	HeightMM     float64 `json:"height_mm"`
	CopperMM     float64 `json:"copper_mm"`
	Er           float64 `json:"er"`
	WidthEffMM   float64 `json:"width_eff_mm"`
	EpsEff       float64 `json:"eps_eff"`
	ImpedanceOhm float64 `json:"impedance_ohm"`
}

// VoltageDropResultV1 is the stable schema for drop results.
type VoltageDropResultV1 struct {
	WidthMM       float64 `json:"width_mm"`
	CopperUM      float64 `json:"copper_um"`
	LengthMM      float64 `json:"length_mm"`
	CurrentA      float64 `json:"current_a"`
	ResistanceOhm float64 `json:"resistance_ohm"`
	DropV         float64 `json:"drop_v"`
	PowerW        float64 `json:"power_w"`
}

// ClearanceResultV1 is the stable schema for spacing lookups.
type ClearanceResultV1 struct {
	VoltageV    float64 `json:"voltage_v"`
	Location    string  `json:"location"` // "internal" | "external_uncoated" | "external_coated"
	ClearanceMM float64 `json:"clearance_mm"`
}

// AdviceV1 is one synthesized recommendation line.
type AdviceV1 struct {
	Domain string `json:"domain"`
	Level  string `json:"level"` // "PASS" | "WARN" | "FAIL"
	Text   string `json:"text"`
}

// SweepPointV1 is one sample of a swept curve.
type SweepPointV1 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// ReportV1 bundles every computed domain, in computation order, with
// the synthesized advice.
type ReportV1 struct {
	Domains   []string             `json:"domains"`
	Trace     *TraceResultV1       `json:"trace,omitempty"`
	Vias      []ViaCandidateV1     `json:"vias,omitempty"`
	Impedance *ImpedanceResultV1   `json:"impedance,omitempty"`
	Vdrop     *VoltageDropResultV1 `json:"vdrop,omitempty"`
	Clearance *ClearanceResultV1   `json:"clearance,omitempty"`
	Advice    []AdviceV1           `json:"advice,omitempty"`
}
