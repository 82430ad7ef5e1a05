package pcb

// LocationClass selects which IPC-2221B 6-1 column applies to a spacing.
type LocationClass string

const (
	LocationInternal         LocationClass = "internal"
	LocationExternalUncoated LocationClass = "external_uncoated"
	LocationExternalCoated   LocationClass = "external_coated"
)

// Locations lists the supported classes in display order.
func Locations() []LocationClass {
	return []LocationClass{LocationInternal, LocationExternalUncoated, LocationExternalCoated}
}

// ClearanceTableMaxV is the top of the tabulated range. Above it the
// fixed fallback spacing applies.
const ClearanceTableMaxV = 9999

// clearanceTier covers voltages up to maxV inclusive, either with a
// fixed spacing or, for the terminal band, a per-volt slope.
type clearanceTier struct {
	maxV      float64
	fixedMM   float64
	perVoltMM float64
	linear    bool
}

// IPC-2221B table 6-1, collapsed to the three location classes the
// standard distinguishes below 10 kV.
var clearanceTables = map[LocationClass][]clearanceTier{
	LocationInternal: {
		{maxV: 15, fixedMM: 0.05},
		{maxV: 30, fixedMM: 0.05},
		{maxV: 50, fixedMM: 0.1},
		{maxV: 100, fixedMM: 0.1},
		{maxV: 150, fixedMM: 0.2},
		{maxV: 250, fixedMM: 0.2},
		{maxV: 500, fixedMM: 0.25},
		{maxV: ClearanceTableMaxV, perVoltMM: 0.0005, linear: true},
	},
	LocationExternalUncoated: {
		{maxV: 15, fixedMM: 0.1},
		{maxV: 30, fixedMM: 0.1},
		{maxV: 50, fixedMM: 0.6},
		{maxV: 100, fixedMM: 0.6},
		{maxV: 150, fixedMM: 0.6},
		{maxV: 250, fixedMM: 1.25},
		{maxV: 500, fixedMM: 2.5},
		{maxV: ClearanceTableMaxV, perVoltMM: 0.005, linear: true},
	},
	LocationExternalCoated: {
		{maxV: 15, fixedMM: 0.05},
		{maxV: 30, fixedMM: 0.05},
		{maxV: 50, fixedMM: 0.13},
		{maxV: 100, fixedMM: 0.13},
		{maxV: 150, fixedMM: 0.4},
		{maxV: 250, fixedMM: 0.4},
		{maxV: 500, fixedMM: 0.8},
		{maxV: ClearanceTableMaxV, perVoltMM: 0.00305, linear: true},
	},
}

// Spacing applied beyond the table's terminal band (above 9999 V).
const clearanceFallbackMM = 10.0

// ClearanceQuery asks for the minimum conductor spacing at a working
// voltage.
type ClearanceQuery struct {
	VoltageV float64
	Location LocationClass
}

// ClearanceResult is the looked-up spacing.
type ClearanceResult struct {
	Input       ClearanceQuery
	ClearanceMM float64
}

// MinClearance resolves the first tier whose ceiling covers the voltage.
// Lookup is pure: equal queries always return equal results.
func MinClearance(q ClearanceQuery) (ClearanceResult, error) {
	table, ok := clearanceTables[q.Location]
	if !ok {
		return ClearanceResult{}, &UnknownLocationError{Class: string(q.Location)}
	}
	if err := nonNegative("voltage", q.VoltageV); err != nil {
		return ClearanceResult{}, err
	}
	for _, tier := range table {
		if q.VoltageV <= tier.maxV {
			mm := tier.fixedMM
			if tier.linear {
				mm = tier.perVoltMM * q.VoltageV
			}
			return ClearanceResult{Input: q, ClearanceMM: mm}, nil
		}
	}
	return ClearanceResult{Input: q, ClearanceMM: clearanceFallbackMM}, nil
}
