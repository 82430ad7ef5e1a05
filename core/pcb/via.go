package pcb

import "math"

// Drill sizes quoted by typical fab houses, ascending. Results keep
// this order.
var viaDiametersMM = []float64{0.20, 0.25, 0.30, 0.40, 0.50, 0.60, 0.80}

// Plated vias beyond 10:1 depth-to-drill are rejected regardless of
// ampacity.
const maxAspectRatio = 10.0

// Annular pad allowance added to the drill diameter.
const padAllowanceMM = 0.4

// ViaQuery asks which standard via sizes can carry a load.
type ViaQuery struct {
	CurrentA    float64 // total current across the via group
	ThicknessMM float64 // board (= barrel) thickness
	PlatingUM   float64 // electroplated barrel wall
	TempRiseC   float64 // allowed rise above ambient
	Count       int     // parallel vias sharing the load
}

// ViaCandidate is one drill size evaluated against a ViaQuery.
type ViaCandidate struct {
	DiameterMM    float64
	PadMM         float64 // finished pad diameter
	BarrelAreaMM2 float64 // conducting annulus cross-section
	ResistanceOhm float64 // end-to-end barrel resistance
	AmpacityA     float64 // per-via current capacity
	AspectRatio   float64 // thickness / drill
	Compliant     bool    // carries the load within the aspect limit
}

// RecommendVias evaluates every standard drill size against the query.
// Ampacity follows the thermal square-law used for traces; compliance
// needs ampacity*count to cover the current and the aspect ratio to
// stay within plating reach.
func RecommendVias(q ViaQuery) ([]ViaCandidate, error) {
	if err := positive("current", q.CurrentA); err != nil {
		return nil, err
	}
	if err := positive("board thickness", q.ThicknessMM); err != nil {
		return nil, err
	}
	if err := positive("plating thickness", q.PlatingUM); err != nil {
		return nil, err
	}
	if err := positive("temperature rise", q.TempRiseC); err != nil {
		return nil, err
	}
	if q.Count < 1 {
		return nil, &InvalidInputError{Field: "via count", Value: float64(q.Count), Reason: "must be >= 1"}
	}
	out := make([]ViaCandidate, 0, len(viaDiametersMM))
	for _, d := range viaDiametersMM {
		wall := q.PlatingUM / 1000.0
		outer := d + 2*wall
		area := math.Pi * ((outer/2)*(outer/2) - (d/2)*(d/2))
		r := copperResistivity * (q.ThicknessMM / 1000.0) / (area * 1e-6)
		ampacity := math.Sqrt(q.TempRiseC / (r * kExternal))
		ar := q.ThicknessMM / d
		if err := finiteResult("via ampacity", area, r, ampacity, ar); err != nil {
			return nil, err
		}
		out = append(out, ViaCandidate{
			DiameterMM:    d,
			PadMM:         d + padAllowanceMM,
			BarrelAreaMM2: area,
			ResistanceOhm: r,
			AmpacityA:     ampacity,
			AspectRatio:   ar,
			Compliant:     ampacity*float64(q.Count) >= q.CurrentA && ar <= maxAspectRatio,
		})
	}
	return out, nil
}

// FirstCompliant returns the smallest candidate that passed, or false.
func FirstCompliant(cands []ViaCandidate) (ViaCandidate, bool) {
	for _, c := range cands {
		if c.Compliant {
			return c, true
		}
	}
	return ViaCandidate{}, false
}
