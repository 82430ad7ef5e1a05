package pcb

import "gonum.org/v1/gonum/floats"

// SweepPoint is one sample of a swept curve; the axes are documented on
// each sweep function.
type SweepPoint struct {
	X float64
	Y float64
}

func sweepAxis(from, to float64, n int) ([]float64, error) {
	if n < 2 {
		return nil, &InvalidInputError{Field: "sweep points", Value: float64(n), Reason: "must be >= 2"}
	}
	if err := nonNegative("sweep start", from); err != nil {
		return nil, err
	}
	if to <= from {
		return nil, &InvalidInputError{Field: "sweep end", Value: to, Reason: "must be > sweep start"}
	}
	return floats.Span(make([]float64, n), from, to), nil
}

// TraceWidthSweep samples required width (Y, mm) against current (X, A)
// over [fromA, toA] at n evenly spaced points. A sample that cannot be
// computed fails the whole sweep.
func TraceWidthSweep(in TraceInput, fromA, toA float64, n int) ([]SweepPoint, error) {
	xs, err := sweepAxis(fromA, toA, n)
	if err != nil {
		return nil, err
	}
	out := make([]SweepPoint, 0, len(xs))
	for _, x := range xs {
		in.CurrentA = x
		res, err := TraceWidth(in)
		if err != nil {
			return nil, err
		}
		out = append(out, SweepPoint{X: x, Y: res.WidthMM})
	}
	return out, nil
}

// ImpedanceSweep samples Z0 (Y, Ω) against trace width (X, mm) over
// [fromMM, toMM] at n evenly spaced points.
func ImpedanceSweep(in MicrostripInput, fromMM, toMM float64, n int) ([]SweepPoint, error) {
	xs, err := sweepAxis(fromMM, toMM, n)
	if err != nil {
		return nil, err
	}
	out := make([]SweepPoint, 0, len(xs))
	for _, x := range xs {
		in.WidthMM = x
		res, err := MicrostripImpedance(in)
		if err != nil {
			return nil, err
		}
		out = append(out, SweepPoint{X: x, Y: res.ImpedanceOhm})
	}
	return out, nil
}

// ViaAmpacitySweep samples total capacity of the via group (Y, A,
// ampacity times count) against drill diameter (X, mm) for every
// standard size.
func ViaAmpacitySweep(q ViaQuery) ([]SweepPoint, error) {
	cands, err := RecommendVias(q)
	if err != nil {
		return nil, err
	}
	out := make([]SweepPoint, 0, len(cands))
	for _, c := range cands {
		out = append(out, SweepPoint{X: c.DiameterMM, Y: c.AmpacityA * float64(q.Count)})
	}
	return out, nil
}
