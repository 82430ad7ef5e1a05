package pcb

import (
	"errors"
	"strings"
	"testing"
)

func defaultViaQuery() ViaQuery {
	return ViaQuery{CurrentA: 1, ThicknessMM: 1.6, PlatingUM: 25, TempRiseC: 20, Count: 1}
}

// Every standard drill is evaluated, in ascending order, every time.
func TestRecommendVias_CandidateSet(t *testing.T) {
	cands, err := RecommendVias(defaultViaQuery())
	if err != nil {
		t.Fatalf("RecommendVias: %v", err)
	}
	if len(cands) != 7 {
		t.Fatalf("expected 7 candidates, got %d", len(cands))
	}
	want := []float64{0.20, 0.25, 0.30, 0.40, 0.50, 0.60, 0.80}
	for i, c := range cands {
		if c.DiameterMM != want[i] {
			t.Fatalf("candidate %d: diameter %g, want %g", i, c.DiameterMM, want[i])
		}
		if !within(c.PadMM, c.DiameterMM+0.4, 1e-15) {
			t.Fatalf("candidate %d: pad %g, want drill+0.4", i, c.PadMM)
		}
	}
}

// Reference barrel numbers for a 1.6 mm board with 25 µm plating.
func TestRecommendVias_ReferenceAmpacity(t *testing.T) {
	cands, err := RecommendVias(defaultViaQuery())
	if err != nil {
		t.Fatalf("RecommendVias: %v", err)
	}
	first := cands[0]
	if !within(first.BarrelAreaMM2, 0.0176714586764426, 1e-12) {
		t.Fatalf("barrel area = %.15g", first.BarrelAreaMM2)
	}
	if !within(first.ResistanceOhm, 0.00152109684277694, 1e-12) {
		t.Fatalf("R = %.15g", first.ResistanceOhm)
	}
	if !within(first.AmpacityA, 740.169089727292, 1e-6) {
		t.Fatalf("ampacity = %.15g", first.AmpacityA)
	}
	last := cands[6]
	if !within(last.AmpacityA, 1417.31590165649, 1e-6) {
		t.Fatalf("ampacity = %.15g", last.AmpacityA)
	}
	for _, c := range cands {
		if !c.Compliant {
			t.Fatalf("1 A should pass every drill on a 1.6 mm board: %+v", c)
		}
	}
}

// Ampacity grows with drill diameter.
func TestRecommendVias_AmpacityMonotonic(t *testing.T) {
	cands, _ := RecommendVias(defaultViaQuery())
	for i := 1; i < len(cands); i++ {
		if !(cands[i].AmpacityA > cands[i-1].AmpacityA) {
			t.Fatalf("ampacity should grow with diameter: %g !> %g", cands[i].AmpacityA, cands[i-1].AmpacityA)
		}
	}
}

// A thick board knocks out small drills on aspect ratio alone.
func TestRecommendVias_AspectRatioLimit(t *testing.T) {
	q := defaultViaQuery()
	q.ThicknessMM = 3.2
	cands, err := RecommendVias(q)
	if err != nil {
		t.Fatalf("RecommendVias: %v", err)
	}
	for i, wantOK := range []bool{false, false, false, true, true, true, true} {
		if cands[i].Compliant != wantOK {
			t.Fatalf("d=%.2f on 3.2 mm board: compliant=%v, want %v (AR %g)",
				cands[i].DiameterMM, cands[i].Compliant, wantOK, cands[i].AspectRatio)
		}
	}
	best, ok := FirstCompliant(cands)
	if !ok || best.DiameterMM != 0.40 {
		t.Fatalf("first compliant = %+v, want 0.40 mm", best)
	}
}

// Parallel vias share the load: 1500 A needs two 0.25 mm barrels.
func TestRecommendVias_CountMultipliesCapacity(t *testing.T) {
	q := defaultViaQuery()
	q.CurrentA = 1500
	q.Count = 1
	single, _ := RecommendVias(q)
	if _, ok := FirstCompliant(single); ok {
		t.Fatalf("no single via should carry 1500 A here")
	}
	q.Count = 2
	double, _ := RecommendVias(q)
	best, ok := FirstCompliant(double)
	if !ok || best.DiameterMM != 0.25 {
		t.Fatalf("first compliant with two vias = %+v, want 0.25 mm", best)
	}
}

// Nothing passes when the load exceeds the largest drill pair.
func TestRecommendVias_NoneCompliant(t *testing.T) {
	q := defaultViaQuery()
	q.CurrentA = 2000
	cands, err := RecommendVias(q)
	if err != nil {
		t.Fatalf("RecommendVias: %v", err)
	}
	if _, ok := FirstCompliant(cands); ok {
		t.Fatalf("expected no compliant candidate at 2000 A")
	}
	if len(cands) != 7 {
		t.Fatalf("non-compliant candidates must still be reported, got %d", len(cands))
	}
}

func TestRecommendVias_InputValidation(t *testing.T) {
	t.Run("zero current", func(t *testing.T) {
		q := defaultViaQuery()
		q.CurrentA = 0
		if _, err := RecommendVias(q); err == nil || !strings.Contains(err.Error(), "current") {
			t.Fatalf("expected current error, got: %v", err)
		}
	})
	t.Run("zero plating", func(t *testing.T) {
		q := defaultViaQuery()
		q.PlatingUM = 0
		if _, err := RecommendVias(q); err == nil || !strings.Contains(err.Error(), "plating") {
			t.Fatalf("expected plating error, got: %v", err)
		}
	})
	t.Run("zero count", func(t *testing.T) {
		q := defaultViaQuery()
		q.Count = 0
		_, err := RecommendVias(q)
		var inv *InvalidInputError
		if err == nil || !errors.As(err, &inv) || inv.Field != "via count" {
			t.Fatalf("expected via count error, got: %v", err)
		}
	})
}
