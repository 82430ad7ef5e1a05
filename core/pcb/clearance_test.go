package pcb

import (
	"errors"
	"testing"
)

// Spot checks across the three columns of the spacing table.
func TestMinClearance_Table(t *testing.T) {
	cases := []struct {
		voltage float64
		loc     LocationClass
		wantMM  float64
	}{
		{0, LocationInternal, 0.05},
		{15, LocationInternal, 0.05},
		{30, LocationInternal, 0.05},
		{31, LocationInternal, 0.1},
		{100, LocationInternal, 0.1},
		{150, LocationInternal, 0.2},
		{500, LocationInternal, 0.25},
		{1000, LocationInternal, 0.5},

		{60, LocationExternalUncoated, 0.6},
		{250, LocationExternalUncoated, 1.25},
		{500, LocationExternalUncoated, 2.5},
		{1000, LocationExternalUncoated, 5.0},

		{60, LocationExternalCoated, 0.13},
		{250, LocationExternalCoated, 0.4},
		{500, LocationExternalCoated, 0.8},
		{1000, LocationExternalCoated, 3.05},
	}
	for _, tc := range cases {
		res, err := MinClearance(ClearanceQuery{VoltageV: tc.voltage, Location: tc.loc})
		if err != nil {
			t.Fatalf("MinClearance(%g, %s): %v", tc.voltage, tc.loc, err)
		}
		if !within(res.ClearanceMM, tc.wantMM, 1e-12) {
			t.Fatalf("MinClearance(%g, %s) = %g, want %g", tc.voltage, tc.loc, res.ClearanceMM, tc.wantMM)
		}
	}
}

// The required spacing never shrinks as voltage rises.
func TestMinClearance_MonotonicPerClass(t *testing.T) {
	for _, loc := range Locations() {
		last := -1.0
		for v := 0.0; v <= 9999; v += 3 {
			res, err := MinClearance(ClearanceQuery{VoltageV: v, Location: loc})
			if err != nil {
				t.Fatalf("MinClearance(%g, %s): %v", v, loc, err)
			}
			if res.ClearanceMM < last {
				t.Fatalf("%s: spacing shrank at %g V: %g < %g", loc, v, res.ClearanceMM, last)
			}
			last = res.ClearanceMM
		}
	}
}

// Tier edges are inclusive: 30 V still reads the 30 V band.
func TestMinClearance_BoundaryInclusive(t *testing.T) {
	at, _ := MinClearance(ClearanceQuery{VoltageV: 30, Location: LocationInternal})
	above, _ := MinClearance(ClearanceQuery{VoltageV: 30.0001, Location: LocationInternal})
	if at.ClearanceMM != 0.05 || above.ClearanceMM != 0.1 {
		t.Fatalf("boundary handling wrong: at=%g above=%g", at.ClearanceMM, above.ClearanceMM)
	}
}

// Past the terminal band the table answers a flat 10 mm.
func TestMinClearance_BeyondTable(t *testing.T) {
	res, err := MinClearance(ClearanceQuery{VoltageV: 12000, Location: LocationInternal})
	if err != nil {
		t.Fatalf("MinClearance: %v", err)
	}
	if res.ClearanceMM != 10.0 {
		t.Fatalf("spacing above 9999 V = %g, want 10.0", res.ClearanceMM)
	}
}

// Equal queries must answer equally.
func TestMinClearance_Idempotent(t *testing.T) {
	q := ClearanceQuery{VoltageV: 320, Location: LocationExternalCoated}
	a, err := MinClearance(q)
	if err != nil {
		t.Fatalf("MinClearance: %v", err)
	}
	b, _ := MinClearance(q)
	if a != b {
		t.Fatalf("lookup not stable: %+v vs %+v", a, b)
	}
}

func TestMinClearance_Errors(t *testing.T) {
	t.Run("unknown location", func(t *testing.T) {
		_, err := MinClearance(ClearanceQuery{VoltageV: 60, Location: "outer_space"})
		var unk *UnknownLocationError
		if err == nil || !errors.As(err, &unk) || unk.Class != "outer_space" {
			t.Fatalf("expected unknown location error, got: %v", err)
		}
	})
	t.Run("negative voltage", func(t *testing.T) {
		_, err := MinClearance(ClearanceQuery{VoltageV: -5, Location: LocationInternal})
		var inv *InvalidInputError
		if err == nil || !errors.As(err, &inv) || inv.Field != "voltage" {
			t.Fatalf("expected invalid voltage, got: %v", err)
		}
	})
}
