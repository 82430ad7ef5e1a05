package units

import (
	"errors"
	"math"
	"strings"
	"testing"
)

func TestCurrent(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"1", 1},
		{"2.5", 2.5},
		{"500mA", 0.5},
		{"500 mA", 0.5},
		{"500ma", 0.5},
		{"1.2e1A", 12},
		{"-5mA", -0.005},
		{"+3A", 3},
	}
	for _, tc := range cases {
		got, err := Current(tc.in)
		if err != nil {
			t.Fatalf("Current(%q): %v", tc.in, err)
		}
		if math.Abs(got-tc.want) > 1e-12 {
			t.Fatalf("Current(%q) = %g, want %g", tc.in, got, tc.want)
		}
	}
}

func TestLengthMM(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"1.6", 1.6},
		{"1.6mm", 1.6},
		{"2cm", 20},
		{"0.05m", 50},
		{"25um", 0.025},
		{"25µm", 0.025},
		{"25μm", 0.025},
		{"10mil", 0.254},
		{"0.5in", 12.7},
	}
	for _, tc := range cases {
		got, err := LengthMM(tc.in)
		if err != nil {
			t.Fatalf("LengthMM(%q): %v", tc.in, err)
		}
		if math.Abs(got-tc.want) > 1e-12 {
			t.Fatalf("LengthMM(%q) = %g, want %g", tc.in, got, tc.want)
		}
	}
}

func TestCopperUM(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"35", 35},
		{"35um", 35},
		{"1oz", 35},
		{"2oz", 70},
		{"0.035mm", 35},
		{"1.4mil", 35.56},
	}
	for _, tc := range cases {
		got, err := CopperUM(tc.in)
		if err != nil {
			t.Fatalf("CopperUM(%q): %v", tc.in, err)
		}
		if math.Abs(got-tc.want) > 1e-9 {
			t.Fatalf("CopperUM(%q) = %g, want %g", tc.in, got, tc.want)
		}
	}
}

func TestTempRiseAndVoltage(t *testing.T) {
	if got, err := TempRiseC("20"); err != nil || got != 20 {
		t.Fatalf("TempRiseC(20) = %g, %v", got, err)
	}
	if got, err := TempRiseC("20°C"); err != nil || got != 20 {
		t.Fatalf("TempRiseC(20°C) = %g, %v", got, err)
	}
	if got, err := TempRiseC("15K"); err != nil || got != 15 {
		t.Fatalf("TempRiseC(15K) = %g, %v", got, err)
	}
	if got, err := Voltage("2kV"); err != nil || got != 2000 {
		t.Fatalf("Voltage(2kV) = %g, %v", got, err)
	}
	if got, err := Voltage("250mV"); err != nil || got != 0.25 {
		t.Fatalf("Voltage(250mV) = %g, %v", got, err)
	}
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		name string
		call func() (float64, error)
		part string
	}{
		{"empty", func() (float64, error) { return Current("") }, "current"},
		{"bare unit", func() (float64, error) { return LengthMM("mm") }, "length"},
		{"wrong dimension", func() (float64, error) { return Current("5mm") }, `unknown unit "mm"`},
		{"gibberish unit", func() (float64, error) { return Voltage("5parsec") }, `unknown unit "parsec"`},
		{"trailing junk", func() (float64, error) { return Current("5A extra") }, "current"},
		{"two numbers", func() (float64, error) { return Current("5 5") }, "current"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tc.call()
			if err == nil || !strings.Contains(err.Error(), tc.part) {
				t.Fatalf("expected error containing %q, got: %v", tc.part, err)
			}
			var perr *ParseError
			if !errors.As(err, &perr) {
				t.Fatalf("expected *ParseError, got %T", err)
			}
		})
	}
}
