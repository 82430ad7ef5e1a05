// Package units parses engineering quantities like "500mA", "1.6mm",
// "2oz" or "20°C" into the canonical units the calculators expect.
// Magnitude checks are left to the calculators; "-5mA" parses fine.
package units

import (
	"fmt"
	"strings"
)

// ParseError reports a malformed quantity or a unit foreign to the
// dimension being parsed.
type ParseError struct {
	Dim    string
	Input  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cannot parse %s %q: %s", e.Dim, e.Input, e.Reason)
}

// dimension maps unit spellings (lower-cased) to a factor into the
// canonical unit. The empty spelling is the bare-number default.
type dimension struct {
	name    string
	factors map[string]float64
}

var (
	currentA = dimension{name: "current", factors: map[string]float64{
		"": 1, "a": 1, "ma": 0.001,
	}}
	lengthMM = dimension{name: "length", factors: map[string]float64{
		"": 1, "mm": 1, "cm": 10, "m": 1000,
		"um": 0.001, "µm": 0.001, "μm": 0.001,
		"mil": 0.0254, "in": 25.4,
	}}
	// Copper weight canonicalizes to microns; "oz" is the fab shorthand
	// for 35 µm foil.
	copperUM = dimension{name: "copper thickness", factors: map[string]float64{
		"": 1, "um": 1, "µm": 1, "μm": 1,
		"mm": 1000, "mil": 25.4, "oz": 35,
	}}
	tempRiseC = dimension{name: "temperature rise", factors: map[string]float64{
		"": 1, "c": 1, "°c": 1, "k": 1,
	}}
	voltageV = dimension{name: "voltage", factors: map[string]float64{
		"": 1, "v": 1, "kv": 1000, "mv": 0.001,
	}}
)

func parse(dim dimension, input string) (float64, error) {
	q, err := quantityParser.ParseString("", input)
	if err != nil {
		return 0, &ParseError{Dim: dim.name, Input: input, Reason: "want a number with an optional unit"}
	}
	factor, ok := dim.factors[strings.ToLower(q.Unit)]
	if !ok {
		return 0, &ParseError{Dim: dim.name, Input: input, Reason: fmt.Sprintf("unknown unit %q", q.Unit)}
	}
	return q.Value * factor, nil
}

// Current parses into amps. Bare numbers are amps; "mA" scales down.
func Current(s string) (float64, error) { return parse(currentA, s) }

// LengthMM parses into millimetres ("mm", "cm", "m", "um", "mil", "in").
func LengthMM(s string) (float64, error) { return parse(lengthMM, s) }

// CopperUM parses copper weight into microns ("um", "mm", "mil", "oz").
func CopperUM(s string) (float64, error) { return parse(copperUM, s) }

// TempRiseC parses a temperature rise; °C and K deltas are the same size.
func TempRiseC(s string) (float64, error) { return parse(tempRiseC, s) }

// Voltage parses into volts ("V", "kV", "mV").
func Voltage(s string) (float64, error) { return parse(voltageV, s) }
