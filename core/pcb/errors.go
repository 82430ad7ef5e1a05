package pcb

import (
	"fmt"
	"math"
)

// InvalidInputError reports a parameter outside its allowed range.
type InvalidInputError struct {
	Field  string
	Value  float64
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid %s %g: %s", e.Field, e.Value, e.Reason)
}

// UnknownLocationError reports a location class missing from the
// IPC-2221B table.
type UnknownLocationError struct {
	Class string
}

func (e *UnknownLocationError) Error() string {
	return fmt.Sprintf("unknown location class %q (want internal, external_uncoated or external_coated)", e.Class)
}

// ComputationError reports a result that broke a postcondition even
// though every input validated.
type ComputationError struct {
	Op     string
	Reason string
}

func (e *ComputationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Reason)
}

func positive(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return &InvalidInputError{Field: field, Value: v, Reason: "must be finite"}
	}
	if v <= 0 {
		return &InvalidInputError{Field: field, Value: v, Reason: "must be > 0"}
	}
	return nil
}

func nonNegative(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return &InvalidInputError{Field: field, Value: v, Reason: "must be finite"}
	}
	if v < 0 {
		return &InvalidInputError{Field: field, Value: v, Reason: "must be >= 0"}
	}
	return nil
}

// finiteResult guards outputs: validated inputs can still drive a formula
// into NaN/Inf territory, and that must surface as an error, not a number.
func finiteResult(op string, vals ...float64) error {
	for _, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return &ComputationError{Op: op, Reason: "result is not finite"}
		}
	}
	return nil
}
