// internal/report/report.go
// Package report renders the combined text export: one framed block per
// computed domain, in computation order, followed by the advisory summary.
// JSON export lives in internal/output; this package owns only the text
// framing.
package report

import (
	"fmt"
	"io"
	"strings"

	"pcbcalc-core/advise"

	"pcbcalc/internal/output"
)

var separator = strings.Repeat("=", 40)

func writeHeader(w io.Writer, name string) error {
	_, err := fmt.Fprintf(w, "\n%s\n--- %s ---\n%s\n", separator, name, separator)
	return err
}

func writeBlock(w io.Writer, s *advise.State, d advise.Domain) error {
	if err := writeHeader(w, strings.ToUpper(string(d))); err != nil {
		return err
	}
	switch d {
	case advise.DomainTrace:
		r, _ := s.Trace()
		return output.WriteTrace(w, output.FormatText, r)
	case advise.DomainVia:
		cands, _ := s.Vias()
		return output.WriteVias(w, output.FormatText, cands)
	case advise.DomainImpedance:
		r, _ := s.Impedance()
		return output.WriteImpedance(w, output.FormatText, r)
	case advise.DomainVdrop:
		r, _ := s.VoltageDrop()
		return output.WriteVdrop(w, output.FormatText, r)
	case advise.DomainClearance:
		r, _ := s.Clearance()
		return output.WriteClearance(w, output.FormatText, r)
	default:
		return fmt.Errorf("unknown report block %q", d)
	}
}

// WriteAdvice renders the advisory block. Nothing is written when there
// is nothing to say.
func WriteAdvice(w io.Writer, advice []advise.Advice) error {
	if len(advice) == 0 {
		return nil
	}
	if err := writeHeader(w, "RECOMMENDATIONS"); err != nil {
		return err
	}
	for _, a := range advice {
		if _, err := fmt.Fprintf(w, "[%s] %s\n", a.Level, a.Text); err != nil {
			return err
		}
	}
	return nil
}

// Write renders every computed block, then the advisory summary.
func Write(w io.Writer, s *advise.State) error {
	for _, d := range s.Domains() {
		if err := writeBlock(w, s, d); err != nil {
			return err
		}
	}
	return WriteAdvice(w, s.Advise())
}
