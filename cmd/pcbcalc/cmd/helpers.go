// cmd/pcbcalc/cmd/helpers.go
package cmd

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"pcbcalc-core/advise"
)

// splitSweep parses a from:to:points range; the endpoints carry units.
func splitSweep(spec string, dim func(string) (float64, error)) (float64, float64, int, error) {
	parts := strings.Split(spec, ":")
	if len(parts) != 3 {
		return 0, 0, 0, fmt.Errorf("bad sweep %q (want from:to:points, e.g. 0.2A:5A:25)", spec)
	}
	from, err := dim(parts[0])
	if err != nil {
		return 0, 0, 0, fmt.Errorf("bad sweep start %q: %w", parts[0], err)
	}
	to, err := dim(parts[1])
	if err != nil {
		return 0, 0, 0, fmt.Errorf("bad sweep end %q: %w", parts[1], err)
	}
	n, err := strconv.Atoi(strings.TrimSpace(parts[2]))
	if err != nil {
		return 0, 0, 0, fmt.Errorf("bad sweep points %q: %w", parts[2], err)
	}
	return from, to, n, nil
}

// printAdvice mirrors the result hints on stderr so pipes stay clean.
func printAdvice(errw io.Writer, quiet bool, s *advise.State) {
	if quiet {
		return
	}
	for _, a := range s.Advise() {
		_, _ = fmt.Fprintf(errw, "[%s] %s\n", a.Level, a.Text)
	}
}
