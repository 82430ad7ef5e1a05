// ./internal/arch/arch_test.go
package arch

import (
	"bytes"
	"encoding/json"
	"io"
	"os/exec"
	"strings"
	"testing"
)

type pkg struct {
	ImportPath string
	Imports    []string
	Standard   bool
}

// Rendering and loading stay layered: output knows nothing about the
// report framing or the design loader, the wire schema stays a leaf,
// and nothing below cmd/ reaches back into it.
func TestImportBoundaries(t *testing.T) {
	cmd := exec.Command("go", "list", "-json", "./...")
	var out bytes.Buffer
	cmd.Stdout = &out
	if err := cmd.Run(); err != nil {
		t.Fatalf("go list: %v", err)
	}
	dec := json.NewDecoder(&out)

	bans := map[string][]string{
		"pcbcalc/pkg/api": {
			"pcbcalc/internal/", "pcbcalc/cmd/",
		},
		"pcbcalc/internal/output": {
			"pcbcalc/internal/report", "pcbcalc/internal/design", "pcbcalc/cmd/",
		},
		"pcbcalc/internal/report": {
			"pcbcalc/internal/design", "pcbcalc/cmd/",
		},
		"pcbcalc/internal/design": {
			"pcbcalc/internal/output", "pcbcalc/internal/report", "pcbcalc/cmd/",
		},
		"pcbcalc/internal/jsonutil": {
			"pcbcalc/internal/output", "pcbcalc/internal/report", "pcbcalc/internal/design", "pcbcalc/cmd/",
		},
		"pcbcalc/internal/cmdutil": {
			"pcbcalc/internal/output", "pcbcalc/internal/report", "pcbcalc/internal/design", "pcbcalc/cmd/",
		},
		"pcbcalc/internal/version": {
			"pcbcalc/internal/", "pcbcalc/cmd/",
		},
	}

	var violations []string
	for {
		var p pkg
		if err := dec.Decode(&p); err == io.EOF {
			break
		} else if err != nil {
			t.Fatalf("decode: %v", err)
		}
		if !strings.HasPrefix(p.ImportPath, "pcbcalc/") {
			continue
		}
		imp := p.ImportPath
		for prefix, forbidden := range bans {
			if !strings.HasPrefix(imp, prefix) {
				continue
			}
			for _, dep := range p.Imports {
				if !strings.HasPrefix(dep, "pcbcalc/") {
					continue
				}
				for _, ban := range forbidden {
					if strings.HasPrefix(dep, ban) {
						violations = append(violations, imp+" → "+dep)
					}
				}
			}
		}
	}

	if len(violations) > 0 {
		t.Fatalf("import boundary violations:\n  %s", strings.Join(violations, "\n  "))
	}
}
