package pcb

import (
	"fmt"
	"strings"
)

// Material is a substrate laminate preset.
type Material struct {
	Name string
	Er   float64
}

// Dielectric constants of the stocked laminates (datasheet values
// around 1 MHz).
var materials = []Material{
	{Name: "FR-4", Er: 4.4},
	{Name: "Rogers 4350B", Er: 3.48},
	{Name: "Polyimide", Er: 3.5},
}

// Materials lists the built-in laminate presets in display order.
func Materials() []Material {
	out := make([]Material, len(materials))
	copy(out, materials)
	return out
}

// MaterialByName resolves a preset case-insensitively.
func MaterialByName(name string) (Material, error) {
	want := strings.ToLower(strings.TrimSpace(name))
	for _, m := range materials {
		if strings.ToLower(m.Name) == want {
			return m, nil
		}
	}
	names := make([]string, len(materials))
	for i, m := range materials {
		names[i] = m.Name
	}
	return Material{}, fmt.Errorf("unknown material %q; allowed: %s", name, strings.Join(names, ", "))
}
