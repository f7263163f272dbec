package tables

import "fmt"

type Material string

const (
	Copper   Material = "copper"
	Aluminum Material = "aluminum"
)

// Conductor constants at 20 C. Resistivity is kept in Ohm*mm2/m throughout the
// project, so R = rho * L / A works directly with lengths in meters and
// cross-sections in mm2. (Equivalent Ohm*m values are these divided by 1e6:
// copper 1.68e-8, aluminum 2.82e-8.)
type MaterialProps struct {
	Resistivity20 float64 `json:"resistivity_20c_ohm_mm2_per_m"`
	TempCoeff     float64 `json:"temp_coeff_per_c"`
}

var materials = map[Material]MaterialProps{
	Copper:   {Resistivity20: 0.0168, TempCoeff: 0.00393},
	Aluminum: {Resistivity20: 0.0282, TempCoeff: 0.00403},
}

func MaterialOf(name string) (Material, error) {
	switch Material(name) {
	case Copper, Aluminum:
		return Material(name), nil
	}
	return "", fmt.Errorf("unknown material %q", name)
}

// ResistivityAt returns rho(T) = rho20 * (1 + alpha*(T-20)) in Ohm*mm2/m.
func ResistivityAt(mat Material, tempC float64) (float64, error) {
	p, ok := materials[mat]
	if !ok {
		return 0, fmt.Errorf("unknown material %q", mat)
	}
	return p.Resistivity20 * (1 + p.TempCoeff*(tempC-20.0)), nil
}

func Materials() map[Material]MaterialProps {
	out := make(map[Material]MaterialProps, len(materials))
	for k, v := range materials {
		out[k] = v
	}
	return out
}
