package weights

import "strings"

type Unit string

const (
	UnitKg Unit = "kg"
	UnitLb Unit = "lb"
)

const kgPerLb = 0.45359237

// toKg convierte value a kg. Unidad vacía = kg.
func toKg(value float64, u Unit) (float64, bool) {
	switch Unit(strings.ToLower(strings.TrimSpace(string(u)))) {
	case UnitKg, "":
		return value, true
	case UnitLb:
		return value * kgPerLb, true
	default:
		return 0, false
	}
}
