package enums

import "fmt"

// Unit defines how a product is priced and how its quantity is tracked.
// Weighted units (kg, liter) price per 1000 base units and track quantity in
// grams or milliliters; the remaining units track a plain count.
type Unit string

const (
	UnitKg     Unit = "kg"
	UnitLiter  Unit = "liter"
	UnitBunch  Unit = "bunch"
	UnitPacket Unit = "packet"
	UnitPiece  Unit = "piece"
)

var validUnits = []Unit{
	UnitKg,
	UnitLiter,
	UnitBunch,
	UnitPacket,
	UnitPiece,
}

// String implements fmt.Stringer.
func (u Unit) String() string {
	return string(u)
}

// IsValid reports whether the value is a known Unit.
func (u Unit) IsValid() bool {
	for _, candidate := range validUnits {
		if candidate == u {
			return true
		}
	}
	return false
}

// IsWeighted reports whether quantity is tracked in grams/milliliters and
// priced per 1000 base units.
func (u Unit) IsWeighted() bool {
	return u == UnitKg || u == UnitLiter
}

// ParseUnit converts raw input into a Unit.
func ParseUnit(value string) (Unit, error) {
	for _, candidate := range validUnits {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid unit %q", value)
}
