package domain

import (
	"fmt"
	"strings"
)

// Display unit preference supplied per render. Never stored.
type UnitSystem string

const (
	Metric   UnitSystem = "metric"
	Imperial UnitSystem = "imperial"
)

// Imperial reports whether values should be shown in imperial units.
func (u UnitSystem) Imperial() bool { return u == Imperial }

// ParseUnitSystem accepts "metric" or "imperial" in any case.
// An empty string resolves to fallback.
func ParseUnitSystem(s string, fallback UnitSystem) (UnitSystem, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch UnitSystem(s) {
	case "":
		return fallback, nil
	case Metric, Imperial:
		return UnitSystem(s), nil
	default:
		return "", fmt.Errorf("parse unit system: unknown units %q (want metric or imperial)", s)
	}
}
