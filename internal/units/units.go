// Package units converts SI measurement values into display strings.
package units

import (
	"measurement-annotation-service/internal/domain"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Conversion factors from SI units.
const (
	FeetPerMeter          = 3.28084
	FeetPerYard           = 3.0
	MetersPerMile         = 1609.34
	MetersPerKilometer    = 1000.0
	SqMetersPerSqKm       = 1_000_000.0
	SqMetersPerHectare    = 10_000.0
	SqFeetPerSqMeter      = 10.7639
	AcresPerSqMeter       = 0.000247105
	SqMetersPerSqMile     = 2_589_988.11
	yardTierMinimumYards  = 100.0
	largeTierMinimumValue = 1.0
)

// Formatter renders values for one locale.
// The zero value is not usable; construct with NewFormatter.
type Formatter struct {
	tag     language.Tag
	printer *message.Printer
}

// NewFormatter returns a Formatter printing numbers for the given locale.
func NewFormatter(tag language.Tag) *Formatter {
	return &Formatter{
		tag:     tag,
		printer: message.NewPrinter(tag),
	}
}

var english = NewFormatter(language.English)

// Locale returns the language tag used for number formatting.
func (f *Formatter) Locale() language.Tag { return f.tag }

// FormatDistance formats a length in meters using English number formatting.
func FormatDistance(meters float64, imperial bool) string {
	return english.FormatDistance(meters, imperial)
}

// FormatArea formats an area in square meters using English number formatting.
func FormatArea(squareMeters float64, imperial bool) string {
	return english.FormatArea(squareMeters, imperial)
}

// FormatDistance picks a unit tier by magnitude:
// metric km/m, imperial mi/yd/ft.
func (f *Formatter) FormatDistance(meters float64, imperial bool) string {
	if imperial {
		feet := meters * FeetPerMeter
		yards := feet / FeetPerYard
		miles := meters / MetersPerMile

		if miles >= largeTierMinimumValue {
			return f.printer.Sprintf("%.2f mi", miles)
		}
		if yards >= yardTierMinimumYards {
			return f.printer.Sprintf("%.0f yd", yards)
		}
		return f.printer.Sprintf("%.1f ft", feet)
	}

	if meters >= MetersPerKilometer {
		return f.printer.Sprintf("%.2f km", meters/MetersPerKilometer)
	}
	return f.printer.Sprintf("%.1f m", meters)
}

// FormatArea picks a unit tier by magnitude:
// metric km²/ha/m², imperial sq mi/ac/sq ft.
func (f *Formatter) FormatArea(squareMeters float64, imperial bool) string {
	if imperial {
		squareFeet := squareMeters * SqFeetPerSqMeter
		acres := squareMeters * AcresPerSqMeter
		squareMiles := squareMeters / SqMetersPerSqMile

		if squareMiles >= largeTierMinimumValue {
			return f.printer.Sprintf("%.3f sq mi", squareMiles)
		}
		if acres >= largeTierMinimumValue {
			return f.printer.Sprintf("%.2f ac", acres)
		}
		return f.printer.Sprintf("%.0f sq ft", squareFeet)
	}

	squareKilometers := squareMeters / SqMetersPerSqKm
	hectares := squareMeters / SqMetersPerHectare

	if squareKilometers >= largeTierMinimumValue {
		return f.printer.Sprintf("%.3f km²", squareKilometers)
	}
	if hectares >= largeTierMinimumValue {
		return f.printer.Sprintf("%.2f ha", hectares)
	}
	return f.printer.Sprintf("%.1f m²", squareMeters)
}

// Format selects the distance or area formatter by measurement type.
// Unknown types report ok=false.
func (f *Formatter) Format(t domain.MeasurementType, value float64, imperial bool) (string, bool) {
	switch t {
	case domain.MeasurementDistance:
		return f.FormatDistance(value, imperial), true
	case domain.MeasurementArea:
		return f.FormatArea(value, imperial), true
	default:
		return "", false
	}
}
