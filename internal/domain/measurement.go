package domain

import (
	"fmt"
	"strings"
	"time"
)

// Kind of quantity a measurement carries.
type MeasurementType string

const (
	MeasurementDistance MeasurementType = "distance"
	MeasurementArea     MeasurementType = "area"
)

// Valid reports whether t is one of the known measurement types.
func (t MeasurementType) Valid() bool {
	return t == MeasurementDistance || t == MeasurementArea
}

// ParseMeasurementType normalizes a wire value into a MeasurementType.
func ParseMeasurementType(s string) (MeasurementType, error) {
	t := MeasurementType(strings.ToLower(strings.TrimSpace(s)))
	if !t.Valid() {
		return "", fmt.Errorf("parse measurement type: unknown type %q (want distance or area)", s)
	}
	return t, nil
}

// Represents a single user-created distance or area annotation.
// Value is stored in SI units: meters for distances, square meters for areas.
// Coordinates are ordered along the drawn path or polygon ring.
// A Measurement is owned by the caller and never mutated here.
type Measurement struct {
	ID          string
	Name        string
	Type        MeasurementType
	Value       float64
	Coordinates []Coordinates
	Timestamp   time.Time
}

// PointCount is the number of vertices in the measurement geometry.
func (m Measurement) PointCount() int { return len(m.Coordinates) }
