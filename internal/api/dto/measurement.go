package dto

import (
	"fmt"
	"time"

	"measurement-annotation-service/internal/domain"
)

// Coordinates travel as [lat, lng] pairs.
type MeasurementPayload struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Type        string      `json:"type"`
	Value       float64     `json:"value"`
	Coordinates [][]float64 `json:"coordinates"`
	Timestamp   time.Time   `json:"timestamp"`
}

type AnnotateRequest struct {
	Units        string               `json:"units"`
	Measurements []MeasurementPayload `json:"measurements"`
}

// ToDomain converts a wire measurement, checking pair shape and type.
func (p MeasurementPayload) ToDomain() (domain.Measurement, error) {
	t, err := domain.ParseMeasurementType(p.Type)
	if err != nil {
		return domain.Measurement{}, err
	}

	coords := make([]domain.Coordinates, 0, len(p.Coordinates))
	for i, pair := range p.Coordinates {
		if len(pair) != 2 {
			return domain.Measurement{}, fmt.Errorf("coordinate #%d: want [lat, lng], got %d values", i+1, len(pair))
		}
		coords = append(coords, domain.Coordinates{Lat: pair[0], Lon: pair[1]})
	}

	return domain.Measurement{
		ID:          p.ID,
		Name:        p.Name,
		Type:        t,
		Value:       p.Value,
		Coordinates: coords,
		Timestamp:   p.Timestamp,
	}, nil
}

// MeasurementsToDomain converts a batch, reporting the 1-based index of the first bad item.
func MeasurementsToDomain(items []MeasurementPayload) ([]domain.Measurement, error) {
	out := make([]domain.Measurement, 0, len(items))
	for i, item := range items {
		m, err := item.ToDomain()
		if err != nil {
			return nil, fmt.Errorf("measurement at index %d (id=%q): %w", i+1, item.ID, err)
		}
		out = append(out, m)
	}
	return out, nil
}
