package annotation

import (
	"errors"
	"fmt"

	"measurement-annotation-service/internal/domain"
	"measurement-annotation-service/internal/geo"
	"measurement-annotation-service/internal/ports"
	"measurement-annotation-service/internal/units"

	"golang.org/x/text/language"
)

var ErrUnknownType = errors.New("unknown measurement type")

// Renderer composes unit formatting and centroid placement into markers.
// It holds no per-render state and is safe for concurrent use
// as long as the Projector is.
type Renderer struct {
	Formatter  *units.Formatter
	Timestamps units.TimestampFormatter
	Placement  Placement
	// Projector is optional; without it centroid placement falls back to the container center.
	Projector ports.Projector
}

// NewRenderer returns a Renderer with centroid placement and UTC timestamps.
func NewRenderer(formatter *units.Formatter) *Renderer {
	if formatter == nil {
		formatter = units.NewFormatter(language.English)
	}
	return &Renderer{
		Formatter: formatter,
		Placement: PlacementCentroid,
	}
}

// Render produces one marker per measurement, in input order.
//
// Each marker's OnClick calls onClick with that marker's measurement id.
// A nil onClick leaves the handlers as no-ops.
func (r *Renderer) Render(
	measurements []domain.Measurement,
	system domain.UnitSystem,
	onClick func(id string),
) ([]Marker, error) {
	imperial := system.Imperial()

	markers := make([]Marker, 0, len(measurements))
	for _, m := range measurements {
		mk, err := r.renderOne(m, imperial, onClick)
		if err != nil {
			return nil, fmt.Errorf("render annotations: measurement %q: %w", m.ID, err)
		}
		markers = append(markers, mk)
	}

	return markers, nil
}

func (r *Renderer) renderOne(m domain.Measurement, imperial bool, onClick func(id string)) (Marker, error) {
	center, err := geo.Centroid(m.Coordinates)
	if err != nil {
		return Marker{}, err
	}

	text, ok := r.Formatter.Format(m.Type, m.Value, imperial)
	if !ok {
		return Marker{}, fmt.Errorf("%w %q", ErrUnknownType, m.Type)
	}

	anchor := r.anchor(center)
	id := m.ID

	return Marker{
		ID:       id,
		Type:     m.Type,
		Position: center,
		Anchor:   anchor,
		Text:     text,
		Icon:     iconFor(m.Type),
		Class:    classFor(m.Type),
		Style:    styleFor(anchor),
		Tooltip: Tooltip{
			Name:       m.Name,
			Timestamp:  r.Timestamps.FormatTimestamp(m.Timestamp),
			PointCount: m.PointCount(),
		},
		OnClick: func() {
			if onClick != nil {
				onClick(id)
			}
		},
	}, nil
}

func (r *Renderer) anchor(center domain.Coordinates) Anchor {
	mode := r.Placement
	if mode == "" {
		mode = PlacementCentroid
	}

	if mode == PlacementCentroid && r.Projector != nil {
		if x, y, ok := r.Projector.Project(center); ok {
			return Anchor{Mode: mode, X: x, Y: y, Projected: true}
		}
	}

	return Anchor{Mode: mode}
}
