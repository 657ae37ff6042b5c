package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"measurement-annotation-service/internal/annotation"
	"measurement-annotation-service/internal/domain"
	"measurement-annotation-service/internal/platform/obs"
)

var ErrInvalidRequest = errors.New("invalid annotation request")

// ValidationError reports the first offending measurement in a request.
type ValidationError struct {
	Index  int
	ID     string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("measurement #%d (id=%q): %s", e.Index+1, e.ID, e.Reason)
}

func (e *ValidationError) Is(target error) bool { return target == ErrInvalidRequest }

type AnnotateRequest struct {
	Units        string
	Measurements []domain.Measurement
	// OnClick is forwarded to every marker; optional.
	OnClick func(id string)
}

// Annotate validates a batch of measurements and renders their markers.
//
// Validation fails fast on the first structural problem (missing id, duplicate id,
// unknown type, empty or non-finite geometry, non-finite value, missing timestamp).
// Zero and negative values are accepted and formatted as-is.
func Annotate(
	ctx context.Context,
	req AnnotateRequest,
	renderer *annotation.Renderer,
	defaultUnits domain.UnitSystem,
) (_ []annotation.Marker, err error) {
	defer obs.Time(ctx, "annotations.Annotate")(&err)

	if renderer == nil {
		return nil, errors.New("annotate: renderer is nil")
	}

	system, err := domain.ParseUnitSystem(req.Units, defaultUnits)
	if err != nil {
		return nil, fmt.Errorf("annotate: %w: %w", ErrInvalidRequest, err)
	}

	if err := ValidateMeasurements(req.Measurements); err != nil {
		return nil, fmt.Errorf("annotate: %w", err)
	}

	markers, err := renderer.Render(req.Measurements, system, req.OnClick)
	if err != nil {
		return nil, fmt.Errorf("annotate: %w", err)
	}

	return markers, nil
}

// ValidateMeasurements checks the structural preconditions the renderer relies on.
func ValidateMeasurements(ms []domain.Measurement) error {
	seen := make(map[string]struct{}, len(ms))

	for i, m := range ms {
		fail := func(reason string) error {
			return &ValidationError{Index: i, ID: m.ID, Reason: reason}
		}

		id := strings.TrimSpace(m.ID)
		if id == "" {
			return fail("id must not be empty")
		}
		if _, dup := seen[id]; dup {
			return fail("duplicate id")
		}
		seen[id] = struct{}{}

		if !m.Type.Valid() {
			return fail(fmt.Sprintf("unknown type %q", m.Type))
		}
		if math.IsNaN(m.Value) || math.IsInf(m.Value, 0) {
			return fail("value must be a finite number")
		}
		if len(m.Coordinates) == 0 {
			return fail("coordinates must contain at least one point")
		}
		for j, c := range m.Coordinates {
			if !c.Finite() {
				return fail(fmt.Sprintf("coordinate #%d is not finite", j+1))
			}
		}
		if m.Timestamp.IsZero() {
			return fail("timestamp is required")
		}
	}

	return nil
}
