// Package annotation turns measurements into clickable map label descriptors.
package annotation

import (
	"fmt"
	"html/template"
	"strconv"
	"strings"

	"measurement-annotation-service/internal/domain"
)

// Placement decides how a label is anchored on the host surface.
type Placement string

const (
	// PlacementCentroid positions labels at the projected centroid when a projector is available.
	PlacementCentroid Placement = "centroid"
	// PlacementCenter pins every label to the center of the host container.
	PlacementCenter Placement = "center"
)

// ParsePlacement accepts "centroid" or "center"; empty means centroid.
func ParsePlacement(s string) (Placement, error) {
	switch p := Placement(strings.ToLower(strings.TrimSpace(s))); p {
	case "":
		return PlacementCentroid, nil
	case PlacementCentroid, PlacementCenter:
		return p, nil
	default:
		return "", fmt.Errorf("parse placement: unknown placement %q (want centroid or center)", s)
	}
}

// Icon names used by the host icon set.
const (
	IconDistance = "ruler"
	IconArea     = "square"
)

const (
	baseClass   = "measurement-label"
	labelZIndex = 1000
)

// Anchor is where a label sits on the host surface.
// Projected is false when the label falls back to the container center.
type Anchor struct {
	Mode      Placement
	X, Y      float64
	Projected bool
}

// Style carries the inline styling hints for one label.
type Style struct {
	Position      string
	Left          string
	Top           string
	Transform     string
	ZIndex        int
	PointerEvents string
}

func styleFor(a Anchor) Style {
	left, top := "50%", "50%"
	if a.Projected {
		left = strconv.FormatFloat(a.X, 'f', 1, 64) + "px"
		top = strconv.FormatFloat(a.Y, 'f', 1, 64) + "px"
	}

	return Style{
		Position:      "absolute",
		Left:          left,
		Top:           top,
		Transform:     "translate(-50%, -50%)",
		ZIndex:        labelZIndex,
		PointerEvents: "auto",
	}
}

// css renders the style as an inline declaration list.
// Only call it on a Style returned by styleFor: the output bypasses template escaping.
func (s Style) css() template.CSS {
	return template.CSS(fmt.Sprintf(
		"position:%s;left:%s;top:%s;transform:%s;z-index:%d;pointer-events:%s",
		s.Position, s.Left, s.Top, s.Transform, s.ZIndex, s.PointerEvents,
	))
}

// Tooltip is the hover content of a label.
type Tooltip struct {
	Name       string
	Timestamp  string
	PointCount int
}

// PointsLabel renders the point count, e.g. "1 point" or "4 points".
func (t Tooltip) PointsLabel() string {
	if t.PointCount == 1 {
		return "1 point"
	}
	return strconv.Itoa(t.PointCount) + " points"
}

// Marker describes one rendered measurement label.
type Marker struct {
	ID       string
	Type     domain.MeasurementType
	Position domain.Coordinates
	Anchor   Anchor
	Text     string
	Icon     string
	Class    string
	Style    Style
	Tooltip  Tooltip

	// OnClick is bound to this marker's measurement id.
	OnClick func()
}

// Click invokes the bound click handler, if any.
func (m Marker) Click() {
	if m.OnClick != nil {
		m.OnClick()
	}
}

func iconFor(t domain.MeasurementType) string {
	if t == domain.MeasurementArea {
		return IconArea
	}
	return IconDistance
}

func classFor(t domain.MeasurementType) string {
	return baseClass + " " + baseClass + "--" + string(t)
}
