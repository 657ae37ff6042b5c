package projection

import (
	"measurement-annotation-service/internal/domain"
)

type TablePoint struct {
	At   domain.Coordinates
	X, Y float64
}

// TableProjector answers projections from a fixed lookup table.
// Tests use it in place of a live map surface.
type TableProjector struct {
	m map[domain.Coordinates][2]float64
}

func NewTableProjector(points []TablePoint) *TableProjector {
	m := make(map[domain.Coordinates][2]float64, len(points))
	for _, p := range points {
		m[p.At] = [2]float64{p.X, p.Y}
	}
	return &TableProjector{m: m}
}

func (p *TableProjector) Project(c domain.Coordinates) (float64, float64, bool) {
	xy, ok := p.m[c]
	if !ok {
		return 0, 0, false
	}

	return xy[0], xy[1], true
}
