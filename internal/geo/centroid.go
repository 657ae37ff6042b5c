package geo

import (
	"errors"

	"measurement-annotation-service/internal/domain"

	"gonum.org/v1/gonum/stat"
)

var ErrNoCoordinates = errors.New("centroid: coordinate list must not be empty")

// Centroid returns the arithmetic mean of each axis independently.
//
// This is a plain vertex average, not an area-weighted polygon centroid
// and not a geodesic midpoint. It is used only to anchor a label.
func Centroid(points []domain.Coordinates) (domain.Coordinates, error) {
	if len(points) == 0 {
		return domain.Coordinates{}, ErrNoCoordinates
	}

	lats := make([]float64, len(points))
	lons := make([]float64, len(points))
	for i, p := range points {
		lats[i] = p.Lat
		lons[i] = p.Lon
	}

	return domain.Coordinates{
		Lat: stat.Mean(lats, nil),
		Lon: stat.Mean(lons, nil),
	}, nil
}
