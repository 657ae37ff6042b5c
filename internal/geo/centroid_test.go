package geo

import (
	"errors"
	"testing"

	"measurement-annotation-service/internal/domain"
)

func TestCentroid(t *testing.T) {
	tests := []struct {
		name   string
		points []domain.Coordinates
		want   domain.Coordinates
	}{
		{
			name:   "two points",
			points: []domain.Coordinates{{Lat: 0, Lon: 0}, {Lat: 10, Lon: 10}},
			want:   domain.Coordinates{Lat: 5, Lon: 5},
		},
		{
			name:   "single point identity",
			points: []domain.Coordinates{{Lat: 1, Lon: 1}},
			want:   domain.Coordinates{Lat: 1, Lon: 1},
		},
		{
			name: "axes averaged independently",
			points: []domain.Coordinates{
				{Lat: 2, Lon: -4},
				{Lat: 4, Lon: 0},
				{Lat: 6, Lon: 4},
				{Lat: 8, Lon: 8},
			},
			want: domain.Coordinates{Lat: 5, Lon: 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Centroid(tt.points)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("Centroid = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestCentroidEmpty(t *testing.T) {
	_, err := Centroid(nil)
	if !errors.Is(err, ErrNoCoordinates) {
		t.Fatalf("err = %v, want ErrNoCoordinates", err)
	}
}

func TestCentroidDoesNotMutateInput(t *testing.T) {
	points := []domain.Coordinates{{Lat: 3, Lon: 4}, {Lat: 5, Lon: 6}}
	before := append([]domain.Coordinates(nil), points...)

	if _, err := Centroid(points); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := range points {
		if points[i] != before[i] {
			t.Fatalf("point %d mutated: %+v -> %+v", i, before[i], points[i])
		}
	}
}
