package ports

import "measurement-annotation-service/internal/domain"

// Port: a host map surface that maps geographic coordinates to screen pixels.
// The annotation layer never projects coordinates itself.
type Projector interface {
	// Return the pixel position of c within the current viewport.
	// ok is false when c is outside the visible surface.
	Project(c domain.Coordinates) (x, y float64, ok bool)
}
