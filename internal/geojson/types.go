package geojson

// GeoJSON Standard Types (RFC 7946 compliant)
type FeatureCollection struct {
	Type     string    `json:"type"`
	Features []Feature `json:"features"`
}

type Feature struct {
	Type       string         `json:"type"`
	ID         string         `json:"id,omitempty"`
	Geometry   Geometry       `json:"geometry"`
	Properties map[string]any `json:"properties"`
}

// Point geometry; Coordinates are [lon, lat].
type Geometry struct {
	Type        string    `json:"type"`
	Coordinates []float64 `json:"coordinates"`
}

const (
	TypeFeatureCollection = "FeatureCollection"
	TypeFeature           = "Feature"
	TypePoint             = "Point"
)

// NewFeatureCollection returns an empty collection whose Features encode as [] rather than null.
func NewFeatureCollection(capacity int) FeatureCollection {
	return FeatureCollection{
		Type:     TypeFeatureCollection,
		Features: make([]Feature, 0, capacity),
	}
}

func NewPoint(lon, lat float64) Geometry {
	return Geometry{Type: TypePoint, Coordinates: []float64{lon, lat}}
}
