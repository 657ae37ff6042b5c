package annotation

import "measurement-annotation-service/internal/geojson"

// ToGeoJSON emits one Point feature per marker at its centroid.
func ToGeoJSON(markers []Marker) geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection(len(markers))
	for _, m := range markers {
		fc.Features = append(fc.Features, geojson.Feature{
			Type:     geojson.TypeFeature,
			ID:       m.ID,
			Geometry: geojson.NewPoint(m.Position.Lon, m.Position.Lat),
			Properties: map[string]any{
				"id":          m.ID,
				"type":        string(m.Type),
				"text":        m.Text,
				"icon":        m.Icon,
				"name":        m.Tooltip.Name,
				"timestamp":   m.Tooltip.Timestamp,
				"point_count": m.Tooltip.PointCount,
			},
		})
	}
	return fc
}
