package dto

import "measurement-annotation-service/internal/annotation"

type AnchorResponse struct {
	Mode      string  `json:"mode"`
	Projected bool    `json:"projected"`
	X         float64 `json:"x,omitempty"`
	Y         float64 `json:"y,omitempty"`
}

type StyleResponse struct {
	Position      string `json:"position"`
	Left          string `json:"left"`
	Top           string `json:"top"`
	Transform     string `json:"transform"`
	ZIndex        int    `json:"z_index"`
	PointerEvents string `json:"pointer_events"`
}

type TooltipResponse struct {
	Name       string `json:"name"`
	Timestamp  string `json:"timestamp"`
	PointCount int    `json:"point_count"`
}

type MarkerResponse struct {
	ID       string          `json:"id"`
	Type     string          `json:"type"`
	Position [2]float64      `json:"position"`
	Anchor   AnchorResponse  `json:"anchor"`
	Text     string          `json:"text"`
	Icon     string          `json:"icon"`
	Class    string          `json:"class"`
	Style    StyleResponse   `json:"style"`
	Tooltip  TooltipResponse `json:"tooltip"`
}

type ListMarkersResponse struct {
	Markers []MarkerResponse `json:"markers"`
}

type FormatResponse struct {
	Text string `json:"text"`
}

// NewListMarkersResponse flattens markers for JSON; Position is [lat, lng].
func NewListMarkersResponse(markers []annotation.Marker) ListMarkersResponse {
	res := ListMarkersResponse{Markers: make([]MarkerResponse, 0, len(markers))}
	for _, m := range markers {
		res.Markers = append(res.Markers, MarkerResponse{
			ID:       m.ID,
			Type:     string(m.Type),
			Position: [2]float64{m.Position.Lat, m.Position.Lon},
			Anchor: AnchorResponse{
				Mode:      string(m.Anchor.Mode),
				Projected: m.Anchor.Projected,
				X:         m.Anchor.X,
				Y:         m.Anchor.Y,
			},
			Text:  m.Text,
			Icon:  m.Icon,
			Class: m.Class,
			Style: StyleResponse{
				Position:      m.Style.Position,
				Left:          m.Style.Left,
				Top:           m.Style.Top,
				Transform:     m.Style.Transform,
				ZIndex:        m.Style.ZIndex,
				PointerEvents: m.Style.PointerEvents,
			},
			Tooltip: TooltipResponse{
				Name:       m.Tooltip.Name,
				Timestamp:  m.Tooltip.Timestamp,
				PointCount: m.Tooltip.PointCount,
			},
		})
	}
	return res
}
