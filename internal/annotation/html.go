package annotation

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"strconv"
)

//go:embed templates/markers.html.tmpl
var templateFS embed.FS

// Parsed once at package init; a broken template is a build defect.
var markersTemplate = template.Must(template.ParseFS(templateFS, "templates/markers.html.tmpl"))

type markerView struct {
	ID        string
	Type      string
	Class     string
	Style     template.CSS
	Lat       string
	Lon       string
	Icon      string
	Text      string
	Name      string
	Timestamp string
	Points    string
}

// The inline style is rebuilt from the anchor; m.Style is caller-mutable and never reaches the markup.
func viewOf(m Marker) markerView {
	return markerView{
		ID:        m.ID,
		Type:      string(m.Type),
		Class:     m.Class,
		Style:     styleFor(m.Anchor).css(),
		Lat:       strconv.FormatFloat(m.Position.Lat, 'f', -1, 64),
		Lon:       strconv.FormatFloat(m.Position.Lon, 'f', -1, 64),
		Icon:      m.Icon,
		Text:      m.Text,
		Name:      m.Tooltip.Name,
		Timestamp: m.Tooltip.Timestamp,
		Points:    m.Tooltip.PointsLabel(),
	}
}

// WriteHTML renders markers as an HTML fragment, one element per marker.
// Hosts wire clicks through the data-measurement-id attribute.
func WriteHTML(w io.Writer, markers []Marker) error {
	views := make([]markerView, 0, len(markers))
	for _, m := range markers {
		views = append(views, viewOf(m))
	}

	if err := markersTemplate.ExecuteTemplate(w, "markers.html.tmpl", views); err != nil {
		return fmt.Errorf("write html: execute markers template: %w", err)
	}
	return nil
}
