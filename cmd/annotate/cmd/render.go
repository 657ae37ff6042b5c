package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"measurement-annotation-service/internal/adapters/fixtures"
	"measurement-annotation-service/internal/annotation"
	"measurement-annotation-service/internal/api/dto"
	"measurement-annotation-service/internal/config"
	"measurement-annotation-service/internal/services"

	"github.com/spf13/cobra"
)

const (
	formatText    = "text"
	formatJSON    = "json"
	formatHTML    = "html"
	formatGeoJSON = "geojson"
)

type renderOptions struct {
	in       string
	units    string
	format   string
	selectID string
}

func newRenderCmd() *cobra.Command {
	opts := &renderOptions{}

	c := &cobra.Command{
		Use:   "render",
		Short: "Render markers for a JSON file of measurements",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, opts)
		},
	}

	c.Flags().StringVar(&opts.in, "in", "", "path to a JSON array of measurements")
	c.Flags().StringVar(&opts.units, "units", "", "metric or imperial (default from DEFAULT_UNITS)")
	c.Flags().StringVar(&opts.format, "format", formatText, "output format: text, json, html, geojson")
	c.Flags().StringVar(&opts.selectID, "select", "", "click the marker with this measurement id")
	_ = c.MarkFlagRequired("in")

	return c
}

func runRender(cmd *cobra.Command, opts *renderOptions) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	renderer, err := cfg.NewRenderer()
	if err != nil {
		return err
	}

	measurements, err := fixtures.LoadMeasurements(opts.in)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	req := services.AnnotateRequest{
		Units:        opts.units,
		Measurements: measurements,
		OnClick: func(id string) {
			fmt.Fprintf(cmd.ErrOrStderr(), "selected id=%s\n", id)
		},
	}

	markers, err := services.Annotate(cmd.Context(), req, renderer, cfg.DefaultUnits)
	if err != nil {
		return err
	}

	if err := writeMarkers(out, markers, opts.format); err != nil {
		return err
	}

	if opts.selectID != "" {
		return clickMarker(markers, opts.selectID)
	}
	return nil
}

func writeMarkers(w io.Writer, markers []annotation.Marker, format string) error {
	switch strings.ToLower(format) {
	case formatText:
		return writeText(w, markers)
	case formatJSON:
		return writeIndentedJSON(w, dto.NewListMarkersResponse(markers))
	case formatHTML:
		return annotation.WriteHTML(w, markers)
	case formatGeoJSON:
		return writeIndentedJSON(w, annotation.ToGeoJSON(markers))
	default:
		return fmt.Errorf("render: unknown format %q (want text, json, html, or geojson)", format)
	}
}

func writeText(w io.Writer, markers []annotation.Marker) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTYPE\tTEXT\tLAT\tLON\tNAME\tRECORDED\tPOINTS")
	for _, m := range markers {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%.6f\t%.6f\t%s\t%s\t%d\n",
			m.ID, m.Type, m.Text, m.Position.Lat, m.Position.Lon,
			m.Tooltip.Name, m.Tooltip.Timestamp, m.Tooltip.PointCount,
		)
	}
	return tw.Flush()
}

func writeIndentedJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func clickMarker(markers []annotation.Marker, id string) error {
	for _, m := range markers {
		if m.ID == id {
			m.Click()
			return nil
		}
	}
	return fmt.Errorf("render: no marker with id %q", id)
}
