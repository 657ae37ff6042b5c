package handlers

import (
	"bytes"
	"errors"
	"log"
	"net/http"

	"measurement-annotation-service/internal/annotation"
	"measurement-annotation-service/internal/api/dto"
	"measurement-annotation-service/internal/domain"
	"measurement-annotation-service/internal/platform/obs"
	"measurement-annotation-service/internal/services"
)

// AnnotationHandler renders measurement labels in JSON, HTML, and GeoJSON.
type AnnotationHandler struct {
	Renderer     *annotation.Renderer
	DefaultUnits domain.UnitSystem
}

// Markers returns marker descriptors as JSON.
func (h *AnnotationHandler) Markers(w http.ResponseWriter, r *http.Request) {
	markers, ok := h.render(w, r)
	if !ok {
		return
	}
	writeJSON(w, r, http.StatusOK, dto.NewListMarkersResponse(markers))
}

// HTML returns the markers as an HTML fragment for the host page.
func (h *AnnotationHandler) HTML(w http.ResponseWriter, r *http.Request) {
	markers, ok := h.render(w, r)
	if !ok {
		return
	}

	// Render into a buffer so a template failure can still produce a 500.
	var buf bytes.Buffer
	if err := annotation.WriteHTML(&buf, markers); err != nil {
		log.Printf("render html failed: req_id=%s err=%v", obs.RequestID(r.Context()), err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

// GeoJSON returns one Point feature per marker.
func (h *AnnotationHandler) GeoJSON(w http.ResponseWriter, r *http.Request) {
	markers, ok := h.render(w, r)
	if !ok {
		return
	}
	writeJSONType(w, r, http.StatusOK, "application/geo+json", annotation.ToGeoJSON(markers))
}

// Stylesheet serves the static label stylesheet.
func Stylesheet(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(annotation.Stylesheet()))
}

func (h *AnnotationHandler) render(w http.ResponseWriter, r *http.Request) ([]annotation.Marker, bool) {
	var req dto.AnnotateRequest
	if err := decodeJSONBody(r, &req); err != nil {
		if errors.Is(err, errBodyTrailingData) {
			writeError(w, r, http.StatusBadRequest, err.Error())
			return nil, false
		}
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return nil, false
	}

	measurements, err := dto.MeasurementsToDomain(req.Measurements)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return nil, false
	}

	svcReq := services.AnnotateRequest{
		Units:        req.Units,
		Measurements: measurements,
	}

	markers, err := services.Annotate(r.Context(), svcReq, h.Renderer, h.DefaultUnits)
	if err != nil {
		if errors.Is(err, services.ErrInvalidRequest) {
			writeError(w, r, http.StatusBadRequest, err.Error())
			return nil, false
		}
		log.Printf("annotate failed: req_id=%s err=%v", obs.RequestID(r.Context()), err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return nil, false
	}

	return markers, true
}
