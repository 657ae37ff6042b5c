package handlers

import (
	"net/http"
	"strconv"

	"measurement-annotation-service/internal/api/dto"
	"measurement-annotation-service/internal/domain"
	"measurement-annotation-service/internal/units"
)

// FormatHandler exposes the unit formatter for single values.
type FormatHandler struct {
	Formatter    *units.Formatter
	DefaultUnits domain.UnitSystem
}

// Distance formats ?value= meters.
func (h *FormatHandler) Distance(w http.ResponseWriter, r *http.Request) {
	h.format(w, r, domain.MeasurementDistance)
}

// Area formats ?value= square meters.
func (h *FormatHandler) Area(w http.ResponseWriter, r *http.Request) {
	h.format(w, r, domain.MeasurementArea)
}

func (h *FormatHandler) format(w http.ResponseWriter, r *http.Request, t domain.MeasurementType) {
	q := r.URL.Query()

	raw := q.Get("value")
	if raw == "" {
		writeError(w, r, http.StatusBadRequest, "value is required")
		return
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "value must be a number")
		return
	}

	system, err := domain.ParseUnitSystem(q.Get("units"), h.DefaultUnits)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	text, _ := h.Formatter.Format(t, value, system.Imperial())
	writeJSON(w, r, http.StatusOK, dto.FormatResponse{Text: text})
}
