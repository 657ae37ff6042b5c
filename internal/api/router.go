package api

import (
	"net/http"

	"measurement-annotation-service/internal/annotation"
	"measurement-annotation-service/internal/api/handlers"
	"measurement-annotation-service/internal/domain"

	"github.com/go-chi/chi/v5"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of configuration).
func NewRouter(renderer *annotation.Renderer, defaultUnits domain.UnitSystem) http.Handler {
	mux := chi.NewRouter()
	mux.Use(requestIDMiddleware, loggingMiddleware)
	mux.NotFound(handlers.NotFound)

	annotationHandler := &handlers.AnnotationHandler{
		Renderer:     renderer,
		DefaultUnits: defaultUnits,
	}
	formatHandler := &handlers.FormatHandler{
		Formatter:    renderer.Formatter,
		DefaultUnits: defaultUnits,
	}

	// Routes match every method so the handler can answer 405 with an Allow header.
	get := func(h http.HandlerFunc) http.HandlerFunc { return handlers.AllowMethod(http.MethodGet, h) }
	post := func(h http.HandlerFunc) http.HandlerFunc { return handlers.AllowMethod(http.MethodPost, h) }

	mux.HandleFunc("/health", get(handlers.Health))
	mux.Route("/annotations", func(r chi.Router) {
		r.HandleFunc("/", post(annotationHandler.Markers))
		r.HandleFunc("/html", post(annotationHandler.HTML))
		r.HandleFunc("/geojson", post(annotationHandler.GeoJSON))
		r.HandleFunc("/stylesheet.css", get(handlers.Stylesheet))
	})
	mux.Route("/format", func(r chi.Router) {
		r.HandleFunc("/distance", get(formatHandler.Distance))
		r.HandleFunc("/area", get(formatHandler.Area))
	})

	return mux
}
