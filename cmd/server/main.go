package main

import (
	"log"
	"net/http"
	"time"

	"measurement-annotation-service/internal/api"
	"measurement-annotation-service/internal/config"
)

// main is the application composition root.
// It builds the renderer from configuration and starts the HTTP server.
func main() {
	config.LoadDotEnv()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	renderer, err := cfg.NewRenderer()
	if err != nil {
		log.Fatal(err)
	}

	router := api.NewRouter(renderer, cfg.DefaultUnits)

	log.Printf(
		"Server listening addr=:%s locale=%s timezone=%s units=%s placement=%s",
		cfg.Port, cfg.Locale, cfg.Timezone, cfg.DefaultUnits, cfg.Placement,
	)
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}
