package config

import (
	"fmt"
	"log"
	"os"
	"strings"

	"measurement-annotation-service/internal/annotation"
	"measurement-annotation-service/internal/domain"
	"measurement-annotation-service/internal/units"

	"github.com/joho/godotenv"
	"golang.org/x/text/language"
)

// Config holds process-wide settings for rendering annotations.
type Config struct {
	Port         string
	Locale       language.Tag
	Timezone     string
	TimeLayout   string
	DefaultUnits domain.UnitSystem
	Placement    annotation.Placement
}

// LoadDotEnv reads .env into the environment when present.
func LoadDotEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}
}

func Get(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

// Load builds a Config from environment variables, validating every value.
func Load() (Config, error) {
	cfg := Config{
		Port:       Get("PORT", "8080"),
		Timezone:   Get("ANNOTATION_TIMEZONE", "UTC"),
		TimeLayout: Get("ANNOTATION_TIME_LAYOUT", units.DefaultTimeLayout),
	}

	locale := Get("ANNOTATION_LOCALE", "en")
	tag, err := language.Parse(locale)
	if err != nil {
		return Config{}, fmt.Errorf("load config: ANNOTATION_LOCALE=%q: %w", locale, err)
	}
	cfg.Locale = tag

	if _, err := units.LoadLocation(cfg.Timezone); err != nil {
		return Config{}, fmt.Errorf("load config: ANNOTATION_TIMEZONE: %w", err)
	}

	cfg.DefaultUnits, err = domain.ParseUnitSystem(Get("DEFAULT_UNITS", string(domain.Metric)), domain.Metric)
	if err != nil {
		return Config{}, fmt.Errorf("load config: DEFAULT_UNITS: %w", err)
	}

	cfg.Placement, err = annotation.ParsePlacement(Get("ANNOTATION_PLACEMENT", string(annotation.PlacementCentroid)))
	if err != nil {
		return Config{}, fmt.Errorf("load config: ANNOTATION_PLACEMENT: %w", err)
	}

	return cfg, nil
}

// NewRenderer builds the renderer described by cfg.
// The projector is left unset; hosts with a live map surface attach one.
func (c Config) NewRenderer() (*annotation.Renderer, error) {
	loc, err := units.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("new renderer: %w", err)
	}

	r := annotation.NewRenderer(units.NewFormatter(c.Locale))
	r.Timestamps = units.TimestampFormatter{Location: loc, Layout: c.TimeLayout}
	r.Placement = c.Placement
	return r, nil
}
