package fixtures

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"measurement-annotation-service/internal/domain"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "measurements.json")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func TestLoadMeasurements(t *testing.T) {
	path := writeFile(t, `[
		{"id": "d1", "name": "Trail", "type": "distance", "value": 1500,
		 "coordinates": [[51.5, -0.12], [51.6, -0.10]], "timestamp": "2026-01-01T08:00:00Z"}
	]`)

	ms, err := LoadMeasurements(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ms) != 1 {
		t.Fatalf("expected 1 measurement, got %d", len(ms))
	}

	m := ms[0]
	if m.Type != domain.MeasurementDistance {
		t.Errorf("Type = %q, want distance", m.Type)
	}
	if m.Coordinates[0] != (domain.Coordinates{Lat: 51.5, Lon: -0.12}) {
		t.Errorf("Coordinates[0] = %+v, want lat=51.5 lon=-0.12", m.Coordinates[0])
	}
	want := time.Date(2026, 1, 1, 8, 0, 0, 0, time.UTC)
	if !m.Timestamp.Equal(want) {
		t.Errorf("Timestamp = %v, want %v", m.Timestamp, want)
	}
}

func TestLoadMeasurementsErrors(t *testing.T) {
	if _, err := LoadMeasurements(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Errorf("expected error for missing file")
	}

	if _, err := LoadMeasurements(writeFile(t, `{"not": "an array"}`)); err == nil {
		t.Errorf("expected error for non-array json")
	}

	if _, err := LoadMeasurements(writeFile(t, `[{"id": "x", "type": "volume", "coordinates": [[0, 0]]}]`)); err == nil {
		t.Errorf("expected error for unknown type")
	}
}
