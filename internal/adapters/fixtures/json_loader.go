package fixtures

import (
	"encoding/json"
	"fmt"
	"os"

	"measurement-annotation-service/internal/api/dto"
	"measurement-annotation-service/internal/domain"
)

// LoadMeasurements reads a JSON array of measurements from disk.
// The file uses the same wire format as the HTTP API. Nothing is written back.
func LoadMeasurements(jsonPath string) ([]domain.Measurement, error) {
	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return nil, fmt.Errorf("load measurements: read %q: %w", jsonPath, err)
	}

	var data []dto.MeasurementPayload
	if err := json.Unmarshal(bytes, &data); err != nil {
		return nil, fmt.Errorf("load measurements: parse json: %w", err)
	}

	ms, err := dto.MeasurementsToDomain(data)
	if err != nil {
		return nil, fmt.Errorf("load measurements: %w", err)
	}

	return ms, nil
}
