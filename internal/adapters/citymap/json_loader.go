package citymap

import (
	"city-route-service/internal/domain"
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// LoadJSON reads a city map definition from jsonPath and validates it.
// An empty path returns the built-in sample city.
func LoadJSON(jsonPath string) (*domain.CityMap, error) {
	if strings.TrimSpace(jsonPath) == "" {
		return domain.SampleCity(), nil
	}

	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return nil, fmt.Errorf("load city map: read %q: %w", jsonPath, err)
	}

	var m domain.CityMap
	if err := json.Unmarshal(bytes, &m); err != nil {
		return nil, fmt.Errorf("load city map: parse json: %w", err)
	}

	for i := range m.Locations {
		m.Locations[i].Name = strings.TrimSpace(m.Locations[i].Name)
	}

	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("load city map %q: %w", jsonPath, err)
	}

	return &m, nil
}
