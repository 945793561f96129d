package dataset

import (
	"fmt"
	"os"

	"github.com/helioview/helioview/pkg/types"
	"gopkg.in/yaml.v3"
)

// DefaultCatalog mirrors the simulation export layout: two weather scenarios,
// each with a tracking run, a fixed-mount run, and the weather input that
// drove both.
func DefaultCatalog() types.Catalog {
	return types.Catalog{
		Scenarios: []types.Scenario{
			{
				ID:           "clear",
				Label:        "Clear Day",
				TrackingPath: "Data/clear_0.csv",
				FixedPath:    "Data/clear_1_fix_33.csv",
				WeatherPath:  "Data/phoenix_clear_1s.csv",
			},
			{
				ID:           "cloudy",
				Label:        "Cloudy Day",
				TrackingPath: "Data/cloudy_0.csv",
				FixedPath:    "Data/cloudy_1.csv",
				WeatherPath:  "Data/phoenix_cloudy_1s.csv",
			},
		},
		DiagramPath: "Data/MODEL.png",
	}
}

// LoadCatalog reads a scenario catalog from a YAML file.
func LoadCatalog(path string) (types.Catalog, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return types.Catalog{}, fmt.Errorf("failed to read catalog: %w", err)
	}
	var c types.Catalog
	if err := yaml.Unmarshal(b, &c); err != nil {
		return types.Catalog{}, fmt.Errorf("failed to parse catalog %s: %w", path, err)
	}
	if err := c.Validate(); err != nil {
		return types.Catalog{}, fmt.Errorf("invalid catalog %s: %w", path, err)
	}
	return c, nil
}
