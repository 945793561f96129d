package types

import (
	"fmt"
)

// LoadState describes the outcome of loading a simulation CSV. The three
// states are deliberately distinct so downstream code can tell a missing file
// apart from a file that exists but could not be parsed.
type LoadState string

const (
	// StateLoaded means the file was parsed and normalized successfully.
	StateLoaded LoadState = "loaded"
	// StateMissing means the path did not resolve to an existing file.
	StateMissing LoadState = "missing"
	// StateParseError means the file exists but could not be parsed.
	StateParseError LoadState = "parse_error"
)

// Scenario is one weather scenario: a pair of simulation output traces
// (tracking mount vs. fixed mount) plus the weather input trace that drove
// both runs.
type Scenario struct {
	ID    string `json:"id" yaml:"id"`
	Label string `json:"label" yaml:"label"`

	// CSV paths, relative to the data directory.
	TrackingPath string `json:"-" yaml:"tracking"`
	FixedPath    string `json:"-" yaml:"fixed"`
	WeatherPath  string `json:"-" yaml:"weather"`
}

// Validate checks that the scenario has everything the dashboard needs.
// The weather trace is optional; its charts are omitted when absent.
func (s Scenario) Validate() error {
	if s.ID == "" {
		return fmt.Errorf("scenario missing id")
	}
	if s.Label == "" {
		return fmt.Errorf("scenario %s missing label", s.ID)
	}
	if s.TrackingPath == "" {
		return fmt.Errorf("scenario %s missing tracking path", s.ID)
	}
	if s.FixedPath == "" {
		return fmt.Errorf("scenario %s missing fixed path", s.ID)
	}
	return nil
}

// Catalog maps scenario ids to their source files. It is static for the
// lifetime of the process.
type Catalog struct {
	Scenarios []Scenario `json:"scenarios" yaml:"scenarios"`
	// DiagramPath points at the model diagram PNG. Optional.
	DiagramPath string `json:"-" yaml:"diagram"`
}

// Scenario returns the scenario with the given id.
func (c Catalog) Scenario(id string) (Scenario, bool) {
	for _, s := range c.Scenarios {
		if s.ID == id {
			return s, true
		}
	}
	return Scenario{}, false
}

// Validate checks every scenario and rejects duplicate ids.
func (c Catalog) Validate() error {
	if len(c.Scenarios) == 0 {
		return fmt.Errorf("catalog has no scenarios")
	}
	seen := make(map[string]bool, len(c.Scenarios))
	for _, s := range c.Scenarios {
		if err := s.Validate(); err != nil {
			return err
		}
		if seen[s.ID] {
			return fmt.Errorf("duplicate scenario id: %s", s.ID)
		}
		seen[s.ID] = true
	}
	return nil
}

// Summary is the response type for the summary endpoint. Energy totals are
// the maxima of the cumulative energy columns, in Wh.
type Summary struct {
	Scenario string `json:"scenario"`

	TrackingEnergyWH float64 `json:"trackingEnergyWH"`
	FixedEnergyWH    float64 `json:"fixedEnergyWH"`
	// GainPercent is (tracking - fixed) / fixed * 100, 0 when fixed <= 0.
	GainPercent float64 `json:"gainPercent"`

	TrackingState LoadState `json:"trackingState"`
	FixedState    LoadState `json:"fixedState"`
	WeatherState  LoadState `json:"weatherState"`
}

// SeriesPoint is one sample of a chart series. X is elapsed time in hours.
type SeriesPoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Series is a named chart trace.
type Series struct {
	Name   string        `json:"name"`
	Points []SeriesPoint `json:"points"`
}
