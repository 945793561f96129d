// Package analytics computes the dashboard's derived metrics from normalized
// simulation tables. Every computation degrades to a zero value when its
// inputs are missing; nothing here is fatal.
package analytics

import (
	"context"
	"log/slog"
	"math"

	"github.com/helioview/helioview/pkg/dataset"
	"github.com/helioview/helioview/pkg/log"
	"github.com/helioview/helioview/pkg/types"
)

// noiseFloorW is the fixed panel-power threshold (in W) below which
// efficiency samples are discarded. It excludes night-time and near-zero
// readings that would otherwise divide by almost nothing.
const noiseFloorW = 1.0

// TotalEnergy returns the total harvested energy of a run in Wh. The
// cumulative energy column is non-decreasing, so its maximum is the total;
// we take the max rather than the last value to be safe against trailing
// partial samples. ok is false when the table has no usable energy column.
func TotalEnergy(t dataset.Table) (total float64, ok bool) {
	vals := t.Floats(dataset.ColEnergyLoad)
	if len(vals) == 0 {
		return 0, false
	}
	total = math.Inf(-1)
	for _, v := range vals {
		if math.IsNaN(v) {
			continue
		}
		if v > total {
			total = v
			ok = true
		}
	}
	if !ok {
		return 0, false
	}
	return total, true
}

// EfficiencyGain returns the tracking run's percentage energy gain over the
// fixed run. It is exactly 0 when fixedWH <= 0 to guard the division.
func EfficiencyGain(trackingWH, fixedWH float64) float64 {
	if fixedWH <= 0 {
		return 0
	}
	return (trackingWH - fixedWH) / fixedWH * 100
}

// ConverterEfficiency returns the instantaneous converter efficiency series
// (load power over panel power, in percent) for the rows where panel power
// exceeds the noise floor. Rows at or below the floor and rows with NaN
// samples are excluded entirely.
func ConverterEfficiency(t dataset.Table) types.Series {
	s := types.Series{Name: "Efficiency"}
	if !t.HasColumns(dataset.ColTime, dataset.ColLoadPower, dataset.ColPanelPower) {
		return s
	}

	times := t.Floats(dataset.ColTime)
	load := t.Floats(dataset.ColLoadPower)
	panel := t.Floats(dataset.ColPanelPower)

	for i := range times {
		if math.IsNaN(times[i]) || math.IsNaN(load[i]) || math.IsNaN(panel[i]) {
			continue
		}
		if panel[i] <= noiseFloorW {
			continue
		}
		s.Points = append(s.Points, types.SeriesPoint{
			X: times[i],
			Y: load[i] / panel[i] * 100,
		})
	}
	return s
}

// Summarize computes the headline metrics for a scenario from its tracking
// and fixed tables. Per-table load states ride along so the front end can
// explain missing numbers.
func Summarize(ctx context.Context, scenarioID string, tracking, fixed, weather dataset.Table) types.Summary {
	trackWH, trackOK := TotalEnergy(tracking)
	fixedWH, fixedOK := TotalEnergy(fixed)

	if !trackOK || !fixedOK {
		log.Ctx(ctx).DebugContext(ctx, "summary missing energy data",
			slog.String("scenario", scenarioID),
			slog.Bool("trackingOK", trackOK),
			slog.Bool("fixedOK", fixedOK),
		)
	}

	return types.Summary{
		Scenario:         scenarioID,
		TrackingEnergyWH: trackWH,
		FixedEnergyWH:    fixedWH,
		GainPercent:      EfficiencyGain(trackWH, fixedWH),
		TrackingState:    tracking.State(),
		FixedState:       fixed.State(),
		WeatherState:     weather.State(),
	}
}
