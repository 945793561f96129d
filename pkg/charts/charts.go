// Package charts renders the dashboard's fixed chart set as PNGs. Each
// renderer takes normalized tables and fails with ErrMissingColumns when the
// table cannot supply the columns that chart needs; the caller simply omits
// the chart.
package charts

import (
	"errors"
	"fmt"
	"io"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/helioview/helioview/pkg/analytics"
	"github.com/helioview/helioview/pkg/dataset"
)

// ErrMissingColumns indicates the source table lacks the columns a chart
// requires.
var ErrMissingColumns = errors.New("required columns missing")

const (
	chartWidth  = 900
	chartHeight = 420

	// Trace colors, matching the dashboard palette.
	colorTracking    = "00CC96"
	colorFixed       = "EF553B"
	colorPanel       = "636EFA"
	colorLoad        = "00CC96"
	colorGHI         = "FFC107"
	colorDNI         = "FF5722"
	colorDHI         = "03A9F4"
	colorTemperature = "AB63FA"
)

func lineStyle(hex string) chart.Style {
	return chart.Style{
		StrokeColor: drawing.ColorFromHex(hex),
		StrokeWidth: 2,
	}
}

func dashedStyle(hex string) chart.Style {
	s := lineStyle(hex)
	s.StrokeDashArray = []float64{5, 5}
	return s
}

// pointStyle renders points only, no connecting line.
func pointStyle(hex string) chart.Style {
	return chart.Style{
		StrokeWidth: 0,
		DotWidth:    3,
		DotColor:    drawing.ColorFromHex(hex),
	}
}

func render(w io.Writer, title, xName, yName string, yRange *chart.ContinuousRange, series []chart.Series) error {
	yAxis := chart.YAxis{Name: yName}
	if yRange != nil {
		yAxis.Range = yRange
	}
	ch := chart.Chart{
		Title:      title,
		Width:      chartWidth,
		Height:     chartHeight,
		Background: chart.Style{Padding: chart.Box{Top: 14, Left: 16, Right: 12, Bottom: 48}},
		XAxis:      chart.XAxis{Name: xName},
		YAxis:      yAxis,
		Series:     series,
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}
	return ch.Render(chart.PNG, w)
}

// xySeries builds a line series from two table columns.
func xySeries(name string, t dataset.Table, xCol, yCol string, st chart.Style) (chart.ContinuousSeries, bool) {
	if !t.HasColumns(xCol, yCol) {
		return chart.ContinuousSeries{}, false
	}
	return chart.ContinuousSeries{
		Name:    name,
		XValues: t.Floats(xCol),
		YValues: t.Floats(yCol),
		Style:   st,
	}, true
}

// Power renders instantaneous load power for the tracking run against the
// fixed run. At least one run must carry power data.
func Power(w io.Writer, tracking, fixed dataset.Table) error {
	var series []chart.Series
	if s, ok := xySeries("Tracking Output", tracking, dataset.ColTime, dataset.ColLoadPower, lineStyle(colorTracking)); ok {
		series = append(series, s)
	}
	if s, ok := xySeries("Fixed Output", fixed, dataset.ColTime, dataset.ColLoadPower, dashedStyle(colorFixed)); ok {
		series = append(series, s)
	}
	if len(series) == 0 {
		return fmt.Errorf("power chart: %w", ErrMissingColumns)
	}
	return render(w, "Instantaneous Power Output at Load", "Time (h)", "Power (W)", nil, series)
}

// CumulativeEnergy renders the cumulative energy harvest of both runs.
func CumulativeEnergy(w io.Writer, tracking, fixed dataset.Table) error {
	var series []chart.Series
	if s, ok := xySeries("Tracking Energy", tracking, dataset.ColTime, dataset.ColEnergyLoad, lineStyle(colorTracking)); ok {
		series = append(series, s)
	}
	if s, ok := xySeries("Fixed Energy", fixed, dataset.ColTime, dataset.ColEnergyLoad, lineStyle(colorFixed)); ok {
		series = append(series, s)
	}
	if len(series) == 0 {
		return fmt.Errorf("energy chart: %w", ErrMissingColumns)
	}
	return render(w, "Cumulative Energy Harvest", "Time (h)", "Energy (Wh)", nil, series)
}

// Conversion renders panel power against load power for the tracking run,
// showing converter losses.
func Conversion(w io.Writer, tracking dataset.Table) error {
	panel, okPanel := xySeries("Panel Power (Input)", tracking, dataset.ColTime, dataset.ColPanelPower, lineStyle(colorPanel))
	load, okLoad := xySeries("Load Power (Output)", tracking, dataset.ColTime, dataset.ColLoadPower, lineStyle(colorLoad))
	if !okPanel || !okLoad {
		return fmt.Errorf("conversion chart: %w", ErrMissingColumns)
	}
	return render(w, "Power Conversion: Input vs Output", "Time (h)", "Power (W)", nil, []chart.Series{panel, load})
}

// Efficiency renders the instantaneous converter efficiency. The y-axis is
// pinned to 90-100% so the interesting range fills the plot.
func Efficiency(w io.Writer, tracking dataset.Table) error {
	eff := analytics.ConverterEfficiency(tracking)
	if len(eff.Points) == 0 {
		return fmt.Errorf("efficiency chart: %w", ErrMissingColumns)
	}
	xs := make([]float64, len(eff.Points))
	ys := make([]float64, len(eff.Points))
	for i, p := range eff.Points {
		xs[i] = p.X
		ys[i] = p.Y
	}
	series := []chart.Series{chart.ContinuousSeries{
		Name:    "Efficiency",
		XValues: xs,
		YValues: ys,
		Style:   lineStyle(colorTracking),
	}}
	return render(w, "Converter Efficiency (%)", "Time (h)", "Efficiency (%)",
		&chart.ContinuousRange{Min: 90, Max: 100}, series)
}

// Temperature renders the ambient temperature from the weather input.
func Temperature(w io.Writer, weather dataset.Table) error {
	s, ok := xySeries("Temperature", weather, dataset.ColTime, dataset.ColTemperature, lineStyle(colorTemperature))
	if !ok {
		return fmt.Errorf("temperature chart: %w", ErrMissingColumns)
	}
	return render(w, "Ambient Temperature (C)", "Time (h)", "Temperature (C)", nil, []chart.Series{s})
}

// Irradiance renders the GHI/DNI/DHI components from the weather input. GHI
// is required; the direct and diffuse components are added when present.
func Irradiance(w io.Writer, weather dataset.Table) error {
	ghi, ok := xySeries("GHI", weather, dataset.ColTime, dataset.ColGHI, lineStyle(colorGHI))
	if !ok {
		return fmt.Errorf("irradiance chart: %w", ErrMissingColumns)
	}
	series := []chart.Series{ghi}
	if s, ok := xySeries("DNI", weather, dataset.ColTime, dataset.ColDNI, lineStyle(colorDNI)); ok {
		series = append(series, s)
	}
	if s, ok := xySeries("DHI", weather, dataset.ColTime, dataset.ColDHI, lineStyle(colorDHI)); ok {
		series = append(series, s)
	}
	return render(w, "Solar Irradiance (W/m2)", "Time (h)", "Irradiance (W/m2)", nil, series)
}

// MPPTPanel renders the panel-side V-I operating points, showing where the
// tracker hunted for the maximum power point.
func MPPTPanel(w io.Writer, tracking dataset.Table) error {
	s, ok := xySeries("Operating Points", tracking, dataset.ColPVVoltage, dataset.ColPVCurrent, pointStyle(colorPanel))
	if !ok {
		return fmt.Errorf("mppt panel chart: %w", ErrMissingColumns)
	}
	return render(w, "MPPT Trajectory at Panel", "Panel Voltage (V)", "Panel Current (A)", nil, []chart.Series{s})
}

// MPPTLoad renders the load-side V-I operating points.
func MPPTLoad(w io.Writer, tracking dataset.Table) error {
	s, ok := xySeries("Operating Points", tracking, dataset.ColLoadVoltage, dataset.ColLoadCurrent, pointStyle(colorLoad))
	if !ok {
		return fmt.Errorf("mppt load chart: %w", ErrMissingColumns)
	}
	return render(w, "MPPT Trajectory at Load", "Load Voltage (V)", "Load Current (A)", nil, []chart.Series{s})
}
