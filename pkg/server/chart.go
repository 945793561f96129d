package server

import (
	"bytes"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/helioview/helioview/pkg/charts"
	"github.com/helioview/helioview/pkg/log"
	"github.com/helioview/helioview/pkg/metrics"
)

// handleChart renders one of the fixed dashboard charts as a PNG. The chart
// name is the last path segment, with an optional .png suffix.
func (s *Server) handleChart(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	name := strings.TrimSuffix(r.PathValue("name"), ".png")

	sc, err := s.scenarioFromRequest(r)
	if err != nil {
		writeJSONError(w, err.Error(), http.StatusNotFound)
		return
	}
	tracking, fixed, weather := s.store.ScenarioTables(ctx, sc)

	start := time.Now()
	var buf bytes.Buffer
	switch name {
	case "power":
		err = charts.Power(&buf, tracking, fixed)
	case "energy":
		err = charts.CumulativeEnergy(&buf, tracking, fixed)
	case "conversion":
		err = charts.Conversion(&buf, tracking)
	case "efficiency":
		err = charts.Efficiency(&buf, tracking)
	case "temperature":
		err = charts.Temperature(&buf, weather)
	case "irradiance":
		err = charts.Irradiance(&buf, weather)
	case "mppt-panel":
		err = charts.MPPTPanel(&buf, tracking)
	case "mppt-load":
		err = charts.MPPTLoad(&buf, tracking)
	default:
		writeJSONError(w, "unknown chart: "+name, http.StatusNotFound)
		return
	}

	if err != nil {
		metrics.ObserveChartRender(name, metrics.ResultError, time.Since(start))
		if errors.Is(err, charts.ErrMissingColumns) {
			writeJSONError(w, err.Error(), http.StatusNotFound)
			return
		}
		log.Ctx(ctx).ErrorContext(ctx, "failed to render chart",
			slog.String("chart", name), slog.Any("error", err))
		writeJSONError(w, "failed to render chart", http.StatusInternalServerError)
		return
	}
	metrics.ObserveChartRender(name, metrics.ResultSuccess, time.Since(start))

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	if _, err := w.Write(buf.Bytes()); err != nil {
		panic(http.ErrAbortHandler)
	}
}
