package server

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/helioview/helioview/pkg/analytics"
	"github.com/helioview/helioview/pkg/log"
	"github.com/helioview/helioview/pkg/metrics"
	"github.com/helioview/helioview/pkg/report"
)

func (s *Server) handleExportXLSX(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sc, err := s.scenarioFromRequest(r)
	if err != nil {
		writeJSONError(w, err.Error(), http.StatusNotFound)
		return
	}

	tracking, fixed, weather := s.store.ScenarioTables(ctx, sc)
	if tracking.Empty() && fixed.Empty() {
		writeJSONError(w, "data could not be loaded", http.StatusServiceUnavailable)
		return
	}
	sum := analytics.Summarize(ctx, sc.ID, tracking, fixed, weather)

	start := time.Now()
	b, err := report.BuildWorkbook(sc, sum, tracking, fixed, weather)
	if err != nil {
		metrics.ObserveExport("xlsx", metrics.ResultError, time.Since(start))
		log.Ctx(ctx).ErrorContext(ctx, "failed to build workbook",
			slog.String("scenario", sc.ID), slog.Any("error", err))
		writeJSONError(w, "failed to build workbook", http.StatusInternalServerError)
		return
	}
	metrics.ObserveExport("xlsx", metrics.ResultSuccess, time.Since(start))

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s.xlsx", sc.ID))
	if _, err := w.Write(b); err != nil {
		panic(http.ErrAbortHandler)
	}
}

func (s *Server) handleExportPDF(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sc, err := s.scenarioFromRequest(r)
	if err != nil {
		writeJSONError(w, err.Error(), http.StatusNotFound)
		return
	}

	tracking, fixed, weather := s.store.ScenarioTables(ctx, sc)
	if tracking.Empty() && fixed.Empty() {
		writeJSONError(w, "data could not be loaded", http.StatusServiceUnavailable)
		return
	}
	sum := analytics.Summarize(ctx, sc.ID, tracking, fixed, weather)

	start := time.Now()
	b, err := report.BuildSummaryPDF(sc, sum, tracking, fixed)
	if err != nil {
		metrics.ObserveExport("pdf", metrics.ResultError, time.Since(start))
		log.Ctx(ctx).ErrorContext(ctx, "failed to build pdf",
			slog.String("scenario", sc.ID), slog.Any("error", err))
		writeJSONError(w, "failed to build pdf", http.StatusInternalServerError)
		return
	}
	metrics.ObserveExport("pdf", metrics.ResultSuccess, time.Since(start))

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s.pdf", sc.ID))
	if _, err := w.Write(b); err != nil {
		panic(http.ErrAbortHandler)
	}
}
