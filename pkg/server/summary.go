package server

import (
	"log/slog"
	"net/http"

	"github.com/helioview/helioview/pkg/analytics"
	"github.com/helioview/helioview/pkg/log"
)

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sc, err := s.scenarioFromRequest(r)
	if err != nil {
		writeJSONError(w, err.Error(), http.StatusNotFound)
		return
	}

	tracking, fixed, weather := s.store.ScenarioTables(ctx, sc)
	if tracking.Empty() && fixed.Empty() {
		log.Ctx(ctx).WarnContext(ctx, "no usable tables for scenario",
			slog.String("scenario", sc.ID),
			slog.String("trackingState", string(tracking.State())),
			slog.String("fixedState", string(fixed.State())),
		)
		writeJSONError(w, "data could not be loaded", http.StatusServiceUnavailable)
		return
	}

	writeJSON(w, analytics.Summarize(ctx, sc.ID, tracking, fixed, weather))
}
