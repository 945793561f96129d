package server

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/helioview/helioview/pkg/log"
)

// handleDiagram serves the model diagram PNG. A missing asset is a warning,
// not a failure: the rest of the dashboard proceeds without it.
func (s *Server) handleDiagram(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	path := s.store.DiagramPath()
	if path == "" {
		writeJSONError(w, "no diagram configured", http.StatusNotFound)
		return
	}

	if _, err := os.Stat(path); err != nil {
		log.Ctx(ctx).WarnContext(ctx, "diagram image not found",
			slog.String("path", path))
		writeJSONError(w, "diagram not found at "+path, http.StatusNotFound)
		return
	}

	w.Header().Set("Cache-Control", "public, max-age=3600")
	http.ServeFile(w, r, path)
}
