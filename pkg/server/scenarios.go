package server

import (
	"net/http"
)

// scenarioInfo is the selector payload for one scenario.
type scenarioInfo struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

func (s *Server) handleListScenarios(w http.ResponseWriter, r *http.Request) {
	catalog := s.store.Catalog()
	scenarios := make([]scenarioInfo, 0, len(catalog.Scenarios))
	for _, sc := range catalog.Scenarios {
		scenarios = append(scenarios, scenarioInfo{ID: sc.ID, Label: sc.Label})
	}
	writeJSON(w, scenarios)
}
