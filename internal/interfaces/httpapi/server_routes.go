package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerStandingsRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("POST /v1/wmfl/import", handler.ImportStandings)

	mux.HandleFunc("GET /v1/wmfl/teams", handler.ListTeams)
	mux.HandleFunc("POST /v1/wmfl/teams", handler.CreateTeam)
	mux.HandleFunc("GET /v1/wmfl/teams/{teamID}", handler.GetTeam)
	mux.HandleFunc("PUT /v1/wmfl/teams/{teamID}", handler.UpdateTeam)
	mux.HandleFunc("DELETE /v1/wmfl/teams/{teamID}", handler.DeleteTeam)

	mux.HandleFunc("POST /v1/wmfl/sync", handler.RunSync)
	mux.HandleFunc("GET /v1/wmfl/sync/logs", handler.ListSyncLogs)
}
