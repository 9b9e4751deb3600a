package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler, swaggerEnabled bool) {
	mux.HandleFunc("GET /{$}", handler.Index)
	mux.HandleFunc("GET /healthz", handler.Healthz)
	mux.HandleFunc("GET /readyz", handler.Readyz)
	if !swaggerEnabled {
		return
	}

	mux.HandleFunc("GET /openapi.yaml", handler.OpenAPI)
	mux.HandleFunc("GET /docs", handler.SwaggerUI)
	mux.HandleFunc("GET /docs/", handler.SwaggerUI)
}

func registerTeamRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /teams", handler.ListTeams)
	mux.HandleFunc("POST /teams", handler.CreateTeam)
	mux.HandleFunc("GET /teams/{slug}", handler.GetTeam)
	mux.HandleFunc("PATCH /teams/{slug}", handler.UpdateTeam)
	mux.HandleFunc("DELETE /teams/{slug}", handler.DeleteTeam)
}

func registerGameRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /games", handler.ListGames)
	mux.HandleFunc("POST /games", handler.CreateGame)
	mux.HandleFunc("GET /games/{id}", handler.GetGame)
	mux.HandleFunc("PATCH /games/{id}", handler.UpdateGame)
	mux.HandleFunc("DELETE /games/{id}", handler.DeleteGame)
}
