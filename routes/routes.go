package routes

import (
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/recleague/league-system/handlers"
	"github.com/recleague/league-system/middleware"
)

// SetupRoutes wires every HTTP endpoint. Reads are public so the league site
// can render schedules and standings; writes require an admin token.
func SetupRoutes(
	router *chi.Mux,
	auth *middleware.Authenticator,
	authHandler *handlers.AuthHandler,
	seasonHandler *handlers.SeasonHandler,
	teamHandler *handlers.TeamHandler,
	gameHandler *handlers.GameHandler,
	swissHandler *handlers.SwissHandler,
	webSocketHandler *handlers.WebSocketHandler,
) {
	router.Use(chiMiddleware.RequestID)
	router.Use(chiMiddleware.RealIP)
	router.Use(chiMiddleware.Logger)
	router.Use(chiMiddleware.Recoverer)

	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	router.Post("/auth/register", authHandler.Register)
	router.Post("/auth/login", authHandler.Login)
	router.Group(func(r chi.Router) {
		r.Use(auth.Authenticate)
		r.Get("/auth/me", authHandler.Me)
	})

	router.Route("/seasons", func(r chi.Router) {
		r.Get("/", seasonHandler.ListSeasons)
		r.Get("/{seasonID}", seasonHandler.GetSeason)
		r.Get("/{seasonID}/teams", teamHandler.ListTeamsBySeason)
		r.Get("/{seasonID}/games", gameHandler.ListGamesBySeason)

		r.Get("/{seasonID}/swiss/rankings", swissHandler.GetRankings)
		r.Get("/{seasonID}/swiss/seeding", swissHandler.GetSeeding)
		r.Get("/{seasonID}/swiss/rounds/{round}/pairings", swissHandler.GetRoundPairings)

		r.Group(func(r chi.Router) {
			r.Use(auth.Authenticate)
			r.Use(auth.RequireAdmin)

			r.Post("/", seasonHandler.CreateSeason)
			r.Patch("/{seasonID}/status", seasonHandler.UpdateSeasonStatus)
			r.Put("/{seasonID}/swiss/seeding", swissHandler.SetSeeding)
			r.Patch("/{seasonID}/swiss/seeding/move", swissHandler.MoveSeed)
		})
	})

	router.Route("/teams", func(r chi.Router) {
		r.Get("/{teamID}", teamHandler.GetTeam)

		r.Group(func(r chi.Router) {
			r.Use(auth.Authenticate)
			r.Use(auth.RequireAdmin)

			r.Post("/", teamHandler.CreateTeam)
			r.Patch("/{teamID}", teamHandler.UpdateTeamName)
			r.Put("/{teamID}/logo", teamHandler.UploadLogo)
			r.Patch("/{teamID}/placement", teamHandler.SetPlacement)
		})
	})

	router.Route("/games", func(r chi.Router) {
		r.Get("/{gameID}", gameHandler.GetGame)

		r.Group(func(r chi.Router) {
			r.Use(auth.Authenticate)
			r.Use(auth.RequireAdmin)

			r.Post("/", gameHandler.CreateGame)
			r.Put("/{gameID}/score", gameHandler.SubmitScore)
			r.Patch("/{gameID}/schedule", gameHandler.RescheduleGame)
		})
	})

	router.Get("/ws/seasons/{seasonID}", webSocketHandler.ServeWs)
}
