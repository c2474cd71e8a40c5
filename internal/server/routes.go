package server

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/swaggest/swgui/v5emb"

	"github.com/obvius1/Location-Search-Game/internal/exclusion"
)

func addRoutes(r chi.Router, logger *slog.Logger, deps Deps) {
	broker := NewBroker()
	builder := exclusion.NewBuilder(deps.Dataset)

	r.Get("/openapi.json", handleOpenAPI())
	r.Mount("/docs", v5emb.New("Location Search Game API", "/openapi.json", "/docs"))
	r.Get("/healthz", handleHealth(logger, deps.DB))
	r.Get("/api/dataset", handleDataset(deps.Dataset))

	r.Route("/api/games", func(r chi.Router) {
		r.Post("/", handleCreateGame(deps.Store, deps.Deck))
		r.Route("/{gameID}", func(r chi.Router) {
			r.Get("/", handleGetGame(deps.Store, deps.Deck))
			r.Delete("/", handleResetGame(deps.Store, deps.Deck, broker))
			r.Post("/location", handleConfirmLocation(deps.Store, deps.Deck, deps.Dataset))
			r.Post("/cards/{cardID}/answer", handleAnswerCard(deps.Store, deps.Deck, deps.Dataset, broker))
			r.Put("/cards/{cardID}/answer", handleAnswerCard(deps.Store, deps.Deck, deps.Dataset, broker))
			r.Post("/cards/{cardID}/discard", handleDiscardCard(deps.Store, deps.Deck, broker))
			r.Get("/regions", handleRegions(deps.Store, deps.Deck, builder))
			r.Get("/events", handleEvents(deps.Store, broker))
		})
	})

	r.Post("/api/admin/login", handleAdminLogin(deps.Admin))
	r.Post("/api/admin/logout", handleAdminLogout(deps.Admin))
	r.Get("/api/admin/me", handleAdminMe(deps.Admin))
	r.Route("/api/admin/games", func(r chi.Router) {
		r.Use(adminAuthMiddleware(deps.Admin))
		r.Get("/", handleAdminListGames(deps.Store))
		r.Delete("/{gameID}", handleAdminDeleteGame(deps.Store, broker))
	})

	if deps.SPADir != "" {
		if info, err := os.Stat(deps.SPADir); err == nil && info.IsDir() {
			logger.Info("serving SPA", "dir", deps.SPADir)
			r.NotFound(handleSPA(deps.SPADir))
		}
	}
}
