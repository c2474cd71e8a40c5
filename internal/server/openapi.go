package server

import (
	"encoding/json"
	"net/http"

	openapi "github.com/swaggest/openapi-go"
	"github.com/swaggest/openapi-go/openapi3"
)

// ErrorResponse is returned for all error responses.
type ErrorResponse struct {
	Error string `json:"error"`
}

func newOpenAPISpec() *openapi3.Spec {
	r := openapi3.NewReflector()
	r.Spec.Info.Title = "Location Search Game API"
	r.Spec.Info.Version = "0.1.0"
	r.Spec.Info.WithDescription("Backend API for the location deduction game: confirm a hiding spot, answer geographic questions, watch the map shrink.")

	// GET /healthz
	getHealthz, _ := r.NewOperationContext(http.MethodGet, "/healthz")
	getHealthz.SetSummary("Health check")
	getHealthz.SetDescription("Returns the health status of backend dependencies.")
	getHealthz.AddRespStructure(HealthResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	getHealthz.AddRespStructure(HealthResponse{}, openapi.WithHTTPStatus(http.StatusServiceUnavailable))
	_ = r.AddOperation(getHealthz)

	// GET /api/dataset
	getDataset, _ := r.NewOperationContext(http.MethodGet, "/api/dataset")
	getDataset.SetSummary("Dataset summary")
	getDataset.SetDescription("Names and points of the loaded geography dataset.")
	getDataset.AddRespStructure(DatasetResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(getDataset)

	// POST /api/games
	postGame, _ := r.NewOperationContext(http.MethodPost, "/api/games")
	postGame.SetSummary("Create game")
	postGame.SetDescription("Starts a new game. A shuffle seed may be supplied; one is generated otherwise.")
	postGame.AddReqStructure(CreateGameRequest{})
	postGame.AddRespStructure(GameResponse{}, openapi.WithHTTPStatus(http.StatusCreated))
	postGame.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	_ = r.AddOperation(postGame)

	// GET /api/games/{gameID}
	getGame, _ := r.NewOperationContext(http.MethodGet, "/api/games/{gameID}")
	getGame.SetSummary("Get game state")
	getGame.SetDescription("Returns the flop, retired cards, and recorded answers. The hider's point is never included.")
	getGame.AddRespStructure(GameResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	getGame.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusNotFound))
	_ = r.AddOperation(getGame)

	// DELETE /api/games/{gameID}
	deleteGame, _ := r.NewOperationContext(http.MethodDelete, "/api/games/{gameID}")
	deleteGame.SetSummary("Reset game")
	deleteGame.SetDescription("Restarts the game with the same seed: fresh flop, no location, no answers.")
	deleteGame.AddRespStructure(GameResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	deleteGame.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusNotFound))
	_ = r.AddOperation(deleteGame)

	// POST /api/games/{gameID}/location
	postLocation, _ := r.NewOperationContext(http.MethodPost, "/api/games/{gameID}/location")
	postLocation.SetSummary("Confirm hider location")
	postLocation.SetDescription("Validates the point against the play zone and confirms it. Outside the zone nothing is written.")
	postLocation.AddReqStructure(LocationRequest{})
	postLocation.AddRespStructure(LocationResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	postLocation.AddRespStructure(ZoneErrorResponse{}, openapi.WithHTTPStatus(http.StatusUnprocessableEntity))
	postLocation.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusNotFound))
	postLocation.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	_ = r.AddOperation(postLocation)

	// POST /api/games/{gameID}/cards/{cardID}/answer
	postAnswer, _ := r.NewOperationContext(http.MethodPost, "/api/games/{gameID}/cards/{cardID}/answer")
	postAnswer.SetSummary("Answer card")
	postAnswer.SetDescription("Evaluates the card's question at the confirmed point and records the answer. The card retires and its slot refills.")
	postAnswer.AddReqStructure(AnswerCardRequest{})
	postAnswer.AddRespStructure(AnswerCardResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	postAnswer.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusNotFound))
	postAnswer.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusConflict))
	_ = r.AddOperation(postAnswer)

	// PUT /api/games/{gameID}/cards/{cardID}/answer
	putAnswer, _ := r.NewOperationContext(http.MethodPut, "/api/games/{gameID}/cards/{cardID}/answer")
	putAnswer.SetSummary("Edit card answer")
	putAnswer.SetDescription("Re-evaluates and replaces the card's recorded answer. Works on retired cards; absent records are inserted.")
	putAnswer.AddReqStructure(AnswerCardRequest{})
	putAnswer.AddRespStructure(AnswerCardResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	putAnswer.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusNotFound))
	putAnswer.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusConflict))
	_ = r.AddOperation(putAnswer)

	// POST /api/games/{gameID}/cards/{cardID}/discard
	postDiscard, _ := r.NewOperationContext(http.MethodPost, "/api/games/{gameID}/cards/{cardID}/discard")
	postDiscard.SetSummary("Discard card")
	postDiscard.SetDescription("Retires an active card without an answer.")
	postDiscard.AddRespStructure(GameResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	postDiscard.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusNotFound))
	postDiscard.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusConflict))
	_ = r.AddOperation(postDiscard)

	// GET /api/games/{gameID}/regions
	getRegions, _ := r.NewOperationContext(http.MethodGet, "/api/games/{gameID}/regions")
	getRegions.SetSummary("Excluded regions")
	getRegions.SetDescription("GeoJSON FeatureCollection of the map regions the hider cannot be in, rebuilt from all recorded answers.")
	getRegions.AddRespStructure(nil, openapi.WithHTTPStatus(http.StatusOK),
		openapi.WithContentType("application/geo+json"))
	getRegions.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusNotFound))
	_ = r.AddOperation(getRegions)

	// GET /api/games/{gameID}/events
	getEvents, _ := r.NewOperationContext(http.MethodGet, "/api/games/{gameID}/events")
	getEvents.SetSummary("SSE event stream")
	getEvents.SetDescription("Server-Sent Events stream: card_drawn, regions_updated, game_reset.")
	getEvents.AddRespStructure(nil, openapi.WithHTTPStatus(http.StatusOK),
		openapi.WithContentType("text/event-stream"))
	_ = r.AddOperation(getEvents)

	// POST /api/admin/login
	postLogin, _ := r.NewOperationContext(http.MethodPost, "/api/admin/login")
	postLogin.SetSummary("Admin login")
	postLogin.SetDescription("Authenticate with email and password. Sets admin_session cookie.")
	postLogin.AddReqStructure(AdminLoginRequest{})
	postLogin.AddRespStructure(AdminMeResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	postLogin.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusUnauthorized))
	_ = r.AddOperation(postLogin)

	// POST /api/admin/logout
	postLogout, _ := r.NewOperationContext(http.MethodPost, "/api/admin/logout")
	postLogout.SetSummary("Admin logout")
	postLogout.SetDescription("Clears admin session and cookie.")
	postLogout.AddRespStructure(nil, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(postLogout)

	// GET /api/admin/me
	getMe, _ := r.NewOperationContext(http.MethodGet, "/api/admin/me")
	getMe.SetSummary("Current admin")
	getMe.SetDescription("Returns the currently authenticated admin. Requires admin_session cookie.")
	getMe.AddRespStructure(AdminMeResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	getMe.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusUnauthorized))
	_ = r.AddOperation(getMe)

	// GET /api/admin/games
	listGames, _ := r.NewOperationContext(http.MethodGet, "/api/admin/games")
	listGames.SetSummary("List games")
	listGames.SetDescription("Summaries of all stored games. Requires admin_session cookie.")
	listGames.AddRespStructure([]GameSummary{}, openapi.WithHTTPStatus(http.StatusOK))
	listGames.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusUnauthorized))
	_ = r.AddOperation(listGames)

	// DELETE /api/admin/games/{gameID}
	deleteAdminGame, _ := r.NewOperationContext(http.MethodDelete, "/api/admin/games/{gameID}")
	deleteAdminGame.SetSummary("Delete game")
	deleteAdminGame.SetDescription("Removes a stored game permanently. Requires admin_session cookie.")
	deleteAdminGame.AddRespStructure(nil, openapi.WithHTTPStatus(http.StatusNoContent))
	deleteAdminGame.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusNotFound))
	deleteAdminGame.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusUnauthorized))
	_ = r.AddOperation(deleteAdminGame)

	return r.Spec
}

func handleOpenAPI() http.HandlerFunc {
	spec := newOpenAPISpec()
	data, _ := json.Marshal(spec)

	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write(data)
	}
}
