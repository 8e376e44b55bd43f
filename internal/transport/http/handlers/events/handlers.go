package eventshandler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"hrportal/internal/domain/events"
	"hrportal/internal/transport/http/api"
	"hrportal/internal/transport/http/middleware"
)

type Handler struct {
	Store *events.Store
}

func NewHandler(store *events.Store) *Handler {
	return &Handler{Store: store}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/events", func(r chi.Router) {
		r.Use(middleware.RequireAuth)
		r.Get("/", h.handleList)
		r.With(middleware.RequireAdmin).Post("/", h.handleCreate)
	})
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	items, err := h.Store.List(r.Context())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "failed to list events")
		return
	}
	if items == nil {
		items = []events.Event{}
	}
	api.OK(w, map[string]any{"success": true, "events": items})
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Title     string `json:"title"`
		EventDate string `json:"event_date"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	if payload.Title == "" {
		api.Fail(w, http.StatusBadRequest, "title is required")
		return
	}
	eventDate, err := time.Parse("2006-01-02", payload.EventDate)
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid event_date, expected YYYY-MM-DD")
		return
	}

	id, err := h.Store.Create(r.Context(), payload.Title, eventDate)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "failed to create event")
		return
	}
	api.WriteJSON(w, http.StatusCreated, map[string]any{"success": true, "id": id})
}
