package notificationshandler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"hrportal/internal/domain/notifications"
	"hrportal/internal/transport/http/api"
	"hrportal/internal/transport/http/middleware"
)

type Handler struct {
	Store *notifications.Store
}

func NewHandler(store *notifications.Store) *Handler {
	return &Handler{Store: store}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/notifications", func(r chi.Router) {
		r.Use(middleware.RequireAuth)
		r.Get("/", h.handleList)
		r.Post("/mark-read", h.handleMarkRead)
		r.With(middleware.RequireAdmin).Post("/", h.handleBroadcast)
	})
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.GetUser(r.Context())

	items, err := h.Store.List(r.Context(), user.EmployeeID)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "failed to list notifications")
		return
	}
	if items == nil {
		items = []notifications.Notification{}
	}
	api.OK(w, map[string]any{"success": true, "notifications": items})
}

func (h *Handler) handleBroadcast(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Title   string `json:"title"`
		Message string `json:"message"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	if payload.Title == "" || payload.Message == "" {
		api.Fail(w, http.StatusBadRequest, "title and message are required")
		return
	}

	if err := h.Store.Broadcast(r.Context(), payload.Title, payload.Message); err != nil {
		api.Fail(w, http.StatusInternalServerError, "failed to create notification")
		return
	}
	api.WriteJSON(w, http.StatusCreated, api.Result{Success: true, Message: "notification sent"})
}

func (h *Handler) handleMarkRead(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.GetUser(r.Context())

	if err := h.Store.MarkAllRead(r.Context(), user.EmployeeID); err != nil {
		api.Fail(w, http.StatusInternalServerError, "failed to mark notifications read")
		return
	}
	api.OK(w, api.Result{Success: true, Message: "notifications marked read"})
}
