package messageshandler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"hrportal/internal/auth"
	"hrportal/internal/domain/messages"
	"hrportal/internal/transport/http/api"
	"hrportal/internal/transport/http/middleware"
)

type Handler struct {
	Store *messages.Store
}

func NewHandler(store *messages.Store) *Handler {
	return &Handler{Store: store}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/messages", func(r chi.Router) {
		r.Use(middleware.RequireAuth)
		r.Get("/", h.handleConversation)
		r.Post("/", h.handleSend)
	})
}

func (h *Handler) handleSend(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.GetUser(r.Context())

	var payload struct {
		ReceiverID   string `json:"receiver_id"`
		ReceiverType string `json:"receiver_type"`
		Content      string `json:"content"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	if payload.ReceiverID == "" || payload.Content == "" {
		api.Fail(w, http.StatusBadRequest, "receiver_id and content are required")
		return
	}
	if payload.ReceiverType == "" {
		payload.ReceiverType = messages.SenderAdmin
	}

	senderType := messages.SenderEmployee
	if user.Role == auth.RoleAdmin {
		senderType = messages.SenderAdmin
	}

	id, err := h.Store.Create(r.Context(), messages.Message{
		SenderID:     user.EmployeeID,
		SenderType:   senderType,
		ReceiverID:   payload.ReceiverID,
		ReceiverType: payload.ReceiverType,
		Content:      payload.Content,
	})
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "failed to send message")
		return
	}
	api.WriteJSON(w, http.StatusCreated, map[string]any{"success": true, "id": id})
}

// handleConversation returns the full two-way exchange between one employee
// and one admin, oldest message first.
func (h *Handler) handleConversation(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.GetUser(r.Context())

	employeeID := r.URL.Query().Get("employee_id")
	adminID := r.URL.Query().Get("admin_id")
	if user.Role == auth.RoleAdmin {
		adminID = user.EmployeeID
	} else {
		employeeID = user.EmployeeID
	}
	if employeeID == "" || adminID == "" {
		api.Fail(w, http.StatusBadRequest, "employee_id and admin_id are required")
		return
	}

	conversation, err := h.Store.Conversation(r.Context(), employeeID, adminID)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "failed to load conversation")
		return
	}
	if conversation == nil {
		conversation = []messages.Message{}
	}
	api.OK(w, map[string]any{"success": true, "messages": conversation})
}
