package leavehandler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"hrportal/internal/auth"
	"hrportal/internal/domain/leave"
	"hrportal/internal/transport/http/api"
	"hrportal/internal/transport/http/middleware"
)

type Handler struct {
	Service *leave.Service
}

func NewHandler(service *leave.Service) *Handler {
	return &Handler{Service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/leaves", func(r chi.Router) {
		r.Use(middleware.RequireAuth)
		r.Get("/", h.handleList)
		r.Post("/", h.handleCreate)
		r.With(middleware.RequireAdmin).Post("/{id}/status", h.handleDecide)
	})
}

type createPayload struct {
	EmployeeID string `json:"employee_id"`
	LeaveType  string `json:"leave_type"`
	FromDate   string `json:"from_date"`
	ToDate     string `json:"to_date"`
	Reason     string `json:"reason"`
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.GetUser(r.Context())

	var payload createPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	employeeID := user.EmployeeID
	if user.Role == auth.RoleAdmin && payload.EmployeeID != "" {
		employeeID = payload.EmployeeID
	}
	if payload.LeaveType == "" {
		api.Fail(w, http.StatusBadRequest, "leave_type is required")
		return
	}
	fromDate, err := time.Parse("2006-01-02", payload.FromDate)
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid from_date, expected YYYY-MM-DD")
		return
	}
	toDate, err := time.Parse("2006-01-02", payload.ToDate)
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid to_date, expected YYYY-MM-DD")
		return
	}

	id, err := h.Service.Create(r.Context(), leave.Request{
		EmployeeID: employeeID,
		LeaveType:  payload.LeaveType,
		FromDate:   fromDate,
		ToDate:     toDate,
		Reason:     payload.Reason,
	})
	if err != nil {
		if errors.Is(err, leave.ErrInvalidDates) {
			api.Fail(w, http.StatusBadRequest, "to_date must not be before from_date")
			return
		}
		api.Fail(w, http.StatusInternalServerError, "failed to create leave request")
		return
	}
	api.WriteJSON(w, http.StatusCreated, map[string]any{"success": true, "id": id})
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.GetUser(r.Context())

	employeeID := r.URL.Query().Get("employee_id")
	if user.Role != auth.RoleAdmin {
		employeeID = user.EmployeeID
	}

	requests, err := h.Service.List(r.Context(), employeeID)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "failed to list leave requests")
		return
	}
	if requests == nil {
		requests = []leave.Request{}
	}
	api.OK(w, map[string]any{"success": true, "leaves": requests})
}

func (h *Handler) handleDecide(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	err := h.Service.Decide(r.Context(), chi.URLParam(r, "id"), payload.Status)
	switch {
	case err == nil:
		api.OK(w, api.Result{Success: true, Message: "leave request " + payload.Status})
	case errors.Is(err, leave.ErrNotFound):
		api.Fail(w, http.StatusNotFound, "leave request not found")
	case errors.Is(err, leave.ErrInvalidStatus):
		api.Fail(w, http.StatusBadRequest, "status must be approved or rejected")
	case errors.Is(err, leave.ErrInvalidTransition):
		api.Fail(w, http.StatusBadRequest, "leave request has already been decided")
	default:
		api.Fail(w, http.StatusInternalServerError, "failed to update leave request")
	}
}
