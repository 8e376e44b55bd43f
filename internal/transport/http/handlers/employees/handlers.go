package employeeshandler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"hrportal/internal/auth"
	"hrportal/internal/domain/employee"
	"hrportal/internal/transport/http/api"
	"hrportal/internal/transport/http/middleware"
)

type Handler struct {
	Store *employee.Store
}

func NewHandler(store *employee.Store) *Handler {
	return &Handler{Store: store}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/employees", func(r chi.Router) {
		r.Use(middleware.RequireAuth)
		r.Get("/", h.handleList)
		r.Get("/{id}", h.handleGet)
		r.Put("/{id}", h.handleUpdate)
		r.Put("/{id}/password", h.handleUpdatePassword)
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAdmin)
			r.Post("/", h.handleCreate)
			r.Delete("/{id}", h.handleDelete)
		})
	})
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	employees, err := h.Store.List(r.Context())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "failed to list employees")
		return
	}
	if employees == nil {
		employees = []employee.Employee{}
	}
	api.OK(w, map[string]any{"success": true, "employees": employees})
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	user, _ := middleware.GetUser(r.Context())
	if user.Role != auth.RoleAdmin && user.EmployeeID != id {
		api.Fail(w, http.StatusForbidden, "not allowed")
		return
	}

	emp, err := h.Store.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, employee.ErrNotFound) {
			api.Fail(w, http.StatusNotFound, "employee not found")
			return
		}
		api.Fail(w, http.StatusInternalServerError, "failed to load employee")
		return
	}
	api.OK(w, map[string]any{"success": true, "employee": emp})
}

type createPayload struct {
	FirstName   string  `json:"first_name"`
	LastName    string  `json:"last_name"`
	Email       string  `json:"email"`
	Phone       string  `json:"phone"`
	Address     string  `json:"address"`
	DateOfBirth string  `json:"date_of_birth"`
	Department  string  `json:"department"`
	HourlyRate  float64 `json:"hourly_rate"`
	Role        string  `json:"role"`
	Password    string  `json:"password"`
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var payload createPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	if payload.FirstName == "" || payload.LastName == "" || payload.Email == "" || payload.Password == "" {
		api.Fail(w, http.StatusBadRequest, "first_name, last_name, email and password are required")
		return
	}

	hash, err := auth.HashPassword(payload.Password)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "failed to create employee")
		return
	}

	emp := employee.Employee{
		FirstName:  payload.FirstName,
		LastName:   payload.LastName,
		Email:      payload.Email,
		Phone:      payload.Phone,
		Address:    payload.Address,
		Department: payload.Department,
		HourlyRate: payload.HourlyRate,
		Role:       payload.Role,
	}
	if payload.DateOfBirth != "" {
		dob, err := time.Parse("2006-01-02", payload.DateOfBirth)
		if err != nil {
			api.Fail(w, http.StatusBadRequest, "invalid date_of_birth, expected YYYY-MM-DD")
			return
		}
		emp.DateOfBirth = &dob
	}

	id, err := h.Store.Create(r.Context(), emp, hash)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "failed to create employee")
		return
	}
	api.WriteJSON(w, http.StatusCreated, map[string]any{"success": true, "id": id})
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	user, _ := middleware.GetUser(r.Context())
	if user.Role != auth.RoleAdmin && user.EmployeeID != id {
		api.Fail(w, http.StatusForbidden, "not allowed")
		return
	}

	var payload createPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	emp := employee.Employee{
		ID:         id,
		FirstName:  payload.FirstName,
		LastName:   payload.LastName,
		Email:      payload.Email,
		Phone:      payload.Phone,
		Address:    payload.Address,
		Department: payload.Department,
		HourlyRate: payload.HourlyRate,
	}
	if payload.DateOfBirth != "" {
		dob, err := time.Parse("2006-01-02", payload.DateOfBirth)
		if err != nil {
			api.Fail(w, http.StatusBadRequest, "invalid date_of_birth, expected YYYY-MM-DD")
			return
		}
		emp.DateOfBirth = &dob
	}

	if err := h.Store.Update(r.Context(), emp); err != nil {
		if errors.Is(err, employee.ErrNotFound) {
			api.Fail(w, http.StatusNotFound, "employee not found")
			return
		}
		api.Fail(w, http.StatusInternalServerError, "failed to update employee")
		return
	}
	api.OK(w, api.Result{Success: true, Message: "employee updated"})
}

func (h *Handler) handleUpdatePassword(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	user, _ := middleware.GetUser(r.Context())
	if user.Role != auth.RoleAdmin && user.EmployeeID != id {
		api.Fail(w, http.StatusForbidden, "not allowed")
		return
	}

	var payload struct {
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload.Password == "" {
		api.Fail(w, http.StatusBadRequest, "password is required")
		return
	}

	hash, err := auth.HashPassword(payload.Password)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "failed to update password")
		return
	}
	if err := h.Store.UpdatePassword(r.Context(), id, hash); err != nil {
		api.Fail(w, http.StatusInternalServerError, "failed to update password")
		return
	}
	api.OK(w, api.Result{Success: true, Message: "password updated"})
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.Store.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		if errors.Is(err, employee.ErrNotFound) {
			api.Fail(w, http.StatusNotFound, "employee not found")
			return
		}
		api.Fail(w, http.StatusInternalServerError, "failed to delete employee")
		return
	}
	api.OK(w, api.Result{Success: true, Message: "employee deleted"})
}
