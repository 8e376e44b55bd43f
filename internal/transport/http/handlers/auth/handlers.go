package authhandler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"hrportal/internal/auth"
	"hrportal/internal/domain/employee"
	"hrportal/internal/transport/http/api"
)

const tokenTTL = 24 * time.Hour

type Handler struct {
	Employees *employee.Store
	JWTSecret string
}

func NewHandler(employees *employee.Store, jwtSecret string) *Handler {
	return &Handler{Employees: employees, JWTSecret: jwtSecret}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/auth/login", h.handleLogin)
}

type loginPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Success    bool   `json:"success"`
	Message    string `json:"message"`
	Token      string `json:"token"`
	EmployeeID string `json:"employee_id"`
	Role       string `json:"role"`
}

func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	var payload loginPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	emp, hash, err := h.Employees.FindByEmail(r.Context(), payload.Email)
	if err != nil {
		if errors.Is(err, employee.ErrNotFound) {
			api.Fail(w, http.StatusUnauthorized, "invalid email or password")
			return
		}
		api.Fail(w, http.StatusInternalServerError, "login failed")
		return
	}
	if err := auth.CheckPassword(hash, payload.Password); err != nil {
		api.Fail(w, http.StatusUnauthorized, "invalid email or password")
		return
	}

	token, err := auth.GenerateToken(h.JWTSecret, auth.Claims{
		EmployeeID: emp.ID,
		Role:       emp.Role,
	}, tokenTTL)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "login failed")
		return
	}

	api.OK(w, loginResponse{
		Success:    true,
		Message:    "login successful",
		Token:      token,
		EmployeeID: emp.ID,
		Role:       emp.Role,
	})
}
