package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// Result is the minimal response body every endpoint shares. Endpoints with
// extra payload fields embed it or write their own struct.
type Result struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func WriteJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Warn("write json failed", "err", err)
	}
}

func OK(w http.ResponseWriter, payload any) {
	WriteJSON(w, http.StatusOK, payload)
}

// Failure reports a domain-level failure. The payroll and payslip endpoints
// answer these with HTTP 200 and success:false, keeping the error detail in
// the message.
func Failure(w http.ResponseWriter, message string) {
	WriteJSON(w, http.StatusOK, Result{Success: false, Message: message})
}

// Fail is for transport-level problems: malformed JSON, missing auth,
// unknown resources.
func Fail(w http.ResponseWriter, status int, message string) {
	WriteJSON(w, status, Result{Success: false, Message: message})
}
