package payrollhandler

import (
	"encoding/json"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/go-chi/chi/v5"

	"hrportal/internal/auth"
	"hrportal/internal/domain/payroll"
	"hrportal/internal/platform/metrics"
	"hrportal/internal/transport/http/api"
	"hrportal/internal/transport/http/middleware"
)

type Handler struct {
	Service    *payroll.Service
	Metrics    *metrics.Collector
	PayslipDir string
}

func NewHandler(service *payroll.Service, collector *metrics.Collector, payslipDir string) *Handler {
	return &Handler{Service: service, Metrics: collector, PayslipDir: payslipDir}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/payroll", func(r chi.Router) {
		r.Use(middleware.RequireAuth)
		r.Get("/", h.handleList)
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAdmin)
			r.Post("/", h.handleCreate)
			r.Post("/bulk", h.handleBulk)
		})
	})
	r.Route("/payslips", func(r chi.Router) {
		r.With(middleware.RequireAuth).Get("/files/{filename}", h.handleServeFile)
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAdmin)
			r.Post("/generate", h.handleGenerate)
			r.Post("/send", h.handleSend)
			r.Post("/send-single", h.handleSendSingle)
		})
	})
}

type createResponse struct {
	Success     bool    `json:"success"`
	Message     string  `json:"message"`
	TotalSalary float64 `json:"total_salary"`
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var input payroll.Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	total, err := h.Service.Process(r.Context(), input)
	if err != nil {
		api.Failure(w, err.Error())
		return
	}
	api.OK(w, createResponse{Success: true, Message: "payroll recorded", TotalSalary: total})
}

// handleBulk answers with a bare JSON array, one entry per input record in
// the same order. Only a structurally invalid top-level payload fails the
// whole request.
func (h *Handler) handleBulk(w http.ResponseWriter, r *http.Request) {
	var inputs []payroll.Input
	if err := json.NewDecoder(r.Body).Decode(&inputs); err != nil {
		api.Failure(w, "request body must be a JSON array of payroll records")
		return
	}
	if len(inputs) == 0 {
		api.Failure(w, "request body must be a non-empty array")
		return
	}

	results := h.Service.ProcessBatch(r.Context(), inputs)
	api.OK(w, results)
}

type listResponse struct {
	Success bool             `json:"success"`
	Records []payroll.Record `json:"records"`
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	employeeID := r.URL.Query().Get("employee_id")
	payPeriod := r.URL.Query().Get("pay_period")

	// Non-admins only ever see their own records.
	if user, ok := middleware.GetUser(r.Context()); ok && user.Role != auth.RoleAdmin {
		employeeID = user.EmployeeID
	}

	records, err := h.Service.List(r.Context(), employeeID, payPeriod)
	if err != nil {
		api.Failure(w, err.Error())
		return
	}
	if records == nil {
		records = []payroll.Record{}
	}
	api.OK(w, listResponse{Success: true, Records: records})
}

type periodPayload struct {
	PayPeriod  string `json:"pay_period"`
	EmployeeID string `json:"employee_id"`
}

type generateResponse struct {
	Success   bool                   `json:"success"`
	Message   string                 `json:"message"`
	Documents []payroll.GeneratedDoc `json:"documents"`
	Failures  []payroll.SendFailure  `json:"failures,omitempty"`
}

func (h *Handler) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var payload periodPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	if !payroll.ValidPayPeriod(payload.PayPeriod) {
		api.Failure(w, "invalid pay_period format, expected YYYY-MM")
		return
	}

	docs, failures, err := h.Service.GenerateDocuments(r.Context(), payload.PayPeriod)
	if err != nil {
		api.Failure(w, err.Error())
		return
	}
	if docs == nil {
		docs = []payroll.GeneratedDoc{}
	}
	api.OK(w, generateResponse{
		Success:   len(failures) == 0,
		Message:   "payslips generated",
		Documents: docs,
		Failures:  failures,
	})
}

func (h *Handler) handleSend(w http.ResponseWriter, r *http.Request) {
	var payload periodPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	if !payroll.ValidPayPeriod(payload.PayPeriod) {
		api.Failure(w, "invalid pay_period format, expected YYYY-MM")
		return
	}

	summary, err := h.Service.SendAll(r.Context(), payload.PayPeriod)
	if err != nil {
		api.Failure(w, err.Error())
		return
	}
	h.Metrics.RecordPayslips(summary.Sent, summary.Failed)
	api.OK(w, summary)
}

func (h *Handler) handleSendSingle(w http.ResponseWriter, r *http.Request) {
	var payload periodPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	if !payroll.ValidPayPeriod(payload.PayPeriod) {
		api.Failure(w, "invalid pay_period format, expected YYYY-MM")
		return
	}
	if strings.TrimSpace(payload.EmployeeID) == "" {
		api.Failure(w, "missing required field employee_id")
		return
	}

	if err := h.Service.SendOne(r.Context(), payload.PayPeriod, payload.EmployeeID); err != nil {
		h.Metrics.RecordPayslips(0, 1)
		api.Failure(w, err.Error())
		return
	}
	h.Metrics.RecordPayslips(1, 0)
	api.OK(w, api.Result{Success: true, Message: "payslip sent"})
}

func (h *Handler) handleServeFile(w http.ResponseWriter, r *http.Request) {
	filename := chi.URLParam(r, "filename")
	// Generated names never contain separators; anything else is a traversal
	// attempt.
	if filename == "" || filename != filepath.Base(filename) || !strings.HasSuffix(filename, ".pdf") {
		api.Fail(w, http.StatusBadRequest, "invalid filename")
		return
	}
	http.ServeFile(w, r, filepath.Join(h.PayslipDir, filename))
}
