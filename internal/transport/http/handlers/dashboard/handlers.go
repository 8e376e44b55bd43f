package dashboardhandler

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"hrportal/internal/domain/dashboard"
	"hrportal/internal/transport/http/api"
	"hrportal/internal/transport/http/middleware"
)

type Handler struct {
	Store *dashboard.Store
}

func NewHandler(store *dashboard.Store) *Handler {
	return &Handler{Store: store}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.With(middleware.RequireAuth).Get("/dashboard", h.handleDashboard)
}

func (h *Handler) handleDashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	employees, err := h.Store.ListEmployees(ctx)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "failed to load dashboard")
		return
	}
	payrolls, err := h.Store.ListPayrolls(ctx)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "failed to load dashboard")
		return
	}
	leaves, err := h.Store.ListLeaves(ctx)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "failed to load dashboard")
		return
	}
	events, err := h.Store.ListEvents(ctx)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "failed to load dashboard")
		return
	}

	if employees == nil {
		employees = []dashboard.EmployeeRow{}
	}
	if payrolls == nil {
		payrolls = []dashboard.PayrollRow{}
	}
	if leaves == nil {
		leaves = []dashboard.LeaveRow{}
	}
	if events == nil {
		events = []dashboard.EventRow{}
	}

	api.OK(w, map[string]any{
		"employees":            employees,
		"leaves":               leaves,
		"payrolls":             payrolls,
		"events":               events,
		"employeeCountChart":   dashboard.HeadcountByDepartment(employees),
		"overtimeChart":        dashboard.OvertimeByDepartment(employees, payrolls),
		"payrollExpensesChart": dashboard.ExpenseSeries(payrolls, time.Now()),
	})
}
