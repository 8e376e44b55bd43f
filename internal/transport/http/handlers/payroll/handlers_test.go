package payrollhandler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"hrportal/internal/domain/payroll"
	"hrportal/internal/platform/metrics"
)

type fakeStore struct {
	records   []payroll.Record
	insertErr error
}

func (f *fakeStore) Insert(ctx context.Context, rec payroll.Record) (string, error) {
	if f.insertErr != nil {
		return "", f.insertErr
	}
	f.records = append(f.records, rec)
	return "rec-1", nil
}

func (f *fakeStore) List(ctx context.Context, employeeID, payPeriod string) ([]payroll.Record, error) {
	return f.records, nil
}

func (f *fakeStore) PayslipRows(ctx context.Context, payPeriod string) ([]payroll.PayslipData, error) {
	return nil, nil
}

func (f *fakeStore) PayslipRow(ctx context.Context, payPeriod, employeeID string) (payroll.PayslipData, error) {
	return payroll.PayslipData{}, nil
}

func newTestHandler(store *fakeStore) *Handler {
	svc := payroll.NewService(store, nil, payroll.ServiceConfig{CompanyName: "Test Co"})
	return NewHandler(svc, metrics.New(), "storage/payslips")
}

func TestCreateComputesTotal(t *testing.T) {
	h := newTestHandler(&fakeStore{})

	body := `{"employee_id":"emp-1","basic_hours":160,"hourly_rate":10,"overtime_hours":3,"deductions":0,"pay_period":"2025-07"}`
	req := httptest.NewRequest(http.MethodPost, "/payroll", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.handleCreate(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp createResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp.Success || resp.TotalSalary != 1630 {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestCreateRejectsBadPeriod(t *testing.T) {
	h := newTestHandler(&fakeStore{})

	body := `{"employee_id":"emp-1","basic_hours":160,"hourly_rate":10,"overtime_hours":0,"deductions":0,"pay_period":"2025-7"}`
	rec := httptest.NewRecorder()
	h.handleCreate(rec, httptest.NewRequest(http.MethodPost, "/payroll", strings.NewReader(body)))

	if rec.Code != http.StatusOK {
		t.Fatalf("domain failures answer 200, got %d", rec.Code)
	}
	var resp createResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Success || !strings.Contains(resp.Message, "pay_period") {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestBulkRejectsNonArray(t *testing.T) {
	h := newTestHandler(&fakeStore{})

	rec := httptest.NewRecorder()
	h.handleBulk(rec, httptest.NewRequest(http.MethodPost, "/payroll/bulk", strings.NewReader(`{"employee_id":"emp-1"}`)))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Success {
		t.Fatal("non-array payload must fail wholesale")
	}
}

func TestBulkRejectsEmptyArray(t *testing.T) {
	h := newTestHandler(&fakeStore{})

	rec := httptest.NewRecorder()
	h.handleBulk(rec, httptest.NewRequest(http.MethodPost, "/payroll/bulk", strings.NewReader(`[]`)))

	var resp struct {
		Success bool `json:"success"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Success {
		t.Fatal("empty array must fail wholesale")
	}
}

func TestBulkPartialFailure(t *testing.T) {
	store := &fakeStore{}
	h := newTestHandler(store)

	body := `[
    {"employee_id":"emp-1","basic_hours":160,"hourly_rate":10,"overtime_hours":0,"deductions":0,"pay_period":"2025-07"},
    {"employee_id":"emp-2","basic_hours":160,"overtime_hours":0,"deductions":0,"pay_period":"2025-07"},
    {"employee_id":"emp-3","basic_hours":100,"hourly_rate":20,"overtime_hours":5,"deductions":50,"pay_period":"2025-07"}
  ]`
	rec := httptest.NewRecorder()
	h.handleBulk(rec, httptest.NewRequest(http.MethodPost, "/payroll/bulk", strings.NewReader(body)))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var results []payroll.BatchResult
	if err := json.NewDecoder(rec.Body).Decode(&results); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}
	if !results[0].Success || !results[2].Success {
		t.Fatalf("valid records must succeed: %+v", results)
	}
	if results[1].Success || results[1].RecordIndex != 1 || !strings.Contains(results[1].Message, "hourly_rate") {
		t.Fatalf("unexpected failure entry: %+v", results[1])
	}
	if len(store.records) != 2 {
		t.Fatalf("expected 2 persisted records, got %d", len(store.records))
	}
}

func TestServeFileRejectsTraversal(t *testing.T) {
	h := newTestHandler(&fakeStore{})

	for _, filename := range []string{"../secrets.pdf", "notes.txt", ""} {
		rctx := chi.NewRouteContext()
		rctx.URLParams.Add("filename", filename)
		req := httptest.NewRequest(http.MethodGet, "/payslips/files/x", nil)
		req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

		rec := httptest.NewRecorder()
		h.handleServeFile(rec, req)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("filename %q: expected 400, got %d", filename, rec.Code)
		}
	}
}
