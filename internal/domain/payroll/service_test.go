package payroll

import (
	"context"
	"errors"
	"strings"
	"testing"
)

type fakeStore struct {
	records   []Record
	insertErr error
	slips     []PayslipData
	slipErr   error
	noDupes   bool
}

func (f *fakeStore) Insert(ctx context.Context, rec Record) (string, error) {
	if f.insertErr != nil {
		return "", f.insertErr
	}
	if f.noDupes {
		for _, existing := range f.records {
			if existing.EmployeeID == rec.EmployeeID && existing.PayPeriod == rec.PayPeriod {
				return "", ErrDuplicateRecord
			}
		}
	}
	f.records = append(f.records, rec)
	return "id-1", nil
}

func (f *fakeStore) List(ctx context.Context, employeeID, payPeriod string) ([]Record, error) {
	return f.records, nil
}

func (f *fakeStore) PayslipRows(ctx context.Context, payPeriod string) ([]PayslipData, error) {
	return f.slips, f.slipErr
}

func (f *fakeStore) PayslipRow(ctx context.Context, payPeriod, employeeID string) (PayslipData, error) {
	for _, slip := range f.slips {
		if slip.EmployeeID == employeeID {
			return slip, nil
		}
	}
	return PayslipData{}, errors.New("no rows in result set")
}

func ptr(v float64) *float64 { return &v }

func validInput(employeeID string) Input {
	return Input{
		EmployeeID:    employeeID,
		BasicHours:    ptr(160),
		HourlyRate:    ptr(10),
		OvertimeHours: ptr(8),
		Deductions:    ptr(50),
		PayPeriod:     "2025-07",
	}
}

func TestProcessComputesAndPersists(t *testing.T) {
	store := &fakeStore{}
	svc := NewService(store, nil, ServiceConfig{})

	total, err := svc.Process(context.Background(), validInput("emp-1"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// 160*10 + 8*10 - 50
	if total != 1630 {
		t.Fatalf("expected total 1630, got %v", total)
	}
	if len(store.records) != 1 {
		t.Fatalf("expected 1 stored record, got %d", len(store.records))
	}
	if store.records[0].OvertimeRate != 10 {
		t.Fatalf("expected overtime rate to default to hourly rate, got %v", store.records[0].OvertimeRate)
	}
	if store.records[0].TotalSalary != 1630 {
		t.Fatalf("expected stored total 1630, got %v", store.records[0].TotalSalary)
	}
}

func TestProcessExplicitOvertimeRate(t *testing.T) {
	store := &fakeStore{}
	svc := NewService(store, nil, ServiceConfig{})

	in := validInput("emp-1")
	in.OvertimeRate = ptr(15)
	total, err := svc.Process(context.Background(), in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != 1670 {
		t.Fatalf("expected total 1670, got %v", total)
	}
}

func TestProcessRejectsBadPeriod(t *testing.T) {
	svc := NewService(&fakeStore{}, nil, ServiceConfig{})
	for _, period := range []string{"2025-7", "25-07", "2025/07", ""} {
		in := validInput("emp-1")
		in.PayPeriod = period
		if _, err := svc.Process(context.Background(), in); err == nil {
			t.Fatalf("expected error for pay period %q", period)
		}
	}
}

func TestProcessBatchPartialFailure(t *testing.T) {
	store := &fakeStore{}
	svc := NewService(store, nil, ServiceConfig{})

	second := validInput("emp-2")
	second.HourlyRate = nil
	inputs := []Input{validInput("emp-1"), second, validInput("emp-3")}

	results := svc.ProcessBatch(context.Background(), inputs)
	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}
	if !results[0].Success || !results[2].Success {
		t.Fatalf("expected records 0 and 2 to succeed: %+v", results)
	}
	if results[1].Success {
		t.Fatal("expected record 1 to fail")
	}
	if results[1].RecordIndex != 1 {
		t.Fatalf("expected record_index 1, got %d", results[1].RecordIndex)
	}
	if !strings.Contains(results[1].Message, "hourly_rate") {
		t.Fatalf("expected message to name hourly_rate, got %q", results[1].Message)
	}
	if len(store.records) != 2 {
		t.Fatalf("expected 2 persisted records, got %d", len(store.records))
	}
	if results[0].TotalSalary == nil || *results[0].TotalSalary != 1630 {
		t.Fatalf("expected total 1630 on success entry, got %+v", results[0].TotalSalary)
	}
}

func TestProcessBatchSurfacesStorageError(t *testing.T) {
	store := &fakeStore{insertErr: errors.New("connection reset")}
	svc := NewService(store, nil, ServiceConfig{})

	results := svc.ProcessBatch(context.Background(), []Input{validInput("emp-1")})
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	if results[0].Success {
		t.Fatal("expected failure")
	}
	if !strings.Contains(results[0].Message, "connection reset") {
		t.Fatalf("expected storage error in message, got %q", results[0].Message)
	}
}

func TestProcessBatchDuplicateRejection(t *testing.T) {
	store := &fakeStore{noDupes: true}
	svc := NewService(store, nil, ServiceConfig{})

	results := svc.ProcessBatch(context.Background(), []Input{validInput("emp-1"), validInput("emp-1")})
	if !results[0].Success {
		t.Fatalf("expected first insert to succeed: %+v", results[0])
	}
	if results[1].Success {
		t.Fatal("expected duplicate to be rejected")
	}
	if !errorsIsDuplicate(results[1].Message) {
		t.Fatalf("expected duplicate message, got %q", results[1].Message)
	}
}

func errorsIsDuplicate(message string) bool {
	return strings.Contains(message, "already exists")
}
