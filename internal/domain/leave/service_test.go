package leave

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

type fakeLeaveStore struct {
	requests map[string]Request
	statuses map[string]string
}

func newFakeLeaveStore() *fakeLeaveStore {
	return &fakeLeaveStore{requests: map[string]Request{}, statuses: map[string]string{}}
}

func (f *fakeLeaveStore) Create(ctx context.Context, req Request) (string, error) {
	id := "req-1"
	f.requests[id] = req
	return id, nil
}

func (f *fakeLeaveStore) List(ctx context.Context, employeeID string) ([]Request, error) {
	return nil, nil
}

func (f *fakeLeaveStore) Get(ctx context.Context, id string) (Request, error) {
	req, ok := f.requests[id]
	if !ok {
		return Request{}, ErrNotFound
	}
	return req, nil
}

func (f *fakeLeaveStore) UpdateStatus(ctx context.Context, id, status string) error {
	f.statuses[id] = status
	return nil
}

type fakeNotifier struct {
	notified []string
}

func (f *fakeNotifier) Notify(ctx context.Context, employeeID, title, message string) error {
	f.notified = append(f.notified, employeeID+": "+title)
	return nil
}

func pendingRequest() Request {
	return Request{
		EmployeeID: "emp-1",
		LeaveType:  "annual",
		FromDate:   time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
		ToDate:     time.Date(2025, 7, 3, 0, 0, 0, 0, time.UTC),
		Status:     StatusPending,
	}
}

func TestDecideApprovesAndNotifies(t *testing.T) {
	store := newFakeLeaveStore()
	store.requests["req-1"] = pendingRequest()
	notifier := &fakeNotifier{}
	svc := NewService(store, notifier)

	if err := svc.Decide(context.Background(), "req-1", StatusApproved); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if store.statuses["req-1"] != StatusApproved {
		t.Fatalf("expected status approved, got %q", store.statuses["req-1"])
	}
	if len(notifier.notified) != 1 {
		t.Fatalf("expected 1 notification, got %d", len(notifier.notified))
	}
	if !strings.HasPrefix(notifier.notified[0], "emp-1:") {
		t.Fatalf("notification went to wrong employee: %s", notifier.notified[0])
	}
}

func TestDecideRejectsInvalidStatus(t *testing.T) {
	svc := NewService(newFakeLeaveStore(), nil)
	if err := svc.Decide(context.Background(), "req-1", "cancelled"); !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
}

func TestDecideTerminalStateIsFinal(t *testing.T) {
	store := newFakeLeaveStore()
	req := pendingRequest()
	req.Status = StatusApproved
	store.requests["req-1"] = req
	svc := NewService(store, &fakeNotifier{})

	if err := svc.Decide(context.Background(), "req-1", StatusRejected); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
}

func TestCreateValidatesDates(t *testing.T) {
	svc := NewService(newFakeLeaveStore(), nil)
	req := pendingRequest()
	req.FromDate, req.ToDate = req.ToDate, req.FromDate
	if _, err := svc.Create(context.Background(), req); !errors.Is(err, ErrInvalidDates) {
		t.Fatalf("expected ErrInvalidDates, got %v", err)
	}
}
