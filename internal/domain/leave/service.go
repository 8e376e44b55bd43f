package leave

import (
	"context"
	"fmt"
)

type StoreAPI interface {
	Create(ctx context.Context, req Request) (string, error)
	List(ctx context.Context, employeeID string) ([]Request, error)
	Get(ctx context.Context, id string) (Request, error)
	UpdateStatus(ctx context.Context, id, status string) error
}

// Notifier writes the in-app notification a status decision produces.
type Notifier interface {
	Notify(ctx context.Context, employeeID, title, message string) error
}

type Service struct {
	store    StoreAPI
	notifier Notifier
}

func NewService(store StoreAPI, notifier Notifier) *Service {
	return &Service{store: store, notifier: notifier}
}

func (s *Service) Create(ctx context.Context, req Request) (string, error) {
	if req.ToDate.Before(req.FromDate) {
		return "", ErrInvalidDates
	}
	req.Status = StatusPending
	return s.store.Create(ctx, req)
}

func (s *Service) List(ctx context.Context, employeeID string) ([]Request, error) {
	return s.store.List(ctx, employeeID)
}

// Decide moves a pending request to approved or rejected. Both outcomes are
// terminal and trigger a notification to the requester. The notification
// write is best effort; a failure there does not undo the decision.
func (s *Service) Decide(ctx context.Context, id, status string) error {
	if status != StatusApproved && status != StatusRejected {
		return ErrInvalidStatus
	}
	req, err := s.store.Get(ctx, id)
	if err != nil {
		return err
	}
	if req.Status != StatusPending {
		return ErrInvalidTransition
	}
	if err := s.store.UpdateStatus(ctx, id, status); err != nil {
		return err
	}

	if s.notifier != nil {
		title := fmt.Sprintf("Leave request %s", status)
		message := fmt.Sprintf("Your %s leave from %s to %s has been %s.",
			req.LeaveType, req.FromDate.Format("2006-01-02"), req.ToDate.Format("2006-01-02"), status)
		_ = s.notifier.Notify(ctx, req.EmployeeID, title, message)
	}
	return nil
}
