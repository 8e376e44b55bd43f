package payroll

import (
	"context"
	"fmt"
	"strings"
)

// Mailer is satisfied by the platform email package.
type Mailer interface {
	Send(ctx context.Context, from, to, subject, body string) error
}

type ServiceConfig struct {
	CompanyName    string
	CompanyAddress string
	EmailFrom      string
	PayslipDir     string
	PayslipBaseURL string
	// SendLimit bounds how many payslip emails are in flight at once.
	SendLimit int
}

type Service struct {
	store  StoreAPI
	mailer Mailer
	cfg    ServiceConfig
}

func NewService(store StoreAPI, mailer Mailer, cfg ServiceConfig) *Service {
	if cfg.SendLimit <= 0 {
		cfg.SendLimit = 4
	}
	return &Service{store: store, mailer: mailer, cfg: cfg}
}

// validate reports the first problem with an input record, mirroring the
// order the fields are checked on submission.
func validate(in Input) error {
	if strings.TrimSpace(in.EmployeeID) == "" {
		return fmt.Errorf("missing required field employee_id")
	}
	if in.BasicHours == nil {
		return fmt.Errorf("missing required field basic_hours")
	}
	if in.HourlyRate == nil {
		return fmt.Errorf("missing required field hourly_rate")
	}
	if in.OvertimeHours == nil {
		return fmt.Errorf("missing required field overtime_hours")
	}
	if in.Deductions == nil {
		return fmt.Errorf("missing required field deductions")
	}
	if strings.TrimSpace(in.PayPeriod) == "" {
		return fmt.Errorf("missing required field pay_period")
	}
	if !ValidPayPeriod(in.PayPeriod) {
		return fmt.Errorf("invalid pay_period format, expected YYYY-MM")
	}
	return nil
}

// Process validates one input, computes the gross total and persists the
// record. The stored total is never recomputed afterwards.
func (s *Service) Process(ctx context.Context, in Input) (float64, error) {
	if err := validate(in); err != nil {
		return 0, err
	}

	overtimeRate := *in.HourlyRate
	if in.OvertimeRate != nil {
		overtimeRate = *in.OvertimeRate
	}
	total := ComputeTotal(*in.BasicHours, *in.HourlyRate, *in.OvertimeHours, in.OvertimeRate, *in.Deductions)

	rec := Record{
		EmployeeID:    in.EmployeeID,
		PayPeriod:     in.PayPeriod,
		BasicHours:    *in.BasicHours,
		HourlyRate:    *in.HourlyRate,
		OvertimeHours: *in.OvertimeHours,
		OvertimeRate:  overtimeRate,
		Deductions:    *in.Deductions,
		TotalSalary:   total,
	}
	if _, err := s.store.Insert(ctx, rec); err != nil {
		return 0, err
	}
	return total, nil
}

// ProcessBatch handles each record independently: a failing record is
// reported in its slot and processing continues with the next one. Earlier
// inserts are not rolled back when a later record fails.
func (s *Service) ProcessBatch(ctx context.Context, inputs []Input) []BatchResult {
	results := make([]BatchResult, 0, len(inputs))
	for i, in := range inputs {
		total, err := s.Process(ctx, in)
		if err != nil {
			results = append(results, BatchResult{
				Success:     false,
				Message:     err.Error(),
				RecordIndex: i,
			})
			continue
		}
		totalCopy := total
		results = append(results, BatchResult{
			Success:     true,
			Message:     "payroll recorded",
			RecordIndex: i,
			EmployeeID:  in.EmployeeID,
			TotalSalary: &totalCopy,
		})
	}
	return results
}

func (s *Service) List(ctx context.Context, employeeID, payPeriod string) ([]Record, error) {
	return s.store.List(ctx, employeeID, payPeriod)
}
