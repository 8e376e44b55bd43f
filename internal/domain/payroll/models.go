package payroll

import "time"

// Record is a persisted payroll row. The total is a point-in-time snapshot:
// it is computed once at insertion and never recomputed, even when the
// employee's rates change later.
type Record struct {
	ID            string    `json:"id"`
	EmployeeID    string    `json:"employee_id"`
	EmployeeName  string    `json:"employee_name,omitempty"`
	PayPeriod     string    `json:"pay_period"`
	BasicHours    float64   `json:"basic_hours"`
	HourlyRate    float64   `json:"hourly_rate"`
	OvertimeHours float64   `json:"overtime_hours"`
	OvertimeRate  float64   `json:"overtime_rate"`
	Deductions    float64   `json:"deductions"`
	TotalSalary   float64   `json:"total_salary"`
	PaidDate      time.Time `json:"paid_date"`
	CreatedAt     time.Time `json:"created_at"`
}

// Input is one submitted payroll line. Required numeric fields are pointers
// so a missing field can be told apart from an explicit zero.
type Input struct {
	EmployeeID    string   `json:"employee_id"`
	BasicHours    *float64 `json:"basic_hours"`
	HourlyRate    *float64 `json:"hourly_rate"`
	OvertimeHours *float64 `json:"overtime_hours"`
	OvertimeRate  *float64 `json:"overtime_rate"`
	Deductions    *float64 `json:"deductions"`
	PayPeriod     string   `json:"pay_period"`
}

// BatchResult reports the outcome for one input record. The result list of a
// batch has the same length and order as its input.
type BatchResult struct {
	Success     bool     `json:"success"`
	Message     string   `json:"message"`
	RecordIndex int      `json:"record_index"`
	EmployeeID  string   `json:"employee_id,omitempty"`
	TotalSalary *float64 `json:"total_salary,omitempty"`
}

// PayslipData is one payroll row joined with the owning employee, ready for
// rendering or emailing.
type PayslipData struct {
	EmployeeID    string
	FirstName     string
	LastName      string
	Email         string
	PayPeriod     string
	BasicHours    float64
	HourlyRate    float64
	OvertimeHours float64
	OvertimeRate  float64
	Deductions    float64
	TotalSalary   float64
}

type GeneratedDoc struct {
	EmployeeID string `json:"employee_id"`
	Filename   string `json:"filename"`
	URL        string `json:"url"`
}

type SendFailure struct {
	Employee string `json:"employee"`
	Email    string `json:"email"`
	Error    string `json:"error"`
}

type SendSummary struct {
	Success  bool          `json:"success"`
	Sent     int           `json:"sent"`
	Failed   int           `json:"failed"`
	Failures []SendFailure `json:"failures"`
}
