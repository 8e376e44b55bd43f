package dashboard

import "time"

const unknownDepartment = "Unknown"

// ChartSeries is the label/data pair shape the frontend charts consume.
// Values are aligned positionally with labels.
type ChartSeries struct {
	Labels []string  `json:"labels"`
	Data   []float64 `json:"data"`
}

type EmployeeRow struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Department string  `json:"department"`
	HourlyRate float64 `json:"hourly_rate"`
}

type PayrollRow struct {
	EmployeeID    string    `json:"employee_id"`
	OvertimeHours float64   `json:"overtime_hours"`
	TotalSalary   float64   `json:"total_salary"`
	PaidDate      time.Time `json:"paid_date"`
}

type LeaveRow struct {
	ID        string    `json:"id"`
	Employee  string    `json:"employee"`
	LeaveType string    `json:"leave_type"`
	FromDate  time.Time `json:"from_date"`
	ToDate    time.Time `json:"to_date"`
	Status    string    `json:"status"`
}

type EventRow struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	EventDate time.Time `json:"event_date"`
}
