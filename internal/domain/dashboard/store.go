package dashboard

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

func (s *Store) ListEmployees(ctx context.Context) ([]EmployeeRow, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, first_name || ' ' || last_name, COALESCE(department, ''), hourly_rate
    FROM employees
    ORDER BY created_at
  `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []EmployeeRow
	for rows.Next() {
		var emp EmployeeRow
		if err := rows.Scan(&emp.ID, &emp.Name, &emp.Department, &emp.HourlyRate); err != nil {
			return nil, err
		}
		out = append(out, emp)
	}
	return out, rows.Err()
}

func (s *Store) ListPayrolls(ctx context.Context) ([]PayrollRow, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT employee_id, overtime_hours, total_salary, paid_date
    FROM payroll_records
    ORDER BY created_at
  `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []PayrollRow
	for rows.Next() {
		var row PayrollRow
		if err := rows.Scan(&row.EmployeeID, &row.OvertimeHours, &row.TotalSalary, &row.PaidDate); err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

func (s *Store) ListLeaves(ctx context.Context) ([]LeaveRow, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT lr.id, e.first_name || ' ' || e.last_name, lr.leave_type, lr.from_date, lr.to_date, lr.status
    FROM leave_requests lr
    JOIN employees e ON lr.employee_id = e.id
    ORDER BY lr.created_at DESC
    LIMIT 50
  `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []LeaveRow
	for rows.Next() {
		var row LeaveRow
		if err := rows.Scan(&row.ID, &row.Employee, &row.LeaveType, &row.FromDate, &row.ToDate, &row.Status); err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

func (s *Store) ListEvents(ctx context.Context) ([]EventRow, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, title, event_date
    FROM events
    ORDER BY event_date
  `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []EventRow
	for rows.Next() {
		var row EventRow
		if err := rows.Scan(&row.ID, &row.Title, &row.EventDate); err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	return out, rows.Err()
}
