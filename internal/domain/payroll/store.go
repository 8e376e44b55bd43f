package payroll

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Store struct {
	DB *pgxpool.Pool

	// AllowDuplicates preserves the historical behaviour of accepting more
	// than one record per (employee, pay period). When false, Insert rejects
	// the second record with ErrDuplicateRecord.
	AllowDuplicates bool
}

func NewStore(db *pgxpool.Pool, allowDuplicates bool) *Store {
	return &Store{DB: db, AllowDuplicates: allowDuplicates}
}

func (s *Store) Insert(ctx context.Context, rec Record) (string, error) {
	if !s.AllowDuplicates {
		var count int
		if err := s.DB.QueryRow(ctx, `
      SELECT COUNT(1) FROM payroll_records
      WHERE employee_id = $1 AND pay_period = $2
    `, rec.EmployeeID, rec.PayPeriod).Scan(&count); err != nil {
			return "", err
		}
		if count > 0 {
			return "", ErrDuplicateRecord
		}
	}

	var id string
	err := s.DB.QueryRow(ctx, `
    INSERT INTO payroll_records
      (employee_id, pay_period, basic_hours, hourly_rate, overtime_hours, overtime_rate, deductions, total_salary)
    VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
    RETURNING id
  `, rec.EmployeeID, rec.PayPeriod, rec.BasicHours, rec.HourlyRate, rec.OvertimeHours, rec.OvertimeRate, rec.Deductions, rec.TotalSalary).Scan(&id)
	if err != nil {
		return "", err
	}
	return id, nil
}

// List returns stored records, newest first, optionally filtered by employee
// and/or pay period. Employee names are joined in for display.
func (s *Store) List(ctx context.Context, employeeID, payPeriod string) ([]Record, error) {
	query := `
    SELECT r.id, r.employee_id, e.first_name || ' ' || e.last_name,
           r.pay_period, r.basic_hours, r.hourly_rate, r.overtime_hours,
           r.overtime_rate, r.deductions, r.total_salary, r.paid_date, r.created_at
    FROM payroll_records r
    JOIN employees e ON r.employee_id = e.id
  `
	var args []any
	var where []string
	if employeeID != "" {
		args = append(args, employeeID)
		where = append(where, "r.employee_id = $1")
	}
	if payPeriod != "" {
		args = append(args, payPeriod)
		if len(args) == 1 {
			where = append(where, "r.pay_period = $1")
		} else {
			where = append(where, "r.pay_period = $2")
		}
	}
	for i, clause := range where {
		if i == 0 {
			query += " WHERE " + clause
		} else {
			query += " AND " + clause
		}
	}
	query += " ORDER BY r.created_at DESC"

	rows, err := s.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var rec Record
		if err := rows.Scan(&rec.ID, &rec.EmployeeID, &rec.EmployeeName, &rec.PayPeriod,
			&rec.BasicHours, &rec.HourlyRate, &rec.OvertimeHours, &rec.OvertimeRate,
			&rec.Deductions, &rec.TotalSalary, &rec.PaidDate, &rec.CreatedAt); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

func (s *Store) PayslipRows(ctx context.Context, payPeriod string) ([]PayslipData, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT r.employee_id, e.first_name, e.last_name, e.email,
           r.pay_period, r.basic_hours, r.hourly_rate, r.overtime_hours,
           r.overtime_rate, r.deductions, r.total_salary
    FROM payroll_records r
    JOIN employees e ON r.employee_id = e.id
    WHERE r.pay_period = $1
    ORDER BY e.last_name, e.first_name
  `, payPeriod)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []PayslipData
	for rows.Next() {
		var data PayslipData
		if err := rows.Scan(&data.EmployeeID, &data.FirstName, &data.LastName, &data.Email,
			&data.PayPeriod, &data.BasicHours, &data.HourlyRate, &data.OvertimeHours,
			&data.OvertimeRate, &data.Deductions, &data.TotalSalary); err != nil {
			return nil, err
		}
		out = append(out, data)
	}
	return out, rows.Err()
}

func (s *Store) PayslipRow(ctx context.Context, payPeriod, employeeID string) (PayslipData, error) {
	var data PayslipData
	err := s.DB.QueryRow(ctx, `
    SELECT r.employee_id, e.first_name, e.last_name, e.email,
           r.pay_period, r.basic_hours, r.hourly_rate, r.overtime_hours,
           r.overtime_rate, r.deductions, r.total_salary
    FROM payroll_records r
    JOIN employees e ON r.employee_id = e.id
    WHERE r.pay_period = $1 AND r.employee_id = $2
    ORDER BY r.created_at DESC
    LIMIT 1
  `, payPeriod, employeeID).Scan(&data.EmployeeID, &data.FirstName, &data.LastName, &data.Email,
		&data.PayPeriod, &data.BasicHours, &data.HourlyRate, &data.OvertimeHours,
		&data.OvertimeRate, &data.Deductions, &data.TotalSalary)
	if err != nil {
		return PayslipData{}, err
	}
	return data, nil
}
