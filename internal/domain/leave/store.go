package leave

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

func (s *Store) Create(ctx context.Context, req Request) (string, error) {
	var id string
	err := s.DB.QueryRow(ctx, `
    INSERT INTO leave_requests (employee_id, leave_type, from_date, to_date, reason)
    VALUES ($1,$2,$3,$4,$5)
    RETURNING id
  `, req.EmployeeID, req.LeaveType, req.FromDate, req.ToDate, req.Reason).Scan(&id)
	if err != nil {
		return "", err
	}
	return id, nil
}

func (s *Store) List(ctx context.Context, employeeID string) ([]Request, error) {
	query := `
    SELECT lr.id, lr.employee_id, e.first_name || ' ' || e.last_name,
           lr.leave_type, lr.from_date, lr.to_date, COALESCE(lr.reason, ''), lr.status, lr.created_at
    FROM leave_requests lr
    JOIN employees e ON lr.employee_id = e.id
  `
	var args []any
	if employeeID != "" {
		query += " WHERE lr.employee_id = $1"
		args = append(args, employeeID)
	}
	query += " ORDER BY lr.created_at DESC"

	rows, err := s.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []Request
	for rows.Next() {
		var req Request
		if err := rows.Scan(&req.ID, &req.EmployeeID, &req.EmployeeName, &req.LeaveType,
			&req.FromDate, &req.ToDate, &req.Reason, &req.Status, &req.CreatedAt); err != nil {
			return nil, err
		}
		requests = append(requests, req)
	}
	return requests, rows.Err()
}

func (s *Store) Get(ctx context.Context, id string) (Request, error) {
	var req Request
	err := s.DB.QueryRow(ctx, `
    SELECT id, employee_id, leave_type, from_date, to_date, COALESCE(reason, ''), status, created_at
    FROM leave_requests
    WHERE id = $1
  `, id).Scan(&req.ID, &req.EmployeeID, &req.LeaveType, &req.FromDate, &req.ToDate,
		&req.Reason, &req.Status, &req.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return Request{}, ErrNotFound
	}
	if err != nil {
		return Request{}, err
	}
	return req, nil
}

func (s *Store) UpdateStatus(ctx context.Context, id, status string) error {
	tag, err := s.DB.Exec(ctx, "UPDATE leave_requests SET status = $1 WHERE id = $2", status, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
