package notifications

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Notification struct {
	ID         string    `json:"id"`
	EmployeeID *string   `json:"employee_id"` // nil means broadcast
	Title      string    `json:"title"`
	Message    string    `json:"message"`
	IsRead     bool      `json:"is_read"`
	CreatedAt  time.Time `json:"created_at"`
}

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

// Notify writes a personal notification; leave decisions use this through
// the leave.Notifier interface.
func (s *Store) Notify(ctx context.Context, employeeID, title, message string) error {
	_, err := s.DB.Exec(ctx, `
    INSERT INTO notifications (employee_id, title, message)
    VALUES ($1,$2,$3)
  `, employeeID, title, message)
	return err
}

// Broadcast writes a notification visible to every employee.
func (s *Store) Broadcast(ctx context.Context, title, message string) error {
	_, err := s.DB.Exec(ctx, `
    INSERT INTO notifications (employee_id, title, message)
    VALUES (NULL,$1,$2)
  `, title, message)
	return err
}

// List returns the employee's personal notifications plus all broadcasts,
// newest first.
func (s *Store) List(ctx context.Context, employeeID string) ([]Notification, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, employee_id, title, message, is_read, created_at
    FROM notifications
    WHERE employee_id = $1 OR employee_id IS NULL
    ORDER BY created_at DESC
  `, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Notification
	for rows.Next() {
		var n Notification
		if err := rows.Scan(&n.ID, &n.EmployeeID, &n.Title, &n.Message, &n.IsRead, &n.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, rows.Err()
}

// MarkAllRead flips is_read on the employee's personal notifications and on
// every broadcast.
func (s *Store) MarkAllRead(ctx context.Context, employeeID string) error {
	_, err := s.DB.Exec(ctx, `
    UPDATE notifications SET is_read = true
    WHERE employee_id = $1 OR employee_id IS NULL
  `, employeeID)
	return err
}
