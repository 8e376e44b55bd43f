package messages

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	SenderEmployee = "employee"
	SenderAdmin    = "admin"
)

type Message struct {
	ID           string    `json:"id"`
	SenderID     string    `json:"sender_id"`
	SenderType   string    `json:"sender_type"`
	ReceiverID   string    `json:"receiver_id"`
	ReceiverType string    `json:"receiver_type"`
	Content      string    `json:"content"`
	CreatedAt    time.Time `json:"created_at"`
}

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

func (s *Store) Create(ctx context.Context, msg Message) (string, error) {
	var id string
	err := s.DB.QueryRow(ctx, `
    INSERT INTO messages (sender_id, sender_type, receiver_id, receiver_type, content)
    VALUES ($1,$2,$3,$4,$5)
    RETURNING id
  `, msg.SenderID, msg.SenderType, msg.ReceiverID, msg.ReceiverType, msg.Content).Scan(&id)
	if err != nil {
		return "", err
	}
	return id, nil
}

// Conversation returns every message between the employee and the admin in
// either direction, oldest first.
func (s *Store) Conversation(ctx context.Context, employeeID, adminID string) ([]Message, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, sender_id, sender_type, receiver_id, receiver_type, content, created_at
    FROM messages
    WHERE (sender_id = $1 AND receiver_id = $2)
       OR (sender_id = $2 AND receiver_id = $1)
    ORDER BY created_at ASC
  `, employeeID, adminID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Message
	for rows.Next() {
		var msg Message
		if err := rows.Scan(&msg.ID, &msg.SenderID, &msg.SenderType, &msg.ReceiverID,
			&msg.ReceiverType, &msg.Content, &msg.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, msg)
	}
	return out, rows.Err()
}
