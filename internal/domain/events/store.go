package events

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Event struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	EventDate time.Time `json:"event_date"`
	CreatedAt time.Time `json:"created_at"`
}

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

func (s *Store) Create(ctx context.Context, title string, eventDate time.Time) (string, error) {
	var id string
	err := s.DB.QueryRow(ctx, `
    INSERT INTO events (title, event_date)
    VALUES ($1,$2)
    RETURNING id
  `, title, eventDate).Scan(&id)
	if err != nil {
		return "", err
	}
	return id, nil
}

func (s *Store) List(ctx context.Context) ([]Event, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, title, event_date, created_at
    FROM events
    ORDER BY event_date
  `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Event
	for rows.Next() {
		var event Event
		if err := rows.Scan(&event.ID, &event.Title, &event.EventDate, &event.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, event)
	}
	return out, rows.Err()
}
