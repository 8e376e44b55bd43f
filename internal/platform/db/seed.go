package db

import (
	"context"
	"log/slog"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"hrportal/internal/auth"
	"hrportal/internal/platform/config"
)

// Seed creates the initial admin account when no admin exists yet.
func Seed(ctx context.Context, pool *pgxpool.Pool, cfg config.Config) error {
	if strings.TrimSpace(cfg.SeedAdminEmail) == "" || strings.TrimSpace(cfg.SeedAdminPassword) == "" {
		slog.Info("seed skipped, no admin credentials configured")
		return nil
	}

	var count int
	if err := pool.QueryRow(ctx, "SELECT COUNT(1) FROM employees WHERE role = 'admin'").Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := auth.HashPassword(cfg.SeedAdminPassword)
	if err != nil {
		return err
	}

	_, err = pool.Exec(ctx, `
    INSERT INTO employees (first_name, last_name, email, department, hourly_rate, password_hash, role)
    VALUES ('System', 'Admin', $1, 'Administration', 0, $2, 'admin')
  `, cfg.SeedAdminEmail, hash)
	if err != nil {
		return err
	}
	slog.Info("seeded admin account", "email", cfg.SeedAdminEmail)
	return nil
}
