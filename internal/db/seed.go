package db

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"hrms/internal/auth"
	"hrms/internal/domain/authz"
	"hrms/internal/platform/config"
)

// Seed provisions the initial HR administrator so a fresh deployment can log
// in. It is idempotent and does nothing when the account already exists or no
// seed credentials are configured.
func Seed(ctx context.Context, pool *pgxpool.Pool, cfg config.Config) error {
	email := strings.TrimSpace(cfg.SeedAdminEmail)
	if email == "" || cfg.SeedAdminPassword == "" {
		return nil
	}

	var existing string
	err := pool.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&existing)
	if err == nil {
		return nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return err
	}

	var employeeID string
	if err := pool.QueryRow(ctx, `
    INSERT INTO employees (employee_number, first_name, last_name, email, department, position)
    VALUES ('EMP-0001', 'HR', 'Administrator', $1, 'Human Resources', 'HR Administrator')
    ON CONFLICT (email) DO UPDATE SET updated_at = now()
    RETURNING id
  `, email).Scan(&employeeID); err != nil {
		return err
	}

	hash, err := auth.HashPassword(cfg.SeedAdminPassword)
	if err != nil {
		return err
	}
	_, err = pool.Exec(ctx, `
    INSERT INTO users (email, password_hash, role, employee_id)
    VALUES ($1, $2, $3, $4)
  `, email, hash, string(authz.RoleHR), employeeID)
	return err
}
