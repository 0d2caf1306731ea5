package notifications

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"hrms/internal/domain/authz"
)

var ErrNotFound = errors.New("notification not found")

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

// Notify is called by other services, not by a transport, so it takes no
// principal.
func (s *Store) Notify(ctx context.Context, employeeID, kind, title, body string) error {
	_, err := s.DB.Exec(ctx, `
    INSERT INTO notifications (employee_id, kind, title, body)
    VALUES ($1,$2,$3,$4)
  `, employeeID, kind, title, body)
	return err
}

func (s *Store) Get(ctx context.Context, notificationID string) (Notification, error) {
	var n Notification
	err := s.DB.QueryRow(ctx, `
    SELECT id, employee_id, kind, title, body, read_at, created_at
    FROM notifications
    WHERE id = $1
  `, notificationID).Scan(&n.ID, &n.EmployeeID, &n.Kind, &n.Title, &n.Body, &n.ReadAt, &n.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return Notification{}, ErrNotFound
	}
	return n, err
}

func (s *Store) List(ctx context.Context, pred authz.Predicate, unreadOnly bool, limit, offset int) ([]Notification, error) {
	query := `
    SELECT id, employee_id, kind, title, body, read_at, created_at
    FROM notifications
    WHERE true`
	clause, args := pred.SQL("employee_id", "", 1)
	query += clause
	if unreadOnly {
		query += " AND read_at IS NULL"
	}
	query += " ORDER BY created_at DESC"
	query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := s.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []Notification
	for rows.Next() {
		var n Notification
		if err := rows.Scan(&n.ID, &n.EmployeeID, &n.Kind, &n.Title, &n.Body, &n.ReadAt, &n.CreatedAt); err != nil {
			return nil, err
		}
		list = append(list, n)
	}
	return list, rows.Err()
}

func (s *Store) MarkRead(ctx context.Context, notificationID string) error {
	tag, err := s.DB.Exec(ctx,
		"UPDATE notifications SET read_at = COALESCE(read_at, now()) WHERE id = $1", notificationID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, notificationID string) error {
	tag, err := s.DB.Exec(ctx, "DELETE FROM notifications WHERE id = $1", notificationID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
