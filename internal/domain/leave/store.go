package leave

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"hrms/internal/domain/authz"
)

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

var ErrNotFound = errors.New("leave request not found")

func (s *Store) Create(ctx context.Context, employeeID, reason string, startDate, endDate time.Time, days float64) (string, error) {
	var id string
	err := s.DB.QueryRow(ctx, `
    INSERT INTO leave_requests (employee_id, start_date, end_date, days, reason, status)
    VALUES ($1,$2,$3,$4,$5,$6)
    RETURNING id
  `, employeeID, startDate, endDate, days, reason, StatusPending).Scan(&id)
	return id, err
}

func (s *Store) Get(ctx context.Context, requestID string) (Request, error) {
	var req Request
	err := s.DB.QueryRow(ctx, `
    SELECT id, employee_id, start_date, end_date, days, reason, status,
           COALESCE(approver_id, ''), decided_at, COALESCE(rejection_reason, ''), created_at
    FROM leave_requests
    WHERE id = $1
  `, requestID).Scan(&req.ID, &req.EmployeeID, &req.StartDate, &req.EndDate, &req.Days,
		&req.Reason, &req.Status, &req.ApproverID, &req.DecidedAt, &req.RejectionReason, &req.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return Request{}, ErrNotFound
	}
	return req, err
}

func (s *Store) List(ctx context.Context, pred authz.Predicate, limit, offset int) ([]Request, error) {
	query := `
    SELECT id, employee_id, start_date, end_date, days, reason, status,
           COALESCE(approver_id, ''), decided_at, COALESCE(rejection_reason, ''), created_at
    FROM leave_requests
    WHERE true`
	clause, args := pred.SQL("employee_id", "", 1)
	query += clause
	query += " ORDER BY created_at DESC"
	query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := s.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []Request
	for rows.Next() {
		var req Request
		if err := rows.Scan(&req.ID, &req.EmployeeID, &req.StartDate, &req.EndDate, &req.Days,
			&req.Reason, &req.Status, &req.ApproverID, &req.DecidedAt, &req.RejectionReason, &req.CreatedAt); err != nil {
			return nil, err
		}
		requests = append(requests, req)
	}
	return requests, rows.Err()
}

// ApplyTransition persists a state-machine outcome under optimistic
// concurrency: the update only lands if the row is still PENDING. A lost race
// with a concurrent approve or reject surfaces as a conflict.
func (s *Store) ApplyTransition(ctx context.Context, requestID string, outcome TransitionOutcome) error {
	tag, err := s.DB.Exec(ctx, `
    UPDATE leave_requests
    SET status = $1, approver_id = $2, decided_at = $3, rejection_reason = NULLIF($4, '')
    WHERE id = $5 AND status = $6
  `, outcome.Status, outcome.ApproverID, outcome.DecidedAt, outcome.RejectionReason, requestID, StatusPending)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrAlreadyFinalized
	}
	return nil
}
