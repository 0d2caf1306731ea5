package payroll

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"hrms/internal/domain/authz"
)

var ErrNotFound = errors.New("payroll record not found")

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

func (s *Store) Create(ctx context.Context, input RecordInput, net float64) (string, error) {
	var id string
	err := s.DB.QueryRow(ctx, `
    INSERT INTO payroll_records (employee_id, period_start, period_end, gross, deductions, net, currency)
    VALUES ($1,$2,$3,$4,$5,$6,$7)
    RETURNING id
  `, input.EmployeeID, input.PeriodStart, input.PeriodEnd, input.Gross, input.Deductions, net, input.Currency).Scan(&id)
	return id, err
}

func (s *Store) Get(ctx context.Context, recordID string) (Record, error) {
	var rec Record
	err := s.DB.QueryRow(ctx, `
    SELECT id, employee_id, period_start, period_end, gross, deductions, net, currency, created_at
    FROM payroll_records
    WHERE id = $1
  `, recordID).Scan(&rec.ID, &rec.EmployeeID, &rec.PeriodStart, &rec.PeriodEnd,
		&rec.Gross, &rec.Deductions, &rec.Net, &rec.Currency, &rec.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return Record{}, ErrNotFound
	}
	return rec, err
}

func (s *Store) List(ctx context.Context, pred authz.Predicate, limit, offset int) ([]Record, error) {
	query := `
    SELECT id, employee_id, period_start, period_end, gross, deductions, net, currency, created_at
    FROM payroll_records
    WHERE true`
	clause, args := pred.SQL("employee_id", "", 1)
	query += clause
	query += " ORDER BY period_start DESC"
	query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := s.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var rec Record
		if err := rows.Scan(&rec.ID, &rec.EmployeeID, &rec.PeriodStart, &rec.PeriodEnd,
			&rec.Gross, &rec.Deductions, &rec.Net, &rec.Currency, &rec.CreatedAt); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}
