package conduct

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"hrms/internal/domain/authz"
)

var ErrNotFound = errors.New("conduct record not found")

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

func (s *Store) Create(ctx context.Context, record Record) (string, error) {
	var id string
	err := s.DB.QueryRow(ctx, `
    INSERT INTO conduct_records (employee_id, category, title, description, issued_by, issued_at)
    VALUES ($1,$2,$3,$4,$5,$6)
    RETURNING id
  `, record.EmployeeID, record.Category, record.Title, record.Description, record.IssuedBy, record.IssuedAt).Scan(&id)
	return id, err
}

func (s *Store) Get(ctx context.Context, recordID string) (Record, error) {
	var rec Record
	err := s.DB.QueryRow(ctx, `
    SELECT id, employee_id, category, title, description, issued_by, issued_at, created_at
    FROM conduct_records
    WHERE id = $1
  `, recordID).Scan(&rec.ID, &rec.EmployeeID, &rec.Category, &rec.Title, &rec.Description,
		&rec.IssuedBy, &rec.IssuedAt, &rec.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return Record{}, ErrNotFound
	}
	return rec, err
}

func (s *Store) List(ctx context.Context, category Category, pred authz.Predicate, limit, offset int) ([]Record, error) {
	query := `
    SELECT id, employee_id, category, title, description, issued_by, issued_at, created_at
    FROM conduct_records
    WHERE category = $1`
	clause, args := pred.SQL("employee_id", "", 2)
	query += clause
	query += " ORDER BY created_at DESC"
	query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)+2, len(args)+3)
	args = append([]any{category}, args...)
	args = append(args, limit, offset)

	rows, err := s.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var rec Record
		if err := rows.Scan(&rec.ID, &rec.EmployeeID, &rec.Category, &rec.Title, &rec.Description,
			&rec.IssuedBy, &rec.IssuedAt, &rec.CreatedAt); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}
