package documents

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"hrms/internal/domain/authz"
)

var ErrNotFound = errors.New("document not found")

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

func (s *Store) Create(ctx context.Context, input UploadInput, uploadedBy string) (string, error) {
	var id string
	err := s.DB.QueryRow(ctx, `
    INSERT INTO documents (employee_id, title, file_name, content_type, access_level, uploaded_by)
    VALUES ($1,$2,$3,$4,$5,$6)
    RETURNING id
  `, input.EmployeeID, input.Title, input.FileName, input.ContentType, string(input.AccessLevel), uploadedBy).Scan(&id)
	return id, err
}

func (s *Store) Get(ctx context.Context, documentID string) (Document, error) {
	var doc Document
	err := s.DB.QueryRow(ctx, `
    SELECT id, employee_id, title, file_name, content_type, access_level, uploaded_by, created_at
    FROM documents
    WHERE id = $1
  `, documentID).Scan(&doc.ID, &doc.EmployeeID, &doc.Title, &doc.FileName, &doc.ContentType,
		&doc.AccessLevel, &doc.UploadedBy, &doc.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return Document{}, ErrNotFound
	}
	return doc, err
}

func (s *Store) Delete(ctx context.Context, documentID string) error {
	tag, err := s.DB.Exec(ctx, "DELETE FROM documents WHERE id = $1", documentID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// List applies the caller's predicate at the query level so rows outside the
// visible tiers or outside the owner scope never leave the database.
func (s *Store) List(ctx context.Context, pred authz.Predicate, limit, offset int) ([]Document, error) {
	query := `
    SELECT id, employee_id, title, file_name, content_type, access_level, uploaded_by, created_at
    FROM documents
    WHERE true`
	clause, args := pred.SQL("employee_id", "access_level", 1)
	query += clause
	query += " ORDER BY created_at DESC"
	query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := s.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var docs []Document
	for rows.Next() {
		var doc Document
		if err := rows.Scan(&doc.ID, &doc.EmployeeID, &doc.Title, &doc.FileName, &doc.ContentType,
			&doc.AccessLevel, &doc.UploadedBy, &doc.CreatedAt); err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, rows.Err()
}
