package recruitment

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrNotFound = errors.New("job posting not found")

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

const postingColumns = "id, title, description, department, location, status, published, created_at"

func scanPosting(row pgx.Row) (Posting, error) {
	var posting Posting
	err := row.Scan(&posting.ID, &posting.Title, &posting.Description, &posting.Department,
		&posting.Location, &posting.Status, &posting.Published, &posting.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return Posting{}, ErrNotFound
	}
	return posting, err
}

func (s *Store) Create(ctx context.Context, input PostingInput) (string, error) {
	var id string
	err := s.DB.QueryRow(ctx, `
    INSERT INTO job_postings (title, description, department, location, status, published)
    VALUES ($1,$2,$3,$4,$5,$6)
    RETURNING id
  `, input.Title, input.Description, input.Department, input.Location, input.Status, input.Published).Scan(&id)
	return id, err
}

func (s *Store) Get(ctx context.Context, postingID string) (Posting, error) {
	return scanPosting(s.DB.QueryRow(ctx,
		"SELECT "+postingColumns+" FROM job_postings WHERE id = $1", postingID))
}

func (s *Store) Update(ctx context.Context, postingID string, input PostingInput) error {
	tag, err := s.DB.Exec(ctx, `
    UPDATE job_postings
    SET title = $1, description = $2, department = $3, location = $4, status = $5, published = $6
    WHERE id = $7
  `, input.Title, input.Description, input.Department, input.Location, input.Status, input.Published, postingID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, postingID string) error {
	tag, err := s.DB.Exec(ctx, "DELETE FROM job_postings WHERE id = $1", postingID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) List(ctx context.Context, publishedOnly bool, limit, offset int) ([]Posting, error) {
	query := "SELECT " + postingColumns + " FROM job_postings WHERE true"
	if publishedOnly {
		query += " AND published"
	}
	query += " ORDER BY created_at DESC LIMIT $1 OFFSET $2"

	rows, err := s.DB.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var postings []Posting
	for rows.Next() {
		posting, err := scanPosting(rows)
		if err != nil {
			return nil, err
		}
		postings = append(postings, posting)
	}
	return postings, rows.Err()
}
