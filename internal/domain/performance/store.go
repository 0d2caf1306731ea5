package performance

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"hrms/internal/domain/authz"
)

var ErrNotFound = errors.New("performance record not found")

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

func (s *Store) CreateGoal(ctx context.Context, goal Goal) (string, error) {
	var id string
	err := s.DB.QueryRow(ctx, `
    INSERT INTO performance_goals (employee_id, title, description, due_date, status, created_by)
    VALUES ($1,$2,$3,$4,$5,$6)
    RETURNING id
  `, goal.EmployeeID, goal.Title, goal.Description, goal.DueDate, goal.Status, goal.CreatedBy).Scan(&id)
	return id, err
}

func (s *Store) GetGoal(ctx context.Context, goalID string) (Goal, error) {
	var goal Goal
	err := s.DB.QueryRow(ctx, `
    SELECT id, employee_id, title, description, due_date, status, created_by, created_at
    FROM performance_goals
    WHERE id = $1
  `, goalID).Scan(&goal.ID, &goal.EmployeeID, &goal.Title, &goal.Description, &goal.DueDate,
		&goal.Status, &goal.CreatedBy, &goal.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return Goal{}, ErrNotFound
	}
	return goal, err
}

func (s *Store) UpdateGoalStatus(ctx context.Context, goalID, status string) error {
	tag, err := s.DB.Exec(ctx, "UPDATE performance_goals SET status = $1 WHERE id = $2", status, goalID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) ListGoals(ctx context.Context, pred authz.Predicate, limit, offset int) ([]Goal, error) {
	query := `
    SELECT id, employee_id, title, description, due_date, status, created_by, created_at
    FROM performance_goals
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

	var goals []Goal
	for rows.Next() {
		var goal Goal
		if err := rows.Scan(&goal.ID, &goal.EmployeeID, &goal.Title, &goal.Description, &goal.DueDate,
			&goal.Status, &goal.CreatedBy, &goal.CreatedAt); err != nil {
			return nil, err
		}
		goals = append(goals, goal)
	}
	return goals, rows.Err()
}

func (s *Store) CreateReview(ctx context.Context, review Review) (string, error) {
	var id string
	err := s.DB.QueryRow(ctx, `
    INSERT INTO performance_reviews (employee_id, period, rating, summary, reviewer_id)
    VALUES ($1,$2,$3,$4,$5)
    RETURNING id
  `, review.EmployeeID, review.Period, review.Rating, review.Summary, review.ReviewerID).Scan(&id)
	return id, err
}

func (s *Store) GetReview(ctx context.Context, reviewID string) (Review, error) {
	var review Review
	err := s.DB.QueryRow(ctx, `
    SELECT id, employee_id, period, rating, summary, reviewer_id, created_at
    FROM performance_reviews
    WHERE id = $1
  `, reviewID).Scan(&review.ID, &review.EmployeeID, &review.Period, &review.Rating,
		&review.Summary, &review.ReviewerID, &review.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return Review{}, ErrNotFound
	}
	return review, err
}

func (s *Store) ListReviews(ctx context.Context, pred authz.Predicate, limit, offset int) ([]Review, error) {
	query := `
    SELECT id, employee_id, period, rating, summary, reviewer_id, created_at
    FROM performance_reviews
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

	var reviews []Review
	for rows.Next() {
		var review Review
		if err := rows.Scan(&review.ID, &review.EmployeeID, &review.Period, &review.Rating,
			&review.Summary, &review.ReviewerID, &review.CreatedAt); err != nil {
			return nil, err
		}
		reviews = append(reviews, review)
	}
	return reviews, rows.Err()
}
