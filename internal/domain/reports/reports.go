package reports

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Service produces aggregate counts for the reports surface. Routes mounting
// it are gated on the reports module as a whole, so queries here run without
// per-row filtering.
type Service struct {
	DB *pgxpool.Pool
}

func NewService(db *pgxpool.Pool) *Service {
	return &Service{DB: db}
}

type HeadcountRow struct {
	Department string `json:"department"`
	Count      int    `json:"count"`
}

func (s *Service) Headcount(ctx context.Context) ([]HeadcountRow, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT department, count(*)
    FROM employees
    WHERE status = 'ACTIVE'
    GROUP BY department
    ORDER BY department
  `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []HeadcountRow
	for rows.Next() {
		var row HeadcountRow
		if err := rows.Scan(&row.Department, &row.Count); err != nil {
			return nil, err
		}
		result = append(result, row)
	}
	return result, rows.Err()
}

type LeaveSummary struct {
	Pending  int `json:"pending"`
	Approved int `json:"approved"`
	Rejected int `json:"rejected"`
}

func (s *Service) LeaveStatus(ctx context.Context) (LeaveSummary, error) {
	var summary LeaveSummary
	err := s.DB.QueryRow(ctx, `
    SELECT
      count(*) FILTER (WHERE status = 'PENDING'),
      count(*) FILTER (WHERE status = 'APPROVED'),
      count(*) FILTER (WHERE status = 'REJECTED')
    FROM leave_requests
  `).Scan(&summary.Pending, &summary.Approved, &summary.Rejected)
	return summary, err
}

type TrainingRow struct {
	ProgramID string `json:"programId"`
	Title     string `json:"title"`
	Enrolled  int    `json:"enrolled"`
	Capacity  int    `json:"capacity"`
}

func (s *Service) TrainingUptake(ctx context.Context) ([]TrainingRow, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT p.id, p.title, count(e.id), p.capacity
    FROM training_programs p
    LEFT JOIN training_enrollments e ON e.program_id = p.id
    GROUP BY p.id, p.title, p.capacity
    ORDER BY p.title
  `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []TrainingRow
	for rows.Next() {
		var row TrainingRow
		if err := rows.Scan(&row.ProgramID, &row.Title, &row.Enrolled, &row.Capacity); err != nil {
			return nil, err
		}
		result = append(result, row)
	}
	return result, rows.Err()
}
