package training

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"hrms/internal/domain/authz"
)

var (
	ErrNotFound        = errors.New("training record not found")
	ErrAlreadyEnrolled = errors.New("employee already enrolled in program")
	ErrProgramFull     = errors.New("program is at capacity")
)

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

func (s *Store) CreateProgram(ctx context.Context, program Program) (string, error) {
	var id string
	err := s.DB.QueryRow(ctx, `
    INSERT INTO training_programs (title, description, starts_on, ends_on, capacity)
    VALUES ($1,$2,$3,$4,$5)
    RETURNING id
  `, program.Title, program.Description, program.StartsOn, program.EndsOn, program.Capacity).Scan(&id)
	return id, err
}

func (s *Store) GetProgram(ctx context.Context, programID string) (Program, error) {
	var program Program
	err := s.DB.QueryRow(ctx, `
    SELECT id, title, description, starts_on, ends_on, capacity, created_at
    FROM training_programs
    WHERE id = $1
  `, programID).Scan(&program.ID, &program.Title, &program.Description,
		&program.StartsOn, &program.EndsOn, &program.Capacity, &program.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return Program{}, ErrNotFound
	}
	return program, err
}

func (s *Store) ListPrograms(ctx context.Context, limit, offset int) ([]Program, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, title, description, starts_on, ends_on, capacity, created_at
    FROM training_programs
    ORDER BY starts_on DESC NULLS LAST
    LIMIT $1 OFFSET $2
  `, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var programs []Program
	for rows.Next() {
		var program Program
		if err := rows.Scan(&program.ID, &program.Title, &program.Description,
			&program.StartsOn, &program.EndsOn, &program.Capacity, &program.CreatedAt); err != nil {
			return nil, err
		}
		programs = append(programs, program)
	}
	return programs, rows.Err()
}

// Enroll inserts inside the capacity check so two racing enrollments cannot
// both land in the last seat.
func (s *Store) Enroll(ctx context.Context, programID, employeeID string) (string, error) {
	var id string
	err := s.DB.QueryRow(ctx, `
    INSERT INTO training_enrollments (program_id, employee_id)
    SELECT $1, $2
    WHERE (SELECT capacity FROM training_programs WHERE id = $1) = 0
       OR (SELECT count(*) FROM training_enrollments WHERE program_id = $1)
          < (SELECT capacity FROM training_programs WHERE id = $1)
    ON CONFLICT (program_id, employee_id) DO NOTHING
    RETURNING id
  `, programID, employeeID).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		var exists bool
		if checkErr := s.DB.QueryRow(ctx,
			"SELECT EXISTS (SELECT 1 FROM training_enrollments WHERE program_id = $1 AND employee_id = $2)",
			programID, employeeID).Scan(&exists); checkErr != nil {
			return "", checkErr
		}
		if exists {
			return "", ErrAlreadyEnrolled
		}
		return "", ErrProgramFull
	}
	return id, err
}

func (s *Store) ListEnrollments(ctx context.Context, programID string, pred authz.Predicate, limit, offset int) ([]Enrollment, error) {
	query := `
    SELECT id, program_id, employee_id, status, created_at
    FROM training_enrollments
    WHERE program_id = $1`
	clause, args := pred.SQL("employee_id", "", 2)
	query += clause
	query += " ORDER BY created_at DESC"
	query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)+2, len(args)+3)
	args = append([]any{programID}, args...)
	args = append(args, limit, offset)

	rows, err := s.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var enrollments []Enrollment
	for rows.Next() {
		var enr Enrollment
		if err := rows.Scan(&enr.ID, &enr.ProgramID, &enr.EmployeeID, &enr.Status, &enr.CreatedAt); err != nil {
			return nil, err
		}
		enrollments = append(enrollments, enr)
	}
	return enrollments, rows.Err()
}
