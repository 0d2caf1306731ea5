package employees

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"hrms/internal/domain/authz"
)

var ErrNotFound = errors.New("employee not found")

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

const profileColumns = `
  id, employee_number, first_name, last_name, email, phone,
  department, position, hire_date, status, created_at, updated_at`

func scanEmployee(row pgx.Row) (Employee, error) {
	var emp Employee
	err := row.Scan(&emp.ID, &emp.EmployeeNumber, &emp.FirstName, &emp.LastName, &emp.Email,
		&emp.Phone, &emp.Department, &emp.Position, &emp.HireDate, &emp.Status,
		&emp.CreatedAt, &emp.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return Employee{}, ErrNotFound
	}
	return emp, err
}

func (s *Store) Create(ctx context.Context, input ProfileInput) (string, error) {
	var id string
	err := s.DB.QueryRow(ctx, `
    INSERT INTO employees (employee_number, first_name, last_name, email, phone, department, position, hire_date, status)
    VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
    RETURNING id
  `, input.EmployeeNumber, input.FirstName, input.LastName, input.Email, input.Phone,
		input.Department, input.Position, input.HireDate, input.Status).Scan(&id)
	return id, err
}

func (s *Store) Get(ctx context.Context, employeeID string) (Employee, error) {
	return scanEmployee(s.DB.QueryRow(ctx, "SELECT"+profileColumns+" FROM employees WHERE id = $1", employeeID))
}

func (s *Store) Update(ctx context.Context, employeeID string, input ProfileInput) error {
	tag, err := s.DB.Exec(ctx, `
    UPDATE employees
    SET first_name = $1, last_name = $2, email = $3, phone = $4,
        department = $5, position = $6, hire_date = $7, status = $8, updated_at = now()
    WHERE id = $9
  `, input.FirstName, input.LastName, input.Email, input.Phone,
		input.Department, input.Position, input.HireDate, input.Status, employeeID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete deactivates rather than removes so historical records keep a valid
// owner reference.
func (s *Store) Delete(ctx context.Context, employeeID string) error {
	tag, err := s.DB.Exec(ctx, "UPDATE employees SET status = 'TERMINATED', updated_at = now() WHERE id = $1", employeeID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) List(ctx context.Context, pred authz.Predicate, limit, offset int) ([]Employee, error) {
	query := "SELECT" + profileColumns + " FROM employees WHERE true"
	clause, args := pred.SQL("id", "", 1)
	query += clause
	query += " ORDER BY employee_number"
	query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := s.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []Employee
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, emp)
	}
	return list, rows.Err()
}

func (s *Store) AddEducation(ctx context.Context, record Education) (string, error) {
	var id string
	err := s.DB.QueryRow(ctx, `
    INSERT INTO employee_education (employee_id, school, degree, field, start_year, end_year)
    VALUES ($1,$2,$3,$4,$5,$6)
    RETURNING id
  `, record.EmployeeID, record.School, record.Degree, record.Field, record.StartYear, record.EndYear).Scan(&id)
	return id, err
}

func (s *Store) ListEducation(ctx context.Context, employeeID string) ([]Education, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, employee_id, school, degree, field, start_year, end_year, created_at
    FROM employee_education
    WHERE employee_id = $1
    ORDER BY created_at DESC
  `, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []Education
	for rows.Next() {
		var rec Education
		if err := rows.Scan(&rec.ID, &rec.EmployeeID, &rec.School, &rec.Degree, &rec.Field,
			&rec.StartYear, &rec.EndYear, &rec.CreatedAt); err != nil {
			return nil, err
		}
		list = append(list, rec)
	}
	return list, rows.Err()
}

func (s *Store) AddExperience(ctx context.Context, record Experience) (string, error) {
	var id string
	err := s.DB.QueryRow(ctx, `
    INSERT INTO employee_experience (employee_id, company, title, start_date, end_date, description)
    VALUES ($1,$2,$3,$4,$5,$6)
    RETURNING id
  `, record.EmployeeID, record.Company, record.Title, record.StartDate, record.EndDate, record.Description).Scan(&id)
	return id, err
}

func (s *Store) ListExperience(ctx context.Context, employeeID string) ([]Experience, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, employee_id, company, title, start_date, end_date, description, created_at
    FROM employee_experience
    WHERE employee_id = $1
    ORDER BY start_date DESC NULLS LAST
  `, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []Experience
	for rows.Next() {
		var rec Experience
		if err := rows.Scan(&rec.ID, &rec.EmployeeID, &rec.Company, &rec.Title,
			&rec.StartDate, &rec.EndDate, &rec.Description, &rec.CreatedAt); err != nil {
			return nil, err
		}
		list = append(list, rec)
	}
	return list, rows.Err()
}

func (s *Store) AddInsurance(ctx context.Context, record Insurance) (string, error) {
	var id string
	err := s.DB.QueryRow(ctx, `
    INSERT INTO employee_insurance (employee_id, provider, policy_number, coverage, valid_from, valid_to)
    VALUES ($1,$2,$3,$4,$5,$6)
    RETURNING id
  `, record.EmployeeID, record.Provider, record.PolicyNumber, record.Coverage, record.ValidFrom, record.ValidTo).Scan(&id)
	return id, err
}

func (s *Store) ListInsurance(ctx context.Context, employeeID string) ([]Insurance, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, employee_id, provider, policy_number, coverage, valid_from, valid_to, created_at
    FROM employee_insurance
    WHERE employee_id = $1
    ORDER BY created_at DESC
  `, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []Insurance
	for rows.Next() {
		var rec Insurance
		if err := rows.Scan(&rec.ID, &rec.EmployeeID, &rec.Provider, &rec.PolicyNumber,
			&rec.Coverage, &rec.ValidFrom, &rec.ValidTo, &rec.CreatedAt); err != nil {
			return nil, err
		}
		list = append(list, rec)
	}
	return list, rows.Err()
}
