package employees

import "time"

type Employee struct {
	ID             string     `json:"id"`
	EmployeeNumber string     `json:"employeeNumber"`
	FirstName      string     `json:"firstName"`
	LastName       string     `json:"lastName"`
	Email          string     `json:"email"`
	Phone          string     `json:"phone"`
	Department     string     `json:"department"`
	Position       string     `json:"position"`
	HireDate       *time.Time `json:"hireDate,omitempty"`
	Status         string     `json:"status"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
}

type Education struct {
	ID         string    `json:"id"`
	EmployeeID string    `json:"employeeId"`
	School     string    `json:"school"`
	Degree     string    `json:"degree"`
	Field      string    `json:"field"`
	StartYear  *int      `json:"startYear,omitempty"`
	EndYear    *int      `json:"endYear,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

type Experience struct {
	ID          string     `json:"id"`
	EmployeeID  string     `json:"employeeId"`
	Company     string     `json:"company"`
	Title       string     `json:"title"`
	StartDate   *time.Time `json:"startDate,omitempty"`
	EndDate     *time.Time `json:"endDate,omitempty"`
	Description string     `json:"description"`
	CreatedAt   time.Time  `json:"createdAt"`
}

type Insurance struct {
	ID           string     `json:"id"`
	EmployeeID   string     `json:"employeeId"`
	Provider     string     `json:"provider"`
	PolicyNumber string     `json:"policyNumber"`
	Coverage     string     `json:"coverage"`
	ValidFrom    *time.Time `json:"validFrom,omitempty"`
	ValidTo      *time.Time `json:"validTo,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
}

// ProfileInput carries the mutable profile fields for create and update.
type ProfileInput struct {
	EmployeeNumber string
	FirstName      string
	LastName       string
	Email          string
	Phone          string
	Department     string
	Position       string
	HireDate       *time.Time
	Status         string
}
