package accounts

import "time"

type User struct {
	ID           string
	Email        string
	PasswordHash string
	Role         string
	EmployeeID   string
	Status       string
	LastLogin    *time.Time
	CreatedAt    time.Time
}
