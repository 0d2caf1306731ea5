package training

import "time"

type Program struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	StartsOn    *time.Time `json:"startsOn,omitempty"`
	EndsOn      *time.Time `json:"endsOn,omitempty"`
	Capacity    int        `json:"capacity"`
	CreatedAt   time.Time  `json:"createdAt"`
}

type Enrollment struct {
	ID         string    `json:"id"`
	ProgramID  string    `json:"programId"`
	EmployeeID string    `json:"employeeId"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"createdAt"`
}
