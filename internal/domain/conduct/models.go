package conduct

import (
	"time"

	"hrms/internal/domain/authz"
)

// Category separates disciplinary actions from rewards. The two share a table
// but carry different visibility rules, so the category maps to its own
// resource kind.
type Category string

const (
	CategoryDiscipline Category = "DISCIPLINE"
	CategoryReward     Category = "REWARD"
)

func (c Category) Valid() bool {
	return c == CategoryDiscipline || c == CategoryReward
}

func (c Category) Kind() authz.Kind {
	if c == CategoryReward {
		return authz.KindReward
	}
	return authz.KindDiscipline
}

type Record struct {
	ID          string     `json:"id"`
	EmployeeID  string     `json:"employeeId"`
	Category    Category   `json:"category"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	IssuedBy    string     `json:"issuedBy"`
	IssuedAt    *time.Time `json:"issuedAt,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
}
