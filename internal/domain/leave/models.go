package leave

import "time"

const (
	StatusPending  = "PENDING"
	StatusApproved = "APPROVED"
	StatusRejected = "REJECTED"
)

type Request struct {
	ID              string     `json:"id"`
	EmployeeID      string     `json:"employeeId"`
	StartDate       time.Time  `json:"startDate"`
	EndDate         time.Time  `json:"endDate"`
	Days            float64    `json:"days"`
	Reason          string     `json:"reason"`
	Status          string     `json:"status"`
	ApproverID      string     `json:"approverId,omitempty"`
	DecidedAt       *time.Time `json:"decidedAt,omitempty"`
	RejectionReason string     `json:"rejectionReason,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
}

// Finalized reports whether the request reached a terminal state.
func Finalized(status string) bool {
	return status == StatusApproved || status == StatusRejected
}
