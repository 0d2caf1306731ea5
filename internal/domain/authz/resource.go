package authz

import "strings"

// Kind identifies the record type a decision is being made about.
type Kind string

const (
	KindEmployeeProfile    Kind = "employee_profile"
	KindDocument           Kind = "document"
	KindLeave              Kind = "leave"
	KindDiscipline         Kind = "discipline"
	KindReward             Kind = "reward"
	KindEducation          Kind = "education"
	KindExperience         Kind = "experience"
	KindInsurance          Kind = "insurance"
	KindPerformanceGoal    Kind = "performance_goal"
	KindPerformanceReview  Kind = "performance_review"
	KindTrainingProgram    Kind = "training_program"
	KindTrainingEnrollment Kind = "training_enrollment"
	KindJobPosting         Kind = "job_posting"
	KindPayroll            Kind = "payroll"
	KindNotification       Kind = "notification"
)

// Action is the operation being attempted on a resource.
type Action string

const (
	ActionRead    Action = "read"
	ActionList    Action = "list"
	ActionCreate  Action = "create"
	ActionUpdate  Action = "update"
	ActionDelete  Action = "delete"
	ActionApprove Action = "approve"
	ActionReject  Action = "reject"
)

// AccessLevel is the minimum-role tier attached to document records.
type AccessLevel string

const (
	LevelEmployee AccessLevel = "EMPLOYEE"
	LevelManager  AccessLevel = "MANAGER"
	LevelHR       AccessLevel = "HR"
	LevelBoard    AccessLevel = "BOARD"
)

var allLevels = []AccessLevel{LevelEmployee, LevelManager, LevelHR, LevelBoard}

func ParseAccessLevel(raw string) (AccessLevel, bool) {
	candidate := AccessLevel(strings.ToUpper(strings.TrimSpace(raw)))
	for _, level := range allLevels {
		if level == candidate {
			return level, true
		}
	}
	return "", false
}

func (l AccessLevel) Valid() bool {
	for _, level := range allLevels {
		if level == l {
			return true
		}
	}
	return false
}

// Resource describes the record under decision. It is built by the caller
// from data already fetched (or about to be written); the core never loads it.
type Resource struct {
	Kind            Kind
	OwnerEmployeeID string
	AccessLevel     AccessLevel
}

// Level returns the effective access level. Absent levels default to the
// EMPLOYEE tier.
func (r Resource) Level() AccessLevel {
	if r.AccessLevel.Valid() {
		return r.AccessLevel
	}
	return LevelEmployee
}

// Tiered reports whether records of this kind carry an access level.
func (k Kind) Tiered() bool {
	return k == KindDocument
}
