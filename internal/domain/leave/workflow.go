package leave

import (
	"strings"
	"time"

	"hrms/internal/domain/authz"
)

var (
	ErrAlreadyFinalized  = authz.NewError(authz.ErrorConflict, "leave request already finalized")
	ErrApproverRole      = authz.NewError(authz.ErrorForbidden, "role may not approve or reject leave")
	ErrReasonRequired    = authz.NewError(authz.ErrorValidation, "rejection reason is required")
	ErrUnknownTransition = authz.NewError(authz.ErrorInvalidTransition, "unrecognized transition for current state")
)

// TransitionOutcome holds the fields a successful transition writes back to
// the request. ApproverID and DecidedAt are write-once; the terminal-state
// rule guarantees no later transition can overwrite them.
type TransitionOutcome struct {
	Status          string
	ApproverID      string
	DecidedAt       time.Time
	RejectionReason string
}

// Transition runs the leave approval state machine for one request. Only
// PENDING requests move; APPROVED and REJECTED are terminal for every role.
// Approval authority is held by board and manager accounts alone; HR is
// staff for leave purposes and never transitions, whatever its elevation
// elsewhere. Rejection demands a reason; approval clears any prior one.
func Transition(current string, action authz.Action, p authz.Principal, reason string, now time.Time) (TransitionOutcome, error) {
	if action != authz.ActionApprove && action != authz.ActionReject {
		return TransitionOutcome{}, ErrUnknownTransition
	}
	if Finalized(current) {
		return TransitionOutcome{}, ErrAlreadyFinalized
	}
	if current != StatusPending {
		return TransitionOutcome{}, ErrUnknownTransition
	}
	if p.Role != authz.RoleBoard && p.Role != authz.RoleManager {
		return TransitionOutcome{}, ErrApproverRole
	}

	outcome := TransitionOutcome{
		ApproverID: p.ActorID(),
		DecidedAt:  now.UTC(),
	}
	switch action {
	case authz.ActionApprove:
		outcome.Status = StatusApproved
		outcome.RejectionReason = ""
	case authz.ActionReject:
		trimmed := strings.TrimSpace(reason)
		if trimmed == "" {
			return TransitionOutcome{}, ErrReasonRequired
		}
		outcome.Status = StatusRejected
		outcome.RejectionReason = trimmed
	}
	return outcome, nil
}

// CalculateDays returns the inclusive day count between start and end.
func CalculateDays(start, end time.Time) (float64, error) {
	if end.Before(start) {
		return 0, authz.NewError(authz.ErrorValidation, "end date before start date")
	}
	return end.Sub(start).Hours()/24 + 1, nil
}
