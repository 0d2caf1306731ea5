package leave

import (
	"errors"
	"testing"
	"time"

	"hrms/internal/domain/authz"
)

var decisionTime = time.Date(2026, 3, 2, 9, 30, 0, 0, time.UTC)

func TestTransitionApprove(t *testing.T) {
	board := authz.Principal{UserID: "u1", Role: authz.RoleBoard, EmployeeID: "E9"}
	outcome, err := Transition(StatusPending, authz.ActionApprove, board, "", decisionTime)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if outcome.Status != StatusApproved {
		t.Fatalf("status = %s, want APPROVED", outcome.Status)
	}
	if outcome.RejectionReason != "" {
		t.Fatal("approval must clear the rejection reason")
	}
	if outcome.ApproverID != "E9" {
		t.Fatalf("approver = %s, want the employee link", outcome.ApproverID)
	}
	if !outcome.DecidedAt.Equal(decisionTime) {
		t.Fatalf("decidedAt = %v", outcome.DecidedAt)
	}
}

func TestTransitionApproverFallsBackToUserID(t *testing.T) {
	board := authz.Principal{UserID: "u7", Role: authz.RoleBoard}
	outcome, err := Transition(StatusPending, authz.ActionApprove, board, "", decisionTime)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if outcome.ApproverID != "u7" {
		t.Fatalf("approver = %s, want raw user id when no employee link", outcome.ApproverID)
	}
}

func TestTransitionReject(t *testing.T) {
	manager := authz.Principal{UserID: "u2", Role: authz.RoleManager, EmployeeID: "E5"}
	outcome, err := Transition(StatusPending, authz.ActionReject, manager, "  overlapping project deadline ", decisionTime)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if outcome.Status != StatusRejected {
		t.Fatalf("status = %s, want REJECTED", outcome.Status)
	}
	if outcome.RejectionReason != "overlapping project deadline" {
		t.Fatalf("reason = %q", outcome.RejectionReason)
	}
}

func TestTransitionRejectRequiresReason(t *testing.T) {
	manager := authz.Principal{UserID: "u2", Role: authz.RoleManager, EmployeeID: "E5"}
	_, err := Transition(StatusPending, authz.ActionReject, manager, "   ", decisionTime)
	if !errors.Is(err, ErrReasonRequired) {
		t.Fatalf("err = %v, want reason required", err)
	}
	if kind, ok := authz.KindOf(err); !ok || kind != authz.ErrorValidation {
		t.Fatalf("kind = %v", kind)
	}
}

func TestTransitionTerminalStates(t *testing.T) {
	board := authz.Principal{UserID: "u1", Role: authz.RoleBoard, EmployeeID: "E9"}
	for _, status := range []string{StatusApproved, StatusRejected} {
		for _, action := range []authz.Action{authz.ActionApprove, authz.ActionReject} {
			_, err := Transition(status, action, board, "late", decisionTime)
			if !errors.Is(err, ErrAlreadyFinalized) {
				t.Fatalf("Transition(%s, %s) err = %v, want finalized conflict", status, action, err)
			}
		}
	}
}

func TestTransitionRoleGate(t *testing.T) {
	for _, role := range []authz.Role{authz.RoleHR, authz.RoleEmployee, authz.RoleGuest} {
		p := authz.Principal{UserID: "u3", Role: role, EmployeeID: "E1"}
		_, err := Transition(StatusPending, authz.ActionApprove, p, "", decisionTime)
		if !errors.Is(err, ErrApproverRole) {
			t.Fatalf("role %s: err = %v, want forbidden", role, err)
		}
	}
}

func TestTransitionUnknownAction(t *testing.T) {
	board := authz.Principal{UserID: "u1", Role: authz.RoleBoard}
	if _, err := Transition(StatusPending, authz.ActionUpdate, board, "", decisionTime); !errors.Is(err, ErrUnknownTransition) {
		t.Fatalf("err = %v, want unknown transition", err)
	}
	if _, err := Transition("DRAFT", authz.ActionApprove, board, "", decisionTime); !errors.Is(err, ErrUnknownTransition) {
		t.Fatalf("err = %v, want unknown transition for unknown state", err)
	}
}

func TestCalculateDays(t *testing.T) {
	start := time.Date(2026, 1, 12, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 1, 16, 0, 0, 0, 0, time.UTC)
	days, err := CalculateDays(start, end)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if days != 5 {
		t.Fatalf("days = %v, want 5", days)
	}
	if _, err := CalculateDays(end, start); err == nil {
		t.Fatal("expected error for inverted range")
	}
}
