package authz

import "testing"

func TestIsOwner(t *testing.T) {
	linked := Principal{UserID: "u1", Role: RoleEmployee, EmployeeID: "E1"}
	unlinked := Principal{UserID: "u2", Role: RoleGuest}

	if !IsOwner(linked, "E1") {
		t.Fatal("matching employee link must own the record")
	}
	if IsOwner(linked, "E2") {
		t.Fatal("different employee must not own the record")
	}
	if IsOwner(unlinked, "E1") {
		t.Fatal("principal without employee link owns nothing")
	}
	if IsOwner(linked, "") {
		t.Fatal("record without owner has no owner")
	}
}

func TestHasElevatedAccess(t *testing.T) {
	cases := []struct {
		role Role
		kind Kind
		want bool
	}{
		{RoleBoard, KindEmployeeProfile, true},
		{RoleBoard, KindLeave, true},
		{RoleBoard, KindNotification, false},
		{RoleHR, KindEmployeeProfile, true},
		{RoleHR, KindDocument, true},
		{RoleHR, KindPayroll, true},
		{RoleHR, KindDiscipline, false},
		{RoleHR, KindReward, false},
		{RoleHR, KindLeave, false},
		{RoleManager, KindDiscipline, true},
		{RoleManager, KindReward, true},
		{RoleManager, KindPerformanceGoal, true},
		{RoleManager, KindPerformanceReview, true},
		{RoleManager, KindEmployeeProfile, true},
		{RoleManager, KindDocument, false},
		{RoleManager, KindPayroll, false},
		{RoleEmployee, KindEmployeeProfile, false},
		{RoleEmployee, KindDocument, false},
		{RoleGuest, KindEmployeeProfile, false},
	}
	for _, tc := range cases {
		if got := HasElevatedAccess(tc.role, tc.kind); got != tc.want {
			t.Fatalf("HasElevatedAccess(%s, %s) = %v, want %v", tc.role, tc.kind, got, tc.want)
		}
	}
}

func TestManagerLeaveElevationIsApprovalOnly(t *testing.T) {
	// Managers carry an all-records approval grant on leave, but their read
	// grant stays own-only.
	if grantFor(KindLeave, RoleManager, ActionApprove) != ScopeAll {
		t.Fatal("manager must approve any leave request")
	}
	if grantFor(KindLeave, RoleManager, ActionRead) != ScopeOwn {
		t.Fatal("manager leave reads are own-only")
	}
}
