package authz

import "testing"

func TestDecideGuestAlwaysDenied(t *testing.T) {
	guest := Principal{UserID: "g1", Role: RoleGuest}
	kinds := []Kind{
		KindEmployeeProfile, KindDocument, KindLeave, KindDiscipline, KindReward,
		KindEducation, KindExperience, KindInsurance, KindPerformanceGoal,
		KindPerformanceReview, KindTrainingProgram, KindTrainingEnrollment,
		KindJobPosting, KindPayroll, KindNotification,
	}
	actions := []Action{ActionRead, ActionList, ActionCreate, ActionUpdate, ActionDelete, ActionApprove, ActionReject}
	for _, kind := range kinds {
		for _, action := range actions {
			decision := Decide(guest, Resource{Kind: kind, OwnerEmployeeID: "E1"}, action)
			if decision.Allowed {
				t.Fatalf("guest allowed %s on %s", action, kind)
			}
			if decision.Reason != ErrorForbidden {
				t.Fatalf("guest denial reason = %s, want forbidden", decision.Reason)
			}
		}
	}
}

func TestDecideUnknownRole(t *testing.T) {
	decision := Decide(Principal{UserID: "u1", Role: Role("ROOT")}, Resource{Kind: KindLeave}, ActionRead)
	if decision.Allowed || decision.Reason != ErrorUnauthenticated {
		t.Fatalf("unexpected decision %+v", decision)
	}
}

func TestDecideOwnerReads(t *testing.T) {
	// An owner read is allowed for every kind that grants the role at least
	// own scope, regardless of the coarse module gate.
	cases := []struct {
		role Role
		kind Kind
	}{
		{RoleEmployee, KindEmployeeProfile},
		{RoleEmployee, KindDocument},
		{RoleEmployee, KindPayroll},
		{RoleEmployee, KindLeave},
		{RoleEmployee, KindDiscipline},
		{RoleEmployee, KindPerformanceReview},
		{RoleHR, KindLeave},
		{RoleManager, KindLeave},
		{RoleManager, KindNotification},
	}
	for _, tc := range cases {
		p := Principal{UserID: "u1", Role: tc.role, EmployeeID: "E1"}
		decision := Decide(p, Resource{Kind: tc.kind, OwnerEmployeeID: "E1"}, ActionRead)
		if !decision.Allowed {
			t.Fatalf("%s denied reading own %s: %s", tc.role, tc.kind, decision.Reason)
		}
	}
}

func TestDecideOwnershipRequired(t *testing.T) {
	cases := []struct {
		role   Role
		kind   Kind
		action Action
	}{
		{RoleEmployee, KindEmployeeProfile, ActionRead},
		{RoleEmployee, KindPayroll, ActionRead},
		{RoleEmployee, KindDocument, ActionRead},
		{RoleEmployee, KindLeave, ActionRead},
		{RoleHR, KindLeave, ActionRead},
		{RoleManager, KindLeave, ActionRead},
		{RoleHR, KindDiscipline, ActionRead},
		{RoleHR, KindReward, ActionCreate},
		{RoleManager, KindDocument, ActionRead},
		{RoleManager, KindPayroll, ActionRead},
		{RoleEmployee, KindEmployeeProfile, ActionUpdate},
		{RoleEmployee, KindDiscipline, ActionCreate},
	}
	for _, tc := range cases {
		p := Principal{UserID: "u1", Role: tc.role, EmployeeID: "E1"}
		decision := Decide(p, Resource{Kind: tc.kind, OwnerEmployeeID: "E2"}, tc.action)
		if decision.Allowed {
			t.Fatalf("%s allowed %s on another employee's %s", tc.role, tc.action, tc.kind)
		}
	}
}

func TestDecideElevatedAccess(t *testing.T) {
	cases := []struct {
		role   Role
		kind   Kind
		action Action
	}{
		{RoleBoard, KindEmployeeProfile, ActionUpdate},
		{RoleBoard, KindDocument, ActionDelete},
		{RoleBoard, KindLeave, ActionApprove},
		{RoleBoard, KindPayroll, ActionRead},
		{RoleHR, KindEmployeeProfile, ActionDelete},
		{RoleHR, KindDocument, ActionUpdate},
		{RoleHR, KindPayroll, ActionRead},
		{RoleManager, KindEmployeeProfile, ActionRead},
		{RoleManager, KindDiscipline, ActionCreate},
		{RoleManager, KindReward, ActionCreate},
		{RoleManager, KindPerformanceGoal, ActionCreate},
		{RoleManager, KindPerformanceReview, ActionCreate},
		{RoleManager, KindLeave, ActionApprove},
		{RoleManager, KindLeave, ActionReject},
	}
	for _, tc := range cases {
		p := Principal{UserID: "u1", Role: tc.role, EmployeeID: "E1"}
		decision := Decide(p, Resource{Kind: tc.kind, OwnerEmployeeID: "E2"}, tc.action)
		if !decision.Allowed {
			t.Fatalf("%s denied %s on %s: %s", tc.role, tc.action, tc.kind, decision.Reason)
		}
	}
}

func TestDecideHRLeaveApprovalDenied(t *testing.T) {
	hr := Principal{UserID: "u1", Role: RoleHR, EmployeeID: "E1"}
	for _, action := range []Action{ActionApprove, ActionReject} {
		decision := Decide(hr, Resource{Kind: KindLeave, OwnerEmployeeID: "E2"}, action)
		if decision.Allowed {
			t.Fatalf("HR must never %s leave", action)
		}
	}
}

func TestDecideDocumentCreateForcedTier(t *testing.T) {
	employee := Principal{UserID: "u1", Role: RoleEmployee, EmployeeID: "E1"}
	decision := Decide(employee, Resource{Kind: KindDocument, OwnerEmployeeID: "E1", AccessLevel: LevelBoard}, ActionCreate)
	if !decision.Allowed {
		t.Fatalf("employee denied creating own document: %s", decision.Reason)
	}
	if decision.ForcedTier != LevelEmployee {
		t.Fatalf("employee document create must be forced to EMPLOYEE tier, got %q", decision.ForcedTier)
	}

	hr := Principal{UserID: "u2", Role: RoleHR, EmployeeID: "E2"}
	decision = Decide(hr, Resource{Kind: KindDocument, OwnerEmployeeID: "E1", AccessLevel: LevelBoard}, ActionCreate)
	if !decision.Allowed || decision.ForcedTier != "" {
		t.Fatalf("HR may create documents at any tier, got %+v", decision)
	}
}

func TestDecideListReturnsFilter(t *testing.T) {
	employee := Principal{UserID: "u1", Role: RoleEmployee, EmployeeID: "E1"}
	decision := Decide(employee, Resource{Kind: KindDocument}, ActionList)
	if !decision.Allowed || decision.Filter == nil {
		t.Fatalf("expected filtered allow, got %+v", decision)
	}

	// Two employee-tier documents, one owned by E1 and one by E2: the filter
	// keeps only the caller's own.
	if !decision.Filter.Matches("E1", LevelEmployee) {
		t.Fatal("filter dropped the caller's own document")
	}
	if decision.Filter.Matches("E2", LevelEmployee) {
		t.Fatal("filter leaked another employee's document")
	}
}

func TestDecideListModuleGate(t *testing.T) {
	manager := Principal{UserID: "u1", Role: RoleManager, EmployeeID: "E1"}
	if decision := Decide(manager, Resource{Kind: KindDocument}, ActionList); decision.Allowed {
		t.Fatal("manager has no document access at all")
	}
	if decision := Decide(manager, Resource{Kind: KindPayroll}, ActionList); decision.Allowed {
		t.Fatal("manager is blocked from payroll")
	}
	if decision := Decide(manager, Resource{Kind: KindEmployeeProfile}, ActionList); !decision.Allowed {
		t.Fatalf("manager lists all employee profiles: %s", decision.Reason)
	}
	if decision := Decide(manager, Resource{Kind: KindLeave}, ActionList); !decision.Allowed {
		t.Fatalf("manager lists own leave: %s", decision.Reason)
	} else if decision.Filter.OwnerEmployeeID != "E1" {
		t.Fatalf("manager leave listing must be own-only, got %+v", decision.Filter)
	}
}

func TestDecideUnownedKinds(t *testing.T) {
	hr := Principal{UserID: "u1", Role: RoleHR, EmployeeID: "E1"}
	if decision := Decide(hr, Resource{Kind: KindJobPosting}, ActionCreate); !decision.Allowed {
		t.Fatalf("HR creates job postings: %s", decision.Reason)
	}
	employee := Principal{UserID: "u2", Role: RoleEmployee, EmployeeID: "E2"}
	if decision := Decide(employee, Resource{Kind: KindJobPosting}, ActionRead); decision.Allowed {
		t.Fatal("employee is outside the recruitment module")
	}
	if decision := Decide(employee, Resource{Kind: KindTrainingProgram}, ActionRead); !decision.Allowed {
		t.Fatalf("employee reads training programs: %s", decision.Reason)
	}
	if decision := Decide(employee, Resource{Kind: KindTrainingEnrollment, OwnerEmployeeID: "E2"}, ActionCreate); !decision.Allowed {
		t.Fatalf("employee enrolls self: %s", decision.Reason)
	}
	if decision := Decide(employee, Resource{Kind: KindTrainingEnrollment, OwnerEmployeeID: "E3"}, ActionCreate); decision.Allowed {
		t.Fatal("employee must not enroll someone else")
	}
}
