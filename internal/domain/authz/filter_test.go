package authz

import (
	"reflect"
	"testing"
)

func TestAllowedTiersNarrowing(t *testing.T) {
	employee := AllowedTiers(RoleEmployee)
	manager := AllowedTiers(RoleManager)
	hr := AllowedTiers(RoleHR)

	if len(employee) != 4 {
		t.Fatalf("employee named tier set must cover all tiers, got %v", employee)
	}
	if !subset(manager, employee) || !subset(hr, manager) {
		t.Fatalf("named tier sets must narrow: employee=%v manager=%v hr=%v", employee, manager, hr)
	}
	if len(AllowedTiers(RoleBoard)) != 4 {
		t.Fatal("board is unrestricted across all tiers")
	}
	if AllowedTiers(RoleGuest) != nil {
		t.Fatal("guest has no tier access")
	}
}

// Monotonicity: a wider named tier set sees every document a narrower one
// sees, with the employee own-only narrowing as the explicit exception.
func TestFilterMonotonicity(t *testing.T) {
	manager := Principal{UserID: "u1", Role: RoleManager, EmployeeID: "E1"}
	hr := Principal{UserID: "u2", Role: RoleHR, EmployeeID: "E2"}

	managerPred := BuildFilterPredicate(manager, KindDocument)
	hrPred := BuildFilterPredicate(hr, KindDocument)

	docs := []struct {
		owner string
		level AccessLevel
	}{
		{"E1", LevelManager},
		{"E3", LevelHR},
		{"E3", LevelBoard},
	}
	for _, doc := range docs {
		if hrPred.Matches(doc.owner, doc.level) && !managerPred.Matches(doc.owner, doc.level) {
			t.Fatalf("document %+v visible to HR but not manager", doc)
		}
	}

	// The exception: an employee's named set is the widest but the predicate
	// still pins listings to their own rows.
	employee := Principal{UserID: "u3", Role: RoleEmployee, EmployeeID: "E1"}
	employeePred := BuildFilterPredicate(employee, KindDocument)
	if employeePred.Matches("E3", LevelEmployee) {
		t.Fatal("employee must not see another employee's document")
	}
	if !employeePred.Matches("E1", LevelEmployee) {
		t.Fatal("employee must see their own document")
	}
}

func TestBuildFilterPredicateIdempotent(t *testing.T) {
	p := Principal{UserID: "u1", Role: RoleEmployee, EmployeeID: "E1"}
	first := BuildFilterPredicate(p, KindDocument)
	second := BuildFilterPredicate(p, KindDocument)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("predicates differ: %+v vs %+v", first, second)
	}
}

func TestBuildFilterPredicateUnlinkedOwnScope(t *testing.T) {
	hr := Principal{UserID: "u1", Role: RoleHR}
	pred := BuildFilterPredicate(hr, KindLeave)
	if !pred.MatchNone {
		t.Fatal("own-only scope without employee link must match nothing")
	}
	if pred.Matches("E1", "") {
		t.Fatal("match-none predicate matched a record")
	}
}

func TestPredicateSQL(t *testing.T) {
	p := Principal{UserID: "u1", Role: RoleManager, EmployeeID: "E1"}
	pred := BuildFilterPredicate(p, KindDocument)
	clause, args := pred.SQL("owner_employee_id", "access_level", 2)
	if clause != " AND access_level = ANY($2)" {
		t.Fatalf("unexpected clause %q", clause)
	}
	if len(args) != 1 {
		t.Fatalf("expected one argument, got %v", args)
	}
	tiers, ok := args[0].([]string)
	if !ok || len(tiers) != 3 {
		t.Fatalf("expected three tier values, got %v", args[0])
	}

	pred = BuildFilterPredicate(Principal{UserID: "u2", Role: RoleEmployee, EmployeeID: "E1"}, KindDocument)
	clause, args = pred.SQL("owner_employee_id", "access_level", 1)
	if clause != " AND owner_employee_id = $1 AND access_level = ANY($2)" {
		t.Fatalf("unexpected clause %q", clause)
	}
	if len(args) != 2 || args[0] != "E1" {
		t.Fatalf("unexpected args %v", args)
	}

	board := BuildFilterPredicate(Principal{UserID: "u3", Role: RoleBoard, EmployeeID: "E9"}, KindDocument)
	clause, args = board.SQL("owner_employee_id", "access_level", 1)
	if clause != "" || args != nil {
		t.Fatalf("board document listing must be unrestricted, got %q %v", clause, args)
	}
}

func subset(inner, outer []AccessLevel) bool {
	for _, candidate := range inner {
		found := false
		for _, level := range outer {
			if level == candidate {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
