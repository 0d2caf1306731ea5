package shared

import (
	"testing"
	"time"
)

func TestValidatorCollectsAndSortsIssues(t *testing.T) {
	v := NewValidator()
	v.Required("title", "", "title is required")
	v.Add("email", "must be a valid email address")
	v.Add("", "")

	issues := v.Issues()
	if len(issues) != 2 {
		t.Fatalf("expected 2 issues, got %d", len(issues))
	}
	if issues[0].Field != "email" || issues[1].Field != "title" {
		t.Fatalf("issues not sorted by field: %+v", issues)
	}
}

func TestValidatorDate(t *testing.T) {
	v := NewValidator()
	parsed, ok := v.Date("startDate", "2026-03-01")
	if !ok || v.HasIssues() {
		t.Fatalf("valid date rejected: %v", v.Issues())
	}
	if parsed.Year() != 2026 || parsed.Month() != time.March {
		t.Fatalf("unexpected parse result: %v", parsed)
	}

	if _, ok := v.Date("endDate", "03/01/2026"); ok {
		t.Fatal("invalid format accepted")
	}
	if _, ok := v.Date("endDate", "2026-03-01T10:00:00Z"); ok {
		t.Fatal("timestamps are not calendar dates")
	}
	if !v.HasIssues() {
		t.Fatal("invalid date must record an issue")
	}
}

func TestValidatorDateOrder(t *testing.T) {
	v := NewValidator()
	start := time.Date(2026, 5, 10, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	v.DateOrder("startDate", start, "endDate", end)
	if len(v.Issues()) != 2 {
		t.Fatalf("reversed range must flag both fields, got %+v", v.Issues())
	}

	v2 := NewValidator()
	v2.DateOrder("startDate", start, "endDate", start)
	if v2.HasIssues() {
		t.Fatal("equal dates are a valid range")
	}
}
