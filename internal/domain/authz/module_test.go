package authz

import "testing"

func TestCanAccessModule(t *testing.T) {
	cases := []struct {
		role   Role
		module Module
		want   bool
	}{
		{RoleBoard, ModulePayroll, true},
		{RoleHR, ModulePayroll, true},
		{RoleManager, ModulePayroll, false},
		{RoleEmployee, ModulePayroll, false},
		{RoleEmployee, ModuleLeave, true},
		{RoleEmployee, ModuleTraining, true},
		{RoleEmployee, ModuleTimekeeping, true},
		{RoleEmployee, ModuleEmployees, false},
		{RoleEmployee, ModulePerformance, false},
		{RoleEmployee, ModuleReports, false},
		{RoleEmployee, ModuleRecruitment, false},
		{RoleManager, ModuleRecruitment, true},
		{RoleManager, ModuleEmployees, true},
		{RoleManager, ModuleReports, true},
		{RoleGuest, ModuleLeave, false},
		{RoleGuest, ModuleRecruitment, false},
	}
	for _, tc := range cases {
		if got := CanAccessModule(tc.role, tc.module); got != tc.want {
			t.Fatalf("CanAccessModule(%s, %s) = %v, want %v", tc.role, tc.module, got, tc.want)
		}
	}
}

func TestCanAccessModuleUnknownFailsClosed(t *testing.T) {
	for _, role := range []Role{RoleBoard, RoleHR, RoleManager, RoleEmployee, RoleGuest} {
		if CanAccessModule(role, Module("archive")) {
			t.Fatalf("unknown module must be denied for %s", role)
		}
	}
}

func TestModuleOf(t *testing.T) {
	if module, ok := ModuleOf(KindLeave); !ok || module != ModuleLeave {
		t.Fatalf("leave kind should map to leave module, got %s ok=%v", module, ok)
	}
	if module, ok := ModuleOf(KindJobPosting); !ok || module != ModuleRecruitment {
		t.Fatalf("job posting should map to recruitment, got %s ok=%v", module, ok)
	}
	if _, ok := ModuleOf(KindNotification); ok {
		t.Fatal("notifications carry no module gate")
	}
}

func TestParseRole(t *testing.T) {
	if role, ok := ParseRole(" manager "); !ok || role != RoleManager {
		t.Fatalf("expected MANAGER, got %q ok=%v", role, ok)
	}
	if _, ok := ParseRole("superadmin"); ok {
		t.Fatal("unknown role must not parse")
	}
}
