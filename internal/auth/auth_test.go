package auth

import (
	"testing"
	"time"

	"hrms/internal/domain/authz"
)

func TestTokenRoundTrip(t *testing.T) {
	secret := "test-secret"
	claims := Claims{UserID: "u1", Role: "MANAGER", EmployeeID: "E5"}
	token, err := GenerateToken(secret, claims, time.Minute)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	parsed, err := ParseToken(secret, token)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if parsed.UserID != "u1" || parsed.Role != "MANAGER" || parsed.EmployeeID != "E5" {
		t.Fatalf("claims mismatch: %+v", parsed)
	}

	if _, err := ParseToken("other-secret", token); err == nil {
		t.Fatal("expected failure with wrong secret")
	}
}

func TestPrincipalFromClaims(t *testing.T) {
	claims := &Claims{UserID: "u1", Role: "HR", EmployeeID: "E2"}
	p := claims.Principal()
	if p.Role != authz.RoleHR || p.EmployeeID != "E2" {
		t.Fatalf("unexpected principal %+v", p)
	}

	guest := &Claims{UserID: "u2", Role: "GUEST", EmployeeID: "E9"}
	p = guest.Principal()
	if p.Role != authz.RoleGuest || p.EmployeeID != "" {
		t.Fatalf("guest must carry no employee link, got %+v", p)
	}

	unknown := &Claims{UserID: "u3", Role: "ROOT"}
	if p := unknown.Principal(); p.Role != authz.RoleGuest {
		t.Fatalf("unknown role must degrade to guest, got %+v", p)
	}
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("s3cret-passw0rd")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if err := CheckPassword(hash, "s3cret-passw0rd"); err != nil {
		t.Fatalf("check: %v", err)
	}
	if err := CheckPassword(hash, "wrong"); err == nil {
		t.Fatal("expected mismatch error")
	}
}
