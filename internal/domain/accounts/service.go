package accounts

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	"hrms/internal/auth"
	"hrms/internal/domain/authz"
)

var ErrInvalidCredentials = errors.New("invalid email or password")

type Service struct {
	Store    *Store
	Secret   string
	TokenTTL time.Duration
}

func NewService(store *Store, secret string, tokenTTL time.Duration) *Service {
	return &Service{Store: store, Secret: secret, TokenTTL: tokenTTL}
}

type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	UserID    string
	Role      string
}

// Login verifies credentials and issues a signed token. Unknown emails and bad
// passwords return the same error so the response never leaks which one failed.
func (s *Service) Login(ctx context.Context, email, password string) (LoginResult, error) {
	user, err := s.Store.FindActiveByEmail(ctx, email)
	if errors.Is(err, ErrNotFound) {
		return LoginResult{}, ErrInvalidCredentials
	}
	if err != nil {
		return LoginResult{}, err
	}
	if auth.CheckPassword(user.PasswordHash, password) != nil {
		return LoginResult{}, ErrInvalidCredentials
	}

	claims := auth.Claims{UserID: user.ID, Role: user.Role, EmployeeID: user.EmployeeID}
	token, err := auth.GenerateToken(s.Secret, claims, s.TokenTTL)
	if err != nil {
		return LoginResult{}, err
	}

	expires := time.Now().Add(s.TokenTTL)
	if err := s.Store.CreateSession(ctx, user.ID, hashToken(token), expires); err != nil {
		return LoginResult{}, err
	}
	if err := s.Store.UpdateLastLogin(ctx, user.ID); err != nil {
		return LoginResult{}, err
	}
	return LoginResult{Token: token, ExpiresAt: expires, UserID: user.ID, Role: user.Role}, nil
}

// Register creates a guest account. Registration is public and the created
// account has no access to staff modules until HR assigns a role.
func (s *Service) Register(ctx context.Context, email, password string) (string, error) {
	hash, err := auth.HashPassword(password)
	if err != nil {
		return "", err
	}
	return s.Store.RegisterGuest(ctx, email, hash)
}

// Logout revokes every open session for the principal.
func (s *Service) Logout(ctx context.Context, p authz.Principal) error {
	if p.UserID == "" {
		return authz.NewError(authz.ErrorUnauthenticated, "no authenticated user")
	}
	return s.Store.RevokeSessions(ctx, p.UserID)
}

// Sessions store a digest of the token rather than the token itself.
func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
