package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/mmynk/dealdesk/internal/models"
	"github.com/mmynk/dealdesk/internal/storage"
)

type memUsers struct {
	byEmail map[string]*models.User
}

func (m *memUsers) CreateUser(_ context.Context, user *models.User) error {
	m.byEmail[user.Email] = user
	return nil
}

func (m *memUsers) GetUserByEmail(_ context.Context, email string) (*models.User, error) {
	if u, ok := m.byEmail[email]; ok {
		return u, nil
	}
	return nil, fmt.Errorf("user %w: %s", storage.ErrNotFound, email)
}

// racedUsers never sees the email on lookup but rejects the insert, the way
// a store behaves when another registration commits in between.
type racedUsers struct{}

func (racedUsers) CreateUser(_ context.Context, user *models.User) error {
	return fmt.Errorf("user %w: %s", storage.ErrAlreadyExists, user.Email)
}

func (racedUsers) GetUserByEmail(_ context.Context, email string) (*models.User, error) {
	return nil, fmt.Errorf("user %w: %s", storage.ErrNotFound, email)
}

func TestRegister_DuplicateInsertIsEmailExists(t *testing.T) {
	a := NewPasswordAuthenticator(racedUsers{}).WithCost(bcrypt.MinCost)

	_, err := a.Register(context.Background(), "riley@example.com", "Riley", models.RoleAgent, "correct-horse")
	if !errors.Is(err, ErrEmailExists) {
		t.Errorf("Register() error = %v, want %v", err, ErrEmailExists)
	}
}

func TestPasswordAuthenticator(t *testing.T) {
	ctx := context.Background()
	a := NewPasswordAuthenticator(&memUsers{byEmail: map[string]*models.User{}}).WithCost(bcrypt.MinCost)

	user, err := a.Register(ctx, " Riley@Example.com ", "Riley", models.RoleAgent, "correct-horse")
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if user.Email != "riley@example.com" {
		t.Errorf("Email not normalized: %q", user.Email)
	}
	if user.PasswordHash == "correct-horse" {
		t.Error("Password stored in plain text")
	}

	tests := []struct {
		name    string
		email   string
		role    models.Role
		pass    string
		wantErr error
	}{
		{"duplicate email", "riley@example.com", models.RoleAgent, "another-pass", ErrEmailExists},
		{"weak password", "new@example.com", models.RoleAgent, "short", ErrWeakPassword},
		{"bad role", "new@example.com", models.Role("owner"), "long-enough", ErrInvalidRole},
		{"too long", "new@example.com", models.RoleAgent, strings.Repeat("x", 73), ErrPasswordTooLong},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := a.Register(ctx, tt.email, "X", tt.role, tt.pass)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Register() error = %v, want %v", err, tt.wantErr)
			}
		})
	}

	if _, err := a.Authenticate(ctx, "RILEY@example.com", "correct-horse"); err != nil {
		t.Errorf("Authenticate failed: %v", err)
	}
	if _, err := a.Authenticate(ctx, "riley@example.com", "wrong-password"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("Expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := a.Authenticate(ctx, "ghost@example.com", "whatever1"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("Expected ErrInvalidCredentials for unknown user, got %v", err)
	}
}

func TestJWTManager(t *testing.T) {
	m := NewJWTManager("test-secret-key-123456", time.Hour)
	user := models.NewUser("sam@example.com", "Sam", "hash", models.RoleAdmin)

	token, err := m.Generate(user)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	claims, err := m.Validate(token)
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if claims.UserID != user.ID || claims.Email != user.Email || claims.Role != models.RoleAdmin {
		t.Errorf("Unexpected claims: %+v", claims)
	}

	other := NewJWTManager("a-different-secret-key", time.Hour)
	if _, err := other.Validate(token); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("Expected ErrInvalidToken for wrong key, got %v", err)
	}

	expired := NewJWTManager("test-secret-key-123456", -time.Hour)
	old, err := expired.Generate(user)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if _, err := m.Validate(old); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("Expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestJWTManager_RejectsForeignTokens(t *testing.T) {
	const secret = "test-secret-key-123456"
	m := NewJWTManager(secret, time.Hour)
	now := time.Now()

	sign := func(method jwt.SigningMethod, claims Claims) string {
		t.Helper()
		token, err := jwt.NewWithClaims(method, claims).SignedString([]byte(secret))
		if err != nil {
			t.Fatalf("SignedString failed: %v", err)
		}
		return token
	}
	valid := func() Claims {
		return Claims{
			UserID: "u-1",
			RegisteredClaims: jwt.RegisteredClaims{
				Issuer:    Issuer,
				Subject:   "u-1",
				IssuedAt:  jwt.NewNumericDate(now),
				ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
			},
		}
	}

	tests := map[string]string{
		"other algorithm": sign(jwt.SigningMethodHS384, valid()),
		"other issuer": func() string {
			c := valid()
			c.Issuer = "someone-else"
			return sign(jwt.SigningMethodHS256, c)
		}(),
		"no expiry": func() string {
			c := valid()
			c.ExpiresAt = nil
			return sign(jwt.SigningMethodHS256, c)
		}(),
		"subject mismatch": func() string {
			c := valid()
			c.Subject = "u-2"
			return sign(jwt.SigningMethodHS256, c)
		}(),
	}

	for name, token := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := m.Validate(token); !errors.Is(err, ErrInvalidToken) {
				t.Errorf("Expected ErrInvalidToken, got %v", err)
			}
		})
	}

	if _, err := m.Validate(sign(jwt.SigningMethodHS256, valid())); err != nil {
		t.Errorf("Expected hand-built token to validate, got %v", err)
	}
}
