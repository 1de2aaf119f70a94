package authpw

import (
	"context"
	"errors"
	"testing"
	"time"

	"inkwell/api/internal/store"
)

// mockUserStore is a mock implementation of UserStore for testing
type mockUserStore struct {
	users      map[string]store.User
	emailIndex map[string]string // email -> userID
	resets     map[string]struct {
		userID    string
		expiresAt time.Time
		used      bool
	}
}

func newMockUserStore() *mockUserStore {
	return &mockUserStore{
		users:      make(map[string]store.User),
		emailIndex: make(map[string]string),
		resets: make(map[string]struct {
			userID    string
			expiresAt time.Time
			used      bool
		}),
	}
}

func (m *mockUserStore) GetUserByEmail(ctx context.Context, email string) (store.User, error) {
	if userID, ok := m.emailIndex[email]; ok {
		return m.users[userID], nil
	}
	return store.User{}, errors.New("user not found")
}

func (m *mockUserStore) GetUserByID(ctx context.Context, id string) (store.User, error) {
	if user, ok := m.users[id]; ok {
		return user, nil
	}
	return store.User{}, errors.New("user not found")
}

func (m *mockUserStore) CreateUser(ctx context.Context, user store.User) error {
	m.users[user.ID] = user
	m.emailIndex[user.Email] = user.ID
	return nil
}

func (m *mockUserStore) UpdateUserVerificationToken(ctx context.Context, userID, token string, expiresAt time.Time) error {
	if user, ok := m.users[userID]; ok {
		user.VerificationToken = token
		user.VerificationExpiresAt = &expiresAt
		m.users[userID] = user
	}
	return nil
}

func (m *mockUserStore) VerifyUserEmail(ctx context.Context, token string) error {
	for id, user := range m.users {
		if user.VerificationToken == token && user.VerificationExpiresAt != nil && time.Now().Before(*user.VerificationExpiresAt) {
			user.IsEmailVerified = true
			user.VerificationToken = ""
			user.VerificationExpiresAt = nil
			m.users[id] = user
			return nil
		}
	}
	return errors.New("invalid token")
}

func (m *mockUserStore) UpdateUserPassword(ctx context.Context, userID, passwordHash string) error {
	if user, ok := m.users[userID]; ok {
		user.PasswordHash = passwordHash
		m.users[userID] = user
		return nil
	}
	return errors.New("user not found")
}

func (m *mockUserStore) CreatePasswordReset(ctx context.Context, userID, token string, expiresAt time.Time) error {
	m.resets[token] = struct {
		userID    string
		expiresAt time.Time
		used      bool
	}{userID: userID, expiresAt: expiresAt, used: false}
	return nil
}

func (m *mockUserStore) GetPasswordReset(ctx context.Context, token string) (string, error) {
	if reset, ok := m.resets[token]; ok && !reset.used && time.Now().Before(reset.expiresAt) {
		return reset.userID, nil
	}
	return "", errors.New("invalid or expired token")
}

func (m *mockUserStore) MarkPasswordResetUsed(ctx context.Context, token string) error {
	if reset, ok := m.resets[token]; ok {
		reset.used = true
		m.resets[token] = reset
	}
	return nil
}

func TestSignUp(t *testing.T) {
	ctx := context.Background()

	t.Run("successful sign up", func(t *testing.T) {
		svc := NewService(newMockUserStore())
		resp, err := svc.SignUp(ctx, SignUpRequest{
			Email:       "test@example.com",
			Password:    "password123",
			DisplayName: "Test User",
		})
		if err != nil {
			t.Fatalf("SignUp failed: %v", err)
		}
		if resp.UserID == "" {
			t.Error("expected non-empty user ID")
		}
		if resp.VerificationToken == "" {
			t.Error("expected verification token")
		}
		if !resp.RequiresEmailVerify {
			t.Error("expected RequiresEmailVerify to be true")
		}
	})

	t.Run("missing fields", func(t *testing.T) {
		svc := NewService(newMockUserStore())
		if _, err := svc.SignUp(ctx, SignUpRequest{Email: "a@b.com"}); err == nil {
			t.Error("expected error for missing fields")
		}
	})

	t.Run("short password", func(t *testing.T) {
		svc := NewService(newMockUserStore())
		_, err := svc.SignUp(ctx, SignUpRequest{
			Email:       "a@b.com",
			Password:    "short",
			DisplayName: "A",
		})
		if err == nil {
			t.Error("expected error for short password")
		}
	})

	t.Run("duplicate email", func(t *testing.T) {
		svc := NewService(newMockUserStore())
		req := SignUpRequest{Email: "dup@example.com", Password: "password123", DisplayName: "Dup"}
		if _, err := svc.SignUp(ctx, req); err != nil {
			t.Fatalf("first SignUp failed: %v", err)
		}
		if _, err := svc.SignUp(ctx, req); err == nil {
			t.Error("expected error for duplicate email")
		}
	})
}

func TestSignIn(t *testing.T) {
	ctx := context.Background()
	mockStore := newMockUserStore()
	svc := NewService(mockStore)

	resp, err := svc.SignUp(ctx, SignUpRequest{
		Email:       "user@example.com",
		Password:    "password123",
		DisplayName: "User",
	})
	if err != nil {
		t.Fatalf("SignUp failed: %v", err)
	}

	t.Run("unverified account requires verification", func(t *testing.T) {
		signIn, err := svc.SignIn(ctx, SignInRequest{Email: "user@example.com", Password: "password123"})
		if err != nil {
			t.Fatalf("SignIn failed: %v", err)
		}
		if !signIn.RequiresVerify {
			t.Error("expected RequiresVerify before email verification")
		}
	})

	t.Run("wrong password rejected even when unverified", func(t *testing.T) {
		if _, err := svc.SignIn(ctx, SignInRequest{Email: "user@example.com", Password: "wrongpass"}); err == nil {
			t.Error("expected error for wrong password")
		}
	})

	if err := svc.VerifyEmail(ctx, resp.VerificationToken); err != nil {
		t.Fatalf("VerifyEmail failed: %v", err)
	}

	t.Run("verified sign in", func(t *testing.T) {
		signIn, err := svc.SignIn(ctx, SignInRequest{Email: "user@example.com", Password: "password123"})
		if err != nil {
			t.Fatalf("SignIn failed: %v", err)
		}
		if signIn.RequiresVerify {
			t.Error("expected verified sign-in")
		}
		if signIn.User.DisplayName != "User" {
			t.Errorf("unexpected display name %q", signIn.User.DisplayName)
		}
	})

	t.Run("unknown email", func(t *testing.T) {
		if _, err := svc.SignIn(ctx, SignInRequest{Email: "nobody@example.com", Password: "password123"}); err == nil {
			t.Error("expected error for unknown email")
		}
	})
}

func TestVerifyEmail(t *testing.T) {
	ctx := context.Background()
	svc := NewService(newMockUserStore())

	if err := svc.VerifyEmail(ctx, ""); err == nil {
		t.Error("expected error for empty token")
	}
	if err := svc.VerifyEmail(ctx, "bogus"); err == nil {
		t.Error("expected error for unknown token")
	}
}

func TestResendVerification(t *testing.T) {
	ctx := context.Background()
	mockStore := newMockUserStore()
	svc := NewService(mockStore)

	resp, err := svc.SignUp(ctx, SignUpRequest{
		Email:       "resend@example.com",
		Password:    "password123",
		DisplayName: "Resend",
	})
	if err != nil {
		t.Fatalf("SignUp failed: %v", err)
	}

	token, user, err := svc.ResendVerification(ctx, "resend@example.com")
	if err != nil {
		t.Fatalf("ResendVerification failed: %v", err)
	}
	if token == "" {
		t.Fatal("expected a new verification token")
	}
	if token == resp.VerificationToken {
		t.Error("expected a different token from the original")
	}
	if user.ID != resp.UserID {
		t.Errorf("expected user %s, got %s", resp.UserID, user.ID)
	}

	// New token must work, old one must not.
	if err := svc.VerifyEmail(ctx, resp.VerificationToken); err == nil {
		t.Error("expected old token to be invalid")
	}
	if err := svc.VerifyEmail(ctx, token); err != nil {
		t.Errorf("VerifyEmail with new token failed: %v", err)
	}

	// Already verified: no token, no error.
	token, _, err = svc.ResendVerification(ctx, "resend@example.com")
	if err != nil {
		t.Fatalf("ResendVerification after verify failed: %v", err)
	}
	if token != "" {
		t.Error("expected empty token for verified account")
	}

	// Unknown email: silent empty result.
	token, _, err = svc.ResendVerification(ctx, "missing@example.com")
	if err != nil || token != "" {
		t.Errorf("expected silent empty result, got token=%q err=%v", token, err)
	}
}

func TestPasswordReset(t *testing.T) {
	ctx := context.Background()
	mockStore := newMockUserStore()
	svc := NewService(mockStore)

	resp, err := svc.SignUp(ctx, SignUpRequest{
		Email:       "reset@example.com",
		Password:    "password123",
		DisplayName: "Reset",
	})
	if err != nil {
		t.Fatalf("SignUp failed: %v", err)
	}
	if err := svc.VerifyEmail(ctx, resp.VerificationToken); err != nil {
		t.Fatalf("VerifyEmail failed: %v", err)
	}

	t.Run("unknown email returns empty token", func(t *testing.T) {
		token, err := svc.RequestPasswordReset(ctx, "missing@example.com")
		if err != nil {
			t.Fatalf("RequestPasswordReset failed: %v", err)
		}
		if token != "" {
			t.Error("expected empty token for unknown email")
		}
	})

	token, err := svc.RequestPasswordReset(ctx, "reset@example.com")
	if err != nil {
		t.Fatalf("RequestPasswordReset failed: %v", err)
	}
	if token == "" {
		t.Fatal("expected reset token")
	}

	t.Run("short new password rejected", func(t *testing.T) {
		err := svc.ResetPassword(ctx, ResetPasswordRequest{Token: token, NewPassword: "short"})
		if err == nil {
			t.Error("expected error for short password")
		}
	})

	if err := svc.ResetPassword(ctx, ResetPasswordRequest{Token: token, NewPassword: "newpassword456"}); err != nil {
		t.Fatalf("ResetPassword failed: %v", err)
	}

	t.Run("new password works", func(t *testing.T) {
		signIn, err := svc.SignIn(ctx, SignInRequest{Email: "reset@example.com", Password: "newpassword456"})
		if err != nil {
			t.Fatalf("SignIn with new password failed: %v", err)
		}
		if signIn.RequiresVerify {
			t.Error("account should remain verified after reset")
		}
	})

	t.Run("old password rejected", func(t *testing.T) {
		if _, err := svc.SignIn(ctx, SignInRequest{Email: "reset@example.com", Password: "password123"}); err == nil {
			t.Error("expected error for old password")
		}
	})

	t.Run("token is single use", func(t *testing.T) {
		err := svc.ResetPassword(ctx, ResetPasswordRequest{Token: token, NewPassword: "anotherpass789"})
		if err == nil {
			t.Error("expected error for reused token")
		}
	})
}
