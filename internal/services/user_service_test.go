package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"logistics_dashboard/internal/models"
	"logistics_dashboard/internal/redis"
	"logistics_dashboard/internal/repository"
)

func validSignUp() SignUpInput {
	return SignUpInput{
		FullName:        "Maria Lopez",
		Email:           "maria@freshfoods.com",
		Phone:           "+1 312 555 0199",
		Password:        "coldchain1",
		ConfirmPassword: "coldchain1",
	}
}

func newUserService() UserService {
	return NewUserService(repository.NewMemoryUserRepository(), NewMemorySessionStore(), time.Hour)
}

func TestSignUpInput_Validate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*SignUpInput)
		field  string
	}{
		{"missing name", func(in *SignUpInput) { in.FullName = " " }, "full_name"},
		{"bad email", func(in *SignUpInput) { in.Email = "maria@freshfoods" }, "email"},
		{"missing email", func(in *SignUpInput) { in.Email = "" }, "email"},
		{"short phone", func(in *SignUpInput) { in.Phone = "555 0199" }, "phone"},
		{"letters in phone", func(in *SignUpInput) { in.Phone = "call-me-maybe-now" }, "phone"},
		{"short password", func(in *SignUpInput) { in.Password, in.ConfirmPassword = "short", "short" }, "password"},
		{"password over bcrypt limit", func(in *SignUpInput) {
			in.Password = strings.Repeat("p", 73)
			in.ConfirmPassword = in.Password
		}, "password"},
		{"mismatched confirmation", func(in *SignUpInput) { in.ConfirmPassword = "coldchain2" }, "confirm_password"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validSignUp()
			tt.modify(&in)

			var verr *ValidationError
			if err := in.Validate(); !errors.As(err, &verr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if _, ok := verr.Fields[tt.field]; !ok {
				t.Errorf("expected field %s in %v", tt.field, verr.Fields)
			}
		})
	}

	if err := validSignUp().Validate(); err != nil {
		t.Errorf("valid input rejected: %v", err)
	}

	longest := validSignUp()
	longest.Password = strings.Repeat("p", 72)
	longest.ConfirmPassword = longest.Password
	if err := longest.Validate(); err != nil {
		t.Errorf("72-byte password rejected: %v", err)
	}
}

func TestUserService_SignUp(t *testing.T) {
	svc := newUserService()
	ctx := context.Background()

	user, err := svc.SignUp(ctx, validSignUp())
	if err != nil {
		t.Fatalf("sign up: %v", err)
	}
	if user.ID == 0 || user.Role != models.RoleDispatcher || user.PasswordHash == "" {
		t.Errorf("unexpected user: %+v", user)
	}
	if user.PasswordHash == "coldchain1" {
		t.Error("password stored in clear text")
	}

	again := validSignUp()
	again.Email = "MARIA@freshfoods.com"
	if _, err := svc.SignUp(ctx, again); !errors.Is(err, ErrEmailTaken) {
		t.Errorf("expected ErrEmailTaken, got %v", err)
	}
}

func TestUserService_Session(t *testing.T) {
	svc := newUserService()
	ctx := context.Background()

	if _, err := svc.SignUp(ctx, validSignUp()); err != nil {
		t.Fatalf("sign up: %v", err)
	}

	if _, _, err := svc.Login(ctx, "maria@freshfoods.com", "wrong-password"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, _, err := svc.Login(ctx, "nobody@freshfoods.com", "coldchain1"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials for unknown email, got %v", err)
	}

	token, user, err := svc.Login(ctx, " maria@freshfoods.com ", "coldchain1")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if token == "" || user.Email != "maria@freshfoods.com" {
		t.Fatalf("unexpected login result: %q %+v", token, user)
	}

	profile, err := svc.Profile(ctx, token)
	if err != nil {
		t.Fatalf("profile: %v", err)
	}
	if profile.FullName != "Maria Lopez" {
		t.Errorf("unexpected profile: %+v", profile)
	}

	if err := svc.Logout(ctx, token); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if _, err := svc.Profile(ctx, token); !errors.Is(err, ErrUnauthorized) {
		t.Errorf("expected ErrUnauthorized after logout, got %v", err)
	}
	if _, err := svc.Profile(ctx, ""); !errors.Is(err, ErrUnauthorized) {
		t.Errorf("expected ErrUnauthorized without token, got %v", err)
	}
}

func TestMemorySessionStore_Expiry(t *testing.T) {
	now := time.Date(2025, 1, 15, 8, 0, 0, 0, time.UTC)
	store := &memorySessionStore{
		sessions: make(map[string]memorySession),
		now:      func() time.Time { return now },
	}
	ctx := context.Background()

	if err := store.SetSession(ctx, "tok", &redis.SessionData{UserID: 1}, time.Minute); err != nil {
		t.Fatalf("set session: %v", err)
	}
	if got, err := store.GetSession(ctx, "tok"); err != nil || got.UserID != 1 {
		t.Fatalf("get session: %+v, %v", got, err)
	}

	now = now.Add(time.Minute)
	if _, err := store.GetSession(ctx, "tok"); !errors.Is(err, redis.ErrSessionNotFound) {
		t.Errorf("expected ErrSessionNotFound after expiry, got %v", err)
	}
	if len(store.sessions) != 0 {
		t.Errorf("expired session not removed")
	}
}
