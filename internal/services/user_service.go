package services

import (
	"context"
	"errors"
	"fmt"
	"logistics_dashboard/internal/models"
	"logistics_dashboard/internal/redis"
	"logistics_dashboard/internal/repository"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const (
	minPasswordLength = 8
	// bcrypt only reads this many bytes of a password.
	maxPasswordBytes = 72
)

var (
	emailPattern = regexp.MustCompile(`\S+@\S+\.\S+`)
	phonePattern = regexp.MustCompile(`^\+?[\d\s-]{10,}$`)
)

type SignUpInput struct {
	FullName        string `json:"full_name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

// Validate applies the sign-up form rules. It returns a *ValidationError
// naming every rejected field.
func (in SignUpInput) Validate() error {
	fields := map[string]string{}

	if strings.TrimSpace(in.FullName) == "" {
		fields["full_name"] = "Full name is required"
	}

	if strings.TrimSpace(in.Email) == "" {
		fields["email"] = "Email is required"
	} else if !emailPattern.MatchString(in.Email) {
		fields["email"] = "Please enter a valid email"
	}

	if strings.TrimSpace(in.Phone) == "" {
		fields["phone"] = "Phone number is required"
	} else if !phonePattern.MatchString(strings.Join(strings.Fields(in.Phone), "")) {
		fields["phone"] = "Please enter a valid phone number"
	}

	if in.Password == "" {
		fields["password"] = "Password is required"
	} else if len(in.Password) < minPasswordLength {
		fields["password"] = fmt.Sprintf("Password must be at least %d characters", minPasswordLength)
	} else if len(in.Password) > maxPasswordBytes {
		fields["password"] = fmt.Sprintf("Password must be at most %d bytes", maxPasswordBytes)
	}

	if in.Password != in.ConfirmPassword {
		fields["confirm_password"] = "Passwords do not match"
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

type UserService interface {
	SignUp(ctx context.Context, in SignUpInput) (*models.User, error)
	CreateUser(ctx context.Context, user *models.User, password string) error
	Login(ctx context.Context, email, password string) (string, *models.User, error)
	Profile(ctx context.Context, token string) (*models.User, error)
	Logout(ctx context.Context, token string) error
}

type userService struct {
	userRepo   repository.UserRepository
	sessions   SessionStore
	sessionTTL time.Duration
}

func NewUserService(userRepo repository.UserRepository, sessions SessionStore, sessionTTL time.Duration) UserService {
	return &userService{userRepo: userRepo, sessions: sessions, sessionTTL: sessionTTL}
}

func (s *userService) SignUp(ctx context.Context, in SignUpInput) (*models.User, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	user := &models.User{
		FullName: strings.TrimSpace(in.FullName),
		Email:    strings.TrimSpace(in.Email),
		Phone:    strings.TrimSpace(in.Phone),
		Role:     models.RoleDispatcher,
	}
	if err := s.CreateUser(ctx, user, in.Password); err != nil {
		return nil, err
	}
	return user, nil
}

// CreateUser hashes password into user and stores it.
func (s *userService) CreateUser(ctx context.Context, user *models.User, password string) error {
	if _, err := s.userRepo.GetByEmail(ctx, user.Email); err == nil {
		return ErrEmailTaken
	} else if !errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("create user: %w", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("create user: hash password: %w", err)
	}
	user.PasswordHash = string(hashedPassword)

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return ErrEmailTaken
		}
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

func (s *userService) Login(ctx context.Context, email, password string) (string, *models.User, error) {
	user, err := s.userRepo.GetByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("login: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token := uuid.NewString()
	session := &redis.SessionData{UserID: user.ID, Email: user.Email, CreatedAt: time.Now()}
	if err := s.sessions.SetSession(ctx, token, session, s.sessionTTL); err != nil {
		return "", nil, fmt.Errorf("login: store session: %w", err)
	}
	return token, user, nil
}

func (s *userService) Profile(ctx context.Context, token string) (*models.User, error) {
	if token == "" {
		return nil, ErrUnauthorized
	}

	session, err := s.sessions.GetSession(ctx, token)
	if err != nil {
		if errors.Is(err, redis.ErrSessionNotFound) {
			return nil, ErrUnauthorized
		}
		return nil, fmt.Errorf("profile: %w", err)
	}

	user, err := s.userRepo.GetByID(ctx, session.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUnauthorized
		}
		return nil, fmt.Errorf("profile: %w", err)
	}
	return user, nil
}

func (s *userService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return ErrUnauthorized
	}
	return s.sessions.DeleteSession(ctx, token)
}
