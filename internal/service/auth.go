package service

import (
	"context"
	"errors"
	"math/big"

	"github.com/google/uuid"

	"github.com/ambrose/movie-catalog/internal/model"
	"github.com/ambrose/movie-catalog/internal/repository"
	"github.com/ambrose/movie-catalog/internal/utils"
)

// UserStore is the persistence surface the auth service depends on.
// *repository.UserRepo satisfies it; tests supply fakes.
type UserStore interface {
	Create(ctx context.Context, u *model.User) error
	GetByEmail(ctx context.Context, email string) (model.User, error)
	GetByUserID(ctx context.Context, userID string) (model.User, error)
}

// AuthService registers users and verifies credentials. Session issuing
// is left to the HTTP layer; Login only proves identity.
type AuthService struct {
	users      UserStore
	bcryptCost int
}

func NewAuthService(users UserStore, bcryptCost int) *AuthService {
	return &AuthService{users: users, bcryptCost: bcryptCost}
}

// RegisterInput carries the registration form fields.
type RegisterInput struct {
	FullName        string `json:"full_name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
	Phone           string `json:"phone"`
}

// Register validates the input, hashes the password and persists a new
// user. On success the generated opaque user identifier is returned.
// Failure modes: ValidationError (missing fields, bad email shape),
// ErrPasswordMismatch, ErrUserExists, ErrPersistence.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (string, error) {
	missing := utils.MissingFields(
		utils.Field{Name: "full_name", Value: in.FullName},
		utils.Field{Name: "email", Value: in.Email},
		utils.Field{Name: "password", Value: in.Password},
		utils.Field{Name: "confirm_password", Value: in.ConfirmPassword},
		utils.Field{Name: "phone", Value: in.Phone},
	)
	if len(missing) > 0 {
		return "", NewMissingFieldsError(missing)
	}
	if !utils.ValidEmail(in.Email) {
		return "", &ValidationError{Code: "INVALID_EMAIL", Message: "Invalid email format"}
	}
	if in.Password != in.ConfirmPassword {
		return "", ErrPasswordMismatch
	}

	if _, err := s.users.GetByEmail(ctx, in.Email); err == nil {
		return "", ErrUserExists
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		return "", ErrPersistence
	}

	hash, err := utils.HashPassword(in.Password, s.bcryptCost)
	if err != nil {
		return "", ErrPersistence
	}
	u := &model.User{
		UserID:       newUserID(),
		FullName:     in.FullName,
		Email:        in.Email,
		PasswordHash: hash,
		Phone:        in.Phone,
	}
	if err := s.users.Create(ctx, u); err != nil {
		if errors.Is(err, repository.ErrEmailExists) {
			return "", ErrUserExists
		}
		return "", ErrPersistence
	}
	return u.UserID, nil
}

// Login verifies an email/password pair and returns the matching user.
// Unknown emails and wrong passwords both yield ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, email, password string) (model.User, error) {
	if missing := utils.MissingFields(
		utils.Field{Name: "email", Value: email},
		utils.Field{Name: "password", Value: password},
	); len(missing) > 0 {
		return model.User{}, NewMissingFieldsError(missing)
	}
	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return model.User{}, ErrInvalidCredentials
		}
		return model.User{}, ErrPersistence
	}
	if !utils.VerifyPassword(u.PasswordHash, password) {
		return model.User{}, ErrInvalidCredentials
	}
	return u, nil
}

// newUserID renders a v4 UUID as a decimal string, the opaque numeric
// identifier format the catalog has always used.
func newUserID() string {
	u := uuid.New()
	return new(big.Int).SetBytes(u[:]).String()
}
