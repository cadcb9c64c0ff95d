package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/ambrose/movie-catalog/internal/model"
	"github.com/ambrose/movie-catalog/internal/repository"
	"github.com/ambrose/movie-catalog/internal/utils"
)

// fakeUserStore keeps users in memory, keyed by lowercase email.
type fakeUserStore struct {
	users     map[string]model.User
	createErr error
	nextID    uint64
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: map[string]model.User{}}
}

func (f *fakeUserStore) Create(ctx context.Context, u *model.User) error {
	if f.createErr != nil {
		return f.createErr
	}
	key := strings.ToLower(u.Email)
	if _, ok := f.users[key]; ok {
		return repository.ErrEmailExists
	}
	f.nextID++
	u.ID = f.nextID
	f.users[key] = *u
	return nil
}

func (f *fakeUserStore) GetByEmail(ctx context.Context, email string) (model.User, error) {
	u, ok := f.users[strings.ToLower(email)]
	if !ok {
		return model.User{}, repository.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUserStore) GetByUserID(ctx context.Context, userID string) (model.User, error) {
	for _, u := range f.users {
		if u.UserID == userID {
			return u, nil
		}
	}
	return model.User{}, repository.ErrUserNotFound
}

func validRegisterInput() RegisterInput {
	return RegisterInput{
		FullName:        "Ada Lovelace",
		Email:           "ada@example.com",
		Password:        "secret123",
		ConfirmPassword: "secret123",
		Phone:           "0123456789",
	}
}

func TestRegisterSuccess(t *testing.T) {
	store := newFakeUserStore()
	svc := NewAuthService(store, bcrypt.MinCost)

	userID, err := svc.Register(context.Background(), validRegisterInput())
	require.NoError(t, err)
	require.NotEmpty(t, userID)

	u, err := store.GetByEmail(context.Background(), "ada@example.com")
	require.NoError(t, err)
	assert.Equal(t, userID, u.UserID)
	assert.Equal(t, "Ada Lovelace", u.FullName)
	assert.True(t, utils.VerifyPassword(u.PasswordHash, "secret123"),
		"stored hash must verify against the plain password")
	assert.NotEqual(t, "secret123", u.PasswordHash)
}

func TestRegisterMissingFields(t *testing.T) {
	svc := NewAuthService(newFakeUserStore(), bcrypt.MinCost)

	in := validRegisterInput()
	in.Email = ""
	in.Phone = ""
	_, err := svc.Register(context.Background(), in)

	ve, ok := AsValidation(err)
	require.True(t, ok)
	assert.Equal(t, "MISSING_FIELDS", ve.Code)
	assert.Equal(t, "Missing required fields: email, phone", ve.Message)
}

func TestRegisterInvalidEmail(t *testing.T) {
	svc := NewAuthService(newFakeUserStore(), bcrypt.MinCost)

	in := validRegisterInput()
	in.Email = "not-an-email"
	_, err := svc.Register(context.Background(), in)

	ve, ok := AsValidation(err)
	require.True(t, ok)
	assert.Equal(t, "INVALID_EMAIL", ve.Code)
}

func TestRegisterPasswordMismatch(t *testing.T) {
	svc := NewAuthService(newFakeUserStore(), bcrypt.MinCost)

	in := validRegisterInput()
	in.ConfirmPassword = "different"
	_, err := svc.Register(context.Background(), in)
	assert.ErrorIs(t, err, ErrPasswordMismatch)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	store := newFakeUserStore()
	svc := NewAuthService(store, bcrypt.MinCost)

	_, err := svc.Register(context.Background(), validRegisterInput())
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), validRegisterInput())
	assert.ErrorIs(t, err, ErrUserExists)
	assert.Len(t, store.users, 1)
}

func TestLoginSuccess(t *testing.T) {
	store := newFakeUserStore()
	svc := NewAuthService(store, bcrypt.MinCost)

	userID, err := svc.Register(context.Background(), validRegisterInput())
	require.NoError(t, err)

	u, err := svc.Login(context.Background(), "ada@example.com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, userID, u.UserID)
	assert.Equal(t, "Ada Lovelace", u.FullName)
}

func TestLoginWrongPassword(t *testing.T) {
	store := newFakeUserStore()
	svc := NewAuthService(store, bcrypt.MinCost)

	_, err := svc.Register(context.Background(), validRegisterInput())
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), "ada@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginUnknownEmail(t *testing.T) {
	svc := NewAuthService(newFakeUserStore(), bcrypt.MinCost)

	_, err := svc.Login(context.Background(), "ghost@example.com", "whatever")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginMissingFields(t *testing.T) {
	svc := NewAuthService(newFakeUserStore(), bcrypt.MinCost)

	_, err := svc.Login(context.Background(), "", "pw")
	ve, ok := AsValidation(err)
	require.True(t, ok)
	assert.Equal(t, "Missing required fields: email", ve.Message)
}

func TestRegisterGeneratesDistinctUserIDs(t *testing.T) {
	store := newFakeUserStore()
	svc := NewAuthService(store, bcrypt.MinCost)

	in2 := validRegisterInput()
	in2.Email = "grace@example.com"

	id1, err := svc.Register(context.Background(), validRegisterInput())
	require.NoError(t, err)
	id2, err := svc.Register(context.Background(), in2)
	require.NoError(t, err)

	assert.NotEqual(t, id1, id2)
	// Decimal rendering of a random 128-bit value.
	assert.Regexp(t, `^\d+$`, id1)
}
