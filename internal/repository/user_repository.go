package repository

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"strings"

	"github.com/ambrose/movie-catalog/internal/model"
)

// UserRepo manages persistence for the `users` table.
type UserRepo struct{ DB *sql.DB }

func NewUserRepo(db *sql.DB) *UserRepo { return &UserRepo{DB: db} }

const userCols = "id, user_id, full_name, email, password_hash, phone, created_at"

// Create inserts a user row. The caller supplies the opaque user_id and
// the password hash; emails are stored lowercased. A duplicate email is
// reported as ErrEmailExists, anything else is logged and propagated.
func (r *UserRepo) Create(ctx context.Context, u *model.User) error {
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO users (user_id, full_name, email, password_hash, phone) VALUES (?,?,?,?,?)",
		u.UserID, u.FullName, u.Email, u.PasswordHash, u.Phone)
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "1062") {
			return ErrEmailExists
		}
		log.Printf("users: insert failed: %v", err)
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	u.ID = uint64(id)
	return nil
}

// GetByEmail fetches a user by normalized email.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (model.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	var u model.User
	err := r.DB.QueryRowContext(ctx,
		"SELECT "+userCols+" FROM users WHERE email=? LIMIT 1",
		email).Scan(&u.ID, &u.UserID, &u.FullName, &u.Email, &u.PasswordHash, &u.Phone, &u.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return u, ErrUserNotFound
	}
	if err != nil {
		log.Printf("users: select by email failed: %v", err)
	}
	return u, err
}

// GetByUserID fetches a user by its opaque public identifier.
func (r *UserRepo) GetByUserID(ctx context.Context, userID string) (model.User, error) {
	var u model.User
	err := r.DB.QueryRowContext(ctx,
		"SELECT "+userCols+" FROM users WHERE user_id=? LIMIT 1",
		userID).Scan(&u.ID, &u.UserID, &u.FullName, &u.Email, &u.PasswordHash, &u.Phone, &u.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return u, ErrUserNotFound
	}
	if err != nil {
		log.Printf("users: select by user_id failed: %v", err)
	}
	return u, err
}
