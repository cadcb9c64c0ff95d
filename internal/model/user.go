package model

import "time"

// User represents an application user record as stored in the `users`
// table. UserID is the opaque public identifier handed out at
// registration; movies reference it rather than the numeric primary key.
//
// Fields:
//  ID           – numeric primary key.
//  UserID       – opaque public identifier (uuid-derived).
//  FullName     – display name.
//  Email        – unique email address.
//  PasswordHash – bcrypt hashed password.
//  Phone        – contact phone number.
//  CreatedAt    – timestamp of registration.
type User struct {
	ID           uint64    // users.id
	UserID       string    // users.user_id
	FullName     string    // users.full_name
	Email        string    // users.email
	PasswordHash string    // users.password_hash
	Phone        string    // users.phone
	CreatedAt    time.Time // users.created_at
}
