package utils // package utils provides helpers for session tokens and hashing

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Session is the authenticated identity carried by the session cookie.
// The cookie value is an HS256 JWT whose subject is the opaque user
// identifier; the full name rides along so pages can greet the user
// without a DB round trip.
type Session struct {
	UserID   string    // opaque user identifier (sub claim)
	FullName string    // display name (name claim)
	Exp      time.Time // UTC expiration time
}

// ErrInvalidSession is returned when a session token is missing claims,
// expired, or signed with the wrong key.
var ErrInvalidSession = errors.New("invalid session token")

// NewSessionToken builds and signs an HS256 JWT binding the session to a
// user identifier and full name. ttlMin controls the session lifetime.
func NewSessionToken(secret, userID, fullName string, ttlMin int) (string, time.Time, error) {
	exp := time.Now().UTC().Add(time.Duration(ttlMin) * time.Minute)
	claims := jwt.MapClaims{
		"sub":  userID,
		"name": fullName,
		"exp":  exp.Unix(),
		"iat":  time.Now().UTC().Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString([]byte(secret))
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, exp, nil
}

// ParseSessionToken validates a session token and extracts the identity.
// Tokens signed with a different method or secret are rejected.
func ParseSessionToken(secret, raw string) (Session, error) {
	tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidSession
		}
		return []byte(secret), nil
	})
	if err != nil || !tok.Valid {
		return Session{}, ErrInvalidSession
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return Session{}, ErrInvalidSession
	}
	sub, _ := claims["sub"].(string)
	if sub == "" {
		return Session{}, ErrInvalidSession
	}
	name, _ := claims["name"].(string)
	s := Session{UserID: sub, FullName: name}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		s.Exp = exp.Time
	}
	return s, nil
}
