package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var dummyPasswordHash = []byte("$2a$10$CwTycUXWue0Thq9StjUM0uJ8n4VWeNseyX2fA9DE.D7su7J6iYGTC")

// Admin is a portal operator account.
type Admin struct {
	ID      string    `json:"id"`
	Email   string    `json:"email"`
	Name    string    `json:"name"`
	Created time.Time `json:"created"`
}

// CreateAdmin registers a new portal operator.
func (s *Store) CreateAdmin(ctx context.Context, email, password, name string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return fmt.Errorf("email and password are required")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO admins (id, email, password_hash, name, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, uuid.New().String(), email, hash, name, time.Now().UTC())
	if err != nil {
		if isUniqueViolation(err) {
			return ErrAdminExists
		}
		return fmt.Errorf("insert admin: %w", err)
	}
	return nil
}

// Authenticate validates credentials and returns the matching admin.
func (s *Store) Authenticate(ctx context.Context, email, password string) (Admin, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var (
		admin Admin
		hash  []byte
	)
	err := s.db.QueryRowContext(ctx, `
		SELECT id, email, password_hash, name, created_at
		FROM admins
		WHERE email = $1
	`, email).Scan(&admin.ID, &admin.Email, &hash, &admin.Name, &admin.Created)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			_ = bcrypt.CompareHashAndPassword(dummyPasswordHash, []byte(password))
			return Admin{}, ErrInvalidCredentials
		}
		return Admin{}, fmt.Errorf("lookup admin: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword(hash, []byte(password)); err != nil {
		return Admin{}, ErrInvalidCredentials
	}
	return admin, nil
}
