package user

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"hrms/internal/platform/db"
	"hrms/internal/platform/metrics"
)

var ErrUserNotFound = errors.New("user not found")

type User struct {
	ID           string
	Email        string
	PasswordHash string
	Role         string
	MFASecret    *string
	IsActive     bool
}

type Store struct {
	DB      db.Database
	Metrics *metrics.Metrics
}

func NewStore(database db.Database, m *metrics.Metrics) *Store {
	return &Store{DB: database, Metrics: m}
}

func (s *Store) observe(query string, start time.Time) {
	if s.Metrics != nil {
		s.Metrics.DBQueryDuration.WithLabelValues(query).Observe(time.Since(start).Seconds())
	}
}

func (s *Store) FindActiveUserByEmail(ctx context.Context, email string) (*User, error) {
	defer s.observe("user_find_by_email", time.Now())

	var u User
	err := s.DB.QueryRow(ctx, `
    SELECT id, email, password_hash, role, mfa_secret, is_active
    FROM users
    WHERE email = $1 AND is_active = true
  `, email).Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Role, &u.MFASecret, &u.IsActive)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (s *Store) UpdateLastLogin(ctx context.Context, userID string) error {
	defer s.observe("user_update_last_login", time.Now())

	_, err := s.DB.Exec(ctx, "UPDATE users SET last_login = now() WHERE id = $1", userID)
	return err
}
