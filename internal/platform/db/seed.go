package db

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"hrms/internal/auth"
	"hrms/internal/platform/config"
)

var seedDepartments = []struct {
	Name string
	Code string
}{
	{"Engineering", "ENG"},
	{"Human Resources", "HR"},
	{"Finance & Accounting", "FIN"},
	{"Sales", "SAL"},
	{"Operations", "OPS"},
}

func Seed(ctx context.Context, pool *pgxpool.Pool, cfg config.Config) error {
	if err := ensureDepartments(ctx, pool); err != nil {
		return err
	}
	if cfg.SeedAdminEmail != "" && cfg.SeedAdminPassword != "" {
		if err := ensureAdminUser(ctx, pool, cfg.SeedAdminEmail, cfg.SeedAdminPassword); err != nil {
			return err
		}
	}
	return nil
}

func ensureDepartments(ctx context.Context, pool *pgxpool.Pool) error {
	for _, dep := range seedDepartments {
		_, err := pool.Exec(ctx, `
      INSERT INTO departments (name, code)
      VALUES ($1, $2)
      ON CONFLICT (code) DO NOTHING
    `, dep.Name, dep.Code)
		if err != nil {
			return err
		}
	}
	return nil
}

func ensureAdminUser(ctx context.Context, pool *pgxpool.Pool, email, password string) error {
	var count int
	if err := pool.QueryRow(ctx, "SELECT COUNT(1) FROM users WHERE email = $1", email).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hashed, err := auth.HashPassword(password)
	if err != nil {
		return err
	}
	_, err = pool.Exec(ctx, `
    INSERT INTO users (email, password_hash, role)
    VALUES ($1, $2, 'HR')
  `, email, hashed)
	return err
}
