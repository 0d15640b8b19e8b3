package department

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"hrms/internal/platform/db"
	"hrms/internal/platform/metrics"
)

var ErrDepartmentNotFound = errors.New("department not found")

type Department struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Code        string    `json:"code"`
	Description *string   `json:"description,omitempty"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
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

func (s *Store) ListDepartments(ctx context.Context) ([]Department, error) {
	defer s.observe("list_departments", time.Now())

	rows, err := s.DB.Query(ctx, `
    SELECT id, name, code, description, is_active, created_at, updated_at
    FROM departments
    ORDER BY name
  `)
	if err != nil {
		return nil, fmt.Errorf("failed to list departments: %w", err)
	}
	defer rows.Close()

	out := make([]Department, 0, 8)
	for rows.Next() {
		var dep Department
		if err := rows.Scan(&dep.ID, &dep.Name, &dep.Code, &dep.Description, &dep.IsActive, &dep.CreatedAt, &dep.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan department row: %w", err)
		}
		out = append(out, dep)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read department rows: %w", err)
	}
	return out, nil
}

func (s *Store) GetDepartment(ctx context.Context, id int64) (*Department, error) {
	defer s.observe("get_department", time.Now())

	var dep Department
	err := s.DB.QueryRow(ctx, `
    SELECT id, name, code, description, is_active, created_at, updated_at
    FROM departments
    WHERE id = $1
  `, id).Scan(&dep.ID, &dep.Name, &dep.Code, &dep.Description, &dep.IsActive, &dep.CreatedAt, &dep.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrDepartmentNotFound
		}
		return nil, fmt.Errorf("failed to get department: %w", err)
	}
	return &dep, nil
}
