package department_test

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hrms/internal/domain/department"
)

func TestListDepartments_OrderedByName(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	now := time.Now()
	rows := mock.NewRows([]string{"id", "name", "code", "description", "is_active", "created_at", "updated_at"}).
		AddRow(int64(1), "Engineering", "ENG", nil, true, now, now).
		AddRow(int64(2), "Human Resources", "HR", nil, true, now, now)

	mock.ExpectQuery(`FROM departments\s+ORDER BY name`).WillReturnRows(rows)

	store := department.NewStore(mock, nil)
	departments, err := store.ListDepartments(context.Background())

	require.NoError(t, err)
	require.Len(t, departments, 2)
	assert.Equal(t, "ENG", departments[0].Code)
	assert.Equal(t, "HR", departments[1].Code)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetDepartment_NotFound(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery(`FROM departments\s+WHERE id = \$1`).
		WithArgs(int64(42)).
		WillReturnError(pgx.ErrNoRows)

	store := department.NewStore(mock, nil)
	_, err = store.GetDepartment(context.Background(), 42)

	require.ErrorIs(t, err, department.ErrDepartmentNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}
