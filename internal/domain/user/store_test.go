package user_test

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hrms/internal/domain/user"
)

func TestFindActiveUserByEmail(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	rows := mock.NewRows([]string{"id", "email", "password_hash", "role", "mfa_secret", "is_active"}).
		AddRow("11111111-1111-1111-1111-111111111111", "hr@corp.example", "$2a$10$hash", "HR", nil, true)

	mock.ExpectQuery(`FROM users\s+WHERE email = \$1 AND is_active = true`).
		WithArgs("hr@corp.example").
		WillReturnRows(rows)

	store := user.NewStore(mock, nil)
	account, err := store.FindActiveUserByEmail(context.Background(), "hr@corp.example")

	require.NoError(t, err)
	assert.Equal(t, "HR", account.Role)
	assert.Nil(t, account.MFASecret)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFindActiveUserByEmail_NotFound(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery(`FROM users`).
		WithArgs("ghost@corp.example").
		WillReturnError(pgx.ErrNoRows)

	store := user.NewStore(mock, nil)
	_, err = store.FindActiveUserByEmail(context.Background(), "ghost@corp.example")

	require.ErrorIs(t, err, user.ErrUserNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}
