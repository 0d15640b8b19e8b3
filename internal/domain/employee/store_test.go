package employee_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hrms/internal/domain/employee"
)

var employeeRowColumns = []string{
	"employee_id", "number", "full_name_english", "full_name_vietnamese",
	"display_name", "employment_status", "marital_status", "created_at", "updated_at",
}

func newEmployeeRow(mock pgxmock.PgxPoolIface, id string, status string) *pgxmock.Rows {
	now := time.Now()
	return mock.NewRows(employeeRowColumns).
		AddRow(id, int64(7), "Jane Doe", "Jane Doe VN", nil, status, nil, now, now)
}

func TestGetEmployee_NotFound(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery(`FROM employees\s+WHERE employee_id = \$1`).
		WithArgs("EMP000001XYZ").
		WillReturnError(pgx.ErrNoRows)

	store := employee.NewStore(mock, nil)
	_, err = store.GetEmployee(context.Background(), "EMP000001XYZ")

	require.ErrorIs(t, err, employee.ErrEmployeeNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetEmployee_Success(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery(`FROM employees\s+WHERE employee_id = \$1`).
		WithArgs("EMP123456ABC").
		WillReturnRows(newEmployeeRow(mock, "EMP123456ABC", employee.StatusActive))
	mock.ExpectQuery(`FROM personal_info`).
		WithArgs("EMP123456ABC").
		WillReturnError(pgx.ErrNoRows)
	mock.ExpectQuery(`FROM contact_info`).
		WithArgs("EMP123456ABC").
		WillReturnError(pgx.ErrNoRows)
	mock.ExpectQuery(`FROM employment_info ei`).
		WithArgs("EMP123456ABC").
		WillReturnError(pgx.ErrNoRows)
	mock.ExpectQuery(`FROM financial_info`).
		WithArgs("EMP123456ABC").
		WillReturnError(pgx.ErrNoRows)

	store := employee.NewStore(mock, nil)
	details, err := store.GetEmployee(context.Background(), "EMP123456ABC")

	require.NoError(t, err)
	assert.Equal(t, "EMP123456ABC", details.EmployeeID)
	assert.Equal(t, employee.StatusActive, details.EmploymentStatus)
	assert.Nil(t, details.PersonalInfo)
	assert.Nil(t, details.ContactInfo)
	assert.Nil(t, details.EmploymentInfo)
	assert.Nil(t, details.FinancialInfo)
	require.NoError(t, mock.ExpectationsWereMet())
}

func listRowColumns(mock pgxmock.PgxPoolIface) *pgxmock.Rows {
	return mock.NewRows([]string{
		"employee_id", "number", "full_name_english", "full_name_vietnamese",
		"display_name", "employment_status", "marital_status", "created_at", "updated_at",
		"position_english", "position_vietnamese", "onboarding_date",
		"id", "name", "code",
		"company_email", "personal_email", "mobile_phone",
		"total",
	})
}

func TestListEmployees_PaginationMath(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	now := time.Now()
	rows := listRowColumns(mock)
	for i := 0; i < 5; i++ {
		rows.AddRow(
			fmt.Sprintf("EMP00000%d", i+1), int64(i+1), "Name", "Ten", nil, employee.StatusActive, nil, now, now,
			nil, nil, nil,
			nil, nil, nil,
			nil, nil, nil,
			45,
		)
	}

	mock.ExpectQuery(`COUNT\(\*\) OVER \(\) AS total`).
		WithArgs(20, 40).
		WillReturnRows(rows)

	store := employee.NewStore(mock, nil)
	result, err := store.ListEmployees(context.Background(), employee.ListQuery{Page: 2, PageSize: 20})

	require.NoError(t, err)
	assert.Equal(t, 45, result.Total)
	assert.Equal(t, 3, result.TotalPages)
	assert.Equal(t, 2, result.Page)
	assert.Len(t, result.Items, 5)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListEmployees_EmptyPageIsNotAnError(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery(`COUNT\(\*\) OVER \(\) AS total`).
		WithArgs("%nobody%", 20, 0).
		WillReturnRows(listRowColumns(mock))

	store := employee.NewStore(mock, nil)
	result, err := store.ListEmployees(context.Background(), employee.ListQuery{Search: "nobody", PageSize: 20})

	require.NoError(t, err)
	assert.Empty(t, result.Items)
	assert.Zero(t, result.Total)
	assert.Zero(t, result.TotalPages)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListEmployees_FilterArgs(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	deptID := int64(3)
	mock.ExpectQuery(`e\.employment_status = \$2 AND ei\.department_id = \$3`).
		WithArgs("%doe%", employee.StatusActive, deptID, 10, 0).
		WillReturnRows(listRowColumns(mock))

	store := employee.NewStore(mock, nil)
	_, err = store.ListEmployees(context.Background(), employee.ListQuery{
		Search:           "doe",
		EmploymentStatus: employee.StatusActive,
		DepartmentID:     &deptID,
		PageSize:         10,
	})

	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateEmployee_ReturnsStoredRow(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery(`INSERT INTO employees`).
		WithArgs("EMP654321ZZZ", "Jane Doe", "Jane Doe VN", (*string)(nil), employee.StatusActive, (*string)(nil)).
		WillReturnRows(newEmployeeRow(mock, "EMP654321ZZZ", employee.StatusActive))

	store := employee.NewStore(mock, nil)
	created, err := store.CreateEmployee(context.Background(), employee.CreateEmployeeInput{
		EmployeeID:         "EMP654321ZZZ",
		FullNameEnglish:    "Jane Doe",
		FullNameVietnamese: "Jane Doe VN",
		EmploymentStatus:   employee.StatusActive,
	})

	require.NoError(t, err)
	assert.Equal(t, "EMP654321ZZZ", created.EmployeeID)
	assert.Equal(t, int64(7), created.Number)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateEmployee_NotFound(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	name := "New Name"
	mock.ExpectQuery(`UPDATE employees`).
		WithArgs("EMP999999AAA", &name, (*string)(nil), (*string)(nil), (*string)(nil), (*string)(nil)).
		WillReturnError(pgx.ErrNoRows)

	store := employee.NewStore(mock, nil)
	_, err = store.UpdateEmployee(context.Background(), "EMP999999AAA", employee.UpdateEmployeePatch{FullNameEnglish: &name})

	require.ErrorIs(t, err, employee.ErrEmployeeNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSoftDeleteEmployee_SetsTerminated(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery(`SET employment_status = 'Terminated'`).
		WithArgs("EMP123456ABC").
		WillReturnRows(newEmployeeRow(mock, "EMP123456ABC", employee.StatusTerminated))

	store := employee.NewStore(mock, nil)
	terminated, err := store.SoftDeleteEmployee(context.Background(), "EMP123456ABC")

	require.NoError(t, err)
	assert.Equal(t, employee.StatusTerminated, terminated.EmploymentStatus)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEmployeeStats_GroupsByStatus(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	rows := mock.NewRows([]string{"employment_status", "count"}).
		AddRow(employee.StatusActive, 12).
		AddRow(employee.StatusTerminated, 4).
		AddRow(employee.StatusOnboarding, 2).
		AddRow(employee.StatusPreOnboarding, 1)

	mock.ExpectQuery(`GROUP BY employment_status`).WillReturnRows(rows)

	store := employee.NewStore(mock, nil)
	stats, err := store.EmployeeStats(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 19, stats.Total)
	assert.Equal(t, 12, stats.Active)
	assert.Equal(t, 4, stats.Terminated)
	assert.Equal(t, 2, stats.Onboarding)
	assert.Equal(t, 1, stats.PreOnboarding)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetPersonalInfo_AbsentIsNil(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery(`FROM personal_info`).
		WithArgs("EMP123456ABC").
		WillReturnError(pgx.ErrNoRows)

	store := employee.NewStore(mock, nil)
	info, err := store.GetPersonalInfo(context.Background(), "EMP123456ABC")

	require.NoError(t, err)
	assert.Nil(t, info)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsertContactInfo_CoalescesSparseFields(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	now := time.Now()
	phone := "0912345678"
	email := "jane@corp.example"
	rows := mock.NewRows([]string{
		"id", "employee_id", "mobile_phone", "permanent_address", "temporary_address",
		"personal_email", "company_email", "created_at", "updated_at",
	}).AddRow(int64(1), "EMP123456ABC", &phone, nil, nil, nil, &email, now, now)

	mock.ExpectQuery(`ON CONFLICT \(employee_id\) DO UPDATE SET\s+mobile_phone = COALESCE\(EXCLUDED\.mobile_phone, contact_info\.mobile_phone\)`).
		WithArgs("EMP123456ABC", &phone, (*string)(nil), (*string)(nil), (*string)(nil), (*string)(nil)).
		WillReturnRows(rows)

	store := employee.NewStore(mock, nil)
	info, err := store.UpsertContactInfo(context.Background(), "EMP123456ABC", employee.ContactInfoPatch{MobilePhone: &phone})

	require.NoError(t, err)
	require.NotNil(t, info.MobilePhone)
	assert.Equal(t, phone, *info.MobilePhone)
	require.NotNil(t, info.CompanyEmail)
	assert.Equal(t, email, *info.CompanyEmail)
	require.NoError(t, mock.ExpectationsWereMet())
}
