package employee_test

import (
	"context"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hrms/internal/domain/employee"
)

type fakeStore struct {
	employee.StoreAPI

	createInput employee.CreateEmployeeInput
	updatePatch employee.UpdateEmployeePatch
}

func (f *fakeStore) CreateEmployee(_ context.Context, input employee.CreateEmployeeInput) (*employee.Employee, error) {
	f.createInput = input
	return &employee.Employee{EmployeeID: input.EmployeeID, EmploymentStatus: input.EmploymentStatus}, nil
}

func (f *fakeStore) UpdateEmployee(_ context.Context, employeeID string, patch employee.UpdateEmployeePatch) (*employee.Employee, error) {
	f.updatePatch = patch
	return &employee.Employee{EmployeeID: employeeID}, nil
}

func TestCreateEmployee_GeneratesIDAndDefaultsStatus(t *testing.T) {
	store := &fakeStore{}
	service := employee.NewService(store)

	created, err := service.CreateEmployee(context.Background(), employee.CreateEmployeeInput{
		FullNameEnglish:    "Jane Doe",
		FullNameVietnamese: "Jane Doe VN",
	})

	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^EMP\d{6}[A-Z0-9]{3}$`), created.EmployeeID)
	assert.Equal(t, employee.StatusActive, store.createInput.EmploymentStatus)
}

func TestCreateEmployee_KeepsCallerProvidedID(t *testing.T) {
	store := &fakeStore{}
	service := employee.NewService(store)

	created, err := service.CreateEmployee(context.Background(), employee.CreateEmployeeInput{
		EmployeeID:         "EMP-CUSTOM-01",
		FullNameEnglish:    "Jane Doe",
		FullNameVietnamese: "Jane Doe VN",
		EmploymentStatus:   employee.StatusOnboarding,
	})

	require.NoError(t, err)
	assert.Equal(t, "EMP-CUSTOM-01", created.EmployeeID)
	assert.Equal(t, employee.StatusOnboarding, store.createInput.EmploymentStatus)
}

func TestUpdateEmployee_EmptyPatchStillWrites(t *testing.T) {
	store := &fakeStore{}
	service := employee.NewService(store)

	updated, err := service.UpdateEmployee(context.Background(), "EMP123456ABC", employee.UpdateEmployeePatch{})

	require.NoError(t, err)
	assert.Equal(t, "EMP123456ABC", updated.EmployeeID)
	assert.Equal(t, employee.UpdateEmployeePatch{}, store.updatePatch)
}
