package employee

import (
	"context"
	"strings"
	"time"
)

type Service struct {
	store StoreAPI
}

func NewService(store StoreAPI) *Service {
	return &Service{store: store}
}

func (s *Service) GetEmployee(ctx context.Context, employeeID string) (*EmployeeDetails, error) {
	return s.store.GetEmployee(ctx, employeeID)
}

func (s *Service) ListEmployees(ctx context.Context, query ListQuery) (*ListResult, error) {
	return s.store.ListEmployees(ctx, query)
}

// CreateEmployee assigns the external identifier when the caller omits one and
// defaults the status to Active before handing off to storage.
func (s *Service) CreateEmployee(ctx context.Context, input CreateEmployeeInput) (*Employee, error) {
	if strings.TrimSpace(input.EmployeeID) == "" {
		input.EmployeeID = NewEmployeeID(time.Now())
	}
	if input.EmploymentStatus == "" {
		input.EmploymentStatus = StatusActive
	}
	return s.store.CreateEmployee(ctx, input)
}

// UpdateEmployee accepts an empty patch as well: the row is untouched apart
// from updated_at, which is refreshed on every successful write.
func (s *Service) UpdateEmployee(ctx context.Context, employeeID string, patch UpdateEmployeePatch) (*Employee, error) {
	return s.store.UpdateEmployee(ctx, employeeID, patch)
}

func (s *Service) SoftDeleteEmployee(ctx context.Context, employeeID string) (*Employee, error) {
	return s.store.SoftDeleteEmployee(ctx, employeeID)
}

func (s *Service) EmployeeStats(ctx context.Context) (*Stats, error) {
	return s.store.EmployeeStats(ctx)
}

func (s *Service) GetPersonalInfo(ctx context.Context, employeeID string) (*PersonalInfo, error) {
	return s.store.GetPersonalInfo(ctx, employeeID)
}

func (s *Service) UpsertPersonalInfo(ctx context.Context, employeeID string, patch PersonalInfoPatch) (*PersonalInfo, error) {
	return s.store.UpsertPersonalInfo(ctx, employeeID, patch)
}

func (s *Service) GetContactInfo(ctx context.Context, employeeID string) (*ContactInfo, error) {
	return s.store.GetContactInfo(ctx, employeeID)
}

func (s *Service) UpsertContactInfo(ctx context.Context, employeeID string, patch ContactInfoPatch) (*ContactInfo, error) {
	return s.store.UpsertContactInfo(ctx, employeeID, patch)
}

func (s *Service) GetEmploymentInfo(ctx context.Context, employeeID string) (*EmploymentInfo, error) {
	return s.store.GetEmploymentInfo(ctx, employeeID)
}

func (s *Service) UpsertEmploymentInfo(ctx context.Context, employeeID string, patch EmploymentInfoPatch) (*EmploymentInfo, error) {
	return s.store.UpsertEmploymentInfo(ctx, employeeID, patch)
}

func (s *Service) GetFinancialInfo(ctx context.Context, employeeID string) (*FinancialInfo, error) {
	return s.store.GetFinancialInfo(ctx, employeeID)
}

func (s *Service) UpsertFinancialInfo(ctx context.Context, employeeID string, patch FinancialInfoPatch) (*FinancialInfo, error) {
	return s.store.UpsertFinancialInfo(ctx, employeeID, patch)
}
