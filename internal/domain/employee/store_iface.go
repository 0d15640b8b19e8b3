package employee

import "context"

type StoreAPI interface {
	GetEmployee(ctx context.Context, employeeID string) (*EmployeeDetails, error)
	ListEmployees(ctx context.Context, query ListQuery) (*ListResult, error)
	CreateEmployee(ctx context.Context, input CreateEmployeeInput) (*Employee, error)
	UpdateEmployee(ctx context.Context, employeeID string, patch UpdateEmployeePatch) (*Employee, error)
	SoftDeleteEmployee(ctx context.Context, employeeID string) (*Employee, error)
	EmployeeStats(ctx context.Context) (*Stats, error)
	GetPersonalInfo(ctx context.Context, employeeID string) (*PersonalInfo, error)
	UpsertPersonalInfo(ctx context.Context, employeeID string, patch PersonalInfoPatch) (*PersonalInfo, error)
	GetContactInfo(ctx context.Context, employeeID string) (*ContactInfo, error)
	UpsertContactInfo(ctx context.Context, employeeID string, patch ContactInfoPatch) (*ContactInfo, error)
	GetEmploymentInfo(ctx context.Context, employeeID string) (*EmploymentInfo, error)
	UpsertEmploymentInfo(ctx context.Context, employeeID string, patch EmploymentInfoPatch) (*EmploymentInfo, error)
	GetFinancialInfo(ctx context.Context, employeeID string) (*FinancialInfo, error)
	UpsertFinancialInfo(ctx context.Context, employeeID string, patch FinancialInfoPatch) (*FinancialInfo, error)
}
