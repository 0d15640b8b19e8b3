package client

import "time"

// Wire types mirror the server's JSON shapes. They are declared here rather
// than shared with the server packages so external consumers only depend on
// this package.

type Employee struct {
	EmployeeID         string    `json:"employee_id"`
	Number             int64     `json:"number"`
	FullNameEnglish    string    `json:"full_name_english"`
	FullNameVietnamese string    `json:"full_name_vietnamese"`
	DisplayName        *string   `json:"display_name,omitempty"`
	EmploymentStatus   string    `json:"employment_status"`
	MaritalStatus      *string   `json:"marital_status,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

type PersonalInfo struct {
	Gender                  *string    `json:"gender,omitempty"`
	DateOfBirth             *time.Time `json:"date_of_birth,omitempty"`
	PlaceOfBirth            *string    `json:"place_of_birth,omitempty"`
	Nationality             *string    `json:"nationality,omitempty"`
	Ethnic                  *string    `json:"ethnic,omitempty"`
	IdentityCardNumber      *string    `json:"identity_card_number,omitempty"`
	IdentityCardIssuedDate  *time.Time `json:"identity_card_issued_date,omitempty"`
	IdentityCardIssuedPlace *string    `json:"identity_card_issued_place,omitempty"`
	PassportNumber          *string    `json:"passport_number,omitempty"`
	PassportIssuedDate      *time.Time `json:"passport_issued_date,omitempty"`
	PassportExpiredDate     *time.Time `json:"passport_expired_date,omitempty"`
	PassportIssuedPlace     *string    `json:"passport_issued_place,omitempty"`
	TaxCode                 *string    `json:"tax_code,omitempty"`
	SocialInsuranceNumber   *string    `json:"social_insurance_number,omitempty"`
	HealthInsuranceNumber   *string    `json:"health_insurance_number,omitempty"`
	AcademicLevel           *string    `json:"academic_level,omitempty"`
	Certificate             *string    `json:"certificate,omitempty"`
}

type ContactInfo struct {
	MobilePhone      *string `json:"mobile_phone,omitempty"`
	PermanentAddress *string `json:"permanent_address,omitempty"`
	TemporaryAddress *string `json:"temporary_address,omitempty"`
	PersonalEmail    *string `json:"personal_email,omitempty"`
	CompanyEmail     *string `json:"company_email,omitempty"`
}

type DepartmentRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Code string `json:"code"`
}

type ManagerRef struct {
	EmployeeID      string `json:"employee_id"`
	FullNameEnglish string `json:"full_name_english"`
}

type EmploymentInfo struct {
	DepartmentID       *int64         `json:"department_id,omitempty"`
	ManagerID          *string        `json:"manager_id,omitempty"`
	PositionEnglish    *string        `json:"position_english,omitempty"`
	PositionVietnamese *string        `json:"position_vietnamese,omitempty"`
	Grade              *string        `json:"grade,omitempty"`
	OnboardingDate     *time.Time     `json:"onboarding_date,omitempty"`
	LastWorkingDate    *time.Time     `json:"last_working_date,omitempty"`
	WorkingType        *string        `json:"working_type,omitempty"`
	Department         *DepartmentRef `json:"departments,omitempty"`
	Manager            *ManagerRef    `json:"manager,omitempty"`
}

type FinancialInfo struct {
	BasicSalary       *float64 `json:"basic_salary,omitempty"`
	PositionAllowance *float64 `json:"position_allowance,omitempty"`
	MealAllowance     *float64 `json:"meal_allowance,omitempty"`
	TravelAllowance   *float64 `json:"travel_allowance,omitempty"`
	OtherAllowance    *float64 `json:"other_allowance,omitempty"`
	BankName          *string  `json:"bank_name,omitempty"`
	BankAccountNumber *string  `json:"bank_account_number,omitempty"`
	BankAccountHolder *string  `json:"bank_account_holder,omitempty"`
	Currency          *string  `json:"currency,omitempty"`
}

type EmployeeDetails struct {
	Employee
	PersonalInfo   *PersonalInfo   `json:"personal_info,omitempty"`
	ContactInfo    *ContactInfo    `json:"contact_info,omitempty"`
	EmploymentInfo *EmploymentInfo `json:"employment_info,omitempty"`
	FinancialInfo  *FinancialInfo  `json:"financial_info,omitempty"`
}

type EmploymentSummary struct {
	PositionEnglish    *string        `json:"position_english,omitempty"`
	PositionVietnamese *string        `json:"position_vietnamese,omitempty"`
	OnboardingDate     *time.Time     `json:"onboarding_date,omitempty"`
	Department         *DepartmentRef `json:"departments,omitempty"`
}

type ContactSummary struct {
	CompanyEmail  *string `json:"company_email,omitempty"`
	PersonalEmail *string `json:"personal_email,omitempty"`
	MobilePhone   *string `json:"mobile_phone,omitempty"`
}

type EmployeeListItem struct {
	Employee
	EmploymentInfo *EmploymentSummary `json:"employment_info,omitempty"`
	ContactInfo    *ContactSummary    `json:"contact_info,omitempty"`
}

type Stats struct {
	Total         int `json:"total"`
	Active        int `json:"active"`
	Terminated    int `json:"terminated"`
	Onboarding    int `json:"onboarding"`
	PreOnboarding int `json:"preOnboarding"`
}

type Department struct {
	ID          int64      `json:"id"`
	Name        string     `json:"name"`
	Code        string     `json:"code"`
	Description *string    `json:"description,omitempty"`
	IsActive    bool       `json:"is_active"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
}

type CreateEmployeeRequest struct {
	EmployeeID         string  `json:"employee_id,omitempty"`
	FullNameEnglish    string  `json:"full_name_english"`
	FullNameVietnamese string  `json:"full_name_vietnamese"`
	DisplayName        *string `json:"display_name,omitempty"`
	EmploymentStatus   string  `json:"employment_status,omitempty"`
	MaritalStatus      *string `json:"marital_status,omitempty"`
}

type UpdateEmployeeRequest struct {
	FullNameEnglish    *string `json:"full_name_english,omitempty"`
	FullNameVietnamese *string `json:"full_name_vietnamese,omitempty"`
	DisplayName        *string `json:"display_name,omitempty"`
	EmploymentStatus   *string `json:"employment_status,omitempty"`
	MaritalStatus      *string `json:"marital_status,omitempty"`
}

// Update payloads for the extension records carry dates as ISO strings, the
// same way the HTTP layer expects them.

type UpdatePersonalInfoRequest struct {
	Gender                  *string `json:"gender,omitempty"`
	DateOfBirth             *string `json:"date_of_birth,omitempty"`
	PlaceOfBirth            *string `json:"place_of_birth,omitempty"`
	Nationality             *string `json:"nationality,omitempty"`
	Ethnic                  *string `json:"ethnic,omitempty"`
	IdentityCardNumber      *string `json:"identity_card_number,omitempty"`
	IdentityCardIssuedDate  *string `json:"identity_card_issued_date,omitempty"`
	IdentityCardIssuedPlace *string `json:"identity_card_issued_place,omitempty"`
	PassportNumber          *string `json:"passport_number,omitempty"`
	PassportIssuedDate      *string `json:"passport_issued_date,omitempty"`
	PassportExpiredDate     *string `json:"passport_expired_date,omitempty"`
	PassportIssuedPlace     *string `json:"passport_issued_place,omitempty"`
	TaxCode                 *string `json:"tax_code,omitempty"`
	SocialInsuranceNumber   *string `json:"social_insurance_number,omitempty"`
	HealthInsuranceNumber   *string `json:"health_insurance_number,omitempty"`
	AcademicLevel           *string `json:"academic_level,omitempty"`
	Certificate             *string `json:"certificate,omitempty"`
}

type UpdateContactInfoRequest struct {
	MobilePhone      *string `json:"mobile_phone,omitempty"`
	PermanentAddress *string `json:"permanent_address,omitempty"`
	TemporaryAddress *string `json:"temporary_address,omitempty"`
	PersonalEmail    *string `json:"personal_email,omitempty"`
	CompanyEmail     *string `json:"company_email,omitempty"`
}

type UpdateEmploymentInfoRequest struct {
	DepartmentID       *int64  `json:"department_id,omitempty"`
	ManagerID          *string `json:"manager_id,omitempty"`
	PositionEnglish    *string `json:"position_english,omitempty"`
	PositionVietnamese *string `json:"position_vietnamese,omitempty"`
	Grade              *string `json:"grade,omitempty"`
	OnboardingDate     *string `json:"onboarding_date,omitempty"`
	LastWorkingDate    *string `json:"last_working_date,omitempty"`
	WorkingType        *string `json:"working_type,omitempty"`
}

type UpdateFinancialInfoRequest struct {
	BasicSalary       *float64 `json:"basic_salary,omitempty"`
	PositionAllowance *float64 `json:"position_allowance,omitempty"`
	MealAllowance     *float64 `json:"meal_allowance,omitempty"`
	TravelAllowance   *float64 `json:"travel_allowance,omitempty"`
	OtherAllowance    *float64 `json:"other_allowance,omitempty"`
	BankName          *string  `json:"bank_name,omitempty"`
	BankAccountNumber *string  `json:"bank_account_number,omitempty"`
	BankAccountHolder *string  `json:"bank_account_holder,omitempty"`
	Currency          *string  `json:"currency,omitempty"`
}

type Pagination struct {
	Page       int `json:"page"`
	PageSize   int `json:"pageSize"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

type EmployeePage struct {
	Items      []EmployeeListItem
	Pagination Pagination
}

type ListOptions struct {
	Search           string
	EmploymentStatus string
	DepartmentID     *int64
	SortBy           string
	SortOrder        string
	Page             int
	PageSize         int
}
