package employee

import "time"

const (
	StatusActive        = "Active"
	StatusTerminated    = "Terminated"
	StatusPreOnboarding = "Pre-onboarding"
	StatusOnboarding    = "Onboarding"
)

var EmploymentStatuses = []string{StatusActive, StatusTerminated, StatusPreOnboarding, StatusOnboarding}

var MaritalStatuses = []string{"Single", "Married", "Divorced", "Widowed"}

var Genders = []string{"Male", "Female", "Other"}

// Employee is the root row of the aggregate. Number is assigned by the
// database sequence and never changes; EmployeeID is the stable external
// identifier.
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
	ID                      int64      `json:"id"`
	EmployeeID              string     `json:"employee_id"`
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
	CreatedAt               time.Time  `json:"created_at"`
	UpdatedAt               time.Time  `json:"updated_at"`
}

type ContactInfo struct {
	ID               int64     `json:"id"`
	EmployeeID       string    `json:"employee_id"`
	MobilePhone      *string   `json:"mobile_phone,omitempty"`
	PermanentAddress *string   `json:"permanent_address,omitempty"`
	TemporaryAddress *string   `json:"temporary_address,omitempty"`
	PersonalEmail    *string   `json:"personal_email,omitempty"`
	CompanyEmail     *string   `json:"company_email,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

type EmploymentInfo struct {
	ID                 int64      `json:"id"`
	EmployeeID         string     `json:"employee_id"`
	DepartmentID       *int64     `json:"department_id,omitempty"`
	ManagerID          *string    `json:"manager_id,omitempty"`
	PositionEnglish    *string    `json:"position_english,omitempty"`
	PositionVietnamese *string    `json:"position_vietnamese,omitempty"`
	Grade              *string    `json:"grade,omitempty"`
	OnboardingDate     *time.Time `json:"onboarding_date,omitempty"`
	LastWorkingDate    *time.Time `json:"last_working_date,omitempty"`
	WorkingType        *string    `json:"working_type,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}

type FinancialInfo struct {
	ID                int64     `json:"id"`
	EmployeeID        string    `json:"employee_id"`
	BasicSalary       *float64  `json:"basic_salary,omitempty"`
	PositionAllowance *float64  `json:"position_allowance,omitempty"`
	MealAllowance     *float64  `json:"meal_allowance,omitempty"`
	TravelAllowance   *float64  `json:"travel_allowance,omitempty"`
	OtherAllowance    *float64  `json:"other_allowance,omitempty"`
	BankName          *string   `json:"bank_name,omitempty"`
	BankAccountNumber *string   `json:"bank_account_number,omitempty"`
	BankAccountHolder *string   `json:"bank_account_holder,omitempty"`
	Currency          *string   `json:"currency,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// DepartmentRef is the reduced department projection joined into employee
// reads.
type DepartmentRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Code string `json:"code"`
}

// ManagerRef identifies the managing employee by id and English name only.
type ManagerRef struct {
	EmployeeID      string `json:"employee_id"`
	FullNameEnglish string `json:"full_name_english"`
}

// EmploymentDetails is EmploymentInfo enriched with its department and manager
// references for the composite view.
type EmploymentDetails struct {
	EmploymentInfo
	Department *DepartmentRef `json:"departments,omitempty"`
	Manager    *ManagerRef    `json:"manager,omitempty"`
}

// EmployeeDetails is the full aggregate: the employee row plus each optional
// extension singleton. Absent extensions are nil, never an error.
type EmployeeDetails struct {
	Employee
	PersonalInfo   *PersonalInfo      `json:"personal_info,omitempty"`
	ContactInfo    *ContactInfo       `json:"contact_info,omitempty"`
	EmploymentInfo *EmploymentDetails `json:"employment_info,omitempty"`
	FinancialInfo  *FinancialInfo     `json:"financial_info,omitempty"`
}

// EmploymentSummary is the reduced employment projection used by list rows.
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

type ListQuery struct {
	Search           string
	EmploymentStatus string
	DepartmentID     *int64
	SortBy           string
	SortOrder        string
	Page             int
	PageSize         int
}

type ListResult struct {
	Items      []EmployeeListItem
	Total      int
	Page       int
	PageSize   int
	TotalPages int
}

type Stats struct {
	Total         int `json:"total"`
	Active        int `json:"active"`
	Terminated    int `json:"terminated"`
	Onboarding    int `json:"onboarding"`
	PreOnboarding int `json:"preOnboarding"`
}

// CreateEmployeeInput carries the caller-writable fields of a new employee.
// Number and timestamps are system-assigned.
type CreateEmployeeInput struct {
	EmployeeID         string  `json:"employee_id"`
	FullNameEnglish    string  `json:"full_name_english"`
	FullNameVietnamese string  `json:"full_name_vietnamese"`
	DisplayName        *string `json:"display_name"`
	EmploymentStatus   string  `json:"employment_status"`
	MaritalStatus      *string `json:"marital_status"`
}

// UpdateEmployeePatch is a sparse patch: nil fields keep their stored value.
// Identity and system fields are not representable here, which is what strips
// them from client input.
type UpdateEmployeePatch struct {
	FullNameEnglish    *string `json:"full_name_english"`
	FullNameVietnamese *string `json:"full_name_vietnamese"`
	DisplayName        *string `json:"display_name"`
	EmploymentStatus   *string `json:"employment_status"`
	MaritalStatus      *string `json:"marital_status"`
}

// Extension patches are assembled by the HTTP layer after validation; dates
// arrive as ISO strings on the wire and are parsed before they get here. A nil
// field keeps whatever the row already holds (partial-field upsert).
type PersonalInfoPatch struct {
	Gender                  *string
	DateOfBirth             *time.Time
	PlaceOfBirth            *string
	Nationality             *string
	Ethnic                  *string
	IdentityCardNumber      *string
	IdentityCardIssuedDate  *time.Time
	IdentityCardIssuedPlace *string
	PassportNumber          *string
	PassportIssuedDate      *time.Time
	PassportExpiredDate     *time.Time
	PassportIssuedPlace     *string
	TaxCode                 *string
	SocialInsuranceNumber   *string
	HealthInsuranceNumber   *string
	AcademicLevel           *string
	Certificate             *string
}

type ContactInfoPatch struct {
	MobilePhone      *string
	PermanentAddress *string
	TemporaryAddress *string
	PersonalEmail    *string
	CompanyEmail     *string
}

type EmploymentInfoPatch struct {
	DepartmentID       *int64
	ManagerID          *string
	PositionEnglish    *string
	PositionVietnamese *string
	Grade              *string
	OnboardingDate     *time.Time
	LastWorkingDate    *time.Time
	WorkingType        *string
}

type FinancialInfoPatch struct {
	BasicSalary       *float64
	PositionAllowance *float64
	MealAllowance     *float64
	TravelAllowance   *float64
	OtherAllowance    *float64
	BankName          *string
	BankAccountNumber *string
	BankAccountHolder *string
	Currency          *string
}

func ValidEmploymentStatus(status string) bool {
	for _, candidate := range EmploymentStatuses {
		if status == candidate {
			return true
		}
	}
	return false
}
