package employee

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
)

const personalColumns = `id, employee_id, gender, date_of_birth, place_of_birth, nationality, ethnic,
         identity_card_number, identity_card_issued_date, identity_card_issued_place,
         passport_number, passport_issued_date, passport_expired_date, passport_issued_place,
         tax_code, social_insurance_number, health_insurance_number, academic_level, certificate,
         created_at, updated_at`

const contactColumns = `id, employee_id, mobile_phone, permanent_address, temporary_address,
         personal_email, company_email, created_at, updated_at`

const employmentColumns = `id, employee_id, department_id, manager_id, position_english, position_vietnamese,
         grade, onboarding_date, last_working_date, working_type, created_at, updated_at`

const financialColumns = `id, employee_id, basic_salary, position_allowance, meal_allowance,
         travel_allowance, other_allowance, bank_name, bank_account_number, bank_account_holder,
         currency, created_at, updated_at`

// Extension reads return nil without error when no row exists; "not specified"
// is a valid state of the aggregate. Duplicated rows resolve to the lowest id.

func (s *Store) GetPersonalInfo(ctx context.Context, employeeID string) (*PersonalInfo, error) {
	defer s.observe("get_personal_info", time.Now())

	row := s.DB.QueryRow(ctx, `
    SELECT `+personalColumns+`
    FROM personal_info
    WHERE employee_id = $1
    ORDER BY id
    LIMIT 1
  `, employeeID)

	var info PersonalInfo
	if err := scanPersonalInfo(row, &info); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get personal info: %w", err)
	}
	return &info, nil
}

// UpsertPersonalInfo inserts or patches the singleton keyed by employee_id.
// Nil patch fields keep the stored value, so repeated sparse PUTs compose
// instead of clobbering each other.
func (s *Store) UpsertPersonalInfo(ctx context.Context, employeeID string, patch PersonalInfoPatch) (*PersonalInfo, error) {
	defer s.observe("upsert_personal_info", time.Now())

	row := s.DB.QueryRow(ctx, `
    INSERT INTO personal_info (employee_id, gender, date_of_birth, place_of_birth, nationality, ethnic,
      identity_card_number, identity_card_issued_date, identity_card_issued_place,
      passport_number, passport_issued_date, passport_expired_date, passport_issued_place,
      tax_code, social_insurance_number, health_insurance_number, academic_level, certificate)
    VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18)
    ON CONFLICT (employee_id) DO UPDATE SET
      gender = COALESCE(EXCLUDED.gender, personal_info.gender),
      date_of_birth = COALESCE(EXCLUDED.date_of_birth, personal_info.date_of_birth),
      place_of_birth = COALESCE(EXCLUDED.place_of_birth, personal_info.place_of_birth),
      nationality = COALESCE(EXCLUDED.nationality, personal_info.nationality),
      ethnic = COALESCE(EXCLUDED.ethnic, personal_info.ethnic),
      identity_card_number = COALESCE(EXCLUDED.identity_card_number, personal_info.identity_card_number),
      identity_card_issued_date = COALESCE(EXCLUDED.identity_card_issued_date, personal_info.identity_card_issued_date),
      identity_card_issued_place = COALESCE(EXCLUDED.identity_card_issued_place, personal_info.identity_card_issued_place),
      passport_number = COALESCE(EXCLUDED.passport_number, personal_info.passport_number),
      passport_issued_date = COALESCE(EXCLUDED.passport_issued_date, personal_info.passport_issued_date),
      passport_expired_date = COALESCE(EXCLUDED.passport_expired_date, personal_info.passport_expired_date),
      passport_issued_place = COALESCE(EXCLUDED.passport_issued_place, personal_info.passport_issued_place),
      tax_code = COALESCE(EXCLUDED.tax_code, personal_info.tax_code),
      social_insurance_number = COALESCE(EXCLUDED.social_insurance_number, personal_info.social_insurance_number),
      health_insurance_number = COALESCE(EXCLUDED.health_insurance_number, personal_info.health_insurance_number),
      academic_level = COALESCE(EXCLUDED.academic_level, personal_info.academic_level),
      certificate = COALESCE(EXCLUDED.certificate, personal_info.certificate),
      updated_at = now()
    RETURNING `+personalColumns+`
  `, employeeID, patch.Gender, patch.DateOfBirth, patch.PlaceOfBirth, patch.Nationality, patch.Ethnic,
		patch.IdentityCardNumber, patch.IdentityCardIssuedDate, patch.IdentityCardIssuedPlace,
		patch.PassportNumber, patch.PassportIssuedDate, patch.PassportExpiredDate, patch.PassportIssuedPlace,
		patch.TaxCode, patch.SocialInsuranceNumber, patch.HealthInsuranceNumber, patch.AcademicLevel, patch.Certificate)

	var info PersonalInfo
	if err := scanPersonalInfo(row, &info); err != nil {
		return nil, fmt.Errorf("failed to upsert personal info: %w", err)
	}
	return &info, nil
}

func (s *Store) GetContactInfo(ctx context.Context, employeeID string) (*ContactInfo, error) {
	defer s.observe("get_contact_info", time.Now())

	row := s.DB.QueryRow(ctx, `
    SELECT `+contactColumns+`
    FROM contact_info
    WHERE employee_id = $1
    ORDER BY id
    LIMIT 1
  `, employeeID)

	var info ContactInfo
	if err := scanContactInfo(row, &info); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get contact info: %w", err)
	}
	return &info, nil
}

func (s *Store) UpsertContactInfo(ctx context.Context, employeeID string, patch ContactInfoPatch) (*ContactInfo, error) {
	defer s.observe("upsert_contact_info", time.Now())

	row := s.DB.QueryRow(ctx, `
    INSERT INTO contact_info (employee_id, mobile_phone, permanent_address, temporary_address, personal_email, company_email)
    VALUES ($1,$2,$3,$4,$5,$6)
    ON CONFLICT (employee_id) DO UPDATE SET
      mobile_phone = COALESCE(EXCLUDED.mobile_phone, contact_info.mobile_phone),
      permanent_address = COALESCE(EXCLUDED.permanent_address, contact_info.permanent_address),
      temporary_address = COALESCE(EXCLUDED.temporary_address, contact_info.temporary_address),
      personal_email = COALESCE(EXCLUDED.personal_email, contact_info.personal_email),
      company_email = COALESCE(EXCLUDED.company_email, contact_info.company_email),
      updated_at = now()
    RETURNING `+contactColumns+`
  `, employeeID, patch.MobilePhone, patch.PermanentAddress, patch.TemporaryAddress, patch.PersonalEmail, patch.CompanyEmail)

	var info ContactInfo
	if err := scanContactInfo(row, &info); err != nil {
		return nil, fmt.Errorf("failed to upsert contact info: %w", err)
	}
	return &info, nil
}

func (s *Store) GetEmploymentInfo(ctx context.Context, employeeID string) (*EmploymentInfo, error) {
	defer s.observe("get_employment_info", time.Now())

	row := s.DB.QueryRow(ctx, `
    SELECT `+employmentColumns+`
    FROM employment_info
    WHERE employee_id = $1
    ORDER BY id
    LIMIT 1
  `, employeeID)

	var info EmploymentInfo
	if err := scanEmploymentInfo(row, &info); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get employment info: %w", err)
	}
	return &info, nil
}

func (s *Store) UpsertEmploymentInfo(ctx context.Context, employeeID string, patch EmploymentInfoPatch) (*EmploymentInfo, error) {
	defer s.observe("upsert_employment_info", time.Now())

	row := s.DB.QueryRow(ctx, `
    INSERT INTO employment_info (employee_id, department_id, manager_id, position_english, position_vietnamese,
      grade, onboarding_date, last_working_date, working_type)
    VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
    ON CONFLICT (employee_id) DO UPDATE SET
      department_id = COALESCE(EXCLUDED.department_id, employment_info.department_id),
      manager_id = COALESCE(EXCLUDED.manager_id, employment_info.manager_id),
      position_english = COALESCE(EXCLUDED.position_english, employment_info.position_english),
      position_vietnamese = COALESCE(EXCLUDED.position_vietnamese, employment_info.position_vietnamese),
      grade = COALESCE(EXCLUDED.grade, employment_info.grade),
      onboarding_date = COALESCE(EXCLUDED.onboarding_date, employment_info.onboarding_date),
      last_working_date = COALESCE(EXCLUDED.last_working_date, employment_info.last_working_date),
      working_type = COALESCE(EXCLUDED.working_type, employment_info.working_type),
      updated_at = now()
    RETURNING `+employmentColumns+`
  `, employeeID, patch.DepartmentID, patch.ManagerID, patch.PositionEnglish, patch.PositionVietnamese,
		patch.Grade, patch.OnboardingDate, patch.LastWorkingDate, patch.WorkingType)

	var info EmploymentInfo
	if err := scanEmploymentInfo(row, &info); err != nil {
		return nil, fmt.Errorf("failed to upsert employment info: %w", err)
	}
	return &info, nil
}

func (s *Store) GetFinancialInfo(ctx context.Context, employeeID string) (*FinancialInfo, error) {
	defer s.observe("get_financial_info", time.Now())

	row := s.DB.QueryRow(ctx, `
    SELECT `+financialColumns+`
    FROM financial_info
    WHERE employee_id = $1
    ORDER BY id
    LIMIT 1
  `, employeeID)

	var info FinancialInfo
	if err := scanFinancialInfo(row, &info); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get financial info: %w", err)
	}
	return &info, nil
}

func (s *Store) UpsertFinancialInfo(ctx context.Context, employeeID string, patch FinancialInfoPatch) (*FinancialInfo, error) {
	defer s.observe("upsert_financial_info", time.Now())

	row := s.DB.QueryRow(ctx, `
    INSERT INTO financial_info (employee_id, basic_salary, position_allowance, meal_allowance,
      travel_allowance, other_allowance, bank_name, bank_account_number, bank_account_holder, currency)
    VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
    ON CONFLICT (employee_id) DO UPDATE SET
      basic_salary = COALESCE(EXCLUDED.basic_salary, financial_info.basic_salary),
      position_allowance = COALESCE(EXCLUDED.position_allowance, financial_info.position_allowance),
      meal_allowance = COALESCE(EXCLUDED.meal_allowance, financial_info.meal_allowance),
      travel_allowance = COALESCE(EXCLUDED.travel_allowance, financial_info.travel_allowance),
      other_allowance = COALESCE(EXCLUDED.other_allowance, financial_info.other_allowance),
      bank_name = COALESCE(EXCLUDED.bank_name, financial_info.bank_name),
      bank_account_number = COALESCE(EXCLUDED.bank_account_number, financial_info.bank_account_number),
      bank_account_holder = COALESCE(EXCLUDED.bank_account_holder, financial_info.bank_account_holder),
      currency = COALESCE(EXCLUDED.currency, financial_info.currency),
      updated_at = now()
    RETURNING `+financialColumns+`
  `, employeeID, patch.BasicSalary, patch.PositionAllowance, patch.MealAllowance,
		patch.TravelAllowance, patch.OtherAllowance, patch.BankName, patch.BankAccountNumber,
		patch.BankAccountHolder, patch.Currency)

	var info FinancialInfo
	if err := scanFinancialInfo(row, &info); err != nil {
		return nil, fmt.Errorf("failed to upsert financial info: %w", err)
	}
	return &info, nil
}

func (s *Store) getEmploymentDetails(ctx context.Context, employeeID string) (*EmploymentDetails, error) {
	defer s.observe("get_employment_details", time.Now())

	row := s.DB.QueryRow(ctx, `
    SELECT ei.id, ei.employee_id, ei.department_id, ei.manager_id, ei.position_english, ei.position_vietnamese,
           ei.grade, ei.onboarding_date, ei.last_working_date, ei.working_type, ei.created_at, ei.updated_at,
           d.name, d.code, m.full_name_english
    FROM employment_info ei
    LEFT JOIN departments d ON d.id = ei.department_id
    LEFT JOIN employees m ON m.employee_id = ei.manager_id
    WHERE ei.employee_id = $1
    ORDER BY ei.id
    LIMIT 1
  `, employeeID)

	var details EmploymentDetails
	var depName, depCode, managerName *string
	err := row.Scan(
		&details.ID, &details.EmployeeID, &details.DepartmentID, &details.ManagerID,
		&details.PositionEnglish, &details.PositionVietnamese, &details.Grade,
		&details.OnboardingDate, &details.LastWorkingDate, &details.WorkingType,
		&details.CreatedAt, &details.UpdatedAt,
		&depName, &depCode, &managerName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get employment details: %w", err)
	}

	if details.DepartmentID != nil && depName != nil {
		details.Department = &DepartmentRef{ID: *details.DepartmentID, Name: *depName, Code: deref(depCode)}
	}
	if details.ManagerID != nil && managerName != nil {
		details.Manager = &ManagerRef{EmployeeID: *details.ManagerID, FullNameEnglish: *managerName}
	}
	return &details, nil
}

func scanPersonalInfo(row pgx.Row, info *PersonalInfo) error {
	return row.Scan(
		&info.ID, &info.EmployeeID, &info.Gender, &info.DateOfBirth, &info.PlaceOfBirth,
		&info.Nationality, &info.Ethnic,
		&info.IdentityCardNumber, &info.IdentityCardIssuedDate, &info.IdentityCardIssuedPlace,
		&info.PassportNumber, &info.PassportIssuedDate, &info.PassportExpiredDate, &info.PassportIssuedPlace,
		&info.TaxCode, &info.SocialInsuranceNumber, &info.HealthInsuranceNumber,
		&info.AcademicLevel, &info.Certificate,
		&info.CreatedAt, &info.UpdatedAt,
	)
}

func scanContactInfo(row pgx.Row, info *ContactInfo) error {
	return row.Scan(
		&info.ID, &info.EmployeeID, &info.MobilePhone, &info.PermanentAddress, &info.TemporaryAddress,
		&info.PersonalEmail, &info.CompanyEmail, &info.CreatedAt, &info.UpdatedAt,
	)
}

func scanEmploymentInfo(row pgx.Row, info *EmploymentInfo) error {
	return row.Scan(
		&info.ID, &info.EmployeeID, &info.DepartmentID, &info.ManagerID,
		&info.PositionEnglish, &info.PositionVietnamese, &info.Grade,
		&info.OnboardingDate, &info.LastWorkingDate, &info.WorkingType,
		&info.CreatedAt, &info.UpdatedAt,
	)
}

func scanFinancialInfo(row pgx.Row, info *FinancialInfo) error {
	return row.Scan(
		&info.ID, &info.EmployeeID, &info.BasicSalary, &info.PositionAllowance, &info.MealAllowance,
		&info.TravelAllowance, &info.OtherAllowance, &info.BankName, &info.BankAccountNumber,
		&info.BankAccountHolder, &info.Currency, &info.CreatedAt, &info.UpdatedAt,
	)
}
