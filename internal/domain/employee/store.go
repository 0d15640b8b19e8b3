package employee

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"hrms/internal/platform/db"
	"hrms/internal/platform/metrics"
)

const employeeColumns = `employee_id, number, full_name_english, full_name_vietnamese,
         display_name, employment_status, marital_status, created_at, updated_at`

var sortColumns = map[string]string{
	"employee_id":          "employee_id",
	"number":               "number",
	"full_name_english":    "full_name_english",
	"full_name_vietnamese": "full_name_vietnamese",
	"employment_status":    "employment_status",
	"created_at":           "created_at",
	"updated_at":           "updated_at",
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

// GetEmployee loads the composite aggregate: the employee row plus each
// extension singleton (first row wins when duplicates exist) and, inside the
// employment record, the department and manager references.
func (s *Store) GetEmployee(ctx context.Context, employeeID string) (*EmployeeDetails, error) {
	defer s.observe("get_employee", time.Now())

	row := s.DB.QueryRow(ctx, `
    SELECT `+employeeColumns+`
    FROM employees
    WHERE employee_id = $1
  `, employeeID)

	var details EmployeeDetails
	if err := scanEmployee(row, &details.Employee); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("failed to get employee: %w", err)
	}

	personal, err := s.GetPersonalInfo(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	details.PersonalInfo = personal

	contact, err := s.GetContactInfo(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	details.ContactInfo = contact

	employment, err := s.getEmploymentDetails(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	details.EmploymentInfo = employment

	financial, err := s.GetFinancialInfo(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	details.FinancialInfo = financial

	return &details, nil
}

// ListEmployees returns one page of the roster with the reduced employment and
// contact projections. A page with no matches is an empty result, not an
// error.
func (s *Store) ListEmployees(ctx context.Context, query ListQuery) (*ListResult, error) {
	defer s.observe("list_employees", time.Now())

	where, args := buildListFilters(query)

	sortColumn, ok := sortColumns[query.SortBy]
	if !ok {
		sortColumn = "created_at"
	}
	direction := "DESC"
	if strings.EqualFold(query.SortOrder, "asc") {
		direction = "ASC"
	}

	limitArg := len(args) + 1
	offsetArg := len(args) + 2
	args = append(args, query.PageSize, query.Page*query.PageSize)

	sql := `
    SELECT e.employee_id, e.number, e.full_name_english, e.full_name_vietnamese,
           e.display_name, e.employment_status, e.marital_status, e.created_at, e.updated_at,
           ei.position_english, ei.position_vietnamese, ei.onboarding_date,
           d.id, d.name, d.code,
           ci.company_email, ci.personal_email, ci.mobile_phone,
           COUNT(*) OVER () AS total
    FROM employees e
    LEFT JOIN LATERAL (
      SELECT * FROM employment_info WHERE employee_id = e.employee_id ORDER BY id LIMIT 1
    ) ei ON true
    LEFT JOIN departments d ON d.id = ei.department_id
    LEFT JOIN LATERAL (
      SELECT * FROM contact_info WHERE employee_id = e.employee_id ORDER BY id LIMIT 1
    ) ci ON true
    ` + where + `
    ORDER BY e.` + sortColumn + ` ` + direction + `
    LIMIT $` + fmt.Sprint(limitArg) + ` OFFSET $` + fmt.Sprint(offsetArg)

	rows, err := s.DB.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	result := ListResult{
		Items:    make([]EmployeeListItem, 0, query.PageSize),
		Page:     query.Page,
		PageSize: query.PageSize,
	}
	for rows.Next() {
		var item EmployeeListItem
		var positionEnglish, positionVietnamese *string
		var onboardingDate *time.Time
		var depID *int64
		var depName, depCode *string
		var companyEmail, personalEmail, mobilePhone *string
		if err := rows.Scan(
			&item.EmployeeID, &item.Number, &item.FullNameEnglish, &item.FullNameVietnamese,
			&item.DisplayName, &item.EmploymentStatus, &item.MaritalStatus, &item.CreatedAt, &item.UpdatedAt,
			&positionEnglish, &positionVietnamese, &onboardingDate,
			&depID, &depName, &depCode,
			&companyEmail, &personalEmail, &mobilePhone,
			&result.Total,
		); err != nil {
			return nil, fmt.Errorf("failed to scan employee row: %w", err)
		}

		if positionEnglish != nil || positionVietnamese != nil || onboardingDate != nil || depID != nil {
			summary := EmploymentSummary{
				PositionEnglish:    positionEnglish,
				PositionVietnamese: positionVietnamese,
				OnboardingDate:     onboardingDate,
			}
			if depID != nil {
				summary.Department = &DepartmentRef{ID: *depID, Name: deref(depName), Code: deref(depCode)}
			}
			item.EmploymentInfo = &summary
		}
		if companyEmail != nil || personalEmail != nil || mobilePhone != nil {
			item.ContactInfo = &ContactSummary{
				CompanyEmail:  companyEmail,
				PersonalEmail: personalEmail,
				MobilePhone:   mobilePhone,
			}
		}
		result.Items = append(result.Items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read employee rows: %w", err)
	}

	if query.PageSize > 0 {
		result.TotalPages = (result.Total + query.PageSize - 1) / query.PageSize
	}
	return &result, nil
}

func buildListFilters(query ListQuery) (string, []any) {
	var clauses []string
	var args []any

	if query.Search != "" {
		pattern := "%" + query.Search + "%"
		args = append(args, pattern)
		n := fmt.Sprint(len(args))
		clauses = append(clauses, "(e.full_name_english ILIKE $"+n+
			" OR e.full_name_vietnamese ILIKE $"+n+
			" OR e.employee_id ILIKE $"+n+")")
	}
	if query.EmploymentStatus != "" {
		args = append(args, query.EmploymentStatus)
		clauses = append(clauses, "e.employment_status = $"+fmt.Sprint(len(args)))
	}
	if query.DepartmentID != nil {
		args = append(args, *query.DepartmentID)
		clauses = append(clauses, "ei.department_id = $"+fmt.Sprint(len(args)))
	}

	if len(clauses) == 0 {
		return "", args
	}
	return "WHERE " + strings.Join(clauses, " AND "), args
}

// CreateEmployee inserts a new employee and returns the stored row, including
// the sequence-assigned number and timestamps.
func (s *Store) CreateEmployee(ctx context.Context, input CreateEmployeeInput) (*Employee, error) {
	defer s.observe("create_employee", time.Now())

	row := s.DB.QueryRow(ctx, `
    INSERT INTO employees (employee_id, full_name_english, full_name_vietnamese, display_name, employment_status, marital_status)
    VALUES ($1, $2, $3, $4, $5, $6)
    RETURNING `+employeeColumns+`
  `, input.EmployeeID, input.FullNameEnglish, input.FullNameVietnamese, input.DisplayName, input.EmploymentStatus, input.MaritalStatus)

	var emp Employee
	if err := scanEmployee(row, &emp); err != nil {
		return nil, fmt.Errorf("failed to create employee: %w", err)
	}
	return &emp, nil
}

// UpdateEmployee applies a sparse patch; nil fields keep their stored value
// and updated_at is always refreshed.
func (s *Store) UpdateEmployee(ctx context.Context, employeeID string, patch UpdateEmployeePatch) (*Employee, error) {
	defer s.observe("update_employee", time.Now())

	row := s.DB.QueryRow(ctx, `
    UPDATE employees
    SET full_name_english = COALESCE($2, full_name_english),
        full_name_vietnamese = COALESCE($3, full_name_vietnamese),
        display_name = COALESCE($4, display_name),
        employment_status = COALESCE($5, employment_status),
        marital_status = COALESCE($6, marital_status),
        updated_at = now()
    WHERE employee_id = $1
    RETURNING `+employeeColumns+`
  `, employeeID, patch.FullNameEnglish, patch.FullNameVietnamese, patch.DisplayName, patch.EmploymentStatus, patch.MaritalStatus)

	var emp Employee
	if err := scanEmployee(row, &emp); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("failed to update employee: %w", err)
	}
	return &emp, nil
}

// SoftDeleteEmployee is the only delete path: a forced transition to
// Terminated. The row and its extension records stay in place.
func (s *Store) SoftDeleteEmployee(ctx context.Context, employeeID string) (*Employee, error) {
	defer s.observe("soft_delete_employee", time.Now())

	row := s.DB.QueryRow(ctx, `
    UPDATE employees
    SET employment_status = 'Terminated',
        updated_at = now()
    WHERE employee_id = $1
    RETURNING `+employeeColumns+`
  `, employeeID)

	var emp Employee
	if err := scanEmployee(row, &emp); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("failed to terminate employee: %w", err)
	}
	return &emp, nil
}

func (s *Store) EmployeeStats(ctx context.Context) (*Stats, error) {
	defer s.observe("employee_stats", time.Now())

	rows, err := s.DB.Query(ctx, `
    SELECT employment_status, COUNT(*)
    FROM employees
    GROUP BY employment_status
  `)
	if err != nil {
		return nil, fmt.Errorf("failed to count employees: %w", err)
	}
	defer rows.Close()

	var stats Stats
	for rows.Next() {
		var status string
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("failed to scan stats row: %w", err)
		}
		stats.Total += count
		switch status {
		case StatusActive:
			stats.Active = count
		case StatusTerminated:
			stats.Terminated = count
		case StatusOnboarding:
			stats.Onboarding = count
		case StatusPreOnboarding:
			stats.PreOnboarding = count
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read stats rows: %w", err)
	}
	return &stats, nil
}

func scanEmployee(row pgx.Row, emp *Employee) error {
	return row.Scan(
		&emp.EmployeeID, &emp.Number, &emp.FullNameEnglish, &emp.FullNameVietnamese,
		&emp.DisplayName, &emp.EmploymentStatus, &emp.MaritalStatus, &emp.CreatedAt, &emp.UpdatedAt,
	)
}

func deref(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}
