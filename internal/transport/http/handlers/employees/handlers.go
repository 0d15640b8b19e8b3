package employeeshandler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"hrms/internal/domain/employee"
	"hrms/internal/transport/http/api"
	"hrms/internal/transport/http/shared"
)

type Handler struct {
	Service *employee.Service
}

func NewHandler(service *employee.Service) *Handler {
	return &Handler{Service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/employees", func(r chi.Router) {
		r.Get("/", h.handleList)
		r.Post("/", h.handleCreate)
		r.Get("/stats", h.handleStats)
		r.Route("/{employeeID}", func(r chi.Router) {
			r.Get("/", h.handleGet)
			r.Put("/", h.handleUpdate)
			r.Delete("/", h.handleDelete)
			r.Get("/personal", h.handleGetPersonal)
			r.Put("/personal", h.handlePutPersonal)
			r.Get("/contact", h.handleGetContact)
			r.Put("/contact", h.handlePutContact)
			r.Get("/employment", h.handleGetEmployment)
			r.Put("/employment", h.handlePutEmployment)
			r.Get("/financial", h.handleGetFinancial)
			r.Put("/financial", h.handlePutFinancial)
		})
	})
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	page := shared.ParsePagination(r)
	params := r.URL.Query()

	query := employee.ListQuery{
		Search:           params.Get("search"),
		EmploymentStatus: params.Get("employment_status"),
		SortBy:           params.Get("sortBy"),
		SortOrder:        params.Get("sortOrder"),
		Page:             page.Page,
		PageSize:         page.PageSize,
	}
	if raw := params.Get("department_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			shared.FailValidation(w, []shared.ValidationIssue{{Field: "department_id", Reason: "must be a numeric department id"}})
			return
		}
		query.DepartmentID = &id
	}

	result, err := h.Service.ListEmployees(r.Context(), query)
	if err != nil {
		h.fail(w, err)
		return
	}

	api.SuccessPage(w, result.Items, api.Pagination{
		Page:       result.Page,
		PageSize:   result.PageSize,
		Total:      result.Total,
		TotalPages: result.TotalPages,
	})
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var input employee.CreateEmployeeInput
	if !decodeJSON(w, r, &input) {
		return
	}

	v := shared.NewValidator()
	v.Required("full_name_english", input.FullNameEnglish, "is required")
	v.Length("full_name_english", input.FullNameEnglish, 2, 150)
	v.Required("full_name_vietnamese", input.FullNameVietnamese, "is required")
	v.Length("full_name_vietnamese", input.FullNameVietnamese, 2, 150)
	if input.DisplayName != nil {
		v.Length("display_name", *input.DisplayName, 2, 100)
	}
	if input.EmployeeID != "" {
		v.Length("employee_id", input.EmployeeID, 3, 50)
	}
	v.Enum("employment_status", input.EmploymentStatus, employee.EmploymentStatuses, "must be one of "+strings.Join(employee.EmploymentStatuses, ", "))
	if input.MaritalStatus != nil {
		v.Enum("marital_status", *input.MaritalStatus, employee.MaritalStatuses, "must be one of "+strings.Join(employee.MaritalStatuses, ", "))
	}
	if v.Reject(w) {
		return
	}

	created, err := h.Service.CreateEmployee(r.Context(), input)
	if err != nil {
		h.fail(w, err)
		return
	}
	api.Created(w, created)
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	details, err := h.Service.GetEmployee(r.Context(), chi.URLParam(r, "employeeID"))
	if err != nil {
		h.fail(w, err)
		return
	}
	api.Success(w, details)
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	// Identity and system fields (employee_id, number, created_at,
	// updated_at) have no place in the patch type, so client-supplied values
	// are dropped during decoding.
	var patch employee.UpdateEmployeePatch
	if !decodeJSON(w, r, &patch) {
		return
	}

	v := shared.NewValidator()
	if patch.FullNameEnglish != nil {
		v.Required("full_name_english", *patch.FullNameEnglish, "must not be empty")
		v.Length("full_name_english", *patch.FullNameEnglish, 2, 150)
	}
	if patch.FullNameVietnamese != nil {
		v.Required("full_name_vietnamese", *patch.FullNameVietnamese, "must not be empty")
		v.Length("full_name_vietnamese", *patch.FullNameVietnamese, 2, 150)
	}
	if patch.DisplayName != nil {
		v.Length("display_name", *patch.DisplayName, 2, 100)
	}
	if patch.EmploymentStatus != nil {
		v.Enum("employment_status", *patch.EmploymentStatus, employee.EmploymentStatuses, "must be one of "+strings.Join(employee.EmploymentStatuses, ", "))
	}
	if patch.MaritalStatus != nil {
		v.Enum("marital_status", *patch.MaritalStatus, employee.MaritalStatuses, "must be one of "+strings.Join(employee.MaritalStatuses, ", "))
	}
	if v.Reject(w) {
		return
	}

	updated, err := h.Service.UpdateEmployee(r.Context(), chi.URLParam(r, "employeeID"), patch)
	if err != nil {
		h.fail(w, err)
		return
	}
	api.Success(w, updated)
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	terminated, err := h.Service.SoftDeleteEmployee(r.Context(), chi.URLParam(r, "employeeID"))
	if err != nil {
		h.fail(w, err)
		return
	}
	api.SuccessWithMessage(w, terminated, "Employee terminated")
}

func (h *Handler) handleStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Service.EmployeeStats(r.Context())
	if err != nil {
		h.fail(w, err)
		return
	}
	api.Success(w, stats)
}

func (h *Handler) handleGetPersonal(w http.ResponseWriter, r *http.Request) {
	info, err := h.Service.GetPersonalInfo(r.Context(), chi.URLParam(r, "employeeID"))
	if err != nil {
		h.fail(w, err)
		return
	}
	api.Success(w, info)
}

type personalInfoRequest struct {
	Gender                  *string `json:"gender"`
	DateOfBirth             *string `json:"date_of_birth"`
	PlaceOfBirth            *string `json:"place_of_birth"`
	Nationality             *string `json:"nationality"`
	Ethnic                  *string `json:"ethnic"`
	IdentityCardNumber      *string `json:"identity_card_number"`
	IdentityCardIssuedDate  *string `json:"identity_card_issued_date"`
	IdentityCardIssuedPlace *string `json:"identity_card_issued_place"`
	PassportNumber          *string `json:"passport_number"`
	PassportIssuedDate      *string `json:"passport_issued_date"`
	PassportExpiredDate     *string `json:"passport_expired_date"`
	PassportIssuedPlace     *string `json:"passport_issued_place"`
	TaxCode                 *string `json:"tax_code"`
	SocialInsuranceNumber   *string `json:"social_insurance_number"`
	HealthInsuranceNumber   *string `json:"health_insurance_number"`
	AcademicLevel           *string `json:"academic_level"`
	Certificate             *string `json:"certificate"`
}

func (h *Handler) handlePutPersonal(w http.ResponseWriter, r *http.Request) {
	var req personalInfoRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	v := shared.NewValidator()
	patch := employee.PersonalInfoPatch{
		PlaceOfBirth:            req.PlaceOfBirth,
		Nationality:             req.Nationality,
		Ethnic:                  req.Ethnic,
		IdentityCardNumber:      req.IdentityCardNumber,
		IdentityCardIssuedPlace: req.IdentityCardIssuedPlace,
		PassportNumber:          req.PassportNumber,
		PassportIssuedPlace:     req.PassportIssuedPlace,
		TaxCode:                 req.TaxCode,
		SocialInsuranceNumber:   req.SocialInsuranceNumber,
		HealthInsuranceNumber:   req.HealthInsuranceNumber,
		AcademicLevel:           req.AcademicLevel,
		Certificate:             req.Certificate,
	}

	if req.Gender != nil {
		v.Enum("gender", *req.Gender, employee.Genders, "must be one of "+strings.Join(employee.Genders, ", "))
		patch.Gender = req.Gender
	}
	patch.DateOfBirth = parseOptionalDate(v, "date_of_birth", req.DateOfBirth)
	patch.IdentityCardIssuedDate = parseOptionalDate(v, "identity_card_issued_date", req.IdentityCardIssuedDate)
	patch.PassportIssuedDate = parseOptionalDate(v, "passport_issued_date", req.PassportIssuedDate)
	patch.PassportExpiredDate = parseOptionalDate(v, "passport_expired_date", req.PassportExpiredDate)

	maxLen(v, "place_of_birth", req.PlaceOfBirth, 200)
	maxLen(v, "nationality", req.Nationality, 50)
	maxLen(v, "ethnic", req.Ethnic, 50)
	maxLen(v, "identity_card_number", req.IdentityCardNumber, 20)
	maxLen(v, "identity_card_issued_place", req.IdentityCardIssuedPlace, 200)
	maxLen(v, "passport_number", req.PassportNumber, 20)
	maxLen(v, "passport_issued_place", req.PassportIssuedPlace, 200)
	maxLen(v, "tax_code", req.TaxCode, 20)
	maxLen(v, "social_insurance_number", req.SocialInsuranceNumber, 20)
	maxLen(v, "health_insurance_number", req.HealthInsuranceNumber, 20)
	maxLen(v, "academic_level", req.AcademicLevel, 100)
	if v.Reject(w) {
		return
	}

	info, err := h.Service.UpsertPersonalInfo(r.Context(), chi.URLParam(r, "employeeID"), patch)
	if err != nil {
		h.fail(w, err)
		return
	}
	api.SuccessWithMessage(w, info, "Personal information updated successfully")
}

func (h *Handler) handleGetContact(w http.ResponseWriter, r *http.Request) {
	info, err := h.Service.GetContactInfo(r.Context(), chi.URLParam(r, "employeeID"))
	if err != nil {
		h.fail(w, err)
		return
	}
	api.Success(w, info)
}

type contactInfoRequest struct {
	MobilePhone      *string `json:"mobile_phone"`
	PermanentAddress *string `json:"permanent_address"`
	TemporaryAddress *string `json:"temporary_address"`
	PersonalEmail    *string `json:"personal_email"`
	CompanyEmail     *string `json:"company_email"`
}

func (h *Handler) handlePutContact(w http.ResponseWriter, r *http.Request) {
	var req contactInfoRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	v := shared.NewValidator()
	maxLen(v, "mobile_phone", req.MobilePhone, 20)
	if req.PersonalEmail != nil {
		v.Email("personal_email", *req.PersonalEmail, 100)
	}
	if req.CompanyEmail != nil {
		v.Email("company_email", *req.CompanyEmail, 100)
	}
	if v.Reject(w) {
		return
	}

	patch := employee.ContactInfoPatch{
		MobilePhone:      req.MobilePhone,
		PermanentAddress: req.PermanentAddress,
		TemporaryAddress: req.TemporaryAddress,
		PersonalEmail:    req.PersonalEmail,
		CompanyEmail:     req.CompanyEmail,
	}
	info, err := h.Service.UpsertContactInfo(r.Context(), chi.URLParam(r, "employeeID"), patch)
	if err != nil {
		h.fail(w, err)
		return
	}
	api.SuccessWithMessage(w, info, "Contact information updated successfully")
}

func (h *Handler) handleGetEmployment(w http.ResponseWriter, r *http.Request) {
	info, err := h.Service.GetEmploymentInfo(r.Context(), chi.URLParam(r, "employeeID"))
	if err != nil {
		h.fail(w, err)
		return
	}
	api.Success(w, info)
}

var workingTypes = []string{"Full-time", "Part-time", "Contract", "Intern"}

type employmentInfoRequest struct {
	DepartmentID       *int64  `json:"department_id"`
	ManagerID          *string `json:"manager_id"`
	PositionEnglish    *string `json:"position_english"`
	PositionVietnamese *string `json:"position_vietnamese"`
	Grade              *string `json:"grade"`
	OnboardingDate     *string `json:"onboarding_date"`
	LastWorkingDate    *string `json:"last_working_date"`
	WorkingType        *string `json:"working_type"`
}

func (h *Handler) handlePutEmployment(w http.ResponseWriter, r *http.Request) {
	var req employmentInfoRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	v := shared.NewValidator()
	maxLen(v, "position_english", req.PositionEnglish, 100)
	maxLen(v, "position_vietnamese", req.PositionVietnamese, 100)
	maxLen(v, "grade", req.Grade, 20)
	if req.WorkingType != nil {
		v.Enum("working_type", *req.WorkingType, workingTypes, "must be one of "+strings.Join(workingTypes, ", "))
	}
	patch := employee.EmploymentInfoPatch{
		DepartmentID:       req.DepartmentID,
		ManagerID:          req.ManagerID,
		PositionEnglish:    req.PositionEnglish,
		PositionVietnamese: req.PositionVietnamese,
		Grade:              req.Grade,
		WorkingType:        req.WorkingType,
	}
	patch.OnboardingDate = parseOptionalDate(v, "onboarding_date", req.OnboardingDate)
	patch.LastWorkingDate = parseOptionalDate(v, "last_working_date", req.LastWorkingDate)
	if v.Reject(w) {
		return
	}

	info, err := h.Service.UpsertEmploymentInfo(r.Context(), chi.URLParam(r, "employeeID"), patch)
	if err != nil {
		h.fail(w, err)
		return
	}
	api.SuccessWithMessage(w, info, "Employment information updated successfully")
}

func (h *Handler) handleGetFinancial(w http.ResponseWriter, r *http.Request) {
	info, err := h.Service.GetFinancialInfo(r.Context(), chi.URLParam(r, "employeeID"))
	if err != nil {
		h.fail(w, err)
		return
	}
	api.Success(w, info)
}

type financialInfoRequest struct {
	BasicSalary       *float64 `json:"basic_salary"`
	PositionAllowance *float64 `json:"position_allowance"`
	MealAllowance     *float64 `json:"meal_allowance"`
	TravelAllowance   *float64 `json:"travel_allowance"`
	OtherAllowance    *float64 `json:"other_allowance"`
	BankName          *string  `json:"bank_name"`
	BankAccountNumber *string  `json:"bank_account_number"`
	BankAccountHolder *string  `json:"bank_account_holder"`
	Currency          *string  `json:"currency"`
}

func (h *Handler) handlePutFinancial(w http.ResponseWriter, r *http.Request) {
	var req financialInfoRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	v := shared.NewValidator()
	nonNegative(v, "basic_salary", req.BasicSalary)
	nonNegative(v, "position_allowance", req.PositionAllowance)
	nonNegative(v, "meal_allowance", req.MealAllowance)
	nonNegative(v, "travel_allowance", req.TravelAllowance)
	nonNegative(v, "other_allowance", req.OtherAllowance)
	maxLen(v, "bank_name", req.BankName, 100)
	maxLen(v, "bank_account_number", req.BankAccountNumber, 20)
	maxLen(v, "bank_account_holder", req.BankAccountHolder, 150)
	maxLen(v, "currency", req.Currency, 3)
	if v.Reject(w) {
		return
	}

	patch := employee.FinancialInfoPatch{
		BasicSalary:       req.BasicSalary,
		PositionAllowance: req.PositionAllowance,
		MealAllowance:     req.MealAllowance,
		TravelAllowance:   req.TravelAllowance,
		OtherAllowance:    req.OtherAllowance,
		BankName:          req.BankName,
		BankAccountNumber: req.BankAccountNumber,
		BankAccountHolder: req.BankAccountHolder,
		Currency:          req.Currency,
	}
	info, err := h.Service.UpsertFinancialInfo(r.Context(), chi.URLParam(r, "employeeID"), patch)
	if err != nil {
		h.fail(w, err)
		return
	}
	api.SuccessWithMessage(w, info, "Financial information updated successfully")
}

func (h *Handler) fail(w http.ResponseWriter, err error) {
	if errors.Is(err, employee.ErrEmployeeNotFound) {
		api.Fail(w, http.StatusNotFound, api.CodeNotFound, "Employee not found")
		return
	}
	slog.Error("storage failure", "err", err)
	api.Fail(w, http.StatusInternalServerError, api.CodeDatabase, err.Error())
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		shared.FailValidation(w, []shared.ValidationIssue{{Field: "body", Reason: "must be a valid JSON document"}})
		return false
	}
	return true
}

func parseOptionalDate(v *shared.Validator, field string, raw *string) *time.Time {
	if raw == nil || *raw == "" {
		return nil
	}
	parsed, ok := v.Date(field, *raw)
	if !ok {
		return nil
	}
	return &parsed
}

func maxLen(v *shared.Validator, field string, value *string, max int) {
	if value == nil {
		return
	}
	v.MaxLength(field, *value, max)
}

func nonNegative(v *shared.Validator, field string, value *float64) {
	if value != nil && *value < 0 {
		v.Add(field, "must not be negative")
	}
}
