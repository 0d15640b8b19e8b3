// Package client is a typed facade over the HRMS HTTP API with an explicit
// read cache. Construct it with New, hand it a Cache, and every read goes
// through the cache while every write invalidates the entries it affects.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// APIError is a non-2xx response decoded from the server's envelope.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d (%s): %s", e.StatusCode, e.Code, e.Message)
}

// Notifier receives mutation failures, typically to surface them in a UI.
type Notifier interface {
	NotifyError(ctx context.Context, operation string, err error)
}

type noopNotifier struct{}

func (noopNotifier) NotifyError(context.Context, string, error) {}

type Client struct {
	baseURL  string
	http     *http.Client
	token    string
	cache    *Cache
	notifier Notifier
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

func WithToken(token string) Option {
	return func(c *Client) { c.token = token }
}

func WithCache(cache *Cache) Option {
	return func(c *Client) { c.cache = cache }
}

func WithNotifier(n Notifier) Option {
	return func(c *Client) { c.notifier = n }
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:  baseURL,
		http:     &http.Client{Timeout: 30 * time.Second},
		cache:    NewCache(),
		notifier: noopNotifier{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetToken replaces the bearer token used for subsequent requests.
func (c *Client) SetToken(token string) {
	c.token = token
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
	Message  string `json:"message"`
	Metadata *struct {
		Pagination *Pagination `json:"pagination"`
	} `json:"metadata"`
}

// do issues one request. Reads (GET) retry once on transport failure; writes
// never retry because the first attempt may have reached the server.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any) (*envelope, error) {
	var payload []byte
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
		payload = encoded
	}

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	attempts := 1
	if method == http.MethodGet {
		attempts = 2
	}

	var lastErr error
	for attempt := 0; attempt < attempts; attempt++ {
		req, err := http.NewRequestWithContext(ctx, method, u, bytes.NewReader(payload))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Content-Type", "application/json")
		if c.token != "" {
			req.Header.Set("Authorization", "Bearer "+c.token)
		}

		resp, err := c.http.Do(req)
		if err != nil {
			lastErr = err
			continue
		}

		env, err := decodeEnvelope(resp)
		resp.Body.Close()
		return env, err
	}
	return nil, fmt.Errorf("request failed: %w", lastErr)
}

func decodeEnvelope(resp *http.Response) (*envelope, error) {
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("decode response (status %d): %w", resp.StatusCode, err)
	}

	if !env.Success {
		apiErr := &APIError{StatusCode: resp.StatusCode, Code: "INTERNAL_ERROR", Message: "unknown error"}
		if env.Error != nil {
			apiErr.Code = env.Error.Code
			apiErr.Message = env.Error.Message
		}
		return nil, apiErr
	}
	return &env, nil
}

func decodeData[T any](env *envelope) (T, error) {
	var out T
	if len(env.Data) == 0 || string(env.Data) == "null" {
		return out, nil
	}
	if err := json.Unmarshal(env.Data, &out); err != nil {
		return out, fmt.Errorf("decode data: %w", err)
	}
	return out, nil
}

func (opts ListOptions) values() url.Values {
	query := url.Values{}
	if opts.Search != "" {
		query.Set("search", opts.Search)
	}
	if opts.EmploymentStatus != "" {
		query.Set("employment_status", opts.EmploymentStatus)
	}
	if opts.DepartmentID != nil {
		query.Set("department_id", strconv.FormatInt(*opts.DepartmentID, 10))
	}
	if opts.SortBy != "" {
		query.Set("sortBy", opts.SortBy)
	}
	if opts.SortOrder != "" {
		query.Set("sortOrder", opts.SortOrder)
	}
	query.Set("page", strconv.Itoa(opts.Page))
	if opts.PageSize > 0 {
		query.Set("pageSize", strconv.Itoa(opts.PageSize))
	}
	return query
}

func (c *Client) ListEmployees(ctx context.Context, opts ListOptions) (EmployeePage, error) {
	if page, ok := c.cache.getList(opts); ok {
		return page, nil
	}

	env, err := c.do(ctx, http.MethodGet, "/api/v1/employees", opts.values(), nil)
	if err != nil {
		return EmployeePage{}, err
	}
	items, err := decodeData[[]EmployeeListItem](env)
	if err != nil {
		return EmployeePage{}, err
	}

	page := EmployeePage{Items: items}
	if env.Metadata != nil && env.Metadata.Pagination != nil {
		page.Pagination = *env.Metadata.Pagination
	}
	c.cache.putList(opts, page)
	return page, nil
}

// SearchEmployees is ListEmployees with only a search term.
func (c *Client) SearchEmployees(ctx context.Context, term string, page, pageSize int) (EmployeePage, error) {
	return c.ListEmployees(ctx, ListOptions{Search: term, Page: page, PageSize: pageSize})
}

// EmployeesByDepartment is ListEmployees filtered to one department.
func (c *Client) EmployeesByDepartment(ctx context.Context, departmentID int64, page, pageSize int) (EmployeePage, error) {
	return c.ListEmployees(ctx, ListOptions{DepartmentID: &departmentID, Page: page, PageSize: pageSize})
}

func (c *Client) GetEmployee(ctx context.Context, employeeID string) (*EmployeeDetails, error) {
	if details, ok := c.cache.getDetails(employeeID); ok {
		return &details, nil
	}

	env, err := c.do(ctx, http.MethodGet, "/api/v1/employees/"+url.PathEscape(employeeID), nil, nil)
	if err != nil {
		return nil, err
	}
	details, err := decodeData[EmployeeDetails](env)
	if err != nil {
		return nil, err
	}
	c.cache.putDetails(details)
	return &details, nil
}

func (c *Client) CreateEmployee(ctx context.Context, req CreateEmployeeRequest) (*Employee, error) {
	env, err := c.do(ctx, http.MethodPost, "/api/v1/employees", nil, req)
	if err != nil {
		c.notifier.NotifyError(ctx, "create employee", err)
		return nil, err
	}
	created, err := decodeData[Employee](env)
	if err != nil {
		return nil, err
	}
	c.cache.invalidateCollections()
	return &created, nil
}

func (c *Client) UpdateEmployee(ctx context.Context, employeeID string, req UpdateEmployeeRequest) (*Employee, error) {
	env, err := c.do(ctx, http.MethodPut, "/api/v1/employees/"+url.PathEscape(employeeID), nil, req)
	if err != nil {
		c.notifier.NotifyError(ctx, "update employee", err)
		return nil, err
	}
	updated, err := decodeData[Employee](env)
	if err != nil {
		return nil, err
	}
	c.cache.invalidateCollections()
	c.cache.dropDetails(employeeID)
	return &updated, nil
}

func (c *Client) DeleteEmployee(ctx context.Context, employeeID string) (*Employee, error) {
	env, err := c.do(ctx, http.MethodDelete, "/api/v1/employees/"+url.PathEscape(employeeID), nil, nil)
	if err != nil {
		c.notifier.NotifyError(ctx, "delete employee", err)
		return nil, err
	}
	terminated, err := decodeData[Employee](env)
	if err != nil {
		return nil, err
	}
	c.cache.invalidateCollections()
	c.cache.invalidateEmployee(employeeID)
	return &terminated, nil
}

func (c *Client) EmployeeStats(ctx context.Context) (Stats, error) {
	if stats, ok := c.cache.getStats(); ok {
		return stats, nil
	}

	env, err := c.do(ctx, http.MethodGet, "/api/v1/employees/stats", nil, nil)
	if err != nil {
		return Stats{}, err
	}
	stats, err := decodeData[Stats](env)
	if err != nil {
		return Stats{}, err
	}
	c.cache.putStats(stats)
	return stats, nil
}

func (c *Client) ListDepartments(ctx context.Context) ([]Department, error) {
	env, err := c.do(ctx, http.MethodGet, "/api/v1/departments", nil, nil)
	if err != nil {
		return nil, err
	}
	return decodeData[[]Department](env)
}

func getExtension[T any](ctx context.Context, c *Client, kind ExtensionKind, employeeID string) (*T, error) {
	if cached, ok := c.cache.getExtension(kind, employeeID); ok {
		if typed, ok := cached.(*T); ok {
			return typed, nil
		}
	}

	env, err := c.do(ctx, http.MethodGet, extensionPath(kind, employeeID), nil, nil)
	if err != nil {
		return nil, err
	}
	if len(env.Data) == 0 || string(env.Data) == "null" {
		return nil, nil
	}
	value, err := decodeData[T](env)
	if err != nil {
		return nil, err
	}
	c.cache.putExtension(kind, employeeID, &value)
	return &value, nil
}

func updateExtension[T any](ctx context.Context, c *Client, kind ExtensionKind, employeeID string, body any) (*T, error) {
	env, err := c.do(ctx, http.MethodPut, extensionPath(kind, employeeID), nil, body)
	if err != nil {
		c.notifier.NotifyError(ctx, fmt.Sprintf("update %s info", kind), err)
		return nil, err
	}
	value, err := decodeData[T](env)
	if err != nil {
		return nil, err
	}
	// The extension entry is overwritten in place; the parent detail may
	// embed a stale copy, so it is dropped.
	c.cache.putExtension(kind, employeeID, &value)
	c.cache.dropDetails(employeeID)
	return &value, nil
}

func extensionPath(kind ExtensionKind, employeeID string) string {
	return "/api/v1/employees/" + url.PathEscape(employeeID) + "/" + string(kind)
}

func (c *Client) GetPersonalInfo(ctx context.Context, employeeID string) (*PersonalInfo, error) {
	return getExtension[PersonalInfo](ctx, c, KindPersonal, employeeID)
}

func (c *Client) UpdatePersonalInfo(ctx context.Context, employeeID string, req UpdatePersonalInfoRequest) (*PersonalInfo, error) {
	return updateExtension[PersonalInfo](ctx, c, KindPersonal, employeeID, req)
}

func (c *Client) GetContactInfo(ctx context.Context, employeeID string) (*ContactInfo, error) {
	return getExtension[ContactInfo](ctx, c, KindContact, employeeID)
}

func (c *Client) UpdateContactInfo(ctx context.Context, employeeID string, req UpdateContactInfoRequest) (*ContactInfo, error) {
	return updateExtension[ContactInfo](ctx, c, KindContact, employeeID, req)
}

func (c *Client) GetEmploymentInfo(ctx context.Context, employeeID string) (*EmploymentInfo, error) {
	return getExtension[EmploymentInfo](ctx, c, KindEmployment, employeeID)
}

func (c *Client) UpdateEmploymentInfo(ctx context.Context, employeeID string, req UpdateEmploymentInfoRequest) (*EmploymentInfo, error) {
	return updateExtension[EmploymentInfo](ctx, c, KindEmployment, employeeID, req)
}

func (c *Client) GetFinancialInfo(ctx context.Context, employeeID string) (*FinancialInfo, error) {
	return getExtension[FinancialInfo](ctx, c, KindFinancial, employeeID)
}

func (c *Client) UpdateFinancialInfo(ctx context.Context, employeeID string, req UpdateFinancialInfoRequest) (*FinancialInfo, error) {
	return updateExtension[FinancialInfo](ctx, c, KindFinancial, employeeID, req)
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	OTPCode  string `json:"otp_code,omitempty"`
}

type LoginResult struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
}

// Login authenticates and stores the returned token on the client.
func (c *Client) Login(ctx context.Context, email, password, otpCode string) (*LoginResult, error) {
	env, err := c.do(ctx, http.MethodPost, "/api/v1/auth/login", nil, loginRequest{Email: email, Password: password, OTPCode: otpCode})
	if err != nil {
		return nil, err
	}
	result, err := decodeData[LoginResult](env)
	if err != nil {
		return nil, err
	}
	c.token = result.Token
	return &result, nil
}

func (c *Client) Logout(ctx context.Context) error {
	_, err := c.do(ctx, http.MethodPost, "/api/v1/auth/logout", nil, nil)
	if err == nil {
		c.token = ""
	}
	return err
}
