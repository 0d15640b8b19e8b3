package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, hits *atomic.Int64, routes map[string]any) *httptest.Server {
	t.Helper()

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		key := r.Method + " " + r.URL.Path
		payload, ok := routes[key]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(map[string]any{
				"success": false,
				"error":   map[string]string{"code": "NOT_FOUND", "message": "Employee not found"},
			})
			return
		}
		json.NewEncoder(w).Encode(payload)
	}))
}

func successEnvelope(data any) map[string]any {
	return map[string]any{"success": true, "data": data}
}

func TestGetEmployee_CachesByID(t *testing.T) {
	var hits atomic.Int64
	server := newTestServer(t, &hits, map[string]any{
		"GET /api/v1/employees/EMP123456ABC": successEnvelope(map[string]any{
			"employee_id":       "EMP123456ABC",
			"full_name_english": "Jane Doe",
		}),
	})
	defer server.Close()

	c := New(server.URL)
	ctx := context.Background()

	first, err := c.GetEmployee(ctx, "EMP123456ABC")
	require.NoError(t, err)
	second, err := c.GetEmployee(ctx, "EMP123456ABC")
	require.NoError(t, err)

	assert.Equal(t, first.FullNameEnglish, second.FullNameEnglish)
	assert.Equal(t, int64(1), hits.Load(), "second read must come from cache")
}

func TestListEmployees_CacheKeyedByFullQuery(t *testing.T) {
	var hits atomic.Int64
	server := newTestServer(t, &hits, map[string]any{
		"GET /api/v1/employees": map[string]any{
			"success":  true,
			"data":     []map[string]any{{"employee_id": "EMP000001AAA", "full_name_english": "A"}},
			"metadata": map[string]any{"pagination": map[string]int{"page": 0, "pageSize": 20, "total": 1, "totalPages": 1}},
		},
	})
	defer server.Close()

	c := New(server.URL)
	ctx := context.Background()

	_, err := c.ListEmployees(ctx, ListOptions{Page: 0, PageSize: 20})
	require.NoError(t, err)
	_, err = c.ListEmployees(ctx, ListOptions{Page: 0, PageSize: 20})
	require.NoError(t, err)
	assert.Equal(t, int64(1), hits.Load(), "identical query tuples share one entry")

	_, err = c.ListEmployees(ctx, ListOptions{Search: "doe", Page: 0, PageSize: 20})
	require.NoError(t, err)
	assert.Equal(t, int64(2), hits.Load(), "different filter is a different entry")
}

func TestCreateEmployee_InvalidatesListsAndStats(t *testing.T) {
	var hits atomic.Int64
	server := newTestServer(t, &hits, map[string]any{
		"GET /api/v1/employees": map[string]any{
			"success":  true,
			"data":     []map[string]any{},
			"metadata": map[string]any{"pagination": map[string]int{"page": 0, "pageSize": 20}},
		},
		"GET /api/v1/employees/stats": successEnvelope(map[string]int{"total": 5, "active": 5}),
		"POST /api/v1/employees":      successEnvelope(map[string]any{"employee_id": "EMP999999ZZZ"}),
	})
	defer server.Close()

	c := New(server.URL)
	ctx := context.Background()

	_, err := c.ListEmployees(ctx, ListOptions{PageSize: 20})
	require.NoError(t, err)
	_, err = c.EmployeeStats(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(2), hits.Load())

	_, err = c.CreateEmployee(ctx, CreateEmployeeRequest{FullNameEnglish: "Jane Doe", FullNameVietnamese: "Jane"})
	require.NoError(t, err)
	require.Equal(t, int64(3), hits.Load())

	_, err = c.ListEmployees(ctx, ListOptions{PageSize: 20})
	require.NoError(t, err)
	_, err = c.EmployeeStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(5), hits.Load(), "create must drop list and stats entries")
}

func TestUpdateExtension_DropsParentDetail(t *testing.T) {
	var hits atomic.Int64
	server := newTestServer(t, &hits, map[string]any{
		"GET /api/v1/employees/EMP123456ABC": successEnvelope(map[string]any{
			"employee_id": "EMP123456ABC",
		}),
		"PUT /api/v1/employees/EMP123456ABC/contact": successEnvelope(map[string]any{
			"mobile_phone": "0912345678",
		}),
		"GET /api/v1/employees/EMP123456ABC/contact": successEnvelope(map[string]any{
			"mobile_phone": "0912345678",
		}),
	})
	defer server.Close()

	c := New(server.URL)
	ctx := context.Background()

	_, err := c.GetEmployee(ctx, "EMP123456ABC")
	require.NoError(t, err)
	require.Equal(t, int64(1), hits.Load())

	phone := "0912345678"
	updated, err := c.UpdateContactInfo(ctx, "EMP123456ABC", UpdateContactInfoRequest{MobilePhone: &phone})
	require.NoError(t, err)
	require.NotNil(t, updated.MobilePhone)
	require.Equal(t, int64(2), hits.Load())

	// The write left the extension entry warm, so this read is served locally.
	contact, err := c.GetContactInfo(ctx, "EMP123456ABC")
	require.NoError(t, err)
	require.NotNil(t, contact)
	assert.Equal(t, int64(2), hits.Load())

	// The parent detail was dropped and must be refetched.
	_, err = c.GetEmployee(ctx, "EMP123456ABC")
	require.NoError(t, err)
	assert.Equal(t, int64(3), hits.Load())
}

func TestDeleteEmployee_DropsDetailAndExtensions(t *testing.T) {
	var hits atomic.Int64
	server := newTestServer(t, &hits, map[string]any{
		"GET /api/v1/employees/EMP123456ABC":          successEnvelope(map[string]any{"employee_id": "EMP123456ABC"}),
		"GET /api/v1/employees/EMP123456ABC/personal": successEnvelope(map[string]any{"gender": "Female"}),
		"DELETE /api/v1/employees/EMP123456ABC":       successEnvelope(map[string]any{"employee_id": "EMP123456ABC", "employment_status": "Terminated"}),
	})
	defer server.Close()

	c := New(server.URL)
	ctx := context.Background()

	_, err := c.GetEmployee(ctx, "EMP123456ABC")
	require.NoError(t, err)
	_, err = c.GetPersonalInfo(ctx, "EMP123456ABC")
	require.NoError(t, err)
	require.Equal(t, int64(2), hits.Load())

	terminated, err := c.DeleteEmployee(ctx, "EMP123456ABC")
	require.NoError(t, err)
	assert.Equal(t, "Terminated", terminated.EmploymentStatus)
	require.Equal(t, int64(3), hits.Load())

	_, err = c.GetEmployee(ctx, "EMP123456ABC")
	require.NoError(t, err)
	_, err = c.GetPersonalInfo(ctx, "EMP123456ABC")
	require.NoError(t, err)
	assert.Equal(t, int64(5), hits.Load(), "delete must drop the detail and extension entries")
}

func TestAPIError_CarriesEnvelopeMessage(t *testing.T) {
	var hits atomic.Int64
	server := newTestServer(t, &hits, nil)
	defer server.Close()

	c := New(server.URL)
	_, err := c.GetEmployee(context.Background(), "EMP000000XXX")

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Equal(t, "NOT_FOUND", apiErr.Code)
	assert.Equal(t, "Employee not found", apiErr.Message)
}

type recordingNotifier struct {
	operations []string
}

func (n *recordingNotifier) NotifyError(_ context.Context, operation string, _ error) {
	n.operations = append(n.operations, operation)
}

func TestMutationTransportFailure_Notifies(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // force a transport error

	notifier := &recordingNotifier{}
	c := New(server.URL, WithNotifier(notifier))

	_, err := c.CreateEmployee(context.Background(), CreateEmployeeRequest{FullNameEnglish: "Jane Doe", FullNameVietnamese: "Jane"})
	require.Error(t, err)
	assert.Equal(t, []string{"create employee"}, notifier.operations)
}

func TestReadRetriesOnceOnTransportFailure(t *testing.T) {
	var attempts atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if attempts.Add(1) == 1 {
			hj, ok := w.(http.Hijacker)
			require.True(t, ok)
			conn, _, err := hj.Hijack()
			require.NoError(t, err)
			conn.Close()
			return
		}
		json.NewEncoder(w).Encode(successEnvelope(map[string]int{"total": 1}))
	}))
	defer server.Close()

	c := New(server.URL)
	stats, err := c.EmployeeStats(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, stats.Total)
	assert.Equal(t, int64(2), attempts.Load())
}
