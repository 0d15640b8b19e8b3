package reportshandler

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"hrms/internal/domain/employee"
	"hrms/internal/domain/reports"
	"hrms/internal/transport/http/api"
	"hrms/internal/transport/http/shared"
)

type Handler struct {
	Service *reports.Service
}

func NewHandler(service *reports.Service) *Handler {
	return &Handler{Service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/reports", func(r chi.Router) {
		r.Get("/employees.pdf", h.handleRosterPDF)
		r.Get("/employees.xlsx", h.handleRosterXLSX)
	})
}

func (h *Handler) rosterQuery(w http.ResponseWriter, r *http.Request) (employee.ListQuery, bool) {
	params := r.URL.Query()
	query := employee.ListQuery{
		Search:           params.Get("search"),
		EmploymentStatus: params.Get("employment_status"),
	}
	if raw := params.Get("department_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			shared.FailValidation(w, []shared.ValidationIssue{{Field: "department_id", Reason: "must be a numeric department id"}})
			return query, false
		}
		query.DepartmentID = &id
	}
	return query, true
}

func (h *Handler) handleRosterPDF(w http.ResponseWriter, r *http.Request) {
	query, ok := h.rosterQuery(w, r)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="employees.pdf"`)
	if err := h.Service.WriteRosterPDF(r.Context(), w, query); err != nil {
		slog.Error("roster pdf export failed", "err", err)
		api.Fail(w, http.StatusInternalServerError, api.CodeDatabase, err.Error())
	}
}

func (h *Handler) handleRosterXLSX(w http.ResponseWriter, r *http.Request) {
	query, ok := h.rosterQuery(w, r)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="employees.xlsx"`)
	if err := h.Service.WriteRosterXLSX(r.Context(), w, query); err != nil {
		slog.Error("roster xlsx export failed", "err", err)
		api.Fail(w, http.StatusInternalServerError, api.CodeDatabase, err.Error())
	}
}
