package departmentshandler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"hrms/internal/domain/department"
	"hrms/internal/transport/http/api"
	"hrms/internal/transport/http/shared"
)

type Handler struct {
	Store department.StoreAPI
}

func NewHandler(store department.StoreAPI) *Handler {
	return &Handler{Store: store}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/departments", func(r chi.Router) {
		r.Get("/", h.handleList)
		r.Get("/{departmentID}", h.handleGet)
	})
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	departments, err := h.Store.ListDepartments(r.Context())
	if err != nil {
		h.fail(w, err)
		return
	}
	api.Success(w, departments)
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "departmentID"), 10, 64)
	if err != nil {
		shared.FailValidation(w, []shared.ValidationIssue{{Field: "departmentID", Reason: "must be a numeric department id"}})
		return
	}

	dept, err := h.Store.GetDepartment(r.Context(), id)
	if err != nil {
		h.fail(w, err)
		return
	}
	api.Success(w, dept)
}

func (h *Handler) fail(w http.ResponseWriter, err error) {
	if errors.Is(err, department.ErrDepartmentNotFound) {
		api.Fail(w, http.StatusNotFound, api.CodeNotFound, "Department not found")
		return
	}
	slog.Error("storage failure", "err", err)
	api.Fail(w, http.StatusInternalServerError, api.CodeDatabase, err.Error())
}
