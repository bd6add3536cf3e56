package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/y0ngdev/the-bridge/internal/domain"
	"github.com/y0ngdev/the-bridge/internal/service/department"
)

type departmentService interface {
	List(ctx context.Context) ([]domain.Department, error)
	Get(ctx context.Context, id int64) (*domain.Department, error)
	Create(ctx context.Context, input department.Input) (*domain.Department, error)
	Update(ctx context.Context, id int64, input department.Input) (*domain.Department, error)
	Delete(ctx context.Context, id int64) error
}

// DepartmentsHandler serves department endpoints.
type DepartmentsHandler struct {
	svc departmentService
	log *slog.Logger
}

// NewDepartmentsHandler creates a DepartmentsHandler.
func NewDepartmentsHandler(svc departmentService, logger *slog.Logger) *DepartmentsHandler {
	return &DepartmentsHandler{svc: svc, log: logger.With("handler", "departments")}
}

type departmentRequest struct {
	Code   string  `json:"code"`
	Name   string  `json:"name"`
	School *string `json:"school"`
}

func (req departmentRequest) input() department.Input {
	return department.Input{Code: req.Code, Name: req.Name, School: req.School}
}

func (h *DepartmentsHandler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.List(r.Context())
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	out := make([]departmentResponse, len(list))
	for i := range list {
		out[i] = toDepartmentResponse(&list[i])
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": out})
}

func (h *DepartmentsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	d, err := h.svc.Get(r.Context(), id)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toDepartmentResponse(d))
}

func (h *DepartmentsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req departmentRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, r, h.log, err)
		return
	}
	d, err := h.svc.Create(r.Context(), req.input())
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toDepartmentResponse(d))
}

func (h *DepartmentsHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	var req departmentRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, r, h.log, err)
		return
	}
	d, err := h.svc.Update(r.Context(), id, req.input())
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toDepartmentResponse(d))
}

func (h *DepartmentsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	if err := h.svc.Delete(r.Context(), id); err != nil {
		respondError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
