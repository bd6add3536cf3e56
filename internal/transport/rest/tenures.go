package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/y0ngdev/the-bridge/internal/domain"
	"github.com/y0ngdev/the-bridge/internal/service/tenure"
)

type tenureService interface {
	List(ctx context.Context) ([]domain.Tenure, error)
	Get(ctx context.Context, id int64) (*domain.Tenure, error)
	Active(ctx context.Context) (*domain.Tenure, error)
	Create(ctx context.Context, input tenure.Input) (*domain.Tenure, error)
	Update(ctx context.Context, id int64, input tenure.Input) (*domain.Tenure, error)
	Delete(ctx context.Context, id int64) error
}

// TenuresHandler serves tenure (class cohort) endpoints.
type TenuresHandler struct {
	svc tenureService
	log *slog.Logger
}

// NewTenuresHandler creates a TenuresHandler.
func NewTenuresHandler(svc tenureService, logger *slog.Logger) *TenuresHandler {
	return &TenuresHandler{svc: svc, log: logger.With("handler", "tenures")}
}

type tenureRequest struct {
	Name      string `json:"name"`
	Year      int    `json:"year"`
	IsActive  bool   `json:"isActive"`
	StartDate *Date  `json:"startDate"`
	EndDate   *Date  `json:"endDate"`
}

func (req tenureRequest) input() tenure.Input {
	return tenure.Input{
		Name:      req.Name,
		Year:      req.Year,
		IsActive:  req.IsActive,
		StartDate: req.StartDate.ptr(),
		EndDate:   req.EndDate.ptr(),
	}
}

func (h *TenuresHandler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.List(r.Context())
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	out := make([]tenureResponse, len(list))
	for i := range list {
		out[i] = toTenureResponse(&list[i])
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": out})
}

func (h *TenuresHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	t, err := h.svc.Get(r.Context(), id)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toTenureResponse(t))
}

// Active handles GET /api/v1/tenures/active. 404 when no tenure is active.
func (h *TenuresHandler) Active(w http.ResponseWriter, r *http.Request) {
	t, err := h.svc.Active(r.Context())
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toTenureResponse(t))
}

func (h *TenuresHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req tenureRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, r, h.log, err)
		return
	}
	t, err := h.svc.Create(r.Context(), req.input())
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toTenureResponse(t))
}

func (h *TenuresHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	var req tenureRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, r, h.log, err)
		return
	}
	t, err := h.svc.Update(r.Context(), id, req.input())
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toTenureResponse(t))
}

func (h *TenuresHandler) Delete(w http.ResponseWriter, r *http.Request) {
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
