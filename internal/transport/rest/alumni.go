package rest

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/y0ngdev/the-bridge/internal/domain"
	"github.com/y0ngdev/the-bridge/internal/service/alumnus"
	"github.com/y0ngdev/the-bridge/internal/service/communication"
	"github.com/y0ngdev/the-bridge/internal/transport/dataloader"
)

type alumnusService interface {
	Create(ctx context.Context, input alumnus.CreateInput) (*domain.Alumnus, error)
	Get(ctx context.Context, id int64) (*domain.Alumnus, error)
	List(ctx context.Context, input alumnus.ListInput) ([]domain.Alumnus, int, error)
	Update(ctx context.Context, input alumnus.UpdateInput) (*domain.Alumnus, error)
	Delete(ctx context.Context, id int64) error
	History(ctx context.Context, id int64, limit int) ([]domain.AuditRecord, error)
}

type communicationService interface {
	Create(ctx context.Context, input communication.CreateInput) (*domain.CommunicationLog, error)
	ListByAlumnus(ctx context.Context, alumnusID int64) ([]domain.CommunicationLog, error)
	Delete(ctx context.Context, id int64) error
}

// AlumniHandler serves the alumni directory and its communication logs.
type AlumniHandler struct {
	alumni alumnusService
	comms  communicationService
	log    *slog.Logger
}

// NewAlumniHandler creates an AlumniHandler.
func NewAlumniHandler(alumni alumnusService, comms communicationService, logger *slog.Logger) *AlumniHandler {
	return &AlumniHandler{alumni: alumni, comms: comms, log: logger.With("handler", "alumni")}
}

type alumnusRequest struct {
	Name              *string   `json:"name"`
	Email             *string   `json:"email"`
	Phones            *[]string `json:"phones"`
	DepartmentID      *int64    `json:"departmentId"`
	TenureID          *int64    `json:"tenureId"`
	Gender            *string   `json:"gender"`
	BirthDate         *Date     `json:"birthDate"`
	IsStaff           *bool     `json:"isStaff"`
	Unit              *string   `json:"unit"`
	State             *string   `json:"state"`
	Address           *string   `json:"address"`
	PastExcoOffice    *string   `json:"pastExcoOffice"`
	CurrentExcoOffice *string   `json:"currentExcoOffice"`
}

func (req alumnusRequest) gender() *domain.Gender {
	if req.Gender == nil {
		return nil
	}
	g := domain.Gender(*req.Gender)
	return &g
}

// List handles GET /api/v1/alumni.
func (h *AlumniHandler) List(w http.ResponseWriter, r *http.Request) {
	input, err := parseListInput(r)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	list, total, err := h.alumni.List(r.Context(), input)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	items := toAlumniResponse(list)
	if err := attachRefs(r.Context(), items); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	limit := input.Limit
	if limit == 0 {
		limit = alumnus.DefaultListLimit
	}
	writeJSON(w, http.StatusOK, listResponse[alumnusResponse]{
		Items:  items,
		Total:  total,
		Limit:  limit,
		Offset: input.Offset,
	})
}

func parseListInput(r *http.Request) (alumnus.ListInput, error) {
	var (
		input alumnus.ListInput
		err   error
	)
	if input.Limit, err = queryInt(r, "limit", 0); err != nil {
		return input, err
	}
	if input.Offset, err = queryInt(r, "offset", 0); err != nil {
		return input, err
	}
	if input.DepartmentID, err = queryInt64Ptr(r, "departmentId"); err != nil {
		return input, err
	}
	if input.TenureID, err = queryInt64Ptr(r, "tenureId"); err != nil {
		return input, err
	}
	input.Search = queryStringPtr(r, "search")
	input.Unit = queryStringPtr(r, "unit")
	input.State = queryStringPtr(r, "state")
	if g := queryStringPtr(r, "gender"); g != nil {
		gender := domain.Gender(*g)
		input.Gender = &gender
	}
	return input, nil
}

// Get handles GET /api/v1/alumni/{id}. Tombstones are returned too.
func (h *AlumniHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	a, err := h.alumni.Get(r.Context(), id)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	items := []alumnusResponse{toAlumnusResponse(a)}
	if err := attachRefs(r.Context(), items); err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, items[0])
}

// attachRefs fills in the department and tenure of each item through the
// request's loaders. It is a no-op when no loaders are installed. A
// reference that no longer exists is left empty.
func attachRefs(ctx context.Context, items []alumnusResponse) error {
	loaders := dataloader.FromContext(ctx)
	if loaders == nil {
		return nil
	}

	var pending []func() error
	for i := range items {
		item := &items[i]
		if item.DepartmentID != nil {
			thunk := loaders.DepartmentByID.Load(ctx, *item.DepartmentID)
			pending = append(pending, func() error {
				d, err := thunk()
				if err != nil {
					return fmt.Errorf("load department %d: %w", *item.DepartmentID, err)
				}
				if d != nil {
					resp := toDepartmentResponse(d)
					item.Department = &resp
				}
				return nil
			})
		}
		if item.TenureID != nil {
			thunk := loaders.TenureByID.Load(ctx, *item.TenureID)
			pending = append(pending, func() error {
				tn, err := thunk()
				if err != nil {
					return fmt.Errorf("load tenure %d: %w", *item.TenureID, err)
				}
				if tn != nil {
					resp := toTenureResponse(tn)
					item.Tenure = &resp
				}
				return nil
			})
		}
	}

	for _, resolve := range pending {
		if err := resolve(); err != nil {
			return err
		}
	}
	return nil
}

// Create handles POST /api/v1/alumni.
func (h *AlumniHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req alumnusRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	input := alumnus.CreateInput{
		Email:             req.Email,
		DepartmentID:      req.DepartmentID,
		TenureID:          req.TenureID,
		Gender:            req.gender(),
		BirthDate:         req.BirthDate.ptr(),
		Unit:              req.Unit,
		State:             req.State,
		Address:           req.Address,
		PastExcoOffice:    req.PastExcoOffice,
		CurrentExcoOffice: req.CurrentExcoOffice,
	}
	if req.Name != nil {
		input.Name = *req.Name
	}
	if req.Phones != nil {
		input.Phones = *req.Phones
	}
	if req.IsStaff != nil {
		input.IsStaff = *req.IsStaff
	}

	a, err := h.alumni.Create(r.Context(), input)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toAlumnusResponse(a))
}

// Update handles PATCH /api/v1/alumni/{id}. Absent fields are unchanged.
func (h *AlumniHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	var req alumnusRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	input := alumnus.UpdateInput{
		ID:                id,
		Name:              req.Name,
		Email:             req.Email,
		DepartmentID:      req.DepartmentID,
		TenureID:          req.TenureID,
		Gender:            req.gender(),
		BirthDate:         req.BirthDate.ptr(),
		IsStaff:           req.IsStaff,
		Unit:              req.Unit,
		State:             req.State,
		Address:           req.Address,
		PastExcoOffice:    req.PastExcoOffice,
		CurrentExcoOffice: req.CurrentExcoOffice,
	}
	if req.Phones != nil {
		input.Phones = *req.Phones
		if input.Phones == nil {
			input.Phones = []string{}
		}
	}

	a, err := h.alumni.Update(r.Context(), input)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toAlumnusResponse(a))
}

// Delete handles DELETE /api/v1/alumni/{id}.
func (h *AlumniHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	if err := h.alumni.Delete(r.Context(), id); err != nil {
		respondError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// History handles GET /api/v1/alumni/{id}/history.
func (h *AlumniHandler) History(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	limit, err := queryInt(r, "limit", 0)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	records, err := h.alumni.History(r.Context(), id, limit)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	out := make([]auditResponse, len(records))
	for i := range records {
		out[i] = toAuditResponse(&records[i])
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": out})
}

type communicationRequest struct {
	Type       string     `json:"type"`
	Outcome    string     `json:"outcome"`
	Notes      *string    `json:"notes"`
	OccurredAt *time.Time `json:"occurredAt"`
}

// ListCommunications handles GET /api/v1/alumni/{id}/communications.
func (h *AlumniHandler) ListCommunications(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	logs, err := h.comms.ListByAlumnus(r.Context(), id)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	out := make([]communicationResponse, len(logs))
	for i := range logs {
		out[i] = toCommunicationResponse(&logs[i])
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": out})
}

// CreateCommunication handles POST /api/v1/alumni/{id}/communications.
func (h *AlumniHandler) CreateCommunication(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	var req communicationRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	l, err := h.comms.Create(r.Context(), communication.CreateInput{
		AlumnusID:  id,
		Type:       domain.CommunicationType(req.Type),
		Outcome:    domain.CommunicationOutcome(req.Outcome),
		Notes:      req.Notes,
		OccurredAt: req.OccurredAt,
	})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toCommunicationResponse(l))
}

// DeleteCommunication handles DELETE /api/v1/communications/{id}.
func (h *AlumniHandler) DeleteCommunication(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	if err := h.comms.Delete(r.Context(), id); err != nil {
		respondError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
