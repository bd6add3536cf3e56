package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/y0ngdev/the-bridge/internal/domain"
	"github.com/y0ngdev/the-bridge/internal/service/duplicate"
)

type duplicateService interface {
	ListDuplicates(ctx context.Context) ([]domain.DuplicatePair, error)
	DismissGroup(ctx context.Context, ids []int64) (int, error)
	MergeRecords(ctx context.Context, idA, idB, primaryID int64) (*domain.Alumnus, error)
}

// DuplicatesHandler serves the duplicate review workflow.
type DuplicatesHandler struct {
	svc duplicateService
	log *slog.Logger
}

// NewDuplicatesHandler creates a DuplicatesHandler.
func NewDuplicatesHandler(svc duplicateService, logger *slog.Logger) *DuplicatesHandler {
	return &DuplicatesHandler{svc: svc, log: logger.With("handler", "duplicates")}
}

// List handles GET /api/v1/duplicates. With ?view=groups the connected
// components of the pair graph are included.
func (h *DuplicatesHandler) List(w http.ResponseWriter, r *http.Request) {
	pairs, err := h.svc.ListDuplicates(r.Context())
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	resp := duplicatesResponse{Pairs: toDuplicatePairs(pairs)}
	if r.URL.Query().Get("view") == "groups" {
		clusters := duplicate.Clusters(pairs)
		resp.Groups = make([][]alumnusResponse, len(clusters))
		for i, c := range clusters {
			resp.Groups[i] = toAlumniResponse(c)
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

type dismissRequest struct {
	IDs []int64 `json:"ids"`
}

// Dismiss handles POST /api/v1/duplicates/dismiss.
func (h *DuplicatesHandler) Dismiss(w http.ResponseWriter, r *http.Request) {
	var req dismissRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	n, err := h.svc.DismissGroup(r.Context(), req.IDs)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"dismissed": n})
}

type mergeRequest struct {
	IDA       int64 `json:"idA"`
	IDB       int64 `json:"idB"`
	PrimaryID int64 `json:"primaryId"`
}

// Merge handles POST /api/v1/duplicates/merge and returns the surviving
// record.
func (h *DuplicatesHandler) Merge(w http.ResponseWriter, r *http.Request) {
	var req mergeRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	primary, err := h.svc.MergeRecords(r.Context(), req.IDA, req.IDB, req.PrimaryID)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toAlumnusResponse(primary))
}
