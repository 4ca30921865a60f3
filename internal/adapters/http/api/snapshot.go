package api

import (
	"context"
	"net/http"

	"github.com/okian/awards/internal/domain/types"
)

// SnapshotDependencies defines the snapshot lifecycle operations.
type SnapshotDependencies interface {
	PutSnapshot(ctx context.Context, eventID string, data types.EventData) (types.SnapshotEntry, error)
	Snapshot(ctx context.Context, eventID string) (types.SnapshotEntry, error)
	DeleteSnapshot(ctx context.Context, eventID string) error
}

// SnapshotHandler handles /events/{id}/snapshot requests.
type SnapshotHandler struct {
	deps SnapshotDependencies
}

// NewSnapshotHandler creates a new snapshot handler.
func NewSnapshotHandler(deps SnapshotDependencies) *SnapshotHandler {
	return &SnapshotHandler{deps: deps}
}

// HandlePutSnapshot handles PUT /events/{id}/snapshot requests.
func (h *SnapshotHandler) HandlePutSnapshot(w http.ResponseWriter, r *http.Request) {
	const op = "api.put_snapshot"
	eventID, err := eventIDFrom(r)
	if err != nil {
		fail(w, WrapKind(op, ErrBadRequest, err))
		return
	}
	var data types.EventData
	if err := decodeJSON(w, r, &data); err != nil {
		fail(w, WrapKind(op, ErrBadRequest, err))
		return
	}
	snap, err := h.deps.PutSnapshot(r.Context(), eventID, data)
	if err != nil {
		fail(w, Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, snap)
}

// HandleGetSnapshot handles GET /events/{id}/snapshot requests.
func (h *SnapshotHandler) HandleGetSnapshot(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_snapshot"
	eventID, err := eventIDFrom(r)
	if err != nil {
		fail(w, WrapKind(op, ErrBadRequest, err))
		return
	}
	snap, err := h.deps.Snapshot(r.Context(), eventID)
	if err != nil {
		fail(w, Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, snap)
}

// HandleDeleteSnapshot handles DELETE /events/{id}/snapshot requests.
func (h *SnapshotHandler) HandleDeleteSnapshot(w http.ResponseWriter, r *http.Request) {
	const op = "api.delete_snapshot"
	eventID, err := eventIDFrom(r)
	if err != nil {
		fail(w, WrapKind(op, ErrBadRequest, err))
		return
	}
	if err := h.deps.DeleteSnapshot(r.Context(), eventID); err != nil {
		fail(w, Wrap(op, err))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
