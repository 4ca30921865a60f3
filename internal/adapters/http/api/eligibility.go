package api

import (
	"context"
	"net/http"

	"github.com/okian/awards/internal/domain/types"
)

// EligibilityDependencies defines the evaluation operations.
type EligibilityDependencies interface {
	Evaluate(ctx context.Context, req types.EvaluationRequest) (types.Evaluation, error)
	EvaluateSnapshot(ctx context.Context, eventID string, q types.EvaluationQuery) (types.Evaluation, error)
}

// EligibilityHandler handles eligibility requests.
type EligibilityHandler struct {
	deps EligibilityDependencies
}

// NewEligibilityHandler creates a new eligibility handler.
func NewEligibilityHandler(deps EligibilityDependencies) *EligibilityHandler {
	return &EligibilityHandler{deps: deps}
}

// HandlePostEligibility handles POST /eligibility requests. The body carries
// the event data inline; nothing is stored.
func (h *EligibilityHandler) HandlePostEligibility(w http.ResponseWriter, r *http.Request) {
	const op = "api.post_eligibility"
	var req types.EvaluationRequest
	if err := decodeJSON(w, r, &req); err != nil {
		fail(w, WrapKind(op, ErrBadRequest, err))
		return
	}
	ev, err := h.deps.Evaluate(r.Context(), req)
	if err != nil {
		fail(w, Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, ev)
}

// HandleGetEventEligibility handles
// GET /events/{id}/eligibility?program=&grade_split=&sort=&grade=&q=&eligible_only=.
func (h *EligibilityHandler) HandleGetEventEligibility(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_event_eligibility"
	eventID, err := eventIDFrom(r)
	if err != nil {
		fail(w, WrapKind(op, ErrBadRequest, err))
		return
	}
	q, err := queryFrom(r)
	if err != nil {
		fail(w, WrapKind(op, ErrBadRequest, err))
		return
	}
	ev, err := h.deps.EvaluateSnapshot(r.Context(), eventID, q)
	if err != nil {
		fail(w, Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, ev)
}
