package handlers

import (
	"context"
	"net/http"

	"volunteer-dispatch/internal/domain"
	"volunteer-dispatch/internal/logx"
)

// AssignmentHandler serves assignment transitions.
type AssignmentHandler struct {
	assignments assignmentUsecase
	logger      logx.Logger
}

// NewAssignmentHandler creates an AssignmentHandler.
func NewAssignmentHandler(logger logx.Logger, assignments assignmentUsecase) *AssignmentHandler {
	return &AssignmentHandler{assignments: assignments, logger: logger}
}

// Complete handles POST /assignments/{id}/complete.
func (h *AssignmentHandler) Complete(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, func(ctx context.Context, by, id int64) (domain.Assignment, error) {
		return h.assignments.CompleteCall(ctx, by, id)
	})
}

// Cancel handles POST /assignments/{id}/cancel.
func (h *AssignmentHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, func(ctx context.Context, by, id int64) (domain.Assignment, error) {
		return h.assignments.CancelCall(ctx, by, id)
	})
}

func (h *AssignmentHandler) transition(w http.ResponseWriter, r *http.Request, fn func(ctx context.Context, by, id int64) (domain.Assignment, error)) {
	id, err := idFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
		return
	}
	by, err := requester(r)
	if err != nil || by == 0 {
		writeError(h.logger, w, r, http.StatusBadRequest, "missing requester")
		return
	}
	a, err := fn(r.Context(), by, id)
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, toAssignmentDTO(a))
}
