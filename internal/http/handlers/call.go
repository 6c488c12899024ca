package handlers

import (
	"net/http"
	"strconv"

	"volunteer-dispatch/internal/domain"
	"volunteer-dispatch/internal/logx"
	"volunteer-dispatch/internal/service/call"
)

// CallHandler serves call resources and call selection.
type CallHandler struct {
	calls       callUsecase
	assignments assignmentUsecase
	logger      logx.Logger
}

// NewCallHandler creates a CallHandler.
func NewCallHandler(logger logx.Logger, calls callUsecase, assignments assignmentUsecase) *CallHandler {
	return &CallHandler{calls: calls, assignments: assignments, logger: logger}
}

func callTypeParam(r *http.Request) (*domain.CallType, bool) {
	s := r.URL.Query().Get("type")
	if s == "" {
		return nil, true
	}
	t := domain.CallType(s)
	return &t, t.Valid()
}

// List handles GET /calls?type=&status=&sort=.
func (h *CallHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	f := call.ListFilter{}

	t, ok := callTypeParam(r)
	if !ok {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid call type")
		return
	}
	f.Type = t
	if s := q.Get("status"); s != "" {
		st := domain.Status(s)
		if !st.Valid() {
			writeError(h.logger, w, r, http.StatusBadRequest, "invalid status")
			return
		}
		f.Status = &st
	}
	sortBy, err := call.ParseSortKey(q.Get("sort"))
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	f.SortBy = sortBy

	list, err := h.calls.List(r.Context(), f)
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, toCallViewDTOs(list))
}

// Get handles GET /calls/{id}; the reply includes the assignment history.
func (h *CallHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
		return
	}
	v, err := h.calls.Get(r.Context(), id)
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, toCallViewDTO(v, true))
}

// Create handles POST /calls.
func (h *CallHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req callRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}
	c, err := h.calls.Add(r.Context(), req.toDomain(0))
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	w.Header().Set("Location", "/calls/"+strconv.FormatInt(c.ID, 10))
	writeJSON(h.logger, w, r, http.StatusCreated, toCallDTO(c))
}

// Update handles PUT /calls/{id}.
func (h *CallHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
		return
	}
	var req callRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}
	c, err := h.calls.Update(r.Context(), req.toDomain(id))
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, toCallDTO(c))
}

// Delete handles DELETE /calls/{id}.
func (h *CallHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
		return
	}
	if err := h.calls.Delete(r.Context(), id); err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Open handles GET /calls/open?volunteer_id=&type=.
func (h *CallHandler) Open(w http.ResponseWriter, r *http.Request) {
	vid, err := strconv.ParseInt(r.URL.Query().Get("volunteer_id"), 10, 64)
	if err != nil || vid <= 0 {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid volunteer_id")
		return
	}
	t, ok := callTypeParam(r)
	if !ok {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid call type")
		return
	}
	list, err := h.calls.OpenForVolunteer(r.Context(), vid, t)
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, toOpenCallDTOs(list))
}

// Counts handles GET /calls/counts.
func (h *CallHandler) Counts(w http.ResponseWriter, r *http.Request) {
	counts, err := h.calls.Counts(r.Context())
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, counts)
}

// Select handles POST /calls/{id}/select on behalf of the requester.
func (h *CallHandler) Select(w http.ResponseWriter, r *http.Request) {
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
	a, err := h.assignments.SelectCall(r.Context(), by, id)
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusCreated, toAssignmentDTO(a))
}
