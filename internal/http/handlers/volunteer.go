package handlers

import (
	"net/http"
	"strconv"

	"volunteer-dispatch/internal/logx"
	"volunteer-dispatch/internal/service/volunteer"
)

// VolunteerHandler serves volunteer resources.
type VolunteerHandler struct {
	volunteers  volunteerUsecase
	assignments assignmentUsecase
	logger      logx.Logger
}

// NewVolunteerHandler creates a VolunteerHandler.
func NewVolunteerHandler(logger logx.Logger, volunteers volunteerUsecase, assignments assignmentUsecase) *VolunteerHandler {
	return &VolunteerHandler{volunteers: volunteers, assignments: assignments, logger: logger}
}

// List handles GET /volunteers?active=&sort=.
func (h *VolunteerHandler) List(w http.ResponseWriter, r *http.Request) {
	active, err := queryBool(r, "active")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid active filter")
		return
	}
	sortBy, err := volunteer.ParseSortKey(r.URL.Query().Get("sort"))
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}

	list, err := h.volunteers.List(r.Context(), volunteer.ListFilter{Active: active, SortBy: sortBy})
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, toSummaryDTOs(list))
}

// Get handles GET /volunteers/{id}.
func (h *VolunteerHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
		return
	}
	v, err := h.volunteers.Get(r.Context(), id)
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, toVolunteerDTO(v))
}

// Create handles POST /volunteers.
func (h *VolunteerHandler) Create(w http.ResponseWriter, r *http.Request) {
	by, err := requester(r)
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, err.Error())
		return
	}
	var req createVolunteerRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}

	v, err := h.volunteers.Add(r.Context(), by, req.toDomain())
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	w.Header().Set("Location", "/volunteers/"+strconv.FormatInt(v.ID, 10))
	writeJSON(h.logger, w, r, http.StatusCreated, toVolunteerDTO(v))
}

// Update handles PUT /volunteers/{id} with a partial body.
func (h *VolunteerHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
		return
	}
	by, err := requester(r)
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, err.Error())
		return
	}
	var req updateVolunteerRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}

	v, err := h.volunteers.Update(r.Context(), by, req.toDomain(id))
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, toVolunteerDTO(v))
}

// Delete handles DELETE /volunteers/{id}.
func (h *VolunteerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
		return
	}
	by, err := requester(r)
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.volunteers.Delete(r.Context(), by, id); err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Login handles POST /login.
func (h *VolunteerHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}
	role, err := h.volunteers.Login(r.Context(), req.ID, req.Password)
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, loginResponse{ID: req.ID, Role: role})
}

// Assignments handles GET /volunteers/{id}/assignments.
func (h *VolunteerHandler) Assignments(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
		return
	}
	list, err := h.assignments.ListForVolunteer(r.Context(), id)
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, toAssignmentDTOs(list))
}
