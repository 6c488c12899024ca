package handlers

import (
	"volunteer-dispatch/internal/domain"
)

func toVolunteerDTO(v domain.Volunteer) volunteerDTO {
	return volunteerDTO{
		ID:           v.ID,
		FullName:     v.FullName,
		Phone:        v.Phone,
		Email:        v.Email,
		Address:      v.Address,
		Latitude:     v.Latitude,
		Longitude:    v.Longitude,
		Role:         v.Role,
		Active:       v.Active,
		MaxDistance:  v.MaxDistance,
		DistanceType: v.DistanceType,
	}
}

func (req createVolunteerRequest) toDomain() domain.Volunteer {
	active := true
	if req.Active != nil {
		active = *req.Active
	}
	return domain.Volunteer{
		FullName:     req.FullName,
		Phone:        req.Phone,
		Email:        req.Email,
		Password:     req.Password,
		Address:      req.Address,
		Role:         req.Role,
		Active:       active,
		MaxDistance:  req.MaxDistance,
		DistanceType: req.DistanceType,
	}
}

func (req updateVolunteerRequest) toDomain(id int64) domain.PartialVolunteerUpdate {
	return domain.PartialVolunteerUpdate{
		ID:           id,
		FullName:     req.FullName,
		Phone:        req.Phone,
		Email:        req.Email,
		Password:     req.Password,
		Address:      req.Address,
		Role:         req.Role,
		Active:       req.Active,
		MaxDistance:  req.MaxDistance,
		DistanceType: req.DistanceType,
	}
}

func toSummaryDTOs(list []domain.VolunteerSummary) []volunteerSummaryDTO {
	out := make([]volunteerSummaryDTO, 0, len(list))
	for _, s := range list {
		out = append(out, volunteerSummaryDTO(s))
	}
	return out
}

func (req callRequest) toDomain(id int64) domain.Call {
	return domain.Call{
		ID:          id,
		Type:        req.Type,
		Description: req.Description,
		Address:     req.Address,
		Deadline:    req.Deadline,
	}
}

func toCallDTO(c domain.Call) callDTO {
	return callDTO{
		ID:          c.ID,
		Type:        c.Type,
		Description: c.Description,
		Address:     c.Address,
		Latitude:    c.Latitude,
		Longitude:   c.Longitude,
		OpenedAt:    c.OpenedAt,
		Deadline:    c.Deadline,
	}
}

func toCallViewDTO(v domain.CallView, withHistory bool) callViewDTO {
	out := callViewDTO{callDTO: toCallDTO(v.Call), Status: v.Status}
	if v.RemainingTime != nil {
		secs := int64(v.RemainingTime.Seconds())
		out.RemainingSeconds = &secs
	}
	if withHistory {
		out.Assignments = toAssignmentDTOs(v.Assignments)
	}
	return out
}

func toCallViewDTOs(list []domain.CallView) []callViewDTO {
	out := make([]callViewDTO, 0, len(list))
	for _, v := range list {
		out = append(out, toCallViewDTO(v, false))
	}
	return out
}

func toOpenCallDTOs(list []domain.OpenCall) []openCallDTO {
	out := make([]openCallDTO, 0, len(list))
	for _, c := range list {
		out = append(out, openCallDTO{callDTO: toCallDTO(c.Call), Status: c.Status, DistanceKM: c.Distance})
	}
	return out
}

func toAssignmentDTO(a domain.Assignment) assignmentDTO {
	return assignmentDTO(a)
}

func toAssignmentDTOs(list []domain.Assignment) []assignmentDTO {
	out := make([]assignmentDTO, 0, len(list))
	for _, a := range list {
		out = append(out, toAssignmentDTO(a))
	}
	return out
}
