package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"volunteer-dispatch/internal/apperr"
	"volunteer-dispatch/internal/geocode"
	"volunteer-dispatch/internal/logx"
)

// RequesterHeader carries the id of the volunteer performing the request.
const RequesterHeader = "X-Volunteer-ID"

func reqID(ctx context.Context) string {
	if id := middleware.GetReqID(ctx); id != "" {
		return id
	}
	return "-"
}

func writeJSON(logger logx.Logger, w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		logger.Warn("json encode error", logx.String("req_id", reqID(r.Context())), logx.Err(err))
	}
}

// ErrorResponse is the body of every error reply.
type ErrorResponse struct {
	Error  string `json:"error"`
	Detail string `json:"detail,omitempty"`
}

func writeError(logger logx.Logger, w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeErrorDetail(logger, w, r, status, msg, "")
}

func writeErrorDetail(logger logx.Logger, w http.ResponseWriter, r *http.Request, status int, msg, detail string) {
	logger.Debug("http error",
		logx.String("req_id", reqID(r.Context())),
		logx.Int("status", status),
		logx.String("msg", msg),
		logx.String("detail", detail),
	)
	writeJSON(logger, w, r, status, ErrorResponse{Error: msg, Detail: detail})
}

// statusOf maps a service error to an HTTP status and a stable message.
func statusOf(err error) (int, string) {
	switch {
	case errors.Is(err, apperr.ErrNotFound):
		return http.StatusNotFound, "not found"
	case errors.Is(err, apperr.ErrNullProperty):
		return http.StatusBadRequest, "missing required field"
	case errors.Is(err, apperr.ErrInvalid):
		return http.StatusBadRequest, "invalid input"
	case errors.Is(err, apperr.ErrInvalidRole):
		return http.StatusForbidden, "forbidden"
	case errors.Is(err, apperr.ErrUnauthorized):
		return http.StatusUnauthorized, "unauthorized"
	case errors.Is(err, apperr.ErrDeletionImpossible):
		return http.StatusConflict, "deletion impossible"
	case errors.Is(err, apperr.ErrAlreadyExists):
		return http.StatusConflict, "already exists"
	case errors.Is(err, apperr.ErrSimulatorRunning):
		return http.StatusServiceUnavailable, "simulator is running"
	case errors.Is(err, geocode.ErrUnavailable):
		return http.StatusServiceUnavailable, "geocoder unavailable"
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, "timeout"
	default:
		return http.StatusInternalServerError, "internal error"
	}
}

func writeServiceError(logger logx.Logger, w http.ResponseWriter, r *http.Request, err error) {
	status, msg := statusOf(err)
	if status == http.StatusServiceUnavailable {
		w.Header().Set("Retry-After", "1")
	}
	if status >= http.StatusInternalServerError && status != http.StatusServiceUnavailable {
		logger.Error("request failed",
			logx.String("req_id", reqID(r.Context())),
			logx.String("path", r.URL.Path),
			logx.Err(err),
		)
		writeError(logger, w, r, status, msg)
		return
	}
	writeErrorDetail(logger, w, r, status, msg, err.Error())
}

const (
	bodyLimit = 1 << 20
)

func decodeJSON[T any](logger logx.Logger, w http.ResponseWriter, r *http.Request, dst *T) bool {
	r.Body = http.MaxBytesReader(w, r.Body, bodyLimit)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		writeErrorDetail(logger, w, r, http.StatusBadRequest, "invalid json", err.Error())
		return false
	}
	if err := dec.Decode(new(struct{})); err != io.EOF {
		writeError(logger, w, r, http.StatusBadRequest, "invalid json: trailing data")
		return false
	}
	return true
}

func idFromURL(r *http.Request, name string) (int64, error) {
	idStr := chi.URLParam(r, name)
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.New("invalid id")
	}
	return id, nil
}

// requester returns the id from RequesterHeader; zero when absent.
func requester(r *http.Request) (int64, error) {
	s := strings.TrimSpace(r.Header.Get(RequesterHeader))
	if s == "" {
		return 0, nil
	}
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.New("invalid requester id")
	}
	return id, nil
}

func queryBool(r *http.Request, name string) (*bool, error) {
	s := r.URL.Query().Get(name)
	if s == "" {
		return nil, nil
	}
	b, err := strconv.ParseBool(s)
	if err != nil {
		return nil, err
	}
	return &b, nil
}
