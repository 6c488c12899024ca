package handlers

import (
	"net/http"
	"time"

	"volunteer-dispatch/internal/logx"
	"volunteer-dispatch/internal/service/clock"
)

// AdminHandler serves the clock, risk window, simulator and dataset controls.
type AdminHandler struct {
	admin           adminUsecase
	logger          logx.Logger
	defaultInterval int
}

// NewAdminHandler creates an AdminHandler.
func NewAdminHandler(logger logx.Logger, admin adminUsecase) *AdminHandler {
	return &AdminHandler{admin: admin, logger: logger}
}

// WithDefaultInterval sets the simulator interval used when a start request omits one.
func (h *AdminHandler) WithDefaultInterval(minutes int) *AdminHandler {
	h.defaultInterval = minutes
	return h
}

// Clock handles GET /admin/clock.
func (h *AdminHandler) Clock(w http.ResponseWriter, r *http.Request) {
	writeJSON(h.logger, w, r, http.StatusOK, clockResponse{Clock: h.admin.Clock()})
}

// Advance handles POST /admin/clock/advance.
func (h *AdminHandler) Advance(w http.ResponseWriter, r *http.Request) {
	var req advanceRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}
	u, err := clock.ParseUnit(req.Unit)
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	t, err := h.admin.AdvanceClock(r.Context(), u)
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, clockResponse{Clock: t})
}

// RiskWindow handles GET /admin/risk-window.
func (h *AdminHandler) RiskWindow(w http.ResponseWriter, r *http.Request) {
	writeJSON(h.logger, w, r, http.StatusOK, riskWindowDTO{RiskWindow: h.admin.RiskWindow().String()})
}

// SetRiskWindow handles PUT /admin/risk-window with a Go duration string.
func (h *AdminHandler) SetRiskWindow(w http.ResponseWriter, r *http.Request) {
	var req riskWindowDTO
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}
	d, err := time.ParseDuration(req.RiskWindow)
	if err != nil {
		writeErrorDetail(h.logger, w, r, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	if err := h.admin.SetRiskWindow(r.Context(), d); err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, riskWindowDTO{RiskWindow: d.String()})
}

// Simulator handles GET /admin/simulator.
func (h *AdminHandler) Simulator(w http.ResponseWriter, r *http.Request) {
	writeJSON(h.logger, w, r, http.StatusOK, simulatorResponse{Running: h.admin.SimulatorRunning()})
}

// StartSimulator handles POST /admin/simulator/start.
func (h *AdminHandler) StartSimulator(w http.ResponseWriter, r *http.Request) {
	var req simulatorRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}
	if req.IntervalMinutes == 0 {
		req.IntervalMinutes = h.defaultInterval
	}
	if err := h.admin.StartSimulator(req.IntervalMinutes); err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, simulatorResponse{Running: h.admin.SimulatorRunning()})
}

// StopSimulator handles POST /admin/simulator/stop.
func (h *AdminHandler) StopSimulator(w http.ResponseWriter, r *http.Request) {
	h.admin.StopSimulator()
	writeJSON(h.logger, w, r, http.StatusOK, simulatorResponse{Running: h.admin.SimulatorRunning()})
}

// Reset handles POST /admin/reset.
func (h *AdminHandler) Reset(w http.ResponseWriter, r *http.Request) {
	if err := h.admin.Reset(r.Context()); err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Initialize handles POST /admin/initialize.
func (h *AdminHandler) Initialize(w http.ResponseWriter, r *http.Request) {
	if err := h.admin.Initialize(r.Context()); err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
