package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"volunteer-dispatch/internal/logx"
	"volunteer-dispatch/internal/notify"
)

type eventDTO struct {
	Entity string    `json:"entity"`
	ID     *int64    `json:"id,omitempty"`
	Kind   string    `json:"kind"`
	Clock  time.Time `json:"clock"`
}

// EventsHandler streams change notifications as server-sent events.
type EventsHandler struct {
	feed      changeFeed
	logger    logx.Logger
	heartbeat time.Duration
}

// NewEventsHandler creates an EventsHandler.
func NewEventsHandler(logger logx.Logger, feed changeFeed) *EventsHandler {
	return &EventsHandler{feed: feed, logger: logger, heartbeat: 15 * time.Second}
}

// Stream handles GET /events.
func (h *EventsHandler) Stream(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		writeError(h.logger, w, r, http.StatusInternalServerError, "streaming unsupported")
		return
	}
	events, cancel := h.feed.Subscribe(64)
	defer cancel()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	ticker := time.NewTicker(h.heartbeat)
	defer ticker.Stop()
	for {
		select {
		case <-r.Context().Done():
			return
		case <-ticker.C:
			if _, err := fmt.Fprint(w, ": ping\n\n"); err != nil {
				return
			}
		case c, ok := <-events:
			if !ok {
				return
			}
			if err := writeEvent(w, c); err != nil {
				h.logger.Debug("sse write failed", logx.String("req_id", reqID(r.Context())), logx.Err(err))
				return
			}
		}
		flusher.Flush()
	}
}

func writeEvent(w http.ResponseWriter, c notify.Change) error {
	body, err := json.Marshal(eventDTO{Entity: c.Entity, ID: c.ID, Kind: c.Kind, Clock: c.Clock.UTC()})
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "event: %s\ndata: %s\n\n", c.Entity, body)
	return err
}
