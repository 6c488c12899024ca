package kafka

import (
	"encoding/json"
	"strconv"
	"time"

	"volunteer-dispatch/internal/notify"
)

// EventDTO is the wire form of a change notification.
type EventDTO struct {
	Entity string    `json:"entity"`
	ID     *int64    `json:"id,omitempty"`
	Kind   string    `json:"kind"`
	Clock  time.Time `json:"clock"`
}

// FromChange converts a feed change to its wire form.
func FromChange(c notify.Change) EventDTO {
	return EventDTO{Entity: c.Entity, ID: c.ID, Kind: c.Kind, Clock: c.Clock.UTC()}
}

// Key groups events of one record on the same partition.
func (e EventDTO) Key() string {
	if e.ID == nil {
		return e.Entity
	}
	return e.Entity + ":" + strconv.FormatInt(*e.ID, 10)
}

// Encode marshals the event to JSON.
func (e EventDTO) Encode() ([]byte, error) {
	return json.Marshal(e)
}
