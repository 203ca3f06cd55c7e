package websocket

import "encoding/json"

// ─── Events (Server → Client) ───────────────────────────────────────

type Event string

const (
	EventReady Event = "ready"
	EventError Event = "error"
)

// ReadyMessage is sent once the subscription is live.
type ReadyMessage struct {
	Event Event `json:"event"`
}

// ActivityMessage wraps one test attempt event. Event mirrors the event type
// so clients can switch on a single field.
type ActivityMessage struct {
	Event Event           `json:"event"`
	Data  json.RawMessage `json:"data"`
}

type ErrorResponse struct {
	Event Event  `json:"event"`
	Error string `json:"error"`
}

// peekType extracts the event type published with an activity payload.
type peekType struct {
	Event Event `json:"event"`
}

// NewActivityMessage builds the client frame for a published payload.
func NewActivityMessage(payload []byte) (ActivityMessage, error) {
	var p peekType
	if err := json.Unmarshal(payload, &p); err != nil {
		return ActivityMessage{}, err
	}
	return ActivityMessage{Event: p.Event, Data: payload}, nil
}
