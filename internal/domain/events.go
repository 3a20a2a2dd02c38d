package domain

// Event types pushed to connected observers.
const (
	EventUpdateAll    = "UPDATE_ALL"
	EventNotification = "NOTIFICATION"
)

// Event is the structured message broadcast to every live observer after a
// mutation commits. Observers that miss events re-fetch state on reconnect.
type Event struct {
	Type    string `json:"type"`
	Message string `json:"message"`
	Payload any    `json:"payload,omitempty"`
}

func UpdateAll(message string) Event {
	return Event{Type: EventUpdateAll, Message: message}
}

func NotificationEvent(n Notification) Event {
	return Event{Type: EventNotification, Message: n.Message, Payload: n}
}
