package types

// EventType classifies a progress notification
type EventType string

const (
	EventScan   EventType = "scan"
	EventFound  EventType = "found"
	EventRename EventType = "rename"
	EventCreate EventType = "create"
	EventMove   EventType = "move"
	EventSkip   EventType = "skip"
)

// Event is a single progress line emitted while normalizing a directory.
// Messages with a rename use the "Label: old → new" shape.
type Event struct {
	Type    EventType
	Message string
	Path    string
}

// EventHandler receives progress events
type EventHandler func(Event)
