package game

// EventType represents a game event type with type safety
type EventType string

// EventType constants for round events
const (
	EventTypeModeChange   EventType = "mode_changed"
	EventTypeMoveSelected EventType = "move_selected"
	EventTypeWaiting      EventType = "waiting"
	EventTypeOutcome      EventType = "outcome"
	EventTypeReveal       EventType = "reveal"
	EventTypeReset        EventType = "reset"
)

// String returns the string representation of the event type
func (et EventType) String() string {
	return string(et)
}

// Seat identifies who made a move.
type Seat string

const (
	SeatPlayer   Seat = "player"
	SeatFriend   Seat = "friend"
	SeatComputer Seat = "computer"
)
