package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/lox/rockpaperscissors/internal/game"
)

// DefaultBridgeBuffer is the number of events the bridge holds while the
// Bubble Tea loop is busy.
const DefaultBridgeBuffer = 64

// RoundEventMsg carries a controller event into the Bubble Tea loop
type RoundEventMsg struct {
	Event game.GameEvent
}

// Bridge forwards controller events to the Bubble Tea loop. Events are
// published synchronously from inside Update (for key presses) and from the
// clock goroutine (for reveals), so OnEvent must never block.
type Bridge struct {
	events chan game.GameEvent
	logger *log.Logger
}

// NewBridge creates a bridge with room for size pending events
func NewBridge(size int, logger *log.Logger) *Bridge {
	if size <= 0 {
		size = DefaultBridgeBuffer
	}
	return &Bridge{
		events: make(chan game.GameEvent, size),
		logger: logger.WithPrefix("bridge"),
	}
}

// OnEvent implements game.EventSubscriber
func (b *Bridge) OnEvent(event game.GameEvent) {
	select {
	case b.events <- event:
	default:
		// The model re-reads the round on every message, so only the
		// intermediate event is lost.
		b.logger.Warn("Dropping round event, buffer full", "type", event.EventType())
	}
}

// Wait returns a command that delivers the next event as a RoundEventMsg.
// The model re-arms it after every delivery.
func (b *Bridge) Wait() tea.Cmd {
	return func() tea.Msg {
		return RoundEventMsg{Event: <-b.events}
	}
}
