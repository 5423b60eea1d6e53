package game

import (
	"fmt"

	"github.com/charmbracelet/log"
)

// FormattingOptions controls how events are formatted for different contexts
type FormattingOptions struct {
	ShowGlyphs bool // Render moves as ✊ ✋ ✌️ instead of names
	// HideSecretMoves masks friend-mode moves until the round is ready, for
	// output that both players can see.
	HideSecretMoves bool
}

// EventFormatter renders round events as single lines
type EventFormatter struct {
	opts FormattingOptions
}

// NewEventFormatter creates a new event formatter with the given options
func NewEventFormatter(opts FormattingOptions) *EventFormatter {
	return &EventFormatter{opts: opts}
}

// FormatEvent formats any game event. Unknown event types format as their
// type name.
func (ef *EventFormatter) FormatEvent(event GameEvent) string {
	switch e := event.(type) {
	case ModeChangeEvent:
		return fmt.Sprintf("Mode: %s -> %s", e.From, e.To)
	case MoveSelectedEvent:
		return ef.formatMoveSelected(e)
	case WaitingEvent:
		return e.Round.Message
	case OutcomeEvent:
		return fmt.Sprintf("%s vs %s: %s", ef.move(e.Round.PlayerMove), ef.move(e.Round.OpponentMove), e.Round.Outcome.Message())
	case RevealEvent:
		return fmt.Sprintf("Game Over: %s", e.Round.Message)
	case ResetEvent:
		return fmt.Sprintf("Round #%d: %s", e.Round.ID, e.Round.Message)
	default:
		return event.EventType().String()
	}
}

func (ef *EventFormatter) formatMoveSelected(e MoveSelectedEvent) string {
	move := ef.move(e.Move)
	if ef.opts.HideSecretMoves && e.Round.Mode == VsFriend && !e.Round.Ready {
		move = NoMove.Glyph()
	}
	switch e.Seat {
	case SeatPlayer:
		return fmt.Sprintf("You choose %s", move)
	case SeatFriend:
		return fmt.Sprintf("Friend chooses %s", move)
	default:
		return fmt.Sprintf("Computer chooses %s", move)
	}
}

func (ef *EventFormatter) move(m Move) string {
	if ef.opts.ShowGlyphs {
		return m.Glyph()
	}
	return m.String()
}

// EventLogger writes every event it receives to a structured logger.
type EventLogger struct {
	logger    *log.Logger
	formatter *EventFormatter
}

// NewEventLogger creates a subscriber that logs events with the "events" prefix
func NewEventLogger(logger *log.Logger) *EventLogger {
	return &EventLogger{
		logger:    logger.WithPrefix("events"),
		formatter: NewEventFormatter(FormattingOptions{}),
	}
}

// OnEvent implements EventSubscriber
func (l *EventLogger) OnEvent(event GameEvent) {
	round := event.Snapshot()
	l.logger.Info(l.formatter.FormatEvent(event),
		"type", event.EventType(),
		"round", round.ID,
		"mode", round.Mode,
		"ready", round.Ready)
}
