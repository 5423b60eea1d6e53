package game

import (
	"sync"
	"time"
)

// GameEvent represents anything that changes the active round
type GameEvent interface {
	EventType() EventType
	Timestamp() time.Time
	// Snapshot returns the round as it was right after the event.
	Snapshot() Round
}

// ModeChangeEvent is published when the opponent mode changes
type ModeChangeEvent struct {
	From      Mode
	To        Mode
	Round     Round
	timestamp time.Time
}

func (e ModeChangeEvent) EventType() EventType { return EventTypeModeChange }
func (e ModeChangeEvent) Timestamp() time.Time { return e.timestamp }
func (e ModeChangeEvent) Snapshot() Round      { return e.Round }

// NewModeChangeEvent creates a new mode change event
func NewModeChangeEvent(from, to Mode, round Round, at time.Time) ModeChangeEvent {
	return ModeChangeEvent{From: from, To: to, Round: round, timestamp: at}
}

// MoveSelectedEvent is published when a seat commits a move
type MoveSelectedEvent struct {
	Seat      Seat
	Move      Move
	Round     Round
	timestamp time.Time
}

func (e MoveSelectedEvent) EventType() EventType { return EventTypeMoveSelected }
func (e MoveSelectedEvent) Timestamp() time.Time { return e.timestamp }
func (e MoveSelectedEvent) Snapshot() Round      { return e.Round }

// NewMoveSelectedEvent creates a new move selected event
func NewMoveSelectedEvent(seat Seat, move Move, round Round, at time.Time) MoveSelectedEvent {
	return MoveSelectedEvent{Seat: seat, Move: move, Round: round, timestamp: at}
}

// WaitingEvent is published when a friend-mode round waits for the friend
type WaitingEvent struct {
	Round     Round
	timestamp time.Time
}

func (e WaitingEvent) EventType() EventType { return EventTypeWaiting }
func (e WaitingEvent) Timestamp() time.Time { return e.timestamp }
func (e WaitingEvent) Snapshot() Round      { return e.Round }

// NewWaitingEvent creates a new waiting event
func NewWaitingEvent(round Round, at time.Time) WaitingEvent {
	return WaitingEvent{Round: round, timestamp: at}
}

// OutcomeEvent is published once per round, when both moves are known
type OutcomeEvent struct {
	Round     Round
	timestamp time.Time
}

func (e OutcomeEvent) EventType() EventType { return EventTypeOutcome }
func (e OutcomeEvent) Timestamp() time.Time { return e.timestamp }
func (e OutcomeEvent) Snapshot() Round      { return e.Round }

// NewOutcomeEvent creates a new outcome event
func NewOutcomeEvent(round Round, at time.Time) OutcomeEvent {
	return OutcomeEvent{Round: round, timestamp: at}
}

// RevealEvent is published when the reveal delay elapses for a current round
type RevealEvent struct {
	Round     Round
	timestamp time.Time
}

func (e RevealEvent) EventType() EventType { return EventTypeReveal }
func (e RevealEvent) Timestamp() time.Time { return e.timestamp }
func (e RevealEvent) Snapshot() Round      { return e.Round }

// NewRevealEvent creates a new reveal event
func NewRevealEvent(round Round, at time.Time) RevealEvent {
	return RevealEvent{Round: round, timestamp: at}
}

// ResetEvent is published when a round is replaced by a fresh one
type ResetEvent struct {
	PreviousID uint64
	Round      Round
	timestamp  time.Time
}

func (e ResetEvent) EventType() EventType { return EventTypeReset }
func (e ResetEvent) Timestamp() time.Time { return e.timestamp }
func (e ResetEvent) Snapshot() Round      { return e.Round }

// NewResetEvent creates a new reset event
func NewResetEvent(previousID uint64, round Round, at time.Time) ResetEvent {
	return ResetEvent{PreviousID: previousID, Round: round, timestamp: at}
}

// EventSubscriber can subscribe to game events
type EventSubscriber interface {
	OnEvent(event GameEvent)
}

// EventSubscriberFunc adapts a function to EventSubscriber.
type EventSubscriberFunc func(event GameEvent)

func (f EventSubscriberFunc) OnEvent(event GameEvent) { f(event) }

// EventBus manages event publishing and subscription
type EventBus interface {
	Subscribe(subscriber EventSubscriber)
	Unsubscribe(subscriber EventSubscriber)
	Publish(event GameEvent)
}

// SimpleEventBus is a basic in-memory event bus implementation. Reveals are
// published from the clock's goroutine, so the subscriber list is guarded.
type SimpleEventBus struct {
	mu          sync.RWMutex
	subscribers []EventSubscriber
}

// NewEventBus creates a new event bus
func NewEventBus() *SimpleEventBus {
	return &SimpleEventBus{
		subscribers: make([]EventSubscriber, 0),
	}
}

// Subscribe adds a subscriber to receive events
func (bus *SimpleEventBus) Subscribe(subscriber EventSubscriber) {
	bus.mu.Lock()
	defer bus.mu.Unlock()
	bus.subscribers = append(bus.subscribers, subscriber)
}

// Unsubscribe removes a subscriber from receiving events. Subscribers must be
// comparable; EventSubscriberFunc values cannot be unsubscribed.
func (bus *SimpleEventBus) Unsubscribe(subscriber EventSubscriber) {
	bus.mu.Lock()
	defer bus.mu.Unlock()
	for i, sub := range bus.subscribers {
		if sub == subscriber {
			bus.subscribers = append(bus.subscribers[:i:i], bus.subscribers[i+1:]...)
			break
		}
	}
}

// Publish sends an event to all subscribers in subscription order
func (bus *SimpleEventBus) Publish(event GameEvent) {
	bus.mu.RLock()
	subscribers := make([]EventSubscriber, len(bus.subscribers))
	copy(subscribers, bus.subscribers)
	bus.mu.RUnlock()

	for _, subscriber := range subscribers {
		subscriber.OnEvent(event)
	}
}
