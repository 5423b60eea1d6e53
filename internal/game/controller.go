package game

import (
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
)

// DefaultRevealDelay is how long the outcome stays unrevealed after a round
// becomes ready.
const DefaultRevealDelay = time.Second

// Options configures a Controller. Zero values select the defaults.
type Options struct {
	Mode        Mode
	RevealDelay time.Duration
	Clock       quartz.Clock
	Opponent    Opponent
	Logger      *log.Logger
}

// Controller owns the active round. It is safe for concurrent use; reveals
// arrive on the clock's goroutine.
type Controller struct {
	mu          sync.Mutex
	round       Round
	revealTimer *quartz.Timer

	revealDelay time.Duration
	clock       quartz.Clock
	opponent    Opponent
	logger      *log.Logger
	bus         *SimpleEventBus
}

// NewController creates a controller with a fresh round in opts.Mode
func NewController(opts Options) *Controller {
	if opts.RevealDelay <= 0 {
		opts.RevealDelay = DefaultRevealDelay
	}
	if opts.Clock == nil {
		opts.Clock = quartz.NewReal()
	}
	if opts.Opponent == nil {
		opts.Opponent = NewRandomOpponent(0)
	}
	if opts.Logger == nil {
		opts.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}

	return &Controller{
		round:       newRound(1, opts.Mode),
		revealDelay: opts.RevealDelay,
		clock:       opts.Clock,
		opponent:    opts.Opponent,
		logger:      opts.Logger.WithPrefix("controller"),
		bus:         NewEventBus(),
	}
}

// Round returns a snapshot of the active round
func (c *Controller) Round() Round {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.round
}

// RevealDelay returns the delay between a round becoming ready and its reveal
func (c *Controller) RevealDelay() time.Duration {
	return c.revealDelay
}

// Subscribe registers a subscriber for round events
func (c *Controller) Subscribe(subscriber EventSubscriber) {
	c.bus.Subscribe(subscriber)
}

// Unsubscribe removes a subscriber
func (c *Controller) Unsubscribe(subscriber EventSubscriber) {
	c.bus.Unsubscribe(subscriber)
}

// SelectMove records a move for the round. Against the computer a single
// selection completes the round. Against a friend the first selection is the
// player's and the second the friend's.
//
// Selecting with a mode other than the round's switches modes first, which
// discards a round that already has moves. Selections on a ready round and
// invalid moves are ignored; the returned bool reports whether choice was
// recorded.
func (c *Controller) SelectMove(mode Mode, choice Move) (Round, bool) {
	if !choice.Valid() {
		c.logger.Debug("Ignoring invalid move", "move", choice)
		return c.Round(), false
	}

	c.mu.Lock()
	now := c.clock.Now()
	var events []GameEvent

	if mode != c.round.Mode {
		events = append(events, c.switchModeLocked(mode, now)...)
	}

	if c.round.Ready {
		snapshot := c.round
		c.mu.Unlock()
		c.logger.Debug("Ignoring move on completed round", "round", snapshot.ID, "move", choice)
		c.publish(events)
		return snapshot, false
	}

	switch mode {
	case VsFriend:
		if c.round.PlayerMove == NoMove {
			c.round.PlayerMove = choice
			c.round.Message = MessageWaitForFriend
			events = append(events,
				NewMoveSelectedEvent(SeatPlayer, choice, c.round, now),
				NewWaitingEvent(c.round, now))
		} else {
			c.round.OpponentMove = choice
			events = append(events, NewMoveSelectedEvent(SeatFriend, choice, c.round, now))
			events = append(events, c.completeLocked(now))
		}
	default:
		c.round.PlayerMove = choice
		events = append(events, NewMoveSelectedEvent(SeatPlayer, choice, c.round, now))
		c.round.OpponentMove = c.opponent.NextMove()
		events = append(events, NewMoveSelectedEvent(SeatComputer, c.round.OpponentMove, c.round, now))
		events = append(events, c.completeLocked(now))
	}

	snapshot := c.round
	c.mu.Unlock()

	c.logger.Debug("Move selected", "round", snapshot.ID, "mode", mode, "move", choice, "ready", snapshot.Ready)
	c.publish(events)
	return snapshot, true
}

// ResetRound discards the active round and starts a new one in the same mode.
// A pending reveal for the discarded round never fires.
func (c *Controller) ResetRound() Round {
	c.mu.Lock()
	event := c.resetLocked(c.clock.Now())
	snapshot := c.round
	c.mu.Unlock()

	c.logger.Debug("Round reset", "previous", event.PreviousID, "round", snapshot.ID)
	c.bus.Publish(event)
	return snapshot
}

// SetMode switches the opponent mode. A round that already has a move is
// discarded; an untouched round just changes mode.
func (c *Controller) SetMode(mode Mode) Round {
	c.mu.Lock()
	if mode == c.round.Mode {
		snapshot := c.round
		c.mu.Unlock()
		return snapshot
	}
	events := c.switchModeLocked(mode, c.clock.Now())
	snapshot := c.round
	c.mu.Unlock()

	c.logger.Debug("Mode changed", "mode", mode, "round", snapshot.ID)
	c.publish(events)
	return snapshot
}

// Close stops any pending reveal. The controller stays usable.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stopRevealLocked()
}

func (c *Controller) switchModeLocked(mode Mode, now time.Time) []GameEvent {
	from := c.round.Mode
	var events []GameEvent
	c.round.Mode = mode
	if c.round.Started() {
		events = append(events, c.resetLocked(now))
	}
	return append(events, NewModeChangeEvent(from, mode, c.round, now))
}

// completeLocked marks the round ready, decides it and schedules the reveal.
func (c *Controller) completeLocked(now time.Time) GameEvent {
	c.round.Ready = true
	c.round.Outcome = DetermineOutcome(c.round.PlayerMove, c.round.OpponentMove)
	c.round.Message = c.round.Outcome.Message()

	id := c.round.ID
	at := now.Add(c.revealDelay)
	c.stopRevealLocked()
	c.revealTimer = c.clock.AfterFunc(c.revealDelay, func() {
		c.reveal(id, at)
	}, "controller", "reveal")

	return NewOutcomeEvent(c.round, now)
}

// reveal marks round id as revealed if it is still the active round. It runs
// inside the clock callback, so it takes the scheduled time rather than
// reading the clock.
func (c *Controller) reveal(id uint64, at time.Time) {
	c.mu.Lock()
	if c.round.ID != id || !c.round.Ready || c.round.Revealed {
		current := c.round.ID
		c.mu.Unlock()
		c.logger.Debug("Dropping stale reveal", "round", id, "current", current)
		return
	}
	c.round.Revealed = true
	c.revealTimer = nil
	snapshot := c.round
	c.mu.Unlock()

	c.logger.Debug("Revealing outcome", "round", id, "outcome", snapshot.Outcome)
	c.bus.Publish(NewRevealEvent(snapshot, at))
}

func (c *Controller) resetLocked(now time.Time) ResetEvent {
	c.stopRevealLocked()
	previous := c.round.ID
	c.round = newRound(previous+1, c.round.Mode)
	return NewResetEvent(previous, c.round, now)
}

func (c *Controller) stopRevealLocked() {
	if c.revealTimer != nil {
		c.revealTimer.Stop()
		c.revealTimer = nil
	}
}

func (c *Controller) publish(events []GameEvent) {
	for _, event := range events {
		c.bus.Publish(event)
	}
}
