package tui

import (
	"context"
	"io"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/rockpaperscissors/internal/game"
)

func quietLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.ErrorLevel}) // Quiet logger for tests
}

func newTestModel(t *testing.T, opponent ...game.Move) (*TUIModel, *game.Controller, *quartz.Mock) {
	t.Helper()
	ConfigureColor(false)

	mClock := quartz.NewMock(t)
	controller := game.NewController(game.Options{
		Clock:    mClock,
		Opponent: game.NewFixedOpponent(opponent...),
	})
	m := NewTUIModel(controller, quietLogger())
	t.Cleanup(m.Close)

	m.Update(tea.WindowSizeMsg{Width: 80, Height: 40})
	return m, controller, mClock
}

func press(m *TUIModel, k string) tea.Cmd {
	var msg tea.KeyMsg
	switch k {
	case "enter":
		msg = tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		msg = tea.KeyMsg{Type: tea.KeyTab}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	}
	_, cmd := m.Update(msg)
	return cmd
}

// drain delivers every buffered controller event to the model
func drain(m *TUIModel) {
	for {
		select {
		case event := <-m.bridge.events:
			m.Update(RoundEventMsg{Event: event})
		default:
			return
		}
	}
}

func TestTUIModelView(t *testing.T) {
	t.Run("loading until sized", func(t *testing.T) {
		controller := game.NewController(game.Options{Clock: quartz.NewMock(t)})
		m := NewTUIModel(controller, quietLogger())
		defer m.Close()

		assert.Equal(t, "Loading...", m.View())
	})

	t.Run("initial screen", func(t *testing.T) {
		m, _, _ := newTestModel(t)
		view := m.View()

		assert.Contains(t, view, "Rock Paper Scissors")
		assert.Contains(t, view, "Computer")
		assert.Contains(t, view, "Friend")
		assert.Contains(t, view, "Choose your move!")
		assert.Contains(t, view, "rock")
		assert.NotContains(t, view, "Game Over")
	})
}

func TestTUIModelVsComputer(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	m, controller, mClock := newTestModel(t, game.Scissors)

	press(m, "r")
	round := controller.Round()
	require.True(t, round.Ready)
	assert.Equal(t, game.PlayerWins, round.Outcome)

	view := m.View()
	assert.Contains(t, view, "You Win!", "outcome text is available before the reveal")
	assert.NotContains(t, view, "Game Over")

	mClock.Advance(game.DefaultRevealDelay).MustWait(ctx)
	drain(m)

	require.True(t, m.Round().Revealed)
	view = m.View()
	assert.Contains(t, view, "Game Over")
	assert.Contains(t, view, "Play Again")

	assert.Equal(t, []string{
		"You choose ✊",
		"Computer chooses ✌️",
		"✊ vs ✌️: You Win!",
		"Game Over: You Win!",
	}, m.GameLog())

	t.Run("moves are inert while the result is shown", func(t *testing.T) {
		press(m, "p")
		press(m, "tab")
		assert.Equal(t, round.ID, controller.Round().ID)
		assert.Equal(t, game.VsComputer, controller.Round().Mode)
	})

	t.Run("play again resets the round", func(t *testing.T) {
		press(m, "enter")
		r := controller.Round()
		assert.False(t, r.Ready)
		assert.Equal(t, game.NoMove, r.PlayerMove)
		assert.Equal(t, round.ID+1, r.ID)

		view := m.View()
		assert.Contains(t, view, "Choose your move!")
		assert.NotContains(t, view, "Play Again")
	})
}

func TestTUIModelVsFriend(t *testing.T) {
	m, controller, _ := newTestModel(t)

	press(m, "tab")
	assert.Equal(t, game.VsFriend, controller.Round().Mode)

	press(m, "s")
	drain(m)
	assert.True(t, m.Round().Waiting())
	assert.Contains(t, m.View(), "Waiting for friend to choose...")
	assert.Contains(t, m.GameLog(), "You choose ❔", "player's move is hidden from the friend")

	press(m, "1")
	drain(m)
	r := m.Round()
	require.True(t, r.Ready)
	assert.Equal(t, game.Scissors, r.PlayerMove)
	assert.Equal(t, game.Rock, r.OpponentMove)
	assert.Equal(t, game.PlayerLoses, r.Outcome)
	assert.Contains(t, m.View(), "You Lose!")
}

func TestTUIModelDismissBeforeReveal(t *testing.T) {
	m, controller, _ := newTestModel(t, game.Rock)

	press(m, "r")
	// Enter is only bound while the dialog is shown
	press(m, "enter")
	assert.True(t, controller.Round().Ready)
}

func TestTUIModelQuit(t *testing.T) {
	m, _, _ := newTestModel(t)

	cmd := press(m, "q")
	require.NotNil(t, cmd)
	_, ok := cmd().(tea.QuitMsg)
	assert.True(t, ok)
	assert.Empty(t, m.View())
}

func TestTUIModelHelp(t *testing.T) {
	m, _, _ := newTestModel(t)

	assert.Contains(t, m.View(), "switch opponent")
	assert.NotContains(t, m.View(), "scroll log")

	press(m, "?")
	assert.Contains(t, m.View(), "scroll log")
}

func TestBridge(t *testing.T) {
	t.Run("delivers events in order", func(t *testing.T) {
		b := NewBridge(4, quietLogger())
		b.OnEvent(game.NewWaitingEvent(game.Round{ID: 1}, time.Now()))
		b.OnEvent(game.NewResetEvent(1, game.Round{ID: 2}, time.Now()))

		msg, ok := b.Wait()().(RoundEventMsg)
		require.True(t, ok)
		assert.Equal(t, game.EventTypeWaiting, msg.Event.EventType())

		msg, ok = b.Wait()().(RoundEventMsg)
		require.True(t, ok)
		assert.Equal(t, game.EventTypeReset, msg.Event.EventType())
	})

	t.Run("full buffer never blocks", func(t *testing.T) {
		b := NewBridge(1, quietLogger())
		done := make(chan struct{})
		go func() {
			b.OnEvent(game.NewWaitingEvent(game.Round{ID: 1}, time.Now()))
			b.OnEvent(game.NewWaitingEvent(game.Round{ID: 2}, time.Now()))
			close(done)
		}()

		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("OnEvent blocked")
		}

		msg := b.Wait()().(RoundEventMsg)
		assert.Equal(t, uint64(1), msg.Event.Snapshot().ID)
	})
}
