package game

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetermineOutcome(t *testing.T) {
	tests := []struct {
		player   Move
		opponent Move
		expected Outcome
	}{
		{Rock, Rock, Draw},
		{Rock, Paper, PlayerLoses},
		{Rock, Scissors, PlayerWins},
		{Paper, Rock, PlayerWins},
		{Paper, Paper, Draw},
		{Paper, Scissors, PlayerLoses},
		{Scissors, Rock, PlayerLoses},
		{Scissors, Paper, PlayerWins},
		{Scissors, Scissors, Draw},
	}

	for _, test := range tests {
		t.Run(fmt.Sprintf("%s vs %s", test.player, test.opponent), func(t *testing.T) {
			assert.Equal(t, test.expected, DetermineOutcome(test.player, test.opponent))
		})
	}
}

func TestDetermineOutcomeProperties(t *testing.T) {
	t.Run("equal moves draw", func(t *testing.T) {
		for _, m := range Moves {
			assert.Equal(t, Draw, DetermineOutcome(m, m), "move: %s", m)
		}
	})

	t.Run("anti-symmetric", func(t *testing.T) {
		for _, a := range Moves {
			for _, b := range Moves {
				ab := DetermineOutcome(a, b)
				ba := DetermineOutcome(b, a)
				assert.Equal(t, ab == PlayerWins, ba == PlayerLoses, "%s vs %s", a, b)
				assert.Equal(t, ab == Draw, ba == Draw, "%s vs %s", a, b)
			}
		}
	})

	t.Run("each move beats exactly one other", func(t *testing.T) {
		for _, a := range Moves {
			wins := 0
			for _, b := range Moves {
				if DetermineOutcome(a, b) == PlayerWins {
					wins++
				}
			}
			assert.Equal(t, 1, wins, "move: %s", a)
		}
	})

	t.Run("unset move panics", func(t *testing.T) {
		assert.Panics(t, func() { DetermineOutcome(NoMove, Rock) })
		assert.Panics(t, func() { DetermineOutcome(Paper, NoMove) })
	})
}

func TestOutcomeMessage(t *testing.T) {
	assert.Equal(t, "It's a draw!", Draw.Message())
	assert.Equal(t, "You Win!", PlayerWins.Message())
	assert.Equal(t, "You Lose!", PlayerLoses.Message())
}

func TestParseMove(t *testing.T) {
	tests := []struct {
		input    string
		expected Move
	}{
		{"rock", Rock},
		{"R", Rock},
		{" Paper ", Paper},
		{"p", Paper},
		{"scissors", Scissors},
		{"s", Scissors},
	}

	for _, test := range tests {
		m, err := ParseMove(test.input)
		require.NoError(t, err, "input: %q", test.input)
		assert.Equal(t, test.expected, m, "input: %q", test.input)
	}

	_, err := ParseMove("lizard")
	assert.Error(t, err)
}

func TestParseMode(t *testing.T) {
	m, err := ParseMode("friend")
	require.NoError(t, err)
	assert.Equal(t, VsFriend, m)

	m, err = ParseMode("Computer")
	require.NoError(t, err)
	assert.Equal(t, VsComputer, m)

	_, err = ParseMode("online")
	assert.Error(t, err)

	assert.Equal(t, VsFriend, VsComputer.Toggle())
	assert.Equal(t, VsComputer, VsFriend.Toggle())
}

func TestMoveGlyph(t *testing.T) {
	assert.Equal(t, "✊", Rock.Glyph())
	assert.Equal(t, "✋", Paper.Glyph())
	assert.Equal(t, "✌️", Scissors.Glyph())
	assert.Equal(t, "❔", NoMove.Glyph())
	assert.False(t, NoMove.Valid())
	assert.False(t, Move(7).Valid())
}
