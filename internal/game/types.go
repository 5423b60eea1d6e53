package game

import (
	"fmt"
	"strings"
)

// Move represents a hand shape. The zero value NoMove means "not chosen yet".
type Move int

const (
	NoMove Move = iota
	Rock
	Paper
	Scissors
)

// Moves lists the playable moves in cyclic order: each move beats the one
// before it, wrapping around.
var Moves = [3]Move{Rock, Paper, Scissors}

// String returns the string representation of the move
func (m Move) String() string {
	switch m {
	case NoMove:
		return "none"
	case Rock:
		return "rock"
	case Paper:
		return "paper"
	case Scissors:
		return "scissors"
	default:
		return fmt.Sprintf("move(%d)", int(m))
	}
}

// Glyph returns the symbol used to display the move.
func (m Move) Glyph() string {
	switch m {
	case Rock:
		return "✊"
	case Paper:
		return "✋"
	case Scissors:
		return "✌️"
	default:
		return "❔"
	}
}

// Valid reports whether m is one of the three playable moves.
func (m Move) Valid() bool {
	return m >= Rock && m <= Scissors
}

// index returns the position of m in Moves.
func (m Move) index() int {
	return int(m - Rock)
}

// ParseMove parses a move name, accepting the full name or its first letter.
func ParseMove(s string) (Move, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "rock", "r":
		return Rock, nil
	case "paper", "p":
		return Paper, nil
	case "scissors", "s":
		return Scissors, nil
	default:
		return NoMove, fmt.Errorf("unknown move %q", s)
	}
}

// Mode selects who the player is up against.
type Mode int

const (
	VsComputer Mode = iota
	VsFriend
)

// String returns the string representation of the mode
func (m Mode) String() string {
	switch m {
	case VsComputer:
		return "computer"
	case VsFriend:
		return "friend"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// OpponentName returns the label shown above the opponent's move.
func (m Mode) OpponentName() string {
	if m == VsFriend {
		return "Friend"
	}
	return "Computer"
}

// Toggle returns the other mode.
func (m Mode) Toggle() Mode {
	if m == VsFriend {
		return VsComputer
	}
	return VsFriend
}

// ParseMode parses "computer" or "friend".
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "computer", "cpu":
		return VsComputer, nil
	case "friend":
		return VsFriend, nil
	default:
		return VsComputer, fmt.Errorf("unknown mode %q", s)
	}
}
