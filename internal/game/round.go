package game

// Status messages shown while a round is in progress.
const (
	MessageChooseMove    = "Choose your move!"
	MessageWaitForFriend = "Waiting for friend to choose..."
)

// Round is a snapshot of the active round. The Controller hands out copies;
// mutating one has no effect on the game.
type Round struct {
	// ID is the round generation. It starts at 1 and increases on every reset.
	ID uint64

	Mode         Mode
	PlayerMove   Move
	OpponentMove Move // computer's or friend's move
	Ready        bool

	// Outcome is only meaningful when Ready is true.
	Outcome  Outcome
	Message  string
	Revealed bool
}

func newRound(id uint64, mode Mode) Round {
	return Round{
		ID:      id,
		Mode:    mode,
		Message: MessageChooseMove,
	}
}

// Started reports whether any move has been recorded in the round.
func (r Round) Started() bool {
	return r.PlayerMove != NoMove || r.OpponentMove != NoMove
}

// Waiting reports whether a friend-mode round has the player's move and is
// waiting on the friend.
func (r Round) Waiting() bool {
	return r.Mode == VsFriend && r.PlayerMove != NoMove && !r.Ready
}

// VisiblePlayerMove returns the player's move as it may be displayed. In
// friend mode the move stays hidden until the friend has chosen too.
func (r Round) VisiblePlayerMove() Move {
	if r.Ready || r.Mode == VsComputer {
		return r.PlayerMove
	}
	return NoMove
}

// VisibleOpponentMove returns the opponent's move once the round is ready.
func (r Round) VisibleOpponentMove() Move {
	if r.Ready {
		return r.OpponentMove
	}
	return NoMove
}

// RevealPending reports whether the outcome is decided but not yet revealed.
func (r Round) RevealPending() bool {
	return r.Ready && !r.Revealed
}
