package game

// Outcome is the result of a round from the player's point of view.
type Outcome int

const (
	Draw Outcome = iota
	PlayerWins
	PlayerLoses
)

// String returns the string representation of the outcome
func (o Outcome) String() string {
	switch o {
	case Draw:
		return "draw"
	case PlayerWins:
		return "player_wins"
	case PlayerLoses:
		return "player_loses"
	default:
		return "unknown"
	}
}

// Message returns the text shown to the player for the outcome.
func (o Outcome) Message() string {
	switch o {
	case PlayerWins:
		return "You Win!"
	case PlayerLoses:
		return "You Lose!"
	default:
		return "It's a draw!"
	}
}

// outcomeByDistance maps the cyclic distance from the opponent's move to the
// player's move onto an outcome. Distance 1 means the player's move is the
// next one in Moves, which beats the opponent's.
var outcomeByDistance = [len(Moves)]Outcome{Draw, PlayerWins, PlayerLoses}

// DetermineOutcome decides a round. Both moves must be valid; passing NoMove
// is a programming error and panics.
func DetermineOutcome(player, opponent Move) Outcome {
	if !player.Valid() || !opponent.Valid() {
		panic("game: DetermineOutcome called with an unset move")
	}
	n := len(Moves)
	return outcomeByDistance[(player.index()-opponent.index()+n)%n]
}
