// Package game implements the round state machine for Rock-Paper-Scissors.
//
// The main type is Controller, which owns the single active Round, collects
// move selections, decides the outcome and schedules the delayed reveal of
// the result.
//
// # Basic Usage
//
// Play a round against the computer:
//
//	c := game.NewController(game.Options{})
//	round, _ := c.SelectMove(game.VsComputer, game.Rock)
//	fmt.Println(round.Message) // "You Win!", "You Lose!" or "It's a draw!"
//	c.ResetRound()
//
// Against a friend the first selection records the player's move and the
// second records the friend's move:
//
//	c.SelectMove(game.VsFriend, game.Scissors) // "Waiting for friend to choose..."
//	c.SelectMove(game.VsFriend, game.Rock)     // "You Lose!"
//
// # Deterministic Testing
//
// Options accepts a quartz.Clock and an Opponent. Tests inject a mock clock
// to control the reveal delay and a FixedOpponent to script the computer:
//
//	clock := quartz.NewMock(t)
//	c := game.NewController(game.Options{
//	    Clock:    clock,
//	    Opponent: game.NewFixedOpponent(game.Scissors),
//	})
//
// # Reveal
//
// Outcome text is available in Round.Message as soon as the round is ready.
// The reveal (Round.Revealed) follows after Options.RevealDelay. Each round
// carries a generation ID; a reveal scheduled for an earlier generation is
// discarded, so a reset before the delay elapses never surfaces a stale
// result.
package game
