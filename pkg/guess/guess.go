// Package guess implements the number guessing game.
package guess

import (
	"math/rand/v2"

	"github.com/agentstation/mobileapp/pkg/constants"
	"github.com/agentstation/mobileapp/pkg/errors"
)

// ErrGameOver is returned by Guess once the game has been won or lost.
var ErrGameOver = errors.New("game is over")

// Outcome is the answer to one guess.
type Outcome int

// Outcome constants.
const (
	TooLow Outcome = iota
	TooHigh
	Correct
)

// String returns the hint shown to the player.
func (o Outcome) String() string {
	switch o {
	case TooLow:
		return "Too low! Try again."
	case TooHigh:
		return "Too high! Try again."
	case Correct:
		return "Correct!"
	}
	return "unknown"
}

// Game is a single round.
type Game struct {
	target      int
	maxAttempts int
	attempts    int
	won         bool
}

// Option configures a Game.
type Option func(*Game)

// WithMaxAttempts overrides the attempt limit. Values below one are ignored.
func WithMaxAttempts(n int) Option {
	return func(g *Game) {
		if n > 0 {
			g.maxAttempts = n
		}
	}
}

// WithTarget fixes the number to guess.
func WithTarget(n int) Option {
	return func(g *Game) {
		g.target = n
	}
}

// WithRand draws the target from r.
func WithRand(r *rand.Rand) Option {
	return func(g *Game) {
		g.target = constants.GuessMin + r.IntN(constants.GuessMax-constants.GuessMin+1)
	}
}

// New starts a game with a target drawn uniformly from the guessing range.
func New(opts ...Option) (*Game, error) {
	g := &Game{
		target:      constants.GuessMin + rand.IntN(constants.GuessMax-constants.GuessMin+1),
		maxAttempts: constants.MaxGuesses,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.target < constants.GuessMin || g.target > constants.GuessMax {
		return nil, errors.NewValidationError("target", g.target, "out of range")
	}
	return g, nil
}

// Guess scores n and counts the attempt.
func (g *Game) Guess(n int) (Outcome, error) {
	if g.Over() {
		return 0, ErrGameOver
	}
	g.attempts++
	switch {
	case n < g.target:
		return TooLow, nil
	case n > g.target:
		return TooHigh, nil
	}
	g.won = true
	return Correct, nil
}

// Target returns the number being guessed.
func (g *Game) Target() int { return g.target }

// Attempts returns the number of guesses made so far.
func (g *Game) Attempts() int { return g.attempts }

// MaxAttempts returns the attempt limit.
func (g *Game) MaxAttempts() int { return g.maxAttempts }

// Remaining returns the guesses left.
func (g *Game) Remaining() int { return g.maxAttempts - g.attempts }

// Won reports whether the target was guessed.
func (g *Game) Won() bool { return g.won }

// Over reports whether no further guesses are accepted.
func (g *Game) Over() bool { return g.won || g.attempts >= g.maxAttempts }
