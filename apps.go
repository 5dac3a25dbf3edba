package mobileapp

import (
	"context"

	"github.com/agentstation/mobileapp/pkg/calculator"
	"github.com/agentstation/mobileapp/pkg/guess"
	"github.com/agentstation/mobileapp/pkg/logging"
)

// Compile-time interface check to ensure proper implementation.
var _ Apps = (*client)(nil)

// notApplicable fills the history columns an operation does not use.
const notApplicable = "N/A"

// Apps runs the calculator and the number guessing game.
type Apps interface {
	// Calculate applies op and appends the outcome to the user's calculation history
	Calculate(ctx context.Context, user string, op calculator.Operation, x, y float64) (float64, error)

	// LogCalculatorExit records that the user left the calculator
	LogCalculatorExit(ctx context.Context, user string)

	// NewGame starts a number guessing round with the configured attempt limit
	NewGame(opts ...guess.Option) (*guess.Game, error)

	// RecordGame appends the result of a finished round to the user's game log
	RecordGame(ctx context.Context, user string, game *guess.Game) error
}

// Calculate applies op. Domain errors such as division by zero are recorded
// in the history as their display text and returned to the caller.
func (c *client) Calculate(ctx context.Context, user string, op calculator.Operation, x, y float64) (float64, error) {
	result, err := op.Apply(x, y)

	second := calculator.FormatNumber(y)
	if op.Unary() {
		second = notApplicable
	}
	if user != "" {
		if lerr := c.sessions.LogCalculation(user, op.String(), calculator.FormatNumber(x), second, calculator.ResultText(result, err)); lerr != nil {
			logging.FromContext(ctx).Warn().Err(lerr).Str("user", user).Msg("Calculation not logged")
		}
	}
	return result, err
}

// LogCalculatorExit records the exit line the calculator history ends a session with.
func (c *client) LogCalculatorExit(ctx context.Context, user string) {
	if err := c.sessions.LogCalculation(user, "Exit", notApplicable, notApplicable, "User logged out"); err != nil {
		logging.FromContext(ctx).Warn().Err(err).Str("user", user).Msg("Calculation not logged")
	}
}

// NewGame starts a round. Options passed here override the configured limit.
func (c *client) NewGame(opts ...guess.Option) (*guess.Game, error) {
	return guess.New(append([]guess.Option{guess.WithMaxAttempts(c.options.maxGuesses)}, opts...)...)
}

// RecordGame appends the result of a finished round.
func (c *client) RecordGame(ctx context.Context, user string, game *guess.Game) error {
	if err := c.sessions.LogGuessResult(user, game.Attempts(), game.Won(), game.Target()); err != nil {
		return err
	}
	logging.FromContext(ctx).Debug().Str("user", user).Bool("won", game.Won()).Int("attempts", game.Attempts()).Msg("Game recorded")
	return nil
}
