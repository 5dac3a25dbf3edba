package guess_test

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/mobileapp/pkg/errors"
	"github.com/agentstation/mobileapp/pkg/guess"
)

func TestGuessWin(t *testing.T) {
	g, err := guess.New(guess.WithTarget(42))
	require.NoError(t, err)

	out, err := g.Guess(10)
	require.NoError(t, err)
	assert.Equal(t, guess.TooLow, out)

	out, err = g.Guess(90)
	require.NoError(t, err)
	assert.Equal(t, guess.TooHigh, out)

	out, err = g.Guess(42)
	require.NoError(t, err)
	assert.Equal(t, guess.Correct, out)
	assert.True(t, g.Won())
	assert.True(t, g.Over())
	assert.Equal(t, 3, g.Attempts())

	_, err = g.Guess(42)
	assert.ErrorIs(t, err, guess.ErrGameOver)
}

func TestGuessLoss(t *testing.T) {
	g, err := guess.New(guess.WithTarget(1), guess.WithMaxAttempts(3))
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		require.False(t, g.Over())
		out, err := g.Guess(50)
		require.NoError(t, err)
		assert.Equal(t, guess.TooHigh, out)
	}
	assert.True(t, g.Over())
	assert.False(t, g.Won())
	assert.Equal(t, 0, g.Remaining())
}

func TestDefaults(t *testing.T) {
	g, err := guess.New()
	require.NoError(t, err)
	assert.Equal(t, 10, g.MaxAttempts())
	assert.GreaterOrEqual(t, g.Target(), 1)
	assert.LessOrEqual(t, g.Target(), 100)
}

func TestWithRandIsDeterministic(t *testing.T) {
	a, err := guess.New(guess.WithRand(rand.New(rand.NewPCG(1, 2))))
	require.NoError(t, err)
	b, err := guess.New(guess.WithRand(rand.New(rand.NewPCG(1, 2))))
	require.NoError(t, err)
	assert.Equal(t, a.Target(), b.Target())
}

func TestTargetOutOfRange(t *testing.T) {
	_, err := guess.New(guess.WithTarget(101))
	assert.True(t, errors.IsValidationError(err))
}
