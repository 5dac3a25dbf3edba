package sessionlog_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/mobileapp/pkg/errors"
	"github.com/agentstation/mobileapp/pkg/logging"
	"github.com/agentstation/mobileapp/pkg/movies"
	"github.com/agentstation/mobileapp/pkg/sessionlog"
)

var fixedTime = time.Date(2024, 3, 9, 14, 5, 7, 0, time.UTC)

func newLogger(t *testing.T) *sessionlog.Logger {
	t.Helper()
	return sessionlog.New(t.TempDir(), sessionlog.WithClock(func() time.Time { return fixedTime }))
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestBootstrap(t *testing.T) {
	l := newLogger(t)

	dir, err := l.Bootstrap("alice")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(l.Root(), "alice"), dir)
	assert.True(t, l.Exists("alice"))

	assert.Equal(t, "User log started.\n", readFile(t, filepath.Join(dir, "user_log.txt")))
	assert.Equal(t, "To-Do List (incomplete tasks)\n", readFile(t, filepath.Join(dir, "todo_list.txt")))
	assert.Equal(t, "Number Guessing Game Log\n", readFile(t, filepath.Join(dir, "number_guessing_log.txt")))

	t.Run("idempotent", func(t *testing.T) {
		require.NoError(t, l.LogInteraction("alice", "User alice logged in."))
		_, err := l.Bootstrap("alice")
		require.NoError(t, err)
		assert.Equal(t,
			"User log started.\n2024-03-09 14:05:07 - User alice logged in.\n",
			readFile(t, filepath.Join(dir, "user_log.txt")))
	})
}

func TestValidateUsername(t *testing.T) {
	for _, name := range []string{"", "  ", ".", "..", "a/b", `a\b`, "a,b", "a\nb"} {
		t.Run(name, func(t *testing.T) {
			assert.True(t, errors.IsValidationError(sessionlog.ValidateUsername(name)))
		})
	}
	assert.NoError(t, sessionlog.ValidateUsername("alice"))

	l := newLogger(t)
	_, err := l.Bootstrap("../escape")
	assert.True(t, errors.IsValidationError(err))
	assert.False(t, l.Exists("../escape"))
}

func TestLogInteractionRequiresFolder(t *testing.T) {
	l := newLogger(t)
	err := l.LogInteraction("ghost", "hello")
	require.Error(t, err)

	var ioErr *errors.IOError
	assert.True(t, errors.As(err, &ioErr))
}

func TestLogSearch(t *testing.T) {
	matrix := movies.Entry{ID: 1, Movie: movies.Movie{Name: "The Matrix", Genre: "Sci-Fi", Year: 1999}}
	reloaded := movies.Entry{ID: 2, Movie: movies.Movie{Name: "The Matrix Reloaded", Genre: "Sci-Fi", Year: 2003}}

	t.Run("one line per match", func(t *testing.T) {
		l := newLogger(t)
		dir, err := l.Bootstrap("alice")
		require.NoError(t, err)

		l.LogSearch(context.Background(), "alice", "matrix", []movies.Entry{matrix, reloaded})

		assert.Equal(t,
			"Search Query: matrix - Found: The Matrix | Genre: Sci-Fi | Year: 1999\n"+
				"Search Query: matrix - Found: The Matrix Reloaded | Genre: Sci-Fi | Year: 2003\n",
			readFile(t, filepath.Join(dir, "search_movies.txt")))
	})

	t.Run("not found line", func(t *testing.T) {
		l := newLogger(t)
		dir, err := l.Bootstrap("alice")
		require.NoError(t, err)

		l.LogSearch(context.Background(), "alice", "zzz", nil)
		l.LogSearch(context.Background(), "alice", "heat", nil)

		assert.Equal(t,
			"Search Query: zzz - Movie not found\nSearch Query: heat - Movie not found\n",
			readFile(t, filepath.Join(dir, "search_movies.txt")))
	})

	t.Run("missing folder is a warning only", func(t *testing.T) {
		l := newLogger(t)
		tl := logging.NewTestLogger(t)
		ctx := logging.WithLogger(context.Background(), tl.Logger)

		l.LogSearch(ctx, "ghost", "matrix", []movies.Entry{matrix})

		tl.AssertContains(t, "User folder does not exist")
		tl.AssertContains(t, `"user":"ghost"`)
		_, err := os.Stat(filepath.Join(l.Root(), "ghost"))
		assert.True(t, os.IsNotExist(err))
	})
}

func TestLogGuessResult(t *testing.T) {
	l := newLogger(t)
	dir, err := l.Bootstrap("bob")
	require.NoError(t, err)

	require.NoError(t, l.LogGuessResult("bob", 4, true, 42))
	require.NoError(t, l.LogGuessResult("bob", 10, false, 7))

	assert.Equal(t,
		"Number Guessing Game Log\n"+
			"2024-03-09 14:05:07 - Game Result: Win | Number: 42 | Attempts: 4\n"+
			"2024-03-09 14:05:07 - Game Result: Loss | Number: 7 | Attempts: 10\n",
		readFile(t, filepath.Join(dir, "number_guessing_log.txt")))
}

func TestLogCalculationCreatesFolder(t *testing.T) {
	l := newLogger(t)

	require.NoError(t, l.LogCalculation("carol", "Addition", "2", "3", "5"))
	require.NoError(t, l.LogCalculation("carol", "Exit", "N/A", "N/A", "User logged out"))

	assert.Equal(t,
		"carol: Addition | 2 and 3 = 5\ncarol: Exit | N/A and N/A = User logged out\n",
		readFile(t, filepath.Join(l.Root(), "carol", "calculation_history.txt")))
}
