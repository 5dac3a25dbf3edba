package menu

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/mobileapp"
	"github.com/agentstation/mobileapp/internal/cmd/application"
	"github.com/agentstation/mobileapp/pkg/logging"
)

func newTestApp(t *testing.T) (*application.Mock, string) {
	t.Helper()
	dir := t.TempDir()
	client, err := mobileapp.New(
		mobileapp.WithDataDir(dir),
		mobileapp.WithLogger(logging.NewNopLogger()),
	)
	require.NoError(t, err)
	return &application.Mock{
		ClientFunc: func() (mobileapp.Client, error) { return client, nil },
	}, dir
}

func script(lines ...string) *strings.Reader {
	return strings.NewReader(strings.Join(lines, "\n") + "\n")
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestRunMoviesAndCalculator(t *testing.T) {
	app, dir := newTestApp(t)
	var out bytes.Buffer

	in := script(
		// register, then open movies
		"2", "alice", "secret",
		"4",
		// add with one bad year, search hit and miss, print all, exit
		"2", "Dune", "Sci-Fi", "abc", "2021",
		"1", "dune",
		"1", "zzz",
		"3",
		"4",
		// calculator: division by zero, square root, exit
		"1",
		"4", "1", "0",
		"6", "9",
		"7",
		// logout and exit
		"5",
		"3",
	)
	require.NoError(t, Run(context.Background(), app, in, &out))

	got := out.String()
	assert.Contains(t, got, banner)
	assert.Contains(t, got, "Account created successfully")
	assert.Contains(t, got, "Please enter the year as a whole number")
	assert.Contains(t, got, "Movie 'Dune' added successfully!")
	assert.Contains(t, got, "Found: Dune - Genre: Sci-Fi - Year: 2021")
	assert.Contains(t, got, "Movie not found!")
	assert.Contains(t, got, "Result: Error! Division by zero.")
	assert.Contains(t, got, "Result: 3.0")
	assert.Contains(t, got, "Logging out...")
	assert.Contains(t, got, "Goodbye!")

	assert.Equal(t, "Name: Dune | Genre: Sci-Fi | Year: 2021\n", readFile(t, filepath.Join(dir, "listmovie.txt")))

	userDir := filepath.Join(dir, "user_logs", "alice")
	assert.Equal(t,
		"Search Query: dune - Found: Dune | Genre: Sci-Fi | Year: 2021\nSearch Query: zzz - Movie not found\n",
		readFile(t, filepath.Join(userDir, "search_movies.txt")))
	assert.Equal(t,
		"alice: Division | 1.0 and 0.0 = Error! Division by zero.\n"+
			"alice: Square Root | 9.0 and N/A = 3.0\n"+
			"alice: Exit | N/A and N/A = User logged out\n",
		readFile(t, filepath.Join(userDir, "calculation_history.txt")))
	assert.Contains(t, readFile(t, filepath.Join(userDir, "user_log.txt")), "User alice logged out.")
}

func TestRunLoginFailures(t *testing.T) {
	app, _ := newTestApp(t)
	var out bytes.Buffer

	in := script(
		"1", "bob", "pw", // no credentials file yet
		"2", "bob", "pw", // register
		"5",              // logout
		"1", "bob", "nope", // wrong password
		"2", "bob", "x", // duplicate
		"9", // invalid choice
		"3",
	)
	require.NoError(t, Run(context.Background(), app, in, &out))

	got := out.String()
	assert.Contains(t, got, "User credentials file not found. Please register first.")
	assert.Equal(t, 2, strings.Count(got, "Invalid username or password."))
	assert.Contains(t, got, "Username already taken.")
	assert.Contains(t, got, "Please choose 1, 2 or 3.")
}

func TestRunTodo(t *testing.T) {
	app, dir := newTestApp(t)
	var out bytes.Buffer

	in := script(
		"2", "carol", "pw",
		"2",                           // to-do list
		"1", "Buy milk", "2024-05-02", // add
		"2", "1", "1", // view, select, complete
		"2", // view again: empty
		"3", // exit to-do list
		"5",
		"3",
	)
	require.NoError(t, Run(context.Background(), app, in, &out))

	got := out.String()
	assert.Contains(t, got, "Task 'Buy milk' with deadline '2024-05-02'")
	assert.Contains(t, got, "Selected Task: Buy milk | Deadline: 2024-05-02 | Status: Incomplete")
	assert.Contains(t, got, "marked as Completed and moved to 'completed_task.txt'")
	assert.Contains(t, got, "No tasks available.")

	userDir := filepath.Join(dir, "user_logs", "carol")
	assert.Equal(t, "To-Do List (incomplete tasks)\n", readFile(t, filepath.Join(userDir, "todo_list.txt")))
	assert.Contains(t, readFile(t, filepath.Join(userDir, "completed_task.txt")), "Buy milk | Deadline: 2024-05-02 | Completed on: ")
}

func TestRunGuessingGameLoss(t *testing.T) {
	app, dir := newTestApp(t)
	var out bytes.Buffer

	lines := []string{"2", "dave", "pw", "3", "x"}
	for i := 0; i < 10; i++ {
		lines = append(lines, "0")
	}
	lines = append(lines, "n", "5", "3")
	require.NoError(t, Run(context.Background(), app, script(lines...), &out))

	got := out.String()
	assert.Equal(t, 10, strings.Count(got, "Too low! Try again."))
	assert.Contains(t, got, "Please enter a whole number.")
	assert.Contains(t, got, "Sorry, you've used all 10 attempts.")
	assert.Contains(t, got, "Goodbye, dave! Thanks for playing!")

	log := readFile(t, filepath.Join(dir, "user_logs", "dave", "number_guessing_log.txt"))
	assert.Contains(t, log, "Game Result: Loss")
	assert.Contains(t, log, "Attempts: 10")
}

func TestRunEndsOnEOF(t *testing.T) {
	app, _ := newTestApp(t)
	var out bytes.Buffer

	require.NoError(t, Run(context.Background(), app, strings.NewReader("1\nalice"), &out))
	assert.Contains(t, out.String(), "Password: ")
}

func TestRunCancelled(t *testing.T) {
	app, _ := newTestApp(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	require.NoError(t, Run(ctx, app, script("3"), &out))
	assert.NotContains(t, out.String(), "Goodbye!")
}
