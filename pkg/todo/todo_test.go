package todo_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/mobileapp/pkg/errors"
	"github.com/agentstation/mobileapp/pkg/todo"
)

var fixedTime = time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC)

func read(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestParseTask(t *testing.T) {
	got := todo.ParseTask("Buy milk | Deadline: 2024-05-02 | Status: Incomplete\n")
	assert.Equal(t, "Buy milk", got.Name)
	assert.Equal(t, "2024-05-02", got.Deadline)
	assert.Equal(t, "Incomplete", got.Status)
	assert.Equal(t, "Buy milk | Deadline: 2024-05-02 | Status: Incomplete", got.String())

	bare := todo.ParseTask("just a note")
	assert.Equal(t, "just a note", bare.Name)
	assert.Empty(t, bare.Deadline)
}

func TestOpenCreatesFiles(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "alice")

	l, err := todo.Open(dir)
	require.NoError(t, err)
	assert.Equal(t, 0, l.Len())

	for _, name := range []string{"todo_list.txt", "completed_task.txt"} {
		_, err := os.Stat(filepath.Join(dir, name))
		assert.NoError(t, err, name)
	}
}

func TestAddAndComplete(t *testing.T) {
	dir := t.TempDir()
	todoPath := filepath.Join(dir, "todo_list.txt")
	require.NoError(t, os.WriteFile(todoPath, []byte("To-Do List (incomplete tasks)\n"), 0o644))

	l, err := todo.Open(dir, todo.WithClock(func() time.Time { return fixedTime }))
	require.NoError(t, err)
	assert.Equal(t, 0, l.Len(), "seed header is not a task")

	_, err = l.Add("Buy milk", "2024-05-02")
	require.NoError(t, err)
	_, err = l.Add("Write report", "2024-05-10")
	require.NoError(t, err)
	require.Equal(t, 2, l.Len(), "added tasks are visible without reopening")

	done, err := l.Complete(1)
	require.NoError(t, err)
	assert.Equal(t, "Buy milk", done.Name)

	assert.Equal(t,
		"To-Do List (incomplete tasks)\nWrite report | Deadline: 2024-05-10 | Status: Incomplete\n",
		read(t, todoPath))
	assert.Equal(t,
		"Buy milk | Deadline: 2024-05-02 | Completed on: 2024-05-01 09:30:00\n",
		read(t, filepath.Join(dir, "completed_task.txt")))

	reopened, err := todo.Open(dir)
	require.NoError(t, err)
	require.Len(t, reopened.Tasks(), 1)
	assert.Equal(t, "Write report", reopened.Tasks()[0].Name)
}

func TestCompleteOutOfRange(t *testing.T) {
	l, err := todo.Open(t.TempDir())
	require.NoError(t, err)

	for _, n := range []int{0, 1, -3} {
		_, err := l.Complete(n)
		assert.True(t, errors.IsValidationError(err), "n=%d", n)
	}
}

func TestAddValidation(t *testing.T) {
	l, err := todo.Open(t.TempDir())
	require.NoError(t, err)

	_, err = l.Add("", "2024-01-01")
	assert.True(t, errors.IsValidationError(err))
	_, err = l.Add("a | b", "2024-01-01")
	assert.True(t, errors.IsValidationError(err))
	_, err = l.Add("ok", "line\nbreak")
	assert.True(t, errors.IsValidationError(err))
	assert.Equal(t, 0, l.Len())
}
