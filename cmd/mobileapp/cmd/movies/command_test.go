package movies

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/mobileapp"
	"github.com/agentstation/mobileapp/internal/cmd/application"
	"github.com/agentstation/mobileapp/pkg/errors"
	"github.com/agentstation/mobileapp/pkg/logging"
	"github.com/agentstation/mobileapp/pkg/movies"
)

const seed = "Name: Inception | Genre: Sci-Fi | Year: 2010\n" +
	"Name: broken line\n" +
	"Name: The Matrix | Genre: Action | Year: 1999\n"

func newTestApp(t *testing.T, format string) (*application.Mock, string) {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "listmovie.txt"), []byte(seed), 0o644))

	client, err := mobileapp.New(
		mobileapp.WithDataDir(dir),
		mobileapp.WithLogger(logging.NewNopLogger()),
	)
	require.NoError(t, err)

	return &application.Mock{
		ClientFunc:       func() (mobileapp.Client, error) { return client, nil },
		OutputFormatFunc: func() string { return format },
	}, dir
}

func run(t *testing.T, app *application.Mock, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := NewCommand(app)
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	err := cmd.Execute()
	return out.String(), err
}

func TestListTable(t *testing.T) {
	app, _ := newTestApp(t, "table")

	out, err := run(t, app, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Inception")
	assert.Contains(t, out, "The Matrix")
	assert.Contains(t, out, "1999")
}

func TestListJSON(t *testing.T) {
	app, _ := newTestApp(t, "json")

	out, err := run(t, app, "list")
	require.NoError(t, err)

	var entries []movies.Entry
	require.NoError(t, json.Unmarshal([]byte(out), &entries))
	require.Len(t, entries, 2)
	assert.Equal(t, 1, entries[0].ID)
	assert.Equal(t, "Inception", entries[0].Name)
	assert.Equal(t, 3, entries[1].ID)
	assert.Equal(t, 1999, entries[1].Year)
}

func TestListFiltered(t *testing.T) {
	app, _ := newTestApp(t, "json")

	out, err := run(t, app, "list", "--genre", "action", "--to", "2000")
	require.NoError(t, err)

	var entries []movies.Entry
	require.NoError(t, json.Unmarshal([]byte(out), &entries))
	require.Len(t, entries, 1)
	assert.Equal(t, "The Matrix", entries[0].Name)

	_, err = run(t, app, "list", "--from", "2020", "--to", "2000")
	assert.Error(t, err)
}

func TestListSkipped(t *testing.T) {
	app, _ := newTestApp(t, "json")

	out, err := run(t, app, "list", "--skipped")
	require.NoError(t, err)

	var lines []skippedLine
	require.NoError(t, json.Unmarshal([]byte(out), &lines))
	require.Len(t, lines, 1)
	assert.Equal(t, 2, lines[0].Line)
	assert.Equal(t, "Name: broken line", lines[0].Text)
}

func TestSearch(t *testing.T) {
	app, dir := newTestApp(t, "table")

	out, err := run(t, app, "search", "MATRIX")
	require.NoError(t, err)
	assert.Contains(t, out, "The Matrix")
	assert.NotContains(t, out, "Inception")

	out, err = run(t, app, "search", "nothing")
	require.NoError(t, err)
	assert.Equal(t, "Movie not found!\n", out)

	_, err = os.Stat(filepath.Join(dir, "user_logs"))
	assert.True(t, os.IsNotExist(err), "anonymous search must not create user folders")
}

func TestSearchJSONEmpty(t *testing.T) {
	app, _ := newTestApp(t, "json")

	out, err := run(t, app, "search", "nothing")
	require.NoError(t, err)
	assert.JSONEq(t, "[]", out)
}

func TestAdd(t *testing.T) {
	app, dir := newTestApp(t, "table")

	out, err := run(t, app, "add", "--name", "Dune", "--genre", "Sci-Fi", "--year", "2021")
	require.NoError(t, err)
	assert.Equal(t, "Movie 'Dune' added with id 4.\n", out)

	data, err := os.ReadFile(filepath.Join(dir, "listmovie.txt"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "Name: Dune | Genre: Sci-Fi | Year: 2021")
	assert.NotContains(t, string(data), "broken line")
}

func TestAddRejectsLineBreaks(t *testing.T) {
	app, dir := newTestApp(t, "table")

	_, err := run(t, app, "add", "--name", "Dune\nPart Two", "--genre", "Sci-Fi", "--year", "2024")
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))

	data, err := os.ReadFile(filepath.Join(dir, "listmovie.txt"))
	require.NoError(t, err)
	assert.Equal(t, seed, string(data))
}

func TestAddRequiresFlags(t *testing.T) {
	app, _ := newTestApp(t, "table")

	_, err := run(t, app, "add", "--name", "Dune")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "required flag")
}

func TestExportText(t *testing.T) {
	app, _ := newTestApp(t, "table")

	out, err := run(t, app, "export")
	require.NoError(t, err)
	assert.Contains(t, out, "Name: Inception | Genre: Sci-Fi | Year: 2010")
	assert.Contains(t, out, "Name: The Matrix | Genre: Action | Year: 1999")
}

func TestExportFile(t *testing.T) {
	app, dir := newTestApp(t, "yaml")
	target := filepath.Join(dir, "export.yaml")

	_, err := run(t, app, "export", "--file", target)
	require.NoError(t, err)

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Contains(t, string(data), "name: Inception")
	assert.Contains(t, string(data), "year: 1999")
}

func TestExportUnknownFormat(t *testing.T) {
	app, _ := newTestApp(t, "csv")

	_, err := run(t, app, "export")
	assert.Error(t, err)
}
