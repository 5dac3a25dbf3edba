package movies_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/goccy/go-yaml"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/mobileapp/pkg/errors"
	"github.com/agentstation/mobileapp/pkg/movies"
	"github.com/agentstation/mobileapp/pkg/save"
)

func TestAdd(t *testing.T) {
	t.Run("empty catalog assigns id 1", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "listmovie.txt")
		cat := movies.New(path)

		id, err := cat.Add("Dune", "Sci-Fi", 2021)
		require.NoError(t, err)
		assert.Equal(t, 1, id)
	})

	t.Run("next id is max plus one without gap reuse", func(t *testing.T) {
		path := writeCatalogFile(t,
			"Name: Alien | Genre: Horror | Year: 1979",
			"",
			"broken",
			"",
			"Name: Heat | Genre: Crime | Year: 1995",
		)
		cat, _, err := movies.Load(path)
		require.NoError(t, err)
		require.Equal(t, 5, cat.MaxID())

		id, err := cat.Add("Dune", "Sci-Fi", 2021)
		require.NoError(t, err)
		assert.Equal(t, 6, id)
	})

	t.Run("reload sees the added record", func(t *testing.T) {
		path := writeCatalogFile(t, "Name: The Matrix | Genre: Sci-Fi | Year: 1999")
		cat, _, err := movies.Load(path)
		require.NoError(t, err)

		_, err = cat.Add("Dune", "Sci-Fi", 2021)
		require.NoError(t, err)

		reloaded, diags, err := movies.Load(path)
		require.NoError(t, err)
		assert.Empty(t, diags)
		assert.Contains(t, reloaded.Entries(), movies.Entry{
			ID:    2,
			Movie: movies.Movie{Name: "Dune", Genre: "Sci-Fi", Year: 2021},
		})
	})

	t.Run("line breaks are rejected before any change", func(t *testing.T) {
		path := writeCatalogFile(t, "Name: The Matrix | Genre: Sci-Fi | Year: 1999")
		cat, _, err := movies.Load(path)
		require.NoError(t, err)
		before, err := os.ReadFile(path)
		require.NoError(t, err)

		tests := []struct{ name, genre string }{
			{"Dune\nPart Two", "Sci-Fi"},
			{"Dune", "Sci-Fi\r"},
		}
		for _, tt := range tests {
			id, err := cat.Add(tt.name, tt.genre, 2024)
			assert.True(t, errors.IsValidationError(err))
			assert.Zero(t, id)
		}

		assert.Equal(t, 1, cat.Len())
		after, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, string(before), string(after))
	})

	t.Run("save failure leaves memory ahead of disk", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "missing-dir", "listmovie.txt")
		cat := movies.New(path)

		id, err := cat.Add("Dune", "Sci-Fi", 2021)
		require.Error(t, err)

		var ioErr *errors.IOError
		assert.True(t, errors.As(err, &ioErr))
		assert.Equal(t, 1, id)
		assert.Equal(t, 1, cat.Len())
		_, statErr := os.Stat(path)
		assert.True(t, os.IsNotExist(statErr))
	})
}

func TestSaveRoundTrip(t *testing.T) {
	path := writeCatalogFile(t,
		"Name: The Matrix | Genre: Sci-Fi | Year: 1999",
		"Name: Mission: Impossible | Genre: Action | Year: 1996",
		"Name: Heat | Genre: Crime | Year: 1995",
	)
	original, err := os.ReadFile(path)
	require.NoError(t, err)

	cat, _, err := movies.Load(path)
	require.NoError(t, err)

	out := filepath.Join(t.TempDir(), "copy.txt")
	require.NoError(t, movies.Save(cat, out))

	written, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, string(original), string(written))

	reloaded, _, err := movies.Load(out)
	require.NoError(t, err)
	assert.Equal(t, cat.Entries(), reloaded.Entries())
}

func TestSaveGolden(t *testing.T) {
	path := filepath.Join(t.TempDir(), "listmovie.txt")
	cat := movies.New(path)
	for _, m := range []movies.Movie{
		{Name: "Inception", Genre: "Sci-Fi", Year: 2010},
		{Name: "Spirited Away", Genre: "Animation", Year: 2001},
		{Name: "Inception", Genre: "Sci-Fi", Year: 2010},
	} {
		_, err := cat.Add(m.Name, m.Genre, m.Year)
		require.NoError(t, err)
	}

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "catalog_text", data)
}

func TestSaveAtomic(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "listmovie.txt")
	require.NoError(t, os.WriteFile(path, []byte("stale\n"), 0o644))

	cat := movies.New(path, movies.WithAtomicSave(true))
	_, err := cat.Add("Heat", "Crime", 1995)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Name: Heat | Genre: Crime | Year: 1995\n", string(data))

	files, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, files, 1, "temp file should be renamed away")
}

func TestSaveWithoutDestination(t *testing.T) {
	cat := movies.New("")
	err := cat.Save()
	require.Error(t, err)

	var cfgErr *errors.ConfigError
	assert.True(t, errors.As(err, &cfgErr))
}

func TestSaveExportFormats(t *testing.T) {
	cat := sampleCatalog(t)

	t.Run("json", func(t *testing.T) {
		buf := &bytes.Buffer{}
		require.NoError(t, cat.Save(save.WithWriter(buf), save.WithFormat(save.FormatJSON)))

		var decoded []map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
		require.Len(t, decoded, 4)
		assert.Equal(t, "The Matrix", decoded[0]["name"])
		assert.EqualValues(t, 1, decoded[0]["id"])
		assert.EqualValues(t, 1999, decoded[0]["year"])
	})

	t.Run("yaml", func(t *testing.T) {
		buf := &bytes.Buffer{}
		require.NoError(t, cat.Save(save.WithWriter(buf), save.WithFormat(save.FormatYAML)))
		assert.Contains(t, buf.String(), "name: Heat")

		var decoded []movies.Entry
		require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
		assert.Equal(t, cat.Entries(), decoded)
	})

	t.Run("invalid format", func(t *testing.T) {
		err := cat.Save(save.WithWriter(&bytes.Buffer{}), save.WithFormat(save.Format(9)))
		assert.True(t, errors.IsValidationError(err))
	})
}
