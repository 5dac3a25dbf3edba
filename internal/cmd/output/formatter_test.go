package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/mobileapp/internal/cmd/table"
)

type versionInfo struct {
	Version   string `json:"version"`
	GoVersion string `json:"go_version"`
}

func TestParseFormat(t *testing.T) {
	for _, in := range []string{"", "table", "JSON", "yaml"} {
		_, err := ParseFormat(in)
		assert.NoError(t, err, in)
	}
	_, err := ParseFormat("wide")
	assert.Error(t, err)
}

func TestDetectFormat(t *testing.T) {
	var buf bytes.Buffer
	assert.Equal(t, FormatYAML, DetectFormat("YAML", &buf))
	assert.Equal(t, FormatJSON, DetectFormat("", &buf), "non-terminal writers get JSON")
}

func TestTableFormatter(t *testing.T) {
	var buf bytes.Buffer
	data := table.Data{
		Headers: []string{"ID", "Name"},
		Rows:    [][]string{{"1", "Inception"}},
	}
	require.NoError(t, NewFormatter(FormatTable).Format(&buf, data))
	assert.Contains(t, buf.String(), "Inception")
	assert.Contains(t, strings.ToUpper(buf.String()), "NAME")
}

func TestTableFormatterStruct(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewFormatter(FormatTable).Format(&buf, versionInfo{Version: "1.2.3", GoVersion: "go1.24"}))
	assert.Contains(t, buf.String(), "1.2.3")
	assert.Contains(t, strings.ToLower(buf.String()), "go version")
}

func TestJSONAndYAMLFormatter(t *testing.T) {
	info := versionInfo{Version: "1.2.3"}

	var js bytes.Buffer
	require.NoError(t, NewFormatter(FormatJSON).Format(&js, info))
	assert.Contains(t, js.String(), `"version": "1.2.3"`)

	var ys bytes.Buffer
	require.NoError(t, NewFormatter(FormatYAML).Format(&ys, info))
	assert.Contains(t, ys.String(), "version: 1.2.3")
}
