package webhook

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveJSONValue_Absent(t *testing.T) {
	value, err := ResolveJSONValue("")
	require.NoError(t, err)
	assert.False(t, value.OK)
}

func TestResolveJSONValue_Literal(t *testing.T) {
	value, err := ResolveJSONValue(`{"title":"x","count":2}`)
	require.NoError(t, err)
	require.True(t, value.OK)
	assert.Equal(t, map[string]any{"title": "x", "count": float64(2)}, value.Value)
}

func TestResolveJSONValue_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "embed.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"title":"from file"}`), 0644))

	fromFile, err := ResolveJSONValue(path)
	require.NoError(t, err)
	require.True(t, fromFile.OK)

	fromLiteral, err := ResolveJSONValue(`{"title":"from file"}`)
	require.NoError(t, err)
	assert.Equal(t, fromLiteral.Value, fromFile.Value)
}

func TestResolveJSONValue_InvalidLiteral(t *testing.T) {
	_, err := ResolveJSONValue("{not json")
	require.Error(t, err)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, "{not json", parseErr.Value)
	assert.Contains(t, err.Error(), "neither a JSON file nor valid JSON")
}

func TestResolveJSONValue_InvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.json")
	require.NoError(t, os.WriteFile(path, []byte("{broken"), 0644))

	_, err := ResolveJSONValue(path)
	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, path, parseErr.Value)
}

func TestResolveJSONValue_NullLiteral(t *testing.T) {
	value, err := ResolveJSONValue("null")
	require.NoError(t, err)
	assert.True(t, value.OK)
	assert.Nil(t, value.Value)
}
