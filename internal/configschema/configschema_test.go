package configschema

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReflect(t *testing.T) {
	data, err := Reflect()
	require.NoError(t, err)

	var s struct {
		Id         string                     `json:"$id"`
		Properties map[string]json.RawMessage `json:"properties"`
	}
	require.NoError(t, json.Unmarshal(data, &s))
	require.NotEmpty(t, s.Id)

	for _, p := range []string{"server", "graph", "identity", "search"} {
		require.Contains(t, s.Properties, p)
	}
}

func TestGenerate(t *testing.T) {
	out := filepath.Join(t.TempDir(), "nested", "config.schema.json")

	data, err := Generate(out)
	require.NoError(t, err)

	written, err := os.ReadFile(out)
	require.NoError(t, err)
	require.Equal(t, data, written)
}
