package configschema

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/invopop/jsonschema"
	"github.com/pkg/errors"
	sconfig "github.com/rmorlok/graphbrowser/internal/schema/config"
)

// Reflect builds a JSON Schema for the config file from the Go structs and their json tags. The hand maintained
// schema used for validation lives in internal/schema/config; this output is a starting point for editors.
func Reflect() ([]byte, error) {
	r := &jsonschema.Reflector{
		ExpandedStruct: true,
		DoNotReference: false,
		// Only treat fields as required when explicitly tagged with `jsonschema:"required"`.
		RequiredFromJSONSchemaTags: true,
	}

	s := r.Reflect(&sconfig.Root{})
	s.ID = jsonschema.ID(sconfig.SchemaIdConfig)

	return json.MarshalIndent(s, "", "  ")
}

// Generate writes the reflected schema to outPath, creating parent directories as needed.
func Generate(outPath string) ([]byte, error) {
	data, err := Reflect()
	if err != nil {
		return nil, errors.Wrap(err, "failed to reflect config schema")
	}

	if dir := filepath.Dir(outPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}

	if err := os.WriteFile(outPath, data, 0o644); err != nil {
		return nil, err
	}

	return data, nil
}
