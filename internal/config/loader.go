package config

import (
	"encoding/json"
	"os"

	"github.com/mitchellh/go-homedir"
	"github.com/pkg/errors"
	"github.com/rmorlok/graphbrowser/internal/schema"
	sconfig "github.com/rmorlok/graphbrowser/internal/schema/config"
	"github.com/rmorlok/graphbrowser/internal/util"
)

// LoadConfig reads the YAML file at path, checks it against the config JSON schema and then applies semantic
// validation. A leading ~ in the path is expanded to the home directory.
func LoadConfig(path string) (C, error) {
	expanded, err := homedir.Expand(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to expand config path '%s'", path)
	}

	content, err := os.ReadFile(expanded)
	if err != nil {
		return nil, err
	}

	return LoadConfigBytes(content)
}

// LoadConfigBytes is LoadConfig for configuration already in memory.
func LoadConfigBytes(content []byte) (C, error) {
	s, err := schema.CompileSchema(schema.SchemaIdConfig)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read config schema")
	}

	configJsonBytes, err := util.YamlBytesToJSON(content)
	if err != nil {
		return nil, errors.Wrap(err, "failed to convert YAML to JSON for config schema validation")
	}

	var configAsParsedJson interface{}
	if err := json.Unmarshal(configJsonBytes, &configAsParsedJson); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config JSON for config schema validation")
	}

	if err := s.Validate(configAsParsedJson); err != nil {
		return nil, errors.Wrap(err, "config schema validation failed")
	}

	root, err := sconfig.UnmarshallYamlRoot(content)
	if err != nil {
		return nil, err
	}

	if err := root.Validate(); err != nil {
		return nil, errors.Wrap(err, "config validation failed")
	}

	return &config{root: root}, nil
}

func FromRoot(root *sconfig.Root) C {
	return &config{root: root}
}
