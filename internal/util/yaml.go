package util

import (
	"encoding/json"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// YamlBytesToJSON re-encodes a YAML config document as JSON so it can be checked against the JSON schema before
// it is decoded into typed config.
func YamlBytesToJSON(yamlData []byte) ([]byte, error) {
	var doc interface{}
	if err := yaml.Unmarshal(yamlData, &doc); err != nil {
		return nil, errors.Wrap(err, "config is not valid yaml")
	}

	j, err := json.Marshal(doc)
	if err != nil {
		return nil, errors.Wrap(err, "config cannot be represented as json")
	}

	return j, nil
}
