package config

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	gkerrors "github.com/alexisbeaulieu97/gridkit/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// ParseDataset loads a dataset file from disk, validates it, coerces typed
// columns, and returns the resulting document.
func ParseDataset(path string) (*Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, gkerrors.NewParseError(path, 0, err)
	}
	return Parse(data, path)
}

// Parse decodes a dataset from raw YAML. source names the input in errors.
func Parse(data []byte, source string) (*Dataset, error) {
	var ds Dataset
	if err := yaml.Unmarshal(data, &ds); err != nil {
		return nil, gkerrors.NewParseError(source, extractLine(err), err)
	}

	if err := ValidateDataset(&ds); err != nil {
		return nil, err
	}

	if err := CoerceRows(&ds); err != nil {
		return nil, err
	}

	return &ds, nil
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	if _, scanErr := fmt.Sscanf(matches[1], "%d", &line); scanErr != nil {
		return 0
	}

	return line
}
