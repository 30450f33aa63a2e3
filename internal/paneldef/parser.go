package paneldef

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	overlayerrors "github.com/gridwell/overlaykit/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// Parse loads a panel definition file from disk, validates it, and returns
// the resulting document.
func Parse(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, overlayerrors.NewParseError(path, 0, err)
	}

	doc, err := ParseBytes(data)
	if err != nil {
		if parseErr, ok := err.(*overlayerrors.ParseError); ok {
			parseErr.Path = path
		}
		return nil, err
	}
	return doc, nil
}

// ParseBytes decodes and validates an in-memory panel definition.
func ParseBytes(data []byte) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, overlayerrors.NewParseError("", extractLine(err), err)
	}

	if err := Validate(&doc); err != nil {
		return nil, err
	}
	return &doc, nil
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
