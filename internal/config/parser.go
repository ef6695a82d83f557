package config

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	stylekiterrors "github.com/alexisbeaulieu97/stylekit/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// LoadStylesheet reads a stylesheet from disk, validates it against engine and
// returns the resulting model.
func LoadStylesheet(path string, engine BaseChecker) (*Stylesheet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, stylekiterrors.NewParseError(path, 0, err)
	}
	return ParseStylesheet(path, data, engine)
}

// ParseStylesheet decodes and validates stylesheet YAML. path is only used in
// error messages.
func ParseStylesheet(path string, data []byte, engine BaseChecker) (*Stylesheet, error) {
	var sheet Stylesheet
	if err := yaml.Unmarshal(data, &sheet); err != nil {
		return nil, stylekiterrors.NewParseError(path, extractLine(err), err)
	}
	sheet.Path = path

	if err := ValidateStylesheet(&sheet, engine); err != nil {
		return nil, err
	}

	return &sheet, nil
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
	_, scanErr := fmt.Sscanf(matches[1], "%d", &line)
	if scanErr != nil {
		return 0
	}

	return line
}
