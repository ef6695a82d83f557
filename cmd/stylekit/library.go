package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/stylekit/internal/config"
	"github.com/alexisbeaulieu97/stylekit/internal/logger"
	"github.com/alexisbeaulieu97/stylekit/internal/style"
	"github.com/alexisbeaulieu97/stylekit/internal/ui/components"
)

const defaultWidth = 80

// loadLibrary builds the library of a stylesheet, or the built-in library
// when path is empty. It also returns the stylesheet's warnings.
func loadLibrary(operation, path string, engine components.Engine, log *logger.Logger) (*config.Library, []string, error) {
	if strings.TrimSpace(path) == "" {
		return config.DefaultLibrary(), nil, nil
	}

	sheet, err := config.LoadStylesheet(path, engine)
	if err != nil {
		return nil, nil, newCommandError(operation, fmt.Sprintf("loading stylesheet %s", path), err, "Fix the reported field and run 'stylekit check' again.")
	}

	lib, err := sheet.Build(engine)
	if err != nil {
		return nil, nil, newCommandError(operation, fmt.Sprintf("building stylesheet %s", path), err, "Check component bases and theme overrides.")
	}

	warnings := sheet.Warnings()
	log.WithFields(map[string]any{
		"path":       path,
		"components": len(sheet.Components),
		"warnings":   len(warnings),
	}).Info("stylesheet loaded")
	for _, w := range warnings {
		log.Warn(w)
	}

	return lib, warnings, nil
}

func lookupDefinition(operation string, lib *config.Library, name string) (*style.Definition, error) {
	def, ok := lib.Definition(name)
	if !ok {
		return nil, newCommandError(operation, fmt.Sprintf("looking up component %q", name), errUnknownComponent, "Run 'stylekit check' to list the available components.")
	}
	return def, nil
}

// parseProps decodes repeated key=value flags. Values are decoded as YAML
// scalars, so "2" is an int and "true" a bool.
func parseProps(pairs []string) (style.Props, error) {
	props := style.Props{}
	for _, pair := range pairs {
		key, raw, ok := strings.Cut(pair, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid prop %q: expected key=value", pair)
		}

		var value any
		if err := yaml.Unmarshal([]byte(raw), &value); err != nil {
			return nil, fmt.Errorf("invalid prop %q: %w", pair, err)
		}
		if value == nil {
			value = raw
		}
		props[key] = value
	}
	return props, nil
}

// terminalWidth reports the column count of w when it is a terminal, then
// falls back to $COLUMNS and finally to defaultWidth.
func terminalWidth(w io.Writer) int {
	if file, ok := w.(*os.File); ok && term.IsTerminal(int(file.Fd())) {
		if cols, _, err := term.GetSize(int(file.Fd())); err == nil && cols > 0 {
			return cols
		}
	}
	if cols, err := strconv.Atoi(os.Getenv("COLUMNS")); err == nil && cols > 0 {
		return cols
	}
	return defaultWidth
}

func tierNames(active style.ActiveBreakpoints) string {
	names := active.Names()
	parts := make([]string, len(names))
	for i, name := range names {
		parts[i] = string(name)
	}
	return strings.Join(parts, " ")
}
