package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseErrorWrapsUnderlying(t *testing.T) {
	t.Parallel()

	underlying := fmt.Errorf("unexpected token")
	err := NewParseError("styles.yaml", 12, underlying)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "styles.yaml", parseErr.Path)
	require.Equal(t, 12, parseErr.Line)
	require.True(t, stdErrors.Is(err, underlying))
	require.Equal(t, "parse error: styles.yaml:12: unexpected token", err.Error())
}

func TestParseErrorWithoutLine(t *testing.T) {
	t.Parallel()

	err := NewParseError("styles.yaml", 0, stdErrors.New("no such file"))
	require.Equal(t, "parse error: styles.yaml: no such file", err.Error())
}

func TestValidationErrorIncludesField(t *testing.T) {
	t.Parallel()

	err := NewValidationError("components[1].base", "references unknown component", nil)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "components[1].base", validationErr.Field)
	require.Contains(t, validationErr.Message, "references unknown component")
	require.Equal(t, "validation error: references unknown", NewValidationError("", "references unknown", nil).Error())
}

func TestResolveErrorIncludesComponentAndSource(t *testing.T) {
	t.Parallel()

	underlying := stdErrors.New("unknown colour token")
	err := NewResolveError("card", "static", underlying)

	var resolveErr *ResolveError
	require.ErrorAs(t, err, &resolveErr)
	require.Equal(t, "card", resolveErr.Component)
	require.Equal(t, "static", resolveErr.Source)
	require.True(t, stdErrors.Is(err, underlying))
	require.Contains(t, err.Error(), "card (static styles)")
}

func TestEngineErrorIncludesProperty(t *testing.T) {
	t.Parallel()

	underlying := stdErrors.New("not a colour")
	err := NewEngineError("bg", "brand", underlying)

	var engineErr *EngineError
	require.ErrorAs(t, err, &engineErr)
	require.Equal(t, "bg", engineErr.Property)
	require.Equal(t, "brand", engineErr.Value)
	require.True(t, stdErrors.Is(err, underlying))
	require.Equal(t, "engine error [bg=brand]: not a colour", err.Error())
}

func TestNilErrorsRenderEmpty(t *testing.T) {
	t.Parallel()

	var resolveErr *ResolveError
	var engineErr *EngineError
	require.Empty(t, resolveErr.Error())
	require.Empty(t, engineErr.Error())
	require.Nil(t, resolveErr.Unwrap())
}
