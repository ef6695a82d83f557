package errors

import (
	"fmt"
)

// ParseError represents a stylesheet parsing failure with optional line metadata.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures stylesheet validation issues.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ResolveError reports a failure while resolving the styles of a component.
type ResolveError struct {
	Component string
	Source    string
	Err       error
}

// NewResolveError constructs a ResolveError for the named component and style source.
func NewResolveError(component, source string, err error) error {
	return &ResolveError{Component: component, Source: source, Err: err}
}

func (e *ResolveError) Error() string {
	if e == nil {
		return ""
	}
	switch {
	case e.Component != "" && e.Source != "":
		return fmt.Sprintf("resolve error on %s (%s styles): %v", e.Component, e.Source, e.Err)
	case e.Component != "":
		return fmt.Sprintf("resolve error on %s: %v", e.Component, e.Err)
	default:
		return fmt.Sprintf("resolve error: %v", e.Err)
	}
}

// Unwrap exposes the root error.
func (e *ResolveError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// EngineError indicates a style property the engine could not translate.
type EngineError struct {
	Property string
	Value    any
	Message  string
	Err      error
}

// NewEngineError constructs an EngineError for the given property and value.
func NewEngineError(property string, value any, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &EngineError{Property: property, Value: value, Message: message, Err: err}
}

func (e *EngineError) Error() string {
	if e == nil {
		return ""
	}
	if e.Property != "" {
		return fmt.Sprintf("engine error [%s=%v]: %s", e.Property, e.Value, e.Message)
	}
	return fmt.Sprintf("engine error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *EngineError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
