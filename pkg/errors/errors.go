package errors

import (
	"fmt"
)

// UnknownControlError indicates an operation referenced a control id that was
// never created. It is surfaced to the caller immediately and is not
// recoverable within the framework.
type UnknownControlError struct {
	ID string
	Op string
}

// NewUnknownControlError constructs an UnknownControlError for the given
// operation and control id.
func NewUnknownControlError(op, id string) error {
	return &UnknownControlError{ID: id, Op: op}
}

func (e *UnknownControlError) Error() string {
	if e == nil {
		return ""
	}
	if e.Op != "" {
		return fmt.Sprintf("%s: unknown control %q", e.Op, e.ID)
	}
	return fmt.Sprintf("unknown control %q", e.ID)
}

// ParseError represents a definition-file parsing failure with optional line
// metadata.
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

// ValidationError captures panel or control definition validation issues.
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

// PanelError indicates a failure while loading or unloading a settings panel.
type PanelError struct {
	Panel   string
	Message string
	Err     error
}

// NewPanelError constructs a PanelError for the named panel.
func NewPanelError(panel string, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &PanelError{Panel: panel, Message: message, Err: err}
}

func (e *PanelError) Error() string {
	if e == nil {
		return ""
	}
	if e.Panel != "" {
		return fmt.Sprintf("panel %s: %s", e.Panel, e.Message)
	}
	return fmt.Sprintf("panel error: %s", e.Message)
}

// Unwrap exposes the root error.
func (e *PanelError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// BehaviorError indicates issues within control behavior registration or
// dispatch.
type BehaviorError struct {
	Type    string
	Message string
	Err     error
}

// NewBehaviorError constructs a BehaviorError for the given control type.
func NewBehaviorError(controlType string, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &BehaviorError{Type: controlType, Message: message, Err: err}
}

func (e *BehaviorError) Error() string {
	if e == nil {
		return ""
	}
	if e.Type != "" {
		return fmt.Sprintf("behavior %s: %s", e.Type, e.Message)
	}
	return fmt.Sprintf("behavior error: %s", e.Message)
}

// Unwrap exposes the root error.
func (e *BehaviorError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
