package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUnknownControlErrorMessage(t *testing.T) {
	t.Parallel()

	err := NewUnknownControlError("SetValue", "font_chooser")
	require.EqualError(t, err, `SetValue: unknown control "font_chooser"`)

	var unknown *UnknownControlError
	require.True(t, errors.As(err, &unknown))
	require.Equal(t, "font_chooser", unknown.ID)
}

func TestParseErrorIncludesLine(t *testing.T) {
	t.Parallel()

	inner := errors.New("bad indentation")
	err := NewParseError("panels.yaml", 12, inner)
	require.EqualError(t, err, "parse error: panels.yaml:12: bad indentation")
	require.ErrorIs(t, err, inner)
}

func TestParseErrorWithoutLine(t *testing.T) {
	t.Parallel()

	err := NewParseError("panels.yaml", 0, errors.New("empty document"))
	require.EqualError(t, err, "parse error: panels.yaml: empty document")
}

func TestValidationErrorFieldPrefix(t *testing.T) {
	t.Parallel()

	err := NewValidationError("panels[0].type", "unsupported control type", nil)
	require.EqualError(t, err, "validation error: panels[0].type: unsupported control type")
}

func TestPanelErrorWrapsCause(t *testing.T) {
	t.Parallel()

	cause := NewUnknownControlError("GetValue", "border_top")
	err := NewPanelError("cell", cause)
	require.ErrorIs(t, err, cause)
	require.Contains(t, err.Error(), "panel cell")
}

func TestBehaviorErrorMessage(t *testing.T) {
	t.Parallel()

	err := NewBehaviorError("colorchooser", errors.New("behavior already registered"))
	require.EqualError(t, err, "behavior colorchooser: behavior already registered")
}
