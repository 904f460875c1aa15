package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/flke/flke/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ============================================================================
// Move Target Tests
// ============================================================================

func TestResolveTarget(t *testing.T) {
	tests := []struct {
		current models.Status
		target  string
		want    models.Status
	}{
		{models.StatusTodo, "next", models.StatusDoing},
		{models.StatusDoing, "prev", models.StatusTodo},
		{models.StatusDoing, "RIGHT", models.StatusDone},
		{models.StatusTodo, "done", models.StatusDone},
		{models.StatusDone, "Doing", models.StatusDoing},
	}

	for _, tt := range tests {
		t.Run(string(tt.current)+"->"+tt.target, func(t *testing.T) {
			got, err := ResolveTarget(tt.current, tt.target)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveTarget_Errors(t *testing.T) {
	_, err := ResolveTarget(models.StatusDone, "next")
	assert.ErrorIs(t, err, models.ErrAlreadyLastColumn)

	_, err = ResolveTarget(models.StatusTodo, "prev")
	assert.ErrorIs(t, err, models.ErrAlreadyFirstColumn)

	_, err = ResolveTarget(models.StatusTodo, "blocked")
	assert.ErrorIs(t, err, models.ErrUnknownStatus)
}

// ============================================================================
// Input Tests
// ============================================================================

func TestReadDescription(t *testing.T) {
	got, err := ReadDescription("inline", strings.NewReader("ignored"))
	require.NoError(t, err)
	assert.Equal(t, "inline", got)

	got, err = ReadDescription("-", strings.NewReader("# From stdin\n\nbody\n"))
	require.NoError(t, err)
	assert.Equal(t, "# From stdin\n\nbody", got)
}

func TestConfirm(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"y\n", true},
		{"YES\n", true},
		{"n\n", false},
		{"\n", false},
		{"", false},
	}

	for _, tt := range tests {
		var out bytes.Buffer
		assert.Equal(t, tt.want, Confirm(strings.NewReader(tt.input), &out, "Delete?"), "input %q", tt.input)
		assert.Equal(t, "Delete? (y/N): ", out.String())
	}
}
