package handler

import (
	"testing"

	"github.com/flke/flke/internal/cli"
	"github.com/flke/flke/internal/models"
	"github.com/flke/flke/internal/types"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ============================================================================
// Test Helpers
// ============================================================================

// createTestParser parses args against a command carrying the usual flags
func createTestParser(t *testing.T, args ...string) *FlagParser {
	t.Helper()
	cmd := &cobra.Command{
		Use: "test",
		Run: func(cmd *cobra.Command, args []string) {},
	}
	cmd.Flags().Int("id", 0, "")
	cmd.Flags().String("title", "", "")
	cmd.Flags().String("status", "todo", "")
	AddOutputFlags(cmd)
	require.NoError(t, cmd.ParseFlags(args))
	return NewFlagParser(cmd, cmd.Flags().Args())
}

// ============================================================================
// ID Tests
// ============================================================================

func TestParseTaskID(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    types.TaskID
		wantErr bool
	}{
		{"valid task ID", []string{"--id", "42"}, 42, false},
		{"zero task ID", []string{"--id", "0"}, 0, true},
		{"negative task ID", []string{"--id", "-1"}, 0, true},
		{"missing flag", nil, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := createTestParser(t, tt.args...).ParseTaskID("id")
			if tt.wantErr {
				assert.ErrorIs(t, err, cli.ErrUsage)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseUserID(t *testing.T) {
	got, err := createTestParser(t, "--id", "7").ParseUserID("id")
	require.NoError(t, err)
	assert.Equal(t, types.CompanyID(7), got)
}

// ============================================================================
// String and Status Tests
// ============================================================================

func TestParseString(t *testing.T) {
	got, err := createTestParser(t, "--title", "  Fix bug  ").ParseString("title")
	require.NoError(t, err)
	assert.Equal(t, "Fix bug", got)

	_, err = createTestParser(t, "--title", "   ").ParseString("title")
	assert.ErrorIs(t, err, cli.ErrUsage)
}

func TestParseStatus(t *testing.T) {
	got, err := createTestParser(t).ParseStatus("status")
	require.NoError(t, err)
	assert.Equal(t, models.StatusTodo, got)

	got, err = createTestParser(t, "--status", "In Progress").ParseStatus("status")
	require.NoError(t, err)
	assert.Equal(t, models.StatusDoing, got)

	_, err = createTestParser(t, "--status", "archived").ParseStatus("status")
	assert.ErrorIs(t, err, models.ErrUnknownStatus)
}

// ============================================================================
// Output Flag Tests
// ============================================================================

func TestFormatter(t *testing.T) {
	f := createTestParser(t, "--json").Formatter()
	assert.True(t, f.JSON)
	assert.False(t, f.Quiet)

	f = createTestParser(t, "--quiet").Formatter()
	assert.True(t, f.Quiet)
}

func TestChangedAndArgs(t *testing.T) {
	p := createTestParser(t, "--title", "x", "next")
	assert.True(t, p.Changed("title"))
	assert.False(t, p.Changed("id"))
	assert.Equal(t, []string{"next"}, p.Args())
}
