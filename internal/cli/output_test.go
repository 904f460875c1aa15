package cli

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/flke/flke/internal/models"
	"github.com/flke/flke/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockDataWithoutID struct {
	Name  string
	Value int
}

// ============================================================================
// Success - JSON Mode
// ============================================================================

func TestOutputFormatter_Success_JSON(t *testing.T) {
	formatter := &OutputFormatter{JSON: true}

	output := testutil.CaptureOutput(t, func() {
		require.NoError(t, formatter.Success(&models.Task{ID: 7, Title: "Ship it", Status: models.StatusDoing}))
	})

	var result struct {
		Success bool        `json:"success"`
		Data    models.Task `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(output), &result), output)
	assert.True(t, result.Success)
	assert.Equal(t, "Ship it", result.Data.Title)
	assert.Equal(t, models.StatusDoing, result.Data.Status)
}

func TestOutputFormatter_Success_JSON_Nil(t *testing.T) {
	formatter := &OutputFormatter{JSON: true}

	output := testutil.CaptureOutput(t, func() {
		require.NoError(t, formatter.Success(nil))
	})

	var result map[string]any
	require.NoError(t, json.Unmarshal([]byte(output), &result))
	assert.Equal(t, true, result["success"])
	assert.Nil(t, result["data"])
}

// ============================================================================
// Success - Quiet Mode
// ============================================================================

func TestOutputFormatter_Success_Quiet(t *testing.T) {
	tests := []struct {
		name string
		data any
		want string
	}{
		{"task prints id", &models.Task{ID: 42}, "42"},
		{"user prints id", &models.Company{ID: 9, Username: "ann"}, "9"},
		{"no id falls back to pretty print", mockDataWithoutID{Name: "Test", Value: 42}, "{Name:Test Value:42}"},
		{"string", "plain string output", "plain string output"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			formatter := &OutputFormatter{Quiet: true}
			output := testutil.CaptureOutput(t, func() {
				require.NoError(t, formatter.Success(tt.data))
			})
			assert.Equal(t, tt.want, strings.TrimSpace(output))
		})
	}
}

// ============================================================================
// Error
// ============================================================================

func TestOutputFormatter_ErrorWithSuggestion_JSON(t *testing.T) {
	formatter := &OutputFormatter{JSON: true}

	output := testutil.CaptureOutput(t, func() {
		require.NoError(t, formatter.ErrorWithSuggestion("NO_COMPANY", "no company id configured", "set one"))
	})

	var result struct {
		Success bool `json:"success"`
		Error   struct {
			Code       string `json:"code"`
			Message    string `json:"message"`
			Suggestion string `json:"suggestion"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal([]byte(output), &result))
	assert.False(t, result.Success)
	assert.Equal(t, "NO_COMPANY", result.Error.Code)
	assert.Equal(t, "no company id configured", result.Error.Message)
	assert.Equal(t, "set one", result.Error.Suggestion)
}

func TestOutputFormatter_Error_JSON_OmitsEmptySuggestion(t *testing.T) {
	formatter := &OutputFormatter{JSON: true}

	output := testutil.CaptureOutput(t, func() {
		require.NoError(t, formatter.Error("ERROR", "boom"))
	})

	assert.NotContains(t, output, "suggestion")
}

func TestOutputFormatter_Error_HumanGoesToStderr(t *testing.T) {
	formatter := &OutputFormatter{}

	output := testutil.CaptureOutput(t, func() {
		require.NoError(t, formatter.Error("ERROR", "boom"))
	})

	assert.Empty(t, output)
}

func TestOutputFormatter_JSONList(t *testing.T) {
	formatter := &OutputFormatter{JSON: true}

	output := testutil.CaptureOutput(t, func() {
		require.NoError(t, formatter.JSONList("tasks", []*models.Task{{ID: 1}, {ID: 2}}))
	})

	var result struct {
		Success bool           `json:"success"`
		Tasks   []*models.Task `json:"tasks"`
	}
	require.NoError(t, json.Unmarshal([]byte(output), &result))
	assert.True(t, result.Success)
	assert.Len(t, result.Tasks, 2)
}
