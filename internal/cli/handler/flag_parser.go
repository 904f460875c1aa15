// Package handler provides flag parsing utilities
package handler

import (
	"fmt"
	"io"
	"strings"

	"github.com/flke/flke/internal/cli"
	"github.com/flke/flke/internal/models"
	"github.com/flke/flke/internal/types"
	"github.com/spf13/cobra"
)

// FlagParser provides common flag extraction patterns
type FlagParser struct {
	cmd  *cobra.Command
	args []string
}

// NewFlagParser creates a new flag parser
func NewFlagParser(cmd *cobra.Command, args []string) *FlagParser {
	return &FlagParser{cmd: cmd, args: args}
}

// Args returns the positional arguments
func (p *FlagParser) Args() []string {
	return p.args
}

// In returns the command's input stream
func (p *FlagParser) In() io.Reader {
	return p.cmd.InOrStdin()
}

// Out returns the stream prompts are written to
func (p *FlagParser) Out() io.Writer {
	return p.cmd.ErrOrStderr()
}

// Formatter builds the output formatter from --json and --quiet
func (p *FlagParser) Formatter() *cli.OutputFormatter {
	jsonOutput, quietMode, _ := p.OutputFormats()
	return &cli.OutputFormatter{JSON: jsonOutput, Quiet: quietMode}
}

// Changed reports whether the flag was set on the command line
func (p *FlagParser) Changed(flagName string) bool {
	return p.cmd.Flags().Changed(flagName)
}

// ParseTaskID extracts task ID from a flag
func (p *FlagParser) ParseTaskID(flagName string) (types.TaskID, error) {
	id, err := p.ParseInt(flagName)
	if err != nil {
		return 0, err
	}
	return types.TaskID(id), nil
}

// ParseUserID extracts a company record ID from a flag
func (p *FlagParser) ParseUserID(flagName string) (types.CompanyID, error) {
	id, err := p.ParseInt(flagName)
	if err != nil {
		return 0, err
	}
	return types.CompanyID(id), nil
}

// ParseStatus extracts and validates a status flag
func (p *FlagParser) ParseStatus(flagName string) (models.Status, error) {
	raw, err := p.cmd.Flags().GetString(flagName)
	if err != nil {
		return "", fmt.Errorf("failed to parse %s flag: %w", flagName, err)
	}
	status, err := models.ParseStatus(raw)
	if err != nil {
		return "", fmt.Errorf("--%s: %w", flagName, err)
	}
	return status, nil
}

// ParseString extracts a required string flag
func (p *FlagParser) ParseString(flagName string) (string, error) {
	value, err := p.cmd.Flags().GetString(flagName)
	if err != nil {
		return "", fmt.Errorf("failed to parse %s flag: %w", flagName, err)
	}
	value = strings.TrimSpace(value)
	if value == "" {
		return "", fmt.Errorf("%w: --%s is required", cli.ErrUsage, flagName)
	}
	return value, nil
}

// ParseStringOptional extracts an optional string flag
func (p *FlagParser) ParseStringOptional(flagName string) (string, error) {
	return p.cmd.Flags().GetString(flagName)
}

// ParseInt extracts a required int flag
func (p *FlagParser) ParseInt(flagName string) (int, error) {
	value, err := p.cmd.Flags().GetInt(flagName)
	if err != nil {
		return 0, fmt.Errorf("failed to parse %s flag: %w", flagName, err)
	}
	if value <= 0 {
		return 0, fmt.Errorf("%w: --%s must be greater than 0", cli.ErrUsage, flagName)
	}
	return value, nil
}

// ParseIntOptional extracts an optional int flag
func (p *FlagParser) ParseIntOptional(flagName string) (int, error) {
	return p.cmd.Flags().GetInt(flagName)
}

// ParseBool extracts a boolean flag
func (p *FlagParser) ParseBool(flagName string) (bool, error) {
	return p.cmd.Flags().GetBool(flagName)
}

// OutputFormats extracts JSON and Quiet output flags
func (p *FlagParser) OutputFormats() (jsonOutput bool, quietMode bool, err error) {
	jsonOutput, err = p.cmd.Flags().GetBool("json")
	if err != nil {
		return false, false, fmt.Errorf("failed to parse json flag: %w", err)
	}

	quietMode, err = p.cmd.Flags().GetBool("quiet")
	if err != nil {
		return false, false, fmt.Errorf("failed to parse quiet flag: %w", err)
	}

	return jsonOutput, quietMode, nil
}
