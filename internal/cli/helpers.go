package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/flke/flke/internal/models"
)

// ReadDescription returns raw, or everything on in when raw is "-"
func ReadDescription(raw string, in io.Reader) (string, error) {
	if raw != "-" {
		return raw, nil
	}
	data, err := io.ReadAll(in)
	if err != nil {
		return "", fmt.Errorf("failed to read description from stdin: %w", err)
	}
	return strings.TrimRight(string(data), "\n"), nil
}

// ResolveTarget maps a move argument to a status. "next" and "prev" are
// relative to current; anything else is parsed as a status name.
func ResolveTarget(current models.Status, target string) (models.Status, error) {
	switch strings.ToLower(strings.TrimSpace(target)) {
	case "next", "right":
		return current.Next()
	case "prev", "previous", "left":
		return current.Prev()
	default:
		return models.ParseStatus(target)
	}
}

// Confirm asks prompt on out and reads a y/N answer from in
func Confirm(in io.Reader, out io.Writer, prompt string) bool {
	fmt.Fprintf(out, "%s (y/N): ", prompt)
	response, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && response == "" {
		return false
	}
	response = strings.ToLower(strings.TrimSpace(response))
	return response == "y" || response == "yes"
}
