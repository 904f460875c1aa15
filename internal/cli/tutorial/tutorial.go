package tutorial

import (
	_ "embed"
	"fmt"

	"github.com/flke/flke/internal/markdown"
	"github.com/spf13/cobra"
)

//go:embed tutorial.md
var tutorialContent string

// renderWidth is the wrap width of the rendered guide
const renderWidth = 80

// TutorialCmd returns the tutorial command
func TutorialCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tutorial",
		Short: "Print the flke workflow guide",
		Long: `Print the essential flke workflow: starting the development store,
signing in, and working the board from the TUI or from scripts.

Use --raw for plain markdown, e.g. when piping into another tool.`,
		Run: func(cmd *cobra.Command, args []string) {
			raw, _ := cmd.Flags().GetBool("raw")
			outputTutorial(raw)
		},
	}
	cmd.Flags().Bool("raw", false, "Print markdown without rendering")
	return cmd
}

func outputTutorial(raw bool) {
	if raw {
		fmt.Print(tutorialContent)
		return
	}
	fmt.Println(markdown.Render(tutorialContent, renderWidth))
}
