package cli

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/paperchat-labs/paperchat-cli/internal/adapters/driving/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive terminal UI",
	Long: `Launch the interactive terminal user interface for paperchat.

Browse your documents, upload PDFs, and hold conversations with
keyboard navigation.

Controls:
  ↑/k, ↓/j - Navigate
  Enter    - Select / Send
  Esc      - Back
  q        - Quit`,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) error {
	// Panic recovery keeps stack traces out of the alt screen
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	app, err := tui.NewApp(&tui.Ports{
		Auth:        authService,
		Catalog:     catalogService,
		Reader:      readerService,
		NewChat:     newChatSession,
		NewViewport: newViewport,
		NewUploader: newUploader,
	})
	if err != nil {
		return fmt.Errorf("starting TUI: %w", err)
	}

	return app.WithContext(cmd.Context()).Run()
}
