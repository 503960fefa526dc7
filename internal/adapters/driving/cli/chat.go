package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var chatShowHistory bool

var chatCmd = &cobra.Command{
	Use:   "chat [doc-id] [question]",
	Short: "Ask a question about a document",
	Long: `Ask a one-shot question about an uploaded document.

The conversation history is hydrated first so the backend answers with
full context. Use --history to print the prior conversation instead of
asking.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runChat,
}

func init() {
	chatCmd.Flags().BoolVar(&chatShowHistory, "history", false, "print the conversation so far")
	rootCmd.AddCommand(chatCmd)
}

func runChat(cmd *cobra.Command, args []string) error {
	if newChatSession == nil {
		return errors.New("chat service not configured")
	}

	session := newChatSession(args[0])
	ctx := cmd.Context()

	if err := session.Hydrate(ctx); err != nil {
		return fmt.Errorf("failed to load chat history: %w", err)
	}

	if chatShowHistory {
		history := session.History()
		if len(history) == 0 {
			cmd.Println("No conversation yet.")
			return nil
		}
		for _, msg := range history {
			cmd.Printf("Q: %s\n", msg.Query())
			if answer, ok := msg.Answer(); ok {
				cmd.Printf("A: %s\n", answer)
			} else {
				cmd.Println("A: (unanswered)")
			}
			cmd.Println()
		}
		return nil
	}

	if len(args) < 2 {
		return errors.New("requires a question (or --history)")
	}

	answered, err := session.Send(ctx, args[1])
	if err != nil {
		return fmt.Errorf("chat failed: %w", err)
	}

	answer, _ := answered.Answer()
	cmd.Println(answer)
	return nil
}
