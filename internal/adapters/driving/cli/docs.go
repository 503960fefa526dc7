package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var docsCmd = &cobra.Command{
	Use:   "docs",
	Short: "Manage uploaded documents",
	Long:  `List uploaded documents and access their stored PDFs.`,
}

var docsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List your documents",
	Args:  cobra.NoArgs,
	RunE:  runDocsList,
}

var docsURLCmd = &cobra.Command{
	Use:   "url [doc-id]",
	Short: "Print a signed read URL for a document",
	Args:  cobra.ExactArgs(1),
	RunE:  runDocsURL,
}

var docsPagesCmd = &cobra.Command{
	Use:   "pages [doc-id]",
	Short: "Print the page count of a document",
	Args:  cobra.ExactArgs(1),
	RunE:  runDocsPages,
}

func init() {
	docsCmd.AddCommand(docsListCmd)
	docsCmd.AddCommand(docsURLCmd)
	docsCmd.AddCommand(docsPagesCmd)
	rootCmd.AddCommand(docsCmd)
}

func runDocsList(cmd *cobra.Command, _ []string) error {
	if catalogService == nil {
		return errors.New("catalog service not configured")
	}

	ctx := cmd.Context()

	if err := catalogService.Load(ctx); err != nil {
		return fmt.Errorf("failed to load documents: %w", err)
	}

	docs := catalogService.Documents()
	if len(docs) == 0 {
		cmd.Println("No documents uploaded yet.")
		return nil
	}

	for i := range docs {
		cmd.Printf("  %s\n", docs[i].ID)
		cmd.Printf("    Name:     %s\n", docs[i].Name)
		cmd.Printf("    Size:     %d bytes\n", docs[i].SizeBytes)
		cmd.Printf("    Uploaded: %s\n", docs[i].CreatedAt.Format("2006-01-02 15:04:05"))
		cmd.Println()
	}

	cmd.Printf("Total: %d documents\n", len(docs))
	return nil
}

func runDocsURL(cmd *cobra.Command, args []string) error {
	if readerService == nil {
		return errors.New("reader service not configured")
	}

	url, err := readerService.ReadURL(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("failed to get read url: %w", err)
	}

	cmd.Println(url)
	return nil
}

func runDocsPages(cmd *cobra.Command, args []string) error {
	if readerService == nil {
		return errors.New("reader service not configured")
	}

	count, err := readerService.PageCount(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("failed to count pages: %w", err)
	}

	cmd.Printf("%d\n", count)
	return nil
}
