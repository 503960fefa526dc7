// Package cli implements the paperchat command line interface.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/paperchat-labs/paperchat-cli/internal/core/ports/driving"
	"github.com/paperchat-labs/paperchat-cli/internal/logger"
)

// version is set at build time via ldflags.
var version = "dev"

// Services holds the driving ports the commands run against.
// NewChat builds a session bound to one document; NewUploader builds an
// orchestrator whose observer reports stage transitions to the caller.
type Services struct {
	Auth        driving.AuthService
	Catalog     driving.DocumentCatalog
	Reader      driving.DocumentReader
	NewChat     func(documentID string) driving.ChatSession
	NewViewport func() driving.ViewportController
	NewUploader func(observer driving.UploadObserver) driving.UploadOrchestrator
}

var (
	authService    driving.AuthService
	catalogService driving.DocumentCatalog
	readerService  driving.DocumentReader
	newChatSession func(documentID string) driving.ChatSession
	newViewport    func() driving.ViewportController
	newUploader    func(observer driving.UploadObserver) driving.UploadOrchestrator
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "paperchat",
	Short: "Chat with your PDFs from the terminal",
	Long: `Paperchat uploads PDFs to the paperchat backend, has them indexed,
and holds grounded Q&A conversations about their content.`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
}

// SetServices wires the driving ports into the command tree.
func SetServices(s Services) {
	authService = s.Auth
	catalogService = s.Catalog
	readerService = s.Reader
	newChatSession = s.NewChat
	newViewport = s.NewViewport
	newUploader = s.NewUploader
}

// SetVersion overrides the reported version.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
