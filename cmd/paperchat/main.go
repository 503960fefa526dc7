// Command paperchat is the terminal client for the paperchat backend.
package main

import (
	"fmt"
	"os"

	"github.com/paperchat-labs/paperchat-cli/internal/adapters/driven/auth"
	"github.com/paperchat-labs/paperchat-cli/internal/adapters/driven/backend"
	"github.com/paperchat-labs/paperchat-cli/internal/adapters/driven/config/file"
	"github.com/paperchat-labs/paperchat-cli/internal/adapters/driven/pdfinfo"
	"github.com/paperchat-labs/paperchat-cli/internal/adapters/driven/storage/sqlite"
	"github.com/paperchat-labs/paperchat-cli/internal/adapters/driving/cli"
	"github.com/paperchat-labs/paperchat-cli/internal/core/ports/driving"
	"github.com/paperchat-labs/paperchat-cli/internal/core/services"
)

// defaultAPIURL is used when neither config nor environment set one.
const defaultAPIURL = "http://localhost:4000"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	config, err := file.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	store, err := sqlite.NewStore(config.GetString(file.KeyDataDir))
	if err != nil {
		return fmt.Errorf("opening state store: %w", err)
	}
	defer store.Close()

	sessions := store.SessionStore()
	tokens := auth.NewSessionTokenProvider(sessions)

	apiURL := config.GetString(file.KeyAPIURL)
	if apiURL == "" {
		apiURL = defaultAPIURL
	}

	gateway := backend.NewClient(apiURL, backend.WithTokenProvider(tokens))
	objects := backend.NewObjectStore(nil)
	pages := pdfinfo.NewInspector()

	authService := services.NewAuthService(gateway, sessions)
	catalog := services.NewCatalogService(gateway)
	reader := services.NewReaderService(gateway, objects, pages)

	cli.SetServices(cli.Services{
		Auth:    authService,
		Catalog: catalog,
		Reader:  reader,
		NewChat: func(documentID string) driving.ChatSession {
			return services.NewChatService(gateway, documentID)
		},
		NewViewport: func() driving.ViewportController {
			return services.NewViewportService()
		},
		NewUploader: func(observer driving.UploadObserver) driving.UploadOrchestrator {
			return services.NewUploadService(gateway, objects, catalog, observer)
		},
	})

	return cli.Execute()
}
