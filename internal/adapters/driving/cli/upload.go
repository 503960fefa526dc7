package cli

import (
	"context"
	"errors"
	"fmt"
	"mime"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/paperchat-labs/paperchat-cli/internal/core/domain"
	"github.com/paperchat-labs/paperchat-cli/internal/watch"
)

var watchDir string

var uploadCmd = &cobra.Command{
	Use:   "upload [file]",
	Short: "Upload a PDF for indexing",
	Long: `Upload a PDF through the ingestion pipeline: request an upload grant,
transfer the bytes, create the document record, and trigger indexing.

With --watch, monitors a directory and uploads every new PDF dropped
into it until interrupted.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runUpload,
}

func init() {
	uploadCmd.Flags().StringVarP(&watchDir, "watch", "w", "", "watch a directory and upload new PDFs")
	rootCmd.AddCommand(uploadCmd)
}

func runUpload(cmd *cobra.Command, args []string) error {
	if newUploader == nil {
		return errors.New("upload service not configured")
	}

	observer := func(task domain.UploadTask) {
		if task.Err != nil {
			return
		}
		cmd.Printf("  %s... %s\n", task.Stage, task.ProgressLabel)
	}
	uploader := newUploader(observer)

	if watchDir != "" {
		if len(args) > 0 {
			return errors.New("--watch takes no file argument")
		}
		cmd.Printf("Watching %s (Ctrl+C to stop)\n", watchDir)
		err := watch.New(watchDir, uploader).Run(cmd.Context())
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	}

	if len(args) == 0 {
		return errors.New("requires a file argument or --watch")
	}

	file, err := describeFile(args[0])
	if err != nil {
		return err
	}

	cmd.Printf("Uploading %s (%d bytes)\n", file.Name, file.SizeBytes)

	doc, err := uploader.Upload(cmd.Context(), *file)
	if err != nil {
		var stageErr *domain.StageError
		if errors.As(err, &stageErr) {
			return fmt.Errorf("upload failed during %s: %w", stageErr.Stage, stageErr.Err)
		}
		return fmt.Errorf("upload failed: %w", err)
	}

	cmd.Printf("Uploaded %s as document %s\n", doc.Name, doc.ID)
	return nil
}

// describeFile stats a local file and builds its upload descriptor.
// The content type comes from the extension; the orchestrator enforces
// the PDF gate.
func describeFile(path string) (*domain.FileUpload, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%s is a directory", path)
	}

	contentType := mime.TypeByExtension(filepath.Ext(path))
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	return &domain.FileUpload{
		Name:        filepath.Base(path),
		Path:        path,
		SizeBytes:   info.Size(),
		ContentType: contentType,
	}, nil
}
