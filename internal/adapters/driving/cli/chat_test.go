package cli

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/paperchat-labs/paperchat-cli/internal/core/domain"
	"github.com/paperchat-labs/paperchat-cli/internal/core/ports/driving"
)

func TestChatCmd_Use(t *testing.T) {
	assert.Equal(t, "chat [doc-id] [question]", chatCmd.Use)
}

func TestChatCmd_RequiresDocID(t *testing.T) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"chat"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "accepts between 1 and 2 arg(s)")
}

func TestChatCmd_PrintsAnswer(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"chat", "doc-1", "what is this about?"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "grounded answer")
}

func TestChatCmd_BindsSessionToDocument(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	var session *fakeChat
	newChatSession = func(documentID string) driving.ChatSession {
		session = &fakeChat{documentID: documentID}
		return session
	}

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"chat", "doc-42", "hello?"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Equal(t, "doc-42", session.documentID)
	assert.Equal(t, []string{"hello?"}, session.sent)
}

func TestChatCmd_RequiresQuestionWithoutHistory(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"chat", "doc-1"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "requires a question")
}

func TestChatCmd_PrintsHistory(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	newChatSession = func(documentID string) driving.ChatSession {
		return &fakeChat{
			documentID: documentID,
			history: []domain.ChatMessage{
				domain.AnsweredMessage("what is chapter two?", "the methodology"),
				domain.PendingMessage("and chapter three?"),
			},
		}
	}

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"chat", "doc-1", "--history"})
	defer func() {
		rootCmd.SetArgs(nil)
		chatShowHistory = false
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "Q: what is chapter two?")
	assert.Contains(t, buf.String(), "A: the methodology")
	assert.Contains(t, buf.String(), "Q: and chapter three?")
	assert.Contains(t, buf.String(), "A: (unanswered)")
}

func TestChatCmd_PrintsEmptyHistory(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"chat", "doc-1", "--history"})
	defer func() {
		rootCmd.SetArgs(nil)
		chatShowHistory = false
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "No conversation yet.")
}

func TestChatCmd_ReportsHydrateFailure(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	newChatSession = func(documentID string) driving.ChatSession {
		return &fakeChat{documentID: documentID, hydrateErr: errors.New("backend down")}
	}

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"chat", "doc-1", "hello?"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load chat history")
}

func TestChatCmd_ReportsSendFailure(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	newChatSession = func(documentID string) driving.ChatSession {
		return &fakeChat{documentID: documentID, sendErr: domain.ErrSendInFlight}
	}

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"chat", "doc-1", "hello?"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "chat failed")
}

func TestChatCmd_HonorsCommandContext(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	newChatSession = func(documentID string) driving.ChatSession {
		return &fakeChat{
			documentID: documentID,
			hydrate:    func(ctx context.Context) error { return ctx.Err() },
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"chat", "doc-1", "hello?"})
	defer func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetContext(context.Background())
	}()

	err := rootCmd.ExecuteContext(ctx)

	assert.ErrorIs(t, err, context.Canceled)
}
