package documents

import (
	"context"
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paperchat-labs/paperchat-cli/internal/adapters/driving/tui/messages"
	"github.com/paperchat-labs/paperchat-cli/internal/core/domain"
)

// fakeCatalog is a scripted catalog for view tests.
type fakeCatalog struct {
	docs    []domain.Document
	loadErr error
	loads   int
}

func (c *fakeCatalog) Load(context.Context) error {
	c.loads++
	return c.loadErr
}

func (c *fakeCatalog) Append(doc domain.Document) {
	c.docs = append(c.docs, doc)
}

func (c *fakeCatalog) Documents() []domain.Document {
	return c.docs
}

func testDocs() []domain.Document {
	return []domain.Document{
		{ID: "doc-1", Name: "thesis.pdf", SizeBytes: 2048, CreatedAt: time.Now()},
		{ID: "doc-2", Name: "paper.pdf", SizeBytes: 4096, CreatedAt: time.Now()},
	}
}

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestInit_LoadsCatalog(t *testing.T) {
	catalog := &fakeCatalog{docs: testDocs()}
	v := NewView(nil, catalog)

	cmd := v.Init()
	require.NotNil(t, cmd)
	assert.True(t, v.Loading())

	msg := cmd()
	loaded, ok := msg.(messages.CatalogLoaded)
	require.True(t, ok)
	require.NoError(t, loaded.Err)
	assert.Len(t, loaded.Documents, 2)
	assert.Equal(t, 1, catalog.loads)
}

func TestUpdate_CatalogLoaded(t *testing.T) {
	v := NewView(nil, &fakeCatalog{})

	v, _ = v.Update(messages.CatalogLoaded{Documents: testDocs()})

	assert.False(t, v.Loading())
	assert.Len(t, v.Documents(), 2)
	assert.NoError(t, v.Err())
}

func TestUpdate_LoadFailureKeepsList(t *testing.T) {
	v := NewView(nil, &fakeCatalog{})
	v, _ = v.Update(messages.CatalogLoaded{Documents: testDocs()})

	v, _ = v.Update(messages.CatalogLoaded{Err: errors.New("backend down")})

	assert.Error(t, v.Err())
	assert.Len(t, v.Documents(), 2)
}

func TestNavigationAndSelect(t *testing.T) {
	v := NewView(nil, &fakeCatalog{})
	v.SetDimensions(80, 24)
	v, _ = v.Update(messages.CatalogLoaded{Documents: testDocs()})

	v, _ = v.Update(keyMsg("j"))
	assert.Equal(t, 1, v.SelectedIndex())

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)

	selected, ok := cmd().(messages.DocumentSelected)
	require.True(t, ok)
	assert.Equal(t, "doc-2", selected.Document.ID)
}

func TestReloadKey(t *testing.T) {
	catalog := &fakeCatalog{docs: testDocs()}
	v := NewView(nil, catalog)
	v, _ = v.Update(messages.CatalogLoaded{Documents: catalog.docs})

	v, cmd := v.Update(keyMsg("r"))
	require.NotNil(t, cmd)
	assert.True(t, v.Loading())

	cmd()
	assert.Equal(t, 1, catalog.loads)
}

func TestEscReturnsToMenu(t *testing.T) {
	v := NewView(nil, &fakeCatalog{})

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)

	changed, ok := cmd().(messages.ViewChanged)
	require.True(t, ok)
	assert.Equal(t, messages.ViewMenu, changed.View)
}

func TestView_EmptyState(t *testing.T) {
	v := NewView(nil, &fakeCatalog{})
	v.SetDimensions(80, 24)
	v, _ = v.Update(messages.CatalogLoaded{})

	assert.Contains(t, v.View(), "No documents yet")
}

func TestView_RendersDocuments(t *testing.T) {
	v := NewView(nil, &fakeCatalog{})
	v.SetDimensions(80, 24)
	v, _ = v.Update(messages.CatalogLoaded{Documents: testDocs()})

	out := v.View()
	assert.Contains(t, out, "thesis.pdf")
	assert.Contains(t, out, "paper.pdf")
	assert.Contains(t, out, "Documents (2)")
}

func TestFormatSize(t *testing.T) {
	assert.Equal(t, "512 B", formatSize(512))
	assert.Equal(t, "2.0 KB", formatSize(2048))
	assert.Equal(t, "1.5 MB", formatSize(3<<19))
}

func TestView_HelpFooterFromBindings(t *testing.T) {
	v := NewView(nil, &fakeCatalog{docs: testDocs()})
	v.SetDimensions(80, 24)

	out := v.View()

	assert.Contains(t, out, "↑/k: up")
	assert.Contains(t, out, "enter: select")
	assert.Contains(t, out, "r: reload")
	assert.Contains(t, out, "esc: back")
}
