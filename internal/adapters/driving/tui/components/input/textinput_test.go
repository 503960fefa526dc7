package input

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQueryInput(t *testing.T) {
	q := NewQueryInput(nil, "Ask something...")

	require.NotNil(t, q)
	assert.True(t, q.Focused())
	assert.Empty(t, q.Value())
}

func TestQueryInput_TypedRunes(t *testing.T) {
	q := NewQueryInput(nil, "")

	q, _ = q.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("hello")})

	assert.Equal(t, "hello", q.Value())
}

func TestQueryInput_SetValueAndReset(t *testing.T) {
	q := NewQueryInput(nil, "")

	q.SetValue("draft question")
	assert.Equal(t, "draft question", q.Value())

	q.Reset()
	assert.Empty(t, q.Value())
}

func TestQueryInput_FocusBlur(t *testing.T) {
	q := NewQueryInput(nil, "")

	q.Blur()
	assert.False(t, q.Focused())

	q.Focus()
	assert.True(t, q.Focused())
}

func TestQueryInput_SetWidthFloor(t *testing.T) {
	q := NewQueryInput(nil, "")

	q.SetWidth(10)
	assert.Equal(t, 10, q.Width())
}
