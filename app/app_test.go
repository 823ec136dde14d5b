package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFocusCycle(t *testing.T) {
	assert.Equal(t, FocusFilters, FocusSearch.Next())
	assert.Equal(t, FocusCards, FocusFilters.Next())
	assert.Equal(t, FocusSearch, FocusCards.Next())
}

func TestParseCardVariant(t *testing.T) {
	v, err := ParseCardVariant("compact")
	require.NoError(t, err)
	assert.Equal(t, CardCompact, v)
	assert.Equal(t, CardDetailed, v.Toggle())
	assert.Equal(t, "compact", v.String())

	v, err = ParseCardVariant("")
	require.NoError(t, err)
	assert.Equal(t, CardDetailed, v)

	_, err = ParseCardVariant("poster")
	assert.Error(t, err)
}

func TestToggleChecked(t *testing.T) {
	m := NewModel(CardDetailed, 6, "en", "test")

	assert.Equal(t, []string{"blog"}, m.ToggleChecked("blog"))
	assert.Equal(t, []string{"blog", "resume"}, m.ToggleChecked("resume"))
	assert.True(t, m.IsChecked("resume"))

	got := m.ToggleChecked("blog")
	assert.Equal(t, []string{"resume"}, got)
	assert.False(t, m.IsChecked("blog"))

	// The returned slice is a copy.
	got[0] = "changed"
	assert.Equal(t, []string{"resume"}, m.Checked)
}

func TestNewModel(t *testing.T) {
	m := NewModel(CardCompact, 4, "nb", "v1")

	assert.Equal(t, ScreenGallery, m.CurrentScreen)
	assert.Equal(t, FocusSearch, m.Focus)
	assert.True(t, m.Loading)
	assert.True(t, m.SearchInput.Focused())
	assert.Equal(t, 4, m.CardPaginator.PerPage)
}
