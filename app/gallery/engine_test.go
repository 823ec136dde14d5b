package gallery

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Guerrilla-Interactive/nextgen-site-gallery/app/catalog"
)

type staticCatalog []catalog.Entry

func (c staticCatalog) Entries() []catalog.Entry {
	return append([]catalog.Entry(nil), c...)
}

func scenarioCatalog() staticCatalog {
	return staticCatalog{
		{ID: "1", Title: "Blog", UseCase: "blog", Tags: []string{"blog"}},
		{ID: "2", Title: "CV", UseCase: "resume", Tags: []string{"resume"}},
	}
}

func richCatalog() staticCatalog {
	return staticCatalog{
		{ID: "a", Title: "Blog", UseCase: "blog", Tags: []string{"blog", "personal"}},
		{ID: "b", Title: "Course", UseCase: "course", Tags: []string{"course", "education"}},
		{ID: "c", Title: "CV", UseCase: "resume", Tags: []string{"resume", "personal"}},
		{ID: "d", Title: "Lab", UseCase: "research", Tags: []string{"research", "Education"}},
	}
}

func viewIDs(entries []catalog.Entry) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.ID)
	}
	return out
}

func TestScenarioA_CategoryFilter(t *testing.T) {
	e := New(scenarioCatalog(), nil)

	e.SetCategoryFilters([]string{"blog"})

	assert.Equal(t, []string{"1"}, viewIDs(e.CurrentView()))
	assert.Equal(t, 1, e.ResultCount())
}

func TestScenarioB_TextQueryMatchesTagsNotTitles(t *testing.T) {
	e := New(scenarioCatalog(), nil)

	e.SetTextQuery("resume")
	assert.Equal(t, []string{"2"}, viewIDs(e.CurrentView()))

	// "CV" is a title, not a tag.
	e.SetTextQuery("CV")
	assert.Empty(t, e.CurrentView())
	assert.Equal(t, 0, e.ResultCount())
}

func TestScenarioC_SelectionToggles(t *testing.T) {
	e := New(scenarioCatalog(), nil)

	e.ToggleSelect("1")
	id, ok := e.Selected()
	assert.True(t, ok)
	assert.Equal(t, "1", id)

	e.ToggleSelect("1")
	_, ok = e.Selected()
	assert.False(t, ok)
}

func TestScenarioD_UnreachableCatalog(t *testing.T) {
	store := catalog.NewStore(catalog.NewSource("http://127.0.0.1:1/data.json", 0))
	e := New(store, nil)

	_, err := store.Load(context.Background())
	require.Error(t, err)
	e.Recompute()

	assert.Empty(t, store.Entries())
	assert.Empty(t, e.CurrentView())
	assert.Equal(t, 0, e.ResultCount())
}

func TestResetRestoresFullCatalog(t *testing.T) {
	full := richCatalog()
	criteria := []func(*Engine){
		func(e *Engine) {},
		func(e *Engine) { e.SetCategoryFilters([]string{"blog", "course"}) },
		func(e *Engine) { e.SetTextQuery("personal") },
		func(e *Engine) { e.SetCategoryFilters([]string{"nothing"}); e.SetTextQuery("x") },
	}
	for i, apply := range criteria {
		e := New(full, nil)
		apply(e)

		e.Reset()
		assert.Equal(t, viewIDs(full), viewIDs(e.Recompute()), "case %d", i)
		assert.True(t, e.Criteria().Empty(), "case %d", i)
	}
}

func TestEmptyCriteriaIsIdentity(t *testing.T) {
	full := richCatalog()
	e := New(full, nil)

	assert.Equal(t, []catalog.Entry(full), e.CurrentView())

	e.SetCategoryFilters(nil)
	e.SetTextQuery("")
	assert.Equal(t, []catalog.Entry(full), e.CurrentView())
}

func TestFilterIsSubsetWithOrSemantics(t *testing.T) {
	full := richCatalog()
	cases := []struct {
		name       string
		categories []string
		query      string
		want       []string
	}{
		{"single category", []string{"course"}, "", []string{"b"}},
		{"two categories are OR", []string{"blog", "resume"}, "", []string{"a", "c"}},
		{"category plus query are OR", []string{"blog"}, "research", []string{"a", "d"}},
		{"query folds case", nil, "EDUCATION", []string{"b", "d"}},
		{"shared tag", []string{"personal"}, "", []string{"a", "c"}},
		{"no match", []string{"unknown"}, "", []string{}},
		{"category match is exact", []string{"Blog"}, "", []string{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := New(full, nil)
			e.SetCategoryFilters(tc.categories)
			e.SetTextQuery(tc.query)

			view := e.CurrentView()
			assert.Equal(t, tc.want, viewIDs(view))

			active := e.ActiveFilters()
			for _, entry := range view {
				assert.Contains(t, viewIDs(full), entry.ID)
				matched := false
				for _, tag := range entry.Tags {
					for _, f := range active {
						if tag == f || (f == e.Criteria().Query && strings.EqualFold(tag, f)) {
							matched = true
						}
					}
				}
				assert.True(t, matched, "entry %s has no tag in %v", entry.ID, active)
			}
		})
	}
}

func TestToggleSelectIsInvolutive(t *testing.T) {
	for _, id := range []string{"a", "b", "c", "d"} {
		e := New(richCatalog(), nil)
		e.ToggleSelect(id)
		e.ToggleSelect(id)
		_, ok := e.Selected()
		assert.False(t, ok, "id %s", id)
	}
}

func TestToggleSelectSwitchesSelection(t *testing.T) {
	e := New(richCatalog(), nil)

	e.ToggleSelect("a")
	e.ToggleSelect("b")

	id, _ := e.Selected()
	assert.Equal(t, "b", id)
}

func TestToggleSelectOutsideViewIsNoop(t *testing.T) {
	e := New(richCatalog(), nil)
	e.SetCategoryFilters([]string{"blog"})

	e.ToggleSelect("b")
	_, ok := e.Selected()
	assert.False(t, ok)

	e.ToggleSelect("missing")
	_, ok = e.Selected()
	assert.False(t, ok)
}

func TestSelectionIsNotRevalidatedOnFilter(t *testing.T) {
	e := New(richCatalog(), nil)
	e.ToggleSelect("b")

	e.SetCategoryFilters([]string{"blog"})

	id, ok := e.Selected()
	assert.True(t, ok)
	assert.Equal(t, "b", id)
	entry, ok := e.SelectedEntry()
	require.True(t, ok)
	assert.Equal(t, "Course", entry.Title)

	// The dangling selection can still be cleared.
	e.ToggleSelect("b")
	_, ok = e.Selected()
	assert.False(t, ok)
}

func TestSetCategoryFiltersReplacesWholesale(t *testing.T) {
	e := New(richCatalog(), nil)
	e.SetCategoryFilters([]string{"blog", "course", "blog"})
	assert.Equal(t, []string{"blog", "course"}, e.Criteria().Categories)

	e.SetCategoryFilters([]string{"resume"})
	assert.Equal(t, []string{"resume"}, e.Criteria().Categories)
	assert.Equal(t, []string{"c"}, viewIDs(e.CurrentView()))
}

func TestActiveFiltersListsQueryLast(t *testing.T) {
	e := New(richCatalog(), nil)
	e.SetTextQuery("Personal")
	e.SetCategoryFilters([]string{"course", "blog"})

	assert.Equal(t, []string{"course", "blog", "personal"}, e.ActiveFilters())
}

func TestCurrentViewIsACopy(t *testing.T) {
	e := New(richCatalog(), nil)

	view := e.CurrentView()
	view[0] = catalog.Entry{ID: "mutated"}

	assert.Equal(t, "a", e.CurrentView()[0].ID)
}

func TestRecomputePicksUpNewlyLoadedCatalog(t *testing.T) {
	store := catalog.NewStore(catalog.EmbeddedSource{})
	e := New(store, nil)
	require.Empty(t, e.CurrentView())

	entries, err := store.Load(context.Background())
	require.NoError(t, err)
	e.Recompute()

	assert.Equal(t, viewIDs(entries), viewIDs(e.CurrentView()))
}
