// Package gallery holds the filter, search and selection state behind the
// template gallery. It has no rendering code; views subscribe to updates and
// feed intents back through Dispatch.
package gallery

import (
	"log/slog"
	"strings"

	"github.com/Guerrilla-Interactive/nextgen-site-gallery/app/catalog"
)

// Catalog is the read side of the data store the engine filters.
type Catalog interface {
	Entries() []catalog.Entry
}

// Criteria is a snapshot of the active filters.
type Criteria struct {
	Categories []string
	Query      string
}

// Empty reports whether no filter is active.
func (c Criteria) Empty() bool {
	return len(c.Categories) == 0 && c.Query == ""
}

// Engine derives the filtered view and tracks the selected entry.
//
// Engine is not safe for concurrent use; all calls are expected on one
// event loop.
type Engine struct {
	catalog    Catalog
	logger     *slog.Logger
	categories []string
	query      string
	view       []catalog.Entry
	selected   string
	subs       subscriptions
}

// New creates an engine over c and computes the initial view.
func New(c Catalog, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	e := &Engine{
		catalog: c,
		logger:  logger.With("component", "gallery"),
	}
	e.view = e.derive()
	return e
}

// SetCategoryFilters replaces the selected categories with the given set.
func (e *Engine) SetCategoryFilters(categories []string) []catalog.Entry {
	e.categories = dedupe(categories)
	return e.Recompute()
}

// SetTextQuery replaces the search token. An empty query clears it.
func (e *Engine) SetTextQuery(query string) []catalog.Entry {
	e.query = strings.ToLower(query)
	return e.Recompute()
}

// Reset clears categories and query.
func (e *Engine) Reset() []catalog.Entry {
	e.categories = nil
	e.query = ""
	return e.Recompute()
}

// Recompute derives the view from the catalog and the active criteria and
// notifies subscribers.
func (e *Engine) Recompute() []catalog.Entry {
	e.view = e.derive()
	e.logger.Debug("view recomputed",
		"filters", e.ActiveFilters(),
		"results", len(e.view))
	e.subs.notify(e.update(ViewRecomputed))
	return e.CurrentView()
}

// derive applies OR semantics: an entry passes when any of its tags is a
// selected category or equals the query ignoring case.
func (e *Engine) derive() []catalog.Entry {
	all := e.catalog.Entries()
	if len(e.categories) == 0 && e.query == "" {
		return all
	}
	view := make([]catalog.Entry, 0, len(all))
	for _, entry := range all {
		if e.matches(entry) {
			view = append(view, entry)
		}
	}
	return view
}

func (e *Engine) matches(entry catalog.Entry) bool {
	for _, c := range e.categories {
		if entry.HasTag(c) {
			return true
		}
	}
	if e.query == "" {
		return false
	}
	for _, tag := range entry.Tags {
		if strings.EqualFold(tag, e.query) {
			return true
		}
	}
	return false
}

// ToggleSelect clears the selection when id is already selected, otherwise
// selects id if it is in the current view. Unknown ids are ignored.
//
// The selection is not revalidated when the view changes, so a selected id
// can outlive its card after a filter change.
func (e *Engine) ToggleSelect(id string) {
	switch {
	case e.selected != "" && id == e.selected:
		e.selected = ""
	case e.inView(id):
		e.selected = id
	default:
		e.logger.Debug("ignoring selection outside view", "id", id)
		return
	}
	e.logger.Debug("selection changed", "selected", e.selected)
	e.subs.notify(e.update(SelectionChanged))
}

func (e *Engine) inView(id string) bool {
	for _, entry := range e.view {
		if entry.ID == id {
			return true
		}
	}
	return false
}

// CurrentView returns the last computed view.
func (e *Engine) CurrentView() []catalog.Entry {
	out := make([]catalog.Entry, len(e.view))
	copy(out, e.view)
	return out
}

// ResultCount is len(CurrentView()).
func (e *Engine) ResultCount() int { return len(e.view) }

// Selected returns the selected id, if any.
func (e *Engine) Selected() (string, bool) {
	return e.selected, e.selected != ""
}

// SelectedEntry resolves the selection against the full catalog, so a
// dangling selection still resolves.
func (e *Engine) SelectedEntry() (catalog.Entry, bool) {
	if e.selected == "" {
		return catalog.Entry{}, false
	}
	for _, entry := range e.catalog.Entries() {
		if entry.ID == e.selected {
			return entry, true
		}
	}
	return catalog.Entry{}, false
}

// Criteria returns the active filters.
func (e *Engine) Criteria() Criteria {
	return Criteria{
		Categories: append([]string(nil), e.categories...),
		Query:      e.query,
	}
}

// ActiveFilters lists the categories in submitted order followed by the
// query token, for display as chips.
func (e *Engine) ActiveFilters() []string {
	filters := append([]string(nil), e.categories...)
	if e.query != "" {
		filters = append(filters, e.query)
	}
	return filters
}

func (e *Engine) update(reason Reason) Update {
	return Update{
		Reason:   reason,
		View:     e.CurrentView(),
		Count:    len(e.view),
		Selected: e.selected,
		Filters:  e.ActiveFilters(),
	}
}

func dedupe(values []string) []string {
	if len(values) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}
