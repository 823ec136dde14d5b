package screens

import (
	"context"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Guerrilla-Interactive/nextgen-site-gallery/app/catalog"
	"github.com/Guerrilla-Interactive/nextgen-site-gallery/app/gallery"
)

// Deps are the collaborators every screen needs.
type Deps struct {
	Store     *catalog.Store
	Engine    *gallery.Engine
	Binding   *Binding
	Logger    *slog.Logger
	Clipboard func(string) error
}

// Binding subscribes to the engine and keeps the latest update for the
// views to render from. Views never read the engine directly.
type Binding struct {
	engine *gallery.Engine
	subID  string
	last   gallery.Update
	seen   int
}

// Bind subscribes to e and seeds the binding with e's current state.
func Bind(e *gallery.Engine) *Binding {
	b := &Binding{engine: e}
	selected, _ := e.Selected()
	b.last = gallery.Update{
		Reason:   gallery.ViewRecomputed,
		View:     e.CurrentView(),
		Count:    e.ResultCount(),
		Selected: selected,
		Filters:  e.ActiveFilters(),
	}
	b.subID = e.Subscribe(b.receive)
	return b
}

func (b *Binding) receive(u gallery.Update) {
	b.last = u
	b.seen++
}

// Last returns the most recent update.
func (b *Binding) Last() gallery.Update { return b.last }

// Seen counts updates received since Bind.
func (b *Binding) Seen() int { return b.seen }

// Close stops receiving updates.
func (b *Binding) Close() {
	b.engine.Unsubscribe(b.subID)
}

// CatalogLoadedMsg carries the result of a background catalog fetch.
type CatalogLoadedMsg struct {
	Entries []catalog.Entry
	Err     error
}

// LoadCatalogCmd fetches the catalog off the update loop. The store is only
// changed when the message is handled.
func LoadCatalogCmd(ctx context.Context, store *catalog.Store) tea.Cmd {
	return func() tea.Msg {
		entries, err := store.Fetch(ctx)
		return CatalogLoadedMsg{Entries: entries, Err: err}
	}
}

// CopiedMsg reports the outcome of a clipboard write.
type CopiedMsg struct {
	ID  string
	Err error
}

// CopyIDCmd writes id to the clipboard.
func CopyIDCmd(id string, write func(string) error) tea.Cmd {
	return func() tea.Msg {
		return CopiedMsg{ID: id, Err: write(id)}
	}
}
