package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Store owns the loaded catalog and the categories discovered in it.
//
// A Store is not safe for concurrent use. Fetch does no mutation and may run
// off the UI loop; Apply and Load mutate and must run on it.
type Store struct {
	source     Source
	locale     language.Tag
	logger     *slog.Logger
	entries    []Entry
	categories []string
	loaded     bool
}

// Option configures a Store.
type Option func(*Store)

// WithLocale sets the collation locale used to order titles.
func WithLocale(tag language.Tag) Option {
	return func(s *Store) { s.locale = tag }
}

// WithLogger sets the logger. A nil logger keeps slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewStore creates an empty store reading from src.
func NewStore(src Source, opts ...Option) *Store {
	s := &Store{
		source: src,
		locale: language.English,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With("component", "catalog")
	return s
}

// Load fetches, parses and sorts the catalog, then replaces the store's
// contents. On failure the error is logged and the store keeps its previous
// contents.
func (s *Store) Load(ctx context.Context) ([]Entry, error) {
	entries, err := s.Fetch(ctx)
	if err != nil {
		return nil, err
	}
	s.Apply(entries)
	return s.Entries(), nil
}

// Fetch reads and decodes the catalog without touching the store. The
// returned entries are already sorted.
func (s *Store) Fetch(ctx context.Context) ([]Entry, error) {
	raw, err := s.source.Fetch(ctx)
	if err != nil {
		return nil, s.fail(NetworkFailure, err)
	}
	entries, err := decode(raw)
	if err != nil {
		return nil, s.fail(ParseFailure, err)
	}
	SortByTitle(entries, s.locale)
	s.logger.Debug("catalog fetched", "source", s.source.String(), "entries", len(entries))
	return entries, nil
}

// Apply installs an already-sorted entry list and rediscovers categories.
func (s *Store) Apply(entries []Entry) {
	s.entries = entries
	s.categories = DiscoverCategories(entries)
	s.loaded = true
	s.logger.Info("catalog loaded",
		"source", s.source.String(),
		"entries", len(entries),
		"categories", len(s.categories))
}

func (s *Store) fail(kind Kind, err error) error {
	loadErr := &LoadError{Kind: kind, Source: s.source.String(), Err: err}
	s.logger.Error("catalog load failed", "source", loadErr.Source, "kind", kind.String(), "error", err)
	return loadErr
}

// Entries returns the catalog in store order. The slice is a copy; the
// entries themselves are shared and must not be modified.
func (s *Store) Entries() []Entry {
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Categories returns the discovered use-case labels.
func (s *Store) Categories() []string {
	out := make([]string, len(s.categories))
	copy(out, s.categories)
	return out
}

// Lookup finds an entry by id.
func (s *Store) Lookup(id string) (Entry, bool) {
	for _, e := range s.entries {
		if e.ID == id {
			return e, true
		}
	}
	return Entry{}, false
}

// Loaded reports whether a load has succeeded at least once.
func (s *Store) Loaded() bool { return s.loaded }

// Source returns where the store reads from.
func (s *Store) Source() Source { return s.source }

func decode(raw []byte) ([]Entry, error) {
	var doc document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	if doc.Data == nil {
		return nil, errors.New(`missing "data" field`)
	}
	return *doc.Data, nil
}

// SortByTitle orders entries by title using the collation rules of locale.
// Entries with equal titles keep their relative order.
func SortByTitle(entries []Entry, locale language.Tag) {
	c := collate.New(locale)
	sort.SliceStable(entries, func(i, j int) bool {
		return c.CompareString(entries[i].Title, entries[j].Title) < 0
	})
}
