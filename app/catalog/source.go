package catalog

import (
	"context"
	_ "embed"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

//go:embed data/catalog.json
var embeddedCatalog []byte

// DefaultFetchTimeout bounds HTTP catalog fetches unless configured otherwise.
const DefaultFetchTimeout = 15 * time.Second

// MaxDocumentSize caps how much of an HTTP response is read.
const MaxDocumentSize = 8 << 20

// Source produces the raw catalog document.
type Source interface {
	// Fetch returns the document bytes. Any error is reported as a NetworkFailure.
	Fetch(ctx context.Context) ([]byte, error)
	// String names the source for logs and errors.
	String() string
}

// NewSource picks a Source from a location string:
// "" uses the catalog compiled into the binary, http(s) URLs are fetched,
// anything else (optionally prefixed with file://) is read from disk.
func NewSource(location string, timeout time.Duration) Source {
	loc := strings.TrimSpace(location)
	switch {
	case loc == "":
		return EmbeddedSource{}
	case strings.HasPrefix(loc, "http://"), strings.HasPrefix(loc, "https://"):
		return &HTTPSource{URL: loc, Client: &http.Client{Timeout: timeout}}
	default:
		return FileSource{Path: strings.TrimPrefix(loc, "file://")}
	}
}

// HTTPSource fetches the catalog with a GET request.
type HTTPSource struct {
	URL    string
	Client *http.Client
	// MaxSize overrides MaxDocumentSize when positive.
	MaxSize int64
}

func (s *HTTPSource) Fetch(ctx context.Context) ([]byte, error) {
	client := s.Client
	if client == nil {
		client = &http.Client{Timeout: DefaultFetchTimeout}
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %s for %s", resp.Status, s.URL)
	}
	limit := s.MaxSize
	if limit <= 0 {
		limit = MaxDocumentSize
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, limit+1))
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}
	if int64(len(body)) > limit {
		return nil, fmt.Errorf("catalog from %s exceeds %d bytes", s.URL, limit)
	}
	return body, nil
}

func (s *HTTPSource) String() string { return s.URL }

// FileSource reads the catalog from a local file.
type FileSource struct {
	Path string
}

func (s FileSource) Fetch(_ context.Context) ([]byte, error) {
	return os.ReadFile(s.Path)
}

func (s FileSource) String() string { return s.Path }

// EmbeddedSource serves the catalog bundled with the binary.
type EmbeddedSource struct{}

func (EmbeddedSource) Fetch(_ context.Context) ([]byte, error) {
	return embeddedCatalog, nil
}

func (EmbeddedSource) String() string { return "embedded catalog" }
