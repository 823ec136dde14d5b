package catalog

import (
	"errors"
	"fmt"
)

// Kind classifies why a catalog load failed.
type Kind int

const (
	// NetworkFailure covers transport errors, unreadable files and non-200 responses.
	NetworkFailure Kind = iota
	// ParseFailure means the payload was read but is not a catalog document.
	ParseFailure
)

func (k Kind) String() string {
	switch k {
	case NetworkFailure:
		return "network failure"
	case ParseFailure:
		return "parse failure"
	default:
		return "unknown failure"
	}
}

// Sentinels for errors.Is matching against a *LoadError.
var (
	ErrNetwork = errors.New("catalog: network failure")
	ErrParse   = errors.New("catalog: parse failure")
)

// LoadError is returned by Store.Load.
type LoadError struct {
	Kind   Kind
	Source string
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("loading catalog from %s: %s: %v", e.Source, e.Kind, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// Is lets errors.Is(err, ErrNetwork) and errors.Is(err, ErrParse) work.
func (e *LoadError) Is(target error) bool {
	switch target {
	case ErrNetwork:
		return e.Kind == NetworkFailure
	case ErrParse:
		return e.Kind == ParseFailure
	}
	return false
}
