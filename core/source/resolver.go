package source

import (
	"context"
	"strings"

	"xml-compare-api/core/session"
)

// Source resolves a document URL to its raw text, optionally using the
// cookies of a credential session.
type Source interface {
	Fetch(ctx context.Context, rawURL string, sess *session.Session) (string, error)
}

// Resolver routes fetches by URL scheme: store:// URLs go to the
// storage-backed source when one is configured, everything else to the
// HTTP source.
type Resolver struct {
	http  *HTTPSource
	store *StoreSource
}

// NewResolver creates a resolver. store may be nil when no object
// storage is configured; store:// URLs then fail with a *FetchError.
func NewResolver(http *HTTPSource, store *StoreSource) *Resolver {
	return &Resolver{http: http, store: store}
}

// Fetch implements Source.
func (r *Resolver) Fetch(ctx context.Context, rawURL string, sess *session.Session) (string, error) {
	if strings.HasPrefix(rawURL, StoreScheme) {
		if r.store == nil {
			return "", &FetchError{URL: rawURL, Err: errNoStore}
		}
		return r.store.Fetch(ctx, rawURL, sess)
	}
	return r.http.Fetch(ctx, rawURL, sess)
}

type noStoreError struct{}

func (noStoreError) Error() string {
	return "no document store configured"
}

var errNoStore = noStoreError{}
