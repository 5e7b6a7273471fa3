package dragnet

import "context"

// Fetcher retrieves raw HTML from URLs. Fetching happens outside the
// extraction core, before a document is parsed.
type Fetcher interface {
	// Fetch returns the HTML at url decoded to UTF-8.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases resources.
	Close() error
}
