package dragnet

// ExtractResult holds the text extracted from one document.
type ExtractResult struct {
	// Content is the main content, blocks joined by the configured separator.
	Content string

	// Comments is the comment text. Empty unless comment extraction was
	// requested and supported.
	Comments string
}

// Extractor extracts main content from HTML pages, removing boilerplate.
type Extractor interface {
	// Extract processes raw HTML and returns the main content.
	Extract(html string) (*ExtractResult, error)
}
