package dragnet

import (
	"context"
	"strings"
)

// CommentsMarker separates gold content from gold comments in a
// corrected-text file.
const CommentsMarker = "!@#$%^&*() COMMENTS"

// GoldDocument is one training or evaluation document with its reference text.
type GoldDocument struct {
	ID       string
	HTML     string
	Content  string
	Comments string
}

// SplitGold splits a corrected-text file into gold content and gold comments.
func SplitGold(corrected string) (content, comments string) {
	content, comments, _ = strings.Cut(corrected, CommentsMarker)
	return strings.TrimSpace(content), strings.TrimSpace(comments)
}

// Corpus provides access to a collection of gold documents.
type Corpus interface {
	// List returns the IDs of all documents, sorted.
	List(ctx context.Context) ([]string, error)

	// Load returns a document by ID.
	// Returns ENOTFOUND if the document does not exist.
	Load(ctx context.Context, id string) (*GoldDocument, error)
}
