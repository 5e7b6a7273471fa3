package dragnet

import "strings"

// PathElem is one element on the ancestor chain of a block.
type PathElem struct {
	Tag   string
	ID    string
	Class string

	// Index is the element's preorder position in the document, unique per
	// element. It identifies shared ancestors across blocks.
	Index int
}

// Block is a contiguous run of document text treated as one classification unit.
type Block struct {
	// Text is the block's words joined by single spaces.
	Text string

	// Words are the whitespace-separated words of the block, in order.
	// Adjacent text nodes are joined before splitting, so inline markup
	// never breaks a word.
	Words []string

	// AnchorWords counts words with at least one rune inside a hyperlink.
	AnchorWords int

	// Links counts hyperlink elements opened inside the block.
	Links int

	// Tags counts elements opened within the block's span.
	Tags int

	// Path is the chain of open elements, outermost first, when the
	// block's first word was seen. The last element owns the block.
	Path []PathElem

	// Start and End are rune offsets into the document's text stream: the
	// concatenation of all text nodes in traversal order, excluding text
	// under excluded tags. They are not offsets into Document.Source.
	// Start is the block's first non-space rune, End is one past its last.
	Start int
	End   int
}

// LinkDensity returns the fraction of the block's words inside hyperlinks.
func (b *Block) LinkDensity() float64 {
	if len(b.Words) == 0 {
		return 0
	}
	return float64(b.AnchorWords) / float64(len(b.Words))
}

// CommaCount returns the number of commas in the block's text.
func (b *Block) CommaCount() int {
	return strings.Count(b.Text, ",")
}

// Owner returns the element owning the block, or a PathElem with Index -1
// if the block has no recorded path.
func (b *Block) Owner() PathElem {
	if len(b.Path) == 0 {
		return PathElem{Index: -1}
	}
	return b.Path[len(b.Path)-1]
}

// Segmenter splits a document into an ordered sequence of blocks.
type Segmenter interface {
	Segment(doc *Document, opts Options) ([]Block, error)
}

// Label is the training label of one block.
type Label struct {
	// ContentFraction is the fraction of the block's tokens aligned to
	// the gold content.
	ContentFraction float64

	// CommentFraction is the fraction of the block's tokens aligned to
	// the gold comments.
	CommentFraction float64

	Content bool
	Comment bool
}
