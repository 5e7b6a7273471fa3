// Package blockify segments dragnet tag trees into ordered content blocks.
package blockify

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/fwojciec/dragnet"
)

// Ensure Segmenter implements dragnet.Segmenter at compile time.
var _ dragnet.Segmenter = (*Segmenter)(nil)

// Segmenter walks a tag tree depth-first and emits a block for every run
// of text between block-level boundaries. Segmenter has no state and is
// safe for concurrent use.
type Segmenter struct{}

// NewSegmenter creates a new Segmenter.
func NewSegmenter() *Segmenter {
	return &Segmenter{}
}

// Segment returns the blocks of doc in document order. Blocks without
// words are dropped, so an empty document yields no blocks and no error.
// Returns EMALFORMED if the tree is not well formed.
func (s *Segmenter) Segment(doc *dragnet.Document, opts dragnet.Options) ([]dragnet.Block, error) {
	if doc == nil {
		return nil, dragnet.Errorf(dragnet.EMALFORMED, "nil document")
	}
	if err := doc.Root.Validate(opts.MaxDepth); err != nil {
		return nil, err
	}

	w := &walker{
		blockTags: opts.BlockTagSet(),
		excluded:  opts.ExcludedTagSet(),
		spacers:   spacers,
	}
	w.walk(doc.Root)
	w.flush()
	return w.blocks, nil
}

// spacers are elements that separate words without starting a block when
// they are not configured as block tags. Text on either side of them is
// never joined into one word.
var spacers = func() map[string]bool {
	m := map[string]bool{"br": true}
	for _, tag := range dragnet.DefaultBlockTags {
		m[tag] = true
	}
	return m
}()

// walker holds traversal state for one Segment call.
type walker struct {
	blockTags map[string]bool
	excluded  map[string]bool
	spacers   map[string]bool

	stack    []dragnet.PathElem
	anchors  int // depth of open <a> elements
	elements int // preorder element counter
	offset   int // rune offset into the text stream

	cur    pending
	blocks []dragnet.Block
}

// pending accumulates the block currently being built. Text is kept raw
// and split into words only at flush, so markup inside a word does not
// break it.
type pending struct {
	raw     []rune
	anchor  []bool // parallel to raw: rune sits inside a hyperlink
	started bool   // a non-space rune has been seen
	links   int
	tags    int
	path    []dragnet.PathElem
	start   int
	end     int
}

func (w *walker) walk(n *dragnet.Node) {
	switch n.Type {
	case dragnet.TextNode:
		w.text(n.Text)
		return
	case dragnet.CommentNode:
		return
	case dragnet.DocumentNode:
		for _, c := range n.Children {
			w.walk(c)
		}
		return
	}

	if w.excluded[n.Tag] {
		w.flush()
		return
	}

	elem := dragnet.PathElem{
		Tag:   n.Tag,
		ID:    n.Attr("id"),
		Class: n.Attr("class"),
		Index: w.elements,
	}
	w.elements++

	boundary := w.blockTags[n.Tag]
	if boundary {
		w.flush()
	} else if w.spacers[n.Tag] {
		w.space()
	}

	w.stack = append(w.stack, elem)
	w.cur.tags++
	if n.Tag == "a" {
		w.anchors++
		w.cur.links++
	}

	for _, c := range n.Children {
		w.walk(c)
	}

	if n.Tag == "a" {
		w.anchors--
	}
	w.stack = w.stack[:len(w.stack)-1]

	if boundary {
		w.flush()
	} else if w.spacers[n.Tag] {
		w.space()
	}
}

func (w *walker) text(s string) {
	start := w.offset
	w.offset += utf8.RuneCountInString(s)

	blank := strings.TrimFunc(s, unicode.IsSpace) == ""
	if !blank && !w.cur.started {
		w.cur.started = true
		w.cur.path = append([]dragnet.PathElem(nil), w.stack...)
		w.cur.start = start + leadingSpaceRunes(s)
	}
	inLink := w.anchors > 0
	for _, r := range s {
		w.cur.raw = append(w.cur.raw, r)
		w.cur.anchor = append(w.cur.anchor, inLink)
	}
	if !blank {
		w.cur.end = w.offset - trailingSpaceRunes(s)
	}
}

// space separates the words on either side without consuming an offset.
func (w *walker) space() {
	if w.cur.started {
		w.cur.raw = append(w.cur.raw, ' ')
		w.cur.anchor = append(w.cur.anchor, false)
	}
}

// flush closes the pending block. Pending blocks without words are discarded.
func (w *walker) flush() {
	if w.cur.started {
		words, anchorWords := split(w.cur.raw, w.cur.anchor)
		w.blocks = append(w.blocks, dragnet.Block{
			Text:        strings.Join(words, " "),
			Words:       words,
			AnchorWords: anchorWords,
			Links:       w.cur.links,
			Tags:        w.cur.tags,
			Path:        w.cur.path,
			Start:       w.cur.start,
			End:         w.cur.end,
		})
	}
	w.cur = pending{}
}

// split cuts raw at whitespace. A word counts as an anchor word when any of
// its runes sits inside a hyperlink.
func split(raw []rune, anchor []bool) (words []string, anchorWords int) {
	from, linked := -1, false
	for i, r := range raw {
		if unicode.IsSpace(r) {
			if from >= 0 {
				words = append(words, string(raw[from:i]))
				if linked {
					anchorWords++
				}
				from, linked = -1, false
			}
			continue
		}
		if from < 0 {
			from = i
		}
		linked = linked || anchor[i]
	}
	if from >= 0 {
		words = append(words, string(raw[from:]))
		if linked {
			anchorWords++
		}
	}
	return words, anchorWords
}

func leadingSpaceRunes(s string) int {
	return utf8.RuneCountInString(s) - utf8.RuneCountInString(strings.TrimLeftFunc(s, unicode.IsSpace))
}

func trailingSpaceRunes(s string) int {
	return utf8.RuneCountInString(s) - utf8.RuneCountInString(strings.TrimRightFunc(s, unicode.IsSpace))
}
