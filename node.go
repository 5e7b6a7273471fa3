package dragnet

// NodeType identifies the kind of a tag-tree node.
type NodeType int

// Node types produced by tag-tree providers.
const (
	DocumentNode NodeType = iota
	ElementNode
	TextNode
	CommentNode
)

// DefaultMaxDepth is the deepest tree Validate accepts when no limit is given.
const DefaultMaxDepth = 512

// Attr is a single element attribute.
type Attr struct {
	Key string
	Val string
}

// Node is one node of a parsed HTML tag tree. Trees are built by a tag-tree
// provider (see the html package) and are read-only to the extraction core.
type Node struct {
	Type     NodeType
	Tag      string // lowercase element name, empty for non-elements
	Attrs    []Attr
	Text     string // text content for TextNode and CommentNode
	Children []*Node
}

// Attr returns the value of the named attribute, or "" if absent.
func (n *Node) Attr(key string) string {
	for _, a := range n.Attrs {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

// Validate returns EMALFORMED if the tree rooted at n violates the
// well-formedness the segmenter relies on: nil children, nodes reachable
// more than once (shared or cyclic references), text nodes with children,
// elements without a tag name, or nesting deeper than maxDepth.
// A maxDepth of zero or less uses DefaultMaxDepth.
func (n *Node) Validate(maxDepth int) error {
	if n == nil {
		return Errorf(EMALFORMED, "nil root node")
	}
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	seen := make(map[*Node]struct{})
	return validateNode(n, 0, maxDepth, seen)
}

func validateNode(n *Node, depth, maxDepth int, seen map[*Node]struct{}) error {
	if depth > maxDepth {
		return Errorf(EMALFORMED, "tree deeper than %d levels", maxDepth)
	}
	if _, ok := seen[n]; ok {
		return Errorf(EMALFORMED, "node <%s> referenced more than once", n.Tag)
	}
	seen[n] = struct{}{}

	switch n.Type {
	case ElementNode:
		if n.Tag == "" {
			return Errorf(EMALFORMED, "element without tag name at depth %d", depth)
		}
	case TextNode, CommentNode:
		if len(n.Children) > 0 {
			return Errorf(EMALFORMED, "text node with %d children at depth %d", len(n.Children), depth)
		}
	case DocumentNode:
	default:
		return Errorf(EMALFORMED, "unknown node type %d", n.Type)
	}

	for i, c := range n.Children {
		if c == nil {
			return Errorf(EMALFORMED, "nil child %d of <%s>", i, n.Tag)
		}
		if err := validateNode(c, depth+1, maxDepth, seen); err != nil {
			return err
		}
	}
	return nil
}

// Document is a parsed HTML document handed to the extraction core.
type Document struct {
	// Source is the raw HTML the tree was built from. Optional.
	Source string

	// Root is the top of the tag tree.
	Root *Node
}

// Parser builds a Document from raw HTML.
type Parser interface {
	Parse(html string) (*Document, error)
}
