// Package html builds dragnet tag trees with golang.org/x/net/html.
package html

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/fwojciec/dragnet"
	"golang.org/x/net/html"
	"golang.org/x/net/html/charset"
)

// Ensure Parser implements dragnet.Parser at compile time.
var _ dragnet.Parser = (*Parser)(nil)

// Parser parses raw HTML into a dragnet.Document.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse parses UTF-8 HTML.
func (p *Parser) Parse(rawHTML string) (*dragnet.Document, error) {
	root, err := html.Parse(strings.NewReader(rawHTML))
	if err != nil {
		return nil, dragnet.Errorf(dragnet.EMALFORMED, "failed to parse HTML: %v", err)
	}
	return &dragnet.Document{Source: rawHTML, Root: FromNode(root)}, nil
}

// ParseReader parses HTML of any encoding. The content type (for example
// an HTTP Content-Type header) and any <meta charset> in the first bytes
// select the decoder; the document source is stored as UTF-8.
func ParseReader(r io.Reader, contentType string) (*dragnet.Document, error) {
	utf8Reader, err := charset.NewReader(r, contentType)
	if err != nil {
		return nil, fmt.Errorf("failed to detect charset: %w", err)
	}
	raw, err := io.ReadAll(utf8Reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read HTML: %w", err)
	}
	root, err := html.Parse(bytes.NewReader(raw))
	if err != nil {
		return nil, dragnet.Errorf(dragnet.EMALFORMED, "failed to parse HTML: %v", err)
	}
	return &dragnet.Document{Source: string(raw), Root: FromNode(root)}, nil
}

// FromNode converts an x/net/html tree into a dragnet tree. Doctype nodes
// are dropped and element names are lowercased.
func FromNode(n *html.Node) *dragnet.Node {
	if n == nil {
		return nil
	}
	out := convert(n)
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.DoctypeNode || c.Type == html.RawNode {
			continue
		}
		out.Children = append(out.Children, FromNode(c))
	}
	return out
}

func convert(n *html.Node) *dragnet.Node {
	switch n.Type {
	case html.DocumentNode:
		return &dragnet.Node{Type: dragnet.DocumentNode}
	case html.TextNode:
		return &dragnet.Node{Type: dragnet.TextNode, Text: n.Data}
	case html.CommentNode:
		return &dragnet.Node{Type: dragnet.CommentNode, Text: n.Data}
	default:
		attrs := make([]dragnet.Attr, 0, len(n.Attr))
		for _, a := range n.Attr {
			attrs = append(attrs, dragnet.Attr{Key: strings.ToLower(a.Key), Val: a.Val})
		}
		return &dragnet.Node{
			Type:  dragnet.ElementNode,
			Tag:   strings.ToLower(n.Data),
			Attrs: attrs,
		}
	}
}
