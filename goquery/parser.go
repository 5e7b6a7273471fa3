package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"github.com/fwojciec/dragnet"
	"github.com/fwojciec/dragnet/html"
)

// Ensure Parser implements dragnet.Parser at compile time.
var _ dragnet.Parser = (*Parser)(nil)

// DefaultExcludeSelectors match elements that are never rendered.
var DefaultExcludeSelectors = []string{
	"[hidden]",
	`[aria-hidden="true"]`,
}

// Parser parses HTML with goquery and removes every element matching the
// configured CSS selectors before handing the tree to the segmenter.
type Parser struct {
	exclude goquery.Matcher
}

// NewParser creates a Parser removing elements that match any of the
// given selectors. With no selectors nothing is removed.
// Returns EINVALID if a selector does not compile.
func NewParser(selectors ...string) (*Parser, error) {
	var kept []string
	for _, s := range selectors {
		if s = strings.TrimSpace(s); s != "" {
			kept = append(kept, s)
		}
	}
	p := &Parser{}
	if len(kept) == 0 {
		return p, nil
	}
	group := strings.Join(kept, ", ")
	m, err := cascadia.Compile(group)
	if err != nil {
		return nil, dragnet.Errorf(dragnet.EINVALID, "invalid exclude selector %q: %v", group, err)
	}
	p.exclude = m
	return p, nil
}

// Parse parses rawHTML and strips excluded elements.
// Returns EMALFORMED if the HTML cannot be parsed.
func (p *Parser) Parse(rawHTML string) (*dragnet.Document, error) {
	gdoc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, dragnet.Errorf(dragnet.EMALFORMED, "failed to parse HTML: %v", err)
	}

	if p.exclude != nil {
		gdoc.FindMatcher(p.exclude).Remove()
	}

	if len(gdoc.Nodes) == 0 {
		return nil, dragnet.Errorf(dragnet.EMALFORMED, "empty document tree")
	}
	return &dragnet.Document{Source: rawHTML, Root: html.FromNode(gdoc.Nodes[0])}, nil
}
