package dragnet_test

import (
	"testing"

	"github.com/fwojciec/dragnet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func elem(tag string, children ...*dragnet.Node) *dragnet.Node {
	return &dragnet.Node{Type: dragnet.ElementNode, Tag: tag, Children: children}
}

func text(s string) *dragnet.Node {
	return &dragnet.Node{Type: dragnet.TextNode, Text: s}
}

func TestNode_Attr(t *testing.T) {
	t.Parallel()

	n := &dragnet.Node{Type: dragnet.ElementNode, Tag: "div", Attrs: []dragnet.Attr{{Key: "class", Val: "post"}}}

	assert.Equal(t, "post", n.Attr("class"))
	assert.Empty(t, n.Attr("id"))
}

func TestNode_Validate(t *testing.T) {
	t.Parallel()

	t.Run("accepts a well-formed tree", func(t *testing.T) {
		t.Parallel()

		root := &dragnet.Node{Type: dragnet.DocumentNode, Children: []*dragnet.Node{
			elem("html", elem("body", elem("p", text("hello")), &dragnet.Node{Type: dragnet.CommentNode, Text: "x"})),
		}}

		require.NoError(t, root.Validate(0))
	})

	shared := text("shared")
	cyclic := elem("div")
	cyclic.Children = []*dragnet.Node{cyclic}

	deep := text("bottom")
	for range 10 {
		deep = elem("div", deep)
	}

	for _, tt := range []struct {
		name string
		root *dragnet.Node
	}{
		{"nil root", nil},
		{"nil child", elem("div", nil)},
		{"shared node", elem("div", elem("p", shared), elem("p", shared))},
		{"cycle", cyclic},
		{"element without tag", elem("div", &dragnet.Node{Type: dragnet.ElementNode})},
		{"text with children", elem("div", &dragnet.Node{Type: dragnet.TextNode, Children: []*dragnet.Node{text("x")}})},
		{"unknown node type", &dragnet.Node{Type: dragnet.NodeType(42)}},
		{"too deep", deep},
	} {
		t.Run("rejects "+tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.root.Validate(5)
			require.Error(t, err)
			assert.Equal(t, dragnet.EMALFORMED, dragnet.ErrorCode(err))
		})
	}
}
