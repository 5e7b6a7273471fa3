package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/dragnet"
	"github.com/fwojciec/dragnet/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name string, content []byte) {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, content, 0644))
}

func TestCorpus_List(t *testing.T) {
	t.Parallel()

	t.Run("lists documents with gold files", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writeFile(t, dir, "HTML/b.html", []byte("<p>b</p>"))
		writeFile(t, dir, "HTML/a.html", []byte("<p>a</p>"))
		writeFile(t, dir, "HTML/orphan.html", []byte("<p>orphan</p>"))
		writeFile(t, dir, "HTML/notes.txt", []byte("ignored"))
		writeFile(t, dir, "Corrected/a.html.corrected.txt", []byte("a"))
		writeFile(t, dir, "Corrected/b.html.corrected.txt", []byte("b"))
		require.NoError(t, os.MkdirAll(filepath.Join(dir, "HTML", "sub.html"), 0755))

		ids, err := fs.NewCorpus(dir).List(context.Background())
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b"}, ids)
	})

	t.Run("missing HTML directory", func(t *testing.T) {
		t.Parallel()

		_, err := fs.NewCorpus(t.TempDir()).List(context.Background())
		require.Error(t, err)
		assert.Equal(t, dragnet.ENOTFOUND, dragnet.ErrorCode(err))
	})
}

func TestCorpus_Load(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "HTML/post.html", []byte("<p>Body text.</p>"))
	writeFile(t, dir, "Corrected/post.html.corrected.txt",
		[]byte("Body text.\n"+dragnet.CommentsMarker+"\nFirst comment.\n"))
	// "café" in ISO-8859-1, declared by meta charset.
	writeFile(t, dir, "HTML/latin.html", []byte(`<meta charset="iso-8859-1"><p>caf`+"\xe9</p>"))
	writeFile(t, dir, "Corrected/latin.html.corrected.txt", []byte("café"))
	writeFile(t, dir, "HTML/nogold.html", []byte("<p>x</p>"))

	c := fs.NewCorpus(dir)

	t.Run("splits gold content and comments", func(t *testing.T) {
		t.Parallel()

		doc, err := c.Load(context.Background(), "post")
		require.NoError(t, err)
		assert.Equal(t, &dragnet.GoldDocument{
			ID:       "post",
			HTML:     "<p>Body text.</p>",
			Content:  "Body text.",
			Comments: "First comment.",
		}, doc)
	})

	t.Run("decodes declared charsets", func(t *testing.T) {
		t.Parallel()

		doc, err := c.Load(context.Background(), "latin")
		require.NoError(t, err)
		assert.Contains(t, doc.HTML, "café")
		assert.Equal(t, "café", doc.Content)
	})

	t.Run("missing files", func(t *testing.T) {
		t.Parallel()

		for _, id := range []string{"absent", "nogold"} {
			_, err := c.Load(context.Background(), id)
			require.Error(t, err)
			assert.Equal(t, dragnet.ENOTFOUND, dragnet.ErrorCode(err), id)
		}
	})

	t.Run("rejects path-like IDs", func(t *testing.T) {
		t.Parallel()

		for _, id := range []string{"", "../post", `a\b`} {
			_, err := c.Load(context.Background(), id)
			assert.Equal(t, dragnet.EINVALID, dragnet.ErrorCode(err), id)
		}
	})

	t.Run("honors cancellation", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := c.Load(ctx, "post")
		assert.ErrorIs(t, err, context.Canceled)
	})
}
