// Package fs provides file-based corpus access, weight model files and
// training-data output.
package fs

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/fwojciec/dragnet"
	"golang.org/x/net/html/charset"
)

// Corpus directory layout.
const (
	HTMLDir         = "HTML"
	CorrectedDir    = "Corrected"
	HTMLExt         = ".html"
	CorrectedSuffix = ".html.corrected.txt"
)

// Ensure Corpus implements dragnet.Corpus at compile time.
var _ dragnet.Corpus = (*Corpus)(nil)

// Corpus reads gold documents from a directory holding HTML/<id>.html and
// Corrected/<id>.html.corrected.txt. Pages in any charset are decoded to
// UTF-8.
type Corpus struct {
	dir string
}

// NewCorpus creates a Corpus rooted at dir.
func NewCorpus(dir string) *Corpus {
	return &Corpus{dir: dir}
}

// List returns the IDs of all documents that have both an HTML page and a
// corrected gold file, sorted.
func (c *Corpus) List(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	entries, err := os.ReadDir(filepath.Join(c.dir, HTMLDir))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, dragnet.Errorf(dragnet.ENOTFOUND, "corpus %q has no %s directory", c.dir, HTMLDir)
	}
	if err != nil {
		return nil, err
	}

	var ids []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), HTMLExt) {
			continue
		}
		id := strings.TrimSuffix(e.Name(), HTMLExt)
		if _, err := os.Stat(c.correctedPath(id)); err != nil {
			continue
		}
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}

// Load returns a document by ID.
// Returns ENOTFOUND if the HTML page or the gold file is missing.
func (c *Corpus) Load(ctx context.Context, id string) (*dragnet.GoldDocument, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if id == "" || strings.ContainsAny(id, `/\`) {
		return nil, dragnet.Errorf(dragnet.EINVALID, "invalid document ID %q", id)
	}

	rawHTML, err := readDecoded(c.htmlPath(id), "text/html")
	if err != nil {
		return nil, err
	}
	corrected, err := readDecoded(c.correctedPath(id), "text/plain")
	if err != nil {
		return nil, err
	}

	content, comments := dragnet.SplitGold(corrected)
	return &dragnet.GoldDocument{
		ID:       id,
		HTML:     rawHTML,
		Content:  content,
		Comments: comments,
	}, nil
}

func (c *Corpus) htmlPath(id string) string {
	return filepath.Join(c.dir, HTMLDir, id+HTMLExt)
}

func (c *Corpus) correctedPath(id string) string {
	return filepath.Join(c.dir, CorrectedDir, id+CorrectedSuffix)
}

// readDecoded reads a file and converts it to UTF-8, sniffing the
// encoding from a byte-order mark or <meta charset> when present.
func readDecoded(path, contentType string) (string, error) {
	b, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", dragnet.Errorf(dragnet.ENOTFOUND, "file %q not found", path)
	}
	if err != nil {
		return "", err
	}
	r, err := charset.NewReader(bytes.NewReader(b), contentType)
	if err != nil {
		return "", fmt.Errorf("failed to decode %q: %w", path, err)
	}
	decoded, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("failed to decode %q: %w", path, err)
	}
	return string(decoded), nil
}
