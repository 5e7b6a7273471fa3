package main_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/dragnet"
	"github.com/fwojciec/dragnet/fs"
	"github.com/stretchr/testify/require"
)

// testPage has a link-only navigation list, one prose paragraph and a
// footer.
const testPage = `<html><body>
<ul><li><a href="/">Home</a></li><li><a href="/about">About</a></li><li><a href="/contact">Contact</a></li></ul>
<p>Lorem ipsum dolor sit amet, consectetur adipiscing elit.</p>
<footer>© 2024 Site</footer>
</body></html>`

const testContent = "Lorem ipsum dolor sit amet, consectetur adipiscing elit."

// contentModel keeps blocks with commas and without links.
func contentModel() *dragnet.WeightModel {
	w := make([]float64, 12)
	w[2] = -5 // link_density
	w[10] = 1 // own_score
	return &dragnet.WeightModel{
		Kind:     dragnet.ModelLinear,
		Features: []string{"kohlschuetter", "readability"},
		Weights:  w,
		Bias:     -0.5,
	}
}

func writeModel(t *testing.T, m *dragnet.WeightModel) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "model.json")
	require.NoError(t, fs.SaveModel(path, m))
	return path
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// writeCorpus creates a corpus with one document whose gold content is
// the test page's paragraph.
func writeCorpus(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	writeFile(t, dir, "HTML/page.html", testPage)
	writeFile(t, dir, "Corrected/page.html.corrected.txt", testContent+"\n")
	return dir
}
