package main_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/fwojciec/dragnet"
	main "github.com/fwojciec/dragnet/cmd/dragnet"
	"github.com/fwojciec/dragnet/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("extracts content of a file", func(t *testing.T) {
		t.Parallel()

		page := writeFile(t, t.TempDir(), "page.html", testPage)
		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{Ctx: context.Background(), Stdout: stdout, Stderr: stderr}

		cmd := &main.ExtractCmd{
			Inputs:      []string{page},
			Concurrency: 1,
			ModelFlags:  main.ModelFlags{Extractor: "dragnet", Model: writeModel(t, contentModel())},
		}

		require.NoError(t, cmd.Run(deps))
		assert.Equal(t, testContent+"\n", stdout.String())
	})

	t.Run("fetches URLs", func(t *testing.T) {
		t.Parallel()

		var fetched []string
		fetcher := &mock.Fetcher{
			FetchFn: func(_ context.Context, url string) (string, error) {
				fetched = append(fetched, url)
				return testPage, nil
			},
		}
		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{Ctx: context.Background(), Stdout: stdout, Stderr: &bytes.Buffer{}, Fetcher: fetcher}

		cmd := &main.ExtractCmd{
			Inputs:      []string{"https://example.com/post"},
			Concurrency: 1,
			ModelFlags:  main.ModelFlags{Model: writeModel(t, contentModel()), Parser: "goquery"},
		}

		require.NoError(t, cmd.Run(deps))
		assert.Equal(t, []string{"https://example.com/post"}, fetched)
		assert.Contains(t, stdout.String(), testContent)
	})

	t.Run("prints a header per input", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		a := writeFile(t, dir, "a.html", testPage)
		b := writeFile(t, dir, "b.html", "<html><body></body></html>")
		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{Ctx: context.Background(), Stdout: stdout, Stderr: &bytes.Buffer{}}

		cmd := &main.ExtractCmd{
			Inputs:      []string{a, b},
			Concurrency: 2,
			ModelFlags:  main.ModelFlags{Model: writeModel(t, contentModel())},
		}

		require.NoError(t, cmd.Run(deps))
		assert.Equal(t, "==> "+a+" <==\n"+testContent+"\n\n==> "+b+" <==\n", stdout.String())
	})

	t.Run("writes the comments section", func(t *testing.T) {
		t.Parallel()

		page := writeFile(t, t.TempDir(), "page.html", testPage)
		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{Ctx: context.Background(), Stdout: stdout, Stderr: &bytes.Buffer{}}

		cmd := &main.ExtractCmd{
			Inputs:      []string{page},
			Concurrency: 1,
			ModelFlags: main.ModelFlags{
				Model:        writeModel(t, contentModel()),
				CommentModel: writeModel(t, contentModel()),
			},
			OptionFlags: main.OptionFlags{Comments: true},
		}

		require.NoError(t, cmd.Run(deps))
		content, comments := dragnet.SplitGold(stdout.String())
		assert.Equal(t, testContent, content)
		assert.Equal(t, testContent, comments)
	})

	t.Run("requires a model for the dragnet extractor", func(t *testing.T) {
		t.Parallel()

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{Ctx: context.Background(), Stdout: &bytes.Buffer{}, Stderr: stderr}

		cmd := &main.ExtractCmd{Inputs: []string{"page.html"}, ModelFlags: main.ModelFlags{Extractor: "dragnet"}}

		err := cmd.Run(deps)
		require.Error(t, err)
		assert.Equal(t, dragnet.EINVALID, dragnet.ErrorCode(err))
		assert.Contains(t, stderr.String(), "--model")
	})

	t.Run("returns fetch errors", func(t *testing.T) {
		t.Parallel()

		fetcher := &mock.Fetcher{
			FetchFn: func(context.Context, string) (string, error) {
				return "", errors.New("connection refused")
			},
		}
		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{Ctx: context.Background(), Stdout: &bytes.Buffer{}, Stderr: stderr, Fetcher: fetcher}

		cmd := &main.ExtractCmd{
			Inputs:     []string{"http://example.com"},
			ModelFlags: main.ModelFlags{Extractor: "trafilatura"},
		}

		err := cmd.Run(deps)
		require.Error(t, err)
		assert.Contains(t, stderr.String(), "connection refused")
	})
}
