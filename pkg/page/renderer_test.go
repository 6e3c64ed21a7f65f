package page

import (
	"sync"
	"sync/atomic"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"
)

const testLayout = `<html><head><title>{{.Meta.Title}}</title>` +
	`<meta name="robots" content="{{.Meta.Robots.Directive}}"></head>` +
	`<body>{{.Content}}<footer>{{.Data.Year}}</footer></body></html>`

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"layouts/base.html": &fstest.MapFile{Data: []byte(testLayout)},
		"content/landing.md": &fstest.MapFile{Data: []byte(`---
title: Hudson Yards Studios
robots:
  index: true
  follow: true
---
# Hello **{{.Name}}**

<div class="card" onclick="steal()">Card</div>

<script>alert(1)</script>

[!button|Request the deck](#request)
`)},
	}
}

type landing struct {
	Name string
	Year int
}

func TestRenderer_Render(t *testing.T) {
	t.Parallel()

	r := NewRenderer(testFS(), Config{})

	p, err := r.Render("base.html", "landing.md", landing{Name: "Jane", Year: 2026})
	require.NoError(t, err)

	require.Equal(t, "Hudson Yards Studios", p.Meta.Title)
	require.Contains(t, p.HTML, "<title>Hudson Yards Studios</title>")
	require.Contains(t, p.HTML, `content="index, follow"`)
	require.Contains(t, p.HTML, "<strong>Jane</strong>")
	require.Contains(t, p.HTML, `<div class="card">Card</div>`)
	require.Contains(t, p.HTML, `href="#request"`)
	require.Contains(t, p.HTML, `class="btn"`)
	require.Contains(t, p.HTML, "<footer>2026</footer>")
	require.NotContains(t, p.HTML, "<script>")
	require.NotContains(t, p.HTML, "onclick")
}

func TestRenderer_Errors(t *testing.T) {
	t.Parallel()

	fsys := testFS()
	fsys["content/broken.md"] = &fstest.MapFile{Data: []byte("{{.Missing}")}
	fsys["content/missing-key.md"] = &fstest.MapFile{Data: []byte("{{.Nope}}")}
	r := NewRenderer(fsys, Config{})

	_, err := r.Render("base.html", "absent.md", nil)
	require.ErrorIs(t, err, ErrPageNotFound)

	_, err = r.Render("absent.html", "landing.md", landing{})
	require.ErrorIs(t, err, ErrLayoutNotFound)

	_, err = r.Render("base.html", "broken.md", nil)
	require.ErrorIs(t, err, ErrRenderFailed)

	_, err = r.Render("base.html", "missing-key.md", map[string]any{})
	require.ErrorIs(t, err, ErrRenderFailed)
}

func TestRenderer_CachesParsedFiles(t *testing.T) {
	t.Parallel()

	var reads atomic.Int32
	cfs := &countingFS{MapFS: testFS(), reads: &reads}
	r := NewRenderer(cfs, Config{})

	_, err := r.Render("base.html", "landing.md", landing{Name: "Alice"})
	require.NoError(t, err)
	require.Equal(t, int32(2), reads.Load())

	p, err := r.Render("base.html", "landing.md", landing{Name: "Bob"})
	require.NoError(t, err)
	require.Equal(t, int32(2), reads.Load())
	require.Contains(t, p.HTML, "<strong>Bob</strong>")
}

func TestRenderer_ConcurrentAccess(t *testing.T) {
	t.Parallel()

	r := NewRenderer(testFS(), Config{})

	var (
		wg     sync.WaitGroup
		failed atomic.Int32
	)
	for i := range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := r.Render("base.html", "landing.md", landing{Year: i}); err != nil {
				failed.Add(1)
			}
		}()
	}
	wg.Wait()

	require.Zero(t, failed.Load())
}

// countingFS counts ReadFile calls.
type countingFS struct {
	fstest.MapFS
	reads *atomic.Int32
}

func (c *countingFS) ReadFile(name string) ([]byte, error) {
	c.reads.Add(1)
	return c.MapFS.ReadFile(name)
}

func TestRenderer_ButtonClass(t *testing.T) {
	t.Parallel()

	r := NewRenderer(testFS(), Config{ButtonClass: "cta"})

	p, err := r.Render("base.html", "landing.md", landing{Name: "Jane"})
	require.NoError(t, err)
	require.Contains(t, p.HTML, `class="cta"`)
	require.NotContains(t, p.HTML, `class="btn"`)
}
