package page

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"path"
	"sync"
	texttemplate "text/template"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/hystudios/web/pkg/sanitizer"
)

// Config configures a Renderer.
type Config struct {
	ContentDir  string // Default: "content"
	LayoutDir   string // Default: "layouts"
	ButtonClass string // Default: "btn"
}

// Renderer turns markdown content files with YAML front matter into full HTML
// pages. The body is executed as a text/template with the caller's data,
// converted by goldmark, sanitized, and placed into an html/template layout.
//
// Parsed content and layouts are cached; rendered output never is.
type Renderer struct {
	fs         fs.FS
	md         goldmark.Markdown
	contentDir string
	layoutDir  string

	mu      sync.RWMutex
	pages   map[string]*cachedPage
	layouts map[string]*template.Template
}

type cachedPage struct {
	meta Meta
	body *texttemplate.Template
}

// NewRenderer creates a renderer reading from fsys.
func NewRenderer(fsys fs.FS, cfg Config) *Renderer {
	if cfg.ContentDir == "" {
		cfg.ContentDir = "content"
	}
	if cfg.LayoutDir == "" {
		cfg.LayoutDir = "layouts"
	}

	return &Renderer{
		fs:         fsys,
		contentDir: cfg.ContentDir,
		layoutDir:  cfg.LayoutDir,
		md: goldmark.New(
			goldmark.WithExtensions(
				extension.Typographer,
				NewButtonExtension(WithButtonClass(cfg.ButtonClass)),
			),
			// Content may carry section markup; the sanitizer has the last word.
			goldmark.WithRendererOptions(html.WithUnsafe()),
		),
		pages:   make(map[string]*cachedPage),
		layouts: make(map[string]*template.Template),
	}
}

// Page is a rendered page.
type Page struct {
	Meta Meta
	HTML string
}

// LayoutData is what a layout template receives.
type LayoutData struct {
	Meta    Meta
	Content template.HTML
	Data    any
}

// Render renders the content file name inside layout with data.
func (r *Renderer) Render(layout, name string, data any) (*Page, error) {
	var buf bytes.Buffer
	meta, err := r.render(&buf, layout, name, data)
	if err != nil {
		return nil, err
	}
	return &Page{Meta: meta, HTML: buf.String()}, nil
}

func (r *Renderer) render(w io.Writer, layout, name string, data any) (Meta, error) {
	p, err := r.page(name)
	if err != nil {
		return Meta{}, err
	}

	var md bytes.Buffer
	if err := p.body.Execute(&md, data); err != nil {
		return Meta{}, fmt.Errorf("%w: execute %s: %v", ErrRenderFailed, name, err)
	}

	var content bytes.Buffer
	if err := r.md.Convert(md.Bytes(), &content); err != nil {
		return Meta{}, fmt.Errorf("%w: convert %s: %v", ErrRenderFailed, name, err)
	}

	lt, err := r.layout(layout)
	if err != nil {
		return Meta{}, err
	}

	ld := LayoutData{
		Meta:    p.meta,
		Content: template.HTML(sanitizer.SanitizeHTML(content.String())), //nolint:gosec // sanitized above
		Data:    data,
	}
	if err := lt.Execute(w, ld); err != nil {
		return Meta{}, fmt.Errorf("%w: execute layout %s: %v", ErrRenderFailed, layout, err)
	}

	return p.meta, nil
}

func (r *Renderer) page(name string) (*cachedPage, error) {
	r.mu.RLock()
	p, ok := r.pages[name]
	r.mu.RUnlock()
	if ok {
		return p, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if p, ok := r.pages[name]; ok {
		return p, nil
	}

	raw, err := fs.ReadFile(r.fs, path.Join(r.contentDir, name))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrPageNotFound, name, err)
	}

	doc, err := Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	body, err := texttemplate.New(name).Option("missingkey=error").Parse(doc.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: parse %s: %v", ErrRenderFailed, name, err)
	}

	p = &cachedPage{meta: doc.Meta, body: body}
	r.pages[name] = p
	return p, nil
}

func (r *Renderer) layout(name string) (*template.Template, error) {
	r.mu.RLock()
	t, ok := r.layouts[name]
	r.mu.RUnlock()
	if ok {
		return t, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if t, ok := r.layouts[name]; ok {
		return t, nil
	}

	raw, err := fs.ReadFile(r.fs, path.Join(r.layoutDir, name))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrLayoutNotFound, name, err)
	}

	t, err = template.New(name).Parse(string(raw))
	if err != nil {
		return nil, fmt.Errorf("%w: parse layout %s: %v", ErrRenderFailed, name, err)
	}

	r.layouts[name] = t
	return t, nil
}
