package page

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Meta is the typed front matter of a content file.
type Meta struct {
	Title       string    `yaml:"title"`
	Description string    `yaml:"description"`
	URL         string    `yaml:"url"`
	SiteName    string    `yaml:"site_name"`
	Lang        string    `yaml:"lang"`
	OpenGraph   OpenGraph `yaml:"og"`
	Robots      Robots    `yaml:"robots"`
}

// OpenGraph holds og:* values. Empty fields fall back to the page title and description.
type OpenGraph struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Type        string `yaml:"type"`
}

// Robots controls the robots meta tag.
type Robots struct {
	Index  bool `yaml:"index"`
	Follow bool `yaml:"follow"`
}

// Directive returns the content of the robots meta tag.
func (r Robots) Directive() string {
	index, follow := "noindex", "nofollow"
	if r.Index {
		index = "index"
	}
	if r.Follow {
		follow = "follow"
	}
	return index + ", " + follow
}

// OGTitle returns the OpenGraph title, defaulting to the page title.
func (m Meta) OGTitle() string {
	if m.OpenGraph.Title != "" {
		return m.OpenGraph.Title
	}
	return m.Title
}

// OGDescription returns the OpenGraph description, defaulting to the page description.
func (m Meta) OGDescription() string {
	if m.OpenGraph.Description != "" {
		return m.OpenGraph.Description
	}
	return m.Description
}

// OGType returns the OpenGraph type, "website" unless set.
func (m Meta) OGType() string {
	if m.OpenGraph.Type != "" {
		return m.OpenGraph.Type
	}
	return "website"
}

// Document is a parsed content file: front matter plus the markdown body.
type Document struct {
	Meta Meta
	Body string
}

var fence = []byte("---")

// Parse splits content into YAML front matter and body.
// Content without a leading "---" fence is all body with zero Meta.
func Parse(content []byte) (*Document, error) {
	if !bytes.HasPrefix(content, fence) {
		return &Document{Body: string(content)}, nil
	}

	rest := bytes.TrimLeft(bytes.TrimPrefix(content, fence), "\r\n")
	if len(rest) == 0 {
		return nil, fmt.Errorf("%w: nothing after opening fence", ErrInvalidFrontmatter)
	}

	end := bytes.Index(rest, fence)
	if end == -1 {
		return nil, fmt.Errorf("%w: closing fence not found", ErrInvalidFrontmatter)
	}

	front := rest[:end]
	body := rest[end+len(fence):]
	switch {
	case bytes.HasPrefix(body, []byte("\r\n")):
		body = body[2:]
	case bytes.HasPrefix(body, []byte("\n")):
		body = body[1:]
	}

	doc := &Document{Body: string(body)}
	if len(bytes.TrimSpace(front)) > 0 {
		if err := yaml.Unmarshal(front, &doc.Meta); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidFrontmatter, err)
		}
	}

	return doc, nil
}
