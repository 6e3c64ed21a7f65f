// Package assets embeds the site content, layouts and static files.
package assets

import "embed"

// FS holds content/ (markdown pages), layouts/ (html/template layouts) and
// static/ (files served under /static/).
//
//go:embed content layouts static
var FS embed.FS
