// Package page renders markdown content files into HTML pages.
//
// A content file starts with YAML front matter between "---" fences, decoded
// into Meta (title, description, OpenGraph and robots values). The body is a
// text/template executed with caller data, then converted with goldmark. The
// resulting HTML is passed through the sanitizer content policy and handed to
// an html/template layout as LayoutData.
//
// The markdown dialect adds call-to-action buttons:
//
//	[!button|Request the deck](#request)
//
// renders as <a href="#request" class="btn">Request the deck</a>.
package page
