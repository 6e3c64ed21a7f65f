package sanitizer

import (
	"html"
	"regexp"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

// pageContent keeps what rendered markdown pages need: headings, paragraphs,
// lists, links and class names for styling.
var pageContent = sync.OnceValue(func() *bluemonday.Policy {
	p := bluemonday.NewPolicy()
	p.AllowStandardURLs()
	p.AllowElements(
		"h1", "h2", "h3", "h4", "p", "br", "hr",
		"strong", "b", "em", "i", "small",
		"ul", "ol", "li",
		"code", "pre", "blockquote",
		"section", "article", "div", "span",
	)
	p.AllowAttrs("href").OnElements("a")
	p.AllowAttrs("class").Matching(regexp.MustCompile(`^[a-zA-Z0-9 _-]+$`)).Globally()
	p.AllowAttrs("id").Matching(bluemonday.Paragraph).Globally()
	p.RequireNoFollowOnFullyQualifiedLinks(true)
	p.AddTargetBlankToFullyQualifiedLinks(true)
	return p
})

var noMarkup = sync.OnceValue(bluemonday.StrictPolicy)

// SanitizeHTML filters rendered page content. Scripts, event handlers,
// inline styles and javascript: URLs are removed; external links get
// rel="nofollow" and target="_blank".
func SanitizeHTML(s string) string {
	return pageContent().Sanitize(s)
}

// blockBreaks turns block-level boundaries into line breaks before tags are stripped.
var blockBreaks = strings.NewReplacer(
	"<br>", "\n", "<br/>", "\n", "<br />", "\n",
	"</p>", "\n", "</div>", "\n", "</li>", "\n",
	"</h1>", "\n", "</h2>", "\n", "</h3>", "\n", "</h4>", "\n",
	"</tr>", "\n", "</table>", "\n",
)

// PlainText converts an HTML fragment to readable plain text for the text
// part of an email. Block boundaries become line breaks, all tags are
// dropped, entities are decoded exactly once and runs of blank lines
// collapse to one.
func PlainText(s string) string {
	text := html.UnescapeString(noMarkup().Sanitize(blockBreaks.Replace(s)))

	var b strings.Builder
	pendingBlank := false
	for line := range strings.Lines(text) {
		line = strings.TrimRight(line, " \t\r\n")
		if strings.TrimSpace(line) == "" {
			pendingBlank = b.Len() > 0
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('\n')
			if pendingBlank {
				b.WriteByte('\n')
			}
		}
		pendingBlank = false
		b.WriteString(line)
	}
	return strings.TrimSpace(b.String())
}
