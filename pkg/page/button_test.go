package page

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/yuin/goldmark"
)

func convert(t *testing.T, source string, opts ...ButtonOption) string {
	t.Helper()

	md := goldmark.New(goldmark.WithExtensions(NewButtonExtension(opts...)))

	var buf bytes.Buffer
	require.NoError(t, md.Convert([]byte(source), &buf))
	return buf.String()
}

func TestButtonExtension_RendersButton(t *testing.T) {
	t.Parallel()

	out := convert(t, `[!button|Request the deck](#request)`)
	require.Contains(t, out, `<a href="#request" class="btn">Request the deck</a>`)
}

func TestButtonExtension_CustomClass(t *testing.T) {
	t.Parallel()

	out := convert(t, `[!button|Talk to us](mailto:hello@hystudios.io)`, WithButtonClass("cta"))
	require.Contains(t, out, `<a href="mailto:hello@hystudios.io" class="cta">Talk to us</a>`)
}

func TestButtonExtension_EscapesHTML(t *testing.T) {
	t.Parallel()

	out := convert(t, `[!button|<script>alert(1)</script>](https://example.com)`)
	require.NotContains(t, out, "<script>")
	require.Contains(t, out, "&lt;script&gt;")
}

func TestButtonExtension_InsideParagraph(t *testing.T) {
	t.Parallel()

	out := convert(t, "# Welcome\n\nRead more:\n\n[!button|Deck](https://example.com/deck?ref=site&v=2)\n\nThanks.")
	require.Contains(t, out, "<h1>Welcome</h1>")
	require.Contains(t, out, `href="https://example.com/deck?ref=site&amp;v=2"`)
	require.Contains(t, out, "Thanks.")
}

func TestButtonExtension_MultipleButtons(t *testing.T) {
	t.Parallel()

	out := convert(t, "[!button|Deck](/deck) [!button|Call](/call)")
	require.Contains(t, out, `<a href="/deck" class="btn">Deck</a>`)
	require.Contains(t, out, `<a href="/call" class="btn">Call</a>`)
}

func TestButtonExtension_IgnoresOtherSyntax(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"regular link":    `[Regular](https://example.com)`,
		"missing url":     `[!button|Click]`,
		"missing bracket": `[!button|Click(https://example.com)`,
		"wrong prefix":    `[button|Click](https://example.com)`,
		"unclosed url":    `[!button|Click](https://example.com`,
	}

	for name, source := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			require.NotContains(t, convert(t, source), `class="btn"`)
		})
	}
}

func TestButtonExtension_EmptyLabel(t *testing.T) {
	t.Parallel()

	out := convert(t, `[!button|](https://example.com)`)
	require.Contains(t, out, `<a href="https://example.com" class="btn"></a>`)
}
