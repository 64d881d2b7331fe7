package convert

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func journalXML(fragments ...string) string {
	doc := `<?xml version="1.0"?><root available-locales="it_IT" default-locale="it_IT">`
	for _, f := range fragments {
		doc += `<dynamic-element name="content" type="text_area"><dynamic-content language-id="it_IT"><![CDATA[` + f + `]]></dynamic-content></dynamic-element>`
	}
	return doc + `</root>`
}

func TestToHTML_PlainTextBecomesParagraphs(t *testing.T) {
	html, urls := ToHTML(journalXML("Primo paragrafo\ncon a capo\n\nSecondo & ultimo"))

	assert.Equal(t, "<p>Primo paragrafo<br />con a capo</p>\n\n<p>Secondo &amp; ultimo</p>", html)
	assert.Empty(t, urls)
}

func TestToHTML_JSONImageFragment(t *testing.T) {
	html, urls := ToHTML(journalXML(`{"src":"/documents/10181/0/foto.jpg"}`))

	assert.Equal(t, `<p><img src="/documents/10181/0/foto.jpg" alt="" /></p>`, html)
	assert.Equal(t, []string{"/documents/10181/0/foto.jpg"}, urls)
}

func TestToHTML_HTMLFragmentKeptVerbatim(t *testing.T) {
	fragment := `<div><img src="/documents/10181/40353/pic.png"><a href="https://example.org/page">link</a><a href="/documents/10181/40353/doc.pdf">pdf</a></div>`
	html, urls := ToHTML(journalXML(fragment))

	assert.Equal(t, fragment, html)
	require.Len(t, urls, 2, "the plain page link must not be collected")
	assert.Equal(t, "/documents/10181/40353/pic.png", urls[0])
	assert.Equal(t, "/documents/10181/40353/doc.pdf", urls[1])
}

func TestToHTML_MixedFragmentsAndDedup(t *testing.T) {
	html, urls := ToHTML(journalXML(
		`<p><img src="/image/journal/article?img_id=1"></p>`,
		`<p><img src="/image/journal/article?img_id=1"></p>`,
		"testo semplice",
	))

	assert.Contains(t, html, "<p>testo semplice</p>")
	assert.Equal(t, []string{"/image/journal/article?img_id=1"}, urls, "duplicate URLs collapse")
}

func TestToHTML_UnparseablePayloadReturnedUnchanged(t *testing.T) {
	raw := "non è XML, solo testo"
	html, urls := ToHTML(raw)

	assert.Equal(t, raw, html)
	assert.Empty(t, urls)
}

func TestToHTML_MalformedXMLReturnedUnchanged(t *testing.T) {
	raw := `<root><dynamic-content>oops`
	html, urls := ToHTML(raw)

	assert.Equal(t, raw, html)
	assert.Empty(t, urls)
}

func TestToHTML_Empty(t *testing.T) {
	html, urls := ToHTML("")
	assert.Equal(t, "", html)
	assert.Empty(t, urls)
}

func TestIsMediaURL(t *testing.T) {
	tests := []struct {
		url  string
		want bool
	}{
		{"/documents/10181/40353/rilascio.doc/db531154-f596-49e6-9cac-51b827ceb12f", true},
		{"/documents/10181/0/foto.jpg", true},
		{"/image/journal/article?img_id=42", true},
		{"relative/path/report.pdf", true},
		{"https://example.org/page", false},
		{"/about-us", false},
		{"", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, IsMediaURL(tt.url), "url %q", tt.url)
	}
}
