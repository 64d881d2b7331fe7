// Package convert turns Liferay journal content XML into WordPress-ready
// HTML and collects the media URLs the content references.
//
// Media discovery is regex-driven on purpose: the source markup is rarely
// well-formed XML, so attribute scanning is a best-effort heuristic rather
// than a full HTML parse.
package convert

import (
	"encoding/json"
	"encoding/xml"
	"errors"
	"fmt"
	"html"
	"regexp"
	"strings"
)

var (
	srcAttr  = regexp.MustCompile(`(?i)src\s*=\s*["']([^"']+)["']`)
	hrefAttr = regexp.MustCompile(`(?i)href\s*=\s*["']([^"']+)["']`)

	openTag     = regexp.MustCompile(`(?i)<\s*([a-zA-Z][a-zA-Z0-9]*)\b[^>]*>`)
	selfClosing = regexp.MustCompile(`(?i)<\s*[a-zA-Z][a-zA-Z0-9]*\b[^>]*/>`)
	voidTag     = regexp.MustCompile(`(?i)<\s*(img|br|hr|input|meta|link)\b[^>]*>`)

	blankLines = regexp.MustCompile(`\r?\n\s*\r?\n`)

	// Liferay document-library path carrying a trailing UUID, e.g.
	// /documents/10181/40353/report.doc/db531154-f596-49e6-9cac-51b827ceb12f
	uuidDocPath = regexp.MustCompile(`(?i)/documents/\d+/\d+/[^/]+/[a-f0-9]{8}-[a-f0-9]{4}-[a-f0-9]{4}-[a-f0-9]{4}-[a-f0-9]{12}`)
)

var mediaExtensions = []string{
	".jpg", ".jpeg", ".png", ".gif", ".bmp", ".webp", ".svg", ".ico", ".tiff",
	".pdf", ".doc", ".docx", ".xls", ".xlsx", ".ppt", ".pptx",
	".zip", ".rar", ".7z", ".tar", ".gz",
	".mp4", ".avi", ".mov", ".wmv", ".flv", ".webm", ".mpeg", ".mpg",
	".mp3", ".wav", ".ogg", ".flac", ".aac",
	".txt", ".csv", ".xml", ".json", ".odt", ".ods", ".odp",
}

// ToHTML converts a journal article's content payload into HTML and returns
// the deduplicated media URLs found along the way, in discovery order.
// Payloads that do not parse as content XML are returned unchanged with no
// URLs: broken content must not block migration of the record's other
// fields.
func ToHTML(contentXML string) (string, []string) {
	if strings.TrimSpace(contentXML) == "" {
		return "", nil
	}

	fragments, err := dynamicContents(contentXML)
	if err != nil {
		return contentXML, nil
	}

	var parts []string
	var urls []string

	for _, raw := range fragments {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}

		if url, ok := imageFragment(raw); ok {
			urls = append(urls, url)
			parts = append(parts, fmt.Sprintf(`<p><img src="%s" alt="" /></p>`, html.EscapeString(url)))
			continue
		}

		if containsHTML(raw) {
			urls = append(urls, extractMediaURLs(raw)...)
			parts = append(parts, raw)
			continue
		}

		for _, para := range blankLines.Split(raw, -1) {
			para = strings.TrimSpace(para)
			if para == "" {
				continue
			}
			escaped := html.EscapeString(para)
			escaped = strings.ReplaceAll(escaped, "\r\n", "<br />")
			escaped = strings.ReplaceAll(escaped, "\n", "<br />")
			parts = append(parts, "<p>"+escaped+"</p>")
		}
	}

	return strings.Join(parts, "\n\n"), dedup(urls)
}

// dynamicContents collects the text of every <dynamic-content> element, at
// any nesting depth, in document order.
func dynamicContents(contentXML string) ([]string, error) {
	dec := xml.NewDecoder(strings.NewReader(contentXML))

	var fragments []string
	sawElement := false
	for {
		tok, err := dec.Token()
		if tok == nil {
			break
		}
		if err != nil {
			return nil, err
		}

		start, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		sawElement = true
		if start.Name.Local != "dynamic-content" {
			continue
		}

		var value struct {
			Text string `xml:",chardata"`
		}
		if err := dec.DecodeElement(&value, &start); err != nil {
			return nil, err
		}
		fragments = append(fragments, value.Text)
	}

	if !sawElement {
		return nil, errNotXML
	}
	return fragments, nil
}

var errNotXML = errors.New("content is not structured XML")

// imageFragment recognises Liferay image fields encoded as small JSON
// objects with a src/url field.
func imageFragment(raw string) (string, bool) {
	if !strings.HasPrefix(raw, "{") || !strings.HasSuffix(raw, "}") {
		return "", false
	}

	var obj map[string]any
	if err := json.Unmarshal([]byte(raw), &obj); err != nil {
		return "", false
	}

	for _, key := range []string{"src", "url"} {
		if v, ok := obj[key].(string); ok && strings.TrimSpace(v) != "" {
			return v, true
		}
	}
	return "", false
}

// containsHTML reports whether the fragment already carries markup: a tag
// with a matching close tag, a self-closing tag, or a known void tag.
func containsHTML(raw string) bool {
	if voidTag.MatchString(raw) || selfClosing.MatchString(raw) {
		return true
	}

	lower := strings.ToLower(raw)
	for _, m := range openTag.FindAllStringSubmatch(raw, -1) {
		if strings.Contains(lower, "</"+strings.ToLower(m[1])) {
			return true
		}
	}
	return false
}

// extractMediaURLs scans src and href attribute values. src targets are
// always recorded; href targets only when they look like media.
func extractMediaURLs(fragment string) []string {
	var urls []string
	for _, m := range srcAttr.FindAllStringSubmatch(fragment, -1) {
		if u := strings.TrimSpace(m[1]); u != "" {
			urls = append(urls, u)
		}
	}
	for _, m := range hrefAttr.FindAllStringSubmatch(fragment, -1) {
		if u := strings.TrimSpace(m[1]); u != "" && IsMediaURL(u) {
			urls = append(urls, u)
		}
	}
	return urls
}

// IsMediaURL reports whether a URL probably points at a Liferay media
// asset: a document-library or image path, a UUID-suffixed document path,
// or a known media file extension anywhere in the URL.
func IsMediaURL(url string) bool {
	if strings.TrimSpace(url) == "" {
		return false
	}

	lower := strings.ToLower(url)
	if strings.Contains(lower, "/documents/") || strings.Contains(lower, "/image/") {
		return true
	}
	if uuidDocPath.MatchString(url) {
		return true
	}

	for _, ext := range mediaExtensions {
		if strings.Contains(lower, ext) {
			return true
		}
	}
	return false
}

func dedup(urls []string) []string {
	if len(urls) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(urls))
	out := make([]string, 0, len(urls))
	for _, u := range urls {
		if _, ok := seen[u]; ok {
			continue
		}
		seen[u] = struct{}{}
		out = append(out, u)
	}
	return out
}
