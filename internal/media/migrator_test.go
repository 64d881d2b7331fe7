package media

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"liferay2wp/internal/domain"
)

var pngBytes = []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}

type fakeUploader struct {
	calls []uploadCall
}

type uploadCall struct {
	fileName    string
	contentType string
	size        int
}

func (f *fakeUploader) UploadMedia(_ context.Context, fileName string, data []byte, contentType string) (domain.MediaRef, error) {
	f.calls = append(f.calls, uploadCall{fileName: fileName, contentType: contentType, size: len(data)})
	id := len(f.calls)
	return domain.MediaRef{
		ID:        id,
		SourceURL: fmt.Sprintf("https://dest.example/wp-content/uploads/%s", fileName),
	}, nil
}

// newTestMigrator returns a migrator wired to an httptest server plus
// that server's base URL.
func newTestMigrator(t *testing.T, handler http.Handler) (*Migrator, *fakeUploader, string) {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	uploader := &fakeUploader{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewMigrator(srv.Client(), uploader, logger), uploader, srv.URL
}

func serveBytes(data []byte, contentType string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if contentType != "" {
			w.Header().Set("Content-Type", contentType)
		}
		_, _ = w.Write(data)
	})
}

func TestSniffMIME(t *testing.T) {
	tests := []struct {
		name     string
		data     []byte
		declared string
		url      string
		want     string
	}{
		{"png magic beats declared type", pngBytes, "application/octet-stream", "http://s/x", "image/png"},
		{"jpeg magic", []byte{0xFF, 0xD8, 0xFF, 0xE0}, "", "", "image/jpeg"},
		{"pdf magic", []byte("%PDF-1.7 rest"), "", "", "application/pdf"},
		{"ooxml word archive", append([]byte{0x50, 0x4B, 0x03, 0x04}, []byte("word/document.xml")...), "", "", "application/vnd.openxmlformats-officedocument.wordprocessingml.document"},
		{"plain zip archive", append([]byte{0x50, 0x4B, 0x03, 0x04}, []byte("anything-else")...), "", "", "application/zip"},
		{"svg markup", []byte(`  <svg xmlns="http://www.w3.org/2000/svg">`), "", "", "image/svg+xml"},
		{"mp4 ftyp box", append([]byte{0x00, 0x00, 0x00, 0x18}, []byte("ftypisom")...), "", "", "video/mp4"},
		{"declared type when no magic", []byte{0x00, 0x01, 0x02, 0x03, 0x00, 0x01, 0x02, 0x03}, "application/x-custom", "", "application/x-custom"},
		{"extension when nothing declared", []byte{0x00, 0x01, 0x02, 0x03, 0x00, 0x01, 0x02, 0x03}, "", "http://s/doc/report.xlsx?v=2", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"},
		{"text heuristic", []byte("plain readable content\nwith lines\n"), "", "http://s/note", "text/plain"},
		{"binary fallback", bytes.Repeat([]byte{0x00, 0x01, 0x02, 0x03}, 10), "", "http://s/blob", "application/octet-stream"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sniffMIME(tt.data, tt.declared, tt.url))
		})
	}
}

func TestEnsureUploadedCachesCaseInsensitively(t *testing.T) {
	var downloads int
	migrator, uploader, base := newTestMigrator(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		downloads++
		_, _ = w.Write(pngBytes)
	}))

	url1 := base + "/documents/Logo.PNG"
	url2 := base + "/documents/logo.png"

	refs, ids := migrator.EnsureUploaded(context.Background(), []string{url1, url2, ""})

	require.Len(t, ids, 2)
	assert.Equal(t, ids[0], ids[1], "second spelling must come from the cache")
	assert.Equal(t, 1, downloads)
	require.Len(t, uploader.calls, 1)
	assert.Equal(t, "image/png", uploader.calls[0].contentType)
	assert.Contains(t, refs, url1)
	assert.Contains(t, refs, url2)
}

func TestEnsureUploadedAppendsExtensionFromMIME(t *testing.T) {
	migrator, uploader, base := newTestMigrator(t, serveBytes(pngBytes, ""))

	_, ids := migrator.EnsureUploaded(context.Background(), []string{base + "/image/journal/article"})

	require.Len(t, ids, 1)
	require.Len(t, uploader.calls, 1)
	assert.Equal(t, "article.png", uploader.calls[0].fileName)
	assert.Equal(t, len(pngBytes), uploader.calls[0].size)
}

func TestEnsureUploadedSkipsFailures(t *testing.T) {
	migrator, uploader, base := newTestMigrator(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "missing.png") {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = w.Write(pngBytes)
	}))

	refs, ids := migrator.EnsureUploaded(context.Background(), []string{
		base + "/documents/missing.png",
		base + "/documents/ok.png",
	})

	require.Len(t, ids, 1)
	require.Len(t, refs, 1)
	assert.Len(t, uploader.calls, 1)
}

func TestRewriteLinks(t *testing.T) {
	migrator, _, base := newTestMigrator(t, serveBytes(pngBytes, "image/png"))

	html := `<p><img src="/documents/10180/0/photo.png" /></p>` +
		`<p><a href="https://other.example/page.html">elsewhere</a></p>`

	rewritten, ids := migrator.RewriteLinks(context.Background(), html, base)

	require.Len(t, ids, 1)
	assert.Contains(t, rewritten, `src="https://dest.example/wp-content/uploads/photo.png"`)
	assert.NotContains(t, rewritten, "/documents/10180")
	assert.Contains(t, rewritten, `href="https://other.example/page.html"`, "external links stay untouched")
}

func TestRewriteLinksLeavesForeignAbsoluteURLs(t *testing.T) {
	migrator, uploader, base := newTestMigrator(t, serveBytes(pngBytes, "image/png"))

	html := `<img src="https://cdn.example/banner.png" />`

	rewritten, ids := migrator.RewriteLinks(context.Background(), html, base)

	assert.Equal(t, html, rewritten)
	assert.Empty(t, ids)
	assert.Empty(t, uploader.calls)
}

func TestRewriteLinksReplacesEveryOccurrence(t *testing.T) {
	migrator, _, base := newTestMigrator(t, serveBytes(pngBytes, "image/png"))

	html := `<img src="/documents/1/a.png" /><a href="/documents/1/a.png">download</a>`

	rewritten, ids := migrator.RewriteLinks(context.Background(), html, base)

	require.Len(t, ids, 1)
	assert.NotContains(t, rewritten, "/documents/1/a.png")
	assert.Equal(t, 2, strings.Count(rewritten, "dest.example"))
}
