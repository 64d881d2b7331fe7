// Package media downloads binary assets referenced by migrated content
// and uploads them to the destination media library, rewriting the HTML
// to point at its new home.
package media

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"path"
	"regexp"
	"strings"

	"liferay2wp/internal/domain"
)

// Uploader is the slice of the destination client the migrator needs.
type Uploader interface {
	UploadMedia(ctx context.Context, fileName string, data []byte, contentType string) (domain.MediaRef, error)
}

// Migrator uploads each distinct source URL at most once per run. The
// cache is keyed case-insensitively because Liferay URLs reach us in
// mixed spellings.
type Migrator struct {
	httpClient *http.Client
	uploader   Uploader
	logger     *slog.Logger

	cache map[string]domain.MediaRef
}

func NewMigrator(httpClient *http.Client, uploader Uploader, logger *slog.Logger) *Migrator {
	return &Migrator{
		httpClient: httpClient,
		uploader:   uploader,
		logger:     logger.With("component", "media"),
		cache:      make(map[string]domain.MediaRef),
	}
}

// EnsureUploaded downloads and uploads every distinct non-blank URL,
// returning a map from the URLs as given to their destination refs plus
// the flat list of uploaded media IDs. A URL that fails to download or
// upload is logged and skipped; it never fails the batch.
func (m *Migrator) EnsureUploaded(ctx context.Context, urls []string) (map[string]domain.MediaRef, []int) {
	result := make(map[string]domain.MediaRef)
	var ids []int

	for _, u := range urls {
		if strings.TrimSpace(u) == "" {
			continue
		}

		key := strings.ToLower(u)
		if cached, ok := m.cache[key]; ok {
			result[u] = cached
			ids = append(ids, cached.ID)
			continue
		}

		ref, err := m.upload(ctx, u)
		if err != nil {
			m.logger.Warn("skipping media", "url", u, "error", err)
			continue
		}

		m.cache[key] = ref
		result[u] = ref
		ids = append(ids, ref.ID)
	}

	return result, ids
}

func (m *Migrator) upload(ctx context.Context, sourceURL string) (domain.MediaRef, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, sourceURL, nil)
	if err != nil {
		return domain.MediaRef{}, fmt.Errorf("build request: %w", err)
	}

	resp, err := m.httpClient.Do(req)
	if err != nil {
		return domain.MediaRef{}, fmt.Errorf("download: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return domain.MediaRef{}, fmt.Errorf("download: unexpected status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return domain.MediaRef{}, fmt.Errorf("read body: %w", err)
	}

	mime := sniffMIME(data, resp.Header.Get("Content-Type"), sourceURL)

	fileName := fileNameFromURL(sourceURL)
	if path.Ext(fileName) == "" {
		fileName = fileName + "." + extensionForMIME(mime)
	}

	m.logger.Info("uploading media", "file", fileName, "bytes", len(data), "mime", mime)

	ref, err := m.uploader.UploadMedia(ctx, fileName, data, mime)
	if err != nil {
		return domain.MediaRef{}, fmt.Errorf("upload: %w", err)
	}
	return ref, nil
}

var (
	srcAttrRe  = regexp.MustCompile(`(?i)src\s*=\s*["']([^"']+)["']`)
	hrefAttrRe = regexp.MustCompile(`(?i)href\s*=\s*["']([^"']+)["']`)
)

// RewriteLinks finds media URLs inside src and href attributes, uploads
// them and substitutes each original spelling with the destination URL.
// Absolute URLs are only touched when they live under sourceBaseURL and
// look like documents; anything external stays as-is.
func (m *Migrator) RewriteLinks(ctx context.Context, html, sourceBaseURL string) (string, []int) {
	if strings.TrimSpace(html) == "" {
		return html, nil
	}

	type mapping struct {
		original   string
		normalized string
	}
	var mappings []mapping
	seenOriginal := make(map[string]struct{})

	for _, re := range []*regexp.Regexp{srcAttrRe, hrefAttrRe} {
		for _, match := range re.FindAllStringSubmatch(html, -1) {
			original := match[1]
			if strings.TrimSpace(original) == "" {
				continue
			}
			if _, ok := seenOriginal[strings.ToLower(original)]; ok {
				continue
			}
			if !shouldRewrite(original, sourceBaseURL) {
				continue
			}
			seenOriginal[strings.ToLower(original)] = struct{}{}
			mappings = append(mappings, mapping{
				original:   original,
				normalized: normalizeURL(original, sourceBaseURL),
			})
		}
	}

	if len(mappings) == 0 {
		return html, nil
	}

	var normalized []string
	seenNormalized := make(map[string]struct{})
	for _, mp := range mappings {
		key := strings.ToLower(mp.normalized)
		if _, ok := seenNormalized[key]; ok {
			continue
		}
		seenNormalized[key] = struct{}{}
		normalized = append(normalized, mp.normalized)
	}

	m.logger.Info("rewriting media links", "count", len(normalized))

	uploaded, ids := m.EnsureUploaded(ctx, normalized)

	updated := html
	for _, mp := range mappings {
		ref, ok := uploaded[mp.normalized]
		if !ok {
			continue
		}
		updated = strings.ReplaceAll(updated, mp.original, ref.SourceURL)
		m.logger.Debug("rewrote link", "from", mp.original, "to", ref.SourceURL)
	}

	return updated, ids
}

func shouldRewrite(rawURL, sourceBaseURL string) bool {
	lower := strings.ToLower(rawURL)

	if strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") {
		if sourceBaseURL == "" || !strings.HasPrefix(lower, strings.ToLower(sourceBaseURL)) {
			return false
		}
		return strings.Contains(lower, "/documents/") || strings.Contains(lower, "/image/")
	}

	return strings.Contains(lower, "/documents/") ||
		strings.Contains(lower, "/image/") ||
		hasMediaExtension(lower)
}

func normalizeURL(rawURL, sourceBaseURL string) string {
	if parsed, err := url.Parse(rawURL); err == nil && parsed.IsAbs() {
		return parsed.String()
	}
	if sourceBaseURL == "" {
		return rawURL
	}

	base, err := url.Parse(strings.TrimRight(sourceBaseURL, "/") + "/")
	if err != nil {
		return rawURL
	}
	ref, err := url.Parse(strings.TrimLeft(rawURL, "/"))
	if err != nil {
		return rawURL
	}
	return base.ResolveReference(ref).String()
}

var mediaExtensions = []string{
	".jpg", ".jpeg", ".png", ".gif", ".bmp", ".webp", ".svg", ".ico", ".tiff",
	".pdf", ".doc", ".docx", ".xls", ".xlsx", ".ppt", ".pptx",
	".zip", ".rar", ".7z", ".tar", ".gz",
	".mp4", ".avi", ".mov", ".wmv", ".flv", ".webm", ".mpeg", ".mpg",
	".mp3", ".wav", ".ogg", ".flac", ".aac",
	".txt", ".csv", ".xml", ".json", ".odt", ".ods", ".odp",
}

func hasMediaExtension(lowerURL string) bool {
	for _, ext := range mediaExtensions {
		if strings.Contains(lowerURL, ext) {
			return true
		}
	}
	return false
}

func fileNameFromURL(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return "media"
	}
	name := path.Base(parsed.Path)
	if name == "" || name == "." || name == "/" {
		return "media"
	}
	return name
}
