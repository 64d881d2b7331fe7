// Package wordpress is the client for the destination WordPress REST API.
// Every network call runs under a bounded retry policy: transient failures
// (transport errors, 5xx, 429) are retried with exponential backoff, any
// other failure propagates immediately.
package wordpress

import (
	"bytes"
	"context"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/go-querystring/query"

	"liferay2wp/internal/domain"
)

const apiPrefix = "/wp-json/wp/v2/"

// Config holds client construction parameters. Authentication is a static
// Basic credential applied to every request.
type Config struct {
	BaseURL        string
	Username       string
	AppPassword    string
	PostType       string // default collection, e.g. "posts" or "pages"
	Timeout        time.Duration
	MaxAttempts    int
	InitialBackoff time.Duration
	MaxBackoff     time.Duration
}

type Client struct {
	httpClient *http.Client
	baseURL    *url.URL
	username   string
	password   string
	postType   string

	maxAttempts    int
	initialBackoff time.Duration
	maxBackoff     time.Duration

	logger *slog.Logger

	// taxonomy slug -> rest_base, populated once per run
	taxonomyRestBase map[string]string
}

func New(cfg Config, logger *slog.Logger) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("wordpress: base URL is required")
	}
	base, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("wordpress: parse base URL: %w", err)
	}

	postType := cfg.PostType
	if postType == "" {
		postType = "posts"
	}

	return &Client{
		httpClient:     &http.Client{Timeout: cfg.Timeout},
		baseURL:        base,
		username:       cfg.Username,
		password:       cfg.AppPassword,
		postType:       postType,
		maxAttempts:    cfg.MaxAttempts,
		initialBackoff: cfg.InitialBackoff,
		maxBackoff:     cfg.MaxBackoff,
		logger:         logger.With("component", "wordpress"),
	}, nil
}

// CreatePost creates a post in the given collection (empty = the default
// one). Extra taxonomies are merged into the JSON body as additional
// top-level fields, which is how WordPress accepts custom taxonomy term
// assignments.
func (c *Client) CreatePost(ctx context.Context, collection string, post domain.Post, extraTaxonomies map[string][]int) (domain.PostRef, error) {
	target := collection
	if target == "" {
		target = c.postType
	}

	body, err := mergeTaxonomies(post, extraTaxonomies)
	if err != nil {
		return domain.PostRef{}, fmt.Errorf("encode post: %w", err)
	}

	status, respBody, err := c.do(ctx, http.MethodPost, apiPrefix+target, nil, body, jsonHeader())
	if err != nil {
		return domain.PostRef{}, fmt.Errorf("create %s: %w", target, err)
	}
	if status < 200 || status > 299 {
		return domain.PostRef{}, fmt.Errorf("create %s: unexpected status %d: %s", target, status, truncate(respBody))
	}

	var ref domain.PostRef
	if err := json.Unmarshal(respBody, &ref); err != nil {
		return domain.PostRef{}, fmt.Errorf("decode create response: %w", err)
	}

	c.logger.Info("created post", "collection", target, "id", ref.ID, "link", ref.Link)
	return ref, nil
}

// UploadMedia uploads raw bytes to the media library.
func (c *Client) UploadMedia(ctx context.Context, fileName string, data []byte, contentType string) (domain.MediaRef, error) {
	header := http.Header{}
	header.Set("Content-Type", contentType)
	header.Set("Content-Disposition", fmt.Sprintf(`attachment; filename=%q`, fileName))

	status, respBody, err := c.do(ctx, http.MethodPost, apiPrefix+"media", nil, data, header)
	if err != nil {
		return domain.MediaRef{}, fmt.Errorf("upload media %s: %w", fileName, err)
	}
	if status < 200 || status > 299 {
		return domain.MediaRef{}, fmt.Errorf("upload media %s: unexpected status %d: %s", fileName, status, truncate(respBody))
	}

	var ref domain.MediaRef
	if err := json.Unmarshal(respBody, &ref); err != nil {
		return domain.MediaRef{}, fmt.Errorf("decode media response: %w", err)
	}

	c.logger.Info("uploaded media", "file", fileName, "id", ref.ID, "url", ref.SourceURL)
	return ref, nil
}

type termQuery struct {
	Search  string `url:"search"`
	PerPage int    `url:"per_page"`
	Page    int    `url:"page"`
}

type term struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// EnsureTerm returns the ID of the taxonomy term with the exact given
// name, creating it when no page of the search results carries it. The
// taxonomy name is translated to its rest_base through a directory lookup
// cached for the run.
func (c *Client) EnsureTerm(ctx context.Context, taxonomy, name string) (int, error) {
	base, err := c.restBase(ctx, taxonomy)
	if err != nil {
		return 0, err
	}

	for page := 1; ; page++ {
		q, err := query.Values(termQuery{Search: name, PerPage: 100, Page: page})
		if err != nil {
			return 0, fmt.Errorf("encode term query: %w", err)
		}

		status, body, err := c.do(ctx, http.MethodGet, apiPrefix+base, q, nil, nil)
		if err != nil {
			return 0, fmt.Errorf("search term %q in %s: %w", name, taxonomy, err)
		}
		if status < 200 || status > 299 {
			// Out-of-range pages and unregistered taxonomies both land
			// here; fall through to creation.
			if status == http.StatusNotFound {
				c.logger.Warn("taxonomy endpoint not found, is it registered with show_in_rest?", "taxonomy", taxonomy, "rest_base", base)
			}
			break
		}

		var terms []term
		if err := json.Unmarshal(body, &terms); err != nil {
			return 0, fmt.Errorf("decode term search: %w", err)
		}
		if len(terms) == 0 {
			break
		}
		for _, t := range terms {
			if t.Name == name {
				return t.ID, nil
			}
		}
	}

	payload, err := json.Marshal(map[string]string{"name": name})
	if err != nil {
		return 0, fmt.Errorf("encode term: %w", err)
	}
	status, body, err := c.do(ctx, http.MethodPost, apiPrefix+base, nil, payload, jsonHeader())
	if err != nil {
		return 0, fmt.Errorf("create term %q in %s: %w", name, taxonomy, err)
	}
	if status < 200 || status > 299 {
		return 0, fmt.Errorf("create term %q in %s: unexpected status %d: %s", name, taxonomy, status, truncate(body))
	}

	var created term
	if err := json.Unmarshal(body, &created); err != nil {
		return 0, fmt.Errorf("decode created term: %w", err)
	}
	return created.ID, nil
}

type userQuery struct {
	Search  string `url:"search"`
	Context string `url:"context"`
}

// EnsureUser finds a user by email or creates one with the given role and
// a random password.
func (c *Client) EnsureUser(ctx context.Context, username, email, displayName, role string) (int, error) {
	q, err := query.Values(userQuery{Search: email, Context: "edit"})
	if err != nil {
		return 0, fmt.Errorf("encode user query: %w", err)
	}

	status, body, err := c.do(ctx, http.MethodGet, apiPrefix+"users", q, nil, nil)
	if err != nil {
		return 0, fmt.Errorf("search user %s: %w", email, err)
	}
	if status >= 200 && status <= 299 {
		var users []struct {
			ID    int    `json:"id"`
			Email string `json:"email"`
		}
		if err := json.Unmarshal(body, &users); err == nil {
			for _, u := range users {
				if strings.EqualFold(u.Email, email) {
					return u.ID, nil
				}
			}
		}
	}

	if role == "" {
		role = "author"
	}
	payload, err := json.Marshal(map[string]any{
		"username": username,
		"email":    email,
		"name":     displayName,
		"roles":    []string{role},
		"password": randomPassword(),
	})
	if err != nil {
		return 0, fmt.Errorf("encode user: %w", err)
	}

	status, body, err = c.do(ctx, http.MethodPost, apiPrefix+"users", nil, payload, jsonHeader())
	if err != nil {
		return 0, fmt.Errorf("create user %s: %w", email, err)
	}
	if status < 200 || status > 299 {
		return 0, fmt.Errorf("create user %s: unexpected status %d: %s", email, status, truncate(body))
	}

	var created struct {
		ID int `json:"id"`
	}
	if err := json.Unmarshal(body, &created); err != nil {
		return 0, fmt.Errorf("decode created user: %w", err)
	}

	c.logger.Info("created user", "email", email, "id", created.ID)
	return created.ID, nil
}

type slugQuery struct {
	Slug    string `url:"slug"`
	PerPage int    `url:"per_page"`
}

// ExistsBySlug reports whether the collection already holds a post with
// the slug. Non-2xx responses count as "does not exist", matching the
// behaviour the slug-probing loop relies on.
func (c *Client) ExistsBySlug(ctx context.Context, collection, slug string) (bool, error) {
	target := collection
	if target == "" {
		target = c.postType
	}

	q, err := query.Values(slugQuery{Slug: slug, PerPage: 1})
	if err != nil {
		return false, fmt.Errorf("encode slug query: %w", err)
	}

	status, body, err := c.do(ctx, http.MethodGet, apiPrefix+target, q, nil, nil)
	if err != nil {
		return false, fmt.Errorf("check slug %q in %s: %w", slug, target, err)
	}
	if status < 200 || status > 299 {
		return false, nil
	}

	var posts []json.RawMessage
	if err := json.Unmarshal(body, &posts); err != nil {
		return false, fmt.Errorf("decode slug check: %w", err)
	}
	return len(posts) > 0, nil
}

// restBase resolves a taxonomy name to its REST collection path via the
// /taxonomies directory, fetched at most once per run. Unknown taxonomies
// fall back to their own name.
func (c *Client) restBase(ctx context.Context, taxonomy string) (string, error) {
	if c.taxonomyRestBase == nil {
		status, body, err := c.do(ctx, http.MethodGet, apiPrefix+"taxonomies", nil, nil, nil)
		if err != nil {
			return "", fmt.Errorf("list taxonomies: %w", err)
		}

		c.taxonomyRestBase = make(map[string]string)
		if status >= 200 && status <= 299 {
			var directory map[string]struct {
				RestBase string `json:"rest_base"`
			}
			if err := json.Unmarshal(body, &directory); err == nil {
				for slugName, entry := range directory {
					if entry.RestBase != "" {
						c.taxonomyRestBase[strings.ToLower(slugName)] = entry.RestBase
					}
				}
			}
		}
	}

	if base, ok := c.taxonomyRestBase[strings.ToLower(taxonomy)]; ok {
		return base, nil
	}
	return taxonomy, nil
}

// do performs one HTTP call under the retry policy: up to MaxAttempts
// tries, exponential backoff, retrying transport errors, 5xx and 429.
// Exhausted retries surface as an error; non-retryable statuses are
// returned to the caller to interpret.
func (c *Client) do(ctx context.Context, method, path string, q url.Values, body []byte, header http.Header) (int, []byte, error) {
	ref := &url.URL{Path: path}
	target := c.baseURL.ResolveReference(ref)
	if q != nil {
		target.RawQuery = q.Encode()
	}

	var lastErr error
	for attempt := 1; attempt <= c.maxAttempts; attempt++ {
		var reader io.Reader
		if body != nil {
			reader = bytes.NewReader(body)
		}

		req, err := http.NewRequestWithContext(ctx, method, target.String(), reader)
		if err != nil {
			return 0, nil, fmt.Errorf("build request: %w", err)
		}
		req.SetBasicAuth(c.username, c.password)
		req.Header.Set("Accept", "application/json")
		for k, vs := range header {
			for _, v := range vs {
				req.Header.Set(k, v)
			}
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = fmt.Errorf("execute request: %w", err)
		} else {
			respBody, readErr := io.ReadAll(resp.Body)
			resp.Body.Close()
			if readErr != nil {
				return 0, nil, fmt.Errorf("read response body: %w", readErr)
			}
			if !retryableStatus(resp.StatusCode) {
				return resp.StatusCode, respBody, nil
			}
			lastErr = fmt.Errorf("status %d: %s", resp.StatusCode, truncate(respBody))
		}

		if attempt == c.maxAttempts {
			break
		}

		backoff := c.backoff(attempt)
		c.logger.Warn("request failed, retrying",
			"method", method,
			"path", path,
			"attempt", attempt,
			"backoff", backoff,
			"error", lastErr,
		)

		select {
		case <-ctx.Done():
			return 0, nil, ctx.Err()
		case <-time.After(backoff):
		}
	}

	return 0, nil, fmt.Errorf("after %d attempts: %w", c.maxAttempts, lastErr)
}

func retryableStatus(status int) bool {
	return status >= 500 || status == http.StatusTooManyRequests
}

func (c *Client) backoff(attempt int) time.Duration {
	backoff := c.initialBackoff
	for i := 1; i < attempt; i++ {
		backoff *= 2
	}
	if c.maxBackoff > 0 && backoff > c.maxBackoff {
		backoff = c.maxBackoff
	}
	return backoff
}

// mergeTaxonomies flattens the post and any extra taxonomy assignments
// into a single JSON object.
func mergeTaxonomies(post domain.Post, extra map[string][]int) ([]byte, error) {
	encoded, err := json.Marshal(post)
	if err != nil {
		return nil, err
	}
	if len(extra) == 0 {
		return encoded, nil
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(encoded, &obj); err != nil {
		return nil, err
	}
	for taxonomy, ids := range extra {
		raw, err := json.Marshal(ids)
		if err != nil {
			return nil, err
		}
		obj[taxonomy] = raw
	}
	return json.Marshal(obj)
}

func jsonHeader() http.Header {
	h := http.Header{}
	h.Set("Content-Type", "application/json")
	return h
}

func randomPassword() string {
	buf := make([]byte, 18)
	_, _ = rand.Read(buf)
	return base64.StdEncoding.EncodeToString(buf)
}

func truncate(body []byte) string {
	const max = 300
	if len(body) <= max {
		return string(body)
	}
	return string(body[:max]) + "…"
}
