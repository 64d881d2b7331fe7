package wordpress

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"liferay2wp/internal/domain"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := New(Config{
		BaseURL:        srv.URL,
		Username:       "migrator",
		AppPassword:    "xxxx yyyy",
		PostType:       "posts",
		Timeout:        5 * time.Second,
		MaxAttempts:    3,
		InitialBackoff: time.Millisecond,
		MaxBackoff:     5 * time.Millisecond,
	}, testLogger())
	require.NoError(t, err)

	return client
}

func TestCreatePostMergesExtraTaxonomies(t *testing.T) {
	var got map[string]json.RawMessage

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/wp-json/wp/v2/pages", r.URL.Path)
		user, pass, ok := r.BasicAuth()
		require.True(t, ok)
		require.Equal(t, "migrator", user)
		require.Equal(t, "xxxx yyyy", pass)

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(body, &got))

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id": 42, "link": "https://dest.example/news/hello"}`))
	}))

	ref, err := client.CreatePost(context.Background(), "pages", domain.Post{
		Title:   "Hello",
		Content: "<p>Hi</p>",
		Status:  "draft",
		Slug:    "hello",
	}, map[string][]int{"news_category": {7, 9}})
	require.NoError(t, err)
	require.Equal(t, 42, ref.ID)
	require.Equal(t, "https://dest.example/news/hello", ref.Link)

	require.JSONEq(t, `"Hello"`, string(got["title"]))
	require.JSONEq(t, `[7,9]`, string(got["news_category"]))
}

func TestCreatePostDefaultsToConfiguredCollection(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/wp-json/wp/v2/posts", r.URL.Path)
		_, _ = w.Write([]byte(`{"id": 1, "link": "x"}`))
	}))

	_, err := client.CreatePost(context.Background(), "", domain.Post{Title: "t"}, nil)
	require.NoError(t, err)
}

func TestUploadMediaSetsDispositionAndType(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/wp-json/wp/v2/media", r.URL.Path)
		require.Equal(t, "image/png", r.Header.Get("Content-Type"))
		require.Equal(t, `attachment; filename="logo.png"`, r.Header.Get("Content-Disposition"))

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id": 11, "source_url": "https://dest.example/wp-content/uploads/logo.png"}`))
	}))

	ref, err := client.UploadMedia(context.Background(), "logo.png", []byte{0x89, 0x50}, "image/png")
	require.NoError(t, err)
	require.Equal(t, 11, ref.ID)
	require.Equal(t, "https://dest.example/wp-content/uploads/logo.png", ref.SourceURL)
}

func TestEnsureTermFindsExactMatch(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/wp-json/wp/v2/taxonomies":
			_, _ = w.Write([]byte(`{"category": {"rest_base": "categories"}}`))
		case "/wp-json/wp/v2/categories":
			require.Equal(t, "Sport", r.URL.Query().Get("search"))
			// search matches by substring; only the exact name counts
			_, _ = w.Write([]byte(`[{"id": 3, "name": "Sportello"}, {"id": 5, "name": "Sport"}]`))
		default:
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
	}))

	id, err := client.EnsureTerm(context.Background(), "category", "Sport")
	require.NoError(t, err)
	require.Equal(t, 5, id)
}

func TestEnsureTermCreatesWhenMissing(t *testing.T) {
	var created map[string]string

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/wp-json/wp/v2/taxonomies":
			_, _ = w.Write([]byte(`{"news_tag": {"rest_base": "news_tags"}}`))
		case r.URL.Path == "/wp-json/wp/v2/news_tags" && r.Method == http.MethodGet:
			_, _ = w.Write([]byte(`[]`))
		case r.URL.Path == "/wp-json/wp/v2/news_tags" && r.Method == http.MethodPost:
			body, err := io.ReadAll(r.Body)
			require.NoError(t, err)
			require.NoError(t, json.Unmarshal(body, &created))
			w.WriteHeader(http.StatusCreated)
			_, _ = w.Write([]byte(`{"id": 77, "name": "Breaking"}`))
		default:
			t.Fatalf("unexpected %s %s", r.Method, r.URL.Path)
		}
	}))

	id, err := client.EnsureTerm(context.Background(), "news_tag", "Breaking")
	require.NoError(t, err)
	require.Equal(t, 77, id)
	require.Equal(t, "Breaking", created["name"])
}

func TestEnsureUserMatchesEmailCaseInsensitively(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/wp-json/wp/v2/users", r.URL.Path)
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "edit", r.URL.Query().Get("context"))
		_, _ = w.Write([]byte(`[{"id": 8, "email": "Mario.Rossi@Example.COM"}]`))
	}))

	id, err := client.EnsureUser(context.Background(), "mrossi", "mario.rossi@example.com", "Mario Rossi", "")
	require.NoError(t, err)
	require.Equal(t, 8, id)
}

func TestEnsureUserCreatesWithRole(t *testing.T) {
	var created map[string]any

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			_, _ = w.Write([]byte(`[]`))
		case http.MethodPost:
			body, err := io.ReadAll(r.Body)
			require.NoError(t, err)
			require.NoError(t, json.Unmarshal(body, &created))
			w.WriteHeader(http.StatusCreated)
			_, _ = w.Write([]byte(`{"id": 21}`))
		}
	}))

	id, err := client.EnsureUser(context.Background(), "mrossi", "mario.rossi@example.com", "Mario Rossi", "editor")
	require.NoError(t, err)
	require.Equal(t, 21, id)
	require.Equal(t, "mrossi", created["username"])
	require.Equal(t, []any{"editor"}, created["roles"])
	require.NotEmpty(t, created["password"])
}

func TestExistsBySlug(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("slug") == "taken" {
			_, _ = w.Write([]byte(`[{"id": 1}]`))
			return
		}
		_, _ = w.Write([]byte(`[]`))
	}))

	exists, err := client.ExistsBySlug(context.Background(), "posts", "taken")
	require.NoError(t, err)
	require.True(t, exists)

	exists, err = client.ExistsBySlug(context.Background(), "posts", "free")
	require.NoError(t, err)
	require.False(t, exists)
}

func TestDoRetriesTransientFailures(t *testing.T) {
	var calls int

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte(`[]`))
	}))

	exists, err := client.ExistsBySlug(context.Background(), "posts", "any")
	require.NoError(t, err)
	require.False(t, exists)
	require.Equal(t, 3, calls)
}

func TestDoGivesUpAfterMaxAttempts(t *testing.T) {
	var calls int

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusServiceUnavailable)
	}))

	_, err := client.CreatePost(context.Background(), "", domain.Post{Title: "t"}, nil)
	require.Error(t, err)
	require.Contains(t, err.Error(), "after 3 attempts")
	require.Equal(t, 3, calls)
}

func TestDoDoesNotRetryClientErrors(t *testing.T) {
	var calls int

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"code": "rest_invalid_param"}`))
	}))

	_, err := client.CreatePost(context.Background(), "", domain.Post{Title: "t"}, nil)
	require.Error(t, err)
	require.Contains(t, err.Error(), "unexpected status 400")
	require.Equal(t, 1, calls)
}
