package photo

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/orgball2608/event-poster-api/pkg/config"
	apperrors "github.com/orgball2608/event-poster-api/pkg/errors"
	"github.com/orgball2608/event-poster-api/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newResolver(t *testing.T, token string) *Resolver {
	t.Helper()
	cfg := &config.Config{}
	cfg.Telegram.Token = token
	return New(Opts{Config: cfg, Logger: logger.New(logger.Opts{})})
}

func TestResolveURLLocal(t *testing.T) {
	r := newResolver(t, "token")

	tests := []struct {
		ref  string
		want string
	}{
		{ref: "/posters/poster_123.jpg", want: "/posters/poster_123.jpg"},
		{ref: "posters/poster_123.jpg", want: "/posters/poster_123.jpg"},
		{ref: "/uploads/stories/a.png", want: "/uploads/stories/a.png"},
		{ref: "uploads/stories/a.png", want: "/uploads/stories/a.png"},
	}

	for _, tt := range tests {
		t.Run(tt.ref, func(t *testing.T) {
			assert.Equal(t, tt.want, r.ResolveURL(tt.ref))
			assert.True(t, strings.HasPrefix(r.ResolveURL(tt.ref), "/"))
			assert.False(t, strings.HasPrefix(r.ResolveURL(tt.ref), "//"))
		})
	}
}

func TestResolveURLConfiguredPrefixes(t *testing.T) {
	cfg := &config.Config{}
	cfg.Photo.LocalPrefixes = "media/, /media/"
	r := New(Opts{Config: cfg, Logger: logger.New(logger.Opts{})})

	assert.Equal(t, "/media/a.jpg", r.ResolveURL("media/a.jpg"))
	assert.Equal(t, "/media/a.jpg", r.ResolveURL("/media/a.jpg"))
	// The built-in defaults no longer apply once prefixes are configured.
	assert.Equal(t, "/photo/posters/a.jpg", r.ResolveURL("posters/a.jpg"))
}

func TestResolveURLForeign(t *testing.T) {
	r := newResolver(t, "token")

	assert.Equal(t, "/photo/AgACAgIAAxkBAAIB", r.ResolveURL("AgACAgIAAxkBAAIB"))
	assert.False(t, r.IsLocal("AgACAgIAAxkBAAIB"))
}

func TestFetchWithoutToken(t *testing.T) {
	r := newResolver(t, "")

	_, err := r.Fetch(context.Background(), "some-file-id")
	require.Error(t, err)
	assert.True(t, apperrors.IsServiceUnavailable(err))
}

// fakeTelegram serves just enough of the Bot API for the resolver:
// getMe for client construction, getFile for path resolution and the
// file endpoint for the download itself.
type fakeTelegram struct {
	token         string
	resolveCalls  int
	downloadCalls int
	fileMissing   bool
	payload       []byte
}

func (f *fakeTelegram) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/bot"+f.token+"/getMe", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"ok":true,"result":{"id":1,"is_bot":true,"first_name":"test","username":"test_bot"}}`)
	})
	mux.HandleFunc("/bot"+f.token+"/getFile", func(w http.ResponseWriter, r *http.Request) {
		f.resolveCalls++
		if f.fileMissing {
			w.WriteHeader(http.StatusBadRequest)
			fmt.Fprint(w, `{"ok":false,"error_code":400,"description":"Bad Request: invalid file_id"}`)
			return
		}
		fmt.Fprint(w, `{"ok":true,"result":{"file_id":"abc","file_path":"photos/file_1.jpg"}}`)
	})
	mux.HandleFunc("/file/bot"+f.token+"/photos/file_1.jpg", func(w http.ResponseWriter, r *http.Request) {
		f.downloadCalls++
		_, _ = w.Write(f.payload)
	})
	return mux
}

func (f *fakeTelegram) install(r *Resolver, baseURL string) {
	r.apiEndpoint = baseURL + "/bot%s/%s"
	r.fileEndpoint = baseURL + "/file/bot%s/%s"
}

func TestFetchSuccess(t *testing.T) {
	fake := &fakeTelegram{token: "token", payload: []byte("image-bytes")}
	srv := httptest.NewServer(fake.handler())
	defer srv.Close()

	r := newResolver(t, "token")
	fake.install(r, srv.URL)

	data, err := r.Fetch(context.Background(), "abc")
	require.NoError(t, err)
	assert.Equal(t, []byte("image-bytes"), data)
	assert.Equal(t, 1, fake.resolveCalls)
	assert.Equal(t, 1, fake.downloadCalls)
}

func TestFetchFileNotFound(t *testing.T) {
	fake := &fakeTelegram{token: "token", fileMissing: true}
	srv := httptest.NewServer(fake.handler())
	defer srv.Close()

	r := newResolver(t, "token")
	fake.install(r, srv.URL)

	_, err := r.Fetch(context.Background(), "missing")
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
	assert.Equal(t, 1, fake.resolveCalls)
	assert.Equal(t, 0, fake.downloadCalls)
}

func TestFetchReusesBotClient(t *testing.T) {
	fake := &fakeTelegram{token: "token", payload: []byte("x")}
	srv := httptest.NewServer(fake.handler())
	defer srv.Close()

	r := newResolver(t, "token")
	fake.install(r, srv.URL)

	_, err := r.Fetch(context.Background(), "abc")
	require.NoError(t, err)
	_, err = r.Fetch(context.Background(), "abc")
	require.NoError(t, err)

	// One resolve and one download per request, nothing more.
	assert.Equal(t, 2, fake.resolveCalls)
	assert.Equal(t, 2, fake.downloadCalls)
}
