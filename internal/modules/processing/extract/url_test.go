package extract

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func newTestService() *Service {
	return NewService(zap.NewNop())
}

func serveHTML(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestFromURLExtractsTitle(t *testing.T) {
	srv := serveHTML(t, http.StatusOK, `<html><head><title> Hello World </title></head><body></body></html>`)

	result := newTestService().FromURL(context.Background(), srv.URL)

	assert.Equal(t, "Hello World", result.Title)
}

func TestFromURLFallsBackToOpenGraphTitle(t *testing.T) {
	srv := serveHTML(t, http.StatusOK,
		`<html><head><meta property="og:title" content="OG Title"/></head><body></body></html>`)

	result := newTestService().FromURL(context.Background(), srv.URL)

	assert.Equal(t, "OG Title", result.Title)
}

func TestFromURLPlaceholderWhenNoTitle(t *testing.T) {
	srv := serveHTML(t, http.StatusOK, `<html><body><p>no title anywhere</p></body></html>`)

	result := newTestService().FromURL(context.Background(), srv.URL)

	assert.Equal(t, PlaceholderTitle, result.Title)
}

func TestFromURLDegradesOnNon200(t *testing.T) {
	srv := serveHTML(t, http.StatusInternalServerError, `boom`)

	result := newTestService().FromURL(context.Background(), srv.URL)

	assert.Equal(t, PlaceholderTitle, result.Title)
	assert.Empty(t, result.Text)
}

func TestFromURLDegradesOnTransportError(t *testing.T) {
	srv := serveHTML(t, http.StatusOK, ``)
	srv.Close()

	result := newTestService().FromURL(context.Background(), srv.URL)

	assert.Equal(t, PlaceholderTitle, result.Title)
	assert.Empty(t, result.Text)
}

func TestFromURLFiltersShortFragments(t *testing.T) {
	long := strings.Repeat("가", 40)
	srv := serveHTML(t, http.StatusOK,
		`<html><body><p>menu</p><p>`+long+`</p><div>home</div></body></html>`)

	result := newTestService().FromURL(context.Background(), srv.URL)

	assert.Contains(t, result.Text, long)
	assert.NotContains(t, result.Text, "menu")
	assert.NotContains(t, result.Text, "home")
}

func TestFromURLJoinsFragmentsWithSpace(t *testing.T) {
	first := strings.Repeat("a", 40)
	second := strings.Repeat("b", 40)
	srv := serveHTML(t, http.StatusOK,
		`<html><body><p>`+first+`</p><p>`+second+`</p></body></html>`)

	result := newTestService().FromURL(context.Background(), srv.URL)

	assert.Equal(t, first+" "+second, result.Text)
}

func TestFromURLTruncatesLongContent(t *testing.T) {
	srv := serveHTML(t, http.StatusOK,
		`<html><body><p>`+strings.Repeat("x", MaxContentLength+5000)+`</p></body></html>`)

	result := newTestService().FromURL(context.Background(), srv.URL)

	assert.Len(t, []rune(result.Text), MaxContentLength)
}

func TestFromURLSendsBrowserUserAgent(t *testing.T) {
	var gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(`<html><head><title>ok</title></head></html>`))
	}))
	t.Cleanup(srv.Close)

	newTestService().FromURL(context.Background(), srv.URL)

	assert.Equal(t, userAgent, gotUA)
	assert.Contains(t, gotUA, "Mozilla/5.0")
}
