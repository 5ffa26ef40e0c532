package seolens

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/seolens/seolens/config"
)

func testConf(proxies ...string) *config.Config {
	conf := config.Default()
	conf.IgnoreRobots = true
	conf.TimeoutSeconds = 5
	conf.Proxies = proxies
	return conf
}

func TestFetchDirect(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, config.Default().UserAgent, r.Header.Get("User-Agent"))
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		fmt.Fprint(w, testDocHTML)
	}))
	defer server.Close()

	result, errFetch := NewFetcher(testConf()).Fetch(server.URL + "/page")
	assert.NoError(t, errFetch)
	assert.Equal(t, http.StatusOK, result.Code)
	assert.Equal(t, "direct", result.Strategy)
	assert.Equal(t, server.URL+"/page", result.FinalURL)
	assert.Contains(t, result.Body, "<title>Hello Test</title>")
}

func TestFetchDecodesCharset(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=iso-8859-1")
		// "Grüezi" in latin-1
		w.Write([]byte("<title>Gr\xfcezi</title>"))
	}))
	defer server.Close()

	result, errFetch := NewFetcher(testConf()).Fetch(server.URL)
	assert.NoError(t, errFetch)
	assert.Contains(t, result.Body, "Grüezi")
}

func TestFetchErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer server.Close()

	_, errFetch := NewFetcher(testConf()).Fetch(server.URL + "/gone")
	assert.Error(t, errFetch)
	retrievalErr, ok := errFetch.(*RetrievalError)
	assert.True(t, ok)
	assert.Equal(t, server.URL+"/gone", retrievalErr.TargetURL)
	assert.Len(t, retrievalErr.Attempts, 1)
	assert.Contains(t, retrievalErr.Error(), "direct")
}

func TestFetchNonHTML(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"nope":true}`)
	}))
	defer server.Close()

	_, errFetch := NewFetcher(testConf()).Fetch(server.URL)
	assert.Error(t, errFetch)
	assert.Contains(t, errFetch.Error(), "unexpected content type")
}

func TestFetchProxyFallback(t *testing.T) {
	direct := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "blocked", http.StatusForbidden)
	}))
	defer direct.Close()
	proxy := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, direct.URL, r.URL.Query().Get("url"))
		w.Header().Set("Content-Type", "text/html")
		fmt.Fprint(w, "<title>via proxy</title>")
	}))
	defer proxy.Close()

	proxyPrefix := proxy.URL + "/fetch?url="
	result, errFetch := NewFetcher(testConf(proxyPrefix)).Fetch(direct.URL)
	assert.NoError(t, errFetch)
	assert.Equal(t, proxyPrefix, result.Strategy)
	assert.Contains(t, result.Body, "via proxy")
}

func TestFetchAllStrategiesFail(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusBadGateway)
	}))
	defer server.Close()

	proxyPrefix := server.URL + "/fetch?url="
	_, errFetch := NewFetcher(testConf(proxyPrefix)).Fetch(server.URL)
	retrievalErr, ok := errFetch.(*RetrievalError)
	assert.True(t, ok)
	assert.Len(t, retrievalErr.Attempts, 2)
}

func TestFetchRobotsDisallowed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/robots.txt" {
			fmt.Fprint(w, "User-agent: *\nDisallow: /\n")
			return
		}
		w.Header().Set("Content-Type", "text/html")
		fmt.Fprint(w, testDocHTML)
	}))
	defer server.Close()

	conf := testConf()
	conf.IgnoreRobots = false
	_, errFetch := NewFetcher(conf).Fetch(server.URL + "/page")
	assert.Error(t, errFetch)
	assert.Contains(t, errFetch.Error(), "robots.txt disallows")

	conf.IgnoreRobots = true
	_, errFetch = NewFetcher(conf).Fetch(server.URL + "/page")
	assert.NoError(t, errFetch)
}
