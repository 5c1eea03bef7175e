//go:build unit || e2e

package httptest

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

// Request describes one call against a router. A nil Body sends no
// Content-Type; Token becomes a bearer Authorization header.
type Request struct {
	Method  string
	Path    string
	Body    []byte
	Token   string
	Headers map[string]string
	Cookies []*http.Cookie
}

// Do serves r on h and returns the recorded response.
func Do(h http.Handler, r Request) *httptest.ResponseRecorder {
	req := httptest.NewRequest(r.Method, r.Path, bytes.NewReader(r.Body))
	if len(r.Body) > 0 {
		req.Header.Set("Content-Type", "application/json")
	}
	if r.Token != "" {
		req.Header.Set("Authorization", "Bearer "+r.Token)
	}
	for k, v := range r.Headers {
		req.Header.Set(k, v)
	}
	for _, c := range r.Cookies {
		req.AddCookie(c)
	}

	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

// JSON encodes v, or returns nil for a nil v.
func JSON(t *testing.T, v any) []byte {
	t.Helper()
	if v == nil {
		return nil
	}
	b, err := json.Marshal(v)
	require.NoError(t, err, "encode request body")
	return b
}

func PerformRequest(t *testing.T, h http.Handler, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()
	return Do(h, Request{Method: method, Path: path, Body: JSON(t, body), Token: token})
}

func PerformRequestWithCookies(t *testing.T, h http.Handler, method, path string, body any, cookies []*http.Cookie, token string) *httptest.ResponseRecorder {
	t.Helper()
	return Do(h, Request{Method: method, Path: path, Body: JSON(t, body), Token: token, Cookies: cookies})
}

// PerformRequestWithHeaders is for Idempotency-Key, X-Request-ID and Origin.
func PerformRequestWithHeaders(t *testing.T, h http.Handler, method, path string, body any, headers map[string]string, token string) *httptest.ResponseRecorder {
	t.Helper()
	return Do(h, Request{Method: method, Path: path, Body: JSON(t, body), Token: token, Headers: headers})
}

// PerformRawRequest sends raw unchanged; signed webhooks depend on the exact bytes.
func PerformRawRequest(t *testing.T, h http.Handler, method, path string, raw []byte, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	return Do(h, Request{Method: method, Path: path, Body: raw, Headers: headers})
}
