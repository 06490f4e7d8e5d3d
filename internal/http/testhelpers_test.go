package httpx

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	domainauth "github.com/target/ticketdesk-api/internal/domain/auth"
)

// bufferLogger returns a logger writing JSON lines into buf.
func bufferLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
}

// logLines decodes every JSON log line in buf.
func logLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var out []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var m map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &m))
		out = append(out, m)
	}
	return out
}

// requestLines returns only the per-request lines emitted by ResponseMapper.
func requestLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var out []map[string]any
	for _, m := range logLines(t, buf) {
		if m["msg"] == "request" {
			out = append(out, m)
		}
	}
	return out
}

// requireEnvelope asserts rec holds the public error envelope with tag.
func requireEnvelope(t *testing.T, rec *httptest.ResponseRecorder, status int, tag string) string {
	t.Helper()
	require.Equal(t, status, rec.Code, "body: %s", rec.Body.String())
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var env struct {
		Error struct {
			Type    string `json:"type"`
			ReqUUID string `json:"req_uuid"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	require.Equal(t, tag, env.Error.Type)
	_, err := uuid.Parse(env.Error.ReqUUID)
	require.NoError(t, err)
	return env.Error.ReqUUID
}

func withAuthCookie(r *http.Request, value string) *http.Request {
	r.AddCookie(&http.Cookie{Name: domainauth.CookieName, Value: value})
	return r
}

func findCookie(resp *http.Response, name string) *http.Cookie {
	for _, c := range resp.Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}
