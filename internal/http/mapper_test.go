package httpx

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/target/ticketdesk-api/internal/errors"
)

func TestResponseMapper_PassThroughIsByteIdentical(t *testing.T) {
	body := []byte("\x00binary\xffpayload {\"not\":\"json\"")
	handler := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/octet-stream")
		w.Header().Set("X-Custom", "kept")
		w.WriteHeader(http.StatusAccepted)
		_, _ = w.Write(body[:5])
		_, _ = w.Write(body[5:])
	})

	direct := httptest.NewRecorder()
	handler.ServeHTTP(direct, httptest.NewRequest(http.MethodGet, "/", nil))

	mapped := httptest.NewRecorder()
	ResponseMapper(discardLogger())(handler).ServeHTTP(mapped, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, direct.Code, mapped.Code)
	assert.Equal(t, direct.Body.Bytes(), mapped.Body.Bytes())
	assert.Equal(t, direct.Header(), mapped.Header())
}

func TestResponseMapper_ImplicitOK(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("hi"))
	})
	rec := httptest.NewRecorder()
	ResponseMapper(discardLogger())(handler).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "hi", rec.Body.String())
}

func TestResponseMapper_RewritesMarkedResponse(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, &http.Cookie{Name: "keep", Value: "me"})
		w.Header().Set("Content-Length", "12")
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("secret stack"))
		WriteError(w, r, apperrors.ResourceNotFound(3))
	})

	rec := httptest.NewRecorder()
	ResponseMapper(discardLogger())(handler).ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/tickets/3", nil))

	requireEnvelope(t, rec, http.StatusBadRequest, TagInvalidParams)
	assert.NotContains(t, rec.Body.String(), "secret")
	assert.Empty(t, rec.Header().Get("Content-Length"))
	assert.NotNil(t, findCookie(rec.Result(), "keep"))
}

func TestResponseMapper_EnvelopeShape(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		WriteError(w, r, apperrors.LoginFail())
	})

	var logs bytes.Buffer
	rec := httptest.NewRecorder()
	ResponseMapper(bufferLogger(&logs))(handler).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/login", nil))

	reqID := requireEnvelope(t, rec, http.StatusForbidden, TagLoginFail)
	assert.JSONEq(t, `{"error":{"type":"LOGIN_FAIL","req_uuid":"`+reqID+`"}}`, rec.Body.String())

	lines := requestLines(t, &logs)
	require.Len(t, lines, 1)
	assert.Equal(t, reqID, lines[0]["req_uuid"])
}

func TestResponseMapper_PlainErrorFailsClosed(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		WriteError(w, r, errors.New("pq: connection refused at 10.0.0.3"))
	})
	rec := httptest.NewRecorder()
	ResponseMapper(discardLogger())(handler).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	requireEnvelope(t, rec, http.StatusInternalServerError, TagServiceError)
	assert.NotContains(t, rec.Body.String(), "10.0.0.3")
}

func TestResponseMapper_LogsOneLinePerRequest(t *testing.T) {
	var logs bytes.Buffer
	logger := bufferLogger(&logs)

	h := Chain(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusCreated)
	}),
		ResponseMapper(logger),
		CtxResolver(CtxResolverOptions{Logger: logger}),
	)

	h.ServeHTTP(httptest.NewRecorder(), withAuthCookie(httptest.NewRequest(http.MethodPost, "/x?y=1", nil), "user-11.e.s"))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/z", nil))

	lines := requestLines(t, &logs)
	require.Len(t, lines, 2)

	first := lines[0]
	assert.Equal(t, "POST", first["method"])
	assert.Equal(t, "/x?y=1", first["uri"])
	assert.InDelta(t, 201, first["status"], 0)
	assert.InDelta(t, 11, first["user_id"], 0)
	assert.Contains(t, first, "duration")
	assert.NotContains(t, first, "error")

	second := lines[1]
	assert.Equal(t, string(apperrors.ErrCodeNoToken), second["auth_error"])
	assert.NotContains(t, second, "user_id")
	assert.NotEqual(t, first["req_uuid"], second["req_uuid"])
}

// panicHandler is a slog.Handler that panics on every record.
type panicHandler struct{}

func (panicHandler) Enabled(context.Context, slog.Level) bool  { return true }
func (panicHandler) Handle(context.Context, slog.Record) error { panic("log sink exploded") }
func (h panicHandler) WithAttrs([]slog.Attr) slog.Handler      { return h }
func (h panicHandler) WithGroup(string) slog.Handler           { return h }

func TestResponseMapper_LoggingNeverFailsRequest(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})

	rec := httptest.NewRecorder()
	assert.NotPanics(t, func() {
		ResponseMapper(slog.New(panicHandler{}))(handler).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}

func TestWriteError_WithoutMapper(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteError(rec, httptest.NewRequest(http.MethodGet, "/", nil), apperrors.NoToken())

	requireEnvelope(t, rec, http.StatusForbidden, TagNoAuth)
}
