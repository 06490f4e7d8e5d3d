package httpx

import (
	"bytes"
	"log/slog"
	"net/http"
	"time"

	apperrors "github.com/target/ticketdesk-api/internal/errors"
)

// bufferedWriter holds the status and body until the mapper decides whether
// to pass them through or replace them. Headers go straight to the
// underlying writer's map.
type bufferedWriter struct {
	w           http.ResponseWriter
	status      int
	wroteHeader bool
	buf         bytes.Buffer
}

func (b *bufferedWriter) Header() http.Header { return b.w.Header() }

func (b *bufferedWriter) WriteHeader(status int) {
	if b.wroteHeader {
		return
	}
	b.status = status
	b.wroteHeader = true
}

func (b *bufferedWriter) Write(p []byte) (int, error) {
	if !b.wroteHeader {
		b.WriteHeader(http.StatusOK)
	}
	return b.buf.Write(p)
}

// Flush is a no-op; the whole response is released once the handler returns.
func (b *bufferedWriter) Flush() {}

// Headers that describe the original body and must not survive a rewrite.
var bodyHeaders = []string{ //nolint:gochecknoglobals // read-only list
	"Content-Length",
	"Content-Encoding",
	"Content-Disposition",
	"Content-Range",
	"Etag",
	"Last-Modified",
}

// ResponseMapper is the outermost stage of the pipeline. It creates the
// request state with a fresh correlation id, renders an attached error marker
// as the public envelope, and logs one line per request.
func ResponseMapper(logger *slog.Logger) func(http.Handler) http.Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			st := newRequestState()
			st.mapped = true

			bw := &bufferedWriter{w: w, status: http.StatusOK}
			next.ServeHTTP(bw, r.WithContext(withRequestState(r.Context(), st)))

			status := bw.status
			marker := st.takeMarker()
			if marker != nil {
				ce := ClientErrorFor(marker)
				for _, h := range bodyHeaders {
					w.Header().Del(h)
				}
				writeEnvelope(w, ce, st.RequestID())
				status = ce.Status
			} else {
				w.WriteHeader(bw.status)
				_, _ = bw.buf.WriteTo(w)
			}

			logRequest(logger, r, requestLog{
				state:    st,
				marker:   marker,
				status:   status,
				duration: time.Since(start),
			})
		})
	}
}

type requestLog struct {
	state    *RequestState
	marker   *apperrors.AppError
	status   int
	duration time.Duration
}

// logRequest emits the request line. A failure while logging is swallowed.
func logRequest(logger *slog.Logger, r *http.Request, rl requestLog) {
	defer func() { _ = recover() }()

	attrs := []slog.Attr{
		slog.String("req_uuid", rl.state.RequestID()),
		slog.String("method", r.Method),
		slog.String("uri", r.URL.RequestURI()),
		slog.Int("status", rl.status),
		slog.Duration("duration", rl.duration),
	}
	if outcome, ok := rl.state.Outcome(); ok {
		if c, err := outcome.Ctx(); err == nil {
			attrs = append(attrs, slog.Uint64("user_id", c.UserID()))
		} else {
			attrs = append(attrs, slog.String("auth_error", string(outcome.Err().Code)))
		}
	}

	level := slog.LevelInfo
	if rl.status >= http.StatusInternalServerError {
		level = slog.LevelError
	}
	if rl.marker != nil {
		attrs = append(attrs,
			slog.String("error", string(rl.marker.Code)),
			slog.String("error_detail", rl.marker.Error()))
		if rl.marker.Code == apperrors.ErrCodeCtxNotInRequestState {
			level = slog.LevelError
		}
	}

	logger.LogAttrs(r.Context(), level, "request", attrs...)
}
