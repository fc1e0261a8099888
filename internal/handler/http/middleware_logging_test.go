package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

// makeLoggedRequest кладёт в контекст логгер, пишущий в buf, как это делает withTraceID
func makeLoggedRequest(method, path string, buf *bytes.Buffer) *http.Request {
	req := httptest.NewRequest(method, path, nil)
	l := zerolog.New(buf).With().Timestamp().Logger()
	return req.WithContext(l.WithContext(req.Context()))
}

func TestWithLogging_TableTest(t *testing.T) {
	tests := []struct {
		name         string
		method       string
		path         string
		status       int
		response     string
		wantContains []string
	}{
		{
			name:     "GET 200",
			method:   http.MethodGet,
			path:     "/api/fields?category=avatar",
			status:   http.StatusOK,
			response: "[]",
			wantContains: []string{
				`"level":"info"`,
				`"method":"GET"`,
				`"uri":"/api/fields?category=avatar"`,
				`"status":200`,
				`"size":2`,
				`"duration":`,
			},
		},
		{
			name:   "DELETE 204",
			method: http.MethodDelete,
			path:   "/api/chat/sessions/s1",
			status: http.StatusNoContent,
			wantContains: []string{
				`"status":204`,
				`"size":0`,
			},
		},
		{
			name:     "502 is logged as error",
			method:   http.MethodPost,
			path:     "/api/chat/sessions/s1/messages",
			status:   http.StatusBadGateway,
			response: "assistant is unavailable",
			wantContains: []string{
				`"level":"error"`,
				`"status":502`,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			h, _ := newTestHandler(t, "")

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				if tt.response != "" {
					w.Write([]byte(tt.response))
				}
			})

			rec := httptest.NewRecorder()
			h.withLogging(next).ServeHTTP(rec, makeLoggedRequest(tt.method, tt.path, &buf))

			assert.Equal(t, tt.status, rec.Code)
			for _, want := range tt.wantContains {
				assert.Contains(t, buf.String(), want)
			}
		})
	}
}

func TestWithLogging_NoStatusWritten(t *testing.T) {
	var buf bytes.Buffer
	h, _ := newTestHandler(t, "")

	next := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {})

	h.withLogging(next).ServeHTTP(httptest.NewRecorder(), makeLoggedRequest(http.MethodGet, "/api/version", &buf))

	// net/http отвечает 200, если хендлер ничего не записал
	assert.Contains(t, buf.String(), `"status":200`)
}

func TestWithLogging_PanicNotSuppressed(t *testing.T) {
	h, _ := newTestHandler(t, "")
	next := http.HandlerFunc(func(http.ResponseWriter, *http.Request) { panic("boom") })

	assert.Panics(t, func() {
		h.withLogging(next).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	})
}

// ── responseWriter ───────────────────────────────────────────────────────────

func TestResponseWriter_WriteHeaderOnce(t *testing.T) {
	rec := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rec}

	w.WriteHeader(http.StatusCreated)
	w.WriteHeader(http.StatusInternalServerError)

	assert.Equal(t, http.StatusCreated, w.status)
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestResponseWriter_SizeAccumulates(t *testing.T) {
	rec := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rec}

	w.Write([]byte("abc"))
	w.Write([]byte("de"))

	assert.Equal(t, http.StatusOK, w.status, "Write без WriteHeader означает 200")
	assert.Equal(t, 5, w.size)
	assert.Equal(t, "abcde", rec.Body.String())
	assert.Same(t, rec, w.Unwrap())
}
