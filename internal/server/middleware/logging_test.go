package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogging(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		wantLevel  string
	}{
		{name: "2xx logged at info", statusCode: http.StatusOK, wantLevel: "level=INFO"},
		{name: "4xx logged at warn", statusCode: http.StatusNotFound, wantLevel: "level=WARN"},
		{name: "5xx logged at error", statusCode: http.StatusInternalServerError, wantLevel: "level=ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := slog.New(slog.NewTextHandler(&buf, nil))

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.statusCode)
				_, _ = w.Write([]byte("body"))
			})

			req := httptest.NewRequest(http.MethodGet, "/tasks/", nil)
			w := httptest.NewRecorder()
			Logging(logger)(next).ServeHTTP(w, req)

			assert.Equal(t, tt.statusCode, w.Code)

			logged := buf.String()
			assert.Contains(t, logged, "HTTP request")
			assert.Contains(t, logged, tt.wantLevel)
			assert.Contains(t, logged, "method=GET")
			assert.Contains(t, logged, "path=/tasks/")
			assert.Contains(t, logged, "bytes_written=4")
		})
	}
}
