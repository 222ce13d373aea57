package middleware_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/chris/intent-reconciliation/pkg/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStructuredLogger(t *testing.T) {
	cases := []struct {
		name  string
		code  int
		level string
	}{
		{"Success", http.StatusOK, "INFO"},
		{"Rejected", http.StatusUnprocessableEntity, "WARN"},
		{"Server Error", http.StatusServiceUnavailable, "ERROR"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := slog.New(slog.NewJSONHandler(&buf, nil))
			handler := middleware.NewStructuredLogger(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.code)
			}))

			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/cash-collect/abc", nil))

			var line map[string]any
			require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
			assert.Equal(t, tc.level, line["level"])
			response := line["response"].(map[string]any)
			assert.Equal(t, float64(tc.code), response["status"])
			request := line["request"].(map[string]any)
			assert.Equal(t, "/cash-collect/abc", request["path"])
		})
	}
}
