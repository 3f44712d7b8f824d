package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"sync"
	"testing"

	"webservice/internal/logger"

	"github.com/stretchr/testify/assert"
)

func TestRoutes(t *testing.T) {
	buf := new(bytes.Buffer)
	app := &application{
		config: config{
			serviceName:    "web-service",
			serviceVersion: "unknown",
		},
		logger: logger.New(buf),
	}
	srv := app.routes()

	t.Run("Defined routes respond 200", func(t *testing.T) {
		paths := []string{"/", "/health", "/version", "/api/info"}
		for _, path := range paths {
			req := httptest.NewRequest(http.MethodGet, path, nil)
			w := httptest.NewRecorder()

			srv.ServeHTTP(w, req)

			assert.Equal(t, http.StatusOK, w.Code, path)
			assert.Contains(t, w.Header().Get("Content-Type"), "application/json", path)

			var resp envelope
			err := json.NewDecoder(w.Body).Decode(&resp)
			assert.NoError(t, err, path)
			assert.Equal(t, "web-service", resp["service"], path)
			assert.Equal(t, "unknown", resp["version"], path)
		}
	})

	t.Run("Undefined path", func(t *testing.T) {
		buf.Reset()
		req := httptest.NewRequest(http.MethodGet, "/nonexistent-path", nil)
		w := httptest.NewRecorder()

		srv.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

		var resp envelope
		err := json.NewDecoder(w.Body).Decode(&resp)
		assert.NoError(t, err)
		assert.Equal(t, "Not found", resp["error"])
		assert.Equal(t, "/nonexistent-path", resp["path"])
		assert.Len(t, resp, 2)

		assert.Contains(t, buf.String(), "404 Not Found: /nonexistent-path")
	})

	t.Run("Method not allowed", func(t *testing.T) {
		for _, path := range []string{"/", "/health"} {
			req := httptest.NewRequest(http.MethodPost, path, nil)
			w := httptest.NewRecorder()

			srv.ServeHTTP(w, req)

			assert.Equal(t, http.StatusMethodNotAllowed, w.Code, path)

			var resp envelope
			err := json.NewDecoder(w.Body).Decode(&resp)
			assert.NoError(t, err, path)
			assert.Equal(t, "the POST method is not supported for this resource", resp["error"], path)
		}
	})

	t.Run("Swagger document", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/docs/doc.json", nil)
		w := httptest.NewRecorder()

		srv.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"swagger": "2.0"`)
	})

	t.Run("Concurrent health checks", func(t *testing.T) {
		buf.Reset()

		var wg sync.WaitGroup
		for i := 0; i < 50; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()

				req := httptest.NewRequest(http.MethodGet, "/health", nil)
				w := httptest.NewRecorder()

				srv.ServeHTTP(w, req)

				assert.Equal(t, http.StatusOK, w.Code)

				var resp envelope
				err := json.NewDecoder(w.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, "healthy", resp["status"])
			}()
		}
		wg.Wait()

		linePattern := regexp.MustCompile(`^\[\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}\.\d{6}Z\] Incoming request: GET /health from 192\.0\.2\.1 - User-Agent: unknown$`)
		lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
		assert.Len(t, lines, 50)
		for _, line := range lines {
			assert.Regexp(t, linePattern, line)
		}
	})
}

func TestConfiguredIdentity(t *testing.T) {
	app := &application{
		config: config{
			serviceName:    "demo-svc",
			serviceVersion: "2.3.1",
		},
		logger: logger.New(new(bytes.Buffer)),
	}
	srv := app.routes()

	for _, path := range []string{"/", "/health", "/version", "/api/info"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		w := httptest.NewRecorder()

		srv.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code, path)

		var resp envelope
		err := json.NewDecoder(w.Body).Decode(&resp)
		assert.NoError(t, err, path)
		assert.Equal(t, "demo-svc", resp["service"], path)
		assert.Equal(t, "2.3.1", resp["version"], path)
	}
}
