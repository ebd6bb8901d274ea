package probe_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"premium_api/pkg/probe"
)

func TestServer(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		name          string
		listenAddress string
		endpoint      string
		statusCode    int
		options       probe.Options
		body          []byte
	}{
		{
			name:          "Health handler",
			listenAddress: ":10001",
			endpoint:      "http://:10001/healthz",
			statusCode:    http.StatusOK,
			options:       probe.Options{Name: "app-1", Version: "v0.0.1", ModelVersion: "1.0.0"},
			body:          []byte(`{"name":"app-1","version":"v0.0.1","model_version":"1.0.0"}`),
		},
		{
			name:          "Ready handler",
			listenAddress: ":10002",
			endpoint:      "http://:10002/ready",
			statusCode:    http.StatusOK,
			options:       probe.Options{Name: "app-2", Version: "v0.0.2"},
			body:          []byte(`{"name":"app-2","version":"v0.0.2"}`),
		},
		{
			name:          "Invalid endpoint",
			listenAddress: ":10003",
			endpoint:      "http://:10003/invalid",
			statusCode:    http.StatusNotFound,
			body:          []byte("404 page not found\n"),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			probeServer := probe.NewServer(tc.listenAddress, tc.options, nil)

			g, ctx := errgroup.WithContext(ctx)

			g.Go(func() error {
				return probeServer.Run(ctx)
			})

			// Wait for server to start.
			time.Sleep(time.Second)

			req, err := http.NewRequestWithContext(ctx, http.MethodGet, tc.endpoint, http.NoBody)
			rq.NoError(err)

			resp, err := http.DefaultClient.Do(req)
			rq.NoError(err)

			defer resp.Body.Close()

			rq.Equal(tc.statusCode, resp.StatusCode)

			bodyBytes, err := io.ReadAll(resp.Body)
			rq.NoError(err)

			rq.Equal(tc.body, bodyBytes)

			cancel()

			rq.NoError(g.Wait())
		})
	}
}

func TestServerNotReady(t *testing.T) {
	rq := require.New(t)

	probeServer := probe.NewServer(":0", probe.Options{Name: "app"}, func() error {
		return errors.New("model not loaded")
	})

	w := httptest.NewRecorder()
	probeServer.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ready", http.NoBody))

	rq.Equal(http.StatusServiceUnavailable, w.Code)
	rq.Equal("model not loaded\n", w.Body.String())

	w = httptest.NewRecorder()
	probeServer.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", http.NoBody))

	rq.Equal(http.StatusOK, w.Code)
}
