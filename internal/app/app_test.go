package app_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SergeyBogomolovv/shop-admin/internal/app"
	"github.com/SergeyBogomolovv/shop-admin/internal/config"
)

type pingHandler struct{}

func (pingHandler) Init(r chi.Router) {
	r.Get("/ping", func(w http.ResponseWriter, r *http.Request) { w.Write([]byte("pong")) })
}

type starterFunc func(ctx context.Context) error

func (f starterFunc) Start(ctx context.Context) error { return f(ctx) }

type closerFunc func() error

func (f closerFunc) Close() error { return f() }

func testConfig() config.Config {
	cfg := config.New()
	cfg.Http.Host = "127.0.0.1"
	cfg.Http.Port = "0"
	return cfg
}

func TestApplication_Routes(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	a := app.New(logger, testConfig())
	a.SetHTTPHandlers(pingHandler{})

	testCases := []struct {
		path       string
		wantStatus int
		wantBody   string
	}{
		{"/ping", http.StatusOK, "pong"},
		{"/metrics", http.StatusOK, "go_goroutines"},
		{"/swagger/doc.json", http.StatusOK, "Shop Admin API"},
		{"/missing", http.StatusNotFound, ""},
	}

	for _, tc := range testCases {
		t.Run(tc.path, func(t *testing.T) {
			rr := httptest.NewRecorder()
			a.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, tc.path, nil))

			assert.Equal(t, tc.wantStatus, rr.Code)
			assert.Contains(t, rr.Body.String(), tc.wantBody)
		})
	}
}

func TestApplication_StartStop(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	a := app.New(logger, testConfig())

	started := make(chan struct{})
	a.SetStarters(starterFunc(func(ctx context.Context) error {
		close(started)
		<-ctx.Done()
		return nil
	}))

	var closed []string
	a.SetClosers(
		closerFunc(func() error { closed = append(closed, "db"); return nil }),
		closerFunc(func() error { closed = append(closed, "events"); return errors.New("broker down") }),
	)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- a.Start(ctx) }()

	select {
	case <-started:
	case <-time.After(time.Second):
		t.Fatal("starter was not run")
	}
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("application did not stop")
	}

	err := a.Stop()
	assert.ErrorContains(t, err, "broker down")
	assert.Equal(t, []string{"events", "db"}, closed)
}

func TestApplication_StarterFailureStopsServer(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	a := app.New(logger, testConfig())

	boom := errors.New("boom")
	a.SetStarters(starterFunc(func(ctx context.Context) error { return boom }))

	err := a.Start(context.Background())
	assert.ErrorIs(t, err, boom)
}
