package handler_test

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/SergeyBogomolovv/shop-admin/internal/entities"
	"github.com/SergeyBogomolovv/shop-admin/internal/handler"
	mocks "github.com/SergeyBogomolovv/shop-admin/internal/handler/mocks"
	"github.com/SergeyBogomolovv/shop-admin/internal/middleware"
	mwMocks "github.com/SergeyBogomolovv/shop-admin/internal/middleware/mocks"
)

type deps struct {
	verifier *mwMocks.MockTokenVerifier
	admins   *mwMocks.MockAdminChecker
	catalog  *mocks.MockCatalogSyncer
	exporter *mocks.MockOrderExporter
	backups  *mocks.MockBackupCreator
}

func newRouter(t *testing.T) (chi.Router, deps) {
	d := deps{
		verifier: mwMocks.NewMockTokenVerifier(t),
		admins:   mwMocks.NewMockAdminChecker(t),
		catalog:  mocks.NewMockCatalogSyncer(t),
		exporter: mocks.NewMockOrderExporter(t),
		backups:  mocks.NewMockBackupCreator(t),
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	requireAdmin := middleware.RequireAdmin(logger, d.verifier, d.admins)
	h := handler.NewHTTPHandler(logger, requireAdmin, d.catalog, d.exporter, d.backups)

	r := chi.NewRouter()
	h.Init(r)
	return r, d
}

func asAdmin(d deps) {
	d.verifier.EXPECT().VerifyEmail(mock.Anything, "token").Return("admin@example.com", nil).Once()
	d.admins.EXPECT().IsAdmin(mock.Anything, "admin@example.com").Return(true, nil).Once()
}

func TestHTTPHandler(t *testing.T) {
	testCases := []struct {
		name         string
		path         string
		header       string
		accept       string
		mockBehavior func(d deps)
		wantStatus   int
		wantBody     string
	}{
		{
			name:         "health needs no token",
			path:         "/health",
			mockBehavior: func(d deps) {},
			wantStatus:   http.StatusOK,
			wantBody:     "ok",
		},
		{
			name:   "sync",
			path:   "/sync",
			header: "Bearer token",
			mockBehavior: func(d deps) {
				asAdmin(d)
				d.catalog.EXPECT().Sync(mock.Anything).Return(entities.SyncResult{Written: map[string]int{"products": 3}}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   "success",
		},
		{
			name:   "sync as json",
			path:   "/sync",
			header: "Bearer token",
			accept: "application/json",
			mockBehavior: func(d deps) {
				asAdmin(d)
				d.catalog.EXPECT().Sync(mock.Anything).Return(entities.SyncResult{Written: map[string]int{"products": 3}}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"written":{"products":3}`,
		},
		{
			name:   "sync fails",
			path:   "/sync",
			header: "Bearer token",
			mockBehavior: func(d deps) {
				asAdmin(d)
				d.catalog.EXPECT().Sync(mock.Anything).Return(entities.SyncResult{}, errors.New("sheets unavailable")).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `"message":"sheets unavailable"`,
		},
		{
			name:   "export returns url",
			path:   "/export",
			header: "Bearer token",
			mockBehavior: func(d deps) {
				asAdmin(d)
				d.exporter.EXPECT().Export(mock.Anything).Return("https://docs.google.com/spreadsheets/d/abc", nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   "https://docs.google.com/spreadsheets/d/abc",
		},
		{
			name:   "export fails",
			path:   "/export",
			header: "Bearer token",
			mockBehavior: func(d deps) {
				asAdmin(d)
				d.exporter.EXPECT().Export(mock.Anything).Return("", errors.New("quota exceeded")).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `"message":"quota exceeded"`,
		},
		{
			name:   "backup returns url",
			path:   "/backup",
			header: "Bearer token",
			mockBehavior: func(d deps) {
				asAdmin(d)
				d.backups.EXPECT().Backup(mock.Anything).Return("https://docs.google.com/spreadsheets/d/bak", nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   "https://docs.google.com/spreadsheets/d/bak",
		},
		{
			name:         "export without token",
			path:         "/export",
			mockBehavior: func(d deps) {},
			wantStatus:   http.StatusUnauthorized,
		},
		{
			name:   "export by non admin",
			path:   "/export",
			header: "Bearer token",
			mockBehavior: func(d deps) {
				d.verifier.EXPECT().VerifyEmail(mock.Anything, "token").Return("customer@example.com", nil).Once()
				d.admins.EXPECT().IsAdmin(mock.Anything, "customer@example.com").Return(false, nil).Once()
			},
			wantStatus: http.StatusForbidden,
			wantBody:   "unauthorized email",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r, d := newRouter(t)
			tc.mockBehavior(d)

			req := httptest.NewRequest(http.MethodGet, tc.path, nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			if tc.accept != "" {
				req.Header.Set("Accept", tc.accept)
			}
			rr := httptest.NewRecorder()

			r.ServeHTTP(rr, req)

			res := rr.Result()
			defer res.Body.Close()

			body, err := io.ReadAll(res.Body)
			require.NoError(t, err)

			assert.Equal(t, tc.wantStatus, res.StatusCode)
			assert.Contains(t, string(body), tc.wantBody)

			if tc.accept == "application/json" && res.StatusCode == http.StatusOK {
				var resp handler.SyncResponse
				require.NoError(t, json.Unmarshal(body, &resp))
				assert.Equal(t, "success", resp.Status)
				assert.Empty(t, resp.Skipped)
			}
		})
	}
}
