package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/SergeyBogomolovv/shop-admin/internal/entities"
	"github.com/SergeyBogomolovv/shop-admin/pkg/utils"
)

type CatalogSyncer interface {
	Sync(ctx context.Context) (entities.SyncResult, error)
}

type OrderExporter interface {
	Export(ctx context.Context) (string, error)
}

type BackupCreator interface {
	Backup(ctx context.Context) (string, error)
}

type HTTPHandler struct {
	logger       *slog.Logger
	requireAdmin func(http.Handler) http.Handler
	catalog      CatalogSyncer
	exporter     OrderExporter
	backups      BackupCreator
}

func NewHTTPHandler(
	logger *slog.Logger,
	requireAdmin func(http.Handler) http.Handler,
	catalog CatalogSyncer,
	exporter OrderExporter,
	backups BackupCreator,
) *HTTPHandler {
	return &HTTPHandler{
		logger:       logger.With(slog.String("handler", "http")),
		requireAdmin: requireAdmin,
		catalog:      catalog,
		exporter:     exporter,
		backups:      backups,
	}
}

func (h *HTTPHandler) Init(r chi.Router) {
	r.Get("/health", h.Health)

	r.Group(func(r chi.Router) {
		r.Use(h.requireAdmin)
		r.Get("/sync", h.Sync)
		r.Get("/export", h.Export)
		r.Get("/backup", h.Backup)
	})
}

// Health
// @Summary      Health check
// @Tags         system
// @Produce      plain
// @Success      200  {string}  string  "ok"
// @Router       /health [get]
func (h *HTTPHandler) Health(w http.ResponseWriter, r *http.Request) {
	utils.WriteText(w, "ok", http.StatusOK)
}

// Sync replaces the catalog collections with the catalog spreadsheet.
// @Summary      Sync catalog
// @Description  Deletes the catalog collections and rewrites them from the catalog spreadsheet. Responds with JSON when the client accepts it.
// @Tags         admin
// @Security     BearerAuth
// @Produce      plain,json
// @Success      200  {object}  SyncResponse
// @Failure      401  {object}  utils.ErrorResponse "Missing or invalid token"
// @Failure      403  {object}  utils.ErrorResponse "Email is not an admin"
// @Failure      500  {object}  utils.ErrorResponse "Sync failed"
// @Router       /sync [get]
func (h *HTTPHandler) Sync(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	res, err := h.catalog.Sync(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to sync catalog", slog.Any("error", err))
		utils.WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if wantsJSON(r) {
		utils.WriteJSON(w, SyncResultToJSON(res), http.StatusOK)
		return
	}
	utils.WriteText(w, "success", http.StatusOK)
}

// Export publishes the orders report.
// @Summary      Export orders
// @Description  Builds the orders, packaging, pickup, supplier and summary tabs and shares them with every admin.
// @Tags         admin
// @Security     BearerAuth
// @Produce      plain
// @Success      200  {string}  string  "Spreadsheet URL"
// @Failure      401  {object}  utils.ErrorResponse "Missing or invalid token"
// @Failure      403  {object}  utils.ErrorResponse "Email is not an admin"
// @Failure      500  {object}  utils.ErrorResponse "Export failed"
// @Router       /export [get]
func (h *HTTPHandler) Export(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	url, err := h.exporter.Export(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to export orders", slog.Any("error", err))
		utils.WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	utils.WriteText(w, url, http.StatusOK)
}

// Backup
// @Summary      Back up collections
// @Description  Dumps every collection into a spreadsheet shared with every admin.
// @Tags         admin
// @Security     BearerAuth
// @Produce      plain
// @Success      200  {string}  string  "Spreadsheet URL"
// @Failure      401  {object}  utils.ErrorResponse "Missing or invalid token"
// @Failure      403  {object}  utils.ErrorResponse "Email is not an admin"
// @Failure      500  {object}  utils.ErrorResponse "Backup failed"
// @Router       /backup [get]
func (h *HTTPHandler) Backup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	url, err := h.backups.Backup(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to back up", slog.Any("error", err))
		utils.WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	utils.WriteText(w, url, http.StatusOK)
}

func wantsJSON(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Accept"), "application/json")
}
