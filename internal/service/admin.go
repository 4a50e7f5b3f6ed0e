package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SergeyBogomolovv/shop-admin/internal/entities"
	"github.com/SergeyBogomolovv/shop-admin/internal/repo"
	"github.com/SergeyBogomolovv/shop-admin/pkg/utils"
)

const adminsCacheKey = "admins"

type AdminCache interface {
	Get(key string) ([]string, bool)
	Set(key string, value []string)
	Delete(key string)
}

type adminService struct {
	logger *slog.Logger
	store  DocumentStore
	cache  AdminCache
	retry  utils.RetryConfig
}

func NewAdminService(logger *slog.Logger, store DocumentStore, cache AdminCache, retry utils.RetryConfig) *adminService {
	return &adminService{
		logger: logger.With(slog.String("service", "admin")),
		store:  store,
		cache:  cache,
		retry:  retry,
	}
}

// AllowedAdmins returns the emails of the admins collection. The list is
// cached until it expires or a sync replaces it.
func (s *adminService) AllowedAdmins(ctx context.Context) ([]string, error) {
	if emails, ok := s.cache.Get(adminsCacheKey); ok {
		return emails, nil
	}

	var docs []entities.Document
	fn := func() error {
		var err error
		docs, err = s.store.ReadCollection(ctx, repo.CollectionAdmins)
		return err
	}
	if err := utils.Retry(ctx, s.retry, fn); err != nil {
		return nil, fmt.Errorf("failed to read admins: %w", err)
	}

	emails := make([]string, 0, len(docs))
	for _, d := range docs {
		if email := normalizeEmail(entities.AdminFromDocument(d).Email); email != "" {
			emails = append(emails, email)
		}
	}

	s.cache.Set(adminsCacheKey, emails)
	s.logger.Debug("admins loaded", "count", len(emails))
	return emails, nil
}

func (s *adminService) IsAdmin(ctx context.Context, email string) (bool, error) {
	email = normalizeEmail(email)
	if email == "" {
		return false, nil
	}

	emails, err := s.AllowedAdmins(ctx)
	if err != nil {
		return false, err
	}
	for _, e := range emails {
		if e == email {
			return true, nil
		}
	}
	return false, nil
}

func (s *adminService) Invalidate() {
	s.cache.Delete(adminsCacheKey)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
