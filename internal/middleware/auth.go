package middleware

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/SergeyBogomolovv/shop-admin/internal/auth"
	"github.com/SergeyBogomolovv/shop-admin/internal/entities"
	"github.com/SergeyBogomolovv/shop-admin/pkg/utils"
)

type TokenVerifier interface {
	VerifyEmail(ctx context.Context, rawToken string) (string, error)
}

type AdminChecker interface {
	IsAdmin(ctx context.Context, email string) (bool, error)
}

// RequireAdmin lets a request through only when its bearer token is valid and
// the token's email is in the admin list. The email is stored in the request context.
func RequireAdmin(logger *slog.Logger, verifier TokenVerifier, admins AdminChecker) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			token := auth.BearerToken(r.Header.Get("Authorization"))
			if token == "" {
				utils.WriteError(w, entities.ErrUnauthorized.Error(), http.StatusUnauthorized)
				return
			}

			email, err := verifier.VerifyEmail(ctx, token)
			if err != nil {
				logger.DebugContext(ctx, "token rejected", slog.Any("error", err))
				utils.WriteError(w, entities.ErrUnauthorized.Error(), http.StatusUnauthorized)
				return
			}

			ok, err := admins.IsAdmin(ctx, email)
			if err != nil {
				logger.ErrorContext(ctx, "failed to check admin", slog.Any("error", err), slog.String("email", email))
				utils.WriteError(w, err.Error(), http.StatusInternalServerError)
				return
			}
			if !ok {
				logger.WarnContext(ctx, "email is not an admin", slog.String("email", email))
				utils.WriteError(w, entities.ErrForbidden.Error(), http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r.WithContext(auth.WithEmail(ctx, email)))
		})
	}
}
