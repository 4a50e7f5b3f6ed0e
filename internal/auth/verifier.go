// Package auth verifies the identity tokens admins send from the storefront.
package auth

import (
	"context"
	"fmt"
	"strings"

	"github.com/coreos/go-oidc/v3/oidc"

	"github.com/SergeyBogomolovv/shop-admin/internal/entities"
)

const (
	issuerPrefix = "https://securetoken.google.com/"
	keysURL      = "https://www.googleapis.com/service_accounts/v1/jwk/securetoken@system.gserviceaccount.com"
)

type Verifier struct {
	verifier *oidc.IDTokenVerifier
}

// NewVerifier accepts Firebase ID tokens issued for projectID. Signing keys
// are fetched lazily and cached by the key set.
func NewVerifier(ctx context.Context, projectID string) *Verifier {
	keySet := oidc.NewRemoteKeySet(ctx, keysURL)
	return newVerifier(issuerPrefix+projectID, projectID, keySet, &oidc.Config{ClientID: projectID})
}

func newVerifier(issuer, audience string, keySet oidc.KeySet, cfg *oidc.Config) *Verifier {
	if cfg == nil {
		cfg = &oidc.Config{}
	}
	cfg.ClientID = audience
	return &Verifier{verifier: oidc.NewVerifier(issuer, keySet, cfg)}
}

// VerifyEmail checks the token and returns the email it was issued to.
func (v *Verifier) VerifyEmail(ctx context.Context, rawToken string) (string, error) {
	token, err := v.verifier.Verify(ctx, rawToken)
	if err != nil {
		return "", fmt.Errorf("%w: %v", entities.ErrUnauthorized, err)
	}

	var claims struct {
		Email string `json:"email"`
	}
	if err := token.Claims(&claims); err != nil {
		return "", fmt.Errorf("%w: %v", entities.ErrUnauthorized, err)
	}
	if claims.Email == "" {
		return "", fmt.Errorf("%w: token has no email", entities.ErrUnauthorized)
	}
	return claims.Email, nil
}

// BearerToken extracts the token from an Authorization header. A bare token
// without the "Bearer " scheme is accepted as well.
func BearerToken(header string) string {
	header = strings.TrimSpace(header)
	if len(header) > 7 && strings.EqualFold(header[:7], "bearer ") {
		return strings.TrimSpace(header[7:])
	}
	return header
}
