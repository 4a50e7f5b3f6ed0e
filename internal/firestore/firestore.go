package firestore

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/option"

	"github.com/SergeyBogomolovv/shop-admin/internal/config"
)

// New opens the Firestore document store backend.
func New(ctx context.Context, cfg config.Firestore, google config.Google) (*firestore.Client, error) {
	var opts []option.ClientOption
	if google.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(google.CredentialsFile))
	}

	client, err := firestore.NewClient(ctx, cfg.ProjectID, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create firestore client: %w", err)
	}
	return client, nil
}
