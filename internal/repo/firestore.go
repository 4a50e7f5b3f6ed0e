package repo

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"

	"github.com/SergeyBogomolovv/shop-admin/internal/entities"
)

const deleteBatchSize = 100

type firestoreRepo struct {
	client *firestore.Client
}

// NewFirestoreRepo maps collections and documents one to one. Firestore has
// no cross-collection transaction here, so a failed sync can leave a
// collection partly written until the next run.
func NewFirestoreRepo(client *firestore.Client) *firestoreRepo {
	return &firestoreRepo{client: client}
}

func (r *firestoreRepo) ReadCollection(ctx context.Context, collection string) ([]entities.Document, error) {
	snaps, err := r.client.Collection(collection).Documents(ctx).GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", collection, err)
	}

	docs := make([]entities.Document, 0, len(snaps))
	for _, snap := range snaps {
		doc := entities.Document(snap.Data())
		doc[entities.IDField] = snap.Ref.ID
		docs = append(docs, doc)
	}
	return docs, nil
}

func (r *firestoreRepo) DeleteCollection(ctx context.Context, collection string) (int, error) {
	ref := r.client.Collection(collection)
	deleted := 0

	for {
		snaps, err := ref.Limit(deleteBatchSize).Documents(ctx).GetAll()
		if err != nil {
			return deleted, fmt.Errorf("failed to list %s: %w", collection, err)
		}
		if len(snaps) == 0 {
			return deleted, nil
		}

		bw := r.client.BulkWriter(ctx)
		jobs := make([]*firestore.BulkWriterJob, 0, len(snaps))
		for _, snap := range snaps {
			job, err := bw.Delete(snap.Ref)
			if err != nil {
				bw.End()
				return deleted, fmt.Errorf("failed to delete %s/%s: %w", collection, snap.Ref.ID, err)
			}
			jobs = append(jobs, job)
		}
		bw.End()

		for i, job := range jobs {
			if _, err := job.Results(); err != nil {
				return deleted, fmt.Errorf("failed to delete %s/%s: %w", collection, snaps[i].Ref.ID, err)
			}
			deleted++
		}
	}
}

func (r *firestoreRepo) WriteDocument(ctx context.Context, collection, id string, doc entities.Document) error {
	data := map[string]any(withoutID(doc))
	if _, err := r.client.Collection(collection).Doc(id).Set(ctx, data); err != nil {
		return fmt.Errorf("failed to write %s/%s: %w", collection, id, err)
	}
	return nil
}
