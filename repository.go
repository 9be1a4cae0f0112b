/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package jobentity

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/suparena/jobentity/datastore"
	"github.com/suparena/jobentity/entity"
)

// Repository stores job records in a datastore.BagStore, converting them
// with the entity codec on the way in and out.
type Repository struct {
	store  datastore.BagStore
	logger *slog.Logger
}

// RepositoryOption configures a Repository.
type RepositoryOption func(*Repository)

// WithLogger sets the repository logger. The default is slog.Default().
func WithLogger(logger *slog.Logger) RepositoryOption {
	return func(r *Repository) {
		r.logger = logger
	}
}

// NewRepository creates a Repository over store.
func NewRepository(store datastore.BagStore, opts ...RepositoryOption) *Repository {
	r := &Repository{
		store:  store,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Create builds a record from raw inputs and inserts it.
func (r *Repository) Create(ctx context.Context, jobType, jobID, message string) (entity.Record, error) {
	return r.Insert(ctx, entity.NewRecord(jobType, jobID, message))
}

// Insert writes a new record. The returned record carries the etag and
// timestamp assigned by the store.
func (r *Repository) Insert(ctx context.Context, rec entity.Record) (entity.Record, error) {
	stored, err := r.store.Insert(ctx, entity.ToPropertyBag(rec))
	if err != nil {
		return entity.Record{}, fmt.Errorf("failed to insert job %q/%q: %w", rec.JobType, rec.JobID, err)
	}
	r.logger.Debug("job inserted", "partitionKey", stored.PartitionKey, "rowKey", stored.RowKey, "etag", stored.ETag)
	return entity.ToRecord(stored)
}

// Get reads the record for a job type and job id.
func (r *Repository) Get(ctx context.Context, jobType, jobID string) (entity.Record, error) {
	pk, rk := entity.DeriveKeys(jobType, jobID)
	return r.GetByKey(ctx, pk, rk)
}

// GetByKey reads the record stored under an explicit partition and row key.
func (r *Repository) GetByKey(ctx context.Context, partitionKey, rowKey string) (entity.Record, error) {
	bag, err := r.store.Get(ctx, partitionKey, rowKey)
	if err != nil {
		return entity.Record{}, fmt.Errorf("failed to get job %s: %w", datastore.EntityKey(partitionKey, rowKey), err)
	}
	return entity.ToRecord(bag)
}

// Update replaces the stored record if its etag still equals rec.ETag.
func (r *Repository) Update(ctx context.Context, rec entity.Record) (entity.Record, error) {
	stored, err := r.store.Replace(ctx, entity.ToPropertyBag(rec))
	if err != nil {
		return entity.Record{}, fmt.Errorf("failed to update job %s: %w", datastore.EntityKey(rec.PartitionKey, rec.RowKey), err)
	}
	r.logger.Debug("job updated", "partitionKey", stored.PartitionKey, "rowKey", stored.RowKey, "etag", stored.ETag)
	return entity.ToRecord(stored)
}

// Delete removes the stored record if its etag still equals rec.ETag.
func (r *Repository) Delete(ctx context.Context, rec entity.Record) error {
	if err := r.store.Delete(ctx, rec.PartitionKey, rec.RowKey, rec.ETag); err != nil {
		return fmt.Errorf("failed to delete job %s: %w", datastore.EntityKey(rec.PartitionKey, rec.RowKey), err)
	}
	return nil
}
