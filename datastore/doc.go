/*
Package datastore defines the storage collaborator used by jobentity.

The main interface is BagStore, which stores property bags with etag-based
optimistic concurrency:

	type BagStore interface {
	    Get(ctx context.Context, partitionKey, rowKey string) (*storagemodels.PropertyBag, error)
	    Insert(ctx context.Context, bag *storagemodels.PropertyBag) (*storagemodels.PropertyBag, error)
	    Replace(ctx context.Context, bag *storagemodels.PropertyBag) (*storagemodels.PropertyBag, error)
	    Delete(ctx context.Context, partitionKey, rowKey, etag string) error
	}

Implementations:
  - ddb: DynamoDB implementation, one item per bag
  - mock: In-memory implementation for testing

Errors follow the errors package: ErrNotFound, ErrAlreadyExists and
ErrConditionFailed.
*/
package datastore
