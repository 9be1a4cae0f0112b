/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package datastore

import (
	"context"

	"github.com/suparena/jobentity/errors"
	"github.com/suparena/jobentity/storagemodels"
)

// System attribute names a store keeps next to a bag's properties.
// Bags may not use them as property names.
const (
	AttrPartitionKey = "PK"
	AttrRowKey       = "SK"
	AttrETag         = "ETag"
	AttrTimestamp    = "Timestamp"
)

var reservedProperties = map[string]bool{
	AttrPartitionKey: true,
	AttrRowKey:       true,
	AttrETag:         true,
	AttrTimestamp:    true,
}

// BagStore persists property bags keyed by partition key and row key.
//
// Every successful write assigns a new ETag and Timestamp and returns the
// stored bag. Replace and Delete are conditional on the caller's etag;
// storagemodels.AnyETag matches unconditionally.
type BagStore interface {
	Get(ctx context.Context, partitionKey, rowKey string) (*storagemodels.PropertyBag, error)

	Insert(ctx context.Context, bag *storagemodels.PropertyBag) (*storagemodels.PropertyBag, error)

	Replace(ctx context.Context, bag *storagemodels.PropertyBag) (*storagemodels.PropertyBag, error)

	Delete(ctx context.Context, partitionKey, rowKey, etag string) error
}

// EntityKey renders a partition key and row key as a single string for
// error messages and map keys.
func EntityKey(partitionKey, rowKey string) string {
	return partitionKey + "|" + rowKey
}

// IsReservedProperty reports whether name is one of the system attributes.
func IsReservedProperty(name string) bool {
	return reservedProperties[name]
}

// ValidateKey rejects empty partition and row keys.
func ValidateKey(partitionKey, rowKey string) error {
	if partitionKey == "" || rowKey == "" {
		return errors.NewValidationError("key", "partition key and row key must be non-empty")
	}
	return nil
}

// ValidateBag checks a bag before it is written: it must be non-nil, have
// non-empty keys and use no reserved property names.
func ValidateBag(bag *storagemodels.PropertyBag) error {
	if bag == nil {
		return errors.NewValidationError("bag", "must not be nil")
	}
	if err := ValidateKey(bag.PartitionKey, bag.RowKey); err != nil {
		return err
	}
	for name := range bag.Properties {
		if reservedProperties[name] {
			return errors.NewValidationError(name, "property name is reserved")
		}
	}
	return nil
}
