/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package mock provides an in-memory implementation of datastore.BagStore for testing
package mock

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/suparena/jobentity/datastore"
	"github.com/suparena/jobentity/errors"
	"github.com/suparena/jobentity/storagemodels"
)

const entityType = "PropertyBag"

// DataStore is an in-memory datastore.BagStore. It validates keys and
// property names the same way the DynamoDB store does.
type DataStore struct {
	mu          sync.RWMutex
	data        map[string]*storagemodels.PropertyBag
	now         func() time.Time
	newETag     func() string
	getError    error
	putError    error
	deleteError error
}

var _ datastore.BagStore = (*DataStore)(nil)

// New creates a new mock DataStore
func New() *DataStore {
	return &DataStore{
		data:    make(map[string]*storagemodels.PropertyBag),
		now:     time.Now,
		newETag: func() string { return uuid.New().String() },
	}
}

// WithClock sets the function used to stamp written bags
func (m *DataStore) WithClock(now func() time.Time) *DataStore {
	m.now = now
	return m
}

// WithETagFunc sets the function used to generate etags
func (m *DataStore) WithETagFunc(f func() string) *DataStore {
	m.newETag = f
	return m
}

// WithGetError makes Get operations return an error
func (m *DataStore) WithGetError(err error) *DataStore {
	m.getError = err
	return m
}

// WithPutError makes Insert and Replace operations return an error
func (m *DataStore) WithPutError(err error) *DataStore {
	m.putError = err
	return m
}

// WithDeleteError makes Delete operations return an error
func (m *DataStore) WithDeleteError(err error) *DataStore {
	m.deleteError = err
	return m
}

// Get returns a copy of the stored bag
func (m *DataStore) Get(ctx context.Context, partitionKey, rowKey string) (*storagemodels.PropertyBag, error) {
	if m.getError != nil {
		return nil, m.getError
	}
	if err := datastore.ValidateKey(partitionKey, rowKey); err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	key := datastore.EntityKey(partitionKey, rowKey)
	bag, exists := m.data[key]
	if !exists {
		return nil, errors.NewNotFoundError(entityType, key)
	}
	return bag.Clone(), nil
}

// Insert stores a new bag, failing if the keys are taken
func (m *DataStore) Insert(ctx context.Context, bag *storagemodels.PropertyBag) (*storagemodels.PropertyBag, error) {
	if m.putError != nil {
		return nil, m.putError
	}
	if err := datastore.ValidateBag(bag); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	key := datastore.EntityKey(bag.PartitionKey, bag.RowKey)
	if _, exists := m.data[key]; exists {
		return nil, errors.NewAlreadyExistsError(entityType, key)
	}
	return m.store(key, bag), nil
}

// Replace overwrites a stored bag when the etags match
func (m *DataStore) Replace(ctx context.Context, bag *storagemodels.PropertyBag) (*storagemodels.PropertyBag, error) {
	if m.putError != nil {
		return nil, m.putError
	}
	if err := datastore.ValidateBag(bag); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	key := datastore.EntityKey(bag.PartitionKey, bag.RowKey)
	current, exists := m.data[key]
	if !exists {
		return nil, errors.NewNotFoundError(entityType, key)
	}
	if !etagMatches(bag.ETag, current.ETag) {
		return nil, errors.NewConditionFailedError("replace", "etag mismatch for "+key)
	}
	return m.store(key, bag), nil
}

// Delete removes a stored bag when the etags match
func (m *DataStore) Delete(ctx context.Context, partitionKey, rowKey, etag string) error {
	if m.deleteError != nil {
		return m.deleteError
	}
	if err := datastore.ValidateKey(partitionKey, rowKey); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	key := datastore.EntityKey(partitionKey, rowKey)
	current, exists := m.data[key]
	if !exists {
		return errors.NewNotFoundError(entityType, key)
	}
	if !etagMatches(etag, current.ETag) {
		return errors.NewConditionFailedError("delete", "etag mismatch for "+key)
	}

	delete(m.data, key)
	return nil
}

// Helper methods for testing

// SetData directly sets the internal data map, keyed by datastore.EntityKey
func (m *DataStore) SetData(data map[string]*storagemodels.PropertyBag) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = data
}

// Count returns the number of stored bags
func (m *DataStore) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.data)
}

// Clear removes all data
func (m *DataStore) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = make(map[string]*storagemodels.PropertyBag)
}

// store must be called with m.mu held.
func (m *DataStore) store(key string, bag *storagemodels.PropertyBag) *storagemodels.PropertyBag {
	stored := bag.Clone()
	stored.ETag = m.newETag()
	stored.Timestamp = m.now().UTC()
	m.data[key] = stored
	return stored.Clone()
}

func etagMatches(given, current string) bool {
	return given == storagemodels.AnyETag || given == current
}
