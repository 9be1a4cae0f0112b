/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package entity

import (
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/suparena/jobentity/errors"
	"github.com/suparena/jobentity/storagemodels"
)

func stringBag(pk, rk string, props map[string]string) *storagemodels.PropertyBag {
	avs := make(map[string]types.AttributeValue, len(props))
	for k, v := range props {
		avs[k] = &types.AttributeValueMemberS{Value: v}
	}
	return &storagemodels.PropertyBag{PartitionKey: pk, RowKey: rk, Properties: avs}
}

func TestToPropertyBag(t *testing.T) {
	rec := NewRecord("Night Build", "Run 7", "hello")
	rec.ETag = "etag-1"
	rec.Timestamp = time.Now()

	bag := ToPropertyBag(rec)

	assert.Equal(t, "nightbuild", bag.PartitionKey)
	assert.Equal(t, "run7", bag.RowKey)
	assert.Equal(t, "etag-1", bag.ETag)
	assert.True(t, bag.Timestamp.IsZero(), "timestamp is assigned by the store")
	assert.Equal(t, map[string]types.AttributeValue{
		PropertyJobType: &types.AttributeValueMemberS{Value: "Night Build"},
		PropertyJobID:   &types.AttributeValueMemberS{Value: "Run 7"},
		PropertyMessage: &types.AttributeValueMemberS{Value: "hello"},
	}, bag.Properties)
}

func TestToPropertyBagProducesFreshMaps(t *testing.T) {
	rec := NewRecord("a", "b", "c")
	first := ToPropertyBag(rec)
	second := ToPropertyBag(rec)

	first.Properties[PropertyMessage] = &types.AttributeValueMemberS{Value: "changed"}

	msg, err := second.StringProperty(PropertyMessage)
	require.NoError(t, err)
	assert.Equal(t, "c", msg)
}

func TestRoundTrip(t *testing.T) {
	inputs := [][3]string{
		{"Night Build", "", "hello"},
		{"", "", ""},
		{"Deploy", "Run 42", "m"},
		{"   ", "x y z", "with\nnewline"},
	}
	for _, in := range inputs {
		rec := NewRecord(in[0], in[1], in[2])

		back, err := ToRecord(ToPropertyBag(rec))
		require.NoError(t, err)

		assert.True(t, Equal(rec, back), "round trip changed %v", in)
		assert.Equal(t, rec.PartitionKey, back.PartitionKey)
		assert.Equal(t, rec.RowKey, back.RowKey)
	}
}

func TestToRecordCopiesMetadata(t *testing.T) {
	ts := time.Date(2026, 10, 19, 8, 15, 2, 117000000, time.UTC)
	bag := stringBag("X", "Y", map[string]string{
		PropertyJobType: "foo",
		PropertyJobID:   "bar",
		PropertyMessage: "m",
	})
	bag.Timestamp = ts
	bag.ETag = "etag-9"

	rec, err := ToRecord(bag)
	require.NoError(t, err)

	// Keys are taken from the bag, not derived from foo/bar.
	assert.Equal(t, "X", rec.PartitionKey)
	assert.Equal(t, "Y", rec.RowKey)
	assert.NotEqual(t, Canonicalize("foo"), rec.PartitionKey)
	assert.Equal(t, ts, rec.Timestamp)
	assert.Equal(t, "etag-9", rec.ETag)
	assert.Equal(t, "foo", rec.JobType)
	assert.Equal(t, "bar", rec.JobID)
	assert.Equal(t, "m", rec.Message)
}

func TestToRecordErrors(t *testing.T) {
	t.Run("MissingMessage", func(t *testing.T) {
		bag := stringBag("p", "r", map[string]string{PropertyJobType: "t", PropertyJobID: "i"})

		_, err := ToRecord(bag)
		require.Error(t, err)
		assert.True(t, errors.IsMissingField(err))

		var mf *errors.MissingFieldError
		require.ErrorAs(t, err, &mf)
		assert.Equal(t, PropertyMessage, mf.Field)
	})

	t.Run("MissingJobType", func(t *testing.T) {
		bag := stringBag("p", "r", map[string]string{PropertyJobID: "i", PropertyMessage: "m"})

		_, err := ToRecord(bag)
		assert.ErrorIs(t, err, errors.ErrMissingField)
	})

	t.Run("NilBag", func(t *testing.T) {
		_, err := ToRecord(nil)
		assert.ErrorIs(t, err, errors.ErrMissingField)
	})

	t.Run("NumericJobID", func(t *testing.T) {
		bag := stringBag("p", "r", map[string]string{PropertyJobType: "t", PropertyMessage: "m"})
		bag.Properties[PropertyJobID] = &types.AttributeValueMemberN{Value: "42"}

		_, err := ToRecord(bag)
		require.Error(t, err)
		assert.True(t, errors.IsTypeMismatch(err))
		assert.False(t, errors.IsMissingField(err))

		var tm *errors.TypeMismatchError
		require.ErrorAs(t, err, &tm)
		assert.Equal(t, PropertyJobID, tm.Field)
	})

	t.Run("NullMessage", func(t *testing.T) {
		bag := stringBag("p", "r", map[string]string{PropertyJobType: "t", PropertyJobID: "i"})
		bag.Properties[PropertyMessage] = &types.AttributeValueMemberNULL{Value: true}

		_, err := ToRecord(bag)
		assert.ErrorIs(t, err, errors.ErrTypeMismatch)
	})
}
