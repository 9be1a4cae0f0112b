/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package storagemodels

import (
	"time"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/suparena/jobentity/errors"
)

// AnyETag matches every stored etag in a conditional write.
const AnyETag = "*"

// PropertyBag is the schema-less form of an entity as the table store sees it.
type PropertyBag struct {
	// PartitionKey selects the partition the entity lives in.
	PartitionKey string
	// RowKey identifies the entity within its partition.
	RowKey string
	// Timestamp is assigned by the store on every write.
	Timestamp time.Time
	// ETag is the optimistic concurrency token assigned by the store.
	ETag string
	// Properties holds the named, typed values of the entity.
	Properties map[string]types.AttributeValue
}

// NewPropertyBag builds a bag around a copy of props.
func NewPropertyBag(partitionKey, rowKey, etag string, props map[string]types.AttributeValue) *PropertyBag {
	return &PropertyBag{
		PartitionKey: partitionKey,
		RowKey:       rowKey,
		ETag:         etag,
		Properties:   copyProperties(props),
	}
}

// StringProperty returns the string held by the named property.
// It fails with a MissingFieldError when the property is absent and with a
// TypeMismatchError when it holds anything other than a string.
func (b *PropertyBag) StringProperty(name string) (string, error) {
	if b == nil {
		return "", errors.NewMissingFieldError(name)
	}
	av, ok := b.Properties[name]
	if !ok || av == nil {
		return "", errors.NewMissingFieldError(name)
	}
	s, ok := av.(*types.AttributeValueMemberS)
	if !ok {
		return "", errors.NewTypeMismatchError(name, "string", av)
	}
	return s.Value, nil
}

// Clone returns a deep copy of the bag, including nested lists, maps and sets.
func (b *PropertyBag) Clone() *PropertyBag {
	if b == nil {
		return nil
	}
	c := *b
	c.Properties = copyProperties(b.Properties)
	return &c
}

func copyProperties(props map[string]types.AttributeValue) map[string]types.AttributeValue {
	if props == nil {
		return nil
	}
	out := make(map[string]types.AttributeValue, len(props))
	for k, v := range props {
		out[k] = copyAttributeValue(v)
	}
	return out
}

func copyAttributeValue(av types.AttributeValue) types.AttributeValue {
	switch tv := av.(type) {
	case *types.AttributeValueMemberS:
		return &types.AttributeValueMemberS{Value: tv.Value}
	case *types.AttributeValueMemberN:
		return &types.AttributeValueMemberN{Value: tv.Value}
	case *types.AttributeValueMemberBOOL:
		return &types.AttributeValueMemberBOOL{Value: tv.Value}
	case *types.AttributeValueMemberNULL:
		return &types.AttributeValueMemberNULL{Value: tv.Value}
	case *types.AttributeValueMemberB:
		return &types.AttributeValueMemberB{Value: copyBytes(tv.Value)}
	case *types.AttributeValueMemberL:
		var list []types.AttributeValue
		if tv.Value != nil {
			list = make([]types.AttributeValue, len(tv.Value))
			for i, v := range tv.Value {
				list[i] = copyAttributeValue(v)
			}
		}
		return &types.AttributeValueMemberL{Value: list}
	case *types.AttributeValueMemberM:
		return &types.AttributeValueMemberM{Value: copyProperties(tv.Value)}
	case *types.AttributeValueMemberSS:
		return &types.AttributeValueMemberSS{Value: copyStrings(tv.Value)}
	case *types.AttributeValueMemberNS:
		return &types.AttributeValueMemberNS{Value: copyStrings(tv.Value)}
	case *types.AttributeValueMemberBS:
		var set [][]byte
		if tv.Value != nil {
			set = make([][]byte, len(tv.Value))
			for i, b := range tv.Value {
				set[i] = copyBytes(b)
			}
		}
		return &types.AttributeValueMemberBS{Value: set}
	default:
		return av
	}
}

func copyBytes(b []byte) []byte {
	if b == nil {
		return nil
	}
	return append([]byte{}, b...)
}

func copyStrings(s []string) []string {
	if s == nil {
		return nil
	}
	return append([]string{}, s...)
}
