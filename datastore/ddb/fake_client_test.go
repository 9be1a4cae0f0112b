/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"context"
	"fmt"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	sdk "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// fakeClient is an in-process table that understands the condition
// expressions BagStore issues.
type fakeClient struct {
	mu    sync.Mutex
	items map[string]map[string]types.AttributeValue
	err   error

	lastPut    *sdk.PutItemInput
	lastDelete *sdk.DeleteItemInput
}

func newFakeClient() *fakeClient {
	return &fakeClient{items: make(map[string]map[string]types.AttributeValue)}
}

func itemKey(key map[string]types.AttributeValue) string {
	pk := key[AttrPartitionKey].(*types.AttributeValueMemberS).Value
	sk := key[AttrRowKey].(*types.AttributeValueMemberS).Value
	return pk + "|" + sk
}

func (f *fakeClient) GetItem(_ context.Context, in *sdk.GetItemInput, _ ...func(*sdk.Options)) (*sdk.GetItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	return &sdk.GetItemOutput{Item: f.items[itemKey(in.Key)]}, nil
}

func (f *fakeClient) PutItem(_ context.Context, in *sdk.PutItemInput, _ ...func(*sdk.Options)) (*sdk.PutItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastPut = in
	if f.err != nil {
		return nil, f.err
	}
	key := itemKey(in.Item)
	if err := f.check(key, in.ConditionExpression, in.ExpressionAttributeValues, in.ReturnValuesOnConditionCheckFailure); err != nil {
		return nil, err
	}
	f.items[key] = in.Item
	return &sdk.PutItemOutput{}, nil
}

func (f *fakeClient) DeleteItem(_ context.Context, in *sdk.DeleteItemInput, _ ...func(*sdk.Options)) (*sdk.DeleteItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastDelete = in
	if f.err != nil {
		return nil, f.err
	}
	key := itemKey(in.Key)
	if err := f.check(key, in.ConditionExpression, in.ExpressionAttributeValues, in.ReturnValuesOnConditionCheckFailure); err != nil {
		return nil, err
	}
	delete(f.items, key)
	return &sdk.DeleteItemOutput{}, nil
}

func (f *fakeClient) check(key string, cond *string, values map[string]types.AttributeValue, rv types.ReturnValuesOnConditionCheckFailure) error {
	current, exists := f.items[key]
	ok := true
	switch aws.ToString(cond) {
	case "":
	case "attribute_not_exists(PK)":
		ok = !exists
	case "attribute_exists(PK)":
		ok = exists
	case "attribute_exists(PK) AND ETag = :etag":
		want := values[":etag"].(*types.AttributeValueMemberS).Value
		ok = exists && current[AttrETag].(*types.AttributeValueMemberS).Value == want
	default:
		return fmt.Errorf("fake client: unsupported condition %q", aws.ToString(cond))
	}
	if ok {
		return nil
	}
	cfe := &types.ConditionalCheckFailedException{Message: aws.String("The conditional request failed")}
	if rv == types.ReturnValuesOnConditionCheckFailureAllOld {
		cfe.Item = current
	}
	return cfe
}
