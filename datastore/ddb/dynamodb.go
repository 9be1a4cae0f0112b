/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	sdk "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/go-openapi/strfmt"
	"github.com/google/uuid"

	"github.com/suparena/jobentity/datastore"
	storeerrors "github.com/suparena/jobentity/errors"
	"github.com/suparena/jobentity/storagemodels"
)

// System attributes written next to the bag's properties.
const (
	AttrPartitionKey = datastore.AttrPartitionKey
	AttrRowKey       = datastore.AttrRowKey
	AttrETag         = datastore.AttrETag
	AttrTimestamp    = datastore.AttrTimestamp
)

const entityType = "PropertyBag"

// Client is the subset of the DynamoDB API used by BagStore.
type Client interface {
	GetItem(ctx context.Context, params *sdk.GetItemInput, optFns ...func(*sdk.Options)) (*sdk.GetItemOutput, error)
	PutItem(ctx context.Context, params *sdk.PutItemInput, optFns ...func(*sdk.Options)) (*sdk.PutItemOutput, error)
	DeleteItem(ctx context.Context, params *sdk.DeleteItemInput, optFns ...func(*sdk.Options)) (*sdk.DeleteItemOutput, error)
}

// BagStore implements datastore.BagStore with one DynamoDB item per property bag.
type BagStore struct {
	client    Client
	tableName string
	logger    *slog.Logger
	now       func() time.Time
	newETag   func() string
}

var _ datastore.BagStore = (*BagStore)(nil)

// Option configures a BagStore.
type Option func(*BagStore)

// WithLogger sets the logger. The default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *BagStore) {
		s.logger = logger
	}
}

// WithClock sets the function used to stamp written items.
func WithClock(now func() time.Time) Option {
	return func(s *BagStore) {
		s.now = now
	}
}

// WithETagFunc sets the function used to generate etags.
func WithETagFunc(f func() string) Option {
	return func(s *BagStore) {
		s.newETag = f
	}
}

// NewDynamoDBClient initializes a DynamoDB client. Static credentials are used
// when an access key is given, otherwise the default AWS credential chain.
// A non-empty endpoint overrides the service endpoint (DynamoDB Local, LocalStack).
func NewDynamoDBClient(ctx context.Context, awsAccessKey, awsSecretKey, awsRegion, endpoint string) (*sdk.Client, error) {
	loadOpts := []func(*config.LoadOptions) error{
		config.WithRegion(awsRegion),
	}
	if awsAccessKey != "" {
		loadOpts = append(loadOpts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(awsAccessKey, awsSecretKey, ""),
		))
	}

	cfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}

	return sdk.NewFromConfig(cfg, func(o *sdk.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
	}), nil
}

// NewBagStore constructs a BagStore over an existing client.
func NewBagStore(client Client, tableName string, opts ...Option) *BagStore {
	s := &BagStore{
		client:    client,
		tableName: tableName,
		logger:    slog.Default(),
		now:       time.Now,
		newETag:   func() string { return uuid.New().String() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewDynamodbBagStore creates a DynamoDB client and wraps it in a BagStore.
func NewDynamodbBagStore(ctx context.Context, awsAccessKey, awsSecretKey, awsRegion, endpoint, tableName string, opts ...Option) (*BagStore, error) {
	client, err := NewDynamoDBClient(ctx, awsAccessKey, awsSecretKey, awsRegion, endpoint)
	if err != nil {
		return nil, fmt.Errorf("failed to create DynamoDB client: %w", err)
	}

	s := NewBagStore(client, tableName, opts...)
	s.logger.Info("DynamoDB bag store initialized", "table", tableName, "region", awsRegion)
	return s, nil
}

// Get reads a single bag with a strongly consistent read.
func (s *BagStore) Get(ctx context.Context, partitionKey, rowKey string) (*storagemodels.PropertyBag, error) {
	key, err := buildKey(partitionKey, rowKey)
	if err != nil {
		return nil, err
	}

	out, err := s.client.GetItem(ctx, &sdk.GetItemInput{
		TableName:      &s.tableName,
		Key:            key,
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, fmt.Errorf("GetItem error: %w", err)
	}
	if out.Item == nil {
		return nil, storeerrors.NewNotFoundError(entityType, datastore.EntityKey(partitionKey, rowKey))
	}

	bag, err := fromItem(out.Item)
	if err != nil {
		return nil, fmt.Errorf("failed to decode item: %w", err)
	}
	return bag, nil
}

// Insert writes a bag whose keys must not exist yet.
func (s *BagStore) Insert(ctx context.Context, bag *storagemodels.PropertyBag) (*storagemodels.PropertyBag, error) {
	stored, item, err := s.prepare(bag)
	if err != nil {
		return nil, err
	}

	_, err = s.client.PutItem(ctx, &sdk.PutItemInput{
		TableName:           &s.tableName,
		Item:                item,
		ConditionExpression: aws.String("attribute_not_exists(" + AttrPartitionKey + ")"),
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			key := datastore.EntityKey(bag.PartitionKey, bag.RowKey)
			s.logger.Debug("insert rejected, key exists", "key", key)
			return nil, storeerrors.NewAlreadyExistsError(entityType, key)
		}
		return nil, fmt.Errorf("PutItem failed: %w", err)
	}
	return stored, nil
}

// Replace overwrites an existing bag when its stored etag equals bag.ETag.
func (s *BagStore) Replace(ctx context.Context, bag *storagemodels.PropertyBag) (*storagemodels.PropertyBag, error) {
	stored, item, err := s.prepare(bag)
	if err != nil {
		return nil, err
	}

	condition, values := etagCondition(bag.ETag)
	_, err = s.client.PutItem(ctx, &sdk.PutItemInput{
		TableName:                           &s.tableName,
		Item:                                item,
		ConditionExpression:                 &condition,
		ExpressionAttributeValues:           values,
		ReturnValuesOnConditionCheckFailure: types.ReturnValuesOnConditionCheckFailureAllOld,
	})
	if err != nil {
		return nil, s.conditionalError("replace", bag.PartitionKey, bag.RowKey, err)
	}
	return stored, nil
}

// Delete removes a bag when its stored etag equals etag.
func (s *BagStore) Delete(ctx context.Context, partitionKey, rowKey, etag string) error {
	key, err := buildKey(partitionKey, rowKey)
	if err != nil {
		return err
	}

	condition, values := etagCondition(etag)
	_, err = s.client.DeleteItem(ctx, &sdk.DeleteItemInput{
		TableName:                           &s.tableName,
		Key:                                 key,
		ConditionExpression:                 &condition,
		ExpressionAttributeValues:           values,
		ReturnValuesOnConditionCheckFailure: types.ReturnValuesOnConditionCheckFailureAllOld,
	})
	if err != nil {
		return s.conditionalError("delete", partitionKey, rowKey, err)
	}
	return nil
}

// prepare stamps a copy of bag with a new etag and timestamp and encodes it.
func (s *BagStore) prepare(bag *storagemodels.PropertyBag) (*storagemodels.PropertyBag, map[string]types.AttributeValue, error) {
	if err := datastore.ValidateBag(bag); err != nil {
		return nil, nil, err
	}

	stored := bag.Clone()
	stored.ETag = s.newETag()
	// Timestamps are persisted with millisecond precision.
	stored.Timestamp = s.now().UTC().Truncate(time.Millisecond)

	item, err := toItem(stored)
	if err != nil {
		return nil, nil, err
	}
	return stored, item, nil
}

// conditionalError maps a failed conditional write. The item returned with the
// exception tells a missing entity apart from a stale etag.
func (s *BagStore) conditionalError(op, partitionKey, rowKey string, err error) error {
	var cfe *types.ConditionalCheckFailedException
	if !errors.As(err, &cfe) {
		return fmt.Errorf("%s failed: %w", op, err)
	}

	key := datastore.EntityKey(partitionKey, rowKey)
	if len(cfe.Item) == 0 {
		return storeerrors.NewNotFoundError(entityType, key)
	}
	s.logger.Debug("conditional write rejected", "op", op, "key", key)
	return storeerrors.NewConditionFailedError(op, "etag mismatch for "+key)
}

func etagCondition(etag string) (string, map[string]types.AttributeValue) {
	exists := "attribute_exists(" + AttrPartitionKey + ")"
	if etag == storagemodels.AnyETag {
		return exists, nil
	}
	return exists + " AND " + AttrETag + " = :etag", map[string]types.AttributeValue{
		":etag": &types.AttributeValueMemberS{Value: etag},
	}
}

// buildKey builds the DynamoDB key. DynamoDB rejects empty key attributes.
func buildKey(partitionKey, rowKey string) (map[string]types.AttributeValue, error) {
	if err := datastore.ValidateKey(partitionKey, rowKey); err != nil {
		return nil, err
	}
	return map[string]types.AttributeValue{
		AttrPartitionKey: &types.AttributeValueMemberS{Value: partitionKey},
		AttrRowKey:       &types.AttributeValueMemberS{Value: rowKey},
	}, nil
}

func toItem(bag *storagemodels.PropertyBag) (map[string]types.AttributeValue, error) {
	item, err := buildKey(bag.PartitionKey, bag.RowKey)
	if err != nil {
		return nil, err
	}
	for name, value := range bag.Properties {
		item[name] = value
	}
	item[AttrETag] = &types.AttributeValueMemberS{Value: bag.ETag}
	item[AttrTimestamp] = &types.AttributeValueMemberS{Value: strfmt.DateTime(bag.Timestamp).String()}
	return item, nil
}

func fromItem(item map[string]types.AttributeValue) (*storagemodels.PropertyBag, error) {
	var system struct {
		PK        string
		SK        string
		ETag      string
		Timestamp string
	}
	if err := attributevalue.UnmarshalMap(item, &system); err != nil {
		return nil, fmt.Errorf("failed to unmarshal system attributes: %w", err)
	}

	bag := &storagemodels.PropertyBag{
		PartitionKey: system.PK,
		RowKey:       system.SK,
		ETag:         system.ETag,
		Properties:   make(map[string]types.AttributeValue, len(item)),
	}
	if system.Timestamp != "" {
		ts, err := strfmt.ParseDateTime(system.Timestamp)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", AttrTimestamp, err)
		}
		bag.Timestamp = time.Time(ts).UTC()
	}

	for name, value := range item {
		if !datastore.IsReservedProperty(name) {
			bag.Properties[name] = value
		}
	}
	return bag, nil
}
