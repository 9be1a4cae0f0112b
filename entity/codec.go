/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package entity

import (
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/suparena/jobentity/storagemodels"
)

// Property names used in the bag form of a record.
const (
	PropertyJobType = "JobType"
	PropertyJobID   = "JobId"
	PropertyMessage = "Message"
)

// ToRecord converts a property bag read from the store into a record.
// Keys, timestamp and etag are copied as they are; they are not derived
// again from the job type and id.
func ToRecord(bag *storagemodels.PropertyBag) (Record, error) {
	jobType, err := bag.StringProperty(PropertyJobType)
	if err != nil {
		return Record{}, fmt.Errorf("failed to read job record: %w", err)
	}
	jobID, err := bag.StringProperty(PropertyJobID)
	if err != nil {
		return Record{}, fmt.Errorf("failed to read job record: %w", err)
	}
	message, err := bag.StringProperty(PropertyMessage)
	if err != nil {
		return Record{}, fmt.Errorf("failed to read job record: %w", err)
	}

	return Record{
		PartitionKey: bag.PartitionKey,
		RowKey:       bag.RowKey,
		Timestamp:    bag.Timestamp,
		ETag:         bag.ETag,
		JobType:      jobType,
		JobID:        jobID,
		Message:      message,
	}, nil
}

// ToPropertyBag converts a record into the bag written to the store.
// The bag's timestamp is left for the store to assign.
func ToPropertyBag(r Record) *storagemodels.PropertyBag {
	return &storagemodels.PropertyBag{
		PartitionKey: r.PartitionKey,
		RowKey:       r.RowKey,
		ETag:         r.ETag,
		Properties: map[string]types.AttributeValue{
			PropertyJobType: &types.AttributeValueMemberS{Value: r.JobType},
			PropertyJobID:   &types.AttributeValueMemberS{Value: r.JobID},
			PropertyMessage: &types.AttributeValueMemberS{Value: r.Message},
		},
	}
}
