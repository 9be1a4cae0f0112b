/*
Package ddb provides a DynamoDB implementation of the datastore.BagStore interface.

Each property bag is one item. The partition key and row key go to the PK and
SK attributes, the store-assigned etag and timestamp to ETag and Timestamp,
and every property is written as a top-level attribute:

	PK=nightbuild  SK=42  ETag=6f1c…  Timestamp=2026-10-19T08:15:02.117Z
	JobType="Night Build"  JobId="42"  Message="hello"

Writes are conditional:
  - Insert: attribute_not_exists(PK)
  - Replace, Delete: attribute_exists(PK) AND ETag = :etag
    (attribute_exists(PK) alone for the "*" etag)

Failed conditions are reported as errors.ErrAlreadyExists, errors.ErrNotFound
or errors.ErrConditionFailed; the old item returned with the failure tells a
missing item apart from a stale etag.

	store, err := ddb.NewDynamodbBagStore(ctx, key, secret, "us-east-1", "", "jobs",
	    ddb.WithLogger(logger))
*/
package ddb
