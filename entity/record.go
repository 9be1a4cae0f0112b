/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package entity

import (
	"fmt"
	"time"
)

// Record is the application-facing job entity.
type Record struct {
	// PartitionKey is Canonicalize(JobType) for records built by NewRecord.
	PartitionKey string
	// RowKey is Canonicalize(JobID) for records built by NewRecord.
	RowKey string

	JobType string
	JobID   string
	Message string

	// Timestamp and ETag are assigned by the store.
	Timestamp time.Time
	ETag      string
}

// NewRecord builds a record from raw inputs. Empty job types and ids are
// replaced by DefaultJobType and DefaultJobID, and the replaced values are
// what the record stores.
func NewRecord(jobType, jobID, message string) Record {
	jobType, jobID = withDefaults(jobType, jobID)
	pk, rk := DeriveKeys(jobType, jobID)
	return Record{
		PartitionKey: pk,
		RowKey:       rk,
		JobType:      jobType,
		JobID:        jobID,
		Message:      message,
	}
}

// Equal reports whether r and o carry the same job type, job id and message.
// Keys, timestamp and etag are ignored.
func (r Record) Equal(o Record) bool {
	return r.JobType == o.JobType && r.JobID == o.JobID && r.Message == o.Message
}

// String renders the record for diagnostics, one tab-indented field per line.
func (r Record) String() string {
	return fmt.Sprintf("\tJobType=%s\n\tJobId=%s\n\tMessage=%s\n\tETag=%s",
		r.JobType,
		r.JobID,
		r.Message,
		r.ETag)
}

// Equal is the function form of Record.Equal.
func Equal(a, b Record) bool {
	return a.Equal(b)
}

// Describe is the function form of Record.String.
func Describe(r Record) string {
	return r.String()
}
