/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package entity

import "strings"

const (
	// DefaultJobType replaces an empty job type.
	DefaultJobType = "EmptyJobType"
	// DefaultJobID replaces an empty job id.
	DefaultJobID = "EmptyJobId"
)

// Canonicalize lower-cases s and removes every space character.
// Tabs, newlines and other whitespace are left alone.
func Canonicalize(s string) string {
	return strings.ReplaceAll(strings.ToLower(s), " ", "")
}

// DeriveKeys returns the partition key and row key for a job type and job id.
// An empty input is replaced by its default before canonicalization. An input
// made only of spaces is not empty and canonicalizes to "".
func DeriveKeys(jobType, jobID string) (partitionKey, rowKey string) {
	jobType, jobID = withDefaults(jobType, jobID)
	return Canonicalize(jobType), Canonicalize(jobID)
}

func withDefaults(jobType, jobID string) (string, string) {
	if jobType == "" {
		jobType = DefaultJobType
	}
	if jobID == "" {
		jobID = DefaultJobID
	}
	return jobType, jobID
}
