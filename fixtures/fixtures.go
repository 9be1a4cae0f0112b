/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package fixtures reads job seed files used to populate a table for tests
// and diagnostics.
//
// A seed file is YAML:
//
//	jobs:
//	  - jobType: Night Build
//	    jobId: "42"
//	    message: hello
//	  - jobType: Deploy
//	    jobId: ""          # becomes EmptyJobId
//	                       # no message: a random one is generated
package fixtures

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/suparena/jobentity/entity"
)

// Seed is one job entry of a seed file.
type Seed struct {
	JobType string `yaml:"jobType"`
	JobID   string `yaml:"jobId"`
	// Message is optional; nil means "generate one".
	Message *string `yaml:"message"`
}

type seedFile struct {
	Jobs []Seed `yaml:"jobs"`
}

// Load parses seeds from r. Unknown keys are rejected.
func Load(r io.Reader) ([]Seed, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f seedFile
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to decode seed file: %w", err)
	}
	return f.Jobs, nil
}

// LoadFile parses seeds from the file at path.
func LoadFile(path string) ([]Seed, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open seed file: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// Record builds the job record for the seed. A seed without a message gets
// entity.RandomMessage from the given clock and generator.
func (s Seed) Record(clock entity.Clock, ids entity.IDGenerator) entity.Record {
	var message string
	if s.Message != nil {
		message = *s.Message
	} else {
		message = entity.RandomMessage(clock, ids)
	}
	return entity.NewRecord(s.JobType, s.JobID, message)
}

// Records builds the records for all seeds with the system clock and UUIDs.
func Records(seeds []Seed) []entity.Record {
	out := make([]entity.Record, 0, len(seeds))
	for _, s := range seeds {
		out = append(out, s.Record(entity.SystemClock, entity.UUIDGenerator))
	}
	return out
}
