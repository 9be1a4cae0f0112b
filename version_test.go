/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package jobentity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetVersionInfo(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		info := GetVersionInfo()
		assert.Equal(t, Version, info.Version)
		assert.Equal(t, "unknown", info.GitCommit)
		assert.Equal(t, "unknown", info.BuildDate)
		assert.Equal(t, "unknown", info.GoVersion)
	})

	t.Run("LinkerOverrides", func(t *testing.T) {
		saved := []string{GitCommit, BuildDate, GoVersion}
		t.Cleanup(func() { GitCommit, BuildDate, GoVersion = saved[0], saved[1], saved[2] })

		GitCommit, BuildDate, GoVersion = "abc1234", "2026-10-19T08:00:00Z", "go1.22.12"

		assert.Equal(t, VersionInfo{
			Version:   Version,
			GitCommit: "abc1234",
			BuildDate: "2026-10-19T08:00:00Z",
			GoVersion: "go1.22.12",
		}, GetVersionInfo())
	})
}
