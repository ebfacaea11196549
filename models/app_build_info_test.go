package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewAppBuildInfo(t *testing.T) {
	info := NewAppBuildInfo("1.2.3", "", "abc123")

	assert.Equal(t, "1.2.3", info.Version)
	assert.Equal(t, "N/A", info.Date)
	assert.Equal(t, "abc123", info.Commit)
	assert.Equal(t, "Build version: 1.2.3\nBuild date: N/A\nBuild commit: abc123\n", info.String())
}
