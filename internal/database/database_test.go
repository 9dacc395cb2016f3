package database

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm/logger"
)

// TestOptionsDefaults tests that nil options get the full default set
func TestOptionsDefaults(t *testing.T) {
	var opts *Options
	got := opts.withDefaults()

	assert.Equal(t, logger.Error, got.LogLevel)
	assert.Equal(t, 20, got.MaxOpenConns)
	assert.Equal(t, 10, got.MaxIdleConns)
	assert.Equal(t, 30*time.Minute, got.ConnMaxLifetime)
	assert.Equal(t, 10*time.Minute, got.ConnMaxIdleTime)
	assert.False(t, got.SkipAutoMigrate)
	assert.False(t, got.SkipSeedRoles)
}

// TestOptionsSkipFlagsSurviveDefaults tests that migration and seeding can
// actually be turned off
func TestOptionsSkipFlagsSurviveDefaults(t *testing.T) {
	got := (&Options{SkipAutoMigrate: true, SkipSeedRoles: true}).withDefaults()

	assert.True(t, got.SkipAutoMigrate)
	assert.True(t, got.SkipSeedRoles)
}

// TestOptionsKeepsExplicitPoolSettings tests that set fields are not
// overwritten
func TestOptionsKeepsExplicitPoolSettings(t *testing.T) {
	got := (&Options{MaxOpenConns: 5, ConnMaxLifetime: time.Minute}).withDefaults()

	assert.Equal(t, 5, got.MaxOpenConns)
	assert.Equal(t, time.Minute, got.ConnMaxLifetime)
}
