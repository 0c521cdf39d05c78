package config

import (
	"testing"
	"time"

	"roomie_feed/models"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("FEED_TTL", "")
	t.Setenv("FEED_REQUEST_TIMEOUT", "")
	t.Setenv("STUB_STORE", "")
	t.Setenv("AWS_REGION", "")

	cfg := Load()
	assert.Equal(t, models.DefaultFeedTTL, cfg.FeedTTL)
	assert.Equal(t, models.DefaultRequestTimeout, cfg.FeedTimeout)
	assert.Equal(t, "memory", cfg.StubStore)
	assert.False(t, cfg.AWSEnabled())
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("FEED_TTL", "90s")
	t.Setenv("FEED_REQUEST_TIMEOUT", "nonsense")
	t.Setenv("STUB_STORE", "Dynamo")
	t.Setenv("AWS_REGION", "eu-west-1")

	cfg := Load()
	assert.Equal(t, 90*time.Second, cfg.FeedTTL)
	assert.Equal(t, models.DefaultRequestTimeout, cfg.FeedTimeout)
	assert.Equal(t, "dynamo", cfg.StubStore)
	assert.True(t, cfg.AWSEnabled())
}
