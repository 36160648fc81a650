package featureflags

import (
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnvManager_Defaults(t *testing.T) {
	manager := NewEnvManager("TEST_FEATURE_")
	ctx := context.Background()

	assert.True(t, manager.IsEnabled(ctx, HackerNewsEnabled))
	assert.True(t, manager.IsEnabled(ctx, RedditEnabled))
	assert.True(t, manager.IsEnabled(ctx, CacheEnabled))
	assert.True(t, manager.IsEnabled(ctx, RateLimitEnabled))
	assert.False(t, manager.IsEnabled(ctx, TracingEnabled))
}

func TestEnvManager_EnvValues(t *testing.T) {
	tests := []struct {
		name     string
		flag     FeatureFlag
		value    string
		expected bool
	}{
		{"true lowercase", TracingEnabled, "true", true},
		{"TRUE uppercase", TracingEnabled, "TRUE", true},
		{"1 numeric", TracingEnabled, "1", true},
		{"ENABLED", TracingEnabled, "ENABLED", true},
		{"false disables default-on flag", RedditEnabled, "false", false},
		{"0 disables default-on flag", CacheEnabled, "0", false},
		{"disabled", HackerNewsEnabled, "disabled", false},
		{"unrecognised keeps default", RedditEnabled, "yes", true},
		{"unrecognised keeps default off", TracingEnabled, "yes", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TEST_FEATURE_"+strings.ToUpper(string(tt.flag)), tt.value)
			manager := NewEnvManager("TEST_FEATURE_")
			assert.Equal(t, tt.expected, manager.IsEnabled(context.Background(), tt.flag))
		})
	}
}

func TestEnvManager_OverrideTakesPrecedence(t *testing.T) {
	t.Setenv("TEST_FEATURE_CACHE_ENABLED", "true")
	manager := NewEnvManager("TEST_FEATURE_")
	ctx := context.Background()

	assert.True(t, manager.IsEnabled(ctx, CacheEnabled))

	manager.SetEnabled(CacheEnabled, false)
	assert.False(t, manager.IsEnabled(ctx, CacheEnabled))
}

func TestEnvManager_GetAllFlags(t *testing.T) {
	manager := NewEnvManager("TEST_FEATURE_")
	manager.SetEnabled(TracingEnabled, true)

	flags := manager.GetAllFlags()
	assert.Len(t, flags, len(AllFlags))
	assert.True(t, flags[TracingEnabled])
	assert.True(t, flags[RedditEnabled])
}

func TestStaticManager(t *testing.T) {
	manager := NewStaticManager(map[FeatureFlag]bool{
		HackerNewsEnabled: true,
		RedditEnabled:     false,
	})
	ctx := context.Background()

	assert.True(t, manager.IsEnabled(ctx, HackerNewsEnabled))
	assert.False(t, manager.IsEnabled(ctx, RedditEnabled))
	assert.False(t, manager.IsEnabled(ctx, CacheEnabled)) // Not in initial map

	manager.SetEnabled(CacheEnabled, true)
	assert.True(t, manager.IsEnabled(ctx, CacheEnabled))
	assert.Len(t, manager.GetAllFlags(), 3)
}

func TestContextIntegration(t *testing.T) {
	manager := NewStaticManager(map[FeatureFlag]bool{RedditEnabled: true})
	ctx := WithManager(context.Background(), manager)

	assert.True(t, IsEnabled(ctx, RedditEnabled))
	assert.False(t, IsEnabled(ctx, HackerNewsEnabled))
	assert.True(t, IsEnabledForUser(ctx, RedditEnabled, "user-1"))
}

func TestFromContext_DefaultManager(t *testing.T) {
	ctx := context.Background()

	// Default manager disables all features
	assert.False(t, IsEnabled(ctx, HackerNewsEnabled))
	assert.False(t, IsEnabled(ctx, RedditEnabled))
}

func TestConcurrentAccess(t *testing.T) {
	manager := NewEnvManager("TEST_FEATURE_")
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			manager.SetEnabled(CacheEnabled, i%2 == 0)
		}(i)
		go func() {
			defer wg.Done()
			manager.IsEnabled(ctx, CacheEnabled)
		}()
	}
	wg.Wait()
}
