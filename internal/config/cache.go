package config

import (
	"os"
	"time"
)

// CacheConfig defines settings for the profile response cache.
// When Enabled is false or no Redis client could be connected, the
// cache middleware becomes a pass-through. TTL bounds how stale a
// cached profile may be served; writes invalidate eagerly, so the
// TTL only matters for writes that bypass this service. Prefix
// namespaces the keys inside a shared Redis instance.
type CacheConfig struct {
	Enabled bool
	TTL     time.Duration
	Prefix  string
}

// LoadCacheConfig reads environment variables to build a
// CacheConfig. Defaults are used when variables are not set.
func LoadCacheConfig() CacheConfig {
	return CacheConfig{
		Enabled: getenv("CACHE_ENABLED", "true") == "true",
		TTL:     parseDur(getenv("CACHE_TTL", "30s")),
		Prefix:  getenv("CACHE_PREFIX", "cache"),
	}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func parseDur(s string) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		return time.Second
	}
	return d
}
