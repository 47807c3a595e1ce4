package config

import (
	"os"
	"strings"
)

// Backends accepted for Config.Store.
const (
	StoreFile   = "file"
	StoreRedis  = "redis"
	StoreMemory = "mem"
)

// Config is the resolved runtime configuration.
type Config struct {
	Store       string // file | redis | mem
	File        string // path of the JSON file store; empty = ./tada.json
	RedisURL    string
	RedisPrefix string
	Theme       string // classic | neon | mono
	NoColor     bool
	Debug       bool
}

// FromEnv builds a Config from TADA_* environment variables with defaults
// filled in. Flags are layered on top by the caller.
func FromEnv() Config {
	return fromLookup(os.Getenv)
}

func fromLookup(get func(string) string) Config {
	c := Config{
		Store:       StoreFile,
		RedisURL:    "redis://127.0.0.1:6379/0",
		RedisPrefix: "tada:",
		Theme:       "classic",
	}
	if v := get("TADA_STORE"); v != "" {
		c.Store = v
	}
	if v := strings.TrimSpace(get("TADA_FILE")); v != "" {
		c.File = v
	}
	if v := strings.TrimSpace(get("TADA_REDIS_URL")); v != "" {
		c.RedisURL = v
	}
	if v := get("TADA_REDIS_PREFIX"); v != "" {
		c.RedisPrefix = v
	}
	if v := strings.TrimSpace(get("TADA_THEME")); v != "" {
		c.Theme = v
	}
	c.NoColor = truthy(get("NO_COLOR")) || truthy(get("TADA_NO_COLOR"))
	c.Debug = truthy(get("TADA_DEBUG"))
	c.Normalize()
	return c
}

// Normalize trims and lowercases the backend and theme names. Call it again
// after flags have been applied.
func (c *Config) Normalize() {
	c.Store = strings.ToLower(strings.TrimSpace(c.Store))
	c.Theme = strings.ToLower(strings.TrimSpace(c.Theme))
}

func truthy(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}
