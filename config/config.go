package config

import (
	"fmt"
	"time"

	"github.com/go-pg/pg/v10"
)

const (
	defaultMaxRetries = 3
	defaultCacheTTL   = time.Minute
)

type Config struct {
	Database Database `toml:"database"`
	App      struct {
		Host string `toml:"host"`
		Port int    `toml:"port"`
	} `toml:"app"`
	Cache Cache `toml:"cache"`
	Admin struct {
		// Token protects the admin API. The admin API is not mounted when empty.
		Token string `toml:"token"`
	} `toml:"admin"`
}

type Database struct {
	URL             string        `toml:"url"`
	MaxConns        int           `toml:"max_conns"`
	MaxConnLifetime time.Duration `toml:"max_conn_lifetime"`
	LogQueries      bool          `toml:"log_queries"`
}

// Options builds go-pg connection options from the database section.
func (d Database) Options() (*pg.Options, error) {
	opt, err := pg.ParseURL(d.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database URL: %w", err)
	}

	opt.MaxRetries = defaultMaxRetries
	if d.MaxConns > 0 {
		opt.PoolSize = d.MaxConns
	}

	if d.MaxConnLifetime > 0 {
		opt.MaxConnAge = d.MaxConnLifetime
	}

	return opt, nil
}

type Cache struct {
	// Addr of the Redis server. Caching is disabled when empty.
	Addr     string        `toml:"addr"`
	Password string        `toml:"password"`
	DB       int           `toml:"db"`
	TTL      time.Duration `toml:"ttl"`
}

func (c Cache) Enabled() bool {
	return c.Addr != ""
}

// EntryTTL returns the configured TTL or a minute when unset.
func (c Cache) EntryTTL() time.Duration {
	if c.TTL <= 0 {
		return defaultCacheTTL
	}
	return c.TTL
}
