package localcache

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	gormlogger "gorm.io/gorm/logger"
)

// Cache is the device-local fallback tier: a tiny embedded key/value store
// consulted only when the remote document store is unreachable. It is never a
// source of truth once the remote store is reachable again.
//
// Get and Set never fail from the caller's perspective; storage errors are
// logged and absorbed, absent keys read as empty strings.
type Cache struct {
	db *gorm.DB
}

type cacheEntry struct {
	Key   string `gorm:"primaryKey"`
	Value string
}

// Open creates the cache under dataDir, or in memory when dataDir is empty
// (useful for tests).
func Open(dataDir string) (*Cache, error) {
	dsn := "file::memory:?cache=shared"
	if dataDir != "" {
		if err := os.MkdirAll(dataDir, 0o755); err != nil {
			return nil, err
		}
		dsn = filepath.Join(dataDir, "fallback_cache.sqlite")
	}

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:                 gormlogger.Discard,
		SkipDefaultTransaction: true,
	})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&cacheEntry{}); err != nil {
		return nil, err
	}

	return &Cache{db: db}, nil
}

func (c *Cache) Get(key string) string {
	var entry cacheEntry
	result := c.db.First(&entry, "key = ?", key)
	if result.Error != nil {
		if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
			log.Warn().Err(result.Error).Msg("Local cache read failed")
		}
		return ""
	}
	return entry.Value
}

func (c *Cache) Set(key string, value string) {
	result := c.db.
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(&cacheEntry{Key: key, Value: value})
	if result.Error != nil {
		log.Warn().Err(result.Error).Msg("Local cache write failed")
	}
}
