package platform

import (
	"fmt"
	"log"

	"github.com/go-redis/redis/v8"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Biswa2Das/marketing-storyline/models"
)

// NewDBConnection opens the optional history database. A nil db with a nil
// error means no DATABASE_URL is configured and history is disabled.
func NewDBConnection(dsn string) (*gorm.DB, error) {
	if dsn == "" {
		return nil, nil
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("getting underlying SQL DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("database connection test failed: %w", err)
	}

	if err := db.AutoMigrate(&models.ExtractionRecord{}, &models.StorylineRecord{}); err != nil {
		return nil, fmt.Errorf("migrating history tables: %w", err)
	}

	log.Println("Database connected successfully")
	return db, nil
}

// NewRedisClient initializes a Redis client for the shared cache backend.
func NewRedisClient(addr string) *redis.Client {
	if addr == "" {
		addr = "localhost:6379"
	}
	rdb := redis.NewClient(&redis.Options{
		Addr: addr,
	})
	log.Println("Redis client initialized")
	return rdb
}
