package repositories

import (
	"fmt"
	"github.com/glebarez/sqlite"
	"github.com/maxaizer/career-bot/internal/domain/models"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type DbContext struct {
	DB *gorm.DB
}

func NewDbContext(connectionString string) (*DbContext, error) {
	db, err := gorm.Open(sqlite.Open(connectionString), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Error),
	})
	if err != nil {
		return nil, err
	}

	return &DbContext{DB: db}, nil
}

// Migrate creates the catalog tables and seeds each one that is still empty.
func (c *DbContext) Migrate() error {
	err := c.DB.AutoMigrate(models.JobPosting{})
	if err != nil {
		return fmt.Errorf("failed to migrate JobPosting entity: %w", err)
	}

	err = c.DB.AutoMigrate(models.Post{})
	if err != nil {
		return fmt.Errorf("failed to migrate Post entity: %w", err)
	}

	err = c.DB.AutoMigrate(models.NotificationHistoryItem{})
	if err != nil {
		return fmt.Errorf("failed to migrate NotificationHistoryItem entity: %w", err)
	}

	if err = populateIfEmpty(c.DB, &models.JobPosting{}, seedJobs()); err != nil {
		return fmt.Errorf("failed to populate jobs: %w", err)
	}

	if err = populateIfEmpty(c.DB, &models.Post{}, seedPosts()); err != nil {
		return fmt.Errorf("failed to populate posts: %w", err)
	}

	if err = populateIfEmpty(c.DB, &models.NotificationHistoryItem{}, seedNotificationHistory()); err != nil {
		return fmt.Errorf("failed to populate notification history: %w", err)
	}

	return nil
}

func populateIfEmpty[T any](db *gorm.DB, model *T, seed []T) error {
	var count int64
	if err := db.Model(model).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count rows: %w", err)
	}

	if count > 0 || len(seed) == 0 {
		return nil
	}
	return db.Create(&seed).Error
}

func (c *DbContext) Close() error {
	db, err := c.DB.DB()
	if err != nil {
		return err
	}

	return db.Close()
}
