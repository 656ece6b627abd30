package repositories

import (
	"context"
	"github.com/maxaizer/career-bot/internal/domain/models"
	"gorm.io/gorm"
)

type Notifications struct {
	db *gorm.DB
}

func NewNotificationsRepository(db *gorm.DB) *Notifications {
	return &Notifications{db: db}
}

// History returns past notifications, newest first as they were seeded.
func (repo *Notifications) History(ctx context.Context) ([]models.NotificationHistoryItem, error) {

	var items []models.NotificationHistoryItem
	if err := repo.db.WithContext(ctx).Order("rowid").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}
