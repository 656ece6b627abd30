package repositories

import (
	"context"
	"github.com/maxaizer/career-bot/internal/domain/models"
	"gorm.io/gorm"
)

type Jobs struct {
	db *gorm.DB
}

func NewJobsRepository(db *gorm.DB) *Jobs {
	return &Jobs{db: db}
}

func (repo *Jobs) All(ctx context.Context) ([]models.JobPosting, error) {

	var jobs []models.JobPosting
	if err := repo.db.WithContext(ctx).Order("rowid").Find(&jobs).Error; err != nil {
		return nil, err
	}
	return jobs, nil
}
