package repositories

import (
	"context"
	"github.com/maxaizer/career-bot/internal/domain/models"
	"gorm.io/gorm"
)

type Posts struct {
	db *gorm.DB
}

func NewPostsRepository(db *gorm.DB) *Posts {
	return &Posts{db: db}
}

func (repo *Posts) All(ctx context.Context) ([]models.Post, error) {

	var posts []models.Post
	if err := repo.db.WithContext(ctx).Order("rowid").Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}
