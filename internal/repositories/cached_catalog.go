package repositories

import (
	"context"
	"github.com/maxaizer/career-bot/internal/domain/models"
	gocache "github.com/patrickmn/go-cache"
	"time"
)

type jobRepository interface {
	All(ctx context.Context) ([]models.JobPosting, error)
}

type postRepository interface {
	All(ctx context.Context) ([]models.Post, error)
}

type notificationRepository interface {
	History(ctx context.Context) ([]models.NotificationHistoryItem, error)
}

const (
	jobsKey    = "jobs"
	postsKey   = "posts"
	historyKey = "history"
)

// CachedCatalog serves the seed data every freshly mounted screen starts from.
type CachedCatalog struct {
	jobs          jobRepository
	posts         postRepository
	notifications notificationRepository
	cache         *gocache.Cache
}

func NewCachedCatalog(jobs jobRepository, posts postRepository, notifications notificationRepository) *CachedCatalog {
	return &CachedCatalog{
		jobs:          jobs,
		posts:         posts,
		notifications: notifications,
		cache:         gocache.New(10*time.Minute, 20*time.Minute),
	}
}

func (c *CachedCatalog) Jobs(ctx context.Context) ([]models.JobPosting, error) {
	return cached(c.cache, jobsKey, func() ([]models.JobPosting, error) { return c.jobs.All(ctx) })
}

func (c *CachedCatalog) Posts(ctx context.Context) ([]models.Post, error) {
	return cached(c.cache, postsKey, func() ([]models.Post, error) { return c.posts.All(ctx) })
}

func (c *CachedCatalog) NotificationHistory(ctx context.Context) ([]models.NotificationHistoryItem, error) {
	return cached(c.cache, historyKey, func() ([]models.NotificationHistoryItem, error) {
		return c.notifications.History(ctx)
	})
}

// cached returns a copy so callers never share the cached backing array.
func cached[T any](cache *gocache.Cache, key string, load func() ([]T, error)) ([]T, error) {
	if value, found := cache.Get(key); found {
		return clone(value.([]T)), nil
	}

	items, err := load()
	if err != nil {
		return nil, err
	}

	cache.SetDefault(key, clone(items))
	return items, nil
}

func clone[T any](items []T) []T {
	result := make([]T, len(items))
	copy(result, items)
	return result
}
