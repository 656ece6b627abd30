package screens

import (
	"context"
	"github.com/maxaizer/career-bot/internal/domain/models"
	"github.com/maxaizer/career-bot/internal/state"
	"github.com/pkg/errors"
	"sync"
	"time"
)

const testReply = "I'm processing your request."

type stubResponder struct {
	mu      sync.Mutex
	prompts []string
	err     error
}

func (r *stubResponder) Respond(_ context.Context, text string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.prompts = append(r.prompts, text)
	if r.err != nil {
		return "", r.err
	}
	return testReply, nil
}

func (r *stubResponder) calls() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.prompts)
}

type stubCatalog struct {
	jobs    []models.JobPosting
	posts   []models.Post
	history []models.NotificationHistoryItem
	err     error
}

func (c *stubCatalog) Jobs(_ context.Context) ([]models.JobPosting, error) {
	return c.jobs, c.err
}

func (c *stubCatalog) Posts(_ context.Context) ([]models.Post, error) {
	return c.posts, c.err
}

func (c *stubCatalog) NotificationHistory(_ context.Context) ([]models.NotificationHistoryItem, error) {
	return c.history, c.err
}

var errCatalog = errors.New("catalog unavailable")

// frozenClock always returns the same instant.
func frozenClock() func() time.Time {
	at := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	return func() time.Time { return at }
}

func testOptions(delay time.Duration) Options {
	return Options{
		ChatReplyDelay: delay,
		RefreshDelay:   delay,
		IDs:            state.SequentialIDs(),
	}
}

func testJobs() []models.JobPosting {
	return []models.JobPosting{
		{ID: "1", Title: "Senior Frontend Developer", Company: "TechCorp Solutions",
			Type: models.FullTime, WorkLocation: models.Remote},
		{ID: "2", Title: "Machine Learning Engineer", Company: "AI Innovations",
			Type: models.FullTime, WorkLocation: models.Hybrid},
		{ID: "3", Title: "Product Design Intern", Company: "Creative Studios",
			Type: models.Internship, WorkLocation: models.OnSite},
	}
}

func testPosts() []models.Post {
	return []models.Post{
		{ID: "1", Author: models.Author{Name: "Sarah Chen"}, Likes: 10, IsLiked: false},
		{ID: "2", Author: models.Author{Name: "Alex Kumar"}, Likes: 0, IsLiked: true},
	}
}
