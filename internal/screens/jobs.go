package screens

import (
	"context"
	"github.com/asaskevich/EventBus"
	"github.com/maxaizer/career-bot/internal/domain/events"
	"github.com/maxaizer/career-bot/internal/domain/models"
	"github.com/maxaizer/career-bot/internal/metrics"
	"github.com/maxaizer/career-bot/internal/state"
	"github.com/samber/lo"
	"strings"
	"sync"
	"time"
)

type Jobs struct {
	mu           sync.Mutex
	owner        Owner
	bus          EventBus.Bus
	jobs         []models.JobPosting
	query        string
	showFilters  bool
	filters      state.FilterSet
	applyFilters bool
	refreshing   bool
	refreshDelay time.Duration
	closed       bool
	lifetime     *lifetime
}

func NewJobs(owner Owner, jobs []models.JobPosting, bus EventBus.Bus, options Options) *Jobs {
	options.setDefaults()
	seed := make([]models.JobPosting, len(jobs))
	copy(seed, jobs)
	return &Jobs{
		owner:        owner,
		bus:          bus,
		jobs:         seed,
		filters:      state.NewFilterSet(),
		applyFilters: options.ApplyJobFilters,
		refreshDelay: options.RefreshDelay,
		lifetime:     newLifetime(),
	}
}

func (j *Jobs) Route() Route {
	return RouteJobs
}

// Jobs returns every posting regardless of filters or query.
func (j *Jobs) Jobs() []models.JobPosting {
	j.mu.Lock()
	defer j.mu.Unlock()
	jobs := make([]models.JobPosting, len(j.jobs))
	copy(jobs, j.jobs)
	return jobs
}

// Visible returns what the list shows. Filters and the search query are only applied
// when the screen was mounted with ApplyJobFilters.
func (j *Jobs) Visible() []models.JobPosting {
	j.mu.Lock()
	defer j.mu.Unlock()

	if !j.applyFilters {
		jobs := make([]models.JobPosting, len(j.jobs))
		copy(jobs, j.jobs)
		return jobs
	}

	query := strings.ToLower(strings.TrimSpace(j.query))
	return lo.Filter(j.jobs, func(job models.JobPosting, _ int) bool {
		if !state.Matches(job, j.filters) {
			return false
		}
		return query == "" ||
			strings.Contains(strings.ToLower(job.Title), query) ||
			strings.Contains(strings.ToLower(job.Company), query)
	})
}

func (j *Jobs) AppliesFilters() bool {
	return j.applyFilters
}

func (j *Jobs) ToggleFilter(category, value string) error {

	value, err := models.ToFilterValue(category, value)
	if err != nil {
		return err
	}

	j.mu.Lock()
	defer j.mu.Unlock()
	j.filters = j.filters.Toggle(category, value)
	metrics.ScreenOperationsCounter.WithLabelValues(string(RouteJobs), "toggle_filter").Inc()
	return nil
}

func (j *Jobs) ClearFilters() {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.filters = j.filters.Clear()
}

func (j *Jobs) Filters() state.FilterSet {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.filters
}

func (j *Jobs) ToggleShowFilters() bool {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.showFilters = !j.showFilters
	return j.showFilters
}

func (j *Jobs) ShowFilters() bool {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.showFilters
}

func (j *Jobs) SetQuery(query string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.query = query
}

func (j *Jobs) Query() string {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.query
}

// Refresh simulates reloading the list: the screen stays refreshing for the configured
// delay. Returns false if a refresh is already running or the screen is closed.
func (j *Jobs) Refresh() bool {
	j.mu.Lock()
	defer j.mu.Unlock()

	if j.closed || j.refreshing {
		return false
	}
	if !j.lifetime.after(j.refreshDelay, j.finishRefresh) {
		return false
	}
	j.refreshing = true
	return true
}

func (j *Jobs) finishRefresh(_ context.Context) {
	j.mu.Lock()
	if j.closed {
		j.mu.Unlock()
		return
	}
	j.refreshing = false
	j.mu.Unlock()

	j.bus.Publish(events.JobsRefreshedTopic, events.JobsRefreshed{UserID: j.owner.UserID, ChatID: j.owner.ChatID})
}

func (j *Jobs) IsRefreshing() bool {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.refreshing
}

func (j *Jobs) Close() {
	j.mu.Lock()
	defer j.mu.Unlock()
	if j.closed {
		return
	}
	j.closed = true
	j.refreshing = false
	j.lifetime.close()
}
