package screens

import (
	"github.com/maxaizer/career-bot/internal/domain/models"
	"github.com/maxaizer/career-bot/internal/metrics"
	"github.com/maxaizer/career-bot/internal/state"
	log "github.com/sirupsen/logrus"
	"sync"
)

func defaultChannels() []models.NotificationChannel {
	return []models.NotificationChannel{
		{ID: "push", Name: "Push Notifications", Enabled: true},
		{ID: "email", Name: "Email Notifications", Enabled: true},
		{ID: "sms", Name: "SMS Notifications", Enabled: false},
		{ID: "whatsapp", Name: "WhatsApp Notifications", Enabled: true},
	}
}

func defaultPreferences() []models.NotificationPreference {
	return []models.NotificationPreference{
		{ID: "jobs", Title: "New Job Matches",
			Description: "Get notified when new jobs match your preferences", Enabled: true},
		{ID: "applications", Title: "Application Updates",
			Description: "Receive updates about your job applications", Enabled: true},
		{ID: "messages", Title: "New Messages",
			Description: "Get notified when you receive new messages", Enabled: true},
		{ID: "community", Title: "Community Activity",
			Description: "Stay updated with community discussions", Enabled: false},
	}
}

type Alerts struct {
	mu          sync.Mutex
	channels    state.Store[models.NotificationChannel]
	preferences state.Store[models.NotificationPreference]
	history     []models.NotificationHistoryItem
}

func NewAlerts(history []models.NotificationHistoryItem, options Options) *Alerts {
	options.setDefaults()
	items := make([]models.NotificationHistoryItem, len(history))
	copy(items, history)
	return &Alerts{
		channels:    state.NewStore(options.IDs, defaultChannels()...),
		preferences: state.NewStore(options.IDs, defaultPreferences()...),
		history:     items,
	}
}

func (a *Alerts) Route() Route {
	return RouteAlerts
}

func (a *Alerts) Close() {}

func (a *Alerts) Channels() []models.NotificationChannel {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.channels.All()
}

func (a *Alerts) Preferences() []models.NotificationPreference {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.preferences.All()
}

func (a *Alerts) History() []models.NotificationHistoryItem {
	a.mu.Lock()
	defer a.mu.Unlock()
	items := make([]models.NotificationHistoryItem, len(a.history))
	copy(items, a.history)
	return items
}

func (a *Alerts) UnreadCount() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	unread := 0
	for _, item := range a.history {
		if !item.Read {
			unread++
		}
	}
	return unread
}

// ToggleChannel flips the channel's enabled flag; unknown ids are ignored.
func (a *Alerts) ToggleChannel(id string) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if _, found := a.channels.Get(id); !found {
		log.Debugf("notification channel %s not found, toggle ignored", id)
		return
	}
	a.channels, _ = a.channels.Apply(id, func(c models.NotificationChannel) (models.NotificationChannel, error) {
		return c.Toggled(), nil
	})
	metrics.ScreenOperationsCounter.WithLabelValues(string(RouteAlerts), "toggle_channel").Inc()
}

// TogglePreference flips the preference's enabled flag; unknown ids are ignored.
func (a *Alerts) TogglePreference(id string) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if _, found := a.preferences.Get(id); !found {
		log.Debugf("notification preference %s not found, toggle ignored", id)
		return
	}
	a.preferences, _ = a.preferences.Apply(id, func(p models.NotificationPreference) (models.NotificationPreference, error) {
		return p.Toggled(), nil
	})
	metrics.ScreenOperationsCounter.WithLabelValues(string(RouteAlerts), "toggle_preference").Inc()
}
