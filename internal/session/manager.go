// Package session hosts navigation: every user has at most one mounted screen, and
// leaving it (by navigating, ending the session or idling out) unmounts it.
package session

import (
	"context"
	"github.com/asaskevich/EventBus"
	"github.com/maxaizer/career-bot/internal/domain/events"
	"github.com/maxaizer/career-bot/internal/metrics"
	"github.com/maxaizer/career-bot/internal/screens"
	gocache "github.com/patrickmn/go-cache"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"strconv"
	"sync"
	"time"
)

type screenFactory interface {
	Create(ctx context.Context, route screens.Route, owner screens.Owner) (screens.Screen, error)
}

type entry struct {
	owner  screens.Owner
	screen screens.Screen
	reason string
}

type Manager struct {
	factory screenFactory
	bus     EventBus.Bus
	cache   *gocache.Cache
	mu      sync.Mutex
	locks   map[int64]*sync.Mutex
}

// NewManager creates a manager whose sessions expire after idleTimeout without
// activity. Expired sessions are unmounted by Sweep.
func NewManager(factory screenFactory, bus EventBus.Bus, idleTimeout time.Duration) (*Manager, error) {

	if factory == nil {
		return nil, errors.New("factory is nil")
	}

	if bus == nil {
		return nil, errors.New("bus is nil")
	}

	if idleTimeout <= 0 {
		return nil, errors.New("idle timeout must be greater than zero")
	}

	m := &Manager{
		factory: factory,
		bus:     bus,
		cache:   gocache.New(idleTimeout, 0),
		locks:   map[int64]*sync.Mutex{},
	}
	m.cache.OnEvicted(m.onEvicted)
	return m, nil
}

// Navigate unmounts the user's current screen, if any, and mounts a fresh one for route.
func (m *Manager) Navigate(ctx context.Context, owner screens.Owner, route screens.Route) (screens.Screen, error) {

	if _, err := screens.ToRoute(string(route)); err != nil {
		return nil, err
	}

	lock := m.userLock(owner.UserID)
	lock.Lock()
	defer lock.Unlock()
	m.expire()

	screen, err := m.factory.Create(ctx, route, owner)
	if err != nil {
		return nil, errors.Wrapf(err, "mount %s", route)
	}

	key := cacheKey(owner.UserID)
	if value, found := m.cache.Get(key); found {
		m.unmount(value.(*entry), events.UnmountNavigation)
	}

	m.cache.SetDefault(key, &entry{owner: owner, screen: screen})
	metrics.ScreenMountsCounter.WithLabelValues(string(route)).Inc()
	metrics.ActiveSessions.Set(float64(m.cache.ItemCount()))

	m.bus.Publish(events.ScreenMountedTopic, events.ScreenMounted{
		UserID: owner.UserID,
		ChatID: owner.ChatID,
		Route:  string(route),
	})
	log.Debugf("user %d navigated to %s", owner.UserID, route)
	return screen, nil
}

// Current returns the user's mounted screen and extends the session's idle timeout.
func (m *Manager) Current(userID int64) (screens.Screen, bool) {

	lock := m.userLock(userID)
	lock.Lock()
	defer lock.Unlock()
	m.expire()

	key := cacheKey(userID)
	value, found := m.cache.Get(key)
	if !found {
		return nil, false
	}
	m.cache.SetDefault(key, value)
	return value.(*entry).screen, true
}

// End unmounts the user's screen and forgets the session.
func (m *Manager) End(userID int64) {

	lock := m.userLock(userID)
	lock.Lock()
	defer lock.Unlock()
	m.expire()

	key := cacheKey(userID)
	value, found := m.cache.Get(key)
	if !found {
		return
	}
	value.(*entry).reason = events.UnmountEnded
	m.cache.Delete(key)
	metrics.ActiveSessions.Set(float64(m.cache.ItemCount()))
}

// Sweep unmounts every session that has been idle longer than the timeout.
func (m *Manager) Sweep() int {
	return m.expire()
}

// expire must run before a session is read or replaced: Get hides expired
// entries and SetDefault overwrites them without calling onEvicted.
func (m *Manager) expire() int {
	before := m.cache.ItemCount()
	m.cache.DeleteExpired()
	count := m.cache.ItemCount()
	metrics.ActiveSessions.Set(float64(count))
	return before - count
}

func (m *Manager) Count() int {
	return m.cache.ItemCount()
}

// onEvicted runs for deletions and expirations; navigation replaces entries without it.
func (m *Manager) onEvicted(_ string, value interface{}) {
	e := value.(*entry)
	reason := e.reason
	if reason == "" {
		reason = events.UnmountExpired
	}
	m.unmount(e, reason)
}

func (m *Manager) unmount(e *entry, reason string) {
	e.screen.Close()
	m.bus.Publish(events.ScreenUnmountedTopic, events.ScreenUnmounted{
		UserID: e.owner.UserID,
		ChatID: e.owner.ChatID,
		Route:  string(e.screen.Route()),
		Reason: reason,
	})
	log.Debugf("unmounted %s for user %d: %s", e.screen.Route(), e.owner.UserID, reason)
}

func (m *Manager) userLock(userID int64) *sync.Mutex {
	m.mu.Lock()
	defer m.mu.Unlock()
	lock, ok := m.locks[userID]
	if !ok {
		lock = &sync.Mutex{}
		m.locks[userID] = lock
	}
	return lock
}

func cacheKey(userID int64) string {
	return strconv.FormatInt(userID, 10)
}
