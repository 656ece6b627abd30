// Package screens contains the per-screen state containers. A screen owns its records
// from mount until Close; nothing is shared between screens or kept after Close.
package screens

import (
	"context"
	"github.com/asaskevich/EventBus"
	"github.com/maxaizer/career-bot/internal/domain/models"
	"github.com/maxaizer/career-bot/internal/state"
	"github.com/pkg/errors"
	"time"
)

type Route string

const (
	RouteJobs      Route = "jobs"
	RouteResume    Route = "resume"
	RouteChat      Route = "chat"
	RouteAlerts    Route = "alerts"
	RouteCommunity Route = "community"
	RouteRegister  Route = "register"
)

var ErrUnknownRoute = errors.New("unknown route")

func Routes() []Route {
	return []Route{RouteJobs, RouteResume, RouteChat, RouteAlerts, RouteCommunity, RouteRegister}
}

func ToRoute(s string) (Route, error) {
	for _, route := range Routes() {
		if string(route) == s {
			return route, nil
		}
	}
	return "", errors.Wrapf(ErrUnknownRoute, "%q", s)
}

type Screen interface {
	Route() Route
	// Close unmounts the screen: pending timers are cancelled and no state change
	// happens afterwards.
	Close()
}

// Owner identifies who a mounted screen belongs to.
type Owner struct {
	UserID int64
	ChatID int64
}

type Catalog interface {
	Jobs(ctx context.Context) ([]models.JobPosting, error)
	Posts(ctx context.Context) ([]models.Post, error)
	NotificationHistory(ctx context.Context) ([]models.NotificationHistoryItem, error)
}

type Responder interface {
	Respond(ctx context.Context, text string) (string, error)
}

type Options struct {
	ChatReplyDelay  time.Duration
	RefreshDelay    time.Duration
	ApplyJobFilters bool
	IDs             state.IDGenerator
	Now             func() time.Time
}

func (o *Options) setDefaults() {
	if o.ChatReplyDelay == 0 {
		o.ChatReplyDelay = time.Second
	}
	if o.RefreshDelay == 0 {
		o.RefreshDelay = time.Second
	}
	if o.IDs == nil {
		o.IDs = state.NewUUID
	}
	if o.Now == nil {
		o.Now = time.Now
	}
}

type Factory struct {
	catalog   Catalog
	responder Responder
	bus       EventBus.Bus
	options   Options
}

func NewFactory(catalog Catalog, responder Responder, bus EventBus.Bus, options Options) (*Factory, error) {

	if catalog == nil {
		return nil, errors.New("catalog is nil")
	}

	if responder == nil {
		return nil, errors.New("responder is nil")
	}

	if bus == nil {
		return nil, errors.New("bus is nil")
	}

	options.setDefaults()
	return &Factory{catalog: catalog, responder: responder, bus: bus, options: options}, nil
}

// Create mounts a fresh screen for route. Seed data is loaded from the catalog.
func (f *Factory) Create(ctx context.Context, route Route, owner Owner) (Screen, error) {
	switch route {
	case RouteJobs:
		jobs, err := f.catalog.Jobs(ctx)
		if err != nil {
			return nil, errors.Wrap(err, "load jobs")
		}
		return NewJobs(owner, jobs, f.bus, f.options), nil
	case RouteResume:
		return NewResume(f.options), nil
	case RouteChat:
		return NewChat(owner, f.responder, f.bus, f.options), nil
	case RouteAlerts:
		history, err := f.catalog.NotificationHistory(ctx)
		if err != nil {
			return nil, errors.Wrap(err, "load notification history")
		}
		return NewAlerts(history, f.options), nil
	case RouteCommunity:
		posts, err := f.catalog.Posts(ctx)
		if err != nil {
			return nil, errors.Wrap(err, "load posts")
		}
		return NewCommunity(posts, f.options), nil
	case RouteRegister:
		return NewRegister(), nil
	default:
		return nil, errors.Wrapf(ErrUnknownRoute, "%q", route)
	}
}
