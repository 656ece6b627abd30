// Package app wires the catalog, screens and session host together.
package app

import (
	"github.com/asaskevich/EventBus"
	"github.com/maxaizer/career-bot/internal/config"
	"github.com/maxaizer/career-bot/internal/repositories"
	"github.com/maxaizer/career-bot/internal/screens"
	"github.com/maxaizer/career-bot/internal/services"
	"github.com/maxaizer/career-bot/internal/session"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type App struct {
	DbContext *repositories.DbContext
	Bus       EventBus.Bus
	Catalog   *repositories.CachedCatalog
	Sessions  *session.Manager
	janitor   *services.SessionJanitor
}

func New(cfg *config.Config) (*App, error) {

	dbContext, err := repositories.NewDbContext(cfg.DB.ConnectionString)
	if err != nil {
		return nil, errors.Wrap(err, "can't create db context")
	}

	if err = dbContext.Migrate(); err != nil {
		_ = dbContext.Close()
		return nil, errors.Wrap(err, "can't migrate db context")
	}

	catalog := repositories.NewCachedCatalog(
		repositories.NewJobsRepository(dbContext.DB),
		repositories.NewPostsRepository(dbContext.DB),
		repositories.NewNotificationsRepository(dbContext.DB),
	)

	bus := EventBus.New()

	factory, err := screens.NewFactory(catalog, services.NewScriptedResponder(cfg.Chat.Reply), bus, screens.Options{
		ChatReplyDelay:  cfg.Chat.ReplyDelay,
		RefreshDelay:    cfg.Jobs.RefreshDelay,
		ApplyJobFilters: cfg.Jobs.ApplyFilters,
	})
	if err != nil {
		_ = dbContext.Close()
		return nil, errors.Wrap(err, "can't create screen factory")
	}

	sessions, err := session.NewManager(factory, bus, cfg.Session.IdleTimeout)
	if err != nil {
		_ = dbContext.Close()
		return nil, errors.Wrap(err, "can't create session manager")
	}

	janitor, err := services.NewSessionJanitor(sessions, cfg.Session.SweepInterval)
	if err != nil {
		_ = dbContext.Close()
		return nil, errors.Wrap(err, "can't create session janitor")
	}

	return &App{DbContext: dbContext, Bus: bus, Catalog: catalog, Sessions: sessions, janitor: janitor}, nil
}

func (a *App) Close() {
	a.janitor.Stop()
	if err := a.DbContext.Close(); err != nil {
		log.Errorf("failed to close db context: %v", err)
	}
}
