package services

import (
	"fmt"
	"github.com/pkg/errors"
	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"
	"time"
)

type sessionSweeper interface {
	Sweep() int
	Count() int
}

// SessionJanitor periodically unmounts sessions that went idle.
type SessionJanitor struct {
	sessions sessionSweeper
	cron     *cron.Cron
	interval time.Duration
}

func NewSessionJanitor(sessions sessionSweeper, interval time.Duration) (*SessionJanitor, error) {

	if sessions == nil {
		return nil, errors.New("sessions is nil")
	}

	if interval < time.Second {
		return nil, errors.New("sweep interval must be at least one second")
	}

	sj := &SessionJanitor{
		sessions: sessions,
		cron:     cron.New(),
		interval: interval,
	}

	_, err := sj.cron.AddFunc(fmt.Sprintf("@every %s", interval), sj.sweep)
	if err != nil {
		return nil, err
	}

	sj.cron.Start()
	log.Infof("session janitor started, sweep interval: %v", sj.interval)
	return sj, nil
}

func (sj *SessionJanitor) Stop() {
	<-sj.cron.Stop().Done()
}

func (sj *SessionJanitor) sweep() {
	removed := sj.sessions.Sweep()
	if removed > 0 {
		log.Infof("expired sessions were unmounted at %v, removed: %d, active: %d",
			time.Now(), removed, sj.sessions.Count())
	}
}
