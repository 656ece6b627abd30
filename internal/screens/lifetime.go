package screens

import (
	"context"
	"sync"
	"time"
)

// lifetime owns the timers a screen schedules and stops them all on close.
type lifetime struct {
	ctx    context.Context
	cancel context.CancelFunc
	mu     sync.Mutex
	timers map[*time.Timer]struct{}
}

func newLifetime() *lifetime {
	ctx, cancel := context.WithCancel(context.Background())
	return &lifetime{ctx: ctx, cancel: cancel, timers: map[*time.Timer]struct{}{}}
}

// after runs fn once d has elapsed unless the lifetime ends first.
func (l *lifetime) after(d time.Duration, fn func(ctx context.Context)) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.ctx.Err() != nil {
		return false
	}

	var timer *time.Timer
	timer = time.AfterFunc(d, func() {
		l.mu.Lock()
		delete(l.timers, timer)
		l.mu.Unlock()

		if l.ctx.Err() != nil {
			return
		}
		fn(l.ctx)
	})
	l.timers[timer] = struct{}{}
	return true
}

func (l *lifetime) pending() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.timers)
}

func (l *lifetime) close() {
	l.cancel()

	l.mu.Lock()
	defer l.mu.Unlock()
	for timer := range l.timers {
		timer.Stop()
		delete(l.timers, timer)
	}
}
