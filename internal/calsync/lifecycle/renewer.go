package lifecycle

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

const (
	DefaultRenewalInterval = time.Hour
	DefaultStartupDelay    = 30 * time.Second
)

type renewalPass interface {
	RenewExpiring(ctx context.Context) RenewalReport
}

// Renewer runs renewal passes in the background: once shortly after Start,
// then on a fixed interval until Stop.
type Renewer struct {
	log          *slog.Logger
	pass         renewalPass
	startupDelay time.Duration
	interval     time.Duration

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

func NewRenewer(log *slog.Logger, pass renewalPass, startupDelay, interval time.Duration) *Renewer {
	if interval <= 0 {
		interval = DefaultRenewalInterval
	}
	if startupDelay < 0 {
		startupDelay = DefaultStartupDelay
	}

	return &Renewer{
		log:          log.With(slog.String("op", "calsync.lifecycle.Renewer")),
		pass:         pass,
		startupDelay: startupDelay,
		interval:     interval,
	}
}

// Start launches the loop. Calling Start on a running Renewer does nothing.
func (r *Renewer) Start(ctx context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.cancel != nil {
		return
	}

	ctx, cancel := context.WithCancel(ctx)
	r.cancel = cancel
	r.done = make(chan struct{})

	go r.loop(ctx, r.done)

	r.log.Info("renewal loop started",
		slog.Duration("startup_delay", r.startupDelay),
		slog.Duration("interval", r.interval),
	)
}

// Stop cancels the loop and waits for an in-flight pass to return.
func (r *Renewer) Stop() {
	r.mu.Lock()
	cancel, done := r.cancel, r.done
	r.cancel, r.done = nil, nil
	r.mu.Unlock()

	if cancel == nil {
		return
	}

	cancel()
	<-done

	r.log.Info("renewal loop stopped")
}

// RunOnce performs a single synchronous pass.
func (r *Renewer) RunOnce(ctx context.Context) RenewalReport {
	return r.pass.RenewExpiring(ctx)
}

func (r *Renewer) loop(ctx context.Context, done chan struct{}) {
	defer close(done)

	startup := time.NewTimer(r.startupDelay)
	defer startup.Stop()

	select {
	case <-startup.C:
		r.RunOnce(ctx)
	case <-ctx.Done():
		return
	}

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			r.RunOnce(ctx)
		case <-ctx.Done():
			return
		}
	}
}
