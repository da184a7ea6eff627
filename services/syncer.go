package services

import (
	"context"
	"log"
	"time"
)

// Syncer refreshes the catalog from its source once at startup and then on a
// fixed interval, until Stop. TriggerNow runs a user-initiated refresh out of
// schedule. Overlapping refreshes are tolerated: CatalogStore applies results
// in completion order.
type Syncer struct {
	store    *CatalogStore
	interval time.Duration
	trigger  chan struct{}
	stop     chan struct{}
}

func NewSyncer(store *CatalogStore, interval time.Duration) *Syncer {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	return &Syncer{
		store:    store,
		interval: interval,
		trigger:  make(chan struct{}, 1),
		stop:     make(chan struct{}),
	}
}

// Start runs the refresh loop until Stop is called or ctx is done.
func (s *Syncer) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.refresh(ctx)
	for {
		select {
		case <-ticker.C:
			s.refresh(ctx)
		case <-s.trigger:
			s.refresh(ctx)
		case <-s.stop:
			return
		case <-ctx.Done():
			return
		}
	}
}

// TriggerNow requests an immediate refresh. If one is already queued the
// request coalesces with it.
func (s *Syncer) TriggerNow() {
	select {
	case s.trigger <- struct{}{}:
	default:
	}
}

// Stop ends the loop. An in-flight fetch is not cancelled; its result is
// discarded by the store once closed.
func (s *Syncer) Stop() {
	close(s.stop)
}

func (s *Syncer) refresh(ctx context.Context) {
	changed, err := s.store.Refresh(ctx)
	if err != nil {
		log.Printf("syncer: refresh failed: %v", err)
		return
	}
	if changed {
		log.Printf("syncer: menu updated from source")
	}
}
