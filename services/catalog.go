package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"zaykaa/models"
	"zaykaa/storage"
)

// CatalogStore holds the authoritative in-memory menu. Load and Refresh pull
// from the remote JSON source; every successful replace is mirrored to local
// storage so a session without network still renders a catalog. The store
// always ends up in some non-empty state: remote, then mirror, then the
// built-in defaults.
type CatalogStore struct {
	mu          sync.RWMutex
	items       []models.MenuItem
	lastUpdated string // version marker from the source, empty when unknown
	lastSync    time.Time
	closed      bool

	url    string
	client *http.Client
	mirror storage.MirrorStore
}

func NewCatalogStore(remoteURL string, fetchTimeout time.Duration, mirror storage.MirrorStore) *CatalogStore {
	if fetchTimeout <= 0 {
		fetchTimeout = 10 * time.Second
	}
	return &CatalogStore{
		url:    remoteURL,
		client: &http.Client{Timeout: fetchTimeout},
		mirror: mirror,
	}
}

// Load initializes the store. It never fails: remote problems degrade to the
// local mirror, and a missing mirror degrades to the built-in defaults.
func (s *CatalogStore) Load(ctx context.Context) {
	snap, err := s.fetchRemote(ctx)
	if err == nil {
		s.apply(ctx, snap.Items, snap.LastUpdated, true)
		return
	}
	log.Printf("catalog: remote load failed, trying mirror: %v", err)

	if snap, err := s.loadMirror(ctx); err == nil {
		s.apply(ctx, snap.Items, snap.LastUpdated, false)
		return
	} else if !errors.Is(err, storage.ErrNotFound) {
		log.Printf("catalog: mirror load failed: %v", err)
	}

	log.Printf("catalog: using built-in defaults")
	s.apply(ctx, DefaultMenuItems(), "", false)
}

// Refresh re-fetches the remote catalog and replaces the in-memory one only
// when it actually changed: by lastUpdated when both sides carry one, else by
// a cheap item-count comparison. Replacement happens under the store lock at
// completion time, so when refreshes overlap the last completed fetch wins.
func (s *CatalogStore) Refresh(ctx context.Context) (bool, error) {
	snap, err := s.fetchRemote(ctx)
	if err != nil {
		return false, err
	}

	s.mu.RLock()
	changed := s.isStale(snap)
	s.mu.RUnlock()
	if !changed {
		return false, nil
	}

	s.apply(ctx, snap.Items, snap.LastUpdated, true)
	return true, nil
}

func (s *CatalogStore) isStale(snap models.CatalogSnapshot) bool {
	if s.lastUpdated != "" && snap.LastUpdated != "" {
		return s.lastUpdated != snap.LastUpdated
	}
	return len(s.items) != len(snap.Items)
}

// Items returns a copy of the current catalog.
func (s *CatalogStore) Items() []models.MenuItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.MenuItem, len(s.items))
	copy(out, s.items)
	return out
}

// LastUpdated returns the current version marker (empty when unknown).
func (s *CatalogStore) LastUpdated() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastUpdated
}

// Stats computes derived counts fresh from the current state. The catalog is
// small; caching would only add staleness.
func (s *CatalogStore) Stats() models.MenuStats {
	s.mu.RLock()
	items := s.items
	lastSync := s.lastSync
	s.mu.RUnlock()

	snap := models.NewCatalogSnapshot(items, "")
	stats := models.MenuStats{
		TotalItems: snap.TotalItems,
		Categories: snap.Categories,
		Offers:     snap.Offers,
		VegItems:   snap.VegItems,
	}
	if !lastSync.IsZero() {
		t := lastSync
		stats.LastSync = &t
	}
	return stats
}

// Replace swaps in a new catalog wholesale and persists it as the new mirror.
// The admin editor uses this after every mutation.
func (s *CatalogStore) Replace(ctx context.Context, items []models.MenuItem, lastUpdated string) {
	s.apply(ctx, items, lastUpdated, true)
}

// ResetToDefaults discards all persisted and remote overrides and restores
// the built-in catalog.
func (s *CatalogStore) ResetToDefaults(ctx context.Context) {
	s.apply(ctx, DefaultMenuItems(), "", false)
	for _, key := range []string{storage.KeyMenuMirror, storage.KeyMenuStats, storage.KeySavedDefault} {
		if err := s.mirror.Delete(ctx, key); err != nil {
			log.Printf("catalog: delete mirror key %s: %v", key, err)
		}
	}
}

// Close marks the store torn down. A fetch still in flight may complete, but
// its result is discarded.
func (s *CatalogStore) Close() {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()
}

func (s *CatalogStore) apply(ctx context.Context, items []models.MenuItem, lastUpdated string, persist bool) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.items = items
	s.lastUpdated = lastUpdated
	s.lastSync = time.Now()
	s.mu.Unlock()

	if persist {
		s.persistMirror(ctx, items, lastUpdated)
	}
}

// persistMirror writes the full snapshot and the derived-stats blob. Failures
// are logged only: in-memory state stays authoritative for the session.
func (s *CatalogStore) persistMirror(ctx context.Context, items []models.MenuItem, lastUpdated string) {
	if lastUpdated == "" {
		lastUpdated = time.Now().UTC().Format(time.RFC3339)
	}
	snap := models.NewCatalogSnapshot(items, lastUpdated)

	if data, err := json.Marshal(snap); err != nil {
		log.Printf("catalog: marshal mirror: %v", err)
	} else if err := s.mirror.Put(ctx, storage.KeyMenuMirror, data); err != nil {
		log.Printf("catalog: persist mirror: %v", err)
	}

	stats := models.MenuStats{
		TotalItems: snap.TotalItems,
		Categories: snap.Categories,
		Offers:     snap.Offers,
		VegItems:   snap.VegItems,
	}
	if data, err := json.Marshal(stats); err != nil {
		log.Printf("catalog: marshal stats: %v", err)
	} else if err := s.mirror.Put(ctx, storage.KeyMenuStats, data); err != nil {
		log.Printf("catalog: persist stats: %v", err)
	}
}

func (s *CatalogStore) loadMirror(ctx context.Context) (models.CatalogSnapshot, error) {
	data, err := s.mirror.Get(ctx, storage.KeyMenuMirror)
	if err != nil {
		return models.CatalogSnapshot{}, err
	}
	var snap models.CatalogSnapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return models.CatalogSnapshot{}, fmt.Errorf("unmarshal mirror: %w", err)
	}
	if len(snap.Items) == 0 {
		return models.CatalogSnapshot{}, storage.ErrNotFound
	}
	return snap, nil
}

func (s *CatalogStore) fetchRemote(ctx context.Context) (models.CatalogSnapshot, error) {
	if s.url == "" {
		return models.CatalogSnapshot{}, fmt.Errorf("no remote menu source configured")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return models.CatalogSnapshot{}, err
	}
	req.Header.Set("Cache-Control", "no-store")

	resp, err := s.client.Do(req)
	if err != nil {
		return models.CatalogSnapshot{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return models.CatalogSnapshot{}, fmt.Errorf("menu source returned %s", resp.Status)
	}

	var snap models.CatalogSnapshot
	if err := json.NewDecoder(resp.Body).Decode(&snap); err != nil {
		return models.CatalogSnapshot{}, fmt.Errorf("decode menu payload: %w", err)
	}
	if snap.Items == nil {
		return models.CatalogSnapshot{}, fmt.Errorf("menu payload has no items array")
	}
	return snap, nil
}
