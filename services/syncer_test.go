package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"zaykaa/storage"
)

func TestSyncer_RefreshesOnStartAndTrigger(t *testing.T) {
	var hits atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		json.NewEncoder(w).Encode(remoteSnap("v1", item("1", "Samosa", 20)))
	}))
	defer srv.Close()

	store := NewCatalogStore(srv.URL, time.Second, storage.NewMemoryMirror())
	syncer := NewSyncer(store, time.Hour) // interval long enough to never fire here

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan struct{})
	go func() {
		syncer.Start(ctx)
		close(done)
	}()

	waitFor(t, func() bool { return hits.Load() >= 1 }, "startup refresh")
	syncer.TriggerNow()
	waitFor(t, func() bool { return hits.Load() >= 2 }, "manual refresh")

	syncer.Stop()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("syncer did not stop")
	}

	if len(store.Items()) != 1 {
		t.Errorf("catalog not populated by syncer: %+v", store.Items())
	}
}

func waitFor(t *testing.T, cond func() bool, what string) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("timed out waiting for %s", what)
}
