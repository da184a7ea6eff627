package handlers

import (
	"net/http"

	"zaykaa/services"
)

// MenuHandler serves the current catalog.
func MenuHandler(catalog *services.CatalogStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"lastUpdated": catalog.LastUpdated(),
			"items":       catalog.Items(),
		})
	}
}

// MenuStatsHandler serves derived catalog counts.
func MenuStatsHandler(catalog *services.CatalogStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, catalog.Stats())
	}
}

// MenuRefreshHandler queues a user-initiated sync from the remote source.
func MenuRefreshHandler(syncer *services.Syncer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		syncer.TriggerNow()
		writeJSON(w, http.StatusAccepted, map[string]string{"status": "refresh scheduled"})
	}
}
