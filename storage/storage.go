package storage

import (
	"context"
	"errors"

	"zaykaa/models"
)

// ErrNotFound is returned when a key has no persisted value.
var ErrNotFound = errors.New("not found")

// MirrorStore persists small JSON blobs by key: the local catalog mirror,
// the derived-stats blob, and the optional saved-default override.
// Put must be atomic: either the new value is fully visible or the old one is.
type MirrorStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// CartStore persists per-user cart snapshots. Delete removes the row
// entirely, which is distinct from saving an empty list.
type CartStore interface {
	Load(ctx context.Context, userID string) ([]models.CartLine, error)
	Save(ctx context.Context, userID string, lines []models.CartLine) error
	Delete(ctx context.Context, userID string) error
}

// Well-known mirror keys, stable across sessions.
const (
	KeyMenuMirror   = "menu:mirror"
	KeyMenuStats    = "menu:stats"
	KeySavedDefault = "menu:saved_default"
)
