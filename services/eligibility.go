package services

import "time"

// OrderingGate is consulted before any item is added to a cart. It answers
// whether ordering is currently permitted from this context (service window,
// delivery area, maintenance switch). Implementations must be cheap: the gate
// is checked on every add.
type OrderingGate interface {
	OrderingAllowed() bool
}

// AlwaysOpen permits ordering unconditionally.
type AlwaysOpen struct{}

func (AlwaysOpen) OrderingAllowed() bool { return true }

// ServiceWindow permits ordering between OpenHour (inclusive) and CloseHour
// (exclusive) in local time. A window of [0, 24) never closes.
type ServiceWindow struct {
	OpenHour  int
	CloseHour int
	Now       func() time.Time // nil means time.Now
}

func (w ServiceWindow) OrderingAllowed() bool {
	now := time.Now
	if w.Now != nil {
		now = w.Now
	}
	h := now().Hour()
	return h >= w.OpenHour && h < w.CloseHour
}
