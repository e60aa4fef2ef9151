package api

import (
	"time"

	"github.com/ShreyasBadgujar/hotel-booking/internal/plan"
	"github.com/ShreyasBadgujar/hotel-booking/internal/store"
)

// Handler holds shared dependencies for API handlers.
type Handler struct {
	store store.Store
	rates plan.Rates
	now   func() time.Time
}

// NewHandler creates a new API handler. now may be nil, in which case the
// wall clock is used; tests inject a fixed clock.
func NewHandler(s store.Store, rates plan.Rates, now func() time.Time) *Handler {
	if now == nil {
		now = time.Now
	}
	return &Handler{
		store: s,
		rates: rates,
		now:   now,
	}
}
