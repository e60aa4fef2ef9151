package api

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"

	"github.com/ShreyasBadgujar/hotel-booking/config"
	"github.com/ShreyasBadgujar/hotel-booking/internal/mw"
	"github.com/ShreyasBadgujar/hotel-booking/internal/plan"
	"github.com/ShreyasBadgujar/hotel-booking/internal/store"
)

// NewRouter creates and configures a new Gin router.
func NewRouter(s store.Store, cfg *config.Config) *gin.Engine {
	r := gin.Default()

	rates := plan.Rates{
		CheckoutCleanMin: cfg.Housekeeping.CheckoutCleanMin,
		StayoverCleanMin: cfg.Housekeeping.StayoverCleanMin,
		CheckinPrepMin:   cfg.Housekeeping.CheckinPrepMin,
		StaffShiftMin:    cfg.Housekeeping.StaffShiftMin,
	}
	handler := NewHandler(s, rates, nil)

	rateLimiter := mw.RateLimiter(
		rate.Limit(cfg.Server.RateLimitPerSec),
		cfg.Server.RateLimitBurst,
		cfg.Server.RequestIPHeader,
	)

	cacheTTL := time.Duration(cfg.Server.CacheTTLSeconds) * time.Second
	cacheStore := cache.New(cacheTTL, 2*cacheTTL)
	caching := mw.Cache(cacheStore, cacheTTL)

	r.Use(rateLimiter)

	// POST /search
	r.POST("/search", handler.PostSearch)

	// GET /housekeeping-plan, output depends on the caller identity so it
	// is never cached.
	r.GET("/housekeeping-plan", mw.OwnerAuth(), handler.GetHousekeepingPlan)

	// GET /hotels and GET /availability are public lookups over slow-moving
	// data; both sit behind the response cache.
	r.GET("/hotels", caching, handler.GetHotels)
	r.GET("/availability", caching, handler.GetAvailability)

	return r
}
