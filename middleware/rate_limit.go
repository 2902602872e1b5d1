package middleware

import (
	"html"
	"net/http"
	"strings"
	"sync"
	"time"

	"devnsecure_site_go/models"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

// RateLimitConfig defines the configuration for rate limiting
type RateLimitConfig struct {
	// Requests is the maximum number of requests allowed within the window
	Requests int
	// Window is the time window for rate limiting
	Window time.Duration
	// KeyFunc is a function that returns a unique key for rate limiting (defaults to IP)
	KeyFunc func(c echo.Context) string
	// Message is the error message returned when rate limit is exceeded
	Message string
	// Skipper selects requests that are neither counted nor limited
	Skipper echomiddleware.Skipper
	// HTMXTarget is the selector htmx swaps the throttle alert into. When
	// empty the alert replaces the request's own target.
	HTMXTarget string
}

// rateLimitEntry tracks request count and window expiration
type rateLimitEntry struct {
	count     int
	expiresAt time.Time
}

// RateLimiter is a fixed-window limiter keyed by client
type RateLimiter struct {
	config RateLimitConfig
	store  map[string]*rateLimitEntry
	mu     sync.Mutex
	now    func() time.Time
}

// NewRateLimiter creates a new rate limiter with the given configuration
func NewRateLimiter(config RateLimitConfig) *RateLimiter {
	if config.KeyFunc == nil {
		config.KeyFunc = func(c echo.Context) string {
			return c.RealIP()
		}
	}
	if config.Message == "" {
		config.Message = "Too many requests. Please try again later."
	}
	if config.Skipper == nil {
		config.Skipper = echomiddleware.DefaultSkipper
	}

	rl := &RateLimiter{
		config: config,
		store:  make(map[string]*rateLimitEntry),
		now:    time.Now,
	}

	// Start cleanup goroutine
	go rl.cleanup()

	return rl
}

// Allow records one request for key and reports whether it is within the limit
func (rl *RateLimiter) Allow(key string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	entry, exists := rl.store[key]
	if !exists || now.After(entry.expiresAt) {
		rl.store[key] = &rateLimitEntry{
			count:     1,
			expiresAt: now.Add(rl.config.Window),
		}
		return true
	}

	if entry.count >= rl.config.Requests {
		return false
	}
	entry.count++
	return true
}

// Middleware returns the rate limiting middleware
func (rl *RateLimiter) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if rl.config.Skipper(c) || rl.Allow(rl.config.KeyFunc(c)) {
				return next(c)
			}

			c.Logger().Warnf("Rate limit exceeded for %s on %s", c.RealIP(), c.Request().URL.Path)

			// JSON endpoints answer in the submission result shape
			if strings.HasPrefix(c.Request().URL.Path, "/api/") {
				return c.JSON(http.StatusTooManyRequests, models.SubmissionResult{
					Success: false,
					Message: rl.config.Message,
				})
			}
			// htmx drops non-2xx bodies, so the alert goes out as a 200 swap
			if c.Request().Header.Get("HX-Request") == "true" {
				if rl.config.HTMXTarget != "" {
					c.Response().Header().Set("HX-Retarget", rl.config.HTMXTarget)
					c.Response().Header().Set("HX-Reswap", "innerHTML")
				}
				return c.HTML(http.StatusOK, `<div class="alert alert-error" role="alert">`+html.EscapeString(rl.config.Message)+`</div>`)
			}
			return echo.NewHTTPError(http.StatusTooManyRequests, rl.config.Message)
		}
	}
}

// cleanup removes expired entries every minute
func (rl *RateLimiter) cleanup() {
	ticker := time.NewTicker(1 * time.Minute)
	for range ticker.C {
		rl.mu.Lock()
		now := rl.now()
		for key, entry := range rl.store {
			if now.After(entry.expiresAt) {
				delete(rl.store, key)
			}
		}
		rl.mu.Unlock()
	}
}

// ConsultationRateLimiter limits consultation submissions to requestsPerMinute
// per IP. Zero disables limiting. Only POST is counted; other methods pass
// through to the handler's 405. htmxTarget receives the throttle alert for
// htmx submissions.
func ConsultationRateLimiter(requestsPerMinute int, htmxTarget string) echo.MiddlewareFunc {
	if requestsPerMinute <= 0 {
		return func(next echo.HandlerFunc) echo.HandlerFunc {
			return next
		}
	}
	return NewRateLimiter(RateLimitConfig{
		Requests:   requestsPerMinute,
		Window:     1 * time.Minute,
		Message:    "Too many consultation requests. Please wait a minute before trying again.",
		HTMXTarget: htmxTarget,
		Skipper: func(c echo.Context) bool {
			return c.Request().Method != http.MethodPost
		},
	}).Middleware()
}
