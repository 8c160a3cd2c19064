package service

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"
)

type throttleStore interface {
	Increment(ctx context.Context, key string, window time.Duration) (int64, error)
	Reset(ctx context.Context, key string) error
}

// LoginThrottleConfig defines the attempt window.
type LoginThrottleConfig struct {
	Enabled     bool
	MaxAttempts int
	Window      time.Duration
}

// LoginThrottle limits login attempts per username and client IP within a
// fixed window. Store errors never block a login.
type LoginThrottle struct {
	store  throttleStore
	config LoginThrottleConfig
	logger *zap.Logger
}

// NewLoginThrottle constructs a throttle. A nil store disables throttling.
func NewLoginThrottle(store throttleStore, config LoginThrottleConfig, logger *zap.Logger) *LoginThrottle {
	if logger == nil {
		logger = zap.NewNop()
	}
	if config.MaxAttempts <= 0 {
		config.MaxAttempts = 5
	}
	if config.Window <= 0 {
		config.Window = 15 * time.Minute
	}
	return &LoginThrottle{store: store, config: config, logger: logger}
}

func (t *LoginThrottle) enabled() bool {
	return t != nil && t.config.Enabled && t.store != nil
}

// Allow counts the attempt and reports whether it is within MaxAttempts.
// Counting before the credential check keeps concurrent attempts from
// exceeding the limit.
func (t *LoginThrottle) Allow(ctx context.Context, username, ip string) bool {
	if !t.enabled() {
		return true
	}
	count, err := t.store.Increment(ctx, throttleKey(username, ip), t.config.Window)
	if err != nil {
		t.logger.Warn("login throttle increment failed", zap.Error(err))
		return true
	}
	return count <= int64(t.config.MaxAttempts)
}

// Reset clears the counter after a successful login.
func (t *LoginThrottle) Reset(ctx context.Context, username, ip string) {
	if !t.enabled() {
		return
	}
	if err := t.store.Reset(ctx, throttleKey(username, ip)); err != nil {
		t.logger.Warn("login throttle reset failed", zap.Error(err))
	}
}

func throttleKey(username, ip string) string {
	return "login:" + strings.ToLower(strings.TrimSpace(username)) + ":" + ip
}
