package services

import (
	"context"
	"fmt"
	"net"
	"strconv"
	"strings"
	"sync"
	"time"

	appContext "github.com/alphabatem/common/context"
	"github.com/gofiber/fiber/v2"
	"github.com/pixelfit-app/pixelfit_api/shared"
	log "github.com/sirupsen/logrus"
)

// RateLimitService is a fixed-window limiter on Redis counters. A Redis
// outage fails open; limiting is abuse protection, not an invariant.
type RateLimitService struct {
	appContext.DefaultService

	redisSvc *RedisService

	configs map[string]*RateLimitConfig
	mutex   sync.RWMutex
}

type RateLimitConfig struct {
	EndpointType string
	MaxRequests  int
	WindowSize   time.Duration
	Description  string
	IsActive     bool
}

const RATE_LIMIT_SVC = "rate_limit_svc"

func (svc RateLimitService) Id() string {
	return RATE_LIMIT_SVC
}

func (svc *RateLimitService) Configure(ctx *appContext.Context) error {
	svc.redisSvc = ctx.Service(REDIS_SVC).(*RedisService)
	svc.initDefaultConfigs()
	return svc.DefaultService.Configure(ctx)
}

func (svc *RateLimitService) Start() error {
	return nil
}

func (svc *RateLimitService) initDefaultConfigs() {
	svc.mutex.Lock()
	defer svc.mutex.Unlock()

	svc.configs = map[string]*RateLimitConfig{
		"telegram_auth": {
			EndpointType: "telegram_auth",
			MaxRequests:  20,
			WindowSize:   15 * time.Minute,
			Description:  "Telegram login rate limit",
			IsActive:     true,
		},
		"admin_login": {
			EndpointType: "admin_login",
			MaxRequests:  10,
			WindowSize:   15 * time.Minute,
			Description:  "Admin login attempts rate limit",
			IsActive:     true,
		},
		"refresh": {
			EndpointType: "refresh",
			MaxRequests:  30,
			WindowSize:   15 * time.Minute,
			Description:  "Token refresh rate limit",
			IsActive:     true,
		},
		"workout_submit": {
			EndpointType: "workout_submit",
			MaxRequests:  30,
			WindowSize:   time.Hour,
			Description:  "Workout submission rate limit",
			IsActive:     true,
		},
		"purchase": {
			EndpointType: "purchase",
			MaxRequests:  30,
			WindowSize:   time.Hour,
			Description:  "Shop purchase rate limit",
			IsActive:     true,
		},
		"media_upload": {
			EndpointType: "media_upload",
			MaxRequests:  60,
			WindowSize:   time.Hour,
			Description:  "Admin media upload rate limit",
			IsActive:     true,
		},
		"api_general": {
			EndpointType: "api_general",
			MaxRequests:  1000,
			WindowSize:   time.Hour,
			Description:  "General API rate limit per IP",
			IsActive:     true,
		},
	}
}

// IsAllowed counts the request against the window and reports the remainder.
func (svc *RateLimitService) IsAllowed(identifier, endpointType string) (bool, int, error) {
	svc.mutex.RLock()
	config, exists := svc.configs[endpointType]
	svc.mutex.RUnlock()

	if !exists || !config.IsActive {
		return true, -1, nil
	}

	ctx := context.Background()
	window := time.Now().Unix() / int64(config.WindowSize.Seconds())
	key := fmt.Sprintf("ratelimit:%s:%s:%d", endpointType, identifier, window)

	count, err := svc.redisSvc.Increment(ctx, key)
	if err != nil {
		return true, -1, err
	}
	if count == 1 {
		if err := svc.redisSvc.Expire(ctx, key, config.WindowSize); err != nil {
			log.WithError(err).Debug("Failed to set rate limit key expiry")
		}
	}

	remaining := config.MaxRequests - int(count)
	if remaining < 0 {
		remaining = 0
	}
	return int(count) <= config.MaxRequests, remaining, nil
}

// RateLimit limits by authenticated user where available, by IP otherwise.
func (svc *RateLimitService) RateLimit(endpointType string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		identifier := getClientIP(c)
		if userID, ok := c.Locals(shared.UserID).(string); ok && userID != "" {
			identifier = userID
		}

		allowed, remaining, err := svc.IsAllowed(identifier, endpointType)
		if err != nil {
			log.WithError(err).WithField("endpoint", endpointType).Warn("Rate limit check failed, allowing request")
			return c.Next()
		}

		if remaining >= 0 {
			c.Set("X-RateLimit-Remaining", strconv.Itoa(remaining))
		}

		if !allowed {
			return shared.ResponseJSON(c, fiber.StatusTooManyRequests, "Too many requests. Please try again later.", nil)
		}
		return c.Next()
	}
}

// IPRateLimit applies the general per-IP limit to every route.
func (svc *RateLimitService) IPRateLimit() fiber.Handler {
	return func(c *fiber.Ctx) error {
		allowed, remaining, err := svc.IsAllowed(getClientIP(c), "api_general")
		if err != nil {
			return c.Next()
		}

		if remaining >= 0 {
			c.Set("X-RateLimit-Remaining", strconv.Itoa(remaining))
		}

		if !allowed {
			return shared.ResponseJSON(c, fiber.StatusTooManyRequests, "Too many requests. Please slow down.", nil)
		}
		return c.Next()
	}
}

func (svc *RateLimitService) UpdateConfig(endpointType string, maxRequests int, windowSize time.Duration, isActive *bool) error {
	svc.mutex.Lock()
	defer svc.mutex.Unlock()

	config, exists := svc.configs[endpointType]
	if !exists {
		return fmt.Errorf("unknown endpoint type: %s", endpointType)
	}

	if maxRequests > 0 {
		config.MaxRequests = maxRequests
	}
	if windowSize > 0 {
		config.WindowSize = windowSize
	}
	if isActive != nil {
		config.IsActive = *isActive
	}
	return nil
}

func (svc *RateLimitService) GetConfigs() map[string]RateLimitConfig {
	svc.mutex.RLock()
	defer svc.mutex.RUnlock()

	configs := make(map[string]RateLimitConfig, len(svc.configs))
	for k, v := range svc.configs {
		configs[k] = *v
	}
	return configs
}

func getClientIP(c *fiber.Ctx) string {
	forwarded := c.Get("X-Forwarded-For")
	if forwarded != "" {
		ips := strings.Split(forwarded, ",")
		if ip := strings.TrimSpace(ips[0]); ip != "" {
			return ip
		}
	}

	if realIP := c.Get("X-Real-IP"); realIP != "" {
		return realIP
	}

	ip, _, err := net.SplitHostPort(c.Context().RemoteAddr().String())
	if err != nil {
		return c.Context().RemoteAddr().String()
	}
	return ip
}
