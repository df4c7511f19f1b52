package middleware

import (
	"golang.org/x/time/rate"

	"quote-service/config"
	"quote-service/pkg/log"
)

type Middleware struct {
	l       log.Logger
	limiter *rate.Limiter
}

func New(l log.Logger, cfg config.RateLimitConfig) Middleware {
	rps := cfg.RequestsPerSecond
	if rps <= 0 {
		rps = 50
	}
	burst := cfg.Burst
	if burst <= 0 {
		burst = int(rps)
	}
	return Middleware{
		l:       l,
		limiter: rate.NewLimiter(rate.Limit(rps), burst),
	}
}
