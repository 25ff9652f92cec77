package middlewares

import (
	"time"
	"vitaliv-service/internal/app/config"
	"vitaliv-service/internal/app/contracts"

	"go.uber.org/zap"
)

type Middlewares struct {
	Log            *zap.Logger
	SessionService contracts.SessionService
	InternalConfig *config.InternalConfig
	// BookingLimiter throttles the booking endpoints harder than the
	// global httprate limiter and blocks abusive clients for a while.
	BookingLimiter *RateLimiter
}

func NewMiddlewares(logger *zap.Logger, sessionService contracts.SessionService, internalConfig *config.InternalConfig) *Middlewares {
	return &Middlewares{
		Log:            logger,
		SessionService: sessionService,
		InternalConfig: internalConfig,
		BookingLimiter: NewRateLimiter(internalConfig.App.MaxRequests, time.Second, time.Minute),
	}
}
