package middlewares

import (
	"medibook-service/internal/app/config"
	"medibook-service/internal/app/contracts"

	"go.uber.org/zap"
)

type Middlewares struct {
	Log            *zap.Logger
	SessionManager contracts.SessionManager
	InternalConfig *config.InternalConfig
}

func NewMiddlewares(logger *zap.Logger, sessionManager contracts.SessionManager, internalConfig *config.InternalConfig) *Middlewares {
	return &Middlewares{
		Log:            logger,
		SessionManager: sessionManager,
		InternalConfig: internalConfig,
	}
}
