package middlewares

import (
	"go.uber.org/zap"

	"valoredash-service/internal/app/config"
	"valoredash-service/internal/app/services/shared/jwtmanager"
)

type Middlewares struct {
	Log            *zap.Logger
	JWTManager     *jwtmanager.JWTManager
	InternalConfig *config.InternalConfig
}
