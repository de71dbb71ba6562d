package bootstrap

import (
	"time"

	"samhotel-api/internal/pkg/config"
	"samhotel-api/internal/pkg/errs"
	"samhotel-api/internal/pkg/jwt"
)

func NewJWTService(cfg config.Config) (*jwt.Service, error) {
	access, err := time.ParseDuration(cfg.JWT.AccessTokenDuration)
	if err != nil {
		return nil, errs.Wrap(err, "invalid access token duration")
	}
	refresh, err := time.ParseDuration(cfg.JWT.RefreshTokenDuration)
	if err != nil {
		return nil, errs.Wrap(err, "invalid refresh token duration")
	}
	return jwt.NewService(cfg.JWT.Secret, access, refresh), nil
}
