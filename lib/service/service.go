package service

import (
	"context"
	"fmt"

	"github.com/labstack/gommon/random"
	"github.com/openfactor/factorhub/db/models"
	"github.com/openfactor/factorhub/directory"
	"github.com/openfactor/factorhub/lib/security"
	"github.com/openfactor/factorhub/lib/tokens"
	"github.com/openfactor/factorhub/rabbitmq"
	"github.com/uptrace/bun"
	"github.com/ziflex/lecho/v3"
)

const alphaNumBytes = random.Alphanumeric

type FactorhubService struct {
	Config            *Config
	DB                *bun.DB
	Logger            *lecho.Logger
	Directory         directory.Client
	TransactionPubSub *Pubsub
	RabbitMQClient    rabbitmq.Client
}

func (svc *FactorhubService) GenerateToken(ctx context.Context, login, password string) (accessToken string, err error) {
	var user models.User

	switch {
	case login != "" || password != "":
		{
			if err := svc.DB.NewSelect().Model(&user).Where("login = ?", login).Scan(ctx); err != nil {
				return "", fmt.Errorf("bad auth")
			}
			if !security.VerifyPassword(user.Password, password) {
				return "", fmt.Errorf("bad auth")
			}
		}
	default:
		{
			return "", fmt.Errorf("login and password are required")
		}
	}

	if user.Deactivated {
		return "", fmt.Errorf("account deactivated")
	}

	accessToken, err = tokens.GenerateAccessToken(svc.Config.JWTSecret, svc.Config.JWTAccessTokenExpiry, &user)
	if err != nil {
		return "", err
	}
	return accessToken, nil
}
