package service

import (
	"context"
	"crypto/rand"
	"database/sql"
	"fmt"
	"math/big"

	"github.com/openfactor/factorhub/db/models"
	"github.com/openfactor/factorhub/lib/security"
	passwordvalidator "github.com/wagslane/go-password-validator"
)

func (svc *FactorhubService) CreateUser(ctx context.Context, login, password, email string, groups []string) (user *models.User, err error) {

	user = &models.User{Groups: groups}

	// generate user login/password if not provided
	user.Login = login
	if login == "" {
		randLoginBytes, err := randBytesFromStr(20, alphaNumBytes)
		if err != nil {
			return nil, err
		}
		user.Login = string(randLoginBytes)
	}

	if password == "" {
		randPasswordBytes, err := randBytesFromStr(20, alphaNumBytes)
		if err != nil {
			return nil, err
		}
		password = string(randPasswordBytes)
	} else {
		if svc.Config.MinPasswordEntropy > 0 {
			entropy := passwordvalidator.GetEntropy(password)
			if entropy < float64(svc.Config.MinPasswordEntropy) {
				return nil, fmt.Errorf("password entropy is too low (%f), required is %d", entropy, svc.Config.MinPasswordEntropy)
			}
		}
	}

	if email != "" {
		user.Email = sql.NullString{String: email, Valid: true}
	}

	// we only store the hashed password but return the initial plain text password in the HTTP response
	user.Password = security.HashPassword(password)

	if _, err := svc.DB.NewInsert().Model(user).Exec(ctx); err != nil {
		return nil, err
	}

	//return actual password in the response, not the hashed one
	user.Password = password
	return user, nil
}

func (svc *FactorhubService) FindUserByLogin(ctx context.Context, login string) (*models.User, error) {
	var user models.User

	err := svc.DB.NewSelect().Model(&user).Where("login = ?", login).Limit(1).Scan(ctx)
	if err != nil {
		return &user, err
	}
	return &user, nil
}

func randBytesFromStr(length int, from string) ([]byte, error) {
	b := make([]byte, length)
	fromLen := big.NewInt(int64(len(from)))

	for i := range b {
		r, err := rand.Int(rand.Reader, fromLen)
		if err != nil {
			return nil, err
		}
		b[i] = from[r.Int64()]
	}
	return b, nil
}
