package tokens

import (
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/labstack/echo/v4"
	"github.com/openfactor/factorhub/db/models"
	"github.com/openfactor/factorhub/lib/responses"
)

type jwtCustomClaims struct {
	ID    int64  `json:"id"`
	Login string `json:"login"`

	jwt.StandardClaims
}

// GenerateAccessToken : Generate Access Token
func GenerateAccessToken(secret []byte, expiryInSeconds int, u *models.User) (string, error) {
	claims := &jwtCustomClaims{
		ID:    u.ID,
		Login: u.Login,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(time.Duration(expiryInSeconds) * time.Second).Unix(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	t, err := token.SignedString(secret)
	if err != nil {
		return "", err
	}

	return t, nil
}

// Middleware : authenticates the request from the Authorization Bearer token
// and stores UserID and UserLogin on the echo context.
func Middleware(secret []byte) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			auth := c.Request().Header.Get(echo.HeaderAuthorization)
			if !strings.HasPrefix(auth, "Bearer ") {
				return c.JSON(http.StatusUnauthorized, responses.BadAuthError)
			}
			tokenString := strings.TrimPrefix(auth, "Bearer ")

			claims := &jwtCustomClaims{}
			token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
				if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, jwt.NewValidationError("unexpected signing method", jwt.ValidationErrorSignatureInvalid)
				}
				return secret, nil
			})
			if err != nil || !token.Valid {
				c.Logger().Errorf("Invalid access token: %v", err)
				return c.JSON(http.StatusUnauthorized, responses.BadAuthError)
			}

			c.Set("UserID", claims.ID)
			c.Set("UserLogin", claims.Login)
			return next(c)
		}
	}
}
