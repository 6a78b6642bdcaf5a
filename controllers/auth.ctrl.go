package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/openfactor/factorhub/lib/responses"
	"github.com/openfactor/factorhub/lib/service"
)

// AuthController : AuthController struct
type AuthController struct {
	svc *service.FactorhubService
}

func NewAuthController(svc *service.FactorhubService) *AuthController {
	return &AuthController{svc: svc}
}

type AuthRequestBody struct {
	Login    string `json:"login" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type AuthResponseBody struct {
	AccessToken string `json:"access_token"`
}

// Auth godoc
// @Summary      Authenticate
// @Description  Exchanges login credentials for an access token
// @Accept       json
// @Produce      json
// @Tags         Account
// @Param        credentials  body      AuthRequestBody  True  "Credentials"
// @Success      200  {object}  AuthResponseBody
// @Failure      400  {object}  responses.ErrorResponse
// @Failure      401  {object}  responses.ErrorResponse
// @Router       /auth [post]
func (controller *AuthController) Auth(c echo.Context) error {
	var body AuthRequestBody

	if err := c.Bind(&body); err != nil {
		c.Logger().Errorf("Failed to load auth request body: %v", err)
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	if err := c.Validate(&body); err != nil {
		c.Logger().Errorf("Invalid auth request body: %v", err)
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}

	accessToken, err := controller.svc.GenerateToken(c.Request().Context(), body.Login, body.Password)
	if err != nil {
		c.Logger().Errorf("Authentication failed for login:%s error: %v", body.Login, err)
		return c.JSON(http.StatusUnauthorized, responses.BadAuthError)
	}

	return c.JSON(http.StatusOK, &AuthResponseBody{AccessToken: accessToken})
}
