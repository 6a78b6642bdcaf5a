package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/openfactor/factorhub/lib/responses"
	"github.com/openfactor/factorhub/lib/service"
)

// CreateUserController : Create user controller struct
type CreateUserController struct {
	svc *service.FactorhubService
}

func NewCreateUserController(svc *service.FactorhubService) *CreateUserController {
	return &CreateUserController{svc: svc}
}

type CreateUserRequestBody struct {
	Login    string   `json:"login"`
	Password string   `json:"password"`
	Email    string   `json:"email" validate:"omitempty,email"`
	Groups   []string `json:"groups"`
}

type CreateUserResponseBody struct {
	Login    string   `json:"login"`
	Password string   `json:"password"`
	Groups   []string `json:"groups"`
}

// CreateUser godoc
// @Summary      Create an account
// @Description  Creates a new customer account; login and password are generated when omitted
// @Accept       json
// @Produce      json
// @Tags         Admin
// @Param        account  body      CreateUserRequestBody  True  "Create User"
// @Success      200      {object}  CreateUserResponseBody
// @Failure      400      {object}  responses.ErrorResponse
// @Failure      500      {object}  responses.ErrorResponse
// @Router       /v2/users [post]
// @Security     OAuth2Password
func (controller *CreateUserController) CreateUser(c echo.Context) error {
	var body CreateUserRequestBody

	if err := c.Bind(&body); err != nil {
		c.Logger().Errorf("Failed to load create user request body: %v", err)
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	if err := c.Validate(&body); err != nil {
		c.Logger().Errorf("Invalid create user request body: %v", err)
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}

	user, err := controller.svc.CreateUser(c.Request().Context(), body.Login, body.Password, body.Email, body.Groups)
	if err != nil {
		c.Logger().Errorf("Error creating user: %v", err)
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}

	return c.JSON(http.StatusOK, &CreateUserResponseBody{
		Login:    user.Login,
		Password: user.Password,
		Groups:   user.Groups,
	})
}
