package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/openfactor/factorhub/directory"
	"github.com/openfactor/factorhub/lib/responses"
	"github.com/openfactor/factorhub/lib/service"
)

// UsersController : Admin user listing controller struct
type UsersController struct {
	svc *service.FactorhubService
}

func NewUsersController(svc *service.FactorhubService) *UsersController {
	return &UsersController{svc: svc}
}

// ListUsers godoc
// @Summary      List users
// @Description  Returns one page of directory users with their group memberships
// @Accept       json
// @Produce      json
// @Tags         Admin
// @Param        page_size   query  int     false  "Page size"
// @Param        page_token  query  string  false  "Opaque pagination token"
// @Success      200  {object}  directory.Page
// @Failure      400  {object}  responses.ErrorResponse
// @Failure      500  {object}  responses.ErrorResponse
// @Router       /v2/admin/users [get]
// @Security     OAuth2Password
func (controller *UsersController) ListUsers(c echo.Context) error {
	pageSize, ok := parsePageSize(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}

	page, err := controller.svc.Directory.ListUsers(c.Request().Context(), pageSize, c.QueryParam("page_token"))
	if err != nil {
		c.Logger().Errorf("Error listing users: %v", err)
		return c.JSON(http.StatusInternalServerError, responses.GeneralServerError)
	}
	if page.Users == nil {
		page.Users = []directory.User{}
	}
	return c.JSON(http.StatusOK, page)
}
