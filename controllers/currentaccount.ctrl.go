package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/openfactor/factorhub/db/models"
	"github.com/openfactor/factorhub/lib/responses"
	"github.com/openfactor/factorhub/lib/service"
	"github.com/shopspring/decimal"
)

// CurrentAccountController : Current account controller struct
type CurrentAccountController struct {
	svc *service.FactorhubService
}

func NewCurrentAccountController(svc *service.FactorhubService) *CurrentAccountController {
	return &CurrentAccountController{svc: svc}
}

type GetCurrentAccountResponseBody struct {
	Balance       decimal.Decimal                    `json:"balance"`
	Transactions  []models.CurrentAccountTransaction `json:"transactions"`
	NextPageToken string                             `json:"next_page_token,omitempty"`
}

// GetCurrentAccount godoc
// @Summary      List current account transactions
// @Description  Returns the caller's outstanding drawn balance and one page of current account transactions
// @Accept       json
// @Produce      json
// @Tags         Account
// @Param        page_size   query  int     false  "Page size"
// @Param        page_token  query  string  false  "Opaque pagination token"
// @Success      200  {object}  GetCurrentAccountResponseBody
// @Failure      400  {object}  responses.ErrorResponse
// @Failure      500  {object}  responses.ErrorResponse
// @Router       /v2/current-account [get]
// @Security     OAuth2Password
func (controller *CurrentAccountController) GetCurrentAccount(c echo.Context) error {
	login := c.Get("UserLogin").(string)

	pageSize, ok := parsePageSize(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}

	transactions, nextToken, err := controller.svc.CurrentAccountTransactionsFor(c.Request().Context(), login, pageSize, c.QueryParam("page_token"))
	if err != nil {
		c.Logger().Errorf("Error fetching current account transactions for login:%s error: %v", login, err)
		return c.JSON(http.StatusInternalServerError, responses.GeneralServerError)
	}

	balance, err := controller.svc.CurrentAccountBalance(c.Request().Context(), login)
	if err != nil {
		c.Logger().Errorf("Error computing current account balance for login:%s error: %v", login, err)
		return c.JSON(http.StatusInternalServerError, responses.GeneralServerError)
	}

	return c.JSON(http.StatusOK, &GetCurrentAccountResponseBody{
		Balance:       balance,
		Transactions:  transactions,
		NextPageToken: nextToken,
	})
}
