package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/openfactor/factorhub/lib/responses"
	"github.com/openfactor/factorhub/lib/service"
	"github.com/shopspring/decimal"
)

// BalanceController : BalanceController struct
type BalanceController struct {
	svc *service.FactorhubService
}

func NewBalanceController(svc *service.FactorhubService) *BalanceController {
	return &BalanceController{svc: svc}
}

type BalanceResponse struct {
	Balance decimal.Decimal `json:"balance"`
}

// Balance godoc
// @Summary      Retrieve sales ledger balance
// @Description  Current user's sales ledger balance, recomputed from the full entry history
// @Accept       json
// @Produce      json
// @Tags         Account
// @Success      200  {object}  BalanceResponse
// @Failure      400  {object}  responses.ErrorResponse
// @Failure      500  {object}  responses.ErrorResponse
// @Router       /v2/balance [get]
// @Security     OAuth2Password
func (controller *BalanceController) Balance(c echo.Context) error {
	login := c.Get("UserLogin").(string)
	balance, err := controller.svc.SalesLedgerBalance(c.Request().Context(), login)
	if err != nil {
		c.Logger().Errorf("Error fetching balance for login:%s error: %v", login, err)
		return c.JSON(http.StatusInternalServerError, responses.GeneralServerError)
	}
	return c.JSON(http.StatusOK, &BalanceResponse{Balance: balance})
}
