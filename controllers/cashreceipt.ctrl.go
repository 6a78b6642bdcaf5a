package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/openfactor/factorhub/common"
	"github.com/openfactor/factorhub/lib/responses"
	"github.com/openfactor/factorhub/lib/service"
	"github.com/shopspring/decimal"
)

// CashReceiptController : Admin cash receipt controller struct
type CashReceiptController struct {
	svc *service.FactorhubService
}

func NewCashReceiptController(svc *service.FactorhubService) *CashReceiptController {
	return &CashReceiptController{svc: svc}
}

type AddCashReceiptRequestBody struct {
	Login       string          `json:"login" validate:"required"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
}

// AddCashReceipt godoc
// @Summary      Record a cash receipt
// @Description  Records a cash receipt on a customer's current account
// @Accept       json
// @Produce      json
// @Tags         Admin
// @Param        receipt  body      AddCashReceiptRequestBody  True  "Add Cash Receipt"
// @Success      200      {object}  models.CurrentAccountTransaction
// @Failure      400      {object}  responses.ErrorResponse
// @Failure      409      {object}  responses.ErrorResponse
// @Router       /v2/admin/cash-receipts [post]
// @Security     OAuth2Password
func (controller *CashReceiptController) AddCashReceipt(c echo.Context) error {
	adminLogin := c.Get("AdminLogin").(string)
	var body AddCashReceiptRequestBody

	if err := c.Bind(&body); err != nil {
		c.Logger().Errorf("Failed to load cash receipt request body: %v", err)
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	if err := c.Validate(&body); err != nil {
		c.Logger().Errorf("Invalid cash receipt request body: %v", err)
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}

	c.Logger().Infof("Adding cash receipt: login:%s amount:%s admin:%s", body.Login, body.Amount, adminLogin)

	transaction, err := controller.svc.AddCurrentAccountTransaction(c.Request().Context(), body.Login, common.CurrentAccountTypeCashReceipt, body.Amount, body.Description, adminLogin)
	if err != nil {
		c.Logger().Errorf("Error creating cash receipt: login:%s error: %v", body.Login, err)
		errResp := serviceErrorResponse(err)
		return c.JSON(errResp.HttpStatusCode, errResp)
	}

	return c.JSON(http.StatusOK, transaction)
}
