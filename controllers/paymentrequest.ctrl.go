package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/openfactor/factorhub/common"
	"github.com/openfactor/factorhub/lib/responses"
	"github.com/openfactor/factorhub/lib/service"
	"github.com/shopspring/decimal"
)

// PaymentRequestController : Payment request controller struct
type PaymentRequestController struct {
	svc *service.FactorhubService
}

func NewPaymentRequestController(svc *service.FactorhubService) *PaymentRequestController {
	return &PaymentRequestController{svc: svc}
}

type SendPaymentRequestRequestBody struct {
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
}

type RequestPaymentForUserRequestBody struct {
	Login       string          `json:"login" validate:"required"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
}

type PaymentRequestResponseBody struct {
	Message       string `json:"message"`
	TransactionId string `json:"transaction_id"`
	// Warning is set when the payment request was recorded but the
	// notification could not be delivered
	Warning string `json:"warning,omitempty"`
}

// SendPaymentRequest godoc
// @Summary      Request a payment
// @Description  Records a payment request against the caller's availability and notifies the configured webhook
// @Accept       json
// @Produce      json
// @Tags         Account
// @Param        request  body      SendPaymentRequestRequestBody  True  "Send Payment Request"
// @Success      200      {object}  PaymentRequestResponseBody
// @Failure      400      {object}  responses.ErrorResponse
// @Failure      409      {object}  responses.ErrorResponse
// @Router       /v2/payment-requests [post]
// @Security     OAuth2Password
func (controller *PaymentRequestController) SendPaymentRequest(c echo.Context) error {
	login := c.Get("UserLogin").(string)
	var body SendPaymentRequestRequestBody

	if err := c.Bind(&body); err != nil {
		c.Logger().Errorf("Failed to load payment request body: %v", err)
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}

	return controller.addPaymentRequest(c, login, body.Amount, body.Description, login)
}

// RequestPaymentForUser godoc
// @Summary      Request a payment for a customer
// @Description  Records a payment request on behalf of a customer
// @Accept       json
// @Produce      json
// @Tags         Admin
// @Param        request  body      RequestPaymentForUserRequestBody  True  "Request Payment For User"
// @Success      200      {object}  PaymentRequestResponseBody
// @Failure      400      {object}  responses.ErrorResponse
// @Failure      409      {object}  responses.ErrorResponse
// @Router       /v2/admin/payment-requests [post]
// @Security     OAuth2Password
func (controller *PaymentRequestController) RequestPaymentForUser(c echo.Context) error {
	adminLogin := c.Get("AdminLogin").(string)
	var body RequestPaymentForUserRequestBody

	if err := c.Bind(&body); err != nil {
		c.Logger().Errorf("Failed to load payment request body: %v", err)
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	if err := c.Validate(&body); err != nil {
		c.Logger().Errorf("Invalid payment request body: %v", err)
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}

	return controller.addPaymentRequest(c, body.Login, body.Amount, body.Description, adminLogin)
}

func (controller *PaymentRequestController) addPaymentRequest(c echo.Context, login string, amount decimal.Decimal, description, actingLogin string) error {
	c.Logger().Infof("Adding payment request: login:%s amount:%s acting:%s", login, amount, actingLogin)

	transaction, err := controller.svc.AddCurrentAccountTransaction(c.Request().Context(), login, common.CurrentAccountTypePaymentRequest, amount, description, actingLogin)
	if err != nil {
		c.Logger().Errorf("Error creating payment request: login:%s error: %v", login, err)
		errResp := serviceErrorResponse(err)
		return c.JSON(errResp.HttpStatusCode, errResp)
	}

	response := &PaymentRequestResponseBody{
		Message:       "payment request recorded",
		TransactionId: transaction.ID,
	}
	// the record is durable at this point: a failed notification is a
	// warning on a successful response, not a failure
	if err := controller.svc.NotifyTransaction(c.Request().Context(), transaction); err != nil {
		c.Logger().Errorf("Error notifying payment request: transaction_id:%s error: %v", transaction.ID, err)
		response.Warning = "payment request recorded but the notification could not be delivered"
	}

	return c.JSON(http.StatusOK, response)
}
