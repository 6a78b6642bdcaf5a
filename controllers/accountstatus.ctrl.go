package controllers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/openfactor/factorhub/db/models"
	"github.com/openfactor/factorhub/lib/responses"
	"github.com/openfactor/factorhub/lib/service"
	"github.com/shopspring/decimal"
)

// AccountStatusController : Account status controller struct
type AccountStatusController struct {
	svc *service.FactorhubService
}

func NewAccountStatusController(svc *service.FactorhubService) *AccountStatusController {
	return &AccountStatusController{svc: svc}
}

type CreateAccountStatusRequestBody struct {
	Login                         string          `json:"login" validate:"required"`
	InitialUnapprovedInvoiceValue decimal.Decimal `json:"initial_unapproved_invoice_value"`
}

type UpdateAccountStatusRequestBody struct {
	TotalUnapprovedInvoiceValue decimal.Decimal `json:"total_unapproved_invoice_value"`
}

type GetAccountStatusesResponseBody struct {
	AccountStatuses []models.AccountStatus `json:"account_statuses"`
}

// CreateAccountStatus godoc
// @Summary      Create an account status
// @Description  Creates the single account status record for a customer with the initial unapproved invoice value
// @Accept       json
// @Produce      json
// @Tags         Admin
// @Param        status  body      CreateAccountStatusRequestBody  True  "Create Account Status"
// @Success      200     {object}  models.AccountStatus
// @Failure      400     {object}  responses.ErrorResponse
// @Failure      409     {object}  responses.ErrorResponse
// @Router       /v2/admin/account-statuses [post]
// @Security     OAuth2Password
func (controller *AccountStatusController) CreateAccountStatus(c echo.Context) error {
	var body CreateAccountStatusRequestBody

	if err := c.Bind(&body); err != nil {
		c.Logger().Errorf("Failed to load account status request body: %v", err)
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	if err := c.Validate(&body); err != nil {
		c.Logger().Errorf("Invalid account status request body: %v", err)
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}

	status, err := controller.svc.CreateAccountStatus(c.Request().Context(), body.Login, body.InitialUnapprovedInvoiceValue)
	if err != nil {
		c.Logger().Errorf("Error creating account status: login:%s error: %v", body.Login, err)
		errResp := serviceErrorResponse(err)
		return c.JSON(errResp.HttpStatusCode, errResp)
	}

	return c.JSON(http.StatusOK, status)
}

// UpdateAccountStatus godoc
// @Summary      Update an account status
// @Description  Replaces the total unapproved invoice value for a customer. Last write wins.
// @Accept       json
// @Produce      json
// @Tags         Admin
// @Param        id      path      string                          true  "Account status id (owner login)"
// @Param        status  body      UpdateAccountStatusRequestBody  True  "Update Account Status"
// @Success      200     {object}  models.AccountStatus
// @Failure      400     {object}  responses.ErrorResponse
// @Failure      404     {object}  responses.ErrorResponse
// @Router       /v2/admin/account-statuses/{id} [put]
// @Security     OAuth2Password
func (controller *AccountStatusController) UpdateAccountStatus(c echo.Context) error {
	var body UpdateAccountStatusRequestBody

	if err := c.Bind(&body); err != nil {
		c.Logger().Errorf("Failed to load account status request body: %v", err)
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}

	status, err := controller.svc.UpdateAccountStatus(c.Request().Context(), c.Param("id"), body.TotalUnapprovedInvoiceValue)
	if err != nil {
		c.Logger().Errorf("Error updating account status: id:%s error: %v", c.Param("id"), err)
		errResp := serviceErrorResponse(err)
		return c.JSON(errResp.HttpStatusCode, errResp)
	}

	return c.JSON(http.StatusOK, status)
}

// GetAccountStatuses godoc
// @Summary      List account statuses
// @Description  Returns the caller's account status records (zero or one)
// @Accept       json
// @Produce      json
// @Tags         Account
// @Success      200  {object}  GetAccountStatusesResponseBody
// @Failure      500  {object}  responses.ErrorResponse
// @Router       /v2/account-status [get]
// @Security     OAuth2Password
func (controller *AccountStatusController) GetAccountStatuses(c echo.Context) error {
	login := c.Get("UserLogin").(string)

	statuses := []models.AccountStatus{}
	status, err := controller.svc.AccountStatusFor(c.Request().Context(), login)
	if err != nil && !errors.Is(err, service.ErrRecordNotFound) {
		c.Logger().Errorf("Error fetching account status for login:%s error: %v", login, err)
		return c.JSON(http.StatusInternalServerError, responses.GeneralServerError)
	}
	if status != nil {
		statuses = append(statuses, *status)
	}

	return c.JSON(http.StatusOK, &GetAccountStatusesResponseBody{AccountStatuses: statuses})
}
