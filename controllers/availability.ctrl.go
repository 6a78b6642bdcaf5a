package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/openfactor/factorhub/lib/responses"
	"github.com/openfactor/factorhub/lib/service"
	"github.com/shopspring/decimal"
)

// AvailabilityController : AvailabilityController struct
type AvailabilityController struct {
	svc *service.FactorhubService
}

func NewAvailabilityController(svc *service.FactorhubService) *AvailabilityController {
	return &AvailabilityController{svc: svc}
}

type AvailabilityResponse struct {
	Gross decimal.Decimal `json:"gross"`
	Net   decimal.Decimal `json:"net"`
}

// Availability godoc
// @Summary      Retrieve availability
// @Description  Gross and net availability derived from the sales ledger balance, the unapproved invoice adjustment and the current account balance. Values can be negative.
// @Accept       json
// @Produce      json
// @Tags         Account
// @Success      200  {object}  AvailabilityResponse
// @Failure      400  {object}  responses.ErrorResponse
// @Failure      500  {object}  responses.ErrorResponse
// @Router       /v2/availability [get]
// @Security     OAuth2Password
func (controller *AvailabilityController) Availability(c echo.Context) error {
	login := c.Get("UserLogin").(string)
	availability, err := controller.svc.AvailabilityFor(c.Request().Context(), login)
	if err != nil {
		c.Logger().Errorf("Error computing availability for login:%s error: %v", login, err)
		return c.JSON(http.StatusInternalServerError, responses.GeneralServerError)
	}
	return c.JSON(http.StatusOK, &AvailabilityResponse{Gross: availability.Gross, Net: availability.Net})
}
