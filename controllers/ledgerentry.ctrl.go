package controllers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/openfactor/factorhub/db/models"
	"github.com/openfactor/factorhub/lib/responses"
	"github.com/openfactor/factorhub/lib/security"
	"github.com/openfactor/factorhub/lib/service"
	"github.com/shopspring/decimal"
)

// LedgerEntryController : Ledger entry controller struct
type LedgerEntryController struct {
	svc *service.FactorhubService
}

func NewLedgerEntryController(svc *service.FactorhubService) *LedgerEntryController {
	return &LedgerEntryController{svc: svc}
}

type AddLedgerEntryRequestBody struct {
	// Login may only differ from the caller's when the caller is an admin
	Login       string          `json:"login"`
	Type        string          `json:"type" validate:"required"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
}

type GetLedgerEntriesResponseBody struct {
	Entries       []models.LedgerEntry `json:"entries"`
	NextPageToken string               `json:"next_page_token,omitempty"`
}

// AddLedgerEntry godoc
// @Summary      Record a ledger entry
// @Description  Appends an invoice, credit note or adjustment to the sales ledger
// @Accept       json
// @Produce      json
// @Tags         Ledger
// @Param        entry  body      AddLedgerEntryRequestBody  True  "Add Ledger Entry"
// @Success      200    {object}  models.LedgerEntry
// @Failure      400    {object}  responses.ErrorResponse
// @Failure      401    {object}  responses.ErrorResponse
// @Failure      409    {object}  responses.ErrorResponse
// @Router       /v2/ledger [post]
// @Security     OAuth2Password
func (controller *LedgerEntryController) AddLedgerEntry(c echo.Context) error {
	callerLogin := c.Get("UserLogin").(string)
	var body AddLedgerEntryRequestBody

	if err := c.Bind(&body); err != nil {
		c.Logger().Errorf("Failed to load ledger entry request body: %v", err)
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	if err := c.Validate(&body); err != nil {
		c.Logger().Errorf("Invalid ledger entry request body: %v", err)
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}

	login := body.Login
	if login == "" {
		login = callerLogin
	}
	// writing to another owner's ledger requires admin membership,
	// checked before anything is read or written
	if login != callerLogin {
		groups, err := controller.svc.Directory.GroupsForUser(c.Request().Context(), callerLogin)
		if err != nil {
			c.Logger().Errorf("Error fetching group memberships for login:%s error: %v", callerLogin, err)
			return c.JSON(http.StatusInternalServerError, responses.GeneralServerError)
		}
		if !security.IsAdmin(groups, controller.svc.Config.AdminGroupName) {
			c.Logger().Infof("Rejected ledger write for owner:%s by non-admin caller:%s", login, callerLogin)
			return c.JSON(http.StatusUnauthorized, responses.AuthorizationError)
		}
	}

	c.Logger().Infof("Adding ledger entry: login:%s type:%s amount:%s", login, body.Type, body.Amount)

	entry, err := controller.svc.CreateLedgerEntry(c.Request().Context(), login, body.Type, body.Amount, body.Description)
	if err != nil {
		c.Logger().Errorf("Error creating ledger entry: login:%s error: %v", login, err)
		errResp := serviceErrorResponse(err)
		return c.JSON(errResp.HttpStatusCode, errResp)
	}

	return c.JSON(http.StatusOK, entry)
}

// GetLedgerEntries godoc
// @Summary      List ledger entries
// @Description  Returns one page of the caller's sales ledger entries
// @Accept       json
// @Produce      json
// @Tags         Ledger
// @Param        page_size   query  int     false  "Page size"
// @Param        page_token  query  string  false  "Opaque pagination token"
// @Success      200  {object}  GetLedgerEntriesResponseBody
// @Failure      400  {object}  responses.ErrorResponse
// @Failure      500  {object}  responses.ErrorResponse
// @Router       /v2/ledger [get]
// @Security     OAuth2Password
func (controller *LedgerEntryController) GetLedgerEntries(c echo.Context) error {
	login := c.Get("UserLogin").(string)

	pageSize, ok := parsePageSize(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}

	entries, nextToken, err := controller.svc.LedgerEntriesFor(c.Request().Context(), login, pageSize, c.QueryParam("page_token"))
	if err != nil {
		c.Logger().Errorf("Error fetching ledger entries for login:%s error: %v", login, err)
		return c.JSON(http.StatusInternalServerError, responses.GeneralServerError)
	}

	return c.JSON(http.StatusOK, &GetLedgerEntriesResponseBody{Entries: entries, NextPageToken: nextToken})
}

func parsePageSize(c echo.Context) (int, bool) {
	if !c.QueryParams().Has("page_size") {
		return 0, true
	}
	pageSize, err := strconv.Atoi(c.QueryParam("page_size"))
	if err != nil {
		c.Logger().Errorf("Could not parse page_size %q: %v", c.QueryParam("page_size"), err)
		return 0, false
	}
	return pageSize, true
}
