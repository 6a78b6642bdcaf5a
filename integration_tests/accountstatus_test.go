package integration_tests

import (
	"context"
	"log"
	"net/http"
	"testing"

	"github.com/openfactor/factorhub/controllers"
	"github.com/openfactor/factorhub/db/models"
	"github.com/openfactor/factorhub/lib/service"
	"github.com/openfactor/factorhub/lib/tokens"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type AccountStatusTestSuite struct {
	TestSuite
	service    *service.FactorhubService
	aliceLogin ExpectedCreateUserResponseBody
	aliceToken string
	adminToken string
}

func (suite *AccountStatusTestSuite) SetupSuite() {
	svc, err := FactorhubTestServiceInit()
	if err != nil {
		log.Fatalf("Error initializing test service: %v", err)
	}
	suite.service = svc

	users, userTokens, err := createUsers(svc, 1, nil)
	if err != nil {
		log.Fatalf("Error creating test users: %v", err)
	}
	_, adminTokens, err := createUsers(svc, 1, []string{svc.Config.AdminGroupName})
	if err != nil {
		log.Fatalf("Error creating test admin: %v", err)
	}
	suite.aliceLogin = users[0]
	suite.aliceToken = userTokens[0]
	suite.adminToken = adminTokens[0]

	e := newTestEcho()
	suite.echo = e
	statusCtrl := controllers.NewAccountStatusController(svc)
	authMw := tokens.Middleware(svc.Config.JWTSecret)
	adminMw := tokens.AdminMiddleware(svc.Config.AdminGroupName, svc.Directory)
	suite.echo.POST("/v2/admin/account-statuses", statusCtrl.CreateAccountStatus, authMw, adminMw)
	suite.echo.PUT("/v2/admin/account-statuses/:id", statusCtrl.UpdateAccountStatus, authMw, adminMw)
	suite.echo.GET("/v2/account-status", statusCtrl.GetAccountStatuses, authMw)
}

func (suite *AccountStatusTestSuite) TearDownTest() {
	clearTable(suite.service, "account_statuses")
}

func (suite *AccountStatusTestSuite) createStatus(login string, value int64) *models.AccountStatus {
	rec := suite.request(http.MethodPost, "/v2/admin/account-statuses", &ExpectedCreateAccountStatusRequestBody{
		Login:                         login,
		InitialUnapprovedInvoiceValue: decimal.NewFromInt(value),
	}, suite.adminToken)
	status := &models.AccountStatus{}
	suite.decode(rec, http.StatusOK, status)
	return status
}

func (suite *AccountStatusTestSuite) TestCreateAndFetch() {
	suite.createStatus(suite.aliceLogin.Login, 100)

	rec := suite.request(http.MethodGet, "/v2/account-status", nil, suite.aliceToken)
	statuses := &ExpectedGetAccountStatusesResponseBody{}
	suite.decode(rec, http.StatusOK, statuses)
	assert.Equal(suite.T(), 1, len(statuses.AccountStatuses))
	assert.Equal(suite.T(), suite.aliceLogin.Login, statuses.AccountStatuses[0].ID)
	assert.True(suite.T(), decimal.NewFromInt(100).Equal(statuses.AccountStatuses[0].TotalUnapprovedInvoiceValue))
}

func (suite *AccountStatusTestSuite) TestDuplicateCreateLeavesFirstRecordIntact() {
	suite.createStatus(suite.aliceLogin.Login, 100)

	rec := suite.request(http.MethodPost, "/v2/admin/account-statuses", &ExpectedCreateAccountStatusRequestBody{
		Login:                         suite.aliceLogin.Login,
		InitialUnapprovedInvoiceValue: decimal.NewFromInt(999),
	}, suite.adminToken)
	suite.checkErrResponse(rec, http.StatusConflict)

	status, err := suite.service.AccountStatusFor(context.Background(), suite.aliceLogin.Login)
	assert.NoError(suite.T(), err)
	assert.True(suite.T(), decimal.NewFromInt(100).Equal(status.TotalUnapprovedInvoiceValue))
}

func (suite *AccountStatusTestSuite) TestUpdateReplacesValue() {
	suite.createStatus(suite.aliceLogin.Login, 100)

	rec := suite.request(http.MethodPut, "/v2/admin/account-statuses/"+suite.aliceLogin.Login, &ExpectedUpdateAccountStatusRequestBody{
		TotalUnapprovedInvoiceValue: decimal.NewFromInt(250),
	}, suite.adminToken)
	updated := &models.AccountStatus{}
	suite.decode(rec, http.StatusOK, updated)
	assert.True(suite.T(), decimal.NewFromInt(250).Equal(updated.TotalUnapprovedInvoiceValue))

	rec = suite.request(http.MethodGet, "/v2/account-status", nil, suite.aliceToken)
	statuses := &ExpectedGetAccountStatusesResponseBody{}
	suite.decode(rec, http.StatusOK, statuses)
	assert.Equal(suite.T(), 1, len(statuses.AccountStatuses))
	assert.True(suite.T(), decimal.NewFromInt(250).Equal(statuses.AccountStatuses[0].TotalUnapprovedInvoiceValue))
}

func (suite *AccountStatusTestSuite) TestUpdateUnknownOwnerNotFound() {
	rec := suite.request(http.MethodPut, "/v2/admin/account-statuses/nosuchlogin", &ExpectedUpdateAccountStatusRequestBody{
		TotalUnapprovedInvoiceValue: decimal.NewFromInt(1),
	}, suite.adminToken)
	suite.checkErrResponse(rec, http.StatusNotFound)
}

func (suite *AccountStatusTestSuite) TestRejectsNegativeValue() {
	rec := suite.request(http.MethodPost, "/v2/admin/account-statuses", &ExpectedCreateAccountStatusRequestBody{
		Login:                         suite.aliceLogin.Login,
		InitialUnapprovedInvoiceValue: decimal.NewFromInt(-1),
	}, suite.adminToken)
	suite.checkErrResponse(rec, http.StatusBadRequest)
}

func (suite *AccountStatusTestSuite) TestMissingStatusIsEmptyList() {
	rec := suite.request(http.MethodGet, "/v2/account-status", nil, suite.aliceToken)
	statuses := &ExpectedGetAccountStatusesResponseBody{}
	suite.decode(rec, http.StatusOK, statuses)
	assert.Equal(suite.T(), 0, len(statuses.AccountStatuses))
}

func TestAccountStatusSuite(t *testing.T) {
	suite.Run(t, new(AccountStatusTestSuite))
}
