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

type AdminGateTestSuite struct {
	TestSuite
	service    *service.FactorhubService
	aliceLogin ExpectedCreateUserResponseBody
	aliceToken string
	adminLogin ExpectedCreateUserResponseBody
	adminToken string
}

func (suite *AdminGateTestSuite) SetupSuite() {
	svc, err := FactorhubTestServiceInit()
	if err != nil {
		log.Fatalf("Error initializing test service: %v", err)
	}
	suite.service = svc

	users, userTokens, err := createUsers(svc, 1, nil)
	if err != nil {
		log.Fatalf("Error creating test users: %v", err)
	}
	admins, adminTokens, err := createUsers(svc, 1, []string{svc.Config.AdminGroupName})
	if err != nil {
		log.Fatalf("Error creating test admin: %v", err)
	}
	suite.aliceLogin = users[0]
	suite.aliceToken = userTokens[0]
	suite.adminLogin = admins[0]
	suite.adminToken = adminTokens[0]

	e := newTestEcho()
	suite.echo = e
	authMw := tokens.Middleware(svc.Config.JWTSecret)
	adminMw := tokens.AdminMiddleware(svc.Config.AdminGroupName, svc.Directory)
	suite.echo.POST("/v2/admin/cash-receipts", controllers.NewCashReceiptController(svc).AddCashReceipt, authMw, adminMw)
}

func (suite *AdminGateTestSuite) TearDownTest() {
	clearTable(suite.service, "current_account_transactions")
}

func (suite *AdminGateTestSuite) TestNonAdminIsRejectedBeforeAnyWrite() {
	rec := suite.request(http.MethodPost, "/v2/admin/cash-receipts", &ExpectedAddCashReceiptRequestBody{
		Login:  suite.aliceLogin.Login,
		Amount: decimal.NewFromInt(100),
	}, suite.aliceToken)
	errResp := suite.checkErrResponse(rec, http.StatusUnauthorized)
	assert.Equal(suite.T(), 3, errResp.Code)

	transactions, _, err := suite.service.CurrentAccountTransactionsFor(context.Background(), suite.aliceLogin.Login, 0, "")
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 0, len(transactions))
}

func (suite *AdminGateTestSuite) TestMissingTokenIsRejected() {
	rec := suite.request(http.MethodPost, "/v2/admin/cash-receipts", &ExpectedAddCashReceiptRequestBody{
		Login:  suite.aliceLogin.Login,
		Amount: decimal.NewFromInt(100),
	}, "")
	assert.Equal(suite.T(), http.StatusUnauthorized, rec.Code)
}

func (suite *AdminGateTestSuite) TestAdminRecordsReceiptWithAttribution() {
	rec := suite.request(http.MethodPost, "/v2/admin/cash-receipts", &ExpectedAddCashReceiptRequestBody{
		Login:       suite.aliceLogin.Login,
		Amount:      decimal.NewFromInt(100),
		Description: "March remittance",
	}, suite.adminToken)
	transaction := &models.CurrentAccountTransaction{}
	suite.decode(rec, http.StatusOK, transaction)
	assert.Equal(suite.T(), suite.aliceLogin.Login, transaction.Login)
	assert.Equal(suite.T(), suite.adminLogin.Login, transaction.CreatedByAdmin)

	// a cash receipt repays drawn cash, so the balance goes down
	balance, err := suite.service.CurrentAccountBalance(context.Background(), suite.aliceLogin.Login)
	assert.NoError(suite.T(), err)
	assert.True(suite.T(), decimal.NewFromInt(-100).Equal(balance))
}

func (suite *AdminGateTestSuite) TestRejectsMissingLogin() {
	rec := suite.request(http.MethodPost, "/v2/admin/cash-receipts", &ExpectedAddCashReceiptRequestBody{
		Amount: decimal.NewFromInt(100),
	}, suite.adminToken)
	assert.Equal(suite.T(), http.StatusBadRequest, rec.Code)
}

func TestAdminGateSuite(t *testing.T) {
	suite.Run(t, new(AdminGateTestSuite))
}
