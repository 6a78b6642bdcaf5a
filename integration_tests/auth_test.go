package integration_tests

import (
	"context"
	"log"
	"net/http"
	"testing"

	"github.com/openfactor/factorhub/controllers"
	"github.com/openfactor/factorhub/lib/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type AuthTestSuite struct {
	TestSuite
	service    *service.FactorhubService
	aliceLogin ExpectedCreateUserResponseBody
}

type expectedAuthRequestBody struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

type expectedAuthResponseBody struct {
	AccessToken string `json:"access_token"`
}

func (suite *AuthTestSuite) SetupSuite() {
	svc, err := FactorhubTestServiceInit()
	if err != nil {
		log.Fatalf("Error initializing test service: %v", err)
	}
	suite.service = svc

	users, _, err := createUsers(svc, 1, nil)
	if err != nil {
		log.Fatalf("Error creating test users: %v", err)
	}
	suite.aliceLogin = users[0]

	e := newTestEcho()
	suite.echo = e
	suite.echo.POST("/auth", controllers.NewAuthController(svc).Auth)
}

func (suite *AuthTestSuite) TestAuthWithValidCredentials() {
	rec := suite.request(http.MethodPost, "/auth", &expectedAuthRequestBody{
		Login:    suite.aliceLogin.Login,
		Password: suite.aliceLogin.Password,
	}, "")
	authResponse := &expectedAuthResponseBody{}
	suite.decode(rec, http.StatusOK, authResponse)
	assert.NotEmpty(suite.T(), authResponse.AccessToken)
}

func (suite *AuthTestSuite) TestAuthWithWrongPassword() {
	rec := suite.request(http.MethodPost, "/auth", &expectedAuthRequestBody{
		Login:    suite.aliceLogin.Login,
		Password: "wrong password",
	}, "")
	suite.checkErrResponse(rec, http.StatusUnauthorized)
}

func (suite *AuthTestSuite) TestAuthWithMissingCredentials() {
	rec := suite.request(http.MethodPost, "/auth", &expectedAuthRequestBody{
		Login: suite.aliceLogin.Login,
	}, "")
	suite.checkErrResponse(rec, http.StatusBadRequest)
}

func (suite *AuthTestSuite) TestAuthDeactivatedAccount() {
	user, err := suite.service.CreateUser(context.Background(), "", "", "", nil)
	assert.NoError(suite.T(), err)
	password := user.Password

	user.Deactivated = true
	_, err = suite.service.DB.NewUpdate().Model(user).Column("deactivated").Where("id = ?", user.ID).Exec(context.Background())
	assert.NoError(suite.T(), err)

	rec := suite.request(http.MethodPost, "/auth", &expectedAuthRequestBody{
		Login:    user.Login,
		Password: password,
	}, "")
	suite.checkErrResponse(rec, http.StatusUnauthorized)
}

func TestAuthSuite(t *testing.T) {
	suite.Run(t, new(AuthTestSuite))
}
