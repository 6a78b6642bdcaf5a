package integration_tests

import (
	"context"
	"log"
	"testing"

	"github.com/openfactor/factorhub/lib/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type DirectoryTestSuite struct {
	suite.Suite
	service *service.FactorhubService
	logins  []ExpectedCreateUserResponseBody
}

func (suite *DirectoryTestSuite) SetupSuite() {
	svc, err := FactorhubTestServiceInit()
	if err != nil {
		log.Fatalf("Error initializing test service: %v", err)
	}
	suite.service = svc
	clearTable(svc, "users")

	logins, _, err := createUsers(svc, 5, []string{"Sales"})
	if err != nil {
		log.Fatalf("Error creating test users: %v", err)
	}
	suite.logins = logins
}

func (suite *DirectoryTestSuite) TearDownSuite() {
	clearTable(suite.service, "users")
}

func (suite *DirectoryTestSuite) TestListUsersPagination() {
	ctx := context.Background()
	seen := map[string]bool{}
	pageToken := ""
	pages := 0
	for {
		page, err := suite.service.Directory.ListUsers(ctx, 2, pageToken)
		assert.NoError(suite.T(), err)
		assert.LessOrEqual(suite.T(), len(page.Users), 2)
		for _, user := range page.Users {
			assert.False(suite.T(), seen[user.Login], "login %s listed twice", user.Login)
			seen[user.Login] = true
		}
		pages++
		if page.NextPageToken == "" {
			break
		}
		pageToken = page.NextPageToken
	}
	assert.Equal(suite.T(), 5, len(seen))
	assert.GreaterOrEqual(suite.T(), pages, 3)
}

func (suite *DirectoryTestSuite) TestGroupsForUser() {
	groups, err := suite.service.Directory.GroupsForUser(context.Background(), suite.logins[0].Login)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), []string{"Sales"}, groups)
}

func (suite *DirectoryTestSuite) TestGroupsForUnknownLogin() {
	groups, err := suite.service.Directory.GroupsForUser(context.Background(), "nobody-here")
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), []string{}, groups)
}

func TestDirectorySuite(t *testing.T) {
	suite.Run(t, new(DirectoryTestSuite))
}
