package tokens

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/openfactor/factorhub/db/models"
	"github.com/stretchr/testify/assert"
)

var testSecret = []byte("SECRET")

func performRequest(t *testing.T, secret []byte, authHeader string) (*httptest.ResponseRecorder, echo.Context) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Middleware(secret)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	assert.NoError(t, handler(c))
	return rec, c
}

func TestMiddlewareAcceptsGeneratedToken(t *testing.T) {
	user := &models.User{ID: 42, Login: "alice"}
	token, err := GenerateAccessToken(testSecret, 3600, user)
	assert.NoError(t, err)

	rec, c := performRequest(t, testSecret, "Bearer "+token)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(42), c.Get("UserID"))
	assert.Equal(t, "alice", c.Get("UserLogin"))
}

func TestMiddlewareRejectsMissingHeader(t *testing.T) {
	rec, _ := performRequest(t, testSecret, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestMiddlewareRejectsMalformedToken(t *testing.T) {
	rec, _ := performRequest(t, testSecret, "Bearer not-a-token")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestMiddlewareRejectsWrongSecret(t *testing.T) {
	user := &models.User{ID: 1, Login: "bob"}
	token, err := GenerateAccessToken([]byte("OTHERSECRET"), 3600, user)
	assert.NoError(t, err)

	rec, _ := performRequest(t, testSecret, "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestMiddlewareRejectsExpiredToken(t *testing.T) {
	user := &models.User{ID: 1, Login: "bob"}
	token, err := GenerateAccessToken(testSecret, -60, user)
	assert.NoError(t, err)

	rec, _ := performRequest(t, testSecret, "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
