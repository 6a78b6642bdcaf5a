package tokens

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/openfactor/factorhub/directory"
	"github.com/stretchr/testify/assert"
)

type stubDirectory struct {
	groups map[string][]string
	err    error
}

func (s *stubDirectory) ListUsers(ctx context.Context, pageSize int, pageToken string) (*directory.Page, error) {
	return &directory.Page{}, nil
}

func (s *stubDirectory) GroupsForUser(ctx context.Context, login string) ([]string, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.groups[login], nil
}

func performAdminRequest(t *testing.T, dir directory.Client, login interface{}) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if login != nil {
		c.Set("UserLogin", login)
	}

	handler := AdminMiddleware("Admin", dir)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	assert.NoError(t, handler(c))
	return rec
}

func TestAdminMiddlewareAllowsGroupMember(t *testing.T) {
	dir := &stubDirectory{groups: map[string][]string{"alice": {"Admin", "Sales"}}}
	rec := performAdminRequest(t, dir, "alice")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAdminMiddlewareRejectsNonMember(t *testing.T) {
	dir := &stubDirectory{groups: map[string][]string{"bob": {"Sales"}}}
	rec := performAdminRequest(t, dir, "bob")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAdminMiddlewareRejectsUnknownLogin(t *testing.T) {
	dir := &stubDirectory{groups: map[string][]string{}}
	rec := performAdminRequest(t, dir, "ghost")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAdminMiddlewareRejectsMissingLogin(t *testing.T) {
	dir := &stubDirectory{groups: map[string][]string{}}
	rec := performAdminRequest(t, dir, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

// A directory failure must not let the request through.
func TestAdminMiddlewareFailsClosedOnDirectoryError(t *testing.T) {
	dir := &stubDirectory{err: errors.New("directory unavailable")}
	rec := performAdminRequest(t, dir, "alice")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
