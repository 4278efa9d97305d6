package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"circula/internal/auth"
	"circula/internal/config"
	"circula/internal/repository"
	"circula/internal/testutil"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func whoami(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]uint{"id": UserID(c)})
}

func serve(e *echo.Echo, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestAuthMiddleware(t *testing.T) {
	tokens := auth.NewTokenManager(config.JWT{Secret: "s", TTL: time.Hour})
	e := echo.New()
	e.GET("/me", whoami, AuthMiddleware(tokens))

	rec := serve(e, "")
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "No token provided")

	rec = serve(e, "garbage")
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid token")

	token, err := tokens.Issue(9)
	require.NoError(t, err)
	rec = serve(e, token)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"id":9}`, rec.Body.String())
}

func TestRequireAdmin(t *testing.T) {
	db := testutil.NewDB(t)
	customer := testutil.CreateCustomer(t, db, "alice")
	admin := testutil.CreateAdmin(t, db, "root")

	tokens := auth.NewTokenManager(config.JWT{Secret: "s", TTL: time.Hour})
	e := echo.New()
	e.GET("/me", whoami, AuthMiddleware(tokens), RequireAdmin(repository.NewCustomerRepository(db)))

	token, err := tokens.Issue(customer.ID)
	require.NoError(t, err)
	rec := serve(e, token)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "Admin rights required")

	token, err = tokens.Issue(admin.ID)
	require.NoError(t, err)
	rec = serve(e, token)
	assert.Equal(t, http.StatusOK, rec.Code)
}
