package admin

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nio-salesdesk/salesdesk-backend/internal/auth"
)

func newTestRouter(t *testing.T, callerUID string) (*gin.Engine, *fakeStore, *fakeAuth) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	svc, store, authFake, _ := newTestService()
	limiters := NewLimiterStore(1000, 1000, time.Minute)
	t.Cleanup(limiters.Stop)

	r := gin.New()
	api := r.Group("/api/v1")
	api.Use(func(c *gin.Context) {
		c.Set(auth.CtxUID, callerUID)
	})
	Register(api, svc, limiters)
	return r, store, authFake
}

func post(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func TestPasswordResetEndpoint(t *testing.T) {
	r, _, _ := newTestRouter(t, "admin1")

	rr := post(r, "/api/v1/admin/password-reset", `{"email":"agent@nio.com"}`)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"success":true`)

	rr = post(r, "/api/v1/admin/password-reset", `{"email":"nope"}`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestAdminEndpointsDenyNonAdmins(t *testing.T) {
	r, _, _ := newTestRouter(t, "agent1")

	rr := post(r, "/api/v1/admin/clear-group-chat", `{}`)
	assert.Equal(t, http.StatusForbidden, rr.Code)

	rr = post(r, "/api/v1/admin/delete-user", `{"uid":"someone"}`)
	assert.Equal(t, http.StatusForbidden, rr.Code)
}

func TestDeleteUserEndpoint(t *testing.T) {
	r, store, authFake := newTestRouter(t, "admin1")
	store.deletedSales = 3

	rr := post(r, "/api/v1/admin/delete-user", `{"uid":"agent1"}`)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, []string{"agent1"}, authFake.deleted)
}

func TestAdminRateLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc, _, _, _ := newTestService()
	limiters := NewLimiterStore(1, 1, time.Minute)
	defer limiters.Stop()

	r := gin.New()
	api := r.Group("/api/v1")
	api.Use(func(c *gin.Context) {
		c.Set(auth.CtxUID, "admin1")
	})
	Register(api, svc, limiters)

	rr := post(r, "/api/v1/admin/clear-group-chat", `{}`)
	require.Equal(t, http.StatusOK, rr.Code)

	rr = post(r, "/api/v1/admin/clear-group-chat", `{}`)
	assert.Equal(t, http.StatusTooManyRequests, rr.Code)
}
