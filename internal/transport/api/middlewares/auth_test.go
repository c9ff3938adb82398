package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fsdevblog/groph-wallet/internal/domain"
	"github.com/fsdevblog/groph-wallet/internal/transport/api/tokens"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthAndAdminRequired(t *testing.T) {
	gin.SetMode(gin.TestMode)
	secret := []byte("secret")

	r := gin.New()
	r.GET("/user", AuthRequired(secret), func(c *gin.Context) {
		id, _ := c.Get(CurrentUserIDKey)
		c.JSON(http.StatusOK, gin.H{"id": id})
	})
	r.GET("/admin", AuthRequired(secret), AdminRequired(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	userToken, err := tokens.GenerateUserJWT(1, domain.RoleUser, time.Hour, secret)
	require.NoError(t, err)
	adminToken, err := tokens.GenerateUserJWT(2, domain.RoleAdmin, time.Hour, secret)
	require.NoError(t, err)
	foreignToken, err := tokens.GenerateUserJWT(2, domain.RoleAdmin, time.Hour, []byte("other"))
	require.NoError(t, err)

	cases := []struct {
		name   string
		path   string
		token  string
		status int
	}{
		{name: "no token", path: "/user", status: http.StatusUnauthorized},
		{name: "foreign signature", path: "/user", token: foreignToken, status: http.StatusUnauthorized},
		{name: "user", path: "/user", token: userToken, status: http.StatusOK},
		{name: "user on admin route", path: "/admin", token: userToken, status: http.StatusForbidden},
		{name: "admin", path: "/admin", token: adminToken, status: http.StatusOK},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tc.path, nil)
			if tc.token != "" {
				req.Header.Set("Authorization", "Bearer "+tc.token)
			}
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)
			assert.Equal(t, tc.status, rec.Code)
		})
	}
}
