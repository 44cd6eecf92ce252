package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"team_roster/internal/auth"
	"team_roster/internal/models"
	"team_roster/internal/utils"
)

// setupGuardTestRouter 建立一個掛上認證中間件與守衛的測試路由
func setupGuardTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	protected := router.Group("/", AuthMiddleware())
	protected.GET("/players", RequireOperation(auth.OpPlayerList), func(c *gin.Context) {
		principal, _ := GetPrincipal(c)
		c.JSON(http.StatusOK, gin.H{"username": principal.Username})
	})
	protected.DELETE("/players/1", RequireOperation(auth.OpPlayerDelete), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "deleted"})
	})

	return router
}

// tokenFor 為指定角色生成一個合法的 token
func tokenFor(t *testing.T, role models.UserRole) string {
	t.Helper()
	token, err := utils.GenerateToken(&models.User{
		ID:       1,
		Username: "tester",
		Role:     role,
	})
	require.NoError(t, err)
	return token
}

// 沒帶 token 的請求必須收到 401（未登入，而不是權限不足）
func TestGuard_NoToken(t *testing.T) {
	router := setupGuardTestRouter()

	req, _ := http.NewRequest("GET", "/players", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGuard_MalformedHeader(t *testing.T) {
	router := setupGuardTestRouter()

	req, _ := http.NewRequest("GET", "/players", nil)
	req.Header.Set("Authorization", "Token abc123")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGuard_InvalidToken(t *testing.T) {
	router := setupGuardTestRouter()

	req, _ := http.NewRequest("GET", "/players", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

// 角色在允許集合內的請求放行
func TestGuard_AllowedRole(t *testing.T) {
	router := setupGuardTestRouter()

	req, _ := http.NewRequest("GET", "/players", nil)
	req.Header.Set("Authorization", "Bearer "+tokenFor(t, models.RolePlayer))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "tester")
}

// 已登入但角色不足必須收到 403，跟 401 區分開
func TestGuard_RoleDenied(t *testing.T) {
	router := setupGuardTestRouter()

	req, _ := http.NewRequest("DELETE", "/players/1", nil)
	req.Header.Set("Authorization", "Bearer "+tokenFor(t, models.RoleCoach))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestGuard_AdminCanDelete(t *testing.T) {
	router := setupGuardTestRouter()

	req, _ := http.NewRequest("DELETE", "/players/1", nil)
	req.Header.Set("Authorization", "Bearer "+tokenFor(t, models.RoleAdmin))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
