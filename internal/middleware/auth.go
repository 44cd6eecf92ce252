package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"team_roster/internal/auth"
	"team_roster/internal/models"
	"team_roster/internal/utils"
)

// principalKey 是存放在 gin context 中的請求主體的鍵
const principalKey = "principal"

// AuthMiddleware 是一個 Gin 中間件，用於驗證請求的 JWT token
// 驗證成功後會把完整的 Principal 放進 context，供後續的守衛和 handler 使用
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		// 從請求頭中獲取 Authorization 字段
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": models.ErrNotAuthenticated.Error()})
			c.Abort()
			return
		}

		// 檢查 Authorization 頭的格式
		parts := strings.SplitN(authHeader, " ", 2)
		if !(len(parts) == 2 && parts[0] == "Bearer") {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header format must be Bearer {token}"})
			c.Abort()
			return
		}

		// 解析 JWT token
		claims, err := utils.ParseToken(parts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": models.ErrNotAuthenticated.Error()})
			c.Abort()
			return
		}

		// 將請求主體設置到上下文中
		c.Set(principalKey, models.Principal{
			UserID:   claims.UserID,
			Username: claims.Username,
			Role:     claims.Role,
		})
		c.Next()
	}
}

// RequireOperation 檢查目前的請求主體是否有權執行指定操作
// 未登入回 401，已登入但角色不在允許集合中回 403，兩種失敗各自獨立
func RequireOperation(op auth.Operation) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := GetPrincipal(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": models.ErrNotAuthenticated.Error()})
			c.Abort()
			return
		}

		if !auth.Allowed(op, principal.Role) {
			c.JSON(http.StatusForbidden, gin.H{"error": models.ErrRoleDenied.Error()})
			c.Abort()
			return
		}

		c.Next()
	}
}

// GetPrincipal 從 context 取出已認證的請求主體
func GetPrincipal(c *gin.Context) (models.Principal, bool) {
	value, exists := c.Get(principalKey)
	if !exists {
		return models.Principal{}, false
	}
	principal, ok := value.(models.Principal)
	return principal, ok
}
