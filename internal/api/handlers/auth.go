package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"team_roster/internal/middleware"
	"team_roster/internal/models"
	"team_roster/internal/service"
	"team_roster/internal/utils"
)

// AuthHandler 處理與認證相關的請求
type AuthHandler struct {
	userService *service.UserService
}

// NewAuthHandler 創建一個新的 AuthHandler 實例
func NewAuthHandler(userService *service.UserService) *AuthHandler {
	return &AuthHandler{userService: userService}
}

// LoginInput 定義登入請求的結構
type LoginInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// CreateUserInput 定義管理員建立新用戶的請求結構
type CreateUserInput struct {
	Username string          `json:"username" binding:"required"`
	Password string          `json:"password" binding:"required"`
	Role     models.UserRole `json:"role" binding:"required"`
}

// UpdateProfileInput 定義更新個人資料的請求結構
// 新用戶名和新密碼各自可選，但一定要帶舊密碼
type UpdateProfileInput struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewUsername string `json:"new_username"`
	NewPassword string `json:"new_password"`
}

// Login 處理用戶登入
func (h *AuthHandler) Login(c *gin.Context) {
	var input LoginInput
	// 解析並驗證請求體
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// 驗證用戶名和密碼
	user, err := h.userService.Verify(input.Username, input.Password)
	if err != nil {
		writeError(c, err)
		return
	}

	// 生成 JWT token，作為後續請求的身份憑證
	token, err := utils.GenerateToken(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "獲取token失敗"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "role": user.Role})
}

// CreateUser 處理管理員建立新用戶
func (h *AuthHandler) CreateUser(c *gin.Context) {
	var input CreateUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.userService.Create(input.Username, input.Password, input.Role)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, user)
}

// GetProfile 回傳目前登入用戶的資料
func (h *AuthHandler) GetProfile(c *gin.Context) {
	principal, _ := middleware.GetPrincipal(c)

	user, err := h.userService.FindByID(principal.UserID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// UpdateProfile 處理用戶更新自己的帳號資料
func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	var input UpdateProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	principal, _ := middleware.GetPrincipal(c)

	if err := h.userService.UpdateProfile(principal, input.OldPassword, input.NewUsername, input.NewPassword); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "個人資料已更新"})
}
