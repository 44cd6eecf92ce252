package models

import (
	"time"
)

// User 表示系統中的用戶
// 不內嵌 gorm.Model：本系統的刪除都是實際刪除，不保留 DeletedAt 軟刪除欄位
type User struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Username  string    `gorm:"uniqueIndex;not null" json:"username"` // 用戶名，必須唯一
	Password  string    `gorm:"not null" json:"-"`                    // bcrypt 雜湊，json 序列化時會被忽略
	Role      UserRole  `gorm:"not null" json:"role"`                 // 用戶角色
}

// UserRole 定義用戶角色的類型
type UserRole string

const (
	RoleAdmin  UserRole = "admin"  // 管理員角色
	RoleCoach  UserRole = "coach"  // 教練角色
	RolePlayer UserRole = "player" // 球員角色
)

// ValidRole 檢查角色是否屬於三個固定值之一
// 角色之間沒有階層關係，每個操作各自列舉允許的角色
func ValidRole(role UserRole) bool {
	switch role {
	case RoleAdmin, RoleCoach, RolePlayer:
		return true
	}
	return false
}

// Principal 表示一個已通過認證的請求主體
// 由 middleware 從 token 解出後放進 context，再明確傳給 service，
// service 本身不讀任何全域的 session 狀態
type Principal struct {
	UserID   uint     `json:"user_id"`
	Username string   `json:"username"`
	Role     UserRole `json:"role"`
}
