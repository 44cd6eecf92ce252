package models

import (
	"errors"
)

// 核心層的錯誤分類
// repository 和 service 只回傳這些型別的錯誤（或其包裝），
// 由 handler 負責轉成對應的 HTTP 狀態碼，核心不會中止程序
var (
	ErrValidation         = errors.New("必填欄位缺少或為空")
	ErrNotFound           = errors.New("找不到指定的資料")
	ErrDuplicateUsername  = errors.New("用戶名已存在")
	ErrInvalidCredentials = errors.New("用戶名或密碼錯誤")
	ErrNotAuthenticated   = errors.New("尚未登入")
	ErrRoleDenied         = errors.New("沒有權限執行此操作")
)
