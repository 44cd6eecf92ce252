package service

import (
	"errors"
	"fmt"
	"log"

	"golang.org/x/crypto/bcrypt"

	"team_roster/internal/models"
	"team_roster/internal/repository"
)

// 預設管理員帳號，首次啟動時自動建立
// 這是文件化的種子憑證，上線後管理員必須立即更換密碼
const (
	DefaultAdminUsername = "admin"
	DefaultAdminPassword = "admin123"
)

// UserService 負責用戶憑證的建立與驗證
type UserService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// Verify 依用戶名查找用戶並比對密碼
// 查無用戶與密碼錯誤回傳同一個錯誤，不讓呼叫端區分是哪一種
func (s *UserService) Verify(username, password string) (*models.User, error) {
	user, err := s.userRepo.FindByUsername(username)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, models.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, models.ErrInvalidCredentials
	}
	return user, nil
}

// Create 建立新用戶，密碼以 bcrypt 雜湊後儲存
func (s *UserService) Create(username, password string, role models.UserRole) (*models.User, error) {
	if username == "" || password == "" {
		return nil, fmt.Errorf("%w: 用戶名和密碼", models.ErrValidation)
	}
	if !models.ValidRole(role) {
		return nil, fmt.Errorf("%w: 未知的角色 %q", models.ErrValidation, role)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Username: username,
		Password: string(hashedPassword),
		Role:     role,
	}
	if err := s.userRepo.Create(&user); err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateProfile 讓用戶更新自己的帳號資料
// 必須先用舊密碼驗證身份；用戶名和密碼兩個欄位各自可選，
// 但只有管理員可以更換用戶名
func (s *UserService) UpdateProfile(principal models.Principal, oldPassword, newUsername, newPassword string) error {
	user, err := s.userRepo.FindByID(principal.UserID)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(oldPassword)); err != nil {
		return models.ErrInvalidCredentials
	}

	if newUsername != "" && newUsername != user.Username {
		if principal.Role != models.RoleAdmin {
			return models.ErrRoleDenied
		}
		user.Username = newUsername
	}

	if newPassword != "" {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		user.Password = string(hashedPassword)
	}

	return s.userRepo.Update(user)
}

// FindByID 取得單一用戶
func (s *UserService) FindByID(id uint) (*models.User, error) {
	return s.userRepo.FindByID(id)
}

// EnsureDefaultAdmin 在資料庫中沒有預設管理員時建立一個
// 每次啟動時呼叫，已存在則不動作
func (s *UserService) EnsureDefaultAdmin() error {
	_, err := s.userRepo.FindByUsername(DefaultAdminUsername)
	if err == nil {
		return nil
	}
	if !errors.Is(err, models.ErrNotFound) {
		return err
	}

	if _, err := s.Create(DefaultAdminUsername, DefaultAdminPassword, models.RoleAdmin); err != nil {
		return err
	}
	log.Printf("已建立預設管理員帳號 %q，請盡快更換密碼", DefaultAdminUsername)
	return nil
}
