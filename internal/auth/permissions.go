package auth

import (
	"team_roster/internal/models"
)

// Operation 是需要授權的操作的列舉
type Operation string

const (
	OpPlayerList   Operation = "player:list"
	OpPlayerCreate Operation = "player:create"
	OpPlayerUpdate Operation = "player:update"
	OpPlayerDelete Operation = "player:delete"

	OpGameList   Operation = "game:list"
	OpGameCreate Operation = "game:create"
	OpGameUpdate Operation = "game:update"
	OpGameDelete Operation = "game:delete"

	OpStatList   Operation = "stat:list"
	OpStatCreate Operation = "stat:create"
	OpStatDelete Operation = "stat:delete"

	OpReport     Operation = "report"
	OpProfile    Operation = "profile"
	OpUserCreate Operation = "user:create"
)

// permissions 集中列出每個操作允許的角色集合
// 角色沒有繼承關係：admin 能做某件事，只因為它被明確列在該操作的集合裡
var permissions = map[Operation][]models.UserRole{
	OpPlayerList:   {models.RoleAdmin, models.RoleCoach, models.RolePlayer},
	OpPlayerCreate: {models.RoleAdmin, models.RoleCoach},
	OpPlayerUpdate: {models.RoleAdmin, models.RoleCoach},
	OpPlayerDelete: {models.RoleAdmin},

	OpGameList:   {models.RoleAdmin, models.RoleCoach, models.RolePlayer},
	OpGameCreate: {models.RoleAdmin, models.RoleCoach},
	OpGameUpdate: {models.RoleAdmin, models.RoleCoach},
	OpGameDelete: {models.RoleAdmin},

	OpStatList:   {models.RoleAdmin, models.RoleCoach, models.RolePlayer},
	OpStatCreate: {models.RoleAdmin, models.RoleCoach},
	OpStatDelete: {models.RoleAdmin},

	OpReport:     {models.RoleAdmin, models.RoleCoach, models.RolePlayer},
	OpProfile:    {models.RoleAdmin, models.RoleCoach, models.RolePlayer},
	OpUserCreate: {models.RoleAdmin},
}

// Allowed 檢查某角色是否可以執行某操作
// 未列在表中的操作一律拒絕
func Allowed(op Operation, role models.UserRole) bool {
	roles, ok := permissions[op]
	if !ok {
		return false
	}
	for _, r := range roles {
		if r == role {
			return true
		}
	}
	return false
}
