package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"team_roster/internal/models"
)

// 對每個操作逐一檢查允許的角色集合，不假設任何角色繼承
func TestAllowed(t *testing.T) {
	cases := []struct {
		op      Operation
		role    models.UserRole
		allowed bool
	}{
		{OpPlayerList, models.RolePlayer, true},
		{OpPlayerCreate, models.RoleCoach, true},
		{OpPlayerCreate, models.RolePlayer, false},
		{OpPlayerDelete, models.RoleAdmin, true},
		{OpPlayerDelete, models.RoleCoach, false},
		{OpGameDelete, models.RoleCoach, false},
		{OpStatCreate, models.RoleCoach, true},
		{OpStatCreate, models.RolePlayer, false},
		{OpStatDelete, models.RoleAdmin, true},
		{OpStatDelete, models.RolePlayer, false},
		{OpReport, models.RolePlayer, true},
		{OpProfile, models.RoleCoach, true},
		{OpUserCreate, models.RoleAdmin, true},
		{OpUserCreate, models.RoleCoach, false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.allowed, Allowed(tc.op, tc.role),
			"op=%s role=%s", tc.op, tc.role)
	}
}

// 沒有登記在權限表裡的操作一律拒絕
func TestAllowed_UnknownOperation(t *testing.T) {
	assert.False(t, Allowed(Operation("nosuch"), models.RoleAdmin))
}

// 未知角色在任何操作上都沒有權限
func TestAllowed_UnknownRole(t *testing.T) {
	assert.False(t, Allowed(OpPlayerList, models.UserRole("manager")))
}
