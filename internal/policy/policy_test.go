package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"rw-be-svc/internal/models"
)

func TestCan(t *testing.T) {
	tests := []struct {
		role       models.Role
		permission Permission
		want       bool
	}{
		{models.RoleWarga, ComplaintUpdateStatus, false},
		{models.RoleRT, ComplaintUpdateStatus, true},
		{models.RoleAdmin, ComplaintUpdateStatus, true},
		{models.RoleRW, UserManage, true},
		{models.RoleRT, UserManage, false},
		{models.RoleWarga, CommentDeleteAny, false},
		{models.RoleAdmin, CommentDeleteAny, true},
		{models.RoleWarga, TransactionRead, true},
		{models.RoleWarga, ProfileChangeRole, false},
		{models.RoleAdmin, Permission("unknown"), false},
		{models.Role(""), TransactionRead, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.role)+"/"+string(tt.permission), func(t *testing.T) {
			assert.Equal(t, tt.want, Can(tt.role, tt.permission))
		})
	}
}

func TestRolesReturnsCopy(t *testing.T) {
	roles := Roles(UserManage)
	roles[0] = models.RoleWarga

	assert.False(t, Can(models.RoleWarga, UserManage))
}
