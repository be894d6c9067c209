package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextVote(t *testing.T) {
	up, down := VoteUp, VoteDown

	tests := []struct {
		name    string
		current *VoteType
		cast    VoteType
		want    *VoteType
	}{
		{"first vote is recorded", nil, VoteUp, &up},
		{"same kind withdraws", &up, VoteUp, nil},
		{"other kind replaces", &up, VoteDown, &down},
		{"downvote withdraws", &down, VoteDown, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NextVote(tt.current, tt.cast))
		})
	}
}

func TestUserPatchColumns(t *testing.T) {
	assert.True(t, UserPatch{}.IsEmpty())

	name := "  Budi  "
	email := ""
	role := RoleRT
	patch := UserPatch{Name: &name, Email: &email, Role: &role}

	cols := patch.Columns()
	assert.False(t, patch.IsEmpty())
	assert.Len(t, cols, 3)
	assert.Equal(t, "Budi", cols["name"])
	assert.Nil(t, cols["email"])
	assert.Equal(t, RoleRT, cols["role"])
	assert.NotContains(t, cols, "username")
	assert.NotContains(t, cols, "password")
}

func TestRole(t *testing.T) {
	assert.True(t, RoleAdmin.IsAdmin())
	assert.True(t, RoleRW.IsAdmin())
	assert.False(t, RoleRT.IsAdmin())
	assert.False(t, Role("superuser").Valid())
	assert.True(t, RoleWarga.Valid())
}
