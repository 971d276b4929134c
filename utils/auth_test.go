package utils

import (
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
)

func TestHasRole(t *testing.T) {
	member := &discordgo.Member{Roles: []string{"r1", "r2"}}

	assert.True(t, HasRole(member, "r1"))
	assert.False(t, HasRole(member, "r3"))
	assert.False(t, HasRole(member, ""), "unconfigured role must deny")
	assert.False(t, HasRole(nil, "r1"))
}

func TestIsAdministrator(t *testing.T) {
	admin := &discordgo.Member{Permissions: discordgo.PermissionAdministrator}
	mod := &discordgo.Member{Permissions: discordgo.PermissionManageMessages}

	assert.True(t, IsAdministrator(admin))
	assert.False(t, IsAdministrator(mod))
	assert.False(t, IsAdministrator(nil))
}
