package permissions

import (
	"context"

	"github.com/TicketsBot-cloud/gdl/objects/member"
	"github.com/TicketsBot-cloud/gdl/permission"
	"github.com/modmail-cloud/departments-worker/config"
	"github.com/modmail-cloud/departments-worker/worker"
)

type PermissionLevel uint8

const (
	Everyone PermissionLevel = iota
	Support
	Admin
)

// GetPermissionLevel resolves a member's level in the modmail guild. Guild
// owners and members holding a role with Administrator are admins; holders of
// the configured support role are support.
func GetPermissionLevel(ctx context.Context, wkr *worker.Context, guildId uint64, m member.Member) (PermissionLevel, error) {
	guild, err := wkr.GetGuild(ctx, guildId)
	if err != nil {
		return Everyone, err
	}

	if guild.OwnerId == m.User.Id {
		return Admin, nil
	}

	roles, err := wkr.GetGuildRoles(ctx, guildId)
	if err != nil {
		return Everyone, err
	}

	level := Everyone
	for _, role := range roles {
		if !memberHasRole(m, role.Id) {
			continue
		}

		if permission.HasPermissionRaw(role.Permissions, permission.Administrator) {
			return Admin, nil
		}

		if role.Id == config.Conf.Bot.SupportRoleId && config.Conf.Bot.SupportRoleId != 0 {
			level = Support
		}
	}

	return level, nil
}

func memberHasRole(m member.Member, roleId uint64) bool {
	for _, id := range m.Roles {
		if id == roleId {
			return true
		}
	}

	return false
}
