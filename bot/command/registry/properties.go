package registry

import (
	"time"

	"github.com/TicketsBot-cloud/gdl/objects/interaction"
	"github.com/modmail-cloud/departments-worker/bot/command"
	"github.com/modmail-cloud/departments-worker/bot/permissions"
	"github.com/modmail-cloud/departments-worker/i18n"
)

type Properties struct {
	Name             string
	Description      i18n.MessageId
	Type             interaction.ApplicationCommandType
	PermissionLevel  permissions.PermissionLevel
	Children         []Command
	Category         command.Category
	Arguments        []command.Argument
	DefaultEphemeral bool
	Timeout          time.Duration
}
