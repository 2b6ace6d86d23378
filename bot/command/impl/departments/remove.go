package departments

import (
	"time"

	"github.com/TicketsBot-cloud/gdl/objects/interaction"
	"github.com/modmail-cloud/departments-worker/bot/command"
	"github.com/modmail-cloud/departments-worker/bot/command/registry"
	"github.com/modmail-cloud/departments-worker/bot/customisation"
	"github.com/modmail-cloud/departments-worker/bot/dbclient"
	"github.com/modmail-cloud/departments-worker/bot/permissions"
	"github.com/modmail-cloud/departments-worker/i18n"
)

type RemoveCommand struct{}

func (RemoveCommand) Properties() registry.Properties {
	return registry.Properties{
		Name:            "remove",
		Description:     i18n.HelpDepartmentRemove,
		Type:            interaction.ApplicationCommandTypeChatInput,
		PermissionLevel: permissions.Admin,
		Category:        command.Settings,
		Arguments: command.Arguments(
			command.NewRequiredArgument("name", "Name of the department to remove", interaction.OptionTypeString),
		),
		DefaultEphemeral: true,
		Timeout:          time.Second * 3,
	}
}

func (c RemoveCommand) GetExecutor() interface{} {
	return c.Execute
}

// Execute confirms with the echoed name even when nothing matched: removal
// of a missing department is a silent no-op.
func (RemoveCommand) Execute(ctx registry.CommandContext, name string) {
	if err := dbclient.Client.Departments.Remove(ctx, name); err != nil {
		ctx.HandleError(err)
		return
	}

	ctx.Reply(customisation.Green, i18n.Success, i18n.MessageDepartmentRemoved, name)
}
