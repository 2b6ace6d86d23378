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

type AddCommand struct{}

func (AddCommand) Properties() registry.Properties {
	return registry.Properties{
		Name:            "add",
		Description:     i18n.HelpDepartmentAdd,
		Type:            interaction.ApplicationCommandTypeChatInput,
		PermissionLevel: permissions.Admin,
		Category:        command.Settings,
		Arguments: command.Arguments(
			command.NewRequiredArgument("name", "Name of the department to add", interaction.OptionTypeString),
		),
		DefaultEphemeral: true,
		Timeout:          time.Second * 3,
	}
}

func (c AddCommand) GetExecutor() interface{} {
	return c.Execute
}

func (AddCommand) Execute(ctx registry.CommandContext, name string) {
	if err := dbclient.Client.Departments.Add(ctx, name); err != nil {
		ctx.HandleError(err)
		return
	}

	ctx.Reply(customisation.Green, i18n.Success, i18n.MessageDepartmentAdded, name)
}
