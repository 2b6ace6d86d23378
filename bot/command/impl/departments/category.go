package departments

import (
	"time"

	"github.com/TicketsBot-cloud/gdl/objects/channel"
	"github.com/TicketsBot-cloud/gdl/objects/interaction"
	"github.com/modmail-cloud/departments-worker/bot/command"
	"github.com/modmail-cloud/departments-worker/bot/command/registry"
	"github.com/modmail-cloud/departments-worker/bot/customisation"
	"github.com/modmail-cloud/departments-worker/bot/dbclient"
	"github.com/modmail-cloud/departments-worker/bot/permissions"
	"github.com/modmail-cloud/departments-worker/i18n"
	"github.com/pkg/errors"
)

type CategoryCommand struct{}

func (CategoryCommand) Properties() registry.Properties {
	return registry.Properties{
		Name:            "category",
		Description:     i18n.HelpDepartmentCategory,
		Type:            interaction.ApplicationCommandTypeChatInput,
		PermissionLevel: permissions.Admin,
		Category:        command.Settings,
		Arguments: command.Arguments(
			command.NewRequiredArgument("name", "Name of the department", interaction.OptionTypeString),
			command.NewRequiredArgument("category", "Category channel to create the department's tickets in", interaction.OptionTypeChannel),
		),
		DefaultEphemeral: true,
		Timeout:          time.Second * 5,
	}
}

func (c CategoryCommand) GetExecutor() interface{} {
	return c.Execute
}

func (CategoryCommand) Execute(ctx registry.CommandContext, name string, categoryId uint64) {
	category, err := ctx.Worker().GetChannel(ctx, categoryId)
	if err != nil {
		ctx.HandleError(err)
		return
	}

	if category.Type != channel.ChannelTypeGuildCategory {
		ctx.Reply(customisation.Red, i18n.Error, i18n.MessageDepartmentNotACategory)
		return
	}

	if err := dbclient.Client.Departments.SetCategory(ctx, name, categoryId); err != nil {
		if errors.Is(err, dbclient.ErrDepartmentNotFound) {
			ctx.Reply(customisation.Red, i18n.Error, i18n.MessageDepartmentNotFound, name)
			return
		}

		ctx.HandleError(err)
		return
	}

	ctx.Reply(customisation.Green, i18n.Success, i18n.MessageDepartmentCategorySet, name, category.Name)
}
