package departments

import (
	"fmt"
	"time"

	"github.com/TicketsBot-cloud/gdl/objects/channel"
	"github.com/TicketsBot-cloud/gdl/objects/channel/embed"
	"github.com/TicketsBot-cloud/gdl/objects/interaction"
	"github.com/modmail-cloud/departments-worker/bot/command"
	"github.com/modmail-cloud/departments-worker/bot/command/registry"
	"github.com/modmail-cloud/departments-worker/bot/customisation"
	"github.com/modmail-cloud/departments-worker/bot/dbclient"
	"github.com/modmail-cloud/departments-worker/bot/permissions"
	"github.com/modmail-cloud/departments-worker/bot/utils"
	"github.com/modmail-cloud/departments-worker/i18n"
)

type ListCommand struct{}

func (ListCommand) Properties() registry.Properties {
	return registry.Properties{
		Name:            "list",
		Description:     i18n.HelpDepartmentList,
		Type:            interaction.ApplicationCommandTypeChatInput,
		PermissionLevel: permissions.Admin,
		Category:        command.Settings,
		Timeout:         time.Second * 5,
	}
}

func (c ListCommand) GetExecutor() interface{} {
	return c.Execute
}

func (ListCommand) Execute(ctx registry.CommandContext) {
	departments, err := dbclient.Client.Departments.List(ctx)
	if err != nil {
		ctx.HandleError(err)
		return
	}

	if len(departments) == 0 {
		ctx.Reply(customisation.Red, i18n.TitleDepartments, i18n.MessageDepartmentsNone)
		return
	}

	fields := make([]embed.EmbedField, len(departments))
	for i, department := range departments {
		fields[i] = utils.EmbedFieldRaw(
			utils.EscapeMarkdown(department.Name),
			fmt.Sprintf("Category: %s", resolveCategoryName(ctx, department)),
			false,
		)
	}

	ctx.ReplyWithFields(customisation.Blue, i18n.TitleDepartments, i18n.HelpDepartment, fields)
}

// resolveCategoryName maps a department's bound category to its live name,
// "Not set" when unbound, or "Deleted" when the id no longer resolves.
func resolveCategoryName(ctx registry.CommandContext, department dbclient.Department) string {
	if department.CategoryId == nil {
		return "Not set"
	}

	category, err := ctx.Worker().GetChannel(ctx, *department.CategoryId)
	if err != nil || category.Type != channel.ChannelTypeGuildCategory {
		return "Deleted"
	}

	return category.Name
}
