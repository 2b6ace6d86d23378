package departments

import (
	"github.com/TicketsBot-cloud/gdl/objects/interaction"
	"github.com/modmail-cloud/departments-worker/bot/command"
	"github.com/modmail-cloud/departments-worker/bot/command/registry"
	"github.com/modmail-cloud/departments-worker/bot/customisation"
	"github.com/modmail-cloud/departments-worker/bot/permissions"
	"github.com/modmail-cloud/departments-worker/bot/utils"
	"github.com/modmail-cloud/departments-worker/i18n"
)

type DepartmentCommand struct{}

func (DepartmentCommand) Properties() registry.Properties {
	return registry.Properties{
		Name:            "department",
		Description:     i18n.HelpDepartment,
		Type:            interaction.ApplicationCommandTypeChatInput,
		PermissionLevel: permissions.Admin,
		Children: []registry.Command{
			AddCommand{},
			RemoveCommand{},
			ListCommand{},
			CategoryCommand{},
		},
		Category:         command.Settings,
		DefaultEphemeral: true,
	}
}

func (c DepartmentCommand) GetExecutor() interface{} {
	return c.Execute
}

// Execute renders the subcommand overview; reached when the interaction
// carries no subcommand.
func (DepartmentCommand) Execute(ctx registry.CommandContext) {
	fields := utils.Slice(
		utils.EmbedFieldRaw("/department add", ctx.GetMessage(i18n.HelpDepartmentAdd), false),
		utils.EmbedFieldRaw("/department remove", ctx.GetMessage(i18n.HelpDepartmentRemove), false),
		utils.EmbedFieldRaw("/department list", ctx.GetMessage(i18n.HelpDepartmentList), false),
		utils.EmbedFieldRaw("/department category", ctx.GetMessage(i18n.HelpDepartmentCategory), false),
	)

	ctx.ReplyWithFields(customisation.Blue, i18n.TitleDepartments, i18n.HelpDepartment, fields)
}
