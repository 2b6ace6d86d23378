package manager

import (
	"testing"

	"github.com/TicketsBot-cloud/gdl/objects/interaction"
	"github.com/modmail-cloud/departments-worker/bot/command"
	"github.com/stretchr/testify/require"
)

func TestBuildCreatePayload(t *testing.T) {
	commandManager := new(CommandManager)
	commandManager.RegisterCommands()

	payload := commandManager.BuildCreatePayload()
	require.Len(t, payload, 1)

	department := payload[0]
	require.Equal(t, "department", department.Name)
	require.Len(t, department.Options, 4)

	names := make([]string, len(department.Options))
	for i, option := range department.Options {
		require.Equal(t, interaction.OptionTypeSubCommand, option.Type)
		names[i] = option.Name
	}

	require.Equal(t, []string{"add", "remove", "list", "category"}, names)
}

func TestBuildCreatePayloadSubCommandArguments(t *testing.T) {
	commandManager := new(CommandManager)
	commandManager.RegisterCommands()

	payload := commandManager.BuildCreatePayload()
	require.Len(t, payload, 1)

	var category *interaction.ApplicationCommandOption
	for i, option := range payload[0].Options {
		if option.Name == "category" {
			category = &payload[0].Options[i]
			break
		}
	}

	require.NotNil(t, category)
	require.Len(t, category.Options, 2)
	require.Equal(t, "name", category.Options[0].Name)
	require.Equal(t, interaction.OptionTypeString, category.Options[0].Type)
	require.Equal(t, "category", category.Options[1].Name)
	require.Equal(t, interaction.OptionTypeChannel, category.Options[1].Type)
}

func TestResolveSubCommand(t *testing.T) {
	commandManager := new(CommandManager)
	commandManager.RegisterCommands()

	parent := commandManager.GetCommands()["department"]
	require.NotNil(t, parent)

	options := []interaction.ApplicationCommandInteractionDataOption{
		{
			Name: "add",
			Options: []interaction.ApplicationCommandInteractionDataOption{
				{Name: "name", Value: "Billing"},
			},
		},
	}

	resolved, childOptions := resolveSubCommand(parent, options)
	require.Equal(t, "add", resolved.Properties().Name)
	require.Len(t, childOptions, 1)
	require.Equal(t, "name", childOptions[0].Name)
}

func TestResolveSubCommandUnknownChild(t *testing.T) {
	commandManager := new(CommandManager)
	commandManager.RegisterCommands()

	parent := commandManager.GetCommands()["department"]
	require.NotNil(t, parent)

	options := []interaction.ApplicationCommandInteractionDataOption{
		{Name: "nonexistent"},
	}

	resolved, childOptions := resolveSubCommand(parent, options)
	require.Equal(t, "department", resolved.Properties().Name)
	require.Equal(t, options, childOptions)
}

func TestCoerceArgumentChannel(t *testing.T) {
	argument := command.NewRequiredArgument("category", "desc", interaction.OptionTypeChannel)

	value := coerceArgument(argument, "1234567890")
	require.Equal(t, uint64(1234567890), value.Interface())
}

func TestCoerceArgumentString(t *testing.T) {
	argument := command.NewRequiredArgument("name", "desc", interaction.OptionTypeString)

	value := coerceArgument(argument, "General Support")
	require.Equal(t, "General Support", value.Interface())
}

func TestCoerceArgumentMissingValue(t *testing.T) {
	argument := command.NewRequiredArgument("name", "desc", interaction.OptionTypeString)

	value := coerceArgument(argument, nil)
	require.Equal(t, "", value.Interface())
}
