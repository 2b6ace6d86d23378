package manager

import (
	"context"
	"reflect"
	"strconv"

	"github.com/TicketsBot-cloud/gdl/objects/interaction"
	"github.com/TicketsBot-cloud/gdl/rest"
	"github.com/modmail-cloud/departments-worker/bot/command"
	cmdcontext "github.com/modmail-cloud/departments-worker/bot/command/context"
	"github.com/modmail-cloud/departments-worker/bot/command/impl/departments"
	"github.com/modmail-cloud/departments-worker/bot/command/registry"
	"github.com/modmail-cloud/departments-worker/bot/constants"
	"github.com/modmail-cloud/departments-worker/bot/customisation"
	"github.com/modmail-cloud/departments-worker/bot/metrics/prometheus"
	"github.com/modmail-cloud/departments-worker/bot/permissions"
	"github.com/modmail-cloud/departments-worker/i18n"
	"github.com/modmail-cloud/departments-worker/worker"
	"github.com/sirupsen/logrus"
)

type CommandManager struct {
	registry registry.Registry
}

func (m *CommandManager) RegisterCommands() {
	m.registry = make(registry.Registry)
	m.registry.Register(
		departments.DepartmentCommand{},
	)
}

func (m *CommandManager) GetCommands() registry.Registry {
	return m.registry
}

// BuildCreatePayload converts the registered commands into the create
// payload for command registration.
func (m *CommandManager) BuildCreatePayload() []rest.CreateCommandData {
	payload := make([]rest.CreateCommandData, 0, len(m.registry))

	for _, cmd := range m.registry {
		properties := cmd.Properties()

		options := make([]interaction.ApplicationCommandOption, 0)
		for _, child := range properties.Children {
			options = append(options, buildSubCommand(child))
		}

		for _, argument := range properties.Arguments {
			options = append(options, argumentToOption(argument))
		}

		payload = append(payload, rest.CreateCommandData{
			Name:        properties.Name,
			Description: i18n.GetMessage(properties.Description),
			Options:     options,
			Type:        properties.Type,
		})
	}

	return payload
}

func buildSubCommand(cmd registry.Command) interaction.ApplicationCommandOption {
	properties := cmd.Properties()

	options := make([]interaction.ApplicationCommandOption, 0, len(properties.Arguments))
	for _, argument := range properties.Arguments {
		options = append(options, argumentToOption(argument))
	}

	return interaction.ApplicationCommandOption{
		Type:        interaction.OptionTypeSubCommand,
		Name:        properties.Name,
		Description: i18n.GetMessage(properties.Description),
		Options:     options,
	}
}

func argumentToOption(argument command.Argument) interaction.ApplicationCommandOption {
	return interaction.ApplicationCommandOption{
		Type:        argument.Type,
		Name:        argument.Name,
		Description: argument.Description,
		Required:    argument.Required,
	}
}

// ExecuteCommand routes an application command interaction to its executor,
// which runs in its own goroutine. The first reply is delivered over
// responseChannel. Returns the interaction context, or nil when the command
// is unknown.
func (m *CommandManager) ExecuteCommand(
	wkr *worker.Context,
	data interaction.ApplicationCommandInteraction,
	responseChannel chan command.Response,
) *cmdcontext.InteractionContext {
	cmd, ok := m.registry[data.Data.Name]
	if !ok {
		logrus.Warnf("received interaction for unknown command: %s", data.Data.Name)
		return nil
	}

	prometheus.Interactions.WithLabelValues("application_command").Inc()

	cmd, options := resolveSubCommand(cmd, data.Data.Options)
	properties := cmd.Properties()

	timeout := properties.Timeout
	if timeout == 0 {
		timeout = constants.TimeoutCommand
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	cc := cmdcontext.NewInteractionContext(ctx, wkr, data, responseChannel)

	go func() {
		defer cancel()

		if properties.PermissionLevel > permissions.Everyone {
			if data.Member == nil {
				cc.Reply(customisation.Red, i18n.Error, i18n.MessageNoPermission)
				return
			}

			level, err := permissions.GetPermissionLevel(cc, wkr, cc.GuildId(), *data.Member)
			if err != nil {
				cc.HandleError(err)
				return
			}

			if level < properties.PermissionLevel {
				cc.Reply(customisation.Red, i18n.Error, i18n.MessageNoPermission)
				return
			}
		}

		arguments := buildArguments(properties, options)

		callArgs := make([]reflect.Value, 0, len(arguments)+1)
		callArgs = append(callArgs, reflect.ValueOf(cc))
		callArgs = append(callArgs, arguments...)

		reflect.ValueOf(cmd.GetExecutor()).Call(callArgs)
	}()

	return cc
}

// resolveSubCommand descends into the child command when the interaction
// targets one.
func resolveSubCommand(cmd registry.Command, options []interaction.ApplicationCommandInteractionDataOption) (registry.Command, []interaction.ApplicationCommandInteractionDataOption) {
	if len(options) != 1 {
		return cmd, options
	}

	for _, child := range cmd.Properties().Children {
		if child.Properties().Name == options[0].Name {
			return child, options[0].Options
		}
	}

	return cmd, options
}

// buildArguments coerces interaction option values into the executor's
// argument types, in declaration order.
func buildArguments(properties registry.Properties, options []interaction.ApplicationCommandInteractionDataOption) []reflect.Value {
	arguments := make([]reflect.Value, 0, len(properties.Arguments))

	for _, argument := range properties.Arguments {
		var raw interface{}
		for _, option := range options {
			if option.Name == argument.Name {
				raw = option.Value
				break
			}
		}

		arguments = append(arguments, coerceArgument(argument, raw))
	}

	return arguments
}

func coerceArgument(argument command.Argument, raw interface{}) reflect.Value {
	switch argument.Type {
	case interaction.OptionTypeChannel, interaction.OptionTypeUser, interaction.OptionTypeRole, interaction.OptionTypeMentionable:
		// snowflakes arrive as strings on the wire
		str, _ := raw.(string)
		id, _ := strconv.ParseUint(str, 10, 64)
		return reflect.ValueOf(id)
	case interaction.OptionTypeInteger:
		number, _ := raw.(float64)
		return reflect.ValueOf(int(number))
	default:
		str, _ := raw.(string)
		return reflect.ValueOf(str)
	}
}
