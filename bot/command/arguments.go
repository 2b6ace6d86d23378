package command

import (
	"github.com/TicketsBot-cloud/gdl/objects/interaction"
)

type Argument struct {
	Name        string
	Description string
	Type        interaction.ApplicationCommandOptionType
	Required    bool
}

func NewRequiredArgument(name, description string, argumentType interaction.ApplicationCommandOptionType) Argument {
	return Argument{
		Name:        name,
		Description: description,
		Type:        argumentType,
		Required:    true,
	}
}

func Arguments(arguments ...Argument) []Argument {
	return arguments
}
