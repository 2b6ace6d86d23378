package utils

import (
	"github.com/TicketsBot-cloud/gdl/objects/channel/embed"
)

func BuildEmbedRaw(colourHex int, title, content string, fields []embed.EmbedField) *embed.Embed {
	msgEmbed := embed.NewEmbed().
		SetColor(colourHex).
		SetTitle(title).
		SetDescription(content)

	for _, field := range fields {
		msgEmbed.AddField(field.Name, field.Value, field.Inline)
	}

	return msgEmbed
}

func EmbedFieldRaw(name, value string, inline bool) embed.EmbedField {
	return embed.EmbedField{
		Name:   name,
		Value:  value,
		Inline: inline,
	}
}

func Embeds(embeds ...*embed.Embed) []*embed.Embed {
	return embeds
}
