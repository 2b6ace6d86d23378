package command

import (
	"github.com/TicketsBot-cloud/gdl/objects/channel/embed"
	"github.com/TicketsBot-cloud/gdl/objects/channel/message"
	"github.com/TicketsBot-cloud/gdl/objects/interaction"
	"github.com/TicketsBot-cloud/gdl/objects/interaction/component"
	"github.com/TicketsBot-cloud/gdl/rest"
)

type Response interface {
	CommandResponseType() ResponseType
	Build() interface{}
}

type ResponseType uint8

const (
	CommandResponseTypeMessage ResponseType = iota
	CommandResponseTypeAck
)

// MessageResponse is the payload for both initial interaction responses and
// follow-up edits.
type MessageResponse struct {
	Content    string
	Embeds     []*embed.Embed
	Components []component.Component
	Flags      uint
}

func NewEphemeralMessageResponse(embeds ...*embed.Embed) MessageResponse {
	return MessageResponse{
		Embeds: embeds,
		Flags:  message.SumFlags(message.FlagEphemeral),
	}
}

func (r MessageResponse) IntoApplicationCommandData() interaction.ApplicationCommandCallbackData {
	return interaction.ApplicationCommandCallbackData{
		Content:    r.Content,
		Embeds:     r.Embeds,
		Components: r.Components,
		Flags:      r.Flags,
	}
}

func (r MessageResponse) IntoWebhookEditBody() rest.WebhookEditBody {
	return rest.WebhookEditBody{
		Content:    r.Content,
		Embeds:     r.Embeds,
		Components: r.Components,
	}
}

// ResponseMessage wraps a standard message reply
type ResponseMessage struct {
	Data MessageResponse
}

func (r ResponseMessage) CommandResponseType() ResponseType { return CommandResponseTypeMessage }

func (r ResponseMessage) Build() interface{} {
	return interaction.NewResponseChannelMessage(r.Data.IntoApplicationCommandData())
}

// ResponseDeferred acknowledges the interaction ephemerally; the actual reply
// follows as an edit to the original response.
type ResponseDeferred struct{}

func (r ResponseDeferred) CommandResponseType() ResponseType { return CommandResponseTypeAck }

type deferredBody struct {
	Type int              `json:"type"`
	Data deferredBodyData `json:"data"`
}

type deferredBodyData struct {
	Flags uint `json:"flags"`
}

// 5 = DEFERRED_CHANNEL_MESSAGE_WITH_SOURCE
func (r ResponseDeferred) Build() interface{} {
	return deferredBody{
		Type: 5,
		Data: deferredBodyData{Flags: message.SumFlags(message.FlagEphemeral)},
	}
}
