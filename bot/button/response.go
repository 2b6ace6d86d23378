package button

import (
	"github.com/TicketsBot-cloud/gdl/objects/interaction"
	"github.com/modmail-cloud/departments-worker/bot/command"
)

// Response is an initial reply to a message component interaction, written
// back as the interaction callback body.
type Response interface {
	Build() interface{}
}

type ResponseMessage struct {
	Data command.MessageResponse
}

func (r ResponseMessage) Build() interface{} {
	return interaction.NewResponseChannelMessage(r.Data.IntoApplicationCommandData())
}

// ResponseAck defers the interaction without altering the prompt message.
type ResponseAck struct{}

type ackBody struct {
	Type int `json:"type"`
}

// 6 = DEFERRED_UPDATE_MESSAGE
func (r ResponseAck) Build() interface{} {
	return ackBody{Type: 6}
}
