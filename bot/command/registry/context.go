package registry

import (
	"context"

	"github.com/TicketsBot-cloud/gdl/objects/channel/embed"
	"github.com/TicketsBot-cloud/gdl/objects/interaction"
	"github.com/TicketsBot-cloud/gdl/objects/user"
	"github.com/modmail-cloud/departments-worker/bot/command"
	"github.com/modmail-cloud/departments-worker/bot/customisation"
	"github.com/modmail-cloud/departments-worker/bot/errorcontext"
	"github.com/modmail-cloud/departments-worker/i18n"
	"github.com/modmail-cloud/departments-worker/worker"
)

// CommandContext is passed to every command executor. It doubles as the
// context.Context bounding the handler's execution.
type CommandContext interface {
	context.Context

	Worker() *worker.Context
	InteractionMetadata() interaction.InteractionMetadata
	GuildId() uint64
	ChannelId() uint64
	UserId() uint64
	User() user.User

	GetColour(colour customisation.Colour) int
	GetMessage(messageId i18n.MessageId, format ...interface{}) string

	ReplyWith(response command.Response) error
	Reply(colour customisation.Colour, title, content i18n.MessageId, format ...interface{})
	ReplyRaw(colour customisation.Colour, title, content string)
	ReplyWithFields(colour customisation.Colour, title, content i18n.MessageId, fields []embed.EmbedField, format ...interface{})

	HandleError(err error)
	ToErrorContext() errorcontext.WorkerErrorContext
}
