package context

import (
	"fmt"

	"github.com/TicketsBot-cloud/gdl/objects/channel/embed"
	"github.com/modmail-cloud/departments-worker/bot/command"
	"github.com/modmail-cloud/departments-worker/bot/command/registry"
	"github.com/modmail-cloud/departments-worker/bot/customisation"
	"github.com/modmail-cloud/departments-worker/bot/sentry"
	"github.com/modmail-cloud/departments-worker/bot/utils"
	"github.com/modmail-cloud/departments-worker/config"
	"github.com/modmail-cloud/departments-worker/i18n"
	"github.com/sirupsen/logrus"
)

type Replyable struct {
	ctx registry.CommandContext
}

func NewReplyable(ctx registry.CommandContext) *Replyable {
	return &Replyable{
		ctx: ctx,
	}
}

func (r *Replyable) GetColour(colour customisation.Colour) int {
	return colour.Default()
}

func (r *Replyable) GetMessage(messageId i18n.MessageId, format ...interface{}) string {
	return i18n.GetMessage(messageId, format...)
}

func (r *Replyable) Reply(colour customisation.Colour, title, content i18n.MessageId, format ...interface{}) {
	msgEmbed := utils.BuildEmbedRaw(r.GetColour(colour), r.GetMessage(title), r.GetMessage(content, format...), nil)
	_ = r.ctx.ReplyWith(command.ResponseMessage{Data: command.NewEphemeralMessageResponse(msgEmbed)})
}

func (r *Replyable) ReplyRaw(colour customisation.Colour, title, content string) {
	msgEmbed := utils.BuildEmbedRaw(r.GetColour(colour), title, content, nil)
	_ = r.ctx.ReplyWith(command.ResponseMessage{Data: command.NewEphemeralMessageResponse(msgEmbed)})
}

func (r *Replyable) ReplyWithFields(colour customisation.Colour, title, content i18n.MessageId, fields []embed.EmbedField, format ...interface{}) {
	msgEmbed := utils.BuildEmbedRaw(r.GetColour(colour), r.GetMessage(title), r.GetMessage(content, format...), fields)
	_ = r.ctx.ReplyWith(command.ResponseMessage{Data: command.NewEphemeralMessageResponse(msgEmbed)})
}

func (r *Replyable) HandleError(err error) {
	if config.Conf.DebugMode != "" {
		logrus.Errorf("ctx.HandleError: %s", err.Error())
	}

	eventId := sentry.ErrorWithContext(err, r.ctx.ToErrorContext())

	message := fmt.Sprintf("An error occurred while performing this action.\nError ID: `%s`", eventId)
	r.ReplyRaw(customisation.Red, r.GetMessage(i18n.Error), message)
}
