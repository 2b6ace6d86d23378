package context

import (
	ctx "context"

	"github.com/TicketsBot-cloud/gdl/objects/interaction"
	"github.com/TicketsBot-cloud/gdl/objects/user"
	"github.com/TicketsBot-cloud/gdl/rest"
	"github.com/modmail-cloud/departments-worker/bot/button"
	"github.com/modmail-cloud/departments-worker/bot/command"
	"github.com/modmail-cloud/departments-worker/bot/command/registry"
	"github.com/modmail-cloud/departments-worker/bot/errorcontext"
	"github.com/modmail-cloud/departments-worker/worker"
	"go.uber.org/atomic"
)

// SelectMenuContext is the context for a select menu interaction.
type SelectMenuContext struct {
	ctx.Context
	*Replyable
	worker          *worker.Context
	Interaction     interaction.MessageComponentInteraction
	InteractionData interaction.SelectMenuInteractionData
	responseChannel chan button.Response
	hasReplied      *atomic.Bool
}

var _ registry.CommandContext = (*SelectMenuContext)(nil)

func NewSelectMenuContext(
	c ctx.Context,
	worker *worker.Context,
	i interaction.MessageComponentInteraction,
	data interaction.SelectMenuInteractionData,
	responseChannel chan button.Response,
) *SelectMenuContext {
	context := &SelectMenuContext{
		Context:         c,
		worker:          worker,
		Interaction:     i,
		InteractionData: data,
		responseChannel: responseChannel,
		hasReplied:      atomic.NewBool(false),
	}

	context.Replyable = NewReplyable(context)
	return context
}

func (c *SelectMenuContext) Worker() *worker.Context {
	return c.worker
}

func (c *SelectMenuContext) InteractionMetadata() interaction.InteractionMetadata {
	return c.Interaction.InteractionMetadata
}

func (c *SelectMenuContext) GuildId() uint64 {
	return c.Interaction.GuildId.Value
}

func (c *SelectMenuContext) ChannelId() uint64 {
	return c.Interaction.ChannelId
}

func (c *SelectMenuContext) UserId() uint64 {
	return c.User().Id
}

func (c *SelectMenuContext) User() user.User {
	if c.Interaction.Member != nil {
		return c.Interaction.Member.User
	}

	if c.Interaction.User != nil {
		return *c.Interaction.User
	}

	return user.User{}
}

func (c *SelectMenuContext) ReplyWith(response command.Response) error {
	message, ok := response.(command.ResponseMessage)
	if !ok {
		return nil
	}

	if c.hasReplied.Swap(true) {
		_, err := rest.EditOriginalInteractionResponse(c, c.Interaction.Token, c.worker.RateLimiter, c.worker.BotId, message.Data.IntoWebhookEditBody())
		return err
	}

	c.responseChannel <- button.ResponseMessage{Data: message.Data}
	return nil
}

// Ack defers the interaction without sending a visible reply.
func (c *SelectMenuContext) Ack() {
	if !c.hasReplied.Swap(true) {
		c.responseChannel <- button.ResponseAck{}
	}
}

func (c *SelectMenuContext) ToErrorContext() errorcontext.WorkerErrorContext {
	return errorcontext.WorkerErrorContext{
		Guild:   c.GuildId(),
		User:    c.UserId(),
		Channel: c.ChannelId(),
	}
}
