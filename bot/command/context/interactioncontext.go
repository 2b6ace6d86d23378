package context

import (
	ctx "context"

	"github.com/TicketsBot-cloud/gdl/objects/interaction"
	"github.com/TicketsBot-cloud/gdl/objects/user"
	"github.com/TicketsBot-cloud/gdl/rest"
	"github.com/modmail-cloud/departments-worker/bot/command"
	"github.com/modmail-cloud/departments-worker/bot/command/registry"
	"github.com/modmail-cloud/departments-worker/bot/errorcontext"
	"github.com/modmail-cloud/departments-worker/worker"
	"go.uber.org/atomic"
)

// InteractionContext is the context for a slash command invocation. The
// first reply is written back as the interaction callback; later replies
// edit the original response.
type InteractionContext struct {
	ctx.Context
	*Replyable
	worker          *worker.Context
	Interaction     interaction.ApplicationCommandInteraction
	responseChannel chan command.Response
	hasReplied      *atomic.Bool
}

var _ registry.CommandContext = (*InteractionContext)(nil)

func NewInteractionContext(
	c ctx.Context,
	worker *worker.Context,
	i interaction.ApplicationCommandInteraction,
	responseChannel chan command.Response,
) *InteractionContext {
	context := &InteractionContext{
		Context:         c,
		worker:          worker,
		Interaction:     i,
		responseChannel: responseChannel,
		hasReplied:      atomic.NewBool(false),
	}

	context.Replyable = NewReplyable(context)
	return context
}

func (c *InteractionContext) Worker() *worker.Context {
	return c.worker
}

func (c *InteractionContext) InteractionMetadata() interaction.InteractionMetadata {
	return c.Interaction.InteractionMetadata
}

func (c *InteractionContext) GuildId() uint64 {
	return c.Interaction.GuildId.Value
}

func (c *InteractionContext) ChannelId() uint64 {
	return c.Interaction.ChannelId
}

func (c *InteractionContext) UserId() uint64 {
	return c.User().Id
}

func (c *InteractionContext) User() user.User {
	if c.Interaction.Member != nil {
		return c.Interaction.Member.User
	}

	if c.Interaction.User != nil {
		return *c.Interaction.User
	}

	return user.User{}
}

func (c *InteractionContext) ReplyWith(response command.Response) error {
	if c.hasReplied.Swap(true) {
		message, ok := response.(command.ResponseMessage)
		if !ok {
			return nil
		}

		_, err := rest.EditOriginalInteractionResponse(c, c.Interaction.Token, c.worker.RateLimiter, c.worker.BotId, message.Data.IntoWebhookEditBody())
		return err
	}

	c.responseChannel <- response
	return nil
}

// Defer acknowledges the interaction without a visible reply. Replies made
// after this point edit the original response instead of racing the callback
// body.
func (c *InteractionContext) Defer() {
	if !c.hasReplied.Swap(true) {
		c.responseChannel <- command.ResponseDeferred{}
	}
}

func (c *InteractionContext) ToErrorContext() errorcontext.WorkerErrorContext {
	return errorcontext.WorkerErrorContext{
		Guild:   c.GuildId(),
		User:    c.UserId(),
		Channel: c.ChannelId(),
	}
}
