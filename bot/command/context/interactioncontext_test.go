package context

import (
	ctx "context"
	"testing"

	"github.com/TicketsBot-cloud/gdl/objects/interaction"
	"github.com/modmail-cloud/departments-worker/bot/button"
	"github.com/modmail-cloud/departments-worker/bot/command"
	"github.com/modmail-cloud/departments-worker/worker"
	"github.com/stretchr/testify/require"
)

func TestDeferClaimsFirstReply(t *testing.T) {
	responseChannel := make(chan command.Response, 1)
	cc := NewInteractionContext(ctx.Background(), &worker.Context{}, interaction.ApplicationCommandInteraction{}, responseChannel)

	cc.Defer()

	select {
	case res := <-responseChannel:
		require.IsType(t, command.ResponseDeferred{}, res)
	default:
		require.Fail(t, "expected a deferred response on the channel")
	}

	// the first reply is spent, a second defer must not queue another
	cc.Defer()

	select {
	case <-responseChannel:
		require.Fail(t, "expected no further responses")
	default:
	}
}

func TestDeferAfterReplyIsNoop(t *testing.T) {
	responseChannel := make(chan command.Response, 1)
	cc := NewInteractionContext(ctx.Background(), &worker.Context{}, interaction.ApplicationCommandInteraction{}, responseChannel)

	require.NoError(t, cc.ReplyWith(command.ResponseMessage{Data: command.NewEphemeralMessageResponse()}))

	select {
	case res := <-responseChannel:
		require.IsType(t, command.ResponseMessage{}, res)
	default:
		require.Fail(t, "expected the reply on the channel")
	}

	cc.Defer()

	select {
	case <-responseChannel:
		require.Fail(t, "defer after a reply must not queue a response")
	default:
	}
}

func TestSelectMenuAckOnlyOnce(t *testing.T) {
	responseChannel := make(chan button.Response, 1)
	menuCtx := NewSelectMenuContext(
		ctx.Background(),
		&worker.Context{},
		interaction.MessageComponentInteraction{},
		interaction.SelectMenuInteractionData{},
		responseChannel,
	)

	menuCtx.Ack()
	menuCtx.Ack()

	select {
	case res := <-responseChannel:
		require.IsType(t, button.ResponseAck{}, res)
	default:
		require.Fail(t, "expected an ack on the channel")
	}

	select {
	case <-responseChannel:
		require.Fail(t, "expected a single ack")
	default:
	}
}
