package threads

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/TicketsBot-cloud/gdl/objects/channel"
	"github.com/TicketsBot-cloud/gdl/objects/user"
	"github.com/TicketsBot-cloud/gdl/rest"
	"github.com/modmail-cloud/departments-worker/bot/customisation"
	"github.com/modmail-cloud/departments-worker/bot/dbclient"
	"github.com/modmail-cloud/departments-worker/bot/utils"
	"github.com/modmail-cloud/departments-worker/config"
	"github.com/modmail-cloud/departments-worker/worker"
	"github.com/pkg/errors"
)

// Find returns the recipient's open thread, if one exists.
func Find(ctx context.Context, recipientId uint64) (dbclient.Thread, bool, error) {
	return dbclient.Client.Threads.FindByRecipient(ctx, recipientId)
}

// Create opens a ticket channel for the recipient under the given category,
// records the thread and posts the staff header message. The topic set here
// is a placeholder; the department picker overwrites it after creation.
func Create(ctx context.Context, wkr *worker.Context, recipient, creator user.User, categoryId uint64) (dbclient.Thread, channel.Channel, error) {
	data := rest.CreateChannelData{
		Name:     ChannelName(recipient),
		Type:     channel.ChannelTypeGuildText,
		Topic:    fmt.Sprintf("Modmail thread for %s (%d)", recipient.Username, recipient.Id),
		ParentId: categoryId,
	}

	ticketChannel, err := wkr.CreateGuildChannel(ctx, config.Conf.Bot.GuildId, data)
	if err != nil {
		return dbclient.Thread{}, channel.Channel{}, errors.Wrap(err, "failed to create ticket channel")
	}

	thread := dbclient.Thread{
		UserId:    recipient.Id,
		ChannelId: ticketChannel.Id,
		Open:      true,
		OpenedAt:  time.Now(),
	}

	if err := dbclient.Client.Threads.Create(ctx, thread); err != nil {
		return dbclient.Thread{}, channel.Channel{}, errors.Wrap(err, "failed to persist thread")
	}

	headerEmbed := utils.BuildEmbedRaw(
		customisation.Green.Default(),
		"New Ticket",
		fmt.Sprintf("Thread opened by <@%d>", creator.Id),
		utils.Slice(
			utils.EmbedFieldRaw("User", fmt.Sprintf("<@%d> (`%d`)", recipient.Id, recipient.Id), true),
			utils.EmbedFieldRaw("Account Created", utils.SnowflakeToTime(recipient.Id).Format(time.DateOnly), true),
		),
	)

	_, _ = wkr.CreateMessageComplex(ctx, ticketChannel.Id, rest.CreateMessageData{
		Embeds: utils.Embeds(headerEmbed),
	})

	return thread, ticketChannel, nil
}

// ChannelName derives a channel name from the recipient's username, falling
// back to the id when nothing survives sanitisation.
func ChannelName(recipient user.User) string {
	var builder strings.Builder
	for _, c := range strings.ToLower(recipient.Username) {
		if (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') || c == '-' || c == '_' {
			builder.WriteRune(c)
		}
	}

	name := builder.String()
	if name == "" {
		name = fmt.Sprintf("ticket-%d", recipient.Id)
	}

	return name
}
