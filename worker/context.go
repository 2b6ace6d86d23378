package worker

import (
	"context"

	"github.com/TicketsBot-cloud/gdl/objects/channel"
	"github.com/TicketsBot-cloud/gdl/objects/channel/message"
	"github.com/TicketsBot-cloud/gdl/objects/guild"
	"github.com/TicketsBot-cloud/gdl/rest"
	"github.com/TicketsBot-cloud/gdl/rest/ratelimit"
)

// Context carries the credentials and ratelimiter for a single bot identity.
// All Discord REST traffic goes through its methods.
type Context struct {
	Token       string
	BotId       uint64
	ShardId     int
	RateLimiter *ratelimit.Ratelimiter
}

func (c *Context) GetChannel(ctx context.Context, channelId uint64) (channel.Channel, error) {
	return rest.GetChannel(ctx, c.Token, c.RateLimiter, channelId)
}

func (c *Context) ModifyChannel(ctx context.Context, channelId uint64, data rest.ModifyChannelData) (channel.Channel, error) {
	return rest.ModifyChannel(ctx, c.Token, c.RateLimiter, channelId, data)
}

func (c *Context) CreateGuildChannel(ctx context.Context, guildId uint64, data rest.CreateChannelData) (channel.Channel, error) {
	return rest.CreateGuildChannel(ctx, c.Token, c.RateLimiter, guildId, data)
}

func (c *Context) CreateMessageComplex(ctx context.Context, channelId uint64, data rest.CreateMessageData) (message.Message, error) {
	return rest.CreateMessage(ctx, c.Token, c.RateLimiter, channelId, data)
}

func (c *Context) EditMessage(ctx context.Context, channelId, messageId uint64, data rest.EditMessageData) (message.Message, error) {
	return rest.EditMessage(ctx, c.Token, c.RateLimiter, channelId, messageId, data)
}

func (c *Context) GetGuild(ctx context.Context, guildId uint64) (guild.Guild, error) {
	return rest.GetGuild(ctx, c.Token, c.RateLimiter, guildId)
}

func (c *Context) GetGuildRoles(ctx context.Context, guildId uint64) ([]guild.Role, error) {
	return rest.GetGuildRoles(ctx, c.Token, c.RateLimiter, guildId)
}
