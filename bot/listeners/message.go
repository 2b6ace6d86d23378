package listeners

import (
	"context"
	"time"

	"github.com/TicketsBot-cloud/gdl/gateway/payloads/events"
	"github.com/TicketsBot-cloud/gdl/objects/interaction/component"
	"github.com/TicketsBot-cloud/gdl/rest"
	"github.com/google/uuid"
	"github.com/modmail-cloud/departments-worker/bot/dbclient"
	"github.com/modmail-cloud/departments-worker/bot/errorcontext"
	"github.com/modmail-cloud/departments-worker/bot/logic"
	"github.com/modmail-cloud/departments-worker/bot/metrics/prometheus"
	"github.com/modmail-cloud/departments-worker/bot/redis"
	"github.com/modmail-cloud/departments-worker/bot/sentry"
	"github.com/modmail-cloud/departments-worker/bot/threads"
	"github.com/modmail-cloud/departments-worker/bot/utils"
	"github.com/modmail-cloud/departments-worker/worker"
)

// OnMessage sends the department prompt when a user DMs the bot without an
// open thread. Messages inside an existing thread are relayed elsewhere and
// never see a prompt.
func OnMessage(wkr *worker.Context, e events.MessageCreate) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*7)
	defer cancel()

	// ignore guild messages
	if e.GuildId != 0 {
		return
	}

	if e.Author.Bot || e.Author.Id == wkr.BotId {
		return
	}

	_, hasThread, err := threads.Find(ctx, e.Author.Id)
	if err != nil {
		sentry.ErrorWithContext(err, messageCreateErrorContext(e))
		return
	}

	if hasThread {
		return
	}

	departments, err := dbclient.Client.Departments.List(ctx)
	if err != nil {
		sentry.ErrorWithContext(err, messageCreateErrorContext(e))
		return
	}

	if len(departments) == 0 {
		return
	}

	sessionId := uuid.New().String()
	session := redis.PromptSession{
		UserId:      e.Author.Id,
		Departments: departments,
	}

	if err := redis.StorePromptSession(ctx, sessionId, session); err != nil {
		sentry.ErrorWithContext(err, messageCreateErrorContext(e))
		return
	}

	promptEmbed, selectRow := logic.BuildDepartmentPrompt(sessionId, departments)

	if _, err := wkr.CreateMessageComplex(ctx, e.ChannelId, rest.CreateMessageData{
		Embeds:     utils.Embeds(promptEmbed),
		Components: []component.Component{selectRow},
	}); err != nil {
		sentry.ErrorWithContext(err, messageCreateErrorContext(e))
		return
	}

	prometheus.PromptsSent.Inc()
}

func messageCreateErrorContext(e events.MessageCreate) errorcontext.WorkerErrorContext {
	return errorcontext.WorkerErrorContext{
		Guild:   e.GuildId,
		User:    e.Author.Id,
		Channel: e.ChannelId,
	}
}
