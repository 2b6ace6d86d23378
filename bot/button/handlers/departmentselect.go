package handlers

import (
	"github.com/TicketsBot-cloud/gdl/objects/interaction/component"
	"github.com/TicketsBot-cloud/gdl/rest"
	"github.com/modmail-cloud/departments-worker/bot/button/registry"
	"github.com/modmail-cloud/departments-worker/bot/button/registry/matcher"
	"github.com/modmail-cloud/departments-worker/bot/command/context"
	"github.com/modmail-cloud/departments-worker/bot/constants"
	"github.com/modmail-cloud/departments-worker/bot/customisation"
	"github.com/modmail-cloud/departments-worker/bot/logic"
	"github.com/modmail-cloud/departments-worker/bot/metrics/prometheus"
	"github.com/modmail-cloud/departments-worker/bot/redis"
	"github.com/modmail-cloud/departments-worker/bot/sentry"
	"github.com/modmail-cloud/departments-worker/bot/threads"
	"github.com/modmail-cloud/departments-worker/config"
	"github.com/modmail-cloud/departments-worker/i18n"
)

type DepartmentSelectHandler struct{}

func (h *DepartmentSelectHandler) Matcher() matcher.Matcher {
	return &matcher.FuncMatcher{
		Func: logic.IsDepartmentSelectCustomId,
	}
}

func (h *DepartmentSelectHandler) Properties() registry.Properties {
	return registry.Properties{
		Flags:   registry.SumFlags(registry.DMsAllowed),
		Timeout: constants.TimeoutOpenTicket,
	}
}

func (h *DepartmentSelectHandler) Execute(ctx *context.SelectMenuContext) {
	sessionId := logic.DepartmentSelectSessionId(ctx.InteractionData.CustomId)

	session, ok, err := redis.GetPromptSession(ctx, sessionId)
	if err != nil {
		ctx.HandleError(err)
		return
	}

	if !ok {
		ctx.Reply(customisation.Red, i18n.TitlePromptExpired, i18n.MessageDepartmentPromptExpired)
		return
	}

	// only the invited user may pick; the prompt stays armed for them
	if ctx.UserId() != session.UserId {
		ctx.Reply(customisation.Red, i18n.Error, i18n.MessageDepartmentMenuNotYours)
		return
	}

	department, ok := logic.SelectedDepartment(session.Departments, ctx.InteractionData.Values)
	if !ok {
		return
	}

	categoryId := config.Conf.Bot.DefaultCategoryId
	if department.CategoryId != nil {
		categoryId = *department.CategoryId
	}

	_, ticketChannel, err := threads.Create(ctx, ctx.Worker(), ctx.User(), ctx.User(), categoryId)
	if err != nil {
		ctx.HandleError(err)
		return
	}

	topic := logic.FormatThreadTopic(department.Name, ctx.UserId())
	if _, err := ctx.Worker().ModifyChannel(ctx, ticketChannel.Id, rest.ModifyChannelData{Topic: topic}); err != nil {
		ctx.HandleError(err)
		return
	}

	prometheus.TicketsCreated.Inc()

	ctx.Reply(customisation.Green, i18n.TitleTicketCreated, i18n.MessageDepartmentTicketCreated, department.Name)

	// resolved: grey out the prompt and drop the session
	disabledRow := logic.BuildDisabledDepartmentSelect(sessionId, session.Departments)
	if _, err := ctx.Worker().EditMessage(ctx, ctx.ChannelId(), ctx.Interaction.Message.Id, rest.EditMessageData{
		Components: []component.Component{disabledRow},
	}); err != nil {
		sentry.ErrorWithContext(err, ctx.ToErrorContext())
	}

	if err := redis.DeletePromptSession(ctx, sessionId); err != nil {
		sentry.ErrorWithContext(err, ctx.ToErrorContext())
	}
}
