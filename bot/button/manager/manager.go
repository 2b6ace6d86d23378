package manager

import (
	ctx "context"

	"github.com/TicketsBot-cloud/gdl/objects/interaction"
	"github.com/TicketsBot-cloud/gdl/objects/interaction/component"
	"github.com/modmail-cloud/departments-worker/bot/button"
	"github.com/modmail-cloud/departments-worker/bot/button/handlers"
	"github.com/modmail-cloud/departments-worker/bot/button/registry"
	"github.com/modmail-cloud/departments-worker/bot/command/context"
	"github.com/modmail-cloud/departments-worker/bot/constants"
	"github.com/modmail-cloud/departments-worker/bot/metrics/prometheus"
	"github.com/modmail-cloud/departments-worker/worker"
	"github.com/sirupsen/logrus"
)

type ComponentManager struct {
	registry registry.Registry
}

func NewComponentManager() *ComponentManager {
	return &ComponentManager{}
}

func (m *ComponentManager) RegisterHandlers() {
	m.registry = registry.Registry{
		new(handlers.DepartmentSelectHandler),
	}
}

// HandleInteraction dispatches a message component interaction to its
// handler, which runs in its own goroutine. Returns the select menu context,
// or nil when no handler matched and the interaction should be acked and
// ignored.
func (m *ComponentManager) HandleInteraction(
	wkr *worker.Context,
	data interaction.MessageComponentInteraction,
	responseChannel chan button.Response,
) *context.SelectMenuContext {
	if data.Data.Type() != component.ComponentSelectMenu {
		return nil
	}

	interactionData := data.Data.AsSelectMenu()

	handler := m.registry.FindHandler(interactionData.CustomId)
	if handler == nil {
		return nil
	}

	properties := handler.Properties()

	inGuild := data.GuildId.Value != 0
	if inGuild && !properties.HasFlag(registry.GuildAllowed) {
		return nil
	}

	if !inGuild && !properties.HasFlag(registry.DMsAllowed) {
		return nil
	}

	prometheus.Interactions.WithLabelValues("component").Inc()

	timeout := properties.Timeout
	if timeout == 0 {
		timeout = constants.TimeoutCommand
	}

	deadlineCtx, cancel := ctx.WithTimeout(ctx.Background(), timeout)
	menuContext := context.NewSelectMenuContext(deadlineCtx, wkr, data, interactionData, responseChannel)

	go func() {
		defer cancel()

		defer func() {
			if r := recover(); r != nil {
				logrus.Errorf("recovered panic in component handler (custom_id=%s): %v", interactionData.CustomId, r)
			}
		}()

		handler.Execute(menuContext)
	}()

	return menuContext
}
