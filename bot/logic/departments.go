package logic

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/TicketsBot-cloud/gdl/objects/channel/embed"
	"github.com/TicketsBot-cloud/gdl/objects/interaction/component"
	"github.com/modmail-cloud/departments-worker/bot/customisation"
	"github.com/modmail-cloud/departments-worker/bot/dbclient"
	"github.com/modmail-cloud/departments-worker/bot/utils"
	"github.com/modmail-cloud/departments-worker/i18n"
)

const departmentSelectPrefix = "department_select_"

func DepartmentSelectCustomId(sessionId string) string {
	return departmentSelectPrefix + sessionId
}

func IsDepartmentSelectCustomId(customId string) bool {
	return strings.HasPrefix(customId, departmentSelectPrefix)
}

func DepartmentSelectSessionId(customId string) string {
	return strings.TrimPrefix(customId, departmentSelectPrefix)
}

// BuildDepartmentPrompt renders the embed and select menu sent to a user
// opening a ticket. Option values are indices into the session snapshot.
func BuildDepartmentPrompt(sessionId string, departments []dbclient.Department) (*embed.Embed, component.Component) {
	promptEmbed := utils.BuildEmbedRaw(
		customisation.Blue.Default(),
		i18n.GetMessage(i18n.TitleDepartmentPrompt),
		i18n.GetMessage(i18n.MessageDepartmentPrompt),
		nil,
	)

	return promptEmbed, component.BuildActionRow(buildDepartmentSelect(sessionId, departments, false))
}

// BuildDisabledDepartmentSelect re-renders the select menu greyed out, used
// once a selection has resolved.
func BuildDisabledDepartmentSelect(sessionId string, departments []dbclient.Department) component.Component {
	return component.BuildActionRow(buildDepartmentSelect(sessionId, departments, true))
}

func departmentSelectOptions(departments []dbclient.Department) []component.SelectOption {
	options := make([]component.SelectOption, len(departments))
	for i, department := range departments {
		options[i] = component.SelectOption{
			Label: department.Name,
			Value: strconv.Itoa(i),
		}
	}

	return options
}

func buildDepartmentSelect(sessionId string, departments []dbclient.Department, disabled bool) component.Component {
	return component.BuildSelectMenu(component.SelectMenu{
		CustomId:    DepartmentSelectCustomId(sessionId),
		Options:     departmentSelectOptions(departments),
		Placeholder: "Choose a department...",
		MinValues:   utils.Ptr(1),
		MaxValues:   utils.Ptr(1),
		Disabled:    disabled,
	})
}

// SelectedDepartment resolves a select menu submission back into the session
// snapshot. Reports false for missing values, non-numeric values and indices
// outside the snapshot.
func SelectedDepartment(departments []dbclient.Department, values []string) (dbclient.Department, bool) {
	if len(values) == 0 {
		return dbclient.Department{}, false
	}

	index, err := strconv.Atoi(values[0])
	if err != nil || index < 0 || index >= len(departments) {
		return dbclient.Department{}, false
	}

	return departments[index], true
}

// FormatThreadTopic is stamped onto the ticket channel after creation,
// overwriting the topic the thread manager set.
func FormatThreadTopic(departmentName string, userId uint64) string {
	return fmt.Sprintf("Department: %s | User ID: %d", departmentName, userId)
}
