package i18n

type MessageId string

const (
	Error   MessageId = "generic.error"
	Success MessageId = "generic.success"

	HelpDepartment         MessageId = "help.department"
	HelpDepartmentAdd      MessageId = "help.department.add"
	HelpDepartmentRemove   MessageId = "help.department.remove"
	HelpDepartmentList     MessageId = "help.department.list"
	HelpDepartmentCategory MessageId = "help.department.category"

	TitleDepartments               MessageId = "departments.title"
	TitleDepartmentPrompt          MessageId = "departments.prompt.title"
	TitleTicketCreated             MessageId = "departments.ticket.title"
	TitlePromptExpired             MessageId = "departments.prompt.expired.title"
	MessageDepartmentAdded         MessageId = "departments.added"
	MessageDepartmentRemoved       MessageId = "departments.removed"
	MessageDepartmentNotFound      MessageId = "departments.notfound"
	MessageDepartmentsNone         MessageId = "departments.none"
	MessageDepartmentCategorySet   MessageId = "departments.category.set"
	MessageDepartmentNotACategory  MessageId = "departments.category.invalid"
	MessageDepartmentPrompt        MessageId = "departments.prompt"
	MessageDepartmentMenuNotYours  MessageId = "departments.menu.notyours"
	MessageDepartmentTicketCreated MessageId = "departments.ticket.created"
	MessageDepartmentPromptExpired MessageId = "departments.prompt.expired"
	MessageNoPermission            MessageId = "permission.denied"
)

var messages = map[MessageId]string{
	Error:   "Error",
	Success: "Success",

	HelpDepartment:         "Manage ticket departments",
	HelpDepartmentAdd:      "Add a new department",
	HelpDepartmentRemove:   "Remove a department",
	HelpDepartmentList:     "List all departments",
	HelpDepartmentCategory: "Set a category for a department",

	TitleDepartments:      "Ticket Departments",
	TitleDepartmentPrompt: "Select a Department",
	TitleTicketCreated:    "Ticket Created",
	TitlePromptExpired:    "Prompt Expired",

	MessageDepartmentAdded:         "Added department: %s",
	MessageDepartmentRemoved:       "Removed department: %s",
	MessageDepartmentNotFound:      "Department '%s' not found.",
	MessageDepartmentsNone:         "No departments configured.",
	MessageDepartmentCategorySet:   "Set category for %s to %s",
	MessageDepartmentNotACategory:  "That channel is not a category.",
	MessageDepartmentPrompt:        "Please select the department that best matches your inquiry:",
	MessageDepartmentMenuNotYours:  "This menu is not for you.",
	MessageDepartmentTicketCreated: "Ticket created in %s department. A staff member will be with you shortly.",
	MessageDepartmentPromptExpired: "This department prompt has expired. Send another message to receive a new one.",
	MessageNoPermission:            "You do not have permission to use this command.",
}
