package constants

import "time"

const (
	TimeoutCommand          = time.Second * 5
	TimeoutOpenTicket       = time.Second * 15
	TimeoutDepartmentPrompt = time.Second * 300
)
