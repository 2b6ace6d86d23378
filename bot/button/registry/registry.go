package registry

import (
	"time"

	"github.com/modmail-cloud/departments-worker/bot/button/registry/matcher"
	"github.com/modmail-cloud/departments-worker/bot/command/context"
)

type Flag uint8

const (
	GuildAllowed Flag = 1 << iota
	DMsAllowed
)

func SumFlags(flags ...Flag) Flag {
	var sum Flag
	for _, flag := range flags {
		sum |= flag
	}

	return sum
}

type Properties struct {
	Flags   Flag
	Timeout time.Duration
}

func (p Properties) HasFlag(flag Flag) bool {
	return p.Flags&flag == flag
}

type ComponentHandler interface {
	Matcher() matcher.Matcher
	Properties() Properties
	Execute(ctx *context.SelectMenuContext)
}

type Registry []ComponentHandler

// FindHandler returns the first handler whose matcher accepts the custom id.
func (r Registry) FindHandler(customId string) ComponentHandler {
	for _, handler := range r {
		if handler.Matcher().Matches(customId) {
			return handler
		}
	}

	return nil
}
