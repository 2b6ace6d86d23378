package errorcontext

import "strconv"

type WorkerErrorContext struct {
	Guild   uint64
	User    uint64
	Channel uint64
}

func (c WorkerErrorContext) Tags() map[string]string {
	tags := make(map[string]string, 3)

	if c.Guild != 0 {
		tags["guild"] = strconv.FormatUint(c.Guild, 10)
	}

	if c.User != 0 {
		tags["user"] = strconv.FormatUint(c.User, 10)
	}

	if c.Channel != 0 {
		tags["channel"] = strconv.FormatUint(c.Channel, 10)
	}

	return tags
}
