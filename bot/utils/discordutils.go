package utils

import (
	"strings"
	"time"
)

const DiscordEpoch uint64 = 1420070400000

func SnowflakeToTime(snowflake uint64) time.Time {
	return time.UnixMilli(int64((snowflake >> 22) + DiscordEpoch))
}

var markdownEscaper = strings.NewReplacer(
	"*", "\\*",
	"_", "\\_",
	"`", "\\`",
	"~", "\\~",
	"|", "\\|",
	"#", "\\#",
)

// EscapeMarkdown neutralises Discord formatting in user-supplied text, such
// as department names rendered into embeds.
func EscapeMarkdown(s string) string {
	return markdownEscaper.Replace(s)
}
