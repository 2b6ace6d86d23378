package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestEscapeMarkdownPlainText(t *testing.T) {
	require.Equal(t, "General Support", EscapeMarkdown("General Support"))
}

func TestEscapeMarkdownFormattingCharacters(t *testing.T) {
	require.Equal(t, "\\*\\*Billing\\*\\*", EscapeMarkdown("**Billing**"))
	require.Equal(t, "\\_\\_report\\_\\_", EscapeMarkdown("__report__"))
	require.Equal(t, "\\`code\\`", EscapeMarkdown("`code`"))
	require.Equal(t, "\\~\\~gone\\~\\~", EscapeMarkdown("~~gone~~"))
	require.Equal(t, "\\|\\|secret\\|\\|", EscapeMarkdown("||secret||"))
	require.Equal(t, "\\# heading", EscapeMarkdown("# heading"))
}

func TestSnowflakeToTime(t *testing.T) {
	// Discord epoch itself
	require.Equal(t, time.UnixMilli(1420070400000), SnowflakeToTime(0))

	// one second of timestamp bits
	require.Equal(t, time.UnixMilli(1420070401000), SnowflakeToTime(1000<<22))
}
