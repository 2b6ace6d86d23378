package threads

import (
	"testing"

	"github.com/TicketsBot-cloud/gdl/objects/user"
	"github.com/stretchr/testify/require"
)

func TestChannelNameSanitised(t *testing.T) {
	name := ChannelName(user.User{Id: 1, Username: "Some User!"})
	require.Equal(t, "someuser", name)
}

func TestChannelNameKeepsSeparators(t *testing.T) {
	name := ChannelName(user.User{Id: 1, Username: "some-user_1"})
	require.Equal(t, "some-user_1", name)
}

func TestChannelNameFallsBackToId(t *testing.T) {
	name := ChannelName(user.User{Id: 42, Username: "!!!"})
	require.Equal(t, "ticket-42", name)
}
