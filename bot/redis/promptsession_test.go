package redis

import (
	"encoding/json"
	"testing"

	"github.com/modmail-cloud/departments-worker/bot/dbclient"
	"github.com/stretchr/testify/require"
)

func TestPromptSessionRoundTrip(t *testing.T) {
	categoryId := uint64(42)

	session := PromptSession{
		UserId: 123456789,
		Departments: []dbclient.Department{
			{Name: "General Support"},
			{Name: "Billing", CategoryId: &categoryId},
		},
	}

	encoded, err := json.Marshal(session)
	require.NoError(t, err)

	var decoded PromptSession
	require.NoError(t, json.Unmarshal(encoded, &decoded))

	require.Equal(t, session.UserId, decoded.UserId)
	require.Len(t, decoded.Departments, 2)
	require.Nil(t, decoded.Departments[0].CategoryId)
	require.NotNil(t, decoded.Departments[1].CategoryId)
	require.Equal(t, categoryId, *decoded.Departments[1].CategoryId)
}

func TestPromptKey(t *testing.T) {
	require.Equal(t, "departments:prompt:abc-123", promptKey("abc-123"))
}
