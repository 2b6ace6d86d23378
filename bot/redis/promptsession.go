package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-redis/redis/v8"
	"github.com/modmail-cloud/departments-worker/bot/constants"
	"github.com/modmail-cloud/departments-worker/bot/dbclient"
)

// PromptSession is the department list snapshotted when a prompt is sent.
// Selections resolve by index into this snapshot, so admin edits between the
// prompt and the click cannot skew the mapping. The key TTL doubles as the
// dropdown's inactivity expiry.
type PromptSession struct {
	UserId      uint64                `json:"user_id"`
	Departments []dbclient.Department `json:"departments"`
}

func promptKey(sessionId string) string {
	return fmt.Sprintf("departments:prompt:%s", sessionId)
}

func StorePromptSession(ctx context.Context, sessionId string, session PromptSession) error {
	encoded, err := json.Marshal(session)
	if err != nil {
		return err
	}

	return Client.Set(ctx, promptKey(sessionId), encoded, constants.TimeoutDepartmentPrompt).Err()
}

func GetPromptSession(ctx context.Context, sessionId string) (PromptSession, bool, error) {
	raw, err := Client.Get(ctx, promptKey(sessionId)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return PromptSession{}, false, nil
		}

		return PromptSession{}, false, err
	}

	var session PromptSession
	if err := json.Unmarshal(raw, &session); err != nil {
		return PromptSession{}, false, err
	}

	return session, true, nil
}

func DeletePromptSession(ctx context.Context, sessionId string) error {
	return Client.Del(ctx, promptKey(sessionId)).Err()
}
