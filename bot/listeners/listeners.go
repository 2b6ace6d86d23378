package listeners

import (
	"github.com/TicketsBot-cloud/gdl/gateway/payloads"
	"github.com/TicketsBot-cloud/gdl/gateway/payloads/events"
	jsoniter "github.com/json-iterator/go"
	"github.com/modmail-cloud/departments-worker/worker"
	"github.com/pkg/errors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// HandleEvent routes a decoded gateway payload to its listener. Unrecognised
// events are ignored.
func HandleEvent(wkr *worker.Context, payload payloads.Payload) error {
	switch payload.EventName {
	case "MESSAGE_CREATE":
		var data events.MessageCreate
		if err := json.Unmarshal(payload.Data, &data); err != nil {
			return errors.Wrap(err, "failed to decode MESSAGE_CREATE")
		}

		OnMessage(wkr, data)
	}

	return nil
}
