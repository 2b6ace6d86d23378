package main

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"flag"
	"fmt"
	"strings"

	"github.com/TicketsBot-cloud/gdl/rest"
	"github.com/modmail-cloud/departments-worker/bot/command/manager"
)

var (
	Token   = flag.String("token", "", "Bot token to create commands for")
	GuildId = flag.Uint64("guild", 0, "Guild to create the commands for; 0 registers globally")
)

func main() {
	flag.Parse()
	if *Token == "" {
		panic("no token")
	}

	applicationId := must(getApplicationId(*Token))

	commandManager := new(manager.CommandManager)
	commandManager.RegisterCommands()

	data := commandManager.BuildCreatePayload()

	if *GuildId == 0 {
		must(rest.ModifyGlobalCommands(context.Background(), *Token, nil, applicationId, data))
	} else {
		must(rest.ModifyGuildCommands(context.Background(), *Token, nil, applicationId, *GuildId, data))
	}

	cmds := must(rest.GetGlobalCommands(context.Background(), *Token, nil, applicationId))
	marshalled := must(json.MarshalIndent(cmds, "", "    "))
	fmt.Println(string(marshalled))
}

// getApplicationId fetches the application ID using the bot token
func getApplicationId(token string) (uint64, error) {
	parts := strings.SplitN(token, ".", 2)
	if len(parts) < 1 {
		return 0, fmt.Errorf("invalid token format")
	}

	decoded, err := base64.RawURLEncoding.DecodeString(parts[0])
	if err != nil {
		return 0, fmt.Errorf("failed to base64 decode token: %w", err)
	}

	var id uint64
	if _, err := fmt.Sscanf(string(decoded), "%d", &id); err != nil {
		return 0, fmt.Errorf("failed to parse application id: %w", err)
	}

	return id, nil
}

func must[T any](t T, err error) T {
	if err != nil {
		panic(err)
	}

	return t
}
