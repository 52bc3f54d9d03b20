package console

import (
	"context"
	"log/slog"

	"github.com/mgrushin/mars-monitor/internal/config"
	"github.com/mgrushin/mars-monitor/internal/gameapi"
)

type GameCheckCommand struct {
}

func NewGameCheckCommand() *GameCheckCommand {
	cmd := GameCheckCommand{}
	return &cmd
}

func (cmd *GameCheckCommand) Name() string {
	return "game:check"
}

func (cmd *GameCheckCommand) Description() string {
	return "fetches the watched game once and prints its state"
}

func (cmd *GameCheckCommand) Run() error {
	conf := config.GetConfig()

	ctx, cancel := context.WithTimeout(context.Background(), conf.FetchTimeout)
	defer cancel()

	client := gameapi.NewClient(conf.BaseURL, conf.FetchTimeout)
	snapshot, err := client.FetchState(ctx, conf.GameID)
	if err != nil {
		return err
	}

	slog.Info("game state fetched",
		"game_id", conf.GameID,
		"phase", snapshot.Phase,
		"active_player", snapshot.ActivePlayer,
		"waiting_for", snapshot.WaitingFor,
		"players_count", len(snapshot.Players))
	for _, player := range snapshot.Players {
		slog.Info("roster entry", "color", player.Color, "name", player.Name)
	}

	return nil
}
