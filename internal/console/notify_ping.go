package console

import (
	"log/slog"

	"github.com/mgrushin/mars-monitor/internal/config"
	"github.com/mgrushin/mars-monitor/internal/entity"
	"github.com/mgrushin/mars-monitor/internal/messenger"
	"github.com/mgrushin/mars-monitor/internal/notifier"
)

type NotifyPingCommand struct {
}

func NewNotifyPingCommand() *NotifyPingCommand {
	cmd := NotifyPingCommand{}
	return &cmd
}

func (cmd *NotifyPingCommand) Name() string {
	return "notify:ping"
}

func (cmd *NotifyPingCommand) Description() string {
	return "sends the startup message to every configured recipient"
}

func (cmd *NotifyPingCommand) Run() error {
	conf := config.GetConfig()

	dir := entity.NewDirectory(conf.Players, conf.Colors)
	bot, err := messenger.New(conf)
	if err != nil {
		return err
	}

	sent := 0
	for _, addr := range dir.Addresses() {
		if err = bot.Send(addr, notifier.MsgStartup); err != nil {
			slog.Error("failed to send notification", "recipient", addr, "error", err)
			continue
		}
		sent++
	}
	slog.Info("ping sent", "recipients_count", sent)

	return nil
}
