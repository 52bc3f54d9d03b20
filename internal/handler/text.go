package handler

import (
	"context"
	"log/slog"

	tele "gopkg.in/telebot.v4"

	"github.com/mgrushin/mars-monitor/internal/command"
	"github.com/mgrushin/mars-monitor/internal/entity"
)

// NewTextHandler routes plain Telegram messages into the command handler,
// so "!gameid <id>" works over Telegram the same way it does over the
// WhatsApp webhook.
func NewTextHandler(cmds *command.Handler, mon command.SessionSwitcher, bot entity.MessageDispatcher) tele.HandlerFunc {
	return func(c tele.Context) error {
		slog.Info("got message", "from", formatHumanName(c.Sender()), "chat", formatHumanName(c.Chat()))

		sender := senderAddress(c)
		if sender == "" {
			return nil
		}
		action := cmds.Handle(context.Background(), c.Text(), sender)
		cmds.Apply(action, sender, mon, bot)
		return nil
	}
}
