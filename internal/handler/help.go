package handler

import (
	"log/slog"

	tele "gopkg.in/telebot.v4"
)

const commonHelp = `This bot watches a Terraforming Mars game and pings you when it is your turn.

Commands:

!gameid <id> - switch the watched game
/help - this help`

func NewHelpHandler() tele.HandlerFunc {
	return func(c tele.Context) error {
		slog.Info("got command /help", "from", formatHumanName(c.Sender()), "chat", formatHumanName(c.Chat()))
		return c.Send(commonHelp)
	}
}
