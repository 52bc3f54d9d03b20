package middle

import (
	"log/slog"

	tele "gopkg.in/telebot.v4"
)

// Logger returns a middleware that logs incoming Telegram updates.
func Logger(logger *slog.Logger) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			if c.Message() != nil && c.Chat() != nil {
				logger.Debug("update received", "update_id", c.Update().ID, "chat_id", c.Chat().ID)
			}
			return next(c)
		}
	}
}
