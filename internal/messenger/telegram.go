package messenger

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	tele "gopkg.in/telebot.v4"
)

// Telegram sends notifications through the Telegram Bot API. Recipient
// addresses are strings "chat_id" or "chat_id,thread_id".
type Telegram struct {
	bot *tele.Bot
}

// NewTelegram creates a Telegram dispatcher. The bot is created without
// a poller, inbound updates are wired separately.
func NewTelegram(token string) (*Telegram, error) {
	pref := tele.Settings{
		Token: token,
	}
	b, err := tele.NewBot(pref)
	if err != nil {
		slog.Error("unable to create bot processor object", "error", err)
		return nil, err
	}
	return &Telegram{bot: b}, nil
}

// Bot exposes the underlying bot so handlers can be attached to it.
func (t *Telegram) Bot() *tele.Bot {
	return t.bot
}

// Send delivers one text message to a chat, optionally into a thread.
func (t *Telegram) Send(recipient, message string) error {
	chatID, threadID, err := parseRecipient(recipient)
	if err != nil {
		return err
	}
	if _, err = t.bot.Send(&tele.User{ID: chatID}, message, &tele.SendOptions{
		ThreadID: threadID, DisableWebPagePreview: true}); err != nil {
		return fmt.Errorf("telegram send to chat %d failed: %w", chatID, err)
	}
	slog.Debug("notification sent", "chat_id", chatID, "thread_id", threadID)
	return nil
}

// parseRecipient splits a "chat_id" or "chat_id,thread_id" address.
func parseRecipient(recipient string) (chatID int64, threadID int, err error) {
	parts := strings.SplitN(recipient, ",", 2)
	chatID, err = strconv.ParseInt(strings.TrimSpace(parts[0]), 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("recipient %q is not a telegram chat id: %w", recipient, err)
	}
	if len(parts) == 2 {
		threadID, err = strconv.Atoi(strings.TrimSpace(parts[1]))
		if err != nil {
			return 0, 0, fmt.Errorf("recipient %q has malformed thread id: %w", recipient, err)
		}
	}
	return chatID, threadID, nil
}
