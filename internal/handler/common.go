package handler

import (
	"fmt"
	"strings"

	tele "gopkg.in/telebot.v4"
)

// formatHumanName renders a Telegram user or chat for log lines.
func formatHumanName(guest any) string {
	name := ""
	// guest is telegram user object
	user, ok := guest.(*tele.User)
	if user != nil && ok {
		if len(user.FirstName) > 0 {
			name = user.FirstName
			if len(user.LastName) > 0 {
				name += fmt.Sprintf(" %s", user.LastName)
			}
		}
		if len(user.Username) > 0 {
			name += fmt.Sprintf(" (@%s)", user.Username)
		}
	}
	// guest is telegram chat object
	chat, ok := guest.(*tele.Chat)
	if chat != nil && ok {
		if len(chat.Title) > 0 {
			name = fmt.Sprintf("'%s'", chat.Title)
		}
		if len(chat.Username) > 0 {
			name += fmt.Sprintf(" (@%s)", chat.Username)
		}
	}
	return strings.Trim(name, " ")
}

// senderAddress is the directory address form of a Telegram sender.
func senderAddress(c tele.Context) string {
	if c.Sender() == nil {
		return ""
	}
	return fmt.Sprintf("%d", c.Sender().ID)
}
