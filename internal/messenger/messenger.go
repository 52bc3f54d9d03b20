package messenger

import (
	"fmt"

	"github.com/mgrushin/mars-monitor/internal/config"
	"github.com/mgrushin/mars-monitor/internal/entity"
)

// New returns the [entity.MessageDispatcher] configured by MONITOR_MESSENGER.
// Recipient addresses are interpreted by the backend: phone numbers for
// WhatsApp, chat ids for Telegram, channel ids for Discord.
func New(conf *config.Config) (entity.MessageDispatcher, error) {
	switch conf.Messenger {
	case config.MessengerWhatsApp:
		return NewWhatsApp(conf.WhatsAppToken, conf.WhatsAppPhoneID), nil
	case config.MessengerTelegram:
		return NewTelegram(conf.TelegramToken)
	case config.MessengerDiscord:
		return NewDiscord(conf.DiscordToken)
	}
	return nil, fmt.Errorf("unknown messenger backend %q", conf.Messenger)
}
