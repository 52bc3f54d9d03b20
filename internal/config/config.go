package config

import (
	"log/slog"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Messenger backends the monitor can deliver through.
const (
	MessengerWhatsApp = "whatsapp"
	MessengerTelegram = "telegram"
	MessengerDiscord  = "discord"
)

const (
	defaultGameID       = "gca44cdf55303"
	defaultPollInterval = 5 * time.Second
	defaultFetchTimeout = 15 * time.Second
	defaultWebhookAddr  = ":8080"
)

type Config struct {
	Debug        bool
	GameID       string
	BaseURL      string
	PollInterval time.Duration
	FetchTimeout time.Duration
	// Players maps player names to contact addresses, Colors maps color
	// tags to player names when the roster does not carry them.
	Players map[string]string
	Colors  map[string]string

	Messenger          string
	WhatsAppToken      string
	WhatsAppPhoneID    string
	TelegramToken      string
	DiscordToken       string
	WebhookAddr        string
	WebhookVerifyToken string
	MetricsEnabled     bool
}

// fileConfig mirrors the optional YAML file. Secrets are environment-only
// on purpose and have no place here.
type fileConfig struct {
	GameID       string            `yaml:"game_id"`
	BaseURL      string            `yaml:"base_url"`
	PollInterval string            `yaml:"poll_interval"`
	FetchTimeout string            `yaml:"fetch_timeout"`
	Players      map[string]string `yaml:"players"`
	Colors       map[string]string `yaml:"colors"`
	Messenger    string            `yaml:"messenger"`
	WebhookAddr  string            `yaml:"webhook_addr"`
	Metrics      bool              `yaml:"metrics"`
}

var config *Config

func GetConfig() *Config {
	if config != nil {
		return config
	}
	config = &Config{
		GameID:       defaultGameID,
		BaseURL:      "", // gameapi falls back to the public server
		PollInterval: defaultPollInterval,
		FetchTimeout: defaultFetchTimeout,
		Messenger:    MessengerWhatsApp,
		WebhookAddr:  defaultWebhookAddr,
		Players:      map[string]string{},
		Colors:       map[string]string{},
	}

	// Debug mode
	debug := os.Getenv("MONITOR_DEBUG")
	if strings.ToLower(debug) == "true" || debug == "1" {
		config.Debug = true
	}
	if config.Debug {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}

	// Optional YAML file, environment still wins
	if path := os.Getenv("MONITOR_CONFIG"); len(path) > 0 {
		if err := loadFile(config, path); err != nil {
			slog.Error("Unable to load configuration file", "path", path, "error", err)
			os.Exit(1)
		}
	}

	// Watched game
	if gameID := os.Getenv("MONITOR_GAME_ID"); len(gameID) > 0 {
		config.GameID = gameID
	}
	if baseURL := os.Getenv("MONITOR_BASE_URL"); len(baseURL) > 0 {
		config.BaseURL = strings.TrimRight(baseURL, "/")
	}
	if interval := os.Getenv("MONITOR_POLL_INTERVAL"); len(interval) > 0 {
		config.PollInterval = parseDuration("MONITOR_POLL_INTERVAL", interval)
	}
	if timeout := os.Getenv("MONITOR_FETCH_TIMEOUT"); len(timeout) > 0 {
		config.FetchTimeout = parseDuration("MONITOR_FETCH_TIMEOUT", timeout)
	}

	// Recipients
	if players := os.Getenv("MONITOR_PLAYERS"); len(players) > 0 {
		config.Players = parsePairs(players)
	}
	if colors := os.Getenv("MONITOR_COLORS"); len(colors) > 0 {
		config.Colors = parsePairs(colors)
	}
	if len(config.Players) == 0 {
		slog.Warn("No players configured in the environment (MONITOR_PLAYERS), nobody will be notified")
	}

	// Messenger backend and its credentials
	if messenger := os.Getenv("MONITOR_MESSENGER"); len(messenger) > 0 {
		config.Messenger = strings.ToLower(messenger)
	}
	config.WhatsAppToken = os.Getenv("WHATSAPP_TOKEN")
	config.WhatsAppPhoneID = os.Getenv("WHATSAPP_PHONE_ID")
	config.TelegramToken = os.Getenv("BOT_TELEGRAM_TOKEN")
	config.DiscordToken = os.Getenv("DISCORD_BOT_TOKEN")
	switch config.Messenger {
	case MessengerWhatsApp:
		if len(config.WhatsAppToken) == 0 {
			slog.Error("WhatsApp token not found in the environment (WHATSAPP_TOKEN)")
			os.Exit(1)
		}
		if len(config.WhatsAppPhoneID) == 0 {
			slog.Error("WhatsApp phone number id not found in the environment (WHATSAPP_PHONE_ID)")
			os.Exit(1)
		}
	case MessengerTelegram:
		if len(config.TelegramToken) == 0 {
			slog.Error("Bot token not found in the environment (BOT_TELEGRAM_TOKEN)")
			os.Exit(1)
		}
	case MessengerDiscord:
		if len(config.DiscordToken) == 0 {
			slog.Error("Discord bot token not found in the environment (DISCORD_BOT_TOKEN)")
			os.Exit(1)
		}
	default:
		slog.Error("Unknown messenger backend configured (MONITOR_MESSENGER)", "messenger", config.Messenger)
		os.Exit(1)
	}

	// Webhook server
	if addr := os.Getenv("WEBHOOK_ADDR"); len(addr) > 0 {
		config.WebhookAddr = addr
	}
	config.WebhookVerifyToken = os.Getenv("WEBHOOK_VERIFY_TOKEN")

	// Metrics
	metrics := os.Getenv("MONITOR_METRICS")
	if strings.ToLower(metrics) == "true" || metrics == "1" {
		config.MetricsEnabled = true
	}

	slog.Debug("Configuration parameters",
		"MONITOR_DEBUG", config.Debug,
		"MONITOR_GAME_ID", config.GameID,
		"MONITOR_BASE_URL", config.BaseURL,
		"MONITOR_POLL_INTERVAL", config.PollInterval,
		"MONITOR_FETCH_TIMEOUT", config.FetchTimeout,
		"MONITOR_PLAYERS", config.Players,
		"MONITOR_COLORS", config.Colors,
		"MONITOR_MESSENGER", config.Messenger,
		"WEBHOOK_ADDR", config.WebhookAddr,
		"MONITOR_METRICS", config.MetricsEnabled)

	return config
}

// loadFile overlays values from a YAML file onto the defaults.
func loadFile(conf *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var fc fileConfig
	if err = yaml.Unmarshal(data, &fc); err != nil {
		return err
	}
	if len(fc.GameID) > 0 {
		conf.GameID = fc.GameID
	}
	if len(fc.BaseURL) > 0 {
		conf.BaseURL = strings.TrimRight(fc.BaseURL, "/")
	}
	if len(fc.PollInterval) > 0 {
		conf.PollInterval = parseDuration("poll_interval", fc.PollInterval)
	}
	if len(fc.FetchTimeout) > 0 {
		conf.FetchTimeout = parseDuration("fetch_timeout", fc.FetchTimeout)
	}
	if len(fc.Players) > 0 {
		conf.Players = fc.Players
	}
	if len(fc.Colors) > 0 {
		conf.Colors = fc.Colors
	}
	if len(fc.Messenger) > 0 {
		conf.Messenger = strings.ToLower(fc.Messenger)
	}
	if len(fc.WebhookAddr) > 0 {
		conf.WebhookAddr = fc.WebhookAddr
	}
	if fc.Metrics {
		conf.MetricsEnabled = true
	}
	slog.Debug("configuration file loaded", "path", path)
	return nil
}

// parseDuration exits on malformed values, a bad interval would
// otherwise surface as a zero ticker panic much later.
func parseDuration(key, value string) time.Duration {
	d, err := time.ParseDuration(value)
	if err != nil || d <= 0 {
		slog.Error("Invalid duration in configuration", "key", key, "value", value)
		os.Exit(1)
	}
	return d
}

// parsePairs splits "key:value;key:value" strings used for player and
// color maps. Malformed pairs are skipped with a warning.
func parsePairs(value string) map[string]string {
	result := make(map[string]string)
	for _, pair := range strings.Split(value, ";") {
		pair = strings.TrimSpace(pair)
		if len(pair) == 0 {
			continue
		}
		parts := strings.SplitN(pair, ":", 2)
		if len(parts) != 2 || len(strings.TrimSpace(parts[0])) == 0 || len(strings.TrimSpace(parts[1])) == 0 {
			slog.Warn("skipping malformed configuration pair", "pair", pair)
			continue
		}
		result[strings.TrimSpace(parts[0])] = strings.TrimSpace(parts[1])
	}
	return result
}
