package console

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	tele "gopkg.in/telebot.v4"

	"github.com/mgrushin/mars-monitor/internal/command"
	"github.com/mgrushin/mars-monitor/internal/config"
	"github.com/mgrushin/mars-monitor/internal/entity"
	"github.com/mgrushin/mars-monitor/internal/handler"
	"github.com/mgrushin/mars-monitor/internal/messenger"
	"github.com/mgrushin/mars-monitor/internal/metrics"
	middle "github.com/mgrushin/mars-monitor/internal/middleware"
	"github.com/mgrushin/mars-monitor/internal/webhook"
)

type MonitorServeCommand struct {
}

func NewMonitorServeCommand() *MonitorServeCommand {
	cmd := MonitorServeCommand{}
	return &cmd
}

func (cmd *MonitorServeCommand) Name() string {
	return "monitor:serve"
}

func (cmd *MonitorServeCommand) Description() string {
	return "runs the monitor together with the webhook server for player commands"
}

func (cmd *MonitorServeCommand) Run() error {
	conf := config.GetConfig()
	if len(conf.WebhookVerifyToken) == 0 {
		return errors.New("webhook verify token not found in the environment (WEBHOOK_VERIFY_TOKEN)")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	meter, err := metrics.Setup(ctx, conf.MetricsEnabled)
	if err != nil {
		return err
	}
	defer func() {
		if err := meter.Shutdown(context.Background()); err != nil {
			slog.Error("failed to shut down metrics exporter", "error", err)
		}
	}()

	mon, client, dir, bot, err := buildMonitor(conf, meter)
	if err != nil {
		return err
	}

	cmds := command.NewHandler(dir, client)
	srv := webhook.NewServer(conf.WebhookAddr, conf.WebhookVerifyToken, cmds, mon, bot, meter)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("webhook server failed", "error", err)
		}
	}()

	// Telegram players get the same command over long polling.
	if tg, ok := bot.(*messenger.Telegram); ok {
		go runTelegramPoller(ctx, tg, cmds, mon, bot)
	}

	mon.Run(ctx)
	return nil
}

// runTelegramPoller attaches the command handlers to the bot and polls
// until the context is cancelled.
func runTelegramPoller(ctx context.Context, tg *messenger.Telegram,
	cmds *command.Handler, mon command.SessionSwitcher, bot entity.MessageDispatcher) {
	b := tg.Bot()
	b.Poller = &tele.LongPoller{Timeout: 10 * time.Second}
	b.Use(middle.Logger(slog.Default()))
	b.Handle("/help", handler.NewHelpHandler())
	b.Handle(tele.OnText, handler.NewTextHandler(cmds, mon, bot))

	go func() {
		<-ctx.Done()
		slog.Info("stopping the telegram poll")
		b.Stop()
	}()

	slog.Info("starting the telegram poll")
	b.Start()
}
