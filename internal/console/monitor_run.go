package console

import (
	"context"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/mgrushin/mars-monitor/internal/config"
	"github.com/mgrushin/mars-monitor/internal/metrics"
)

type MonitorRunCommand struct {
}

func NewMonitorRunCommand() *MonitorRunCommand {
	cmd := MonitorRunCommand{}
	return &cmd
}

func (cmd *MonitorRunCommand) Name() string {
	return "monitor:run"
}

func (cmd *MonitorRunCommand) Description() string {
	return "polls the game server and notifies players about state changes"
}

func (cmd *MonitorRunCommand) Run() error {
	conf := config.GetConfig()

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

	mon, _, _, _, err := buildMonitor(conf, meter)
	if err != nil {
		return err
	}

	mon.Run(ctx)
	return nil
}
