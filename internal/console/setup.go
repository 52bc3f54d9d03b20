package console

import (
	"github.com/mgrushin/mars-monitor/internal/config"
	"github.com/mgrushin/mars-monitor/internal/entity"
	"github.com/mgrushin/mars-monitor/internal/gameapi"
	"github.com/mgrushin/mars-monitor/internal/messenger"
	"github.com/mgrushin/mars-monitor/internal/metrics"
	"github.com/mgrushin/mars-monitor/internal/monitor"
	"github.com/mgrushin/mars-monitor/internal/notifier"
)

// buildMonitor assembles the monitor with its collaborators from the
// configuration: directory, game API client, engine and dispatcher.
func buildMonitor(conf *config.Config, meter *metrics.Meter) (*monitor.Monitor, *gameapi.Client, *entity.Directory, entity.MessageDispatcher, error) {
	dir := entity.NewDirectory(conf.Players, conf.Colors)
	client := gameapi.NewClient(conf.BaseURL, conf.FetchTimeout)
	engine := notifier.NewEngine(dir)

	bot, err := messenger.New(conf)
	if err != nil {
		return nil, nil, nil, nil, err
	}

	mon := monitor.New(client, engine, bot, dir, conf.GameID, conf.PollInterval, meter)
	return mon, client, dir, bot, nil
}
