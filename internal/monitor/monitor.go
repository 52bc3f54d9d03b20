package monitor

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/mgrushin/mars-monitor/internal/entity"
	"github.com/mgrushin/mars-monitor/internal/metrics"
	"github.com/mgrushin/mars-monitor/internal/notifier"
)

// StateFetcher loads the current snapshot of a game session.
type StateFetcher interface {
	FetchState(ctx context.Context, gameID string) (*entity.Snapshot, error)
}

// Monitor owns the poll loop: fetch the watched game, diff against the
// baseline, dispatch whatever the engine emitted. The watched game id
// and the baseline are the only mutable state and sit behind one mutex,
// commands switch the game while the loop keeps running.
type Monitor struct {
	fetcher  StateFetcher
	engine   *notifier.Engine
	bot      entity.MessageDispatcher
	dir      *entity.Directory
	interval time.Duration
	meter    *metrics.Meter

	mu       sync.Mutex
	gameID   string
	baseline *entity.Snapshot
}

// New creates a monitor watching gameID. The meter may be nil.
func New(fetcher StateFetcher, engine *notifier.Engine, bot entity.MessageDispatcher,
	dir *entity.Directory, gameID string, interval time.Duration, meter *metrics.Meter) *Monitor {
	return &Monitor{
		fetcher:  fetcher,
		engine:   engine,
		bot:      bot,
		dir:      dir,
		interval: interval,
		meter:    meter,
		gameID:   gameID,
	}
}

// GameID returns the currently watched game id.
func (m *Monitor) GameID() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.gameID
}

// SwitchGame points the monitor at another game and clears the baseline,
// so the first snapshot of the new game is treated as a fresh start.
// Returns the previously watched id.
func (m *Monitor) SwitchGame(newID string) (oldID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	oldID = m.gameID
	m.gameID = newID
	m.baseline = nil
	return oldID
}

// Broadcast sends a message to every configured recipient. Failures are
// logged per recipient and never abort the fan-out.
func (m *Monitor) Broadcast(message string) {
	for _, addr := range m.dir.Addresses() {
		if err := m.bot.Send(addr, message); err != nil {
			slog.Error("failed to send notification", "recipient", addr, "error", err)
			m.meter.SendFailure(context.Background())
			continue
		}
		m.meter.NotificationSent(context.Background())
	}
}

// Run announces the monitor and polls until the context is cancelled.
func (m *Monitor) Run(ctx context.Context) {
	slog.Info("starting game monitor",
		"game_id", m.GameID(),
		"poll_interval", m.interval,
		"recipients_count", m.dir.Size())
	m.Broadcast(notifier.MsgStartup)

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			slog.Info("game monitor stopped")
			return
		case <-ticker.C:
			m.Cycle(ctx)
		}
	}
}

// Cycle performs one poll: fetch, evaluate, replace the baseline, send.
// The fetch runs outside the mutex so a slow server never blocks
// commands; if the watched game changed mid-fetch the stale snapshot is
// discarded instead of contaminating the fresh baseline.
func (m *Monitor) Cycle(ctx context.Context) {
	m.mu.Lock()
	gameID := m.gameID
	m.mu.Unlock()

	m.meter.PollCycle(ctx)
	cur, err := m.fetcher.FetchState(ctx, gameID)
	if err != nil {
		slog.Error("failed to fetch game state", "game_id", gameID, "error", err)
		m.meter.FetchFailure(ctx)
		return
	}

	m.mu.Lock()
	if m.gameID != gameID {
		m.mu.Unlock()
		slog.Debug("watched game changed mid-fetch, snapshot discarded", "stale_game_id", gameID)
		return
	}
	events, diags := m.engine.Evaluate(m.baseline, cur)
	m.baseline = cur
	m.mu.Unlock()

	for _, diag := range diags {
		slog.Warn(diag, "game_id", gameID)
	}
	for _, ev := range events {
		if err = m.bot.Send(ev.Recipient, ev.Message); err != nil {
			slog.Error("failed to send notification", "recipient", ev.Recipient, "error", err)
			m.meter.SendFailure(ctx)
			continue
		}
		m.meter.NotificationSent(ctx)
		slog.Debug("notification sent", "recipient", ev.Recipient)
	}
}
