package command

import (
	"context"
	"log/slog"
	"strings"

	"github.com/mgrushin/mars-monitor/internal/entity"
	"github.com/mgrushin/mars-monitor/internal/notifier"
)

// gameIDKeyword opens the only command players can send.
const gameIDKeyword = "!gameid"

// Kind tells the caller what to do with an inbound message.
type Kind int

const (
	// Ignore means the message produced no action.
	Ignore Kind = iota
	// ChangeSession switches the watched game to Action.GameID.
	ChangeSession
	// RejectInvalidSession means Action.GameID failed validation and the
	// sender should be told so.
	RejectInvalidSession
)

// Action is the decision for one inbound message.
type Action struct {
	Kind   Kind
	GameID string
}

// StateFetcher validates candidate game ids by fetching them once.
type StateFetcher interface {
	FetchState(ctx context.Context, gameID string) (*entity.Snapshot, error)
}

// SessionSwitcher is the monitor surface command handling needs.
type SessionSwitcher interface {
	SwitchGame(newID string) (oldID string)
	Broadcast(message string)
}

// Handler turns inbound player messages into actions and applies them.
type Handler struct {
	dir     *entity.Directory
	fetcher StateFetcher
}

// NewHandler creates a command handler backed by the recipient directory
// for sender authorization and a fetcher for game id validation.
func NewHandler(dir *entity.Directory, fetcher StateFetcher) *Handler {
	return &Handler{dir: dir, fetcher: fetcher}
}

// Handle classifies one inbound message. Unknown senders and anything
// that is not exactly "!gameid <id>" are ignored. A candidate id is
// validated with a live fetch before ChangeSession is returned.
func (h *Handler) Handle(ctx context.Context, text, sender string) Action {
	name, ok := h.dir.NameByAddress(sender)
	if !ok {
		slog.Warn("inbound message from unknown sender ignored", "sender", sender)
		return Action{Kind: Ignore}
	}

	fields := strings.Fields(strings.TrimSpace(text))
	if len(fields) != 2 || fields[0] != gameIDKeyword {
		slog.Debug("inbound message is not a command", "player", name)
		return Action{Kind: Ignore}
	}

	gameID := fields[1]
	if _, err := h.fetcher.FetchState(ctx, gameID); err != nil {
		slog.Warn("candidate game id failed validation", "game_id", gameID, "player", name, "error", err)
		return Action{Kind: RejectInvalidSession, GameID: gameID}
	}

	slog.Info("game switch requested", "game_id", gameID, "player", name)
	return Action{Kind: ChangeSession, GameID: gameID}
}

// Apply performs the side effects of an action: a session switch with a
// confirmation broadcast, or a rejection notice to the sender alone.
func (h *Handler) Apply(action Action, sender string, mon SessionSwitcher, bot entity.MessageDispatcher) {
	switch action.Kind {
	case ChangeSession:
		oldID := mon.SwitchGame(action.GameID)
		slog.Info("watched game switched", "old_game_id", oldID, "new_game_id", action.GameID)
		mon.Broadcast(notifier.FormatGameChanged(oldID, action.GameID))
	case RejectInvalidSession:
		if err := bot.Send(sender, notifier.FormatGameRejected(action.GameID)); err != nil {
			slog.Error("failed to send rejection notice", "recipient", sender, "error", err)
		}
	case Ignore:
	}
}
