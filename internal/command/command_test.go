package command

import (
	"context"
	"errors"
	"testing"

	"github.com/mgrushin/mars-monitor/internal/entity"
)

// fakeFetcher accepts a fixed set of game ids.
type fakeFetcher struct {
	valid map[string]bool
	calls int
}

func (f *fakeFetcher) FetchState(_ context.Context, gameID string) (*entity.Snapshot, error) {
	f.calls++
	if f.valid[gameID] {
		return &entity.Snapshot{Phase: "action"}, nil
	}
	return nil, errors.New("game not found")
}

type fakeSwitcher struct {
	switched  []string
	broadcast []string
}

func (f *fakeSwitcher) SwitchGame(newID string) string {
	f.switched = append(f.switched, newID)
	return "gOld"
}

func (f *fakeSwitcher) Broadcast(message string) {
	f.broadcast = append(f.broadcast, message)
}

type fakeDispatcher struct {
	sent map[string][]string
	err  error
}

func (f *fakeDispatcher) Send(recipient, message string) error {
	if f.sent == nil {
		f.sent = map[string][]string{}
	}
	f.sent[recipient] = append(f.sent[recipient], message)
	return f.err
}

func testDirectory() *entity.Directory {
	return entity.NewDirectory(map[string]string{"Nick": "+15550001"}, nil)
}

func TestHandler_Handle(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		sender   string
		wantKind Kind
		wantID   string
	}{
		{"plain chatter", "hello", "+15550001", Ignore, ""},
		{"valid switch", "!gameid gabc123", "+15550001", ChangeSession, "gabc123"},
		{"invalid game id", "!gameid gbogus", "+15550001", RejectInvalidSession, "gbogus"},
		{"missing argument", "!gameid", "+15550001", Ignore, ""},
		{"too many arguments", "!gameid one two", "+15550001", Ignore, ""},
		{"surrounding spaces", "  !gameid gabc123  ", "+15550001", ChangeSession, "gabc123"},
		{"unknown sender", "!gameid gabc123", "+19990000", Ignore, ""},
		{"empty text", "", "+15550001", Ignore, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fetcher := &fakeFetcher{valid: map[string]bool{"gabc123": true}}
			handler := NewHandler(testDirectory(), fetcher)

			action := handler.Handle(context.Background(), tt.text, tt.sender)
			if action.Kind != tt.wantKind {
				t.Errorf("Handle(%q) kind = %v, want %v", tt.text, action.Kind, tt.wantKind)
			}
			if action.GameID != tt.wantID {
				t.Errorf("Handle(%q) game id = %q, want %q", tt.text, action.GameID, tt.wantID)
			}
		})
	}
}

func TestHandler_Handle_UnknownSenderSkipsValidation(t *testing.T) {
	fetcher := &fakeFetcher{valid: map[string]bool{"gabc123": true}}
	handler := NewHandler(testDirectory(), fetcher)

	handler.Handle(context.Background(), "!gameid gabc123", "+19990000")
	if fetcher.calls != 0 {
		t.Errorf("Handle() validation calls = %d, want 0 for unknown sender", fetcher.calls)
	}
}

func TestHandler_Apply_ChangeSession(t *testing.T) {
	handler := NewHandler(testDirectory(), &fakeFetcher{})
	switcher := &fakeSwitcher{}
	dispatcher := &fakeDispatcher{}

	handler.Apply(Action{Kind: ChangeSession, GameID: "gNew"}, "+15550001", switcher, dispatcher)

	if len(switcher.switched) != 1 || switcher.switched[0] != "gNew" {
		t.Errorf("Apply() switched = %v, want [gNew]", switcher.switched)
	}
	if len(switcher.broadcast) != 1 {
		t.Fatalf("Apply() broadcasts = %d, want 1", len(switcher.broadcast))
	}
	if len(dispatcher.sent) != 0 {
		t.Errorf("Apply() direct sends = %v, want none on success", dispatcher.sent)
	}
}

func TestHandler_Apply_RejectRepliesToSenderOnly(t *testing.T) {
	handler := NewHandler(testDirectory(), &fakeFetcher{})
	switcher := &fakeSwitcher{}
	dispatcher := &fakeDispatcher{}

	handler.Apply(Action{Kind: RejectInvalidSession, GameID: "gBogus"}, "+15550001", switcher, dispatcher)

	if len(switcher.switched) != 0 {
		t.Errorf("Apply() switched = %v, want no switch on reject", switcher.switched)
	}
	if len(switcher.broadcast) != 0 {
		t.Errorf("Apply() broadcasts = %v, want none on reject", switcher.broadcast)
	}
	msgs := dispatcher.sent["+15550001"]
	if len(msgs) != 1 {
		t.Fatalf("Apply() sends to sender = %d, want 1", len(msgs))
	}
}

func TestHandler_Apply_Ignore(t *testing.T) {
	handler := NewHandler(testDirectory(), &fakeFetcher{})
	switcher := &fakeSwitcher{}
	dispatcher := &fakeDispatcher{}

	handler.Apply(Action{Kind: Ignore}, "+15550001", switcher, dispatcher)

	if len(switcher.switched) != 0 || len(switcher.broadcast) != 0 || len(dispatcher.sent) != 0 {
		t.Error("Apply() produced side effects for Ignore action")
	}
}
