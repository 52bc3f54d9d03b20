package entity

import (
	"reflect"
	"testing"
)

func TestSnapshot_ActiveColors(t *testing.T) {
	tests := []struct {
		name     string
		snapshot *Snapshot
		want     []string
	}{
		{
			name:     "nil snapshot",
			snapshot: nil,
			want:     nil,
		},
		{
			name:     "empty snapshot",
			snapshot: &Snapshot{},
			want:     nil,
		},
		{
			name:     "active player only",
			snapshot: &Snapshot{ActivePlayer: "red"},
			want:     []string{"red"},
		},
		{
			name:     "single waiting color without active player",
			snapshot: &Snapshot{WaitingFor: []string{"green"}},
			want:     []string{"green"},
		},
		{
			name:     "multiple waiting colors win over active player",
			snapshot: &Snapshot{ActivePlayer: "red", WaitingFor: []string{"red", "blue"}},
			want:     []string{"red", "blue"},
		},
		{
			name:     "active player wins over single waiting color",
			snapshot: &Snapshot{ActivePlayer: "red", WaitingFor: []string{"blue"}},
			want:     []string{"red"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.snapshot.ActiveColors()
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ActiveColors() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSnapshot_NameByColor(t *testing.T) {
	snapshot := &Snapshot{
		Players: []Player{
			{Color: "red", Name: "Nick"},
			{Color: "blue", Name: "Tess"},
		},
	}

	if got := snapshot.NameByColor("blue"); got != "Tess" {
		t.Errorf("NameByColor(blue) = %q, want %q", got, "Tess")
	}
	if got := snapshot.NameByColor("yellow"); got != "" {
		t.Errorf("NameByColor(yellow) = %q, want empty", got)
	}

	var absent *Snapshot
	if got := absent.NameByColor("red"); got != "" {
		t.Errorf("NameByColor() on nil snapshot = %q, want empty", got)
	}
}

func TestSnapshot_InResearch(t *testing.T) {
	if (&Snapshot{Phase: PhaseResearch}).InResearch() != true {
		t.Error("InResearch() = false for research phase, want true")
	}
	if (&Snapshot{Phase: "action"}).InResearch() != false {
		t.Error("InResearch() = true for action phase, want false")
	}
	var absent *Snapshot
	if absent.InResearch() != false {
		t.Error("InResearch() = true for nil snapshot, want false")
	}
}
