package entity

// Phase values reported by the game server that the monitor reacts to.
const PhaseResearch = "research"

// Snapshot is a single fetched state of the watched game session.
// Fields mirror the server's JSON; anything absent simply stays zero.
type Snapshot struct {
	Phase        string   `json:"phase"`
	ActivePlayer string   `json:"activePlayer"`
	Players      []Player `json:"players"`
	WaitingFor   []string `json:"waitingFor"`
}

// Player is one roster entry of a snapshot.
type Player struct {
	Color string `json:"color"`
	Name  string `json:"name"`
}

// ActiveColors returns the color tags the game currently waits on.
// waitingFor wins when it lists several colors, otherwise activePlayer,
// otherwise a single-element waitingFor. Nil-safe.
func (s *Snapshot) ActiveColors() []string {
	if s == nil {
		return nil
	}
	if len(s.WaitingFor) > 1 {
		return s.WaitingFor
	}
	if s.ActivePlayer != "" {
		return []string{s.ActivePlayer}
	}
	if len(s.WaitingFor) == 1 {
		return s.WaitingFor
	}
	return nil
}

// NameByColor resolves a color tag through the snapshot roster.
// Returns an empty string when the roster has no such color.
func (s *Snapshot) NameByColor(color string) string {
	if s == nil {
		return ""
	}
	for _, p := range s.Players {
		if p.Color == color {
			return p.Name
		}
	}
	return ""
}

// InResearch reports whether the snapshot is in the research phase.
func (s *Snapshot) InResearch() bool {
	return s != nil && s.Phase == PhaseResearch
}
