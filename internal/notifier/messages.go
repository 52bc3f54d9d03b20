package notifier

import "fmt"

// Fixed notification texts sent to players.
const (
	MsgResearch  = "🔬 It's research time!"
	MsgYourTurn  = "🎮 It's your turn!"
	MsgMultiWait = "⏳ The game is waiting on several players!"
	MsgStartup   = "🎮 Terraforming Mars monitor is now active!"
	MsgHelp      = "Send \"!gameid <id>\" to switch the watched game."
)

// FormatGameChanged builds the broadcast confirming a session switch.
func FormatGameChanged(oldID, newID string) string {
	return fmt.Sprintf("🔭 Now watching game %s (was %s)", newID, oldID)
}

// FormatGameRejected builds the reply for a game id that failed validation.
func FormatGameRejected(gameID string) string {
	return fmt.Sprintf("⚠️ Game %s could not be found, still watching the current game", gameID)
}
