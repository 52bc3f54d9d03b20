package console

// HelpCommand exists so "help" resolves to a command, main prints the
// usage list when it runs.
type HelpCommand struct {
}

func NewHelpCommand() *HelpCommand {
	cmd := HelpCommand{}
	return &cmd
}

func (cmd *HelpCommand) Name() string {
	return "help"
}

func (cmd *HelpCommand) Description() string {
	return "prints the list of commands"
}

func (cmd *HelpCommand) Run() error {
	return nil
}
