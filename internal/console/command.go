package console

// Command is one console entry point, selected by name on the command line.
type Command interface {
	Name() string
	Description() string
	Run() error
}
