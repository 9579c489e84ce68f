package deck

// Fullscreen is the host's presentation-mode capability. Request may fail;
// failures are logged by the controller and never propagate.
type Fullscreen interface {
	Active() bool
	Request() error
	Exit() error
}

// Prompter is the blocking dialog surface. Alert shows a message and
// returns once it is dismissed. Prompt asks for a line of text and
// reports false when the user cancelled.
type Prompter interface {
	Alert(message string)
	Prompt(message string) (string, bool)
}
