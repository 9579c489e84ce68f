package deck

import "fmt"

// CommandKind enumerates what a routed input asks the controller to do.
type CommandKind int

const (
	CmdNone CommandKind = iota
	CmdAdvance
	CmdRetreat
	CmdJumpTo
	CmdToggleFullscreen
	CmdToggleTimer
	CmdShowNotes
	CmdShowOverview
)

var commandNames = map[CommandKind]string{
	CmdNone:             "none",
	CmdAdvance:          "advance",
	CmdRetreat:          "retreat",
	CmdJumpTo:           "jump",
	CmdToggleFullscreen: "toggle-fullscreen",
	CmdToggleTimer:      "toggle-timer",
	CmdShowNotes:        "show-notes",
	CmdShowOverview:     "show-overview",
}

func (k CommandKind) String() string {
	if s, ok := commandNames[k]; ok {
		return s
	}
	return fmt.Sprintf("CommandKind(%d)", int(k))
}

// Command is a navigation or presenter request. Target is only meaningful
// for CmdJumpTo and holds a 0-based slide index.
type Command struct {
	Kind   CommandKind
	Target int
}

// Convenience constructors.
var (
	Advance          = Command{Kind: CmdAdvance}
	Retreat          = Command{Kind: CmdRetreat}
	ToggleFullscreen = Command{Kind: CmdToggleFullscreen}
	ToggleTimer      = Command{Kind: CmdToggleTimer}
	ShowNotes        = Command{Kind: CmdShowNotes}
	ShowOverview     = Command{Kind: CmdShowOverview}
)

// JumpTo returns a command that moves the cursor to 0-based index n.
func JumpTo(n int) Command {
	return Command{Kind: CmdJumpTo, Target: n}
}

func (c Command) String() string {
	if c.Kind == CmdJumpTo {
		return fmt.Sprintf("jump(%d)", c.Target)
	}
	return c.Kind.String()
}
