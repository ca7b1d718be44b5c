package types

// Navigation actions
type NavigateAction struct {
	Direction string // "up", "down", "pageup", "pagedown", "home", "end", "left", "right"
}

func (a NavigateAction) Type() string { return "navigate" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
	Data string // Initial text for text modes
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Text input actions
type UpdateTextAction struct {
	Text string
}

func (a UpdateTextAction) Type() string { return "update_text" }

type SubmitTextAction struct {
	Text string
	Mode Mode // Which mode submitted the text
}

func (a SubmitTextAction) Type() string { return "submit_text" }

type CancelTextAction struct{}

func (a CancelTextAction) Type() string { return "cancel_text" }

// Gallery actions
type LoadMoreAction struct{}

func (a LoadMoreAction) Type() string { return "load_more" }

type OpenModalAction struct{}

func (a OpenModalAction) Type() string { return "open_modal" }

type CloseModalAction struct{}

func (a CloseModalAction) Type() string { return "close_modal" }

type OpenInBrowserAction struct{}

func (a OpenInBrowserAction) Type() string { return "open_in_browser" }

type CopyURLAction struct{}

func (a CopyURLAction) Type() string { return "copy_url" }

type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

type QuitAction struct {
	Force bool // true for Ctrl+C, false for 'q'
}

func (a QuitAction) Type() string { return "quit" }
