package ui

import (
	"pixgallery/internal/eventbus"
)

// EventMsg wraps a domain event for the UI
type EventMsg struct {
	Event eventbus.DomainEvent
}

// helpPagerMsg contains the result of a help pager command
type helpPagerMsg struct {
	err error
}

// imageOpMsg contains the result of opening or copying an image URL
type imageOpMsg struct {
	action string // "open" or "copy"
	url    string
	err    error
}

// clearStatusMsg clears the status bar
type clearStatusMsg struct{}

// pauseRenderingMsg signals to pause Bubble Tea rendering
type pauseRenderingMsg struct{}

// resumeRenderingMsg signals to resume Bubble Tea rendering
type resumeRenderingMsg struct{}
