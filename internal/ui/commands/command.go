package commands

import (
	tea "github.com/charmbracelet/bubbletea"

	"pixgallery/internal/search"
	"pixgallery/internal/ui/state"
)

// Command represents an executable action
type Command interface {
	Execute() tea.Cmd
}

// CommandContext provides context for command execution
type CommandContext struct {
	State     *state.AppState
	Lifecycle *search.Lifecycle
}

// FetchResultMsg carries a finished request back to the update loop
type FetchResultMsg struct {
	Result search.Result
}

// runRequest runs req off the update loop. A nil request yields no command.
func runRequest(req *search.Request) tea.Cmd {
	if req == nil {
		return nil
	}
	return func() tea.Msg {
		return FetchResultMsg{Result: req.Run()}
	}
}

// SubmitSearchCommand starts a new query
type SubmitSearchCommand struct {
	ctx   *CommandContext
	query string
}

// NewSubmitSearchCommand creates a new submit command
func NewSubmitSearchCommand(ctx *CommandContext, query string) *SubmitSearchCommand {
	return &SubmitSearchCommand{
		ctx:   ctx,
		query: query,
	}
}

// Execute submits the query. Repeating the current query does nothing.
func (c *SubmitSearchCommand) Execute() tea.Cmd {
	req := c.ctx.Lifecycle.Submit(c.query)
	if req == nil {
		return nil
	}
	c.ctx.State.ResetView()
	c.ctx.State.SetSearch(c.ctx.Lifecycle.State())
	c.ctx.State.StatusMessage = ""
	return runRequest(req)
}

// LoadMoreCommand requests the next page of the current query
type LoadMoreCommand struct {
	ctx *CommandContext
}

// NewLoadMoreCommand creates a new load more command
func NewLoadMoreCommand(ctx *CommandContext) *LoadMoreCommand {
	return &LoadMoreCommand{ctx: ctx}
}

// Execute requests the next page
func (c *LoadMoreCommand) Execute() tea.Cmd {
	req := c.ctx.Lifecycle.RequestMore()
	if req == nil {
		return nil
	}
	c.ctx.State.SetSearch(c.ctx.Lifecycle.State())
	return runRequest(req)
}
