package commands

import (
	tea "github.com/charmbracelet/bubbletea"

	"pixgallery/internal/search"
	"pixgallery/internal/ui/state"
)

// Executor handles command execution
type Executor struct {
	ctx *CommandContext
}

// NewExecutor creates a new command executor
func NewExecutor(state *state.AppState, lifecycle *search.Lifecycle) *Executor {
	return &Executor{
		ctx: &CommandContext{
			State:     state,
			Lifecycle: lifecycle,
		},
	}
}

// ExecuteSubmit creates and executes a submit command
func (e *Executor) ExecuteSubmit(query string) tea.Cmd {
	cmd := NewSubmitSearchCommand(e.ctx, query)
	return cmd.Execute()
}

// ExecuteLoadMore creates and executes a load more command
func (e *Executor) ExecuteLoadMore() tea.Cmd {
	cmd := NewLoadMoreCommand(e.ctx)
	return cmd.Execute()
}
