package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"pixgallery/internal/ui/input/types"
)

type NormalMode struct{}

func NewNormalMode() *NormalMode {
	return &NormalMode{}
}

func (m *NormalMode) Name() string {
	return "normal"
}

func (m *NormalMode) Enter(ctx types.Context) []types.Action {
	return nil // No special actions on enter
}

func (m *NormalMode) Exit(ctx types.Context) []types.Action {
	return nil // No special actions on exit
}

func (m *NormalMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return []types.Action{types.QuitAction{Force: true}}, true

	case tea.KeyEsc:
		// In normal mode, Esc doesn't do anything
		return nil, false

	case tea.KeyUp:
		return []types.Action{types.NavigateAction{Direction: "up"}}, true

	case tea.KeyDown:
		return []types.Action{types.NavigateAction{Direction: "down"}}, true

	case tea.KeyLeft:
		return []types.Action{types.NavigateAction{Direction: "left"}}, true

	case tea.KeyRight:
		return []types.Action{types.NavigateAction{Direction: "right"}}, true

	case tea.KeyPgUp:
		return []types.Action{types.NavigateAction{Direction: "pageup"}}, true

	case tea.KeyPgDown:
		return []types.Action{types.NavigateAction{Direction: "pagedown"}}, true

	case tea.KeyHome:
		return []types.Action{types.NavigateAction{Direction: "home"}}, true

	case tea.KeyEnd:
		return []types.Action{types.NavigateAction{Direction: "end"}}, true

	case tea.KeyEnter:
		if ctx.HasSelectedImage() {
			return []types.Action{
				types.OpenModalAction{},
				types.ChangeModeAction{Mode: types.ModeModal},
			}, true
		}
		return nil, false

	case tea.KeySpace:
		return m.loadMore(ctx)
	}

	// Handle string keys
	switch msg.String() {
	case "j":
		return []types.Action{types.NavigateAction{Direction: "down"}}, true

	case "k":
		return []types.Action{types.NavigateAction{Direction: "up"}}, true

	case "h":
		return []types.Action{types.NavigateAction{Direction: "left"}}, true

	case "l":
		return []types.Action{types.NavigateAction{Direction: "right"}}, true

	case "g":
		return []types.Action{types.NavigateAction{Direction: "home"}}, true

	case "G":
		return []types.Action{types.NavigateAction{Direction: "end"}}, true

	case "/", "s":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeSearch, Data: ctx.CurrentQuery()}}, true

	case "m":
		return m.loadMore(ctx)

	case "o":
		if ctx.HasSelectedImage() {
			return []types.Action{types.OpenInBrowserAction{}}, true
		}
		return nil, false

	case "y":
		if ctx.HasSelectedImage() {
			return []types.Action{types.CopyURLAction{}}, true
		}
		return nil, false

	case "?":
		return []types.Action{types.ToggleHelpAction{}}, true

	case "q":
		return []types.Action{types.QuitAction{Force: false}}, true
	}

	return nil, false
}

// loadMore is only offered while the load more button is visible
func (m *NormalMode) loadMore(ctx types.Context) ([]types.Action, bool) {
	if !ctx.HasMore() || ctx.IsLoading() {
		return nil, false
	}
	return []types.Action{types.LoadMoreAction{}}, true
}
