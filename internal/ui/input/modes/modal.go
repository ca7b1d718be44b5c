package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"pixgallery/internal/ui/input/types"
)

// ModalMode handles keys while the image preview is open
type ModalMode struct{}

func NewModalMode() *ModalMode {
	return &ModalMode{}
}

func (m *ModalMode) Name() string {
	return "preview"
}

func (m *ModalMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *ModalMode) Exit(ctx types.Context) []types.Action {
	return []types.Action{types.CloseModalAction{}}
}

func (m *ModalMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "ctrl+c":
		return []types.Action{types.QuitAction{Force: true}}, true
	case "esc", "enter", "q":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeNormal}}, true
	case "o":
		return []types.Action{types.OpenInBrowserAction{}}, true
	case "y":
		return []types.Action{types.CopyURLAction{}}, true
	}

	// The modal swallows everything else
	return nil, true
}
