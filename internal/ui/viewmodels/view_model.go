package viewmodels

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"

	"pixgallery/internal/ui/state"
	"pixgallery/internal/ui/views"
)

// ViewModel transforms application state into view-ready data
type ViewModel struct {
	state     *state.AppState
	help      help.Model
	keys      help.KeyMap
	spinner   spinner.Model
	textInput *textinput.Model
	inputMode string
	prompt    string
}

// NewViewModel creates a new view model
func NewViewModel(appState *state.AppState) *ViewModel {
	return &ViewModel{
		state: appState,
		help:  help.New(),
	}
}

// SetHelp sets the help model and the bindings it renders
func (vm *ViewModel) SetHelp(helpModel help.Model, keys help.KeyMap) {
	vm.help = helpModel
	vm.keys = keys
}

// SetSpinner sets the spinner shown while loading
func (vm *ViewModel) SetSpinner(s spinner.Model) {
	vm.spinner = s
}

// SetInput sets the active text input. A nil input means normal mode.
func (vm *ViewModel) SetInput(mode, prompt string, ti *textinput.Model) {
	vm.inputMode = mode
	vm.prompt = prompt
	vm.textInput = ti
}

// BuildViewState creates a ViewState for rendering
func (vm *ViewModel) BuildViewState() views.ViewState {
	vs := views.ViewState{
		Width:          vm.state.Width,
		Height:         vm.state.Height,
		Search:         vm.state.Search,
		SelectedIndex:  vm.state.SelectedIndex,
		Columns:        vm.state.Columns,
		ViewportOffset: vm.state.ViewportOffset,
		ViewportHeight: vm.state.ViewportHeight,
		ShowAuthor:     vm.state.ShowAuthor,
		ModalOpen:      vm.state.ModalOpen,
		ModalIndex:     vm.state.ModalIndex,
		StatusMessage:  vm.state.StatusMessage,
		Spinner:        vm.spinner.View(),
	}

	if vm.textInput != nil {
		vs.InputMode = vm.inputMode
		vs.InputPrompt = vm.prompt
		vs.TextInput = vm.textInput.View()
	}

	if vm.keys != nil {
		vm.help.Width = vm.state.Width
		vs.HelpText = vm.help.View(vm.keys)
	}

	return vs
}
