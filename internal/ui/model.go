package ui

import (
	"fmt"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"pixgallery/internal/config"
	"pixgallery/internal/eventbus"
	"pixgallery/internal/logging"
	"pixgallery/internal/search"
	"pixgallery/internal/ui/commands"
	"pixgallery/internal/ui/handlers"
	"pixgallery/internal/ui/input"
	inputtypes "pixgallery/internal/ui/input/types"
	"pixgallery/internal/ui/logic"
	"pixgallery/internal/ui/state"
	"pixgallery/internal/ui/viewmodels"
	"pixgallery/internal/ui/views"
)

// statusTimeout is how long transient status messages stay visible
const statusTimeout = 3 * time.Second

// Model represents the UI state
type Model struct {
	bus       eventbus.EventBus
	config    *config.Config
	state     *state.AppState // centralized state
	lifecycle *search.Lifecycle

	// UI-specific state not in AppState
	help         help.Model
	keys         KeyMap
	spinner      spinner.Model
	initialQuery string
	inPagerMode  bool // tracks if we're currently in pager mode

	// Handlers
	navigator    *logic.Navigator       // navigation and viewport handler
	renderer     *views.Renderer        // view renderer
	eventHandler *handlers.EventHandler // event processing handler
	viewModel    *viewmodels.ViewModel  // view model for rendering
	cmdExecutor  *commands.Executor     // command executor
	inputHandler *input.Handler         // input handling
	helpRenderer *HelpRenderer          // help pager content
	imageOps     *ImageOps              // browser and clipboard

	// Program reference for terminal management
	program *tea.Program
}

// NewModel creates a new UI model
func NewModel(bus eventbus.EventBus, cfg *config.Config, lifecycle *search.Lifecycle, initialQuery string) *Model {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	appState := state.NewAppState()
	appState.ShowAuthor = cfg.UI.ShowAuthor

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("99"))

	m := &Model{
		bus:          bus,
		config:       cfg,
		state:        appState,
		lifecycle:    lifecycle,
		help:         help.New(),
		keys:         DefaultKeyMap(),
		spinner:      sp,
		initialQuery: initialQuery,
		navigator:    logic.NewNavigator(),
		renderer:     views.NewRenderer(),
		eventHandler: handlers.NewEventHandler(appState),
		viewModel:    viewmodels.NewViewModel(appState),
		cmdExecutor:  commands.NewExecutor(appState, lifecycle),
		inputHandler: input.New(),
		helpRenderer: NewHelpRenderer(),
		imageOps:     NewImageOps(),
	}
	m.keys.sync(false, false)

	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
}

// syncNavigatorState updates the navigator with current model state
func (m *Model) syncNavigatorState() {
	m.navigator.UpdateState(
		m.state.SelectedIndex,
		m.state.ViewportOffset,
		m.state.ViewportHeight,
		m.state.Columns,
		len(m.state.Items()),
	)
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	m.updateLayout()
	cmds := []tea.Cmd{m.spinner.Tick}
	if m.initialQuery != "" {
		cmds = append(cmds, m.cmdExecutor.ExecuteSubmit(m.initialQuery))
	}
	return tea.Batch(cmds...)
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.state.Width = msg.Width
		m.state.Height = msg.Height
		m.help.Width = msg.Width
		m.updateLayout()
		return m, nil

	case tea.KeyMsg:
		ctx := &input.ModelContext{State: m.state}

		actions, cmd := m.inputHandler.HandleKey(msg, ctx)

		cmds := []tea.Cmd{}
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		for _, action := range actions {
			if actionCmd := m.processAction(action); actionCmd != nil {
				cmds = append(cmds, actionCmd)
			}
		}
		m.keys.sync(m.state.Search.HasMore, m.state.Search.IsLoading)

		return m, tea.Batch(cmds...)

	default:
		// The text input needs cursor blink messages
		inputCmd := m.inputHandler.Update(msg)
		_, cmd := m.handleNonKeyboardMsg(msg)
		return m, tea.Batch(inputCmd, cmd)
	}
}

// View renders the UI
func (m *Model) View() string {
	if m.state.Width == 0 {
		return "Loading..."
	}

	if ti := m.inputHandler.TextInput(); ti != nil {
		m.viewModel.SetInput(m.inputHandler.ModeName(), m.inputHandler.Prompt(), ti)
	} else {
		m.viewModel.SetInput("", "", nil)
	}
	m.viewModel.SetSpinner(m.spinner)
	m.viewModel.SetHelp(m.help, m.keys)

	return m.renderer.Render(m.viewModel.BuildViewState())
}

// updateLayout recomputes the grid for the current terminal size
func (m *Model) updateLayout() {
	m.state.Columns = views.Columns(m.state.Width, m.config.UI.Columns)
	m.state.ViewportHeight = views.ViewportRows(m.state.Height, m.state.ShowAuthor)
	m.scrollTo(m.state.SelectedIndex)
}

// scrollTo moves the cursor to index and brings its row into view
func (m *Model) scrollTo(index int) {
	m.syncNavigatorState()
	m.state.SelectedIndex, m.state.ViewportOffset = m.navigator.SetSelectedIndex(index)
}

// settle applies a finished fetch and follows newly appended content
func (m *Model) settle(res search.Result) {
	outcome := m.lifecycle.Settle(res)
	m.state.SetSearch(m.lifecycle.State())
	m.keys.sync(m.state.Search.HasMore, m.state.Search.IsLoading)

	if outcome.Discarded {
		return
	}
	if a := outcome.Appended; a != nil && a.Count > 0 {
		m.scrollTo(a.From)
	}
}

// actionURL returns the URL acted on by open and copy
func (m *Model) actionURL() string {
	img, ok := m.state.ModalImage()
	if !ok {
		img, ok = m.state.SelectedImage()
	}
	if !ok {
		return ""
	}
	if img.LargeURL != "" {
		return img.LargeURL
	}
	return img.URL
}

// fetchHelpPager returns a command that shows help using ov pager
func (m *Model) fetchHelpPager(helpContent string) tea.Cmd {
	return func() tea.Msg {
		// Send pause message to stop rendering
		m.program.Send(pauseRenderingMsg{})

		err := NewHelpOps(m.program).ShowHelpInPager(helpContent)

		// Send resume message to restart rendering
		m.program.Send(resumeRenderingMsg{})

		return helpPagerMsg{
			err: err,
		}
	}
}

// runImageOp returns a command that opens or copies url
func (m *Model) runImageOp(action, url string) tea.Cmd {
	ops := m.imageOps
	return func() tea.Msg {
		var err error
		switch action {
		case "open":
			err = ops.OpenInBrowser(url)
		case "copy":
			err = ops.CopyURL(url)
		}
		return imageOpMsg{action: action, url: url, err: err}
	}
}

// processAction processes an action from the input handler
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	logging.Debug("ui: action", "action", action.Type())

	switch a := action.(type) {
	case inputtypes.NavigateAction:
		m.syncNavigatorState()
		m.state.SelectedIndex, m.state.ViewportOffset = m.navigator.Move(a.Direction)

	case inputtypes.SubmitTextAction:
		if a.Mode == inputtypes.ModeSearch {
			return m.cmdExecutor.ExecuteSubmit(a.Text)
		}

	case inputtypes.LoadMoreAction:
		return m.cmdExecutor.ExecuteLoadMore()

	case inputtypes.OpenModalAction:
		m.state.OpenModal()

	case inputtypes.CloseModalAction:
		m.state.CloseModal()

	case inputtypes.OpenInBrowserAction:
		if url := m.actionURL(); url != "" {
			return m.runImageOp("open", url)
		}

	case inputtypes.CopyURLAction:
		if url := m.actionURL(); url != "" {
			return m.runImageOp("copy", url)
		}

	case inputtypes.ToggleHelpAction:
		if m.program == nil {
			m.state.StatusMessage = "Help pager unavailable"
			return nil
		}
		return m.fetchHelpPager(m.helpRenderer.RenderHelpContent())

	case inputtypes.QuitAction:
		m.lifecycle.Close()
		return tea.Quit
	}

	return nil
}

// handleNonKeyboardMsg handles everything that is not a key press
func (m *Model) handleNonKeyboardMsg(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case commands.FetchResultMsg:
		m.settle(msg.Result)
		return m, nil

	case EventMsg:
		m.eventHandler.HandleEvent(msg.Event)
		return m, nil

	case spinner.TickMsg:
		// Don't continue tick loop if we're in pager mode
		if m.inPagerMode {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case helpPagerMsg:
		if msg.err != nil {
			logging.Warn("help pager failed", "err", msg.err)
			m.reportError(fmt.Sprintf("help pager: %v", msg.err))
		}
		return m, nil

	case imageOpMsg:
		if msg.err != nil {
			logging.Warn("image action failed", "action", msg.action, "url", msg.url, "err", msg.err)
			m.state.StatusMessage = capitalize(msg.err.Error())
		} else if msg.action == "copy" {
			m.state.StatusMessage = fmt.Sprintf("Copied %s", msg.url)
		} else {
			m.state.StatusMessage = "Opened in browser"
		}
		return m, tea.Tick(statusTimeout, func(t time.Time) tea.Msg { return clearStatusMsg{} })

	case pauseRenderingMsg:
		m.inPagerMode = true
		return m, nil

	case resumeRenderingMsg:
		m.inPagerMode = false
		return m, m.spinner.Tick

	case clearStatusMsg:
		m.state.StatusMessage = ""
		return m, nil

	default:
		return m, nil
	}
}

// reportError publishes an ErrorEvent. Without a bus the status line is updated directly.
func (m *Model) reportError(message string) {
	event := eventbus.ErrorEvent{Message: message}
	if m.bus != nil {
		m.bus.Publish(event)
		return
	}
	m.eventHandler.HandleEvent(event)
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
