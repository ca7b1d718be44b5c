package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap lists the bindings shown in the footer. Dispatch itself lives in the input modes.
type KeyMap struct {
	Search   key.Binding
	LoadMore key.Binding
	Move     key.Binding
	Open     key.Binding
	Browser  key.Binding
	Copy     key.Binding
	Help     key.Binding
	Quit     key.Binding
}

// DefaultKeyMap returns the default bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Search:   key.NewBinding(key.WithKeys("/", "s"), key.WithHelp("/", "search")),
		LoadMore: key.NewBinding(key.WithKeys("m", " "), key.WithHelp("m", "load more")),
		Move:     key.NewBinding(key.WithKeys("up", "down", "left", "right", "h", "j", "k", "l"), key.WithHelp("←↓↑→", "move")),
		Open:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "preview")),
		Browser:  key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "open")),
		Copy:     key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy URL")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Search, k.LoadMore, k.Move, k.Open, k.Browser, k.Copy, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Search, k.LoadMore},
		{k.Move, k.Open},
		{k.Browser, k.Copy},
		{k.Help, k.Quit},
	}
}

// sync enables the load more binding only while the button is shown
func (k *KeyMap) sync(hasMore, loading bool) {
	k.LoadMore.SetEnabled(hasMore && !loading)
}
