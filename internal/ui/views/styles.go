package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title         lipgloss.Style
	Dim           lipgloss.Style
	Status        lipgloss.Style
	SearchPrompt  lipgloss.Style
	Query         lipgloss.Style
	Help          lipgloss.Style
	Main          lipgloss.Style
	Scroll        lipgloss.Style
	Card          lipgloss.Style
	CardSelected  lipgloss.Style
	CardIndex     lipgloss.Style
	CardTags      lipgloss.Style
	Button        lipgloss.Style
	ModalBox      lipgloss.Style
	ModalTitle    lipgloss.Style
	ModalLabel    lipgloss.Style
	Link          lipgloss.Style
	StatusError   lipgloss.Style
	StatusWarning lipgloss.Style
	StatusLoading lipgloss.Style
	StatusSuccess lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			MarginBottom(1),
		Dim: lipgloss.NewStyle().Faint(true),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")),
		SearchPrompt: lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true),
		Query:        lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		Help:         lipgloss.NewStyle().Faint(true),
		Main: lipgloss.NewStyle().
			Padding(1, 2).
			MaxHeight(100), // Will be dynamically adjusted
		Scroll: lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("241")).
			Padding(0, 1).
			Width(CardWidth - 2),
		CardSelected: lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(lipgloss.Color("226")).
			Padding(0, 1).
			Width(CardWidth - 2),
		CardIndex: lipgloss.NewStyle().Foreground(lipgloss.Color("99")).Bold(true),
		CardTags:  lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Button: lipgloss.NewStyle().
			Foreground(lipgloss.Color("255")).
			Background(lipgloss.Color("63")).
			Padding(0, 2),
		ModalBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("99")).
			Padding(1, 2),
		ModalTitle:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99")),
		ModalLabel:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Link:          lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Underline(true),
		StatusError:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		StatusWarning: lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		StatusLoading: lipgloss.NewStyle().Foreground(lipgloss.Color("241")), // gray
		StatusSuccess: lipgloss.NewStyle().Foreground(lipgloss.Color("78")),  // green
	}
}
