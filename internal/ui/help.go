package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/noborus/ov/oviewer"
)

// HelpRenderer handles help content rendering
type HelpRenderer struct{}

// NewHelpRenderer creates a new help renderer
func NewHelpRenderer() *HelpRenderer {
	return &HelpRenderer{}
}

// RenderHelpContent generates help content with colors for the pager
func (r *HelpRenderer) RenderHelpContent() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99")).
		MarginBottom(1)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39")).
		MarginTop(1)

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("220"))

	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	entry := func(keys, desc string) string {
		return fmt.Sprintf("  %s  %s\n", keyStyle.Render(fmt.Sprintf("%-12s", keys)), descStyle.Render(desc))
	}

	var help strings.Builder

	help.WriteString(titleStyle.Render("pixgallery Help"))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Search"))
	help.WriteString("\n")
	help.WriteString(entry("/, s", "Search images and photos"))
	help.WriteString(entry("Enter", "Submit the search (same query again does nothing)"))
	help.WriteString(entry("Esc", "Cancel editing"))
	help.WriteString(entry("m, Space", "Load more (when more pages exist)"))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Gallery"))
	help.WriteString("\n")
	help.WriteString(entry("↑/↓, j/k", "Move between rows"))
	help.WriteString(entry("←/→, h/l", "Move between cards"))
	help.WriteString(entry("PgUp/PgDn", "Page up/down"))
	help.WriteString(entry("g/G", "Go to first/last image"))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Image"))
	help.WriteString("\n")
	help.WriteString(entry("Enter", "Open preview"))
	help.WriteString(entry("Esc, Enter, q", "Close preview"))
	help.WriteString(entry("o", "Open large image in browser"))
	help.WriteString(entry("y", "Copy large image URL"))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Other"))
	help.WriteString("\n")
	help.WriteString(entry("?", "Show this help"))
	help.WriteString(entry("q, Ctrl+C", "Quit"))

	help.WriteString("\n")
	help.WriteString(lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("241")).Render("  Images provided by Pixabay"))
	help.WriteString("\n")

	return help.String()
}

// HelpOps handles help operations
type HelpOps struct {
	program *tea.Program // reference to Bubble Tea program for terminal management
}

// NewHelpOps creates a new help operations instance
func NewHelpOps(program *tea.Program) *HelpOps {
	return &HelpOps{
		program: program,
	}
}

// ShowHelpInPager shows help content using ov pager
func (h *HelpOps) ShowHelpInPager(helpContent string) error {
	if h.program == nil {
		return fmt.Errorf("program not set")
	}

	// Release terminal control to run ov
	if err := h.program.ReleaseTerminal(); err != nil {
		return err
	}

	// Ensure terminal is restored even if ov fails
	defer func() {
		// Small delay to ensure ov has fully exited before restoring terminal
		time.Sleep(100 * time.Millisecond)
		_ = h.program.RestoreTerminal() // Ignore error as we're in defer context
	}()

	root, err := oviewer.NewRoot(strings.NewReader(helpContent))
	if err != nil {
		return err
	}

	// Configure ov to not write on exit (to avoid messing with our screen)
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	// Run the oviewer (this will take over the terminal)
	return root.Run()
}
