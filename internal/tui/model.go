// Package tui provides the Bubble Tea hangman interface.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/hangman/internal/art"
	"github.com/verte-zerg/hangman/internal/game"
)

// Model implements the Bubble Tea game UI.
type Model struct {
	game  *game.Game
	input textinput.Model

	status string

	width  int
	height int
}

var (
	revealedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	hiddenStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	missedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	gallowsStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A"))
	statusStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	winStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#52C41A")).Bold(true)
	footerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
)

// NewModel constructs a game UI for g.
func NewModel(g *game.Game) *Model {
	input := textinput.New()
	input.Prompt = "Guess a letter: "
	input.CharLimit = 8
	input.Focus()
	return &Model{game: g, input: input}
}

// Outcome returns the result of the game shown by the model.
func (m *Model) Outcome() game.Outcome {
	return m.game.Outcome()
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if m.game.Outcome() != game.InProgress {
			return m, tea.Quit
		}
		if msg.Type == tea.KeyEnter {
			m.submit()
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) submit() {
	raw := m.input.Value()
	m.input.SetValue("")
	turn, err := m.game.Guess(raw)
	if err != nil {
		m.status = err.Error()
		return
	}
	switch {
	case !turn.Accepted:
		m.status = strings.TrimSpace("X  " + game.FormatGuessed(turn.Guessed))
	case !turn.Hit:
		m.status = ":("
	default:
		m.status = ""
	}
	switch turn.Outcome {
	case game.Won:
		m.status = "WIN"
	case game.Lost:
		m.status = "LOSE"
	}
}

// View implements tea.Model.
func (m *Model) View() string {
	content := m.renderContent()
	if m.width == 0 || m.height == 0 {
		return content
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

func (m *Model) renderContent() string {
	state := m.game.State()
	outcome := m.game.Outcome()

	drawing, err := art.Gallows(state.Incorrect)
	if err != nil {
		drawing = err.Error()
	}

	wordWidth := 0
	if m.width > 0 {
		wordWidth = int(float64(m.width) * 0.70)
	}
	secret := wrapStyledRunes(buildStyledRunes([]rune(m.game.Secret()), state.Guessed, outcome == game.Lost), wordWidth)

	sections := []string{
		gallowsStyle.Render(art.PadBlock(drawing, art.Height())),
		"",
		secret,
		"",
		footerStyle.Render(m.renderFooter(state)),
	}
	if m.status != "" {
		style := statusStyle
		if outcome == game.Won {
			style = winStyle
		}
		sections = append(sections, style.Render(m.status))
	}
	if outcome == game.InProgress {
		sections = append(sections, m.input.View())
	} else {
		sections = append(sections, footerStyle.Render("press any key to exit"))
	}
	return strings.Join(sections, "\n")
}

func (m *Model) renderFooter(state game.State) string {
	segments := []string{fmt.Sprintf("Tries left %d", game.MaxTries-state.Incorrect)}
	if len(state.Guessed) > 0 {
		segments = append(segments, "Guessed "+game.FormatGuessed(state.Guessed))
	}
	return strings.Join(segments, "  ")
}
