package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/lox/rockpaperscissors/internal/game"
)

const logHeight = 5

// TUIModel represents the Bubble Tea model for the game screen
type TUIModel struct {
	controller *game.Controller
	bridge     *Bridge
	formatter  *game.EventFormatter
	logger     *log.Logger

	// UI components
	keys        keyMap
	help        help.Model
	spinner     spinner.Model
	logViewport viewport.Model

	// State
	round    game.Round
	gameLog  []string
	quitting bool

	// Dimensions
	width  int
	height int
}

// NewTUIModel creates a model bound to controller and subscribes it to the
// controller's events. Call Close to unsubscribe.
func NewTUIModel(controller *game.Controller, logger *log.Logger) *TUIModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = WarningStyle

	vp := viewport.New(10, logHeight)
	vp.SetContent("")

	m := &TUIModel{
		controller: controller,
		bridge:     NewBridge(DefaultBridgeBuffer, logger),
		formatter: game.NewEventFormatter(game.FormattingOptions{
			ShowGlyphs:      true,
			HideSecretMoves: true,
		}),
		logger:      logger.WithPrefix("tui"),
		keys:        newKeyMap(),
		help:        help.New(),
		spinner:     s,
		logViewport: vp,
		round:       controller.Round(),
		gameLog:     []string{},
	}
	m.keys.setResultShown(m.round.Revealed)
	controller.Subscribe(m.bridge)
	return m
}

// Close unsubscribes the model from its controller
func (m *TUIModel) Close() {
	m.controller.Unsubscribe(m.bridge)
}

// Round returns the round the model last rendered
func (m *TUIModel) Round() game.Round {
	return m.round
}

// Init initializes the TUI model
func (m *TUIModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.bridge.Wait())
}

// Update handles messages in the TUI
func (m *TUIModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.logViewport.Width = max(msg.Width-2, 1)
		m.logger.Debug("Updating dimensions", "width", m.width, "height", m.height)

	case RoundEventMsg:
		m.addLogEntry(m.formatter.FormatEvent(msg.Event))
		m.setRound(m.controller.Round())
		cmds = append(cmds, m.bridge.Wait())

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Dismiss):
			m.setRound(m.controller.ResetRound())
		case key.Matches(msg, m.keys.Mode):
			m.setRound(m.controller.SetMode(m.round.Mode.Toggle()))
		case key.Matches(msg, m.keys.Rock):
			m.selectMove(game.Rock)
		case key.Matches(msg, m.keys.Paper):
			m.selectMove(game.Paper)
		case key.Matches(msg, m.keys.Scissors):
			m.selectMove(game.Scissors)
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		case key.Matches(msg, m.keys.Scroll):
			var cmd tea.Cmd
			m.logViewport, cmd = m.logViewport.Update(msg)
			cmds = append(cmds, cmd)
		}
	}

	return m, tea.Batch(cmds...)
}

func (m *TUIModel) selectMove(move game.Move) {
	round, ok := m.controller.SelectMove(m.round.Mode, move)
	if !ok {
		m.logger.Debug("Selection ignored", "move", move, "round", round.ID)
	}
	m.setRound(round)
}

func (m *TUIModel) setRound(round game.Round) {
	m.round = round
	m.keys.setResultShown(round.Revealed)
}

// View renders the TUI
func (m *TUIModel) View() string {
	if m.quitting {
		return ""
	}

	// Don't render until we have valid dimensions
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	sections := []string{
		HeaderStyle.Render("Rock Paper Scissors"),
		m.renderModeSelector(),
		m.renderBoard(),
		m.renderStatus(),
	}

	if m.round.Revealed {
		sections = append(sections, m.renderResultDialog())
	} else {
		sections = append(sections, m.renderButtons())
	}

	m.logViewport.SetContent(strings.Join(m.gameLog, "\n"))
	sections = append(sections,
		LogStyle.Width(max(m.width-2, 1)).Render(m.logViewport.View()),
		m.help.View(m.keys))

	content := lipgloss.JoinVertical(lipgloss.Center, sections...)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Top, content)
}

func (m *TUIModel) renderModeSelector() string {
	computer := InactiveModeStyle.Render("Computer")
	friend := InactiveModeStyle.Render("Friend")
	if m.round.Mode == game.VsFriend {
		friend = ActiveModeStyle.Render("Friend")
	} else {
		computer = ActiveModeStyle.Render("Computer")
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, computer, " ", friend)
}

func (m *TUIModel) renderBoard() string {
	you := lipgloss.JoinVertical(lipgloss.Center,
		SeatLabelStyle.Render("You"),
		MoveStyle.Render(m.round.VisiblePlayerMove().Glyph()))
	opponent := lipgloss.JoinVertical(lipgloss.Center,
		SeatLabelStyle.Render(m.round.Mode.OpponentName()),
		MoveStyle.Render(m.round.VisibleOpponentMove().Glyph()))
	return lipgloss.JoinHorizontal(lipgloss.Top, you, "     ", opponent)
}

func (m *TUIModel) renderStatus() string {
	status := StatusStyle.Render(m.round.Message)
	if m.round.RevealPending() {
		status = m.spinner.View() + " " + status
	}
	return status
}

func (m *TUIModel) renderButtons() string {
	buttons := make([]string, 0, len(game.Moves))
	for _, move := range game.Moves {
		label := move.Glyph() + " " + strings.ToUpper(move.String()[:1])
		if m.round.Ready {
			buttons = append(buttons, DisabledButtonStyle.Render(label))
		} else {
			buttons = append(buttons, ButtonStyle.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, buttons...)
}

func (m *TUIModel) renderResultDialog() string {
	var outcome string
	switch m.round.Outcome {
	case game.PlayerWins:
		outcome = SuccessStyle.Render(m.round.Message)
	case game.PlayerLoses:
		outcome = ErrorStyle.Render(m.round.Message)
	default:
		outcome = WarningStyle.Render(m.round.Message)
	}
	return DialogStyle.Render(lipgloss.JoinVertical(lipgloss.Center,
		SeatLabelStyle.Render("Game Over"),
		"",
		outcome,
		"",
		ButtonStyle.MarginRight(0).Render("Play Again")))
}

// addLogEntry adds an entry to the game log and scrolls to it
func (m *TUIModel) addLogEntry(entry string) {
	m.gameLog = append(m.gameLog, entry)
	m.logViewport.SetContent(strings.Join(m.gameLog, "\n"))
	if m.logViewport.Height > 0 && m.logViewport.Width > 0 {
		m.logViewport.GotoBottom()
	}
}

// GameLog returns a copy of the log entries
func (m *TUIModel) GameLog() []string {
	result := make([]string, len(m.gameLog))
	copy(result, m.gameLog)
	return result
}
