package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/ledkit/bledom"
	"github.com/ledkit/bledom/internal/protocol"
)

var effectBrowseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Interactively browse effects on the connected light",
	Long: `Start an interactive TUI that applies effects as you move through the list.

Keyboard shortcuts:
  up/down, j/k - Move through the effect list
  enter        - Apply the highlighted effect
  +/-          - Adjust effect speed
  q/Esc        - Quit`,
	Args: cobra.NoArgs,
	RunE: runEffectBrowse,
}

// Styles
var (
	browseTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("205"))

	browseSelectedStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("82"))

	browseDimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	browseErrorStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("196"))
)

// Messages
type effectAppliedMsg struct{ effect bledom.Effect }
type effectFailedMsg struct{ err error }

type browseModel struct {
	session *session
	effects []bledom.Effect
	cursor  int
	speed   int
	applied string
	err     error
	quit    bool
}

func newBrowseModel(s *session) browseModel {
	return browseModel{
		session: s,
		effects: bledom.AllEffects(),
		speed:   50,
	}
}

func (m browseModel) Init() tea.Cmd {
	return nil
}

func (m browseModel) applyEffect(effect bledom.Effect) tea.Cmd {
	s := m.session
	return func() tea.Msg {
		err := s.dev.SetEffect(effect)
		s.record("effect", protocol.Effect(byte(effect)), err)
		if err != nil {
			return effectFailedMsg{err: err}
		}
		return effectAppliedMsg{effect: effect}
	}
}

func (m browseModel) applySpeed(speed int) tea.Cmd {
	s := m.session
	return func() tea.Msg {
		err := s.dev.SetEffectSpeed(uint8(speed))
		if err != nil {
			return effectFailedMsg{err: err}
		}
		if frame, ferr := protocol.EffectSpeed(uint8(speed)); ferr == nil {
			s.record("effect-speed", frame, nil)
		}
		return nil
	}
}

func (m browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.quit = true
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.effects)-1 {
				m.cursor++
			}
		case "enter":
			m.err = nil
			return m, m.applyEffect(m.effects[m.cursor])
		case "+":
			if m.speed <= 90 {
				m.speed += 10
				return m, m.applySpeed(m.speed)
			}
		case "-":
			if m.speed >= 10 {
				m.speed -= 10
				return m, m.applySpeed(m.speed)
			}
		}

	case effectAppliedMsg:
		m.applied = msg.effect.String()
		m.err = nil

	case effectFailedMsg:
		m.err = msg.err
	}

	return m, nil
}

func (m browseModel) View() string {
	if m.quit {
		return ""
	}

	view := browseTitleStyle.Render("Effect Browser") + "  " +
		browseDimStyle.Render(m.session.dev.Name()) + "\n\n"

	for i, e := range m.effects {
		line := fmt.Sprintf("  0x%02X  %s", byte(e), e)
		if i == m.cursor {
			line = browseSelectedStyle.Render("> " + line[2:])
		}
		view += line + "\n"
	}

	view += "\n" + browseDimStyle.Render(fmt.Sprintf("speed: %d%%", m.speed))
	if m.applied != "" {
		view += browseDimStyle.Render("  active: ") + browseSelectedStyle.Render(m.applied)
	}
	if m.err != nil {
		view += "\n" + browseErrorStyle.Render("error: "+m.err.Error())
	}
	view += "\n\n" + browseDimStyle.Render("enter: apply  +/-: speed  q: quit")

	return view
}

func runEffectBrowse(cmd *cobra.Command, args []string) error {
	s, err := acquireDevice(cmd.Context())
	if err != nil {
		return err
	}
	defer s.Close()

	p := tea.NewProgram(newBrowseModel(s))
	_, err = p.Run()
	return err
}
