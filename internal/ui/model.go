package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/appengine-ltd/tank-survival/internal/game"
	"github.com/appengine-ltd/tank-survival/internal/parser"
)

const maxLogLines = 12

type tickMsg time.Time

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

type gameModel struct {
	cfg     AppConfig
	session *game.Session
	parser  *parser.Parser

	input string
	log   []string
	width int
}

func newGameModel(cfg AppConfig, session *game.Session) gameModel {
	return gameModel{
		cfg:     cfg,
		session: session,
		parser:  parser.New(),
		log: []string{
			"The MkV rumbles across no man's land.",
			"Type a command and press enter. Try: help",
		},
	}
}

func (m gameModel) Init() tea.Cmd {
	return tickCmd()
}

func (m *gameModel) push(line string) {
	m.log = append(m.log, line)
	if len(m.log) > maxLogLines {
		m.log = m.log[len(m.log)-maxLogLines:]
	}
}

func (m gameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tickMsg:
		switch m.session.Tick(time.Second) {
		case game.TransitionBreakdown:
			m.push("Something bangs hard under the deck. Engine breakdown. The tank shudders to a stop.")
		case game.TransitionOutOfFuel:
			m.push("The engine coughs dry. Out of fuel. The tank rolls to a stop.")
		}
		return m, tickCmd()

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "enter":
			return m.submit()
		case "backspace":
			if len(m.input) > 0 {
				m.input = m.input[:len(m.input)-1]
			}
			return m, nil
		case " ":
			m.input += " "
			return m, nil
		default:
			if msg.Type == tea.KeyRunes {
				m.input += string(msg.Runes)
			}
			return m, nil
		}
	}
	return m, nil
}

func (m gameModel) submit() (tea.Model, tea.Cmd) {
	raw := strings.TrimSpace(m.input)
	m.input = ""
	if raw == "" {
		return m, nil
	}
	m.push(dimGreen.Render("> " + raw))

	intent := m.parser.Parse(raw)
	if intent.Verb == "quit" {
		return m, tea.Quit
	}
	if !intent.Matched() {
		if intent.Suggestion != "" {
			m.push(fmt.Sprintf("Unclear order. Did you mean %q?", intent.Suggestion))
		} else {
			m.push("Unclear order. Type help for commands.")
		}
		return m, nil
	}

	res := m.session.ExecuteCommand(intent.Command())
	if !res.Handled {
		m.push("Unclear order. Type help for commands.")
		return m, nil
	}
	m.push(res.Message)
	return m, nil
}

func (m gameModel) View() string {
	snap := m.session.Snapshot()

	title := brightGreen.Render("MKV TANK SURVIVAL") +
		dimGreen.Render(fmt.Sprintf("  v%s (%s)", m.cfg.Version, m.cfg.Commit))

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		m.sidebar(snap),
		"  ",
		m.mainPanel(snap),
	)

	prompt := green.Render("> ") + m.input + brightGreen.Render("_")
	divider := border.Render(strings.Repeat("-", max(24, min(m.width-2, 100))))

	return title + "\n" +
		divider + "\n" +
		body + "\n" +
		divider + "\n" +
		prompt + "\n"
}

func (m gameModel) sidebar(snap game.Snapshot) string {
	l := snap.Ledger
	lines := []string{
		brightGreen.Render("STORES"),
		fmt.Sprintf("Fuel   %d", l.Fuel),
		fmt.Sprintf("Parts  %d", l.Parts),
		fmt.Sprintf("Shells %d", l.Shells),
		fmt.Sprintf("Ammo   %d", l.Ammo),
		fmt.Sprintf("Guns   %d", l.Guns),
		fmt.Sprintf("Crew   %d", l.Crew),
		"",
	}

	switch {
	case snap.GameOver:
		lines = append(lines, warnRed.Render("GAME OVER"))
	case snap.Level.Active:
		lines = append(lines, warnRed.Render("STOPPED"), dimGreen.Render(snap.Level.Reason.String()))
		if snap.Level.EngineBroken {
			lines = append(lines, warnRed.Render("engine broken"))
		}
	default:
		lines = append(lines, brightGreen.Render("DRIVING"))
	}

	return sidebarBox.Render(strings.Join(lines, "\n"))
}

func (m gameModel) mainPanel(snap game.Snapshot) string {
	var b strings.Builder

	switch {
	case snap.GameOver:
		b.WriteString(warnRed.Render("All crew are dead. The tank falls silent.") + "\n")
		b.WriteString(dimGreen.Render("Type reset to crew a fresh tank.") + "\n\n")
	case snap.Level.Active:
		b.WriteString(green.Render(fmt.Sprintf(
			"Outside: %d zombies, %d fuel cans, %d shells, %d parts, %d ammo boxes",
			snap.Pool.Zombies, snap.Pool.FuelCans, snap.Pool.Shells,
			snap.Pool.Parts, snap.Pool.AmmoBoxes)) + "\n")
		for v := game.VantageDriver; v <= game.VantageRight; v++ {
			view := snap.Pool.Vantages[v]
			b.WriteString(dimGreen.Render(fmt.Sprintf(
				"  %-18s zombies %d, items %d",
				v, view.Zombies,
				view.FuelCans+view.Shells+view.Parts+view.AmmoBoxes)) + "\n")
		}
		b.WriteString("\n")
	default:
		b.WriteString(green.Render("Scenery blurs past the vision slits.") + "\n\n")
	}

	for _, line := range m.log {
		b.WriteString(line + "\n")
	}
	return b.String()
}
