package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/appengine-ltd/tank-survival/internal/game"
)

type AppConfig struct {
	Version   string
	Commit    string
	BuildDate string

	Game game.Config
}

type App struct {
	cfg AppConfig
}

func NewApp(cfg AppConfig) *App {
	return &App{cfg: cfg}
}

func (a *App) Run() error {
	session, err := game.NewSession(a.cfg.Game)
	if err != nil {
		return err
	}
	p := tea.NewProgram(newGameModel(a.cfg, session), tea.WithAltScreen())
	_, err = p.Run()
	return err
}

// --- Styles (retro green) ---
var (
	green       = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	brightGreen = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	dimGreen    = lipgloss.NewStyle().Foreground(lipgloss.Color("22"))
	warnRed     = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	border      = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	sidebarBox  = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("2")).
			Padding(0, 1)
)
