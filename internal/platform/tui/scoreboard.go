package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/picodino/internal/storage"
)

const scoreboardLimit = 100

var (
	boardTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	boardFrameStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
	boardEmptyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
)

// boardOrder is the sort order of the run table.
type boardOrder int

const (
	orderBest boardOrder = iota
	orderRecent
)

func (o boardOrder) String() string {
	if o == orderRecent {
		return "most recent"
	}
	return "best"
}

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up    key.Binding
	Down  key.Binding
	Order key.Binding
	Clear key.Binding
	Quit  key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Order, k.Clear, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Order, k.Clear, k.Quit}}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up:    key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("up/k", "scroll up")),
		Down:  key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("down/j", "scroll down")),
		Order: key.NewBinding(key.WithKeys("s", "tab"), key.WithHelp("s", "best/recent")),
		Clear: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "clear log")),
		Quit:  key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ScoreboardModel lists the runs recorded this session.
type ScoreboardModel struct {
	store  *storage.Store
	order  boardOrder
	runs   []storage.Run
	stats  storage.Stats
	err    error
	table  table.Model
	help   help.Model
	keys   ScoreboardKeyMap
	width  int
	height int
	done   bool
}

// NewScoreboardModel loads the run log from store.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		store:  store,
		keys:   DefaultScoreboardKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.table = newRunTable(height)
	m.reload()
	return m
}

func newRunTable(termHeight int) table.Model {
	rows := max(termHeight-9, 3) // Title, summary, frame and help

	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "#", Width: 4},
			{Title: "Points", Width: 8},
			{Title: "Distance", Width: 10},
			{Title: "Time", Width: 8},
			{Title: "Backend", Width: 10},
		}),
		table.WithFocused(true),
		table.WithHeight(rows),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)
	return t
}

// reload queries the store in the current order.
func (m *ScoreboardModel) reload() {
	m.runs, m.stats, m.err = nil, storage.Stats{}, nil
	if m.store != nil {
		query := m.store.TopRuns
		if m.order == orderRecent {
			query = m.store.RecentRuns
		}
		if m.runs, m.err = query(scoreboardLimit); m.err == nil {
			m.stats, m.err = m.store.Stats()
		}
	}
	m.table.SetRows(runRows(m.runs))
	m.table.GotoTop()
}

func runRows(runs []storage.Run) []table.Row {
	rows := make([]table.Row, len(runs))
	for i, r := range runs {
		rows[i] = table.Row{
			strconv.Itoa(i + 1),
			strconv.Itoa(r.Points),
			strconv.Itoa(r.Distance),
			fmt.Sprintf("%.1fs", r.Duration.Seconds()),
			r.Backend,
		}
	}
	return rows
}

// Init implements tea.Model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.done = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Order):
			m.order = 1 - m.order
			m.reload()
			return m, nil
		case key.Matches(msg, m.keys.Clear):
			if m.store != nil {
				if err := m.store.Clear(); err != nil {
					m.err = err
					return m, nil
				}
			}
			m.reload()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.table = newRunTable(msg.Height)
		m.table.SetRows(runRows(m.runs))
		m.help.Width = msg.Width
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m ScoreboardModel) View() string {
	if m.done {
		return ""
	}

	var b strings.Builder
	b.WriteString(centerText(boardTitleStyle.Render("SESSION RUNS ("+m.order.String()+")"), m.width))
	b.WriteString("\n\n")

	summary := fmt.Sprintf("%d runs  best %d  avg %.1f  total distance %d",
		m.stats.Runs, m.stats.BestPoints, m.stats.AvgPoints, m.stats.TotalDistance)
	if m.err != nil {
		summary = alertStyle.Render("run log: " + m.err.Error())
	}
	b.WriteString(centerText(statusStyle.Render(summary), m.width))
	b.WriteString("\n\n")

	body := m.table.View()
	if len(m.runs) == 0 {
		body = boardEmptyStyle.Render("No runs finished this session.")
	}
	b.WriteString(centerText(boardFrameStyle.Render(body), m.width))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// centerText centers every line of text within width.
func centerText(text string, width int) string {
	if width <= 0 {
		return text
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, text)
}

// RunScoreboard shows the session's runs until the user quits.
func RunScoreboard(store *storage.Store, width, height int) error {
	_, err := tea.NewProgram(NewScoreboardModel(store, width, height), tea.WithAltScreen()).Run()
	return err
}
