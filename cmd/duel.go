package cmd

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/urdoggydeewata-star/dexbattle/internal/battle"
	"github.com/urdoggydeewata-star/dexbattle/internal/replay"
	"github.com/urdoggydeewata-star/dexbattle/internal/roster"
	"github.com/urdoggydeewata-star/dexbattle/internal/session"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1).
			MarginBottom(1)

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#999999"))

	stateBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#874BFD")).
			Padding(1, 2)

	logBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#04B575")).
			Padding(0, 1)

	autocompleteStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("#F25D94"))
)

type suggestion string

func (s suggestion) Title() string       { return string(s) }
func (s suggestion) Description() string { return "" }
func (s suggestion) FilterValue() string { return string(s) }

type duelModel struct {
	sess        *session.Session
	textInput   textinput.Model
	viewport    viewport.Model
	suggestions list.Model
	history     []string
	historyIdx  int
	logContent  string
	width       int
	height      int
	showList    bool
}

func newDuelModel(sess *session.Session) duelModel {
	ti := textinput.New()
	ti.Placeholder = "turn red: thunderbolt and blue: earthquake"
	ti.Focus()
	ti.CharLimit = 256
	ti.Width = 60

	vp := viewport.New(0, 0)

	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = false
	delegate.SetHeight(1)
	delegate.SetSpacing(0)
	sugList := list.New([]list.Item{}, delegate, 50, 7)
	sugList.SetShowTitle(false)
	sugList.SetShowStatusBar(false)
	sugList.SetFilteringEnabled(false)
	sugList.SetShowHelp(false)

	welcome := fmt.Sprintf("Gen %d battle, seed %d.\nType 'exit' to quit.", sess.Generation(), sess.Seed())

	m := duelModel{
		sess:        sess,
		textInput:   ti,
		viewport:    vp,
		suggestions: sugList,
		history:     []string{},
		historyIdx:  -1,
		logContent:  welcome,
	}
	m.viewport.SetContent(m.logContent)
	return m
}

func (m *duelModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *duelModel) updateSuggestions() {
	val := m.textInput.Value()
	var items []list.Item

	defer func() {
		m.suggestions.SetItems(items)
		m.showList = len(items) > 0
		if m.showList {
			h := len(items)
			if h > 10 {
				h = 10
			}
			if h < 4 {
				h = 4
			}
			m.suggestions.SetHeight(h)
			m.suggestions.ResetSelected()
		}
	}()

	if val == "" {
		return
	}

	baseCmds := []string{"weather: ", "terrain: ", "exit", "quit"}
	for _, side := range m.sess.Sides() {
		baseCmds = append(baseCmds, fmt.Sprintf("turn %s: ", side))
	}

	for _, c := range baseCmds {
		if strings.HasPrefix(strings.ToLower(c), strings.ToLower(val)) && len(val) < len(c) {
			items = append(items, suggestion(c))
		}
	}

	// Side completion after "and".
	if idx := strings.LastIndex(strings.ToLower(val), " and "); idx >= 0 {
		prefix := val[idx+len(" and "):]
		baseStr := val[:len(val)-len(prefix)]
		for _, side := range m.sess.Sides() {
			candidate := side + ": "
			if strings.HasPrefix(candidate, strings.ToLower(prefix)) && len(prefix) < len(candidate) {
				items = append(items, suggestion(baseStr+candidate))
			}
		}
	}
}

func (m *duelModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var (
		tiCmd tea.Cmd
		vpCmd tea.Cmd
		lsCmd tea.Cmd
	)

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit

		case tea.KeyUp:
			if m.showList {
				m.suggestions, lsCmd = m.suggestions.Update(msg)
			} else if len(m.history) > 0 {
				if m.historyIdx == -1 {
					m.historyIdx = len(m.history) - 1
				} else if m.historyIdx > 0 {
					m.historyIdx--
				}
				m.textInput.SetValue(m.history[m.historyIdx])
				m.updateSuggestions()
			}

		case tea.KeyDown:
			if m.showList {
				m.suggestions, lsCmd = m.suggestions.Update(msg)
			} else if len(m.history) > 0 && m.historyIdx != -1 {
				if m.historyIdx < len(m.history)-1 {
					m.historyIdx++
					m.textInput.SetValue(m.history[m.historyIdx])
				} else {
					m.historyIdx = -1
					m.textInput.SetValue("")
				}
				m.updateSuggestions()
			}

		case tea.KeyTab:
			if m.showList {
				if i, ok := m.suggestions.SelectedItem().(suggestion); ok {
					m.textInput.SetValue(string(i))
					m.textInput.SetCursor(len(string(i)))
					m.updateSuggestions()
				}
			}

		case tea.KeyEnter:
			val := strings.TrimSpace(m.textInput.Value())
			if val == "exit" || val == "quit" {
				return m, tea.Quit
			}

			if val != "" {
				if len(m.history) == 0 || m.history[len(m.history)-1] != val {
					m.history = append(m.history, val)
				}
				m.historyIdx = -1
				m.textInput.SetValue("")
				m.updateSuggestions()

				m.logContent += fmt.Sprintf("\n\n> %s\n", val)
				report, err := m.sess.Execute(val)
				if err != nil {
					m.logContent += fmt.Sprintf("Error: %v", err)
				} else {
					m.logContent += strings.Join(report.Lines, "\n")
					if m.sess.Over() {
						if winner := m.sess.Winner(); winner != "" {
							m.logContent += fmt.Sprintf("\n\n%s wins!", winner)
						} else {
							m.logContent += "\n\nThe battle ended in a draw!"
						}
					}
				}

				m.viewport.SetContent(m.logContent)
				m.viewport.GotoBottom()
			}
		default:
			m.textInput, tiCmd = m.textInput.Update(msg)
			m.updateSuggestions()
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = msg.Width - 4
		m.suggestions.SetWidth(msg.Width - 6)
	}

	m.viewport, vpCmd = m.viewport.Update(msg)

	titleH := lipgloss.Height(titleStyle.Render("Dummy"))
	stateH := lipgloss.Height(m.renderState())
	inputH := 1

	listAreaHeight := 0
	if m.showList {
		listAreaHeight = m.suggestions.Height() + 2
	}

	infoH := lipgloss.Height(infoStyle.Render("Dummy"))
	overhead := titleH + stateH + inputH + listAreaHeight + infoH + 8

	m.viewport.Height = m.height - overhead
	if m.viewport.Height < 4 {
		m.viewport.Height = 4
	}

	return m, tea.Batch(tiCmd, vpCmd, lsCmd)
}

func (m *duelModel) renderState() string {
	var b strings.Builder
	for _, side := range m.sess.Sides() {
		c, ok := m.sess.Combatant(side)
		if !ok {
			continue
		}
		status := ""
		if c.Status != battle.StatusNone {
			status = fmt.Sprintf(" [%s]", c.Status)
		}
		if c.Fainted() {
			status = " [fainted]"
		}
		vols := volatileTags(c)
		fmt.Fprintf(&b, "%s: %s L%d  %d/%d HP%s%s\n", side, c.Species, c.Level, c.CurHP, c.MaxHP, status, vols)
	}
	return stateBoxStyle.Width(m.width - 4).Render(strings.TrimRight(b.String(), "\n"))
}

func volatileTags(c *battle.Combatant) string {
	if len(c.Volatiles) == 0 {
		return ""
	}
	kinds := make([]string, 0, len(c.Volatiles))
	for kind := range c.Volatiles {
		kinds = append(kinds, string(kind))
	}
	sort.Strings(kinds)
	return " (" + strings.Join(kinds, ", ") + ")"
}

func (m *duelModel) View() string {
	if m.width == 0 {
		return "Initializing..."
	}

	title := titleStyle.Render(fmt.Sprintf(" dexbattle | Gen %d ", m.sess.Generation()))
	stateBox := m.renderState()
	logBox := logBoxStyle.Width(m.width - 4).Render(m.viewport.View())

	var inputArea string
	if m.showList {
		inputArea = fmt.Sprintf("%s\n%s", m.textInput.View(), autocompleteStyle.Render(m.suggestions.View()))
	} else {
		inputArea = m.textInput.View()
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		stateBox,
		logBox,
		"\n",
		inputArea,
		infoStyle.Render("(esc to quit, tab to complete, up/down history)"),
	)
}

var duelCmd = &cobra.Command{
	Use:   "duel [roster.yaml]",
	Short: "Fight an interactive battle turn by turn",
	Long: `Starts an interactive battle over the given roster. Each input line
is a script statement, so turns are declared exactly as in a script file:

	turn red: thunderbolt and blue: earthquake`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runDuel(cmd, args[0]); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func runDuel(cmd *cobra.Command, rosterPath string) error {
	opts, err := settings()
	if err != nil {
		return err
	}
	r, err := roster.Load(rosterPath)
	if err != nil {
		return err
	}

	replayPath, _ := cmd.Flags().GetString("replay")
	var sess *session.Session
	if replayPath != "" {
		store, err := replay.NewStore(replayPath)
		if err != nil {
			return err
		}
		defer store.Close()
		sess, err = session.New(opts, r, store)
		if err != nil {
			return err
		}
	} else {
		sess, err = session.New(opts, r, nil)
		if err != nil {
			return err
		}
	}

	lines, err := sess.Start(rosterPath, "")
	if err != nil {
		return err
	}

	m := newDuelModel(sess)
	m.logContent += "\n\n" + strings.Join(lines, "\n")
	m.viewport.SetContent(m.logContent)

	p := tea.NewProgram(&m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

func init() {
	rootCmd.AddCommand(duelCmd)
	duelCmd.Flags().String("replay", "battles.jsonl", "replay log to append the transcript to, empty disables")
}
