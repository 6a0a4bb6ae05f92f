package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"textkit/internal/domain"
	"textkit/internal/logger"
	"textkit/internal/render"
	"textkit/internal/shell"
)

type mode int

const (
	modeEdit mode = iota
	modePrompt
	modeNotice
	modeChart
)

// editorMaxLines is the textarea's fixed line capacity.
const editorMaxLines = 10000

const approximateView = "The editor shows tabs as spaces and at most 10000 lines; actions use the full text until you edit it."

var promptTitles = map[shell.Action]string{
	shell.ActionLoad:          "Open file",
	shell.ActionSaveEncrypted: "Save encrypted text as",
	shell.ActionCompare:       "Compare with file",
}

// Options configures the TUI model.
type Options struct {
	// Chart configures the histogram view.
	Chart render.ChartOptions
	// InitialPath, when set, is loaded as the primary document on start.
	InitialPath string
}

// Model is the Bubble Tea model for the TUI application.
type Model struct {
	shell   *shell.Shell
	state   shell.State
	keys    KeyMap
	help    help.Model
	editor  textarea.Model
	// shown is the editor value right after the last SetValue. While the
	// editor still holds it, state.Buffer is the authoritative text.
	shown   string
	input   textinput.Model
	results viewport.Model
	chart   render.ChartOptions

	mode    mode
	pending shell.Action
	notice  *shell.Notice
	words   []domain.WordCount
	status  string
	width   int
	height  int
	ready   bool
}

// New creates a new TUI model instance.
func New(sh *shell.Shell, opts Options) Model {
	ta := textarea.New()
	ta.Placeholder = "Type text or press F2 to load a file"
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	ta.MaxHeight = 0
	ta.Focus()

	ti := textinput.New()
	ti.Prompt = "> "
	ti.CharLimit = 0

	chart := opts.Chart
	if chart.Title == "" {
		chart.Title = "Top 5 words"
	}

	m := Model{
		shell:   sh,
		keys:    DefaultKeyMap(),
		help:    help.New(),
		editor:  ta,
		input:   ti,
		results: viewport.New(0, 0),
		chart:   chart,
		status:  "Ready.",
	}
	if opts.InitialPath != "" {
		m = m.dispatch(shell.ActionLoad, shell.Request{Path: opts.InitialPath})
	}
	return m
}

// State returns the current application state.
func (m Model) State() shell.State { return m.state }

// Init initializes the model (editor cursor blink).
func (m Model) Init() tea.Cmd { return textarea.Blink }

// Update handles key and window events and updates the view state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ready = true
		m.width, m.height = msg.Width, msg.Height
		m.layout()
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		switch m.mode {
		case modeNotice:
			if key.Matches(msg, m.keys.Confirm, m.keys.Cancel) || msg.String() == " " {
				m.notice = nil
				m.mode = modeEdit
			}
			return m, nil
		case modeChart:
			if key.Matches(msg, m.keys.Confirm, m.keys.Cancel) || msg.String() == "q" {
				m.words = nil
				m.mode = modeEdit
			}
			return m, nil
		case modePrompt:
			return m.updatePrompt(msg)
		}
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		if key.Matches(msg, m.keys.Help) {
			m.help.ShowAll = !m.help.ShowAll
			m.layout()
			return m, nil
		}
		if action, ok := m.keys.actionFor(msg); ok {
			return m.startAction(action)
		}
	}
	var cmd tea.Cmd
	switch m.mode {
	case modeEdit:
		m.editor, cmd = m.editor.Update(msg)
	case modePrompt:
		m.input, cmd = m.input.Update(msg)
	}
	return m, cmd
}

func (m Model) updatePrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Confirm):
		path := strings.TrimSpace(m.input.Value())
		m.input.Reset()
		m.input.Blur()
		m.mode = modeEdit
		action := m.pending
		m.pending = ""
		m = m.dispatch(action, shell.Request{Path: path})
		cmd := m.editor.Focus()
		return m, cmd
	case key.Matches(msg, m.keys.Cancel):
		m.input.Reset()
		m.input.Blur()
		m.mode = modeEdit
		m.pending = ""
		m.status = "Cancelled."
		cmd := m.editor.Focus()
		return m, cmd
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// startAction runs action, first asking for a file when the action needs one.
func (m Model) startAction(action shell.Action) (tea.Model, tea.Cmd) {
	m.syncBuffer()
	if err := m.shell.Check(action, m.state); err != nil {
		m.showNotice(shell.ErrorNotice(err))
		return m, nil
	}
	if shell.NeedsPath(action) {
		m.pending = action
		m.mode = modePrompt
		m.editor.Blur()
		m.input.Placeholder = promptTitles[action]
		cmd := m.input.Focus()
		return m, cmd
	}
	return m.dispatch(action, shell.Request{}), nil
}

// dispatch applies action to the current state and updates the widgets.
func (m Model) dispatch(action shell.Action, req shell.Request) Model {
	m.syncBuffer()
	next, err := m.shell.Dispatch(action, m.state, req)
	if err != nil {
		m.showNotice(shell.ErrorNotice(err))
		return m
	}
	exact := true
	if next.Buffer != m.state.Buffer {
		exact = m.show(next.Buffer)
	}
	if next.Output != m.state.Output {
		m.results.SetContent(next.Output)
		m.results.GotoTop()
	}
	m.status = statusFor(action, req)
	if !exact {
		m.status += " " + approximateView
	}
	if next.Notice != nil {
		m.showNotice(next.Notice)
		next.Notice = nil
	}
	if next.Chart != nil {
		m.words = next.Chart
		m.mode = modeChart
		next.Chart = nil
	}
	m.state = next
	return m
}

// syncBuffer adopts the editor text as the buffer once the user has edited it.
func (m *Model) syncBuffer() {
	if v := m.editor.Value(); v != m.shown {
		m.state.Buffer = v
		m.shown = v
	}
}

// show puts text into the editor and reports whether the editor holds it exactly.
func (m *Model) show(text string) bool {
	m.editor.SetValue(text)
	m.shown = m.editor.Value()
	if m.shown == text {
		return true
	}
	logger.Warn("editor view differs from buffer (%d lines, limit %d)", strings.Count(text, "\n")+1, editorMaxLines)
	return false
}

func (m *Model) showNotice(n *shell.Notice) {
	m.notice = n
	m.mode = modeNotice
}

func statusFor(action shell.Action, req shell.Request) string {
	if shell.NeedsPath(action) && req.Path == "" {
		return "Cancelled."
	}
	switch action {
	case shell.ActionLoad:
		return "Loaded " + req.Path
	case shell.ActionSaveEncrypted:
		return "Saved encrypted text to " + req.Path
	case shell.ActionDecrypt:
		return "Decrypted buffer."
	case shell.ActionCompare:
		return "Compared with " + req.Path
	}
	return "Done: " + string(action)
}

func (m *Model) layout() {
	if !m.ready {
		return
	}
	w := max(20, m.width)
	bw, bh := boxStyle.GetFrameSize()
	helpLines := lipgloss.Height(m.help.View(m.keys))
	// header, status and help lines plus two box frames
	avail := m.height - 2 - helpLines - 2*bh
	if avail < 6 {
		avail = 6
	}
	editorHeight := avail * 3 / 5
	m.editor.SetWidth(w - bw)
	m.editor.SetHeight(editorHeight)
	m.results.Width = w - bw
	m.results.Height = avail - editorHeight
	m.help.Width = w
}

// View renders the TUI layout.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	switch m.mode {
	case modeNotice:
		return m.place(m.renderNotice())
	case modeChart:
		chart := render.BarChart(m.words, m.chart)
		return m.place(boxStyle.Render(chart + "\n" + mutedStyle.Render("esc to close")))
	}
	header := titleStyle.Render("Text analysis")
	editor := boxStyle.Render(m.editor.View())
	results := boxStyle.Render(m.results.View())
	footer := statusStyle.Render(m.status)
	if m.mode == modePrompt {
		footer = promptStyle.Render(promptTitles[m.pending]+": ") + m.input.View()
	}
	return lipgloss.JoinVertical(lipgloss.Left, header, editor, results, footer, m.help.View(m.keys))
}

func (m Model) renderNotice() string {
	title := noticeTitleStyle
	if m.notice.Error {
		title = errorTitleStyle
	}
	body := title.Render(m.notice.Title) + "\n\n" + m.notice.Message + "\n\n" + mutedStyle.Render("enter to close")
	return noticeStyle.Render(body)
}

func (m Model) place(s string) string {
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, s)
}
