// Package tui implements the Bubble Tea interactive review interface.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/WerlingM/privacy-exif-cleaner/internal/analysis"
	"github.com/WerlingM/privacy-exif-cleaner/internal/model"
)

// File is one reviewable file with its privacy findings.
type File struct {
	Path     string
	Findings []model.PrivacyField
}

// Model is the top-level Bubble Tea model for the review session.
type Model struct {
	files []File
	level model.PrivacyLevel

	decisions map[int]model.ReviewDecision

	// UI state
	width  int
	height int

	fileIndex    int // currently selected file
	scrollOffset int // scroll position within the findings pane

	showHelp bool
	finished bool
}

// New creates a review model.
func New(files []File, level model.PrivacyLevel) Model {
	return Model{
		files:     files,
		level:     level,
		decisions: make(map[int]model.ReviewDecision),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, keys.Down):
			if m.scrollOffset < len(m.currentFindings())-1 {
				m.scrollOffset++
			}

		case key.Matches(msg, keys.Up):
			if m.scrollOffset > 0 {
				m.scrollOffset--
			}

		case key.Matches(msg, keys.NextFile):
			if m.fileIndex < len(m.files)-1 {
				m.fileIndex++
				m.scrollOffset = 0
			}

		case key.Matches(msg, keys.PrevFile):
			if m.fileIndex > 0 {
				m.fileIndex--
				m.scrollOffset = 0
			}

		case key.Matches(msg, keys.Approve):
			m.decisions[m.fileIndex] = model.DecisionApproved
			m.advance()

		case key.Matches(msg, keys.Skip):
			m.decisions[m.fileIndex] = model.DecisionSkipped
			m.advance()

		case key.Matches(msg, keys.Undo):
			delete(m.decisions, m.fileIndex)

		case key.Matches(msg, keys.Finish):
			m.finished = true
			return m, tea.Quit

		case key.Matches(msg, keys.Help):
			m.showHelp = !m.showHelp
		}
	}

	return m, nil
}

// advance moves to the next undecided file after a decision.
func (m *Model) advance() {
	if m.fileIndex < len(m.files)-1 {
		m.fileIndex++
		m.scrollOffset = 0
	}
}

func (m Model) currentFindings() []model.PrivacyField {
	if len(m.files) == 0 {
		return nil
	}
	return m.files[m.fileIndex].Findings
}

// View implements tea.Model.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	if m.showHelp {
		return m.renderHelp()
	}

	fileListWidth := m.fileListWidth()
	findingsWidth := m.width - fileListWidth - 1

	fileList := m.renderFileList(fileListWidth, m.height-2)
	findings := m.renderFindings(findingsWidth, m.height-2)

	main := lipgloss.JoinHorizontal(lipgloss.Top, fileList, " ", findings)
	statusBar := m.renderStatusBar()

	return lipgloss.JoinVertical(lipgloss.Left, main, statusBar)
}

func (m Model) fileListWidth() int {
	maxLen := 20
	for _, f := range m.files {
		if len(f.Path) > maxLen {
			maxLen = len(f.Path)
		}
	}
	w := maxLen + 8 // padding + decision marker + count
	if w > m.width/2 {
		w = m.width / 2
	}
	if w < 20 {
		w = 20
	}
	return w
}

func decisionMarker(d model.ReviewDecision) string {
	switch d {
	case model.DecisionApproved:
		return "✓"
	case model.DecisionSkipped:
		return "s"
	default:
		return "•"
	}
}

func (m Model) renderFileList(width, height int) string {
	var b strings.Builder

	for i, f := range m.files {
		name := f.Path
		maxName := width - 10
		if maxName > 0 && len(name) > maxName {
			name = "…" + name[len(name)-maxName+1:]
		}

		line := fmt.Sprintf("%s %-*s %d", decisionMarker(m.decisions[i]), maxName, name, len(f.Findings))

		var style lipgloss.Style
		switch {
		case i == m.fileIndex:
			style = fileItemSelectedStyle
		case m.decisions[i] == model.DecisionApproved:
			style = fileApprovedStyle
		case m.decisions[i] == model.DecisionSkipped:
			style = fileSkippedStyle
		default:
			style = fileItemStyle
		}

		b.WriteString(style.Width(width - 4).Render(line))
		if i < len(m.files)-1 {
			b.WriteByte('\n')
		}
	}

	return fileListStyle.Width(width).Height(height - 2).Render(b.String())
}

func (m Model) renderFindings(width, height int) string {
	innerHeight := height - 2
	if len(m.files) == 0 {
		return findingsViewStyle.Width(width).Height(innerHeight).Render("No files")
	}

	f := m.files[m.fileIndex]

	var b strings.Builder
	b.WriteString(fileHeaderStyle.Render(f.Path))
	b.WriteByte('\n')

	for _, line := range analysis.Summarize(f.Findings).Describe() {
		b.WriteString(summaryLineStyle.Render(line))
		b.WriteByte('\n')
	}
	b.WriteByte('\n')

	visibleLines := innerHeight - 6 // header + summary take some space
	if visibleLines < 1 {
		visibleLines = 1
	}
	end := m.scrollOffset + visibleLines
	if end > len(f.Findings) {
		end = len(f.Findings)
	}

	for i := m.scrollOffset; i < end; i++ {
		fd := f.Findings[i]
		line := fmt.Sprintf("[%s] %s", fd.Category, fd.Description)
		b.WriteString(categoryStyle(fd.Category).Render(line))
		if i < end-1 {
			b.WriteByte('\n')
		}
	}

	return findingsViewStyle.Width(width).Height(innerHeight).Render(b.String())
}

func (m Model) renderStatusBar() string {
	approved, skipped, pending := m.counts()

	left := fmt.Sprintf(" File %d/%d  level %s", m.fileIndex+1, len(m.files), m.level)
	right := fmt.Sprintf("✓%d s%d •%d  a approve  s skip  c finish  ? help ", approved, skipped, pending)

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}

	return statusBarStyle.Width(m.width).Render(left + strings.Repeat(" ", gap) + right)
}

func (m Model) counts() (approved, skipped, pending int) {
	for i := range m.files {
		switch m.decisions[i] {
		case model.DecisionApproved:
			approved++
		case model.DecisionSkipped:
			skipped++
		default:
			pending++
		}
	}
	return approved, skipped, pending
}

func (m Model) renderHelp() string {
	var b strings.Builder

	b.WriteString(fileHeaderStyle.Render("exifclean — Keyboard Shortcuts"))
	b.WriteString("\n\n")

	helpItems := []struct{ key, desc string }{
		{"↑/k", "Scroll up"},
		{"↓/j", "Scroll down"},
		{"n/Tab", "Next file"},
		{"N/S-Tab", "Previous file"},
		{"a", "Approve file for cleaning"},
		{"s", "Skip file"},
		{"u", "Undo decision"},
		{"c", "Finish review and clean approved files"},
		{"?", "Toggle this help"},
		{"q", "Abort without cleaning"},
	}

	for _, item := range helpItems {
		b.WriteString(fmt.Sprintf("  %s  %s\n",
			helpKeyStyle.Width(12).Render(item.key),
			item.desc,
		))
	}

	b.WriteString("\n")
	b.WriteString(helpBarStyle.Render("Press ? to close help"))

	return b.String()
}

// Run starts the review TUI. It returns nil when the user aborts.
func Run(files []File, level model.PrivacyLevel) (*Result, error) {
	m := New(files, level)
	p := tea.NewProgram(m, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return nil, err
	}

	fm, ok := final.(Model)
	if !ok || !fm.finished {
		return nil, nil
	}
	return fm.result(), nil
}
