// Package ui provides the terminal user interface using Bubble Tea.
package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/vsop87/internal/orrery"
	"github.com/litescript/vsop87/internal/version"
)

// ViewMode represents the current UI view.
type ViewMode int

const (
	ViewOrrery ViewMode = iota
	ViewTable
)

// TickMsg triggers periodic time advancement.
type TickMsg time.Time

const tickInterval = 100 * time.Millisecond

// Time rates in simulated days per second of wall clock.
var timeRates = []float64{0.25, 1, 7, 30, 365.25, 3652.5}

// Model is the root Bubble Tea model.
type Model struct {
	// UI state
	viewMode ViewMode
	width    int
	height   int
	ready    bool

	// Simulation clock
	jd      float64
	playing bool
	rateIdx int // Index into timeRates

	// Sub-models
	orreryView OrreryModel
	tableView  TableModel

	snapshot orrery.Snapshot
}

// New creates a new root UI model starting at the given Julian Day.
func New(jd float64) Model {
	m := Model{
		viewMode:   ViewOrrery,
		jd:         jd,
		rateIdx:    2, // 7 days per second
		orreryView: NewOrreryModel(),
		tableView:  NewTableModel(),
	}
	m.recompute()
	return m
}

// rate returns the current time rate in days per second.
func (m Model) rate() float64 {
	if m.rateIdx < 0 || m.rateIdx >= len(timeRates) {
		return 1
	}
	return timeRates[m.rateIdx]
}

// recompute refreshes the snapshot for the current Julian Day and pushes
// it to the sub-models.
func (m *Model) recompute() {
	m.snapshot = orrery.Compute(m.jd)
	m.orreryView = m.orreryView.UpdateData(m.snapshot)
	m.tableView = m.tableView.UpdateData(m.snapshot)
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tickCmd()
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit

		case "1", "o":
			m.viewMode = ViewOrrery
		case "2", "p":
			m.viewMode = ViewTable
		case "tab":
			m.viewMode = (m.viewMode + 1) % 2

		// Clock controls
		case " ":
			m.playing = !m.playing
		case ",":
			m.jd -= m.rate()
			m.recompute()
		case ".":
			m.jd += m.rate()
			m.recompute()
		case "<":
			if m.rateIdx > 0 {
				m.rateIdx--
			}
		case ">":
			if m.rateIdx < len(timeRates)-1 {
				m.rateIdx++
			}
		case "n":
			m.jd = orrery.JulianDay(time.Now())
			m.recompute()

		default:
			cmds = append(cmds, m.updateActiveView(msg))
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true

		// Logo takes ~10 lines, footer ~2 lines
		contentHeight := msg.Height - 13
		m.orreryView = m.orreryView.SetSize(msg.Width, contentHeight)
		m.tableView = m.tableView.SetSize(msg.Width, contentHeight)

	case TickMsg:
		cmds = append(cmds, tickCmd())
		if m.playing {
			m.jd += m.rate() * tickInterval.Seconds()
			m.recompute()
		}

	default:
		cmds = append(cmds, m.updateActiveView(msg))
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) updateActiveView(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch m.viewMode {
	case ViewOrrery:
		m.orreryView, cmd = m.orreryView.Update(msg)
	case ViewTable:
		m.tableView, cmd = m.tableView.Update(msg)
	}
	return cmd
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	var content string
	switch m.viewMode {
	case ViewOrrery:
		content = m.orreryView.View()
	case ViewTable:
		content = m.tableView.View()
	}

	return m.renderHeader() + "\n" + content + "\n" + m.renderFooter()
}

func (m Model) renderHeader() string {
	return m.renderLogo() + m.renderTabs() + "\n"
}

func (m Model) renderLogo() string {
	// ASCII art with smooth truecolor gradient
	logo := []string{
		`  ██╗   ██╗███████╗ ██████╗ ██████╗  █████╗ ███████╗`,
		`  ██║   ██║██╔════╝██╔═══██╗██╔══██╗██╔══██╗╚════██║`,
		`  ██║   ██║███████╗██║   ██║██████╔╝╚█████╔╝    ██╔╝`,
		`  ╚██╗ ██╔╝╚════██║██║   ██║██╔═══╝ ██╔══██╗   ██╔╝ `,
		`   ╚████╔╝ ███████║╚██████╔╝██║     ╚█████╔╝   ██║  `,
		`    ╚═══╝  ╚══════╝ ╚═════╝ ╚═╝      ╚════╝    ╚═╝  `,
	}

	var b strings.Builder
	b.WriteString("\n")

	for row, line := range logo {
		runes := []rune(line)
		for col, r := range runes {
			color := gradientColor(col, row, len(runes), len(logo))
			style := lipgloss.NewStyle().Foreground(lipgloss.Color(color))
			b.WriteString(style.Render(string(r)))
		}
		b.WriteString("\n")
	}

	muted := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))
	b.WriteString(muted.Render("  VSOP87D Planetary Theory · Terminal Orrery"))
	b.WriteString("\n")

	copyright := fmt.Sprintf("  (c) 2026 litescript.net | v%s", version.Version)
	b.WriteString(muted.Render(copyright))
	b.WriteString("\n\n")

	return b.String()
}

// gradientColor returns a hex color for a position in the logo gradient.
// Creates a vibrant nebula effect: blue -> purple -> magenta -> pink
func gradientColor(col, row, width, height int) string {
	xRatio := float64(col) / float64(width)
	yRatio := float64(row) / float64(height)

	// Blue (#3B82F6) -> Purple (#8B5CF6) -> Magenta (#D946EF) -> Pink (#EC4899)
	var r, g, b float64

	if xRatio < 0.33 {
		t := xRatio / 0.33
		r = 59 + t*(139-59)
		g = 130 + t*(92-130)
		b = 246
	} else if xRatio < 0.66 {
		t := (xRatio - 0.33) / 0.33
		r = 139 + t*(217-139)
		g = 92 + t*(70-92)
		b = 246 + t*(239-246)
	} else {
		t := (xRatio - 0.66) / 0.34
		r = 217 + t*(236-217)
		g = 70 + t*(72-70)
		b = 239 + t*(153-239)
	}

	// Vertical fade: brighter at top, darker toward bottom
	brightnessFactor := 1.0 - (yRatio * 0.5)
	r *= brightnessFactor
	g *= brightnessFactor
	b *= brightnessFactor

	ri, gi, bi := clamp8(r), clamp8(g), clamp8(b)
	return fmt.Sprintf("#%02X%02X%02X", ri, gi, bi)
}

func clamp8(v float64) int {
	if v > 255 {
		return 255
	}
	if v < 0 {
		return 0
	}
	return int(v)
}

func (m Model) renderTabs() string {
	tabs := []string{"[1] Orrery", "[2] Positions"}
	activeStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#9D4EDD")).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))

	var parts []string
	for i, tab := range tabs {
		if ViewMode(i) == m.viewMode {
			parts = append(parts, activeStyle.Render("▶ "+tab))
		} else {
			parts = append(parts, dimStyle.Render("  "+tab))
		}
	}
	return "  " + strings.Join(parts, "  ")
}

func (m Model) renderFooter() string {
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))
	accentStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#7B2CBF"))

	clockState := "paused"
	if m.playing {
		clockState = "running"
	}
	status := accentStyle.Render(m.snapshot.Time.Format("2006-01-02 15:04 UTC")) +
		dimStyle.Render(fmt.Sprintf("  JD %.4f · %s · %s/s", m.jd, clockState, formatRate(m.rate())))

	var help string
	switch m.viewMode {
	case ViewOrrery:
		help = dimStyle.Render("j/k: focus | +/-: zoom | arrows: pan | f: find | l: labels | z: mode")
	case ViewTable:
		help = dimStyle.Render("j/k: select | u: rad/deg")
	}
	help += dimStyle.Render(" | space: play | ,/.: step | </>: rate | n: now")

	return "  " + status + "  " + dimStyle.Render("|") + "  " + help
}

// formatRate renders a time rate as a compact human unit.
func formatRate(days float64) string {
	switch {
	case days >= 365.25:
		return fmt.Sprintf("%.3gy", days/365.25)
	case days >= 1:
		return fmt.Sprintf("%.3gd", days)
	default:
		return fmt.Sprintf("%.3gh", days*24)
	}
}

func tickCmd() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
