package ui

import (
	"fmt"
	"math"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/vsop87/internal/orrery"
)

// LabelMode controls which body labels are drawn on the canvas.
type LabelMode int

const (
	LabelFocused LabelMode = iota
	LabelAll
	LabelNone
)

// OrreryModel renders a top-down view of the solar system.
type OrreryModel struct {
	width    int
	height   int
	snapshot orrery.Snapshot

	// View state
	focusIdx   int     // Index in bodies list (-1 = Sun)
	zoomLevel  int     // Index into zoomLevels
	panX       float64 // Pan offset in display units
	panY       float64
	scaleMode  orrery.ScaleMode
	labelMode  LabelMode
	userPanned bool // True if user has manually panned (disables auto-center on zoom)
}

// Discrete zoom levels for clean stepping
var zoomLevels = []float64{0.25, 0.5, 0.75, 1.0, 1.5, 2.0, 3.0, 5.0, 10.0}

// NewOrreryModel creates a new orrery view model.
func NewOrreryModel() OrreryModel {
	return OrreryModel{
		focusIdx:  -1, // Start focused on Sun
		zoomLevel: 3,  // Index of 1.0 in zoomLevels
		scaleMode: orrery.ScaleLogR,
		labelMode: LabelFocused,
	}
}

// scale returns the current zoom scale.
func (m OrreryModel) scale() float64 {
	if m.zoomLevel < 0 || m.zoomLevel >= len(zoomLevels) {
		return 1.0
	}
	return zoomLevels[m.zoomLevel]
}

// SetSize updates the viewport size.
func (m OrreryModel) SetSize(width, height int) OrreryModel {
	m.width = width
	m.height = height
	return m
}

// UpdateData replaces the rendered snapshot.
func (m OrreryModel) UpdateData(snapshot orrery.Snapshot) OrreryModel {
	m.snapshot = snapshot
	return m
}

// Update handles input messages.
func (m OrreryModel) Update(msg tea.Msg) (OrreryModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		// Focus navigation
		case "j", "[":
			m.focusPrev()
		case "k", "]":
			m.focusNext()

		// Viewport panning (arrow keys - no conflict with global keys)
		case "up":
			m.panY -= 0.1 / m.scale()
			m.userPanned = true
		case "down":
			m.panY += 0.1 / m.scale()
			m.userPanned = true
		case "left":
			m.panX -= 0.1 / m.scale()
			m.userPanned = true
		case "right":
			m.panX += 0.1 / m.scale()
			m.userPanned = true
		case "c":
			m.panX, m.panY = 0, 0 // Center on Sun
			m.userPanned = false

		// Find/focus - center on selected object
		case "f":
			m.centerOnFocused()
			m.userPanned = false

		// Zoom (discrete levels) - only auto-center if user hasn't panned
		case "+", "=":
			if m.zoomLevel < len(zoomLevels)-1 {
				m.zoomLevel++
				if !m.userPanned {
					m.centerOnFocused()
				}
			}
		case "-":
			if m.zoomLevel > 0 {
				m.zoomLevel--
				if !m.userPanned {
					m.centerOnFocused()
				}
			}
		case "0":
			// Reset to 1.0x zoom
			m.zoomLevel = 3
			if !m.userPanned {
				m.centerOnFocused()
			}

		// Scale mode toggle
		case "z":
			m.scaleMode = (m.scaleMode + 1) % 3
			if !m.userPanned {
				m.centerOnFocused()
			}

		// Label mode toggle
		case "l":
			m.labelMode = (m.labelMode + 1) % 3

		// Reset everything
		case "r":
			m.panX, m.panY = 0, 0
			m.zoomLevel = 3
			m.userPanned = false
		}
	}
	return m, nil
}

func (m *OrreryModel) focusNext() {
	bodies := m.snapshot.Bodies
	if len(bodies) == 0 {
		return
	}
	m.focusIdx++
	if m.focusIdx >= len(bodies) {
		m.focusIdx = -1 // Wrap to Sun
	}
	m.centerOnFocused()
	m.userPanned = false
}

func (m *OrreryModel) focusPrev() {
	bodies := m.snapshot.Bodies
	if len(bodies) == 0 {
		return
	}
	m.focusIdx--
	if m.focusIdx < -1 {
		m.focusIdx = len(bodies) - 1
	}
	m.centerOnFocused()
	m.userPanned = false
}

// centerOnFocused pans the view to center on the currently focused body.
func (m *OrreryModel) centerOnFocused() {
	if m.focusIdx < 0 || m.focusIdx >= len(m.snapshot.Bodies) {
		// Sun is at origin, just reset pan
		m.panX, m.panY = 0, 0
		return
	}

	body := m.snapshot.Bodies[m.focusIdx]
	cfg := orrery.ProjectionConfig{
		Scale: m.scale(),
		Mode:  m.scaleMode,
	}

	proj := orrery.ProjectTopDown(body.Pos, cfg)

	// panX = -proj.X and panY = -proj.Y centers the body on screen
	m.panX = -proj.X
	m.panY = -proj.Y
}

// View renders the orrery view.
func (m OrreryModel) View() string {
	if m.width < 40 || m.height < 10 {
		return "Terminal too small for orrery view"
	}

	canvas := m.buildCanvas()
	hud := m.renderHUD()

	return lipgloss.JoinVertical(lipgloss.Left, canvas, hud)
}

// bodyPos tracks a body's screen position for label rendering.
type bodyPos struct {
	x, y      int
	name      string
	isFocused bool
}

// buildCanvas renders the solar system to a string canvas.
func (m OrreryModel) buildCanvas() string {
	// Reserve space for HUD (3 lines)
	canvasH := m.height - 5
	if canvasH < 5 {
		canvasH = 5
	}
	canvasW := m.width

	grid := make([][]rune, canvasH)
	for y := range grid {
		grid[y] = make([]rune, canvasW)
		for x := range grid[y] {
			grid[y][x] = ' '
		}
	}

	screenCenterX := canvasW / 2
	screenCenterY := canvasH / 2

	scale := m.scale()
	cfg := orrery.ProjectionConfig{
		Scale: scale,
		Mode:  m.scaleMode,
	}

	// Map log(30 AU + 1) ~ 1.5 to fit in half the canvas
	maxDisplayR := float64(min(screenCenterX, screenCenterY*2)) * 0.9
	displayScale := maxDisplayR / 1.5 * scale

	// Pan offset moves the solar system origin on screen
	originX := screenCenterX + int(m.panX*displayScale)
	originY := screenCenterY - int(m.panY*displayScale)

	// Draw orbit rings centered on the panned origin
	m.drawOrbitRings(grid, originX, originY, displayScale, cfg)

	var positions []bodyPos

	// Draw bodies (except Sun - draw it last)
	for i, body := range m.snapshot.Bodies {
		if body.Kind == orrery.BodySun {
			continue
		}

		proj := orrery.ProjectTopDown(body.Pos, cfg)

		sx := originX + int(proj.X*displayScale)
		sy := originY - int(proj.Y*displayScale) // Y flipped for screen

		if sx < 0 || sx >= canvasW || sy < 0 || sy >= canvasH {
			continue
		}

		glyph := m.getBodyGlyph(body, i == m.focusIdx)
		grid[sy][sx] = glyph

		positions = append(positions, bodyPos{
			x:         sx,
			y:         sy,
			name:      body.Name,
			isFocused: i == m.focusIdx,
		})
	}

	// Draw Sun at panned origin LAST so it's always visible
	if originX >= 0 && originX < canvasW && originY >= 0 && originY < canvasH {
		grid[originY][originX] = '☉'
		positions = append(positions, bodyPos{
			x:         originX,
			y:         originY,
			name:      "Sun",
			isFocused: m.focusIdx == -1,
		})
	}

	m.renderLabels(grid, canvasW, canvasH, positions)

	return m.renderGrid(grid)
}

func (m OrreryModel) drawOrbitRings(grid [][]rune, cx, cy int, scale float64, cfg orrery.ProjectionConfig) {
	// Reference circles near each planet's mean distance
	orbitAUs := []float64{0.39, 0.72, 1, 1.52, 5.2, 9.55, 19.2, 30.1}

	for _, au := range orbitAUs {
		proj := orrery.ProjectTopDown(orrery.Vec3{X: au, Y: 0, Z: 0}, cfg)
		r := proj.X * scale
		m.drawCircle(grid, cx, cy, r)
	}
}

func (m OrreryModel) drawCircle(grid [][]rune, cx, cy int, r float64) {
	if r < 1 {
		return
	}

	h := len(grid)
	w := len(grid[0])

	steps := int(2 * math.Pi * r)
	if steps < 8 {
		steps = 8
	}
	if steps > 360 {
		steps = 360
	}

	for i := 0; i < steps; i++ {
		theta := 2 * math.Pi * float64(i) / float64(steps)
		x := cx + int(r*math.Cos(theta))
		y := cy - int(r*math.Sin(theta)*0.5) // Aspect ratio correction

		if x >= 0 && x < w && y >= 0 && y < h && grid[y][x] == ' ' {
			grid[y][x] = '·'
		}
	}
}

// renderLabels draws body labels on the canvas based on label mode.
func (m OrreryModel) renderLabels(grid [][]rune, width, height int, positions []bodyPos) {
	if m.labelMode == LabelNone || len(positions) == 0 {
		return
	}

	for _, pos := range positions {
		showLabel := false
		switch m.labelMode {
		case LabelFocused:
			showLabel = pos.isFocused
		case LabelAll:
			showLabel = true
		}

		if !showLabel {
			continue
		}

		// Label goes to the right of the glyph, with 1 space gap
		labelX := pos.x + 2
		labelY := pos.y

		if labelY < 0 || labelY >= height || labelX >= width {
			continue
		}

		labelText := pos.name
		if pos.isFocused {
			labelText = "◄ " + pos.name
		}

		for i, r := range labelText {
			x := labelX + i
			if x >= width {
				break
			}
			// Only write if position is empty or has orbit ring
			if grid[labelY][x] == ' ' || grid[labelY][x] == '·' {
				grid[labelY][x] = r
			}
		}
	}
}

func (m OrreryModel) getBodyGlyph(body orrery.Body, focused bool) rune {
	switch body.Kind {
	case orrery.BodyPlanet:
		if body.Class == orrery.ClassGiant {
			if focused {
				return '◉'
			}
			return '○'
		}
		if focused {
			return '●'
		}
		return '•'
	default:
		return '?'
	}
}

func (m OrreryModel) renderGrid(grid [][]rune) string {
	var b strings.Builder

	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	sunStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true)
	planetStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	giantStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("208"))
	focusStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Bold(true)
	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("249"))

	for _, row := range grid {
		for _, ch := range row {
			var style lipgloss.Style

			switch ch {
			case ' ':
				b.WriteRune(ch)
				continue
			case '·':
				style = dimStyle
			case '☉':
				style = sunStyle
			case '•':
				style = planetStyle
			case '○':
				style = giantStyle
			case '●', '◉', '◄':
				style = focusStyle
			default:
				// Label text characters
				style = labelStyle
			}

			b.WriteString(style.Render(string(ch)))
		}
		b.WriteRune('\n')
	}

	return b.String()
}

func (m OrreryModel) renderHUD() string {
	var b strings.Builder

	headerStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Width(12)
	valueStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	focused := m.FocusedBody()

	// Header line with focus info
	if focused != nil {
		b.WriteString(headerStyle.Render(fmt.Sprintf("◆ %s", focused.Name)))
		b.WriteString("  ")
		b.WriteString(labelStyle.Render("Distance:"))
		b.WriteString(valueStyle.Render(fmt.Sprintf("%.5f AU", focused.DistanceAU())))
	} else {
		b.WriteString(headerStyle.Render("☉ Sun"))
		b.WriteString("  ")
		b.WriteString(dimStyle.Render("(center of solar system)"))
	}
	b.WriteString("\n")

	// Second line: coordinates + scale info
	if focused != nil {
		b.WriteString(labelStyle.Render("Ecl Lon:"))
		b.WriteString(valueStyle.Render(fmt.Sprintf("%.4f°", focused.Coord.LonDeg())))
		b.WriteString("  ")
		b.WriteString(labelStyle.Render("Ecl Lat:"))
		b.WriteString(valueStyle.Render(fmt.Sprintf("%.4f°", focused.Coord.LatDeg())))
		b.WriteString("  ")
	}

	modeName := ""
	switch m.scaleMode {
	case orrery.ScaleLogR:
		modeName = "Log"
	case orrery.ScaleInner:
		modeName = "Inner"
	case orrery.ScaleOuter:
		modeName = "Outer"
	}

	labelName := ""
	switch m.labelMode {
	case LabelNone:
		labelName = "off"
	case LabelFocused:
		labelName = "focus"
	case LabelAll:
		labelName = "all"
	}

	b.WriteString(dimStyle.Render("Mode:"))
	b.WriteString(valueStyle.Render(modeName))
	b.WriteString("  ")
	b.WriteString(dimStyle.Render("Zoom:"))
	b.WriteString(valueStyle.Render(fmt.Sprintf("%.2gx", m.scale())))
	b.WriteString("  ")
	b.WriteString(dimStyle.Render("Labels:"))
	b.WriteString(valueStyle.Render(labelName))

	return b.String()
}

// FocusedBody returns the currently focused body, or nil for Sun.
func (m OrreryModel) FocusedBody() *orrery.Body {
	if m.focusIdx >= 0 && m.focusIdx < len(m.snapshot.Bodies) {
		return &m.snapshot.Bodies[m.focusIdx]
	}
	return nil
}

// SetFocusByCode sets focus to a body by its code.
func (m *OrreryModel) SetFocusByCode(code string) {
	for i, body := range m.snapshot.Bodies {
		if body.Code == code {
			m.focusIdx = i
			return
		}
	}
}
