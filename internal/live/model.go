package live

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/sphcrowd/internal/engine"
	"github.com/san-kum/sphcrowd/internal/metrics"
)

const (
	canvasWidth     = 80
	canvasHeight    = 24
	historyCapacity = 300
	framesPerSecond = 30
	stirStrength    = 6.0
)

var (
	canvasStyle = lipgloss.NewStyle().Padding(1, 2)
	statsStyle  = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color("240")).
			Padding(1, 2).Width(36)
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(14)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(2)
	lowPressure = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	midPressure = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	hiPressure  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

// tickMsg drives one simulation step per frame.
type tickMsg time.Time

// Model is a bubbletea program that owns a live engine, ticking it once
// per frame and rendering its particle population.
type Model struct {
	eng          *engine.Engine
	name         string
	running      bool
	canvas       *Canvas
	densityHist  []float64
	meanDensity  *metrics.MeanDensity
	meanPressure *metrics.MeanPressure
	kinetic      *metrics.KineticEnergy
	ticks        int
}

// NewModel wraps an already-initialized engine for live viewing.
func NewModel(eng *engine.Engine, name string) Model {
	return Model{
		eng:          eng,
		name:         name,
		running:      true,
		canvas:       NewCanvas(canvasWidth, canvasHeight),
		densityHist:  make([]float64, 0, historyCapacity),
		meanDensity:  metrics.NewMeanDensity(),
		meanPressure: metrics.NewMeanPressure(),
		kinetic:      metrics.NewKineticEnergy(),
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Tick(time.Second/framesPerSecond, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		}
	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			m.stir(msg.X, msg.Y)
		}
	case tickMsg:
		if m.running {
			m.step()
		}
		m.draw()
		return m, tea.Tick(time.Second/framesPerSecond, func(t time.Time) tea.Msg { return tickMsg(t) })
	}
	return m, nil
}

func (m *Model) step() {
	m.eng.DoPhysics()
	m.ticks++

	particles := m.eng.Particles()
	m.meanDensity.Observe(particles)
	m.meanPressure.Observe(particles)
	m.kinetic.Observe(particles)

	var total float64
	for _, p := range particles {
		total += p.Density
	}
	mean := 0.0
	if len(particles) > 0 {
		mean = total / float64(len(particles))
	}
	m.densityHist = append(m.densityHist, mean)
	if len(m.densityHist) > historyCapacity {
		m.densityHist = m.densityHist[1:]
	}
}

func (m *Model) draw() {
	m.canvas.Clear()
	RenderCanvas(m.eng, m.canvas, nil)
}

// stir converts a terminal mouse click (cell coordinates, offset by the
// canvas panel's lipgloss padding) into a screen-space point and arms a
// forced-velocity stir at that point: on the next tick every particle in
// the grid cell under the click takes the horizontal velocity
// (stirStrength, 0).
func (m *Model) stir(termX, termY int) {
	col, row := termX-2, termY-1
	if col < 0 || row < 0 || col >= canvasWidth || row >= canvasHeight {
		return
	}
	domainW := (m.eng.XMax - m.eng.XMin) * m.eng.Scale
	domainH := (m.eng.YMax - m.eng.YMin) * m.eng.Scale
	relX := (float64(col)*2 + 1) / float64(canvasWidth*2) * domainW
	relY := (float64(row)*4 + 2) / float64(canvasHeight*4) * domainH

	screenX := relX + m.eng.XMin*m.eng.Scale
	screenY := relY
	_ = m.eng.ForceVelocity(screenX, screenY, stirStrength, 0)
}

// RenderCanvas plots eng's live particle population onto canvas, which
// the caller must have already sized and cleared as needed. When
// pressure is non-nil, each plotted particle's pressure is folded into
// the matching cell so an exporter can color by pressure. Shared by the
// live Model and by one-shot snapshot export.
func RenderCanvas(eng *engine.Engine, canvas *Canvas, pressure *PressureField) {
	n := eng.GetParticleCount()
	domainW := (eng.XMax - eng.XMin) * eng.Scale
	domainH := (eng.YMax - eng.YMin) * eng.Scale
	for i := 0; i < n; i++ {
		pos := eng.GetParticlePosition(i)
		relX := pos.X - eng.XMin*eng.Scale
		x := int(relX / domainW * float64(canvas.Width*2))
		y := int(pos.Y / domainH * float64(canvas.Height*4))
		canvas.Set(x, y)
		if pressure != nil {
			pressure.Accumulate(x, y, eng.GetParticlePressure(i))
		}
	}
}

func (m Model) View() string {
	var s strings.Builder
	s.WriteString(headerStyle.Render(strings.ToUpper(m.name)) + "\n")
	status := "RUNNING"
	if !m.running {
		status = "PAUSED"
	}
	s.WriteString(status + "\n\n")

	if len(m.densityHist) > 1 {
		chart := asciigraph.Plot(m.densityHist, asciigraph.Height(4), asciigraph.Width(26), asciigraph.Caption("mean density"))
		s.WriteString(graphStyle.Render(chart) + "\n\n")
	}

	s.WriteString(labelStyle.Render("Ticks") + valueStyle.Render(fmt.Sprintf("%d", m.ticks)) + "\n")
	s.WriteString(labelStyle.Render("Particles") + valueStyle.Render(fmt.Sprintf("%d", m.eng.GetParticleCount())) + "\n")
	s.WriteString(labelStyle.Render("Mean density") + valueStyle.Render(fmt.Sprintf("%.3f", m.meanDensity.Value())) + "\n")
	s.WriteString(labelStyle.Render("Mean pressure") + pressureStyle(m.meanPressure.Value()).Render(fmt.Sprintf("%.3f", m.meanPressure.Value())) + "\n")
	s.WriteString(labelStyle.Render("Kinetic energy") + valueStyle.Render(fmt.Sprintf("%.3f", m.kinetic.Value())) + "\n")
	s.WriteString(helpStyle.Render("\n─────────────\nSpace:Pause  Click:Stir  Q:Quit"))

	canvasView := canvasStyle.Render(m.canvas.String())
	statsView := statsStyle.Render(s.String())
	return lipgloss.JoinHorizontal(lipgloss.Top, canvasView, statsView)
}

func pressureStyle(v float64) lipgloss.Style {
	switch {
	case v > 20:
		return hiPressure
	case v > 5:
		return midPressure
	default:
		return lowPressure
	}
}
