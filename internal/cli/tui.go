package cli

import (
	"fmt"
	"image"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/matzehuels/damagedcard/pkg/card"
	"github.com/matzehuels/damagedcard/pkg/interaction"
	"github.com/matzehuels/damagedcard/pkg/render"
)

// Preview styles
var (
	hoverStateIdle  = lipgloss.NewStyle().Foreground(colorGray)
	hoverStateHover = lipgloss.NewStyle().Bold(true).Foreground(colorGreen)
	hoverLabel      = lipgloss.NewStyle().Foreground(colorGray).Width(9)
	hoverHelp       = lipgloss.NewStyle().Foreground(colorDim)
)

const (
	// maxPreviewWidth caps the card preview in terminal columns.
	maxPreviewWidth = 72
	// hoverChrome is the number of text lines around the preview.
	hoverChrome = 12
)

// =============================================================================
// teaClock - timers delivered through the bubbletea event loop
// =============================================================================

// hoverFireMsg carries a timer callback into Update.
type hoverFireMsg struct{ fn func() }

// teaClock schedules controller timers on wall time but runs their callbacks
// inside Update, so the controller is only touched from one goroutine.
type teaClock struct {
	send func(tea.Msg)
}

func (c *teaClock) AfterFunc(d time.Duration, f func()) interaction.Timer {
	return time.AfterFunc(d, func() {
		if c.send != nil {
			c.send(hoverFireMsg{fn: f})
		}
	})
}

// =============================================================================
// HoverModel - interactive hover preview
// =============================================================================

// HoverModel is the bubbletea model that previews the hover choreography.
type HoverModel struct {
	ctrl   *interaction.Controller
	panel  *render.Panel
	frames *render.FrameQueue
	canvas *render.Canvas
	aspect float64

	panelNode *interaction.Node
	logoNode  *interaction.Node
	badgeNode *interaction.Node

	mounted bool
	snap    interaction.Snapshot
}

// hoverConfig is what NewHoverModel needs to build a preview.
type hoverConfig struct {
	Geometry *card.Geometry
	Gradient render.Gradient
	Texture  card.Rand
	Rand     card.Rand
	Staples  bool
	Clock    interaction.Clock
	Logger   *log.Logger
}

// NewHoverModel creates a preview of cfg.Geometry. The canvas is sized on the first
// window size message.
func NewHoverModel(cfg hoverConfig) HoverModel {
	frames := &render.FrameQueue{}
	canvas := render.NewCanvas(1, 1, 1)
	renderer := render.NewRenderer(render.Options{
		Geometry: cfg.Geometry,
		Gradient: cfg.Gradient,
		Rand:     cfg.Texture,
		Logger:   cfg.Logger,
	})

	m := HoverModel{
		panel:     render.NewPanel(renderer, canvas, frames),
		frames:    frames,
		canvas:    canvas,
		aspect:    cfg.Geometry.Height / cfg.Geometry.Width,
		panelNode: interaction.NewNode("panel", nil),
		logoNode:  interaction.NewNode("logo", nil),
		badgeNode: interaction.NewNode("badge", interaction.Stack{{Rotate: -4, Scale: 1}}),
	}
	m.ctrl = interaction.New(interaction.Options{
		Panel:   m.panelNode,
		Logo:    m.logoNode,
		Upright: []interaction.Element{m.badgeNode},
		Staples: cfg.Staples,
		Rand:    cfg.Rand,
		Clock:   cfg.Clock,
		Logger:  cfg.Logger,
	})
	m.snap = m.ctrl.Snapshot()
	return m
}

func (m HoverModel) Init() tea.Cmd {
	return nil
}

func (m HoverModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.ctrl.Close()
			return m, tea.Quit
		case "e", "enter":
			m.ctrl.Enter()
		case "l":
			m.ctrl.Leave()
		case " ", "space":
			if m.ctrl.State() == interaction.Hovering {
				m.ctrl.Leave()
			} else {
				m.ctrl.Enter()
			}
		}
	case tea.WindowSizeMsg:
		w, h := previewSize(msg.Width, msg.Height, m.aspect)
		if m.mounted {
			m.panel.Resize(w, h)
		} else {
			m.panel.Mount(w, h)
			m.mounted = true
		}
	case hoverFireMsg:
		msg.fn()
	}

	m.frames.Flush()
	m.snap = m.ctrl.Snapshot()
	return m, nil
}

func (m HoverModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Hover Preview"))
	b.WriteString("\n")
	b.WriteString(hoverHelp.Render("e enter  l leave  space toggle  q quit"))
	b.WriteString("\n\n")

	if w, _ := m.panel.Size(); w > 0 {
		b.WriteString(halfBlocks(m.canvas.Image()))
		b.WriteString("\n")
	}

	state := hoverStateIdle.Render(m.snap.State.String())
	if m.snap.State == interaction.Hovering {
		state = hoverStateHover.Render(m.snap.State.String())
	}
	b.WriteString(hoverLabel.Render("state") + " " + state + "\n")
	b.WriteString(hoverLabel.Render("panel") + " " + StyleValue.Render(m.panelNode.Transform().String()) + "\n")
	b.WriteString(hoverLabel.Render("logo") + " " + StyleValue.Render(m.logoNode.Transform().String()) + "\n")
	b.WriteString(hoverLabel.Render("badge") + " " + StyleValue.Render(m.badgeNode.Transform().String()) + "\n")

	if len(m.snap.Staples) > 0 {
		staples := make([]string, len(m.snap.Staples))
		for i, s := range m.snap.Staples {
			staples[i] = fmt.Sprintf("(%.1f%%, %.1f%%) %.0f°", s.X, s.Y, s.Rotation)
		}
		vis := "hidden"
		if m.snap.StaplesVisible {
			vis = "visible"
		}
		b.WriteString(hoverLabel.Render("staples") + " " + StyleValue.Render(strings.Join(staples, "  ")) + " " + StyleDim.Render(vis) + "\n")
		b.WriteString(hoverLabel.Render("holes") + " " + StyleNumber.Render(fmt.Sprint(len(m.snap.Holes))) + "\n")
	}

	return b.String()
}

// previewSize fits a card of the given aspect ratio into the terminal.
// One cell shows two vertically stacked pixels.
func previewSize(cols, rows int, aspect float64) (w, h float64) {
	w = float64(min(cols-2, maxPreviewWidth))
	maxH := float64(2 * (rows - hoverChrome))
	h = math.Round(w * aspect)
	if maxH > 0 && h > maxH {
		h = maxH
		w = math.Round(h / aspect)
	}
	return max(w, 0), max(h, 0)
}

// halfBlocks draws img with one "▀" cell per two pixel rows.
func halfBlocks(img image.Image) string {
	bounds := img.Bounds()
	var b strings.Builder
	for y := bounds.Min.Y; y < bounds.Max.Y; y += 2 {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			top, topOK := colorful.MakeColor(img.At(x, y))
			var bot colorful.Color
			var botOK bool
			if y+1 < bounds.Max.Y {
				bot, botOK = colorful.MakeColor(img.At(x, y+1))
			}

			style := lipgloss.NewStyle()
			switch {
			case topOK && botOK:
				style = style.Foreground(lipgloss.Color(top.Hex())).Background(lipgloss.Color(bot.Hex()))
				b.WriteString(style.Render("▀"))
			case topOK:
				b.WriteString(style.Foreground(lipgloss.Color(top.Hex())).Render("▀"))
			case botOK:
				b.WriteString(style.Foreground(lipgloss.Color(bot.Hex())).Render("▄"))
			default:
				b.WriteString(" ")
			}
		}
		b.WriteString("\n")
	}
	return strings.TrimSuffix(b.String(), "\n")
}
