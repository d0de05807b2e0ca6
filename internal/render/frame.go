package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/roach88/sortscope/internal/engine"
	"github.com/roach88/sortscope/internal/ir"
)

// DefaultHeight is the chart height in rows.
const DefaultHeight = 16

const (
	blockGlyph  = "\u2588"
	plainGlyph  = "#"
	recentGlyph = "*"
)

// Frame is everything one drawing needs, captured from a Player.
type Frame struct {
	Method  string
	Values  []int
	Weights map[int]float64
	Cursor  int
	OpCount int
	State   engine.State
	LastOp  *ir.Operation
}

// FrameOf captures the current state of p.
func FrameOf(p *engine.Player) Frame {
	f := Frame{
		Method:  p.Method(),
		Values:  p.View(),
		Weights: p.RecencyWeights(),
		Cursor:  p.Cursor(),
		OpCount: p.OpCount(),
		State:   p.State(),
	}
	if op, ok := p.LastOp(); ok {
		f.LastOp = &op
	}
	return f
}

// Renderer draws frames. A Renderer is not safe for concurrent use.
type Renderer struct {
	lg     *lipgloss.Renderer
	height int
	plain  bool
	status lipgloss.Style
}

// New creates a renderer for out. height <= 0 uses DefaultHeight.
func New(out io.Writer, height int, plain bool) *Renderer {
	if height <= 0 {
		height = DefaultHeight
	}
	lg := lipgloss.NewRenderer(out)
	return &Renderer{
		lg:     lg,
		height: height,
		plain:  plain,
		status: lg.NewStyle().Foreground(lipgloss.Color("241")),
	}
}

// SetColorProfile overrides the detected terminal colour profile.
func (r *Renderer) SetColorProfile(p termenv.Profile) {
	r.lg.SetColorProfile(p)
}

// Render draws f as height chart rows followed by a status line.
func (r *Renderer) Render(f Frame) string {
	n := len(f.Values)
	highest := 1
	for _, v := range f.Values {
		highest = max(highest, v)
	}

	heights := make([]int, n)
	for i, v := range f.Values {
		if v > 0 {
			heights[i] = (v*r.height + highest - 1) / highest
		}
	}

	var b strings.Builder
	for row := 0; row < r.height; row++ {
		level := r.height - row
		for i := range f.Values {
			if heights[i] < level {
				b.WriteByte(' ')
				continue
			}
			b.WriteString(r.cell(f, i))
		}
		b.WriteByte('\n')
	}
	b.WriteString(r.statusLine(f))
	return b.String()
}

func (r *Renderer) cell(f Frame, i int) string {
	q, read := f.Weights[i]
	if r.plain {
		if read {
			return recentGlyph
		}
		return plainGlyph
	}
	return r.lg.NewStyle().
		Foreground(lipgloss.Color(Colour(f.Values[i], len(f.Values), q))).
		Render(blockGlyph)
}

func (r *Renderer) statusLine(f Frame) string {
	line := fmt.Sprintf("%s  %d/%d ops  %s", f.Method, f.Cursor, f.OpCount, f.State)
	if f.LastOp != nil {
		line += "  " + f.LastOp.String()
		if f.LastOp.Kind == ir.OpRead && f.LastOp.Index < len(f.Values) {
			line += fmt.Sprintf("  %.0fHz", Pitch(f.Values[f.LastOp.Index], len(f.Values)))
		}
	}
	if r.plain {
		return line
	}
	return r.status.Render(line)
}
