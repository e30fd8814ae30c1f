// Package render draws the confidence chart as horizontal text bars.
//
// Each Render call hands back a Chart that the caller must Close before the
// renderer accepts the next one. Session wraps that contract for callers that
// simply want "replace whatever is on screen".
package render

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/yourusername/matchtips/internal/models"
	"golang.org/x/term"
)

const (
	defaultWidth = 72
	minBarWidth  = 10
	barRune      = "█"
)

// Renderer writes charts to an output stream
type Renderer struct {
	out   io.Writer
	width int
	live  *Chart
}

// NewRenderer creates a renderer. A zero width follows the terminal when out
// is a TTY and falls back to a fixed width otherwise.
func NewRenderer(out io.Writer, width int) *Renderer {
	if width <= 0 {
		width = detectWidth(out)
	}
	return &Renderer{out: out, width: width}
}

func detectWidth(out io.Writer) int {
	f, ok := out.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return defaultWidth
	}
	w, _, err := term.GetSize(int(f.Fd()))
	if err != nil || w <= 0 {
		return defaultWidth
	}
	return w
}

// Width returns the line width charts are drawn to
func (r *Renderer) Width() int {
	return r.width
}

// Render draws points and returns the live chart handle.
// It fails with ErrChartOpen while a previous chart is still open.
func (r *Renderer) Render(title string, points []models.ChartPoint) (*Chart, error) {
	if r.live != nil {
		return nil, models.ErrChartOpen
	}

	labelWidth := 0
	for _, p := range points {
		if n := utf8.RuneCountInString(p.Label); n > labelWidth {
			labelWidth = n
		}
	}
	// label, space, bar, space, "100%"
	barWidth := r.width - labelWidth - 6
	if barWidth < minBarWidth {
		barWidth = minBarWidth
	}

	var b strings.Builder
	if title != "" {
		fmt.Fprintf(&b, "%s\n", title)
	}
	for _, p := range points {
		value := p.Value
		if value < 0 {
			value = 0
		}
		if value > 100 {
			value = 100
		}
		pad := labelWidth - utf8.RuneCountInString(p.Label)
		bar := strings.Repeat(barRune, value*barWidth/100)
		fmt.Fprintf(&b, "%s%s %s %d%%\n", p.Label, strings.Repeat(" ", pad), bar, value)
	}

	lines := strings.Count(b.String(), "\n")
	if _, err := io.WriteString(r.out, b.String()); err != nil {
		return nil, fmt.Errorf("failed to write chart: %w", err)
	}

	c := &Chart{renderer: r, points: append([]models.ChartPoint(nil), points...), lines: lines}
	r.live = c
	return c, nil
}

// Chart is a rendered chart handle
type Chart struct {
	renderer *Renderer
	points   []models.ChartPoint
	lines    int
	closed   bool
}

// Points returns the bars the chart was drawn from
func (c *Chart) Points() []models.ChartPoint {
	return c.points
}

// Lines returns how many lines the chart occupied
func (c *Chart) Lines() int {
	return c.lines
}

// Closed reports whether the chart has been released
func (c *Chart) Closed() bool {
	return c.closed
}

// Close releases the chart so the renderer can draw again
func (c *Chart) Close() error {
	if c.closed {
		return models.ErrChartClosed
	}
	c.closed = true
	if c.renderer.live == c {
		c.renderer.live = nil
	}
	return nil
}

// Session keeps at most one chart alive, closing it before each new render
type Session struct {
	renderer *Renderer
	current  *Chart
}

// NewSession wraps a renderer
func NewSession(r *Renderer) *Session {
	return &Session{renderer: r}
}

// Show replaces the current chart with a new one
func (s *Session) Show(title string, points []models.ChartPoint) (*Chart, error) {
	if err := s.Clear(); err != nil {
		return nil, err
	}
	c, err := s.renderer.Render(title, points)
	if err != nil {
		return nil, err
	}
	s.current = c
	return c, nil
}

// Current returns the live chart, if any
func (s *Session) Current() *Chart {
	return s.current
}

// Clear tears down the current chart. Clearing an empty session is a no-op.
func (s *Session) Clear() error {
	if s.current == nil {
		return nil
	}
	c := s.current
	s.current = nil
	if c.Closed() {
		return nil
	}
	return c.Close()
}
