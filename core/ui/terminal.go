// Package ui - Terminal status output
// Status lines, tables and a spinner for the CLI. Invoice content itself is
// rendered by core/output; this package only decorates around it.
package ui

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
)

var (
	boldStyle   = lipgloss.NewStyle().Bold(true)
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("57"))
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	errStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	spinStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
)

// Writer is the UI output destination
type Writer struct {
	out     io.Writer
	noColor bool
}

// NewWriter creates a UI writer
func NewWriter(out io.Writer, noColor bool) *Writer {
	if out == nil {
		out = os.Stdout
	}
	return &Writer{out: out, noColor: noColor}
}

// style applies s if color is enabled
func (w *Writer) style(s lipgloss.Style, text string) string {
	if w.noColor {
		return text
	}
	return s.Render(text)
}

// Println writes a formatted line
func (w *Writer) Println(format string, args ...interface{}) {
	fmt.Fprintf(w.out, format+"\n", args...)
}

// Header prints a section header
func (w *Writer) Header(title string) {
	w.Println("%s", w.style(headerStyle, "━━━ "+title+" ━━━"))
}

// Success prints a success message
func (w *Writer) Success(format string, args ...interface{}) {
	w.Println("%s%s", w.style(okStyle, "✓ "), fmt.Sprintf(format, args...))
}

// Warning prints a warning
func (w *Writer) Warning(format string, args ...interface{}) {
	w.Println("%s%s", w.style(warnStyle, "⚠ "), fmt.Sprintf(format, args...))
}

// Error prints an error
func (w *Writer) Error(format string, args ...interface{}) {
	w.Println("%s%s", w.style(errStyle, "✗ "), fmt.Sprintf(format, args...))
}

// Table renders aligned columns
type Table struct {
	w       *Writer
	headers []string
	rows    [][]string
	widths  []int
	right   map[int]bool
}

// NewTable creates a table
func (w *Writer) NewTable(headers ...string) *Table {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	return &Table{w: w, headers: headers, widths: widths, right: map[int]bool{}}
}

// AlignRight right-aligns the given columns
func (t *Table) AlignRight(cols ...int) *Table {
	for _, c := range cols {
		t.right[c] = true
	}
	return t
}

// AddRow adds a row, padding missing cells
func (t *Table) AddRow(cells ...string) {
	row := make([]string, len(t.headers))
	for i := range row {
		if i < len(cells) {
			row[i] = cells[i]
		}
		if n := lipgloss.Width(row[i]); n > t.widths[i] {
			t.widths[i] = n
		}
	}
	t.rows = append(t.rows, row)
}

// Render prints the table
func (t *Table) Render() {
	t.w.Println("%s", t.w.style(boldStyle, t.line(t.headers)))

	sep := make([]string, len(t.widths))
	for i, n := range t.widths {
		sep[i] = strings.Repeat("─", n)
	}
	t.w.Println("%s", strings.Join(sep, "─┼─"))

	for _, row := range t.rows {
		t.w.Println("%s", t.line(row))
	}
}

func (t *Table) line(cells []string) string {
	out := make([]string, len(cells))
	for i, cell := range cells {
		pad := strings.Repeat(" ", t.widths[i]-lipgloss.Width(cell))
		if t.right[i] {
			out[i] = pad + cell
		} else {
			out[i] = cell + pad
		}
	}
	return strings.TrimRight(strings.Join(out, " │ "), " ")
}

// Spinner shows a loading spinner while a slow call runs
type Spinner struct {
	w       *Writer
	label   string
	frames  []string
	stop    chan struct{}
	done    chan struct{}
	stopped sync.Once
}

// NewSpinner creates a spinner
func (w *Writer) NewSpinner(label string) *Spinner {
	return &Spinner{
		w:      w,
		label:  label,
		frames: []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"},
		stop:   make(chan struct{}),
		done:   make(chan struct{}),
	}
}

// Start animates the spinner until Stop
func (s *Spinner) Start() {
	go func() {
		defer close(s.done)
		ticker := time.NewTicker(80 * time.Millisecond)
		defer ticker.Stop()
		for i := 0; ; i++ {
			select {
			case <-s.stop:
				return
			case <-ticker.C:
				fmt.Fprintf(s.w.out, "\r%s %s", s.w.style(spinStyle, s.frames[i%len(s.frames)]), s.label)
			}
		}
	}()
}

// Stop ends the animation and prints the final state. Safe to call twice.
func (s *Spinner) Stop(success bool) {
	s.stopped.Do(func() {
		close(s.stop)
		<-s.done

		icon := s.w.style(okStyle, "✓")
		if !success {
			icon = s.w.style(errStyle, "✗")
		}
		fmt.Fprintf(s.w.out, "\r%s %s\n", icon, s.label)
	})
}
