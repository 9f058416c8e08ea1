package output

import (
	"fmt"
	"io"
	"strings"
	"sync"
)

// ProgressBar displays benchmark progress as completed cells out of total.
type ProgressBar struct {
	w       io.Writer
	title   string
	total   int
	current int
	width   int
	mu      sync.Mutex
}

// NewProgressBar creates a new progress bar.
func NewProgressBar(w io.Writer, title string, total int) *ProgressBar {
	return &ProgressBar{
		w:     w,
		title: title,
		total: total,
		width: 30,
	}
}

// Increment adds n completed cells and redraws.
func (p *ProgressBar) Increment(n int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.current += n
	p.render()
}

// Finish completes the bar and ends the line.
func (p *ProgressBar) Finish() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.current = p.total
	p.render()
	fmt.Fprintln(p.w)
}

func (p *ProgressBar) render() {
	if p.total <= 0 {
		fmt.Fprintf(p.w, "\r%s %d", p.title, p.current)
		return
	}

	percent := float64(p.current) / float64(p.total)
	if percent > 1 {
		percent = 1
	}

	filled := int(float64(p.width) * percent)
	bar := strings.Repeat("#", filled) + strings.Repeat(".", p.width-filled)

	fmt.Fprintf(p.w, "\r%s [%s] %3.0f%% (%d/%d)", p.title, bar, percent*100, p.current, p.total)
}
