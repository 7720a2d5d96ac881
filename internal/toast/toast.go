// Package toast renders cart notifications for the user.
package toast

import (
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/wexinc/sweetcakes/internal/cart"
	"github.com/wexinc/sweetcakes/internal/logging"
	"github.com/wexinc/sweetcakes/internal/tui/styles"
)

// Icon returns the marker shown in front of a notification of kind k.
func Icon(k cart.Kind) string {
	switch k {
	case cart.KindAdded:
		return "✓"
	case cart.KindUpdated:
		return "↑"
	case cart.KindRemoved:
		return "✗"
	case cart.KindCleared:
		return "○"
	default:
		return "•"
	}
}

// Color returns the accent color for a notification of kind k.
func Color(k cart.Kind) lipgloss.Color {
	switch k {
	case cart.KindAdded:
		return styles.Success
	case cart.KindUpdated:
		return styles.Secondary
	case cart.KindRemoved, cart.KindCleared:
		return styles.Warning
	default:
		return styles.MutedLight
	}
}

// Text returns the notification as a single plain line.
func Text(n cart.Notification) string {
	if n.Description == "" {
		return fmt.Sprintf("%s %s", Icon(n.Kind), n.Title)
	}
	return fmt.Sprintf("%s %s: %s", Icon(n.Kind), n.Title, n.Description)
}

// Printer writes notifications to a writer, one per line.
type Printer struct {
	mu       sync.Mutex
	w        io.Writer
	renderer *lipgloss.Renderer
}

// NewPrinter creates a Printer. Colors are used only when w is a terminal.
func NewPrinter(w io.Writer) *Printer {
	return &Printer{
		w:        w,
		renderer: lipgloss.NewRenderer(w),
	}
}

// Notify implements cart.Notifier.
func (p *Printer) Notify(n cart.Notification) {
	accent := p.renderer.NewStyle().Foreground(Color(n.Kind))
	title := accent.Bold(true).Render(fmt.Sprintf("%s %s", Icon(n.Kind), n.Title))

	line := title
	if n.Description != "" {
		desc := p.renderer.NewStyle().Foreground(styles.MutedLight).Render(n.Description)
		line = title + " " + desc
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	fmt.Fprintln(p.w, line)
}

// LogSink records notifications in the structured log.
type LogSink struct {
	logger *logging.Logger
}

// NewLogSink creates a LogSink. A nil logger uses logging.Global().
func NewLogSink(logger *logging.Logger) *LogSink {
	return &LogSink{logger: logger}
}

// Notify implements cart.Notifier.
func (s *LogSink) Notify(n cart.Notification) {
	logger := s.logger
	if logger == nil {
		logger = logging.Global()
	}
	logger.Info("cart notification",
		"kind", n.Kind.String(),
		"title", n.Title,
		"description", n.Description,
		"item_id", n.ItemID,
	)
}

var (
	_ cart.Notifier = (*Printer)(nil)
	_ cart.Notifier = (*LogSink)(nil)
)
