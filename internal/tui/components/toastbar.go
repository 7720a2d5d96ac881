package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/wexinc/sweetcakes/internal/cart"
	"github.com/wexinc/sweetcakes/internal/toast"
	"github.com/wexinc/sweetcakes/internal/tui/styles"
)

// ToastBar shows the latest cart notification or error on one line.
type ToastBar struct {
	current *cart.Notification
	err     string
	seq     int
	width   int
}

// NewToastBar creates a new ToastBar component.
func NewToastBar() *ToastBar {
	return &ToastBar{}
}

// Show displays n and returns its sequence number, used to expire it later.
func (t *ToastBar) Show(n cart.Notification) int {
	t.current = &n
	t.err = ""
	t.seq++
	return t.seq
}

// ShowError displays an error message and returns its sequence number.
func (t *ToastBar) ShowError(msg string) int {
	t.current = nil
	t.err = msg
	t.seq++
	return t.seq
}

// Expire hides the toast if seq is still the one being shown.
func (t *ToastBar) Expire(seq int) {
	if seq == t.seq {
		t.current = nil
		t.err = ""
	}
}

// Visible reports whether anything is being shown.
func (t *ToastBar) Visible() bool {
	return t.current != nil || t.err != ""
}

// Current returns the notification being shown, if any.
func (t *ToastBar) Current() (cart.Notification, bool) {
	if t.current == nil {
		return cart.Notification{}, false
	}
	return *t.current, true
}

// SetWidth sets the width of the toast bar.
func (t *ToastBar) SetWidth(width int) {
	t.width = width
}

// View renders the toast bar.
func (t *ToastBar) View() string {
	style := styles.StatusBarStyle
	if t.width > 0 {
		style = style.Width(t.width)
	}

	switch {
	case t.err != "":
		return style.Render(styles.ErrorTextStyle.Render("✗ " + t.err))
	case t.current != nil:
		n := *t.current
		title := lipgloss.NewStyle().
			Foreground(toast.Color(n.Kind)).
			Bold(true).
			Render(toast.Icon(n.Kind) + " " + n.Title)
		return style.Render(title + "  " + styles.MutedTextStyle.Render(n.Description))
	default:
		return style.Render("")
	}
}
