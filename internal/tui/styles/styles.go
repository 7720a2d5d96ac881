// Package styles provides Lip Gloss styles for the sweetcakes TUI and console output.
package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// Color palette.
var (
	// Primary colors
	Primary     = lipgloss.Color("#EC4899") // Pink
	Secondary   = lipgloss.Color("#F59E0B") // Caramel
	Success     = lipgloss.Color("#10B981") // Green
	Warning     = lipgloss.Color("#F59E0B") // Amber
	Error       = lipgloss.Color("#EF4444") // Red
	Muted       = lipgloss.Color("#6B7280") // Gray
	MutedLight  = lipgloss.Color("#9CA3AF") // Light Gray
	Background  = lipgloss.Color("#1F2937") // Dark Gray
	Foreground  = lipgloss.Color("#F9FAFB") // White
	BorderColor = lipgloss.Color("#374151") // Border Gray
	Star        = lipgloss.Color("#FBBF24") // Gold
)

// Header styles.
var (
	// TitleStyle is for the application title.
	TitleStyle = lipgloss.NewStyle().
			Foreground(Foreground).
			Background(Primary).
			Bold(true).
			Padding(0, 1)

	// HeaderLabelStyle is for header labels.
	HeaderLabelStyle = lipgloss.NewStyle().
				Foreground(MutedLight)

	// HeaderValueStyle is for header values.
	HeaderValueStyle = lipgloss.NewStyle().
				Foreground(Foreground).
				Bold(true)
)

// Box styles.
var (
	// BoxStyle is a standard box with border.
	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(BorderColor).
			Padding(0, 1)

	// FocusedBoxStyle is a box that's currently focused.
	FocusedBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Primary).
			Padding(0, 1)

	// PaneTitleStyle is for the title line of a pane.
	PaneTitleStyle = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)
)

// List styles.
var (
	// SelectedItemStyle is for the row under the cursor.
	SelectedItemStyle = lipgloss.NewStyle().
				Foreground(Foreground).
				Bold(true)

	// ItemStyle is for other rows.
	ItemStyle = lipgloss.NewStyle().
			Foreground(MutedLight)

	// PriceStyle is for prices and totals.
	PriceStyle = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	// RatingStyle is for product ratings.
	RatingStyle = lipgloss.NewStyle().
			Foreground(Star)

	// FeaturedBadge marks featured products.
	FeaturedBadge = lipgloss.NewStyle().
			Foreground(Primary).
			Render("★")

	// CategoryStyle is for the active category filter.
	CategoryStyle = lipgloss.NewStyle().
			Foreground(Background).
			Background(Secondary).
			Padding(0, 1)
)

// Text styles.
var (
	// MutedTextStyle is for de-emphasized text.
	MutedTextStyle = lipgloss.NewStyle().
			Foreground(Muted)

	// ErrorTextStyle is for error messages.
	ErrorTextStyle = lipgloss.NewStyle().
			Foreground(Error)

	// SuccessTextStyle is for success messages.
	SuccessTextStyle = lipgloss.NewStyle().
				Foreground(Success)

	// WarningTextStyle is for warning messages.
	WarningTextStyle = lipgloss.NewStyle().
				Foreground(Warning)
)

// Status bar styles.
var (
	// StatusBarStyle is the main status bar container.
	StatusBarStyle = lipgloss.NewStyle().
			Foreground(MutedLight).
			Padding(0, 1)

	// KeyStyle is for keyboard shortcut keys.
	KeyStyle = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	// HelpStyle is for help text.
	HelpStyle = lipgloss.NewStyle().
			Foreground(Muted)
)
