package tui

import "github.com/charmbracelet/lipgloss"

var (
	// Adaptive colors for dark/light terminals
	colorPrimary   = lipgloss.AdaptiveColor{Light: "#5A56E0", Dark: "#7571F9"}
	colorSecondary = lipgloss.AdaptiveColor{Light: "#3D3D3D", Dark: "#ABABAB"}
	colorDim       = lipgloss.AdaptiveColor{Light: "#9B9B9B", Dark: "#626262"}
	colorAccent    = lipgloss.AdaptiveColor{Light: "#F25D94", Dark: "#F25D94"}
	colorBorder    = lipgloss.AdaptiveColor{Light: "#DBDBDB", Dark: "#383838"}
	colorStatusBg  = lipgloss.AdaptiveColor{Light: "#E8E8E8", Dark: "#16213E"}
	colorStatusFg  = lipgloss.AdaptiveColor{Light: "#3D3D3D", Dark: "#ABABAB"}
	colorGreen     = lipgloss.AdaptiveColor{Light: "#04B575", Dark: "#25D366"}
	colorWarn      = lipgloss.AdaptiveColor{Light: "#C77700", Dark: "#FFB454"}

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 2)

	dateStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	dateMetaStyle = lipgloss.NewStyle().
			Foreground(colorDim)

	solarTermStyle = lipgloss.NewStyle().
			Foreground(colorGreen).
			Bold(true)

	sectionTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(colorAccent).
				MarginTop(1)

	bodyStyle = lipgloss.NewStyle().
			Foreground(colorSecondary)

	moodStyle = lipgloss.NewStyle().
			Foreground(colorDim).
			Italic(true)

	historyEventStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(colorPrimary)

	actionStyle = lipgloss.NewStyle().
			Foreground(colorGreen)

	statusBarStyle = lipgloss.NewStyle().
			Background(colorStatusBg).
			Foreground(colorStatusFg).
			PaddingLeft(1).
			PaddingRight(1)

	sourceAPIStyle = lipgloss.NewStyle().
			Foreground(colorGreen).
			Bold(true)

	sourceLocalStyle = lipgloss.NewStyle().
				Foreground(colorWarn).
				Bold(true)

	spinnerStyle = lipgloss.NewStyle().
			Foreground(colorAccent)

	errorStyle = lipgloss.NewStyle().
			Foreground(colorWarn)
)
