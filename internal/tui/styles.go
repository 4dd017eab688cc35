package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/WerlingM/privacy-exif-cleaner/internal/model"
)

// Color palette.
var (
	colorRed       = lipgloss.Color("#ff5555")
	colorGreen     = lipgloss.Color("#50fa7b")
	colorYellow    = lipgloss.Color("#f1fa8c")
	colorBlue      = lipgloss.Color("#8be9fd")
	colorPurple    = lipgloss.Color("#bd93f9")
	colorOrange    = lipgloss.Color("#ffb86c")
	colorDim       = lipgloss.Color("#6272a4")
	colorBgLight   = lipgloss.Color("#343746")
	colorFg        = lipgloss.Color("#f8f8f2")
	colorBorder    = lipgloss.Color("#44475a")
	colorHighlight = lipgloss.Color("#44475a")
)

// Style definitions.
var (
	// File list styles
	fileListStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 1)

	fileItemStyle = lipgloss.NewStyle().
			Foreground(colorFg)

	fileItemSelectedStyle = lipgloss.NewStyle().
				Foreground(colorFg).
				Background(colorHighlight).
				Bold(true)

	fileApprovedStyle = lipgloss.NewStyle().
				Foreground(colorGreen)

	fileSkippedStyle = lipgloss.NewStyle().
				Foreground(colorDim)

	// Findings pane styles
	findingsViewStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorBorder).
				Padding(0, 1)

	fileHeaderStyle = lipgloss.NewStyle().
			Foreground(colorBlue).
			Bold(true).
			Padding(0, 0, 1, 0)

	summaryLineStyle = lipgloss.NewStyle().
				Foreground(colorDim)

	findingLocationStyle = lipgloss.NewStyle().
				Foreground(colorRed).
				Bold(true)

	findingDeviceStyle = lipgloss.NewStyle().
				Foreground(colorOrange)

	findingPersonalStyle = lipgloss.NewStyle().
				Foreground(colorPurple)

	findingTimestampStyle = lipgloss.NewStyle().
				Foreground(colorYellow)

	findingSoftwareStyle = lipgloss.NewStyle().
				Foreground(colorBlue)

	findingOtherStyle = lipgloss.NewStyle().
				Foreground(colorDim)

	// Status bar
	statusBarStyle = lipgloss.NewStyle().
			Foreground(colorFg).
			Background(colorBgLight).
			Padding(0, 1)

	// Help bar
	helpBarStyle = lipgloss.NewStyle().
			Foreground(colorDim)

	helpKeyStyle = lipgloss.NewStyle().
			Foreground(colorYellow)
)

func categoryStyle(c model.PrivacyCategory) lipgloss.Style {
	switch c {
	case model.CategoryLocation:
		return findingLocationStyle
	case model.CategoryDeviceID:
		return findingDeviceStyle
	case model.CategoryPersonal:
		return findingPersonalStyle
	case model.CategoryTimestamp:
		return findingTimestampStyle
	case model.CategorySoftware:
		return findingSoftwareStyle
	default:
		return findingOtherStyle
	}
}
