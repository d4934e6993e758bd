// Package styles contains Lip Gloss style definitions.
package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Text hierarchy
	TextPrimaryColor   = lipgloss.AdaptiveColor{Light: "#333333", Dark: "#CCCCCC"} // Cell contents
	TextSecondaryColor = lipgloss.AdaptiveColor{Light: "#555555", Dark: "#BBBBBB"} // Status bar
	TextMutedColor     = lipgloss.AdaptiveColor{Light: "#999999", Dark: "#696969"} // Hints, axis labels

	BorderDefaultColor        = lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#696969"}
	BorderHighlightFocusColor = lipgloss.AdaptiveColor{Light: "#54A0FF", Dark: "#54A0FF"}

	StatusSuccessColor = lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"}
	StatusWarningColor = lipgloss.AdaptiveColor{Light: "#FECA57", Dark: "#FECA57"}
	StatusErrorColor   = lipgloss.AdaptiveColor{Light: "#FF6B6B", Dark: "#FF8787"}

	SelectionIndicatorColor  = lipgloss.AdaptiveColor{Light: "#000000", Dark: "#FFFFFF"}
	SelectionBackgroundColor = lipgloss.AdaptiveColor{Light: "#1A5276", Dark: "#1A5276"}

	CellHeaderColor    = lipgloss.AdaptiveColor{Light: "#1E66F5", Dark: "#89B4FA"}
	CellProtectedColor = lipgloss.AdaptiveColor{Light: "#8839EF", Dark: "#CBA6F7"}
	CellEditingColor   = lipgloss.AdaptiveColor{Light: "#DF8E1D", Dark: "#F9E2AF"}
	CellRangeColor     = lipgloss.AdaptiveColor{Light: "#BCC0CC", Dark: "#2D3436"}

	OverlayTitleColor  = lipgloss.AdaptiveColor{Light: "#333333", Dark: "#C9C9C9"}
	OverlayBorderColor = lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#8C8C8C"}

	ToastBorderSuccessColor = lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"}
	ToastBorderErrorColor   = lipgloss.AdaptiveColor{Light: "#FF6B6B", Dark: "#FF8787"}
	ToastBorderInfoColor    = lipgloss.AdaptiveColor{Light: "#54A0FF", Dark: "#54A0FF"}
	ToastBorderWarnColor    = lipgloss.AdaptiveColor{Light: "#FECA57", Dark: "#FECA57"}

	// Cell styles. Rebuilt by ApplyTheme.
	CellStyle          = lipgloss.NewStyle().Foreground(TextPrimaryColor)
	CellSelectedStyle  = lipgloss.NewStyle().Foreground(SelectionIndicatorColor).Background(SelectionBackgroundColor).Bold(true)
	CellRangeStyle     = lipgloss.NewStyle().Foreground(TextPrimaryColor).Background(CellRangeColor)
	CellProtectedStyle = lipgloss.NewStyle().Foreground(CellProtectedColor).Italic(true)
	CellEditingStyle   = lipgloss.NewStyle().Foreground(CellEditingColor).Underline(true)
	AxisStyle          = lipgloss.NewStyle().Foreground(TextMutedColor)
	AxisActiveStyle    = lipgloss.NewStyle().Foreground(CellHeaderColor).Bold(true)

	StatusBarStyle = lipgloss.NewStyle().
			Foreground(TextSecondaryColor).
			Padding(0, 1)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(StatusErrorColor).
			Bold(true).
			Padding(1, 2)
)
