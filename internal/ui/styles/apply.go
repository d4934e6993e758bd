package styles

import (
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// styleRebuilders holds callbacks to rebuild styles in other packages.
var styleRebuilders []func()

// RegisterStyleRebuilder adds a callback run after ApplyTheme updates colors.
func RegisterStyleRebuilder(fn func()) {
	styleRebuilders = append(styleRebuilders, fn)
}

// ThemeConfig mirrors config.ThemeConfig to avoid circular imports.
type ThemeConfig struct {
	Preset string
	Mode   string
	Colors map[string]string
}

// ApplyTheme starts from the default preset, layers the named preset and the
// individual overrides on top, then rebuilds every Style.
func ApplyTheme(cfg ThemeConfig) error {
	colors := maps.Clone(DefaultPreset.Colors)

	if cfg.Preset != "" && cfg.Preset != "default" {
		preset, ok := Presets[cfg.Preset]
		if !ok {
			return fmt.Errorf("unknown theme preset: %s", cfg.Preset)
		}
		maps.Copy(colors, preset.Colors)
	}

	for key, value := range cfg.Colors {
		token := ColorToken(key)
		if !isValidToken(token) {
			return fmt.Errorf("unknown color token: %s", key)
		}
		if !isValidHexColor(value) {
			return fmt.Errorf("invalid hex color for %s: %s", key, value)
		}
		colors[token] = value
	}

	applyColors(colors)
	rebuildStyles()
	return nil
}

func applyColors(colors map[ColorToken]string) {
	targets := map[ColorToken][]*lipgloss.AdaptiveColor{
		TokenTextPrimary:         {&TextPrimaryColor},
		TokenTextSecondary:       {&TextSecondaryColor},
		TokenTextMuted:           {&TextMutedColor},
		TokenBorderDefault:       {&BorderDefaultColor},
		TokenBorderHighlight:     {&BorderHighlightFocusColor},
		TokenStatusSuccess:       {&StatusSuccessColor},
		TokenStatusWarning:       {&StatusWarningColor},
		TokenStatusError:         {&StatusErrorColor},
		TokenSelectionIndicator:  {&SelectionIndicatorColor},
		TokenSelectionBackground: {&SelectionBackgroundColor},
		TokenCellHeader:          {&CellHeaderColor},
		TokenCellProtected:       {&CellProtectedColor},
		TokenCellEditing:         {&CellEditingColor},
		TokenCellRange:           {&CellRangeColor},
		TokenOverlayTitle:        {&OverlayTitleColor},
		TokenOverlayBorder:       {&OverlayBorderColor},
		TokenToastSuccess:        {&ToastBorderSuccessColor},
		TokenToastError:          {&ToastBorderErrorColor},
		TokenToastInfo:           {&ToastBorderInfoColor},
		TokenToastWarn:           {&ToastBorderWarnColor},
	}
	for token, hex := range colors {
		for _, dst := range targets[token] {
			// Same color for both modes once a theme is applied.
			*dst = lipgloss.AdaptiveColor{Light: hex, Dark: hex}
		}
	}
}

// rebuildStyles recreates Style values, which capture colors at creation.
func rebuildStyles() {
	CellStyle = lipgloss.NewStyle().Foreground(TextPrimaryColor)
	CellSelectedStyle = lipgloss.NewStyle().Foreground(SelectionIndicatorColor).Background(SelectionBackgroundColor).Bold(true)
	CellRangeStyle = lipgloss.NewStyle().Foreground(TextPrimaryColor).Background(CellRangeColor)
	CellProtectedStyle = lipgloss.NewStyle().Foreground(CellProtectedColor).Italic(true)
	CellEditingStyle = lipgloss.NewStyle().Foreground(CellEditingColor).Underline(true)
	AxisStyle = lipgloss.NewStyle().Foreground(TextMutedColor)
	AxisActiveStyle = lipgloss.NewStyle().Foreground(CellHeaderColor).Bold(true)

	StatusBarStyle = lipgloss.NewStyle().
		Foreground(TextSecondaryColor).
		Padding(0, 1)

	ErrorStyle = lipgloss.NewStyle().
		Foreground(StatusErrorColor).
		Bold(true).
		Padding(1, 2)

	for _, fn := range styleRebuilders {
		fn()
	}
}

func isValidToken(token ColorToken) bool {
	return slices.Contains(AllTokens(), token)
}

func isValidHexColor(s string) bool {
	hex, ok := strings.CutPrefix(s, "#")
	if !ok || (len(hex) != 3 && len(hex) != 6) {
		return false
	}
	_, err := strconv.ParseUint(hex, 16, 64)
	return err == nil
}
