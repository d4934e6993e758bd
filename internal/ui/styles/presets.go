package styles

import "slices"

// Preset represents a complete color theme.
type Preset struct {
	Name        string
	Description string
	Colors      map[ColorToken]string
}

// Presets contains all built-in theme presets.
var Presets = map[string]Preset{
	"default":          DefaultPreset,
	"catppuccin-mocha": CatppuccinMochaPreset,
	"catppuccin-latte": CatppuccinLattePreset,
	"dracula":          DraculaPreset,
	"nord":             NordPreset,
	"high-contrast":    HighContrastPreset,
}

// PresetNames lists the built-in presets with "default" first and the rest
// sorted.
func PresetNames() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		if name != "default" {
			names = append(names, name)
		}
	}
	slices.Sort(names)
	return append([]string{"default"}, names...)
}

// NextPreset returns the preset after current in PresetNames order,
// wrapping around. Unknown or empty names start from "default".
func NextPreset(current string) string {
	names := PresetNames()
	i := slices.Index(names, current)
	if i < 0 {
		i = 0
	}
	return names[(i+1)%len(names)]
}

// DefaultPreset matches the Dark values in styles.go.
var DefaultPreset = Preset{
	Name:        "default",
	Description: "Default cellar theme",
	Colors: map[ColorToken]string{
		TokenTextPrimary:   "#CCCCCC",
		TokenTextSecondary: "#BBBBBB",
		TokenTextMuted:     "#696969",

		TokenBorderDefault:   "#696969",
		TokenBorderHighlight: "#54A0FF",

		TokenStatusSuccess: "#73F59F",
		TokenStatusWarning: "#FECA57",
		TokenStatusError:   "#FF8787",

		TokenSelectionIndicator:  "#FFFFFF",
		TokenSelectionBackground: "#1A5276",

		TokenCellHeader:    "#89B4FA",
		TokenCellProtected: "#CBA6F7",
		TokenCellEditing:   "#F9E2AF",
		TokenCellRange:     "#2D3436",

		TokenOverlayTitle:  "#C9C9C9",
		TokenOverlayBorder: "#8C8C8C",

		TokenToastSuccess: "#73F59F",
		TokenToastError:   "#FF8787",
		TokenToastInfo:    "#54A0FF",
		TokenToastWarn:    "#FECA57",
	},
}

// CatppuccinMochaPreset is the Catppuccin Mocha (dark) theme.
// Colors from: https://catppuccin.com/palette
var CatppuccinMochaPreset = Preset{
	Name:        "catppuccin-mocha",
	Description: "Catppuccin Mocha - warm, cozy dark theme",
	Colors: map[ColorToken]string{
		TokenTextPrimary:   "#CDD6F4", // text
		TokenTextSecondary: "#BAC2DE", // subtext1
		TokenTextMuted:     "#6C7086", // overlay0

		TokenBorderDefault:   "#6C7086", // overlay0
		TokenBorderHighlight: "#89B4FA", // blue

		TokenStatusSuccess: "#A6E3A1", // green
		TokenStatusWarning: "#F9E2AF", // yellow
		TokenStatusError:   "#F38BA8", // red

		TokenSelectionIndicator:  "#CDD6F4", // text
		TokenSelectionBackground: "#45475A", // surface1

		TokenCellHeader:    "#89B4FA", // blue
		TokenCellProtected: "#CBA6F7", // mauve
		TokenCellEditing:   "#FAB387", // peach
		TokenCellRange:     "#313244", // surface0

		TokenOverlayTitle:  "#CDD6F4", // text
		TokenOverlayBorder: "#6C7086", // overlay0

		TokenToastSuccess: "#A6E3A1", // green
		TokenToastError:   "#F38BA8", // red
		TokenToastInfo:    "#89B4FA", // blue
		TokenToastWarn:    "#F9E2AF", // yellow
	},
}

// CatppuccinLattePreset is the Catppuccin Latte (light) theme.
var CatppuccinLattePreset = Preset{
	Name:        "catppuccin-latte",
	Description: "Catppuccin Latte - warm, cozy light theme",
	Colors: map[ColorToken]string{
		TokenTextPrimary:   "#4C4F69", // text
		TokenTextSecondary: "#5C5F77", // subtext1
		TokenTextMuted:     "#9CA0B0", // overlay0

		TokenBorderDefault:   "#9CA0B0", // overlay0
		TokenBorderHighlight: "#1E66F5", // blue

		TokenStatusSuccess: "#40A02B", // green
		TokenStatusWarning: "#DF8E1D", // yellow
		TokenStatusError:   "#D20F39", // red

		TokenSelectionIndicator:  "#4C4F69", // text
		TokenSelectionBackground: "#BCC0CC", // surface1

		TokenCellHeader:    "#1E66F5", // blue
		TokenCellProtected: "#8839EF", // mauve
		TokenCellEditing:   "#FE640B", // peach
		TokenCellRange:     "#CCD0DA", // surface0

		TokenOverlayTitle:  "#4C4F69", // text
		TokenOverlayBorder: "#9CA0B0", // overlay0

		TokenToastSuccess: "#40A02B",
		TokenToastError:   "#D20F39",
		TokenToastInfo:    "#1E66F5",
		TokenToastWarn:    "#DF8E1D",
	},
}

// DraculaPreset is the Dracula theme.
var DraculaPreset = Preset{
	Name:        "dracula",
	Description: "Dracula - dark theme with vibrant colors",
	Colors: map[ColorToken]string{
		TokenTextPrimary:   "#F8F8F2", // foreground
		TokenTextSecondary: "#F8F8F2", // foreground
		TokenTextMuted:     "#6272A4", // comment

		TokenBorderDefault:   "#6272A4", // comment
		TokenBorderHighlight: "#BD93F9", // purple

		TokenStatusSuccess: "#50FA7B", // green
		TokenStatusWarning: "#F1FA8C", // yellow
		TokenStatusError:   "#FF5555", // red

		TokenSelectionIndicator:  "#F8F8F2", // foreground
		TokenSelectionBackground: "#44475A", // current line

		TokenCellHeader:    "#8BE9FD", // cyan
		TokenCellProtected: "#FF79C6", // pink
		TokenCellEditing:   "#FFB86C", // orange
		TokenCellRange:     "#343746",

		TokenOverlayTitle:  "#F8F8F2",
		TokenOverlayBorder: "#6272A4",

		TokenToastSuccess: "#50FA7B",
		TokenToastError:   "#FF5555",
		TokenToastInfo:    "#8BE9FD",
		TokenToastWarn:    "#F1FA8C",
	},
}

// NordPreset is the Nord theme.
var NordPreset = Preset{
	Name:        "nord",
	Description: "Nord - arctic, north-bluish palette",
	Colors: map[ColorToken]string{
		TokenTextPrimary:   "#ECEFF4", // snow storm 3
		TokenTextSecondary: "#E5E9F0", // snow storm 2
		TokenTextMuted:     "#4C566A", // polar night 4

		TokenBorderDefault:   "#4C566A",
		TokenBorderHighlight: "#88C0D0", // frost 2

		TokenStatusSuccess: "#A3BE8C", // aurora green
		TokenStatusWarning: "#EBCB8B", // aurora yellow
		TokenStatusError:   "#BF616A", // aurora red

		TokenSelectionIndicator:  "#ECEFF4",
		TokenSelectionBackground: "#434C5E", // polar night 3

		TokenCellHeader:    "#81A1C1", // frost 3
		TokenCellProtected: "#B48EAD", // aurora purple
		TokenCellEditing:   "#D08770", // aurora orange
		TokenCellRange:     "#3B4252", // polar night 2

		TokenOverlayTitle:  "#ECEFF4",
		TokenOverlayBorder: "#4C566A",

		TokenToastSuccess: "#A3BE8C",
		TokenToastError:   "#BF616A",
		TokenToastInfo:    "#81A1C1",
		TokenToastWarn:    "#EBCB8B",
	},
}

// HighContrastPreset uses pure colors only.
var HighContrastPreset = Preset{
	Name:        "high-contrast",
	Description: "High contrast for accessibility",
	Colors: map[ColorToken]string{
		TokenTextPrimary:   "#FFFFFF",
		TokenTextSecondary: "#FFFFFF",
		TokenTextMuted:     "#FFFFFF",

		TokenBorderDefault:   "#FFFFFF",
		TokenBorderHighlight: "#00FFFF",

		TokenStatusSuccess: "#00FF00",
		TokenStatusWarning: "#FFFF00",
		TokenStatusError:   "#FF0000",

		TokenSelectionIndicator:  "#FFFF00",
		TokenSelectionBackground: "#0000FF",

		TokenCellHeader:    "#00FFFF",
		TokenCellProtected: "#FF00FF",
		TokenCellEditing:   "#FFFF00",
		TokenCellRange:     "#000080",

		TokenOverlayTitle:  "#FFFFFF",
		TokenOverlayBorder: "#FFFFFF",

		TokenToastSuccess: "#00FF00",
		TokenToastError:   "#FF0000",
		TokenToastInfo:    "#00FFFF",
		TokenToastWarn:    "#FFFF00",
	},
}
