package styles

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPresets_DefineEveryToken(t *testing.T) {
	for name, preset := range Presets {
		t.Run(name, func(t *testing.T) {
			for _, token := range AllTokens() {
				hex, ok := preset.Colors[token]
				require.True(t, ok, "preset %q missing %s", name, token)
				require.True(t, isValidHexColor(hex), "preset %q has bad %s: %s", name, token, hex)
			}
		})
	}
}

func TestPresets_ApplyCleanly(t *testing.T) {
	for name := range Presets {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, ApplyTheme(ThemeConfig{Preset: name}))
			require.Equal(t, Presets[name].Colors[TokenCellProtected], CellProtectedColor.Dark)
		})
	}
	require.NoError(t, ApplyTheme(ThemeConfig{}))
}

func TestPresetNames(t *testing.T) {
	names := PresetNames()
	require.Len(t, names, len(Presets))
	require.Equal(t, "default", names[0])
	require.Equal(t, []string{"catppuccin-latte", "catppuccin-mocha", "dracula", "high-contrast", "nord"}, names[1:])
}

func TestNextPreset(t *testing.T) {
	require.Equal(t, "catppuccin-latte", NextPreset("default"))
	require.Equal(t, "catppuccin-latte", NextPreset(""))
	require.Equal(t, "catppuccin-latte", NextPreset("no-such-theme"))
	require.Equal(t, "default", NextPreset("nord"), "wraps around")
}
