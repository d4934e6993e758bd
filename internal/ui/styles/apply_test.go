package styles

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestApplyTheme_Default(t *testing.T) {
	require.NoError(t, ApplyTheme(ThemeConfig{}))
	require.Equal(t, DefaultPreset.Colors[TokenTextPrimary], TextPrimaryColor.Dark)
}

func TestApplyTheme_Preset(t *testing.T) {
	Presets["test"] = Preset{
		Name:   "test",
		Colors: map[ColorToken]string{TokenCellProtected: "#FF0000"},
	}
	defer delete(Presets, "test")

	require.NoError(t, ApplyTheme(ThemeConfig{Preset: "test"}))
	require.Equal(t, "#FF0000", CellProtectedColor.Dark)
	require.Equal(t, DefaultPreset.Colors[TokenCellHeader], CellHeaderColor.Dark)
}

func TestApplyTheme_OverrideBeatsPreset(t *testing.T) {
	Presets["test2"] = Preset{
		Name: "test2",
		Colors: map[ColorToken]string{
			TokenSelectionBackground: "#111111",
			TokenTextSecondary:       "#0000FF",
		},
	}
	defer delete(Presets, "test2")

	err := ApplyTheme(ThemeConfig{
		Preset: "test2",
		Colors: map[string]string{"selection.background": "#222222"},
	})
	require.NoError(t, err)
	require.Equal(t, "#222222", SelectionBackgroundColor.Dark)
	require.Equal(t, "#0000FF", TextSecondaryColor.Dark)
}

func TestApplyTheme_Errors(t *testing.T) {
	tests := []struct {
		name string
		cfg  ThemeConfig
		want string
	}{
		{"unknown preset", ThemeConfig{Preset: "nonexistent"}, "unknown theme preset"},
		{"unknown token", ThemeConfig{Colors: map[string]string{"invalid.token": "#FF0000"}}, "unknown color token"},
		{"bad hex", ThemeConfig{Colors: map[string]string{"cell.editing": "orange"}}, "invalid hex color"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ApplyTheme(tt.cfg)
			require.Error(t, err)
			require.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestApplyTheme_RunsRebuilders(t *testing.T) {
	calls := 0
	RegisterStyleRebuilder(func() { calls++ })
	defer func() { styleRebuilders = styleRebuilders[:len(styleRebuilders)-1] }()

	require.NoError(t, ApplyTheme(ThemeConfig{Preset: "nord"}))
	require.Equal(t, 1, calls)
}

func TestIsValidHexColor(t *testing.T) {
	tests := []struct {
		color string
		valid bool
	}{
		{"#FFF", true},
		{"#FFFFFF", true},
		{"#AbCdEf", true},
		{"FFFFFF", false},
		{"#FF", false},
		{"#FFFFFFF", false},
		{"#GGGGGG", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.color, func(t *testing.T) {
			require.Equal(t, tt.valid, isValidHexColor(tt.color))
		})
	}
}
