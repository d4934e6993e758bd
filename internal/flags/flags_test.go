package flags

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRegistry_Enabled(t *testing.T) {
	tests := []struct {
		name     string
		registry *Registry
		flag     string
		expected bool
	}{
		{
			name:     "known flag set to true returns true",
			registry: New(map[string]bool{FlagUndoParity: true}),
			flag:     FlagUndoParity,
			expected: true,
		},
		{
			name:     "known flag set to false returns false",
			registry: New(map[string]bool{FlagDerivedProtection: false}),
			flag:     FlagDerivedProtection,
			expected: false,
		},
		{
			name:     "unknown flag returns false",
			registry: New(map[string]bool{FlagUndoParity: true}),
			flag:     "unknown-flag",
			expected: false,
		},
		{
			name:     "nil registry returns false",
			registry: nil,
			flag:     FlagUndoParity,
			expected: false,
		},
		{
			name:     "nil flags map returns false",
			registry: New(nil),
			flag:     FlagDerivedProtection,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, tt.registry.Enabled(tt.flag))
		})
	}
}

func TestRegistry_All(t *testing.T) {
	require.Equal(t, map[string]bool{}, (*Registry)(nil).All())
	require.Equal(t, map[string]bool{}, New(nil).All())
	require.Equal(t,
		map[string]bool{FlagUndoParity: true, FlagDerivedProtection: false},
		New(map[string]bool{FlagUndoParity: true, FlagDerivedProtection: false}).All())
}

func TestRegistry_IsolatedFromCallerMaps(t *testing.T) {
	original := map[string]bool{FlagUndoParity: true}
	r := New(original)

	original[FlagUndoParity] = false
	require.True(t, r.Enabled(FlagUndoParity), "registry should not see later writes to the source map")

	all := r.All()
	all["new-flag"] = true
	require.False(t, r.Enabled("new-flag"), "registry should not see writes to a copy")
}
