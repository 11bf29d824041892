package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestByNameFindsEveryTheme(t *testing.T) {
	for _, th := range Themes {
		assert.Equal(t, th.Name, ByName(th.Name).Name)
	}
}

func TestByNameFallsBackToDefault(t *testing.T) {
	assert.Equal(t, DefaultThemeName, ByName("NoSuchTheme").Name)
	assert.Equal(t, DefaultThemeName, ByName("").Name)
}

func TestThemeNamesAreUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, th := range Themes {
		assert.False(t, seen[th.Name], "duplicate theme %s", th.Name)
		seen[th.Name] = true
	}
}

func TestDefaultThemeExists(t *testing.T) {
	assert.Contains(t, Names(), DefaultThemeName)
}
