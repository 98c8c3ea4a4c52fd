package theme

import (
	"reflect"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
)

func TestByNameFallsBack(t *testing.T) {
	assert.Equal(t, "tokyo-night", ByName("tokyo-night").Name)
	assert.Equal(t, FlexokiDark.Name, ByName("nope").Name)
}

func TestForProfile(t *testing.T) {
	assert.Equal(t, "catppuccin-mocha", ForProfile("catppuccin-mocha", termenv.TrueColor).Name)
	assert.Equal(t, "catppuccin-mocha", ForProfile("catppuccin-mocha", termenv.ANSI256).Name)
	assert.Equal(t, Terminal.Name, ForProfile("catppuccin-mocha", termenv.ANSI).Name)
	assert.Equal(t, Terminal.Name, ForProfile("flexoki-dark", termenv.Ascii).Name)
}

func TestNamesAndValid(t *testing.T) {
	names := Names()
	assert.Len(t, names, len(All))
	for _, n := range names {
		assert.True(t, Valid(n))
	}
	assert.False(t, Valid("solarized"))
}

func TestSetActiveHonoursProfile(t *testing.T) {
	prev := Active
	t.Cleanup(func() { Active = prev })

	SetActive("tokyo-night", termenv.TrueColor)
	assert.Equal(t, "tokyo-night", Active.Name)

	SetActive("tokyo-night", termenv.ANSI)
	assert.Equal(t, Terminal.Name, Active.Name)
}

func TestThemesFillEveryRole(t *testing.T) {
	for _, th := range All {
		v := reflect.ValueOf(th)
		for i := 0; i < v.NumField(); i++ {
			f := v.Type().Field(i)
			if f.Type.Kind() == reflect.Array {
				for j := 0; j < v.Field(i).Len(); j++ {
					assert.NotEmptyf(t, v.Field(i).Index(j).String(), "%s.%s[%d]", th.Name, f.Name, j)
				}
				continue
			}
			assert.NotEmptyf(t, v.Field(i).String(), "%s.%s", th.Name, f.Name)
		}
	}
}
