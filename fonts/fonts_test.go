package fonts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/goregular"
)

func TestLoadAllLoadsFacesInOrder(t *testing.T) {
	require.NoError(t, LoadAll(goregular.TTF))

	var names []FontName
	for _, f := range Faces {
		names = append(names, f.Name)
		assert.NotNil(t, f.Name.Get())
	}
	assert.Equal(t, []FontName{HUD, HUDSmall, Title}, names)
	assert.Greater(t, int(Title.Get().Metrics().Height), int(HUDSmall.Get().Metrics().Height))
}

func TestLoadAllReportsFirstFace(t *testing.T) {
	err := LoadAll([]byte("not a font"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "font hud:")
}

func TestGetPanicsOnUnknownFont(t *testing.T) {
	assert.Panics(t, func() { FontName("missing").Get() })
}
