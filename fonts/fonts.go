package fonts

import (
	"fmt"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
)

type FontName string

const (
	HUD      FontName = "hud"
	HUDSmall FontName = "hud-small"
	Title    FontName = "title"
)

// Faces lists the sizes the game loads, in load order.
var Faces = []struct {
	Name FontName
	Size float64
}{
	{HUD, 14},
	{HUDSmall, 11},
	{Title, 28},
}

func (f FontName) Get() font.Face {
	return getFont(f)
}

var (
	fonts = map[FontName]font.Face{}
)

func LoadFont(name FontName, ttf []byte) error {
	return LoadFontWithSize(name, ttf, 10)
}

func LoadFontWithSize(name FontName, ttf []byte, size float64) error {
	fontData, err := truetype.Parse(ttf)
	if err != nil {
		return fmt.Errorf("parse font %s: %w", name, err)
	}
	fonts[name] = truetype.NewFace(fontData, &truetype.Options{Size: size})
	return nil
}

// LoadAll loads every entry of Faces from ttf and stops at the first failure.
func LoadAll(ttf []byte) error {
	for _, f := range Faces {
		if err := LoadFontWithSize(f.Name, ttf, f.Size); err != nil {
			return err
		}
	}
	return nil
}

func getFont(name FontName) font.Face {
	f, ok := fonts[name]
	if !ok {
		panic(fmt.Sprintf("Font %s not found", name))
	}
	return f
}
