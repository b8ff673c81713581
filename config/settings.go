package config

// Resolution represents a display resolution option
type Resolution struct {
	Width  int
	Height int
	Label  string
}

// DisplayConfig lists the window sizes the sandbox can restore
type DisplayConfig struct {
	Resolutions            []Resolution
	DefaultResolutionIndex int
}

var Display DisplayConfig

func init() {
	Display = DisplayConfig{
		Resolutions: []Resolution{
			{Width: 800, Height: 480, Label: "800 x 480"},
			{Width: 1280, Height: 720, Label: "1280 x 720"},
			{Width: 1600, Height: 900, Label: "1600 x 900"},
			{Width: 1920, Height: 1080, Label: "1920 x 1080"},
		},
		DefaultResolutionIndex: 0,
	}
}
