package render

import (
	"image/color"
	"strconv"

	"github.com/aclements/go-gg/palette"

	"github.com/anrid/us-population/pkg/selection"
)

// Color stops sampled from each named scheme, low to high.
var themeStops = map[selection.Theme][]string{
	"blues":   {"#f7fbff", "#c6dbef", "#6baed6", "#2171b5", "#08306b"},
	"cividis": {"#00224e", "#414d6b", "#7c7b78", "#bcaf6f", "#fee838"},
	"greens":  {"#f7fcf5", "#c7e9c0", "#74c476", "#238b45", "#00441b"},
	"inferno": {"#000004", "#57106e", "#bc3754", "#f98e09", "#fcffa4"},
	"magma":   {"#000004", "#51127c", "#b73779", "#fc8961", "#fcfdbf"},
	"plasma":  {"#0d0887", "#7e03a8", "#cc4778", "#f89540", "#f0f921"},
	"reds":    {"#fff5f0", "#fcbba1", "#fb6a4a", "#cb181d", "#67000d"},
	"rainbow": {"#6e40aa", "#ee4395", "#ff8c38", "#aff05b", "#1ac7c2"},
	"turbo":   {"#30123b", "#28bceb", "#a4fc3c", "#fb7e21", "#7a0403"},
	"viridis": {"#440154", "#3b528b", "#21918c", "#5ec962", "#fde725"},
}

// Gradient returns the continuous palette for theme, falling back to blues.
func Gradient(theme selection.Theme) palette.RGBGradient {
	stops, ok := themeStops[theme]
	if !ok {
		stops = themeStops["blues"]
	}
	g := palette.RGBGradient{Colors: make([]color.RGBA, len(stops))}
	for i, s := range stops {
		g.Colors[i] = parseHex(s)
	}
	return g
}

// Scale maps v within [lo, hi] onto the theme gradient.
func Scale(g palette.RGBGradient, v, lo, hi int) color.Color {
	if hi <= lo {
		return g.Map(0.5)
	}
	return g.Map(float64(v-lo) / float64(hi-lo))
}

func parseHex(s string) color.RGBA {
	n, _ := strconv.ParseUint(s[1:], 16, 32)
	return color.RGBA{R: uint8(n >> 16), G: uint8(n >> 8), B: uint8(n), A: 0xff}
}
