package core

// Color is a foreground color for a screen cell, backed by an ANSI
// 256-color code.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightYellow
	ColorBrightCyan
	ColorOrange
	ColorPink
	ColorGray
	ColorDarkGray
)

var ansiCodes = [...]string{
	ColorDefault:      "",
	ColorRed:          "1",
	ColorGreen:        "2",
	ColorYellow:       "3",
	ColorBlue:         "4",
	ColorMagenta:      "5",
	ColorCyan:         "6",
	ColorWhite:        "7",
	ColorBrightRed:    "9",
	ColorBrightYellow: "11",
	ColorBrightCyan:   "14",
	ColorOrange:       "208",
	ColorPink:         "205",
	ColorGray:         "245",
	ColorDarkGray:     "238",
}

// ANSI returns the 256-color code for c, or "" for the terminal default.
func (c Color) ANSI() string {
	if int(c) >= len(ansiCodes) {
		return ""
	}
	return ansiCodes[c]
}

// BalloonPalette is cycled by entity handle so neighbouring balloons differ.
var BalloonPalette = []Color{
	ColorRed,
	ColorYellow,
	ColorBlue,
	ColorGreen,
	ColorMagenta,
	ColorOrange,
	ColorPink,
	ColorCyan,
}
