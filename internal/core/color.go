package core

// Color is a foreground color for a screen cell. The zero value leaves the
// terminal's default color in place.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightWhite
	ColorOrange
	ColorGray

	numColors
)

// ansi256 holds the 256-color palette index of each color.
var ansi256 = [numColors]string{
	ColorRed:          "1",
	ColorGreen:        "2",
	ColorYellow:       "3",
	ColorMagenta:      "5",
	ColorCyan:         "6",
	ColorWhite:        "7",
	ColorBrightRed:    "9",
	ColorBrightGreen:  "10",
	ColorBrightYellow: "11",
	ColorBrightBlue:   "12",
	ColorBrightWhite:  "15",
	ColorOrange:       "208",
	ColorGray:         "245",
}

// ANSI returns the 256-color code of c, or "" for the default and unknown colors.
func (c Color) ANSI() string {
	if c >= numColors {
		return ""
	}
	return ansi256[c]
}

// Colors lists every defined color, default first.
func Colors() []Color {
	out := make([]Color, 0, numColors)
	for c := ColorDefault; c < numColors; c++ {
		out = append(out, c)
	}
	return out
}
