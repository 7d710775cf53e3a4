// Package stylize turns strings containing a small inline markup language
// into styled text segments. A format group is written >name1|name2{content};
// each name refers to a formatter registered with a Registry, and the
// formatters are applied to the group's content in declaration order. A
// backslash escapes the next character. Groups do not nest.
package stylize

// Color is a named chat color. ColorNone leaves the segment at the host's
// default color.
type Color int

const (
	ColorNone Color = iota
	Black
	DarkBlue
	DarkGreen
	DarkAqua
	DarkRed
	DarkPurple
	Gold
	Gray
	DarkGray
	Blue
	Green
	Aqua
	Red
	LightPurple
	Yellow
	White
)

var colorNames = map[Color]string{
	ColorNone:   "none",
	Black:       "black",
	DarkBlue:    "dark_blue",
	DarkGreen:   "dark_green",
	DarkAqua:    "dark_aqua",
	DarkRed:     "dark_red",
	DarkPurple:  "dark_purple",
	Gold:        "gold",
	Gray:        "gray",
	DarkGray:    "dark_gray",
	Blue:        "blue",
	Green:       "green",
	Aqua:        "aqua",
	Red:         "red",
	LightPurple: "light_purple",
	Yellow:      "yellow",
	White:       "white",
}

func (c Color) String() string {
	if name, ok := colorNames[c]; ok {
		return name
	}
	return "unknown"
}

// Segment is one run of text plus the visual attributes applied to it.
// A segment produced outside any format group carries no attributes.
type Segment struct {
	Text          string
	Color         Color
	Bold          bool
	Italic        bool
	Underline     bool
	Strikethrough bool
	Obfuscated    bool
}

// Formatter mutates a segment's attributes. When several formatters touch
// the same attribute, the one applied last wins.
type Formatter func(*Segment)

// WithColor returns a formatter that sets the segment color.
func WithColor(c Color) Formatter {
	return func(s *Segment) { s.Color = c }
}
