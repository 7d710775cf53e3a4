package console

import (
	"strings"

	"github.com/fatih/color"

	"github.com/John-DND/RegularCommands/pkg/stylize"
)

var colorAttrs = map[stylize.Color]color.Attribute{
	stylize.Black:       color.FgBlack,
	stylize.DarkBlue:    color.FgBlue,
	stylize.DarkGreen:   color.FgGreen,
	stylize.DarkAqua:    color.FgCyan,
	stylize.DarkRed:     color.FgRed,
	stylize.DarkPurple:  color.FgMagenta,
	stylize.Gold:        color.FgYellow,
	stylize.Gray:        color.FgWhite,
	stylize.DarkGray:    color.FgHiBlack,
	stylize.Blue:        color.FgHiBlue,
	stylize.Green:       color.FgHiGreen,
	stylize.Aqua:        color.FgHiCyan,
	stylize.Red:         color.FgHiRed,
	stylize.LightPurple: color.FgHiMagenta,
	stylize.Yellow:      color.FgHiYellow,
	stylize.White:       color.FgHiWhite,
}

// Render flattens styled segments into one ANSI-colored string.
func Render(segments []stylize.Segment) string {
	var b strings.Builder
	for _, seg := range segments {
		var attrs []color.Attribute
		if a, ok := colorAttrs[seg.Color]; ok {
			attrs = append(attrs, a)
		}
		if seg.Bold {
			attrs = append(attrs, color.Bold)
		}
		if seg.Italic {
			attrs = append(attrs, color.Italic)
		}
		if seg.Underline {
			attrs = append(attrs, color.Underline)
		}
		if seg.Strikethrough {
			attrs = append(attrs, color.CrossedOut)
		}
		if seg.Obfuscated {
			attrs = append(attrs, color.BlinkSlow)
		}
		if len(attrs) == 0 {
			b.WriteString(seg.Text)
			continue
		}
		b.WriteString(color.New(attrs...).Sprint(seg.Text))
	}
	return b.String()
}
