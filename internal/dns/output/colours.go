package output

import (
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/haukened/dog/internal/dns/domain"
)

// Colours is the palette the table renderer paints with. A zero palette
// renders plain text.
type Colours struct {
	QName   *color.Color
	A       *color.Color
	AAAA    *color.Color
	CAA     *color.Color
	CNAME   *color.Color
	MX      *color.Color
	NS      *color.Color
	PTR     *color.Color
	SOA     *color.Color
	SRV     *color.Color
	TXT     *color.Color
	Default *color.Color
}

// prettyColours returns the standard palette. When force is set, each
// style overrides the library's terminal auto-detection.
func prettyColours(force bool) Colours {
	style := func(attrs ...color.Attribute) *color.Color {
		c := color.New(attrs...)
		if force {
			c.EnableColor()
		}
		return c
	}
	return Colours{
		QName:   style(color.FgBlue, color.Bold),
		A:       style(color.FgGreen, color.Bold),
		AAAA:    style(color.FgGreen, color.Bold),
		CAA:     style(color.FgRed),
		CNAME:   style(color.FgYellow),
		MX:      style(color.FgCyan),
		NS:      style(color.FgRed),
		PTR:     style(color.FgRed),
		SOA:     style(color.FgMagenta),
		SRV:     style(color.FgCyan),
		TXT:     style(color.FgYellow),
		Default: style(color.FgWhite, color.BgRed),
	}
}

// plainColours returns a palette with every style disabled.
func plainColours() Colours {
	disabled := color.New()
	disabled.DisableColor()
	return Colours{
		QName: disabled, A: disabled, AAAA: disabled, CAA: disabled,
		CNAME: disabled, MX: disabled, NS: disabled, PTR: disabled,
		SOA: disabled, SRV: disabled, TXT: disabled, Default: disabled,
	}
}

// paletteFor honours the colour mode, the NO_COLOR convention, and
// whether output goes to a terminal.
func paletteFor(mode domain.ColourMode, out io.Writer) Colours {
	if shouldColour(mode, out) {
		return prettyColours(mode == domain.ColourAlways)
	}
	return plainColours()
}

func shouldColour(mode domain.ColourMode, out io.Writer) bool {
	switch mode {
	case domain.ColourAlways:
		return true
	case domain.ColourNever:
		return false
	default:
		if _, set := os.LookupEnv("NO_COLOR"); set {
			return false
		}
		f, ok := out.(*os.File)
		return ok && isatty.IsTerminal(f.Fd())
	}
}

// styleForType picks the per-type style from the palette.
func (c Colours) styleForType(t domain.RRType) *color.Color {
	switch t {
	case domain.RRTypeA:
		return c.A
	case domain.RRTypeAAAA:
		return c.AAAA
	case domain.RRTypeCAA:
		return c.CAA
	case domain.RRTypeCNAME:
		return c.CNAME
	case domain.RRTypeMX:
		return c.MX
	case domain.RRTypeNS:
		return c.NS
	case domain.RRTypePTR:
		return c.PTR
	case domain.RRTypeSOA:
		return c.SOA
	case domain.RRTypeSRV:
		return c.SRV
	case domain.RRTypeTXT:
		return c.TXT
	default:
		return c.Default
	}
}
