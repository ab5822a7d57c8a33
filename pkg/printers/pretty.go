package printers

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/dlync/murmur/pkg/render"
	"github.com/dlync/murmur/pkg/thought"
	"github.com/dlync/murmur/pkg/timeutil"
)

// PrettyPrint renders journal data for the terminal.
type PrettyPrint struct {
	ShowID   bool
	Renderer render.Renderer
	Location *time.Location
}

var (
	spacing = strings.Repeat(" ", len("1724841000000  "))
)

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)

	if pp.ShowID {
		_, _ = t.Print(spacing)
	}
	_, _ = t.Println(title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	if pp.ShowID {
		_, _ = t.Print(spacing)
	}
	_, _ = t.Print(title)
	_, _ = c.Printf(" - %d", count)

	switch count {
	case 1:
		_, _ = c.Println(" thought")
	default:
		_, _ = c.Println(" thoughts")
	}
}

// Thoughts prints entries with their bodies resolved through the renderer.
func (pp *PrettyPrint) Thoughts(thoughts ...*thought.Thought) {
	if len(thoughts) == 0 {
		f := color.New(color.Faint, color.Italic)
		if pp.ShowID {
			_, _ = f.Print(spacing)
		}
		_, _ = f.Print(" none\n\n")
		return
	}

	y := color.New(color.FgHiYellow, color.Italic, color.Faint)
	meta := color.New(color.Faint)

	for _, t := range thoughts {
		if pp.ShowID {
			_, _ = y.Print(t.ID)
			// A hand-edited store can hold IDs wider than the column.
			pad := len(spacing) - len(t.ID)
			if pad < 1 {
				pad = 1
			}
			_, _ = y.Print(strings.Repeat(" ", pad))
		}
		day := timeutil.DayKey(t.Timestamp.Time, pp.Location)
		if t.Tag != "" {
			_, _ = meta.Printf("%s #%s\n", day, t.Tag)
		} else {
			_, _ = meta.Printf("%s\n", day)
		}
		pp.Segs(pp.Renderer.Render(t.Body))
		fmt.Println("")
	}
	fmt.Println("")
}

// Segs prints styled runs, mapping any hex color to the nearest ANSI
// foreground.
func (pp *PrettyPrint) Segs(segs []render.Seg) {
	for _, s := range segs {
		attrs := make([]color.Attribute, 0, 3)
		if s.Bold {
			attrs = append(attrs, color.Bold)
		}
		if s.Italic {
			attrs = append(attrs, color.Italic)
		}
		if s.Color != "" {
			if attr, ok := nearestANSI(s.Color); ok {
				attrs = append(attrs, attr)
			}
		}
		if len(attrs) == 0 {
			_, _ = fmt.Fprint(color.Output, s.Text)
			continue
		}
		_, _ = color.New(attrs...).Fprint(color.Output, s.Text)
	}
	fmt.Println("")
}

// ansiPalette approximates the terminal's basic foreground colors.
var ansiPalette = []struct {
	attr color.Attribute
	hex  string
}{
	{color.FgBlack, "#000000"},
	{color.FgRed, "#CC4444"},
	{color.FgGreen, "#44AA44"},
	{color.FgYellow, "#C4A000"},
	{color.FgBlue, "#4466CC"},
	{color.FgMagenta, "#AA44AA"},
	{color.FgCyan, "#44AAAA"},
	{color.FgWhite, "#D0D0D0"},
}

// nearestANSI maps a literal color value onto the closest basic terminal
// color. Values go-colorful cannot parse (named CSS colors, malformed hex)
// are skipped rather than guessed.
func nearestANSI(value string) (color.Attribute, bool) {
	c, err := colorful.Hex(strings.TrimSpace(value))
	if err != nil {
		return 0, false
	}
	best := ansiPalette[0].attr
	bestDist := -1.0
	for _, candidate := range ansiPalette {
		ref, err := colorful.Hex(candidate.hex)
		if err != nil {
			continue
		}
		d := c.DistanceLab(ref)
		if bestDist < 0 || d < bestDist {
			best = candidate.attr
			bestDist = d
		}
	}
	return best, bestDist >= 0
}
