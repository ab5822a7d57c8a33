// Package render converts a stored thought body into styled text runs.
//
// Two historical body formats exist with no version field: an HTML subset
// produced by the rich text surface, and an older inline markdown subset
// from the plain-text editor. A body containing anything that looks like an
// HTML start tag is parsed as HTML; everything else goes through the legacy
// parser. Malformed markup never fails — the worst case is less styling
// than intended.
package render

import (
	"regexp"
	"strings"
)

// Seg is one styled run of text. It is a render-only projection of a body
// and is never persisted.
type Seg struct {
	Text   string
	Bold   bool
	Italic bool
	// Color is a literal color value (hex or rgb) once resolved.
	Color string
}

// NamedColors is the fixed palette for the color tokens of the legacy
// markdown format.
var NamedColors = map[string]string{
	"warm": "#C4874A",
	"rose": "#C05A5A",
	"cool": "#5E7A8A",
	"sage": "#68A86A",
}

// Renderer resolves bodies into segments. Accent supplies the active theme's
// accent color for the legacy {c:accent} token; it is read at render time,
// never baked into stored content. A nil Accent leaves the token to pass
// through as a literal value.
type Renderer struct {
	Accent func() string
}

var htmlTag = regexp.MustCompile(`(?i)<[a-z][^>]*>`)

// Render parses body into ordered styled runs. It never returns an error;
// unbalanced or unknown markup degrades to plain text.
func (r Renderer) Render(body string) []Seg {
	if htmlTag.MatchString(body) {
		return parseHTML(body)
	}
	return r.parseLegacy(body)
}

// Render parses body with no accent source configured.
func Render(body string) []Seg {
	return Renderer{}.Render(body)
}

func (r Renderer) resolveName(name string) string {
	if name == "accent" && r.Accent != nil {
		return r.Accent()
	}
	if hex, ok := NamedColors[name]; ok {
		return hex
	}
	// Unrecognized names pass through as if they were literal color values.
	return name
}

// --- HTML subset ---

var (
	brTag      = regexp.MustCompile(`(?i)<br\s*/?>`)
	divClose   = regexp.MustCompile(`(?i)</div>`)
	divOpen    = regexp.MustCompile(`(?i)<div[^>]*>`)
	pClose     = regexp.MustCompile(`(?i)</p>`)
	pOpen      = regexp.MustCompile(`(?i)<p[^>]*>`)
	token      = regexp.MustCompile(`(<(/?)(\w+)([^>]*)>)|([^<]+)`)
	spanColor  = regexp.MustCompile(`(?i)color\s*:\s*([^;"']+)`)
	fontColor  = regexp.MustCompile(`(?i)color=["']?([^"'\s>]+)`)
	entities   = strings.NewReplacer("&amp;", "&", "&lt;", "<", "&gt;", ">", "&nbsp;", " ", "&#39;", "'", "&quot;", `"`)
)

type frame struct {
	bold   bool
	italic bool
	color  string
}

// parseHTML is a single left-to-right pass over a tag/text token stream with
// an implicit stack of active style frames. Open tags push a copy of the
// current frame and derive the new one; close tags pop; a pop on an empty
// stack (unbalanced input) leaves the frame as-is. Unclosed tags at end of
// input are abandoned without error.
func parseHTML(body string) []Seg {
	// Block-level tags become line breaks before tokenizing; opening
	// div/p are dropped, not pushed onto the style stack.
	norm := brTag.ReplaceAllString(body, "\n")
	norm = divClose.ReplaceAllString(norm, "\n")
	norm = divOpen.ReplaceAllString(norm, "")
	norm = pClose.ReplaceAllString(norm, "\n")
	norm = pOpen.ReplaceAllString(norm, "")

	segs := make([]Seg, 0, 4)
	var stack []frame
	cur := frame{}

	for _, m := range token.FindAllStringSubmatch(norm, -1) {
		if m[5] != "" {
			text := entities.Replace(m[5])
			if text != "" {
				segs = append(segs, Seg{Text: text, Bold: cur.bold, Italic: cur.italic, Color: cur.color})
			}
			continue
		}

		closing := m[2] == "/"
		tag := strings.ToLower(m[3])
		attrs := m[4]

		if closing {
			if n := len(stack); n > 0 {
				cur = stack[n-1]
				stack = stack[:n-1]
			}
			continue
		}

		stack = append(stack, cur)
		switch tag {
		case "b", "strong":
			cur.bold = true
		case "i", "em":
			cur.italic = true
		case "span":
			if cm := spanColor.FindStringSubmatch(attrs); cm != nil {
				cur.color = strings.TrimSpace(cm[1])
			}
		case "font":
			if cm := fontColor.FindStringSubmatch(attrs); cm != nil {
				cur.color = cm[1]
			}
		default:
			// Unknown tags are transparent; their contents inherit the
			// current style.
		}
	}

	return segs
}

// --- legacy inline markdown subset ---

var legacySpan = regexp.MustCompile(`(?s)\*\*(.+?)\*\*|_(.+?)_|\{c:([^}]+)\}(.+?)\{/c\}`)

// parseLegacy is a single regex-driven scan: spans match left to right,
// non-overlapping, first match wins, and their contents are taken verbatim
// rather than re-scanned — the legacy format never nested.
func (r Renderer) parseLegacy(body string) []Seg {
	segs := make([]Seg, 0, 4)
	last := 0

	for _, m := range legacySpan.FindAllStringSubmatchIndex(body, -1) {
		if m[0] > last {
			segs = append(segs, Seg{Text: body[last:m[0]]})
		}
		switch {
		case m[2] >= 0:
			segs = append(segs, Seg{Text: body[m[2]:m[3]], Bold: true})
		case m[4] >= 0:
			segs = append(segs, Seg{Text: body[m[4]:m[5]], Italic: true})
		case m[6] >= 0:
			name := body[m[6]:m[7]]
			segs = append(segs, Seg{Text: body[m[8]:m[9]], Color: r.resolveName(name)})
		}
		last = m[1]
	}

	if last < len(body) {
		segs = append(segs, Seg{Text: body[last:]})
	}
	return segs
}

// Plain flattens segments back to unstyled text.
func Plain(segs []Seg) string {
	var b strings.Builder
	for _, s := range segs {
		b.WriteString(s.Text)
	}
	return b.String()
}
