package gcolor

import (
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/width"
)

// minColorLen is the shortest normalized input the parser considers, the
// length of "#rgb". Shorter keywords such as "red" are rejected.
const minColorLen = 4

// Parser reads colors from text. A Parser is immutable after creation and
// safe for concurrent use.
//
// Accepted forms, after removing spaces and tabs and lowercasing:
//   - "#rgb", "#rrggbb" and "#rrggbbaa" (or "#aarrggbb" with WithHexARGB)
//   - "rgb(r,g,b)" and "rgba(r,g,b,a)" with decimal channels in [0, 255]
//   - color keywords from the configured NameTable
type Parser struct {
	opts parserOptions
}

// NewParser creates a Parser with the given options.
func NewParser(opts ...ParseOption) *Parser {
	o := defaultParserOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Parser{opts: o}
}

var defaultParser = NewParser()

// Parse reads a color using the default parser.
func Parse(s string) (Color, error) {
	return defaultParser.Parse(s)
}

// MustParse is like Parse but panics on malformed input.
// It simplifies initialization of package-level colors.
func MustParse(s string) Color {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

// FromName reads a color from a keyword, hex or rgb() string.
func FromName(name string) (Color, error) {
	return Parse(name)
}

// IsValidColor reports whether s parses as a color.
func IsValidColor(s string) bool {
	_, err := Parse(s)
	return err == nil
}

// SetNamedColor replaces the color with the parsed value of name.
// On error the color is left untouched.
func (c *Color) SetNamedColor(name string) error {
	return c.replace(Parse(name))
}

// Parse reads a color. Every successful parse yields an RGB color.
func (p *Parser) Parse(s string) (Color, error) {
	norm := p.normalize(s)
	if len(norm) < minColorLen {
		return p.reject(s, "too short")
	}

	switch {
	case norm[0] == '#':
		if c, ok := p.parseHex(norm[1:]); ok {
			return c, nil
		}
		return p.reject(s, "bad hex")
	case len(norm) > 12 && strings.HasPrefix(norm, "rgba(") && strings.HasSuffix(norm, ")"):
		if c, ok := parseFunc(norm[len("rgba("):len(norm)-1], 4); ok {
			return c, nil
		}
		return p.reject(s, "bad rgba()")
	case len(norm) > 9 && strings.HasPrefix(norm, "rgb(") && strings.HasSuffix(norm, ")"):
		if c, ok := parseFunc(norm[len("rgb("):len(norm)-1], 3); ok {
			return c, nil
		}
		return p.reject(s, "bad rgb()")
	}

	if t := p.names(); t != nil {
		if c, ok := t.Lookup(norm); ok {
			return c, nil
		}
	}
	return p.reject(s, "unknown name")
}

func (p *Parser) names() NameTable {
	switch {
	case p.opts.noNames:
		return nil
	case p.opts.names != nil:
		return p.opts.names
	default:
		return SVGNames()
	}
}

func (p *Parser) reject(input, reason string) (Color, error) {
	Logger().Debug("gcolor: rejected color", "input", input, "reason", reason)
	return Color{}, invalidFormat(input)
}

// normalize strips blanks and lowercases. Casers are stateful, so each
// call builds its own.
func (p *Parser) normalize(s string) string {
	if p.opts.foldWidth {
		s = width.Narrow.String(s)
	}
	s = strings.Map(func(r rune) rune {
		if r == ' ' || r == '\t' {
			return -1
		}
		return r
	}, s)
	s = strings.TrimSpace(s)
	return cases.Lower(language.Und).String(s)
}

// parseHex reads the digits after '#'.
func (p *Parser) parseHex(digits string) (Color, bool) {
	var v [4]uint8
	switch len(digits) {
	case 3:
		for i := range 3 {
			n, ok := hexNibble(digits[i])
			if !ok {
				return Color{}, false
			}
			v[i] = n * 17
		}
		return FromRGB(v[0], v[1], v[2]), true
	case 6, 8:
		for i := 0; i < len(digits); i += 2 {
			hi, ok1 := hexNibble(digits[i])
			lo, ok2 := hexNibble(digits[i+1])
			if !ok1 || !ok2 {
				return Color{}, false
			}
			v[i/2] = hi<<4 | lo
		}
		if len(digits) == 6 {
			return FromRGB(v[0], v[1], v[2]), true
		}
		if p.opts.hexARGB {
			return FromRGBA(v[1], v[2], v[3], v[0]), true
		}
		return FromRGBA(v[0], v[1], v[2], v[3]), true
	default:
		return Color{}, false
	}
}

// hexNibble expects input already lowercased by normalize.
func hexNibble(c byte) (uint8, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	default:
		return 0, false
	}
}

// parseFunc reads n comma-separated decimal channels.
func parseFunc(args string, n int) (Color, bool) {
	fields := strings.Split(args, ",")
	if len(fields) != n {
		return Color{}, false
	}
	v := [4]uint8{3: 0xff}
	for i, f := range fields {
		x, err := strconv.ParseUint(f, 10, 8)
		if err != nil {
			return Color{}, false
		}
		v[i] = uint8(x)
	}
	return FromRGBA(v[0], v[1], v[2], v[3]), true
}
