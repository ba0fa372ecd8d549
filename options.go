package gcolor

// ParseOption configures a Parser.
//
// Example:
//
//	// Parser that only accepts hex and rgb()/rgba() forms
//	p := gcolor.NewParser(gcolor.WithoutNames())
//
//	// Parser that reads 9-character hex as #aarrggbb
//	p := gcolor.NewParser(gcolor.WithHexARGB())
type ParseOption func(*parserOptions)

// parserOptions holds optional configuration for a Parser.
type parserOptions struct {
	// names resolves keywords. nil selects the SVG table.
	names NameTable

	// noNames disables keyword lookup entirely.
	noNames bool

	// hexARGB reads 8 hex digits as alpha first.
	hexARGB bool

	// foldWidth maps full-width forms such as '＃' to ASCII before parsing.
	foldWidth bool
}

// defaultParserOptions returns the default parser configuration.
func defaultParserOptions() parserOptions {
	return parserOptions{foldWidth: true}
}

// WithNames sets the keyword table used for named colors. A nil table
// disables named colors.
func WithNames(t NameTable) ParseOption {
	return func(o *parserOptions) {
		o.names = t
		o.noNames = t == nil
	}
}

// WithoutNames disables named colors.
func WithoutNames() ParseOption {
	return func(o *parserOptions) {
		o.names = nil
		o.noNames = true
	}
}

// WithHexARGB reads "#aarrggbb" instead of "#rrggbbaa".
func WithHexARGB() ParseOption {
	return func(o *parserOptions) {
		o.hexARGB = true
	}
}

// WithWidthFolding controls whether full-width characters are folded to
// their ASCII forms before parsing. It is on by default.
func WithWidthFolding(enabled bool) ParseOption {
	return func(o *parserOptions) {
		o.foldWidth = enabled
	}
}
