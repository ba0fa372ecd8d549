package palette

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	gcolor "github.com/RustVis/jiao-sub000"
)

// Format is a palette file encoding.
type Format uint8

// Supported file formats.
const (
	FormatYAML Format = iota + 1
	FormatTOML
	FormatJSON
)

func (f Format) String() string {
	switch f {
	case FormatYAML:
		return "yaml"
	case FormatTOML:
		return "toml"
	case FormatJSON:
		return "json"
	default:
		return "Format(" + strconv.Itoa(int(f)) + ")"
	}
}

// ParseFormat resolves a format name such as "yaml" or "yml".
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(name, ".")) {
	case "yaml", "yml":
		return FormatYAML, nil
	case "toml":
		return FormatTOML, nil
	case "json":
		return FormatJSON, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
}

// FormatFromPath picks the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	return ParseFormat(filepath.Ext(path))
}

// document is the on-disk shape of a palette.
type document struct {
	Name   string   `json:"name" yaml:"name" toml:"name" validate:"required,palette_name"`
	Colors []string `json:"colors" yaml:"colors" toml:"colors" validate:"required,min=1,dive,color"`
}

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// Load reads, decodes and validates the palette file at path. The format
// is chosen by extension. All failures are reported as *FileError.
func Load(path string) (Palette, error) {
	f, err := FormatFromPath(path)
	if err != nil {
		return Palette{}, &FileError{Path: path, Err: err}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Palette{}, &FileError{Path: path, Err: err}
	}

	p, err := Decode(data, f)
	if err != nil {
		return Palette{}, &FileError{Path: path, Line: errorLine(data, err), Err: err}
	}

	gcolor.Logger().Debug("palette: loaded", "path", path, "format", f.String(), "name", p.Name, "colors", p.Len())
	return p, nil
}

// Decode decodes and validates a palette document. Unknown keys are
// rejected. Validation failures are reported as *ValidationError.
func Decode(data []byte, f Format) (Palette, error) {
	var doc document
	if err := unmarshal(data, f, &doc); err != nil {
		return Palette{}, err
	}

	if err := validatorInstance().Struct(doc); err != nil {
		return Palette{}, convertValidationError(err)
	}

	colors := make([]gcolor.Color, len(doc.Colors))
	for i, text := range doc.Colors {
		c, err := gcolor.Parse(text)
		if err != nil {
			return Palette{}, fmt.Errorf("colors[%d]: %w", i, err)
		}
		colors[i] = c
	}
	return Palette{Name: doc.Name, Colors: colors}, nil
}

func unmarshal(data []byte, f Format, doc *document) error {
	switch f {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(doc); err != nil && !errors.Is(err, io.EOF) {
			return err
		}
		return nil
	case FormatTOML:
		return toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields().Decode(doc)
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		return dec.Decode(doc)
	default:
		return fmt.Errorf("%w: %v", ErrUnknownFormat, f)
	}
}

// Encode writes p as a palette document. Opaque colors are written as
// "#rrggbb", others in the rgba() form.
func Encode(w io.Writer, p Palette, f Format) error {
	doc := document{Name: p.Name, Colors: p.Hex()}
	switch f {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return err
		}
		return enc.Close()
	case FormatTOML:
		return toml.NewEncoder(w).Encode(doc)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	default:
		return fmt.Errorf("%w: %v", ErrUnknownFormat, f)
	}
}

// errorLine finds the 1-based line a decode error points at, or 0.
func errorLine(data []byte, err error) int {
	var tomlErr *toml.DecodeError
	if errors.As(err, &tomlErr) {
		row, _ := tomlErr.Position()
		return row
	}

	var strictErr *toml.StrictMissingError
	if errors.As(err, &strictErr) && len(strictErr.Errors) > 0 {
		row, _ := strictErr.Errors[0].Position()
		return row
	}

	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		return lineAt(data, syntaxErr.Offset)
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return lineAt(data, typeErr.Offset)
	}

	var yamlErr *yaml.TypeError
	if errors.As(err, &yamlErr) && len(yamlErr.Errors) > 0 {
		return matchLine(yamlErr.Errors[0])
	}

	return matchLine(err.Error())
}

func matchLine(msg string) int {
	m := yamlLineRegex.FindStringSubmatch(msg)
	if len(m) != 2 {
		return 0
	}
	line, err := strconv.Atoi(m[1])
	if err != nil {
		return 0
	}
	return line
}

func lineAt(data []byte, offset int64) int {
	if offset <= 0 {
		return 1
	}
	offset = min(offset, int64(len(data)))
	return bytes.Count(data[:offset], []byte{'\n'}) + 1
}
