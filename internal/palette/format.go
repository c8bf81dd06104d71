package palette

import (
	"fmt"
	"strings"
)

// Format names an output serialisation.
type Format string

const (
	FormatCSS    Format = "css"
	FormatChakra Format = "chakra"
	FormatText   Format = "text"
	FormatYAML   Format = "yaml"
	FormatTOML   Format = "toml"
	FormatJSON   Format = "json"
)

// Formats lists every supported format in display order.
func Formats() []Format {
	return []Format{FormatCSS, FormatChakra, FormatText, FormatYAML, FormatTOML, FormatJSON}
}

// Label is the display name of the format.
func (f Format) Label() string {
	switch f {
	case FormatCSS:
		return "CSS"
	case FormatChakra:
		return "Chakra UI v3"
	case FormatText:
		return "Text"
	default:
		return strings.ToUpper(string(f))
	}
}

// Next cycles to the following format.
func (f Format) Next() Format {
	all := Formats()
	for i, candidate := range all {
		if candidate == f {
			return all[(i+1)%len(all)]
		}
	}
	return all[0]
}

// ParseFormat validates a format name. The empty string selects css.
func ParseFormat(s string) (Format, error) {
	name := Format(strings.ToLower(strings.TrimSpace(s)))
	if name == "" {
		return FormatCSS, nil
	}
	if name == "chakra-v3" {
		return FormatChakra, nil
	}
	for _, f := range Formats() {
		if f == name {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown format %q", s)
}

// Serialize renders a palette in the requested format.
func Serialize(format Format, p Palette, bgColor string, theme Theme) (string, error) {
	colors := p.Slice()
	switch format {
	case FormatCSS, "":
		return ToCSS(p.Name, colors, bgColor, theme)
	case FormatChakra:
		return ToChakraV3(p.Name, colors, bgColor, theme)
	case FormatText:
		return ToText(p.Name, colors, bgColor), nil
	case FormatYAML:
		return ToYAML(p.Name, colors, bgColor, theme)
	case FormatTOML:
		return ToTOML(p.Name, colors, bgColor, theme)
	case FormatJSON:
		return ToJSON(p.Name, colors, bgColor, theme)
	}
	return "", fmt.Errorf("unknown format %q", format)
}
