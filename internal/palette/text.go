package palette

import (
	"fmt"
	"strings"
)

// ToText renders the palette as commented plain text.
func ToText(name string, colors []string, bgColor string) string {
	entries := make([]string, len(colors))
	for i, c := range colors {
		entries[i] = fmt.Sprintf("// %s %d\n%s", name, i+1, c)
	}

	return strings.Join([]string{
		"// Palette Colors",
		strings.Join(entries, "\n"),
		"// Background Color\n" + bgColor,
	}, "\n\n")
}
