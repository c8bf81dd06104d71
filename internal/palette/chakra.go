package palette

import (
	"fmt"
	"slices"
	"strings"

	"github.com/alexisbeaulieu97/huey/internal/color"
)

// chakraScale is the numeric token scale the 12 steps map onto.
var chakraScale = [Steps]int{50, 100, 150, 200, 300, 400, 500, 600, 700, 800, 900, 950}

// ToChakraV3 renders a Chakra UI v3 system config with color tokens for the
// palette and the background plus semantic tokens.
func ToChakraV3(name string, colors []string, bgColor string, theme Theme) (string, error) {
	if len(colors) != Steps {
		return "", fmt.Errorf("palette must have %d colors, got %d", Steps, len(colors))
	}
	key := slug(name)

	first, err := color.ParseRGBValue(colors[0])
	if err != nil {
		return "", fmt.Errorf("step 1: %w", err)
	}
	last, err := color.ParseRGBValue(colors[len(colors)-1])
	if err != nil {
		return "", fmt.Errorf("step %d: %w", len(colors), err)
	}
	bg, err := color.ParseRGBValue(bgColor)
	if err != nil {
		return "", fmt.Errorf("background color: %w", err)
	}

	sorted := slices.Clone(colors)
	if first.Luminance() < last.Luminance() {
		slices.Reverse(sorted)
	}

	tokens := make([]string, Steps)
	bgTokens := make([]string, Steps)
	for i, scale := range chakraScale {
		tokens[i] = fmt.Sprintf(`          %d: { value: "%s" }`, scale, sorted[i])

		percentage := float64(i) / float64(Steps-1) * 100
		var shade color.RGB
		if theme == ThemeDark {
			shade = color.Mix(color.White, bg, percentage)
		} else {
			shade = color.Mix(bg, color.Black, percentage)
		}
		bgTokens[i] = fmt.Sprintf(`          %d: { value: "%s" }`, scale, shade.Hex())
	}

	step600, err := color.ParseRGBValue(sorted[7])
	if err != nil {
		return "", fmt.Errorf("step 600: %w", err)
	}
	contrast := "white"
	if step600.IsLight() {
		contrast = "black"
	}

	replacer := strings.NewReplacer(
		"{{name}}", key,
		"{{tokens}}", strings.Join(tokens, ",\n"),
		"{{bgTokens}}", strings.Join(bgTokens, ",\n"),
		"{{contrast}}", contrast,
	)
	return replacer.Replace(chakraTemplate), nil
}

const chakraTemplate = `import { createSystem, defineConfig, defaultConfig } from "@chakra-ui/react"

const config = defineConfig({
  theme: {
    tokens: {
      colors: {
        {{name}}: {
{{tokens}},
        },
        bg: {
{{bgTokens}}
        }
      }
    },
    semanticTokens: {
      colors: {
        {{name}}: {
          contrast: {
            value: "{{contrast}}",
          },
          fg: {
            value: { _light: "{colors.{{name}}.700}", _dark: "{colors.{{name}}.300}" },
          },
          subtle: {
            value: { _light: "{colors.{{name}}.100}", _dark: "{colors.{{name}}.900}" },
          },
          muted: {
            value: { _light: "{colors.{{name}}.200}", _dark: "{colors.{{name}}.800}" },
          },
          emphasized: {
            value: { _light: "{colors.{{name}}.300}", _dark: "{colors.{{name}}.700}" },
          },
          solid: {
            value: { _light: "{colors.{{name}}.600}", _dark: "{colors.{{name}}.600}" },
          },
          focusRing: {
            value: { _light: "{colors.{{name}}.500}", _dark: "{colors.{{name}}.500}" },
          },
          border: {
            value: { _light: "{colors.{{name}}.500}", _dark: "{colors.{{name}}.400}" },
          },
        },
        bg: {
          DEFAULT: {
            value: { _light: "{colors.bg.50}", _dark: "{colors.bg.950}" },
          },
          subtle: {
            value: { _light: "{colors.bg.100}", _dark: "{colors.bg.900}" },
          },
          muted: {
            value: { _light: "{colors.bg.200}", _dark: "{colors.bg.800}" },
          },
          emphasized: {
            value: { _light: "{colors.bg.300}", _dark: "{colors.bg.700}" },
          },
          inverted: {
            value: { _light: "{colors.bg.950}", _dark: "{colors.bg.50}" },
          },
          panel: {
            value: { _light: "{colors.bg.50}", _dark: "{colors.bg.950}" },
          },
        }
      }
    }
  }
});

export const system = createSystem(defaultConfig, config)`
