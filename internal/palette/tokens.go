package palette

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// ToYAML renders the computed scheme as a YAML design-token document.
func ToYAML(name string, colors []string, bgColor string, theme Theme) (string, error) {
	scheme, err := BuildScheme(name, colors, bgColor, theme)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(scheme); err != nil {
		return "", fmt.Errorf("encode yaml tokens: %w", err)
	}
	if err := enc.Close(); err != nil {
		return "", fmt.Errorf("encode yaml tokens: %w", err)
	}
	return buf.String(), nil
}

// ToTOML renders the computed scheme as a TOML design-token document.
func ToTOML(name string, colors []string, bgColor string, theme Theme) (string, error) {
	scheme, err := BuildScheme(name, colors, bgColor, theme)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(scheme); err != nil {
		return "", fmt.Errorf("encode toml tokens: %w", err)
	}
	return buf.String(), nil
}

// ToJSON renders the computed scheme as an indented JSON document.
func ToJSON(name string, colors []string, bgColor string, theme Theme) (string, error) {
	scheme, err := BuildScheme(name, colors, bgColor, theme)
	if err != nil {
		return "", err
	}

	data, err := json.MarshalIndent(scheme, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode json tokens: %w", err)
	}
	return string(data) + "\n", nil
}

// DecodeYAML reads a scheme written by ToYAML.
func DecodeYAML(data []byte) (Scheme, error) {
	var s Scheme
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Scheme{}, fmt.Errorf("decode yaml tokens: %w", err)
	}
	return s, nil
}

// DecodeTOML reads a scheme written by ToTOML.
func DecodeTOML(data []byte) (Scheme, error) {
	var s Scheme
	if _, err := toml.Decode(string(data), &s); err != nil {
		return Scheme{}, fmt.Errorf("decode toml tokens: %w", err)
	}
	return s, nil
}
