package theme

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// file is the on-disk layout of a theme file.
type file struct {
	Themes []Theme `yaml:"themes"`
}

// Decode reads a YAML theme file from r and validates every theme.
// Theme names must be unique.
func Decode(r io.Reader) ([]Theme, error) {
	var f file
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, fmt.Errorf("theme: decode: %w", err)
	}

	seen := make(map[string]bool, len(f.Themes))
	for _, t := range f.Themes {
		if err := t.Validate(); err != nil {
			return nil, err
		}
		if seen[t.Name] {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateTheme, t.Name)
		}
		seen[t.Name] = true
	}
	return f.Themes, nil
}

// Load reads and validates the theme file at path.
func Load(path string) ([]Theme, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("theme: open: %w", err)
	}
	defer fh.Close()
	return Decode(fh)
}

// Encode writes themes to w in the format Decode reads.
func Encode(w io.Writer, themes []Theme) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(file{Themes: themes}); err != nil {
		return fmt.Errorf("theme: encode: %w", err)
	}
	return enc.Close()
}
