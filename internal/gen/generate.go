package gen

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
)

// Output is one generated file, its path relative to the module root.
type Output struct {
	Path string
	Data []byte
}

// Generate renders every generated file for c.
func Generate(c *Config) ([]Output, error) {
	arrays, err := RenderArrays(c.Arrays.Lengths())
	if err != nil {
		return nil, err
	}
	numerals := c.Numerals.Lengths()
	binary, err := RenderTypenum(numerals)
	if err != nil {
		return nil, err
	}
	decimal, err := RenderDecimal(numerals)
	if err != nil {
		return nil, err
	}
	return []Output{
		{Path: "catalogue_gen.go", Data: arrays},
		{Path: filepath.Join("pkg", "typenum", "consts_gen.go"), Data: binary},
		{Path: filepath.Join("pkg", "genarray", "v1", "consts_gen.go"), Data: decimal},
	}, nil
}

// Write stores outs under root.
func Write(root string, outs []Output) error {
	for _, o := range outs {
		path := filepath.Join(root, o.Path)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return fmt.Errorf("gen: %w", err)
		}
		if err := os.WriteFile(path, o.Data, 0o644); err != nil {
			return fmt.Errorf("gen: %w", err)
		}
	}
	return nil
}

// Check reports the first file under root that differs from outs.
func Check(root string, outs []Output) error {
	for _, o := range outs {
		have, err := os.ReadFile(filepath.Join(root, o.Path))
		if err != nil {
			return fmt.Errorf("%w: %s: %v", ErrStale, o.Path, err)
		}
		if !bytes.Equal(have, o.Data) {
			return fmt.Errorf("%w: %s", ErrStale, o.Path)
		}
	}
	return nil
}
