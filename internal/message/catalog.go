package message

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultCatalogYAML []byte

// Catalog maps message ids to printf-style text.
type Catalog map[ID]string

type catalogFile struct {
	Messages map[int]string `yaml:"messages"`
}

// ParseCatalog decodes a YAML catalog document.
func ParseCatalog(data []byte) (Catalog, error) {
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse message catalog: %w", err)
	}
	c := make(Catalog, len(f.Messages))
	for k, v := range f.Messages {
		if k < 0 || k > 0xffff {
			return nil, fmt.Errorf("message id %d out of range", k)
		}
		c[ID(k)] = v
	}
	return c, nil
}

// Default returns a fresh copy of the built-in catalog.
func Default() Catalog {
	c, err := ParseCatalog(defaultCatalogYAML)
	if err != nil {
		panic(err)
	}
	return c
}

// LoadCatalog reads a YAML catalog from path and layers it over the
// built-in one, so a partial file only overrides the ids it names.
// An empty path yields the built-in catalog.
func LoadCatalog(path string) (Catalog, error) {
	c := Default()
	if path == "" {
		return c, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read message catalog: %w", err)
	}
	override, err := ParseCatalog(data)
	if err != nil {
		return nil, err
	}
	for id, text := range override {
		c[id] = text
	}
	return c, nil
}

// Render formats the message for id with args.
func (c Catalog) Render(id ID, args ...any) string {
	text, ok := c[id]
	if !ok {
		return fmt.Sprintf("message #%d %v", id, args)
	}
	if len(args) == 0 {
		return text
	}
	return fmt.Sprintf(text, args...)
}
