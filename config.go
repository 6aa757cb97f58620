package sbml

import (
	"encoding/xml"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const configElement = "sbmlconfig"

// PackageAttribute allows package attribute Name on elements named Element.
type PackageAttribute struct {
	Element string `xml:"element,attr" yaml:"element"`
	Name    string `xml:"name,attr" yaml:"name"`
}

// PackageEntry declares one Level 3 package.
type PackageEntry struct {
	Name       string              `xml:"name,attr" yaml:"name"`
	URI        string              `xml:"uri,attr" yaml:"uri"`
	Prefix     string              `xml:"prefix,attr,omitempty" yaml:"prefix,omitempty"`
	Attributes []*PackageAttribute `xml:"attribute" yaml:"attributes,omitempty"`
}

// Config gathers the settings of the command line tools: how diagnostics are
// filtered, which validator categories run, how documents are written and
// which packages are known.
type Config struct {
	SeverityOverride string          `xml:"severityoverride,omitempty" yaml:"severityOverride,omitempty"`
	Categories       []string        `xml:"categories>category" yaml:"categories,omitempty"`
	Indent           *string         `xml:"indent" yaml:"indent,omitempty"`
	Packages         []*PackageEntry `xml:"packages>package" yaml:"packages,omitempty"`
}

// LoadConfig reads the configuration at path. Files ending in .yaml or .yml
// are YAML, everything else XML.
func LoadConfig(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	defer file.Close()

	config := new(Config)

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.NewDecoder(file).Decode(config); err != nil {
			return nil, errors.WithMessagef(err, "load config %s", path)
		}

	default:
		decoder := xml.NewDecoder(file)

		var cfgStart xml.StartElement
		for {
			token, err := decoder.Token()
			if err != nil {
				return nil, errors.WithMessagef(err, "load config %s", path)
			}

			if start, ok := token.(xml.StartElement); ok && start.Name.Local == configElement {
				cfgStart = start
				break
			}
		}

		if err := decoder.DecodeElement(config, &cfgStart); err != nil {
			return nil, errors.WithMessagef(err, "load config %s", path)
		}
	}

	if err := config.check(); err != nil {
		return nil, errors.WithMessagef(err, "load config %s", path)
	}

	return config, nil
}

// SaveConfig writes config to path as XML.
func SaveConfig(config *Config, path string) (err error) {
	if config == nil {
		return nil
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}

	defer func() {
		if e := file.Close(); e != nil && err == nil {
			err = e
		}
	}()

	encoder := xml.NewEncoder(file)
	encoder.Indent("", defaultIndent)

	start := xml.StartElement{Name: xml.Name{Local: configElement}}
	if err := encoder.EncodeElement(config, start); err != nil {
		return errors.WithMessagef(err, "save config %s", path)
	}

	return encoder.Flush()
}

func (c *Config) check() error {
	if _, err := c.Override(); err != nil {
		return err
	}
	for _, name := range c.Categories {
		if _, ok := ParseCategory(name); !ok {
			return errors.Errorf("unknown category \"%s\"", name)
		}
	}
	_, err := c.ExtensionRegistry()
	return err
}

// Override returns the configured severity override.
func (c *Config) Override() (SeverityOverride, error) {
	if c.SeverityOverride == "" {
		return OverrideNone, nil
	}
	o, ok := ParseSeverityOverride(c.SeverityOverride)
	if !ok {
		return OverrideNone, errors.Errorf("unknown severity override \"%s\"", c.SeverityOverride)
	}
	return o, nil
}

// CategoryList returns the configured categories, nil when the list is
// empty.
func (c *Config) CategoryList() []Category {
	var cats []Category
	for _, name := range c.Categories {
		if cat, ok := ParseCategory(name); ok {
			cats = append(cats, cat)
		}
	}
	return cats
}

// IndentString returns the configured indent, the default when unset.
func (c *Config) IndentString() string {
	if c.Indent == nil {
		return defaultIndent
	}
	return *c.Indent
}

// ExtensionRegistry builds a registry holding the configured packages.
func (c *Config) ExtensionRegistry() (*ExtensionRegistry, error) {
	reg := NewExtensionRegistry()
	for _, entry := range c.Packages {
		ext := &Extension{
			Name:          entry.Name,
			URI:           entry.URI,
			DefaultPrefix: entry.Prefix,
			Attributes:    map[TypeCode][]string{},
		}

		for _, attr := range entry.Attributes {
			tc := TypeForElement(attr.Element, DefaultLevelVersion)
			if tc == TypeUnknown {
				return nil, errors.Errorf("package \"%s\": unknown element \"%s\"", entry.Name, attr.Element)
			}
			ext.Attributes[tc] = append(ext.Attributes[tc], attr.Name)
		}

		if err := reg.Register(ext); err != nil {
			return nil, err
		}
	}
	return reg, nil
}

// ReadOptions returns the reader options matching c.
func (c *Config) ReadOptions() ([]ReadOption, error) {
	override, err := c.Override()
	if err != nil {
		return nil, err
	}
	reg, err := c.ExtensionRegistry()
	if err != nil {
		return nil, err
	}
	return []ReadOption{WithSeverityOverride(override), WithExtensions(reg)}, nil
}

func (c *Config) WriteOptions() []WriteOption {
	return []WriteOption{WithIndent(c.IndentString())}
}
