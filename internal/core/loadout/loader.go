package loadout

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/zeusync/compose/internal/core/behavior"
	"github.com/zeusync/compose/internal/core/entity"
)

//go:embed default.yaml
var defaultYAML []byte

var validate = validator.New()

// Config lists named entity templates. The same structure is read from
// JSON or YAML.
type Config struct {
	Loadouts []Template `json:"loadouts" yaml:"loadouts" validate:"required,min=1,unique=Name,dive"`
}

// Template describes one entity: which variant each axis starts with.
type Template struct {
	Name        string            `json:"name" yaml:"name" validate:"required"`
	Kind        string            `json:"kind,omitempty" yaml:"kind,omitempty"`
	Description string            `json:"description,omitempty" yaml:"description,omitempty"`
	Behaviors   map[string]string `json:"behaviors" yaml:"behaviors" validate:"required,min=1,dive,keys,required,endkeys,required"`
}

// LoadJSON loads config from a JSON reader.
func LoadJSON(r io.Reader) (*Config, error) {
	var c Config
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&c); err != nil {
		return nil, fmt.Errorf("decode json: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// LoadYAML loads config from a YAML reader.
func LoadYAML(r io.Reader) (*Config, error) {
	var c Config
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil {
		return nil, fmt.Errorf("decode yaml: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// LoadFile picks the decoder from the file extension; anything that is not
// .json is read as YAML.
func LoadFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if strings.EqualFold(filepath.Ext(path), ".json") {
		return LoadJSON(f)
	}
	return LoadYAML(f)
}

// Default returns the built-in loadouts.
func Default() (*Config, error) {
	return LoadYAML(bytes.NewReader(defaultYAML))
}

// Validate checks the struct constraints.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, len(verrs))
			for i, fe := range verrs {
				msgs[i] = fmt.Sprintf("%s failed %q", fe.Namespace(), fe.Tag())
			}
			return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(msgs, "; "))
		}
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	// Names and axes are matched case-insensitively, so duplicates that only
	// differ in case would shadow each other.
	seen := make(map[string]string, len(c.Loadouts))
	for _, t := range c.Loadouts {
		key := normalize(t.Name)
		if first, ok := seen[key]; ok {
			return fmt.Errorf("%w: loadout %q duplicates %q", ErrInvalidConfig, t.Name, first)
		}
		seen[key] = t.Name
		if _, err := t.axes(); err != nil {
			return err
		}
	}
	return nil
}

// Names returns the template names in sorted order.
func (c *Config) Names() []string {
	names := make([]string, len(c.Loadouts))
	for i, t := range c.Loadouts {
		names[i] = t.Name
	}
	sort.Strings(names)
	return names
}

// Template finds a template by name.
func (c *Config) Template(name string) (Template, error) {
	for _, t := range c.Loadouts {
		if normalize(t.Name) == normalize(name) {
			return t, nil
		}
	}
	return Template{}, fmt.Errorf("%q: %w", name, ErrUnknownLoadout)
}

// Build creates an entity from the named template, constructing every
// variant through the catalog. Options are applied after the template's own
// kind and description, so callers can override them.
func (c *Config) Build(name string, catalog *behavior.Catalog, opts ...entity.Option) (*entity.Entity, error) {
	t, err := c.Template(name)
	if err != nil {
		return nil, err
	}
	return t.Build(catalog, opts...)
}

// Build creates an entity from this template. If any variant cannot be
// built, the ones already built are released and no entity is returned.
func (t Template) Build(catalog *behavior.Catalog, opts ...entity.Option) (*entity.Entity, error) {
	axes, err := t.axes()
	if err != nil {
		return nil, err
	}

	bindings := make(map[behavior.Axis]behavior.Behavior, len(axes))
	for _, a := range axes {
		b, err := behavior.Build(catalog, a.axis, t.Behaviors[a.key], nil)
		if err != nil {
			releaseAll(bindings)
			return nil, fmt.Errorf("loadout %q: %w", t.Name, err)
		}
		bindings[a.axis] = b
	}

	all := make([]entity.Option, 0, len(opts)+2)
	if t.Kind != "" {
		all = append(all, entity.WithKind(t.Kind))
	}
	if t.Description != "" {
		all = append(all, entity.WithDescription(t.Description))
	}
	all = append(all, opts...)
	e, err := entity.New(t.Name, bindings, all...)
	if err != nil {
		releaseAll(bindings)
		return nil, err
	}
	return e, nil
}

type templateAxis struct {
	key  string
	axis behavior.Axis
}

// axes maps the template's behavior keys to normalized axes, sorted by axis.
// Two keys naming the same axis are rejected.
func (t Template) axes() ([]templateAxis, error) {
	out := make([]templateAxis, 0, len(t.Behaviors))
	seen := make(map[behavior.Axis]string, len(t.Behaviors))
	for key := range t.Behaviors {
		axis := behavior.Axis(normalize(key))
		if first, ok := seen[axis]; ok {
			return nil, fmt.Errorf("%w: loadout %q binds axis %q twice (%q, %q)",
				ErrInvalidConfig, t.Name, axis, first, key)
		}
		seen[axis] = key
		out = append(out, templateAxis{key: key, axis: axis})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].axis < out[j].axis })
	return out, nil
}

func releaseAll(bindings map[behavior.Axis]behavior.Behavior) {
	for _, b := range bindings {
		if r, ok := b.(behavior.Releaser); ok {
			r.Release()
		}
	}
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
