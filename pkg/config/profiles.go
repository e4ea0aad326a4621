package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/inputguard/pkg/validator"
)

// Profiles is a set of named field configurations.
type Profiles struct {
	fields map[string]Field
}

type profilesDocument struct {
	Fields map[string]yaml.Node `yaml:"fields"`
}

// LoadProfiles decodes a YAML profiles document. Every field starts from
// DefaultField and is validated. An empty document yields no profiles.
func LoadProfiles(r io.Reader) (*Profiles, error) {
	var doc profilesDocument
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, errors.Join(ErrParsingProfiles, err)
	}

	p := &Profiles{fields: make(map[string]Field, len(doc.Fields))}
	for name, node := range doc.Fields {
		f := DefaultField()
		if err := node.Decode(&f); err != nil {
			return nil, errors.Join(ErrParsingProfiles, fmt.Errorf("field %q: %w", name, err))
		}
		if err := f.Validate(); err != nil {
			return nil, fmt.Errorf("field %q: %w", name, err)
		}
		p.fields[name] = f
	}
	return p, nil
}

// LoadProfilesFile opens path and decodes it with LoadProfiles.
func LoadProfilesFile(path string) (*Profiles, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Join(ErrReadingProfiles, err)
	}
	defer file.Close()

	return LoadProfiles(file)
}

// Names returns the profile names in sorted order.
func (p *Profiles) Names() []string {
	names := make([]string, 0, len(p.fields))
	for name := range p.fields {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func (p *Profiles) Len() int { return len(p.fields) }

// Get returns the field named name.
func (p *Profiles) Get(name string) (Field, error) {
	f, ok := p.fields[name]
	if !ok {
		return Field{}, fmt.Errorf("%w: %q", ErrUnknownField, name)
	}
	return f, nil
}

// Engine builds the engine of the field named name.
func (p *Profiles) Engine(name string, opts ...validator.Option) (*validator.Engine, error) {
	f, err := p.Get(name)
	if err != nil {
		return nil, err
	}
	e, err := f.Engine(opts...)
	if err != nil {
		return nil, fmt.Errorf("field %q: %w", name, err)
	}
	return e, nil
}

// Engines builds one engine per profile. The same options are applied to every engine.
func (p *Profiles) Engines(opts ...validator.Option) (map[string]*validator.Engine, error) {
	engines := make(map[string]*validator.Engine, len(p.fields))
	for _, name := range p.Names() {
		e, err := p.Engine(name, opts...)
		if err != nil {
			return nil, err
		}
		engines[name] = e
	}
	return engines, nil
}
