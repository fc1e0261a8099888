// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package persona loads the chatbot personas: the system prompt, the fields
// an assistant may propose and the knowledge snippets of each chatbot type.
package persona

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/MKhiriev/idea-brand-coach/models"
)

//go:embed personas.yaml
var defaultPersonas []byte

var (
	ErrInvalidCatalog   = errors.New("invalid persona catalog")
	ErrDuplicatePersona = errors.New("duplicate persona")
)

// ExtractableField is a field identifier a persona may fill in.
type ExtractableField struct {
	Identifier  string               `yaml:"identifier"`
	Category    models.FieldCategory `yaml:"category"`
	Description string               `yaml:"description"`
}

// Persona configures one chatbot type.
type Persona struct {
	Type              models.ChatbotType `yaml:"type"`
	Name              string             `yaml:"name"`
	SystemPrompt      string             `yaml:"system_prompt"`
	ExtractableFields []ExtractableField `yaml:"extractable_fields"`
	Knowledge         []string           `yaml:"knowledge"`
}

// Field returns the extractable field with the given identifier.
func (p Persona) Field(identifier string) (ExtractableField, bool) {
	for _, f := range p.ExtractableFields {
		if f.Identifier == identifier {
			return f, true
		}
	}
	return ExtractableField{}, false
}

// Catalog is an immutable set of personas keyed by chatbot type.
type Catalog struct {
	personas map[models.ChatbotType]Persona
	order    []models.ChatbotType
}

// Default returns the catalog compiled into the binary.
func Default() (*Catalog, error) {
	return Parse(defaultPersonas)
}

// Parse decodes and validates a YAML list of personas.
func Parse(data []byte) (*Catalog, error) {
	var list []Persona
	if err := yaml.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidCatalog, err)
	}
	if len(list) == 0 {
		return nil, fmt.Errorf("%w: no personas", ErrInvalidCatalog)
	}

	c := &Catalog{personas: make(map[models.ChatbotType]Persona, len(list))}
	for _, p := range list {
		if err := validate(p); err != nil {
			return nil, err
		}
		if _, ok := c.personas[p.Type]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicatePersona, p.Type)
		}
		p.SystemPrompt = strings.TrimSpace(p.SystemPrompt)
		c.personas[p.Type] = p
		c.order = append(c.order, p.Type)
	}

	return c, nil
}

func validate(p Persona) error {
	if p.Type == "" {
		return fmt.Errorf("%w: persona without type", ErrInvalidCatalog)
	}
	if strings.TrimSpace(p.SystemPrompt) == "" {
		return fmt.Errorf("%w: %s has no system prompt", ErrInvalidCatalog, p.Type)
	}

	seen := make(map[string]struct{}, len(p.ExtractableFields))
	for _, f := range p.ExtractableFields {
		if f.Identifier == "" || !f.Category.Valid() {
			return fmt.Errorf("%w: %s has invalid field %q/%q", ErrInvalidCatalog, p.Type, f.Identifier, f.Category)
		}
		if _, dup := seen[f.Identifier]; dup {
			return fmt.Errorf("%w: %s lists %s twice", ErrInvalidCatalog, p.Type, f.Identifier)
		}
		seen[f.Identifier] = struct{}{}
	}

	return nil
}

// Get returns the persona of t.
func (c *Catalog) Get(t models.ChatbotType) (Persona, bool) {
	p, ok := c.personas[t]
	return p, ok
}

// Types lists the chatbot types in file order.
func (c *Catalog) Types() []models.ChatbotType {
	out := make([]models.ChatbotType, len(c.order))
	copy(out, c.order)
	return out
}
