// Package compose assembles selectors from declarative YAML documents
// and backs the render CLI command.
package compose

import (
	"bytes"
	"fmt"

	"go.uber.org/zap"
	yaml "gopkg.in/yaml.v3"

	"cssel/selector"
)

// Spec describes a single selector, either by its parts or as a
// combination of two previously defined selectors.
type Spec struct {
	Name          string   `yaml:"name"`
	Element       string   `yaml:"element,omitempty"`
	ID            string   `yaml:"id,omitempty"`
	Classes       []string `yaml:"classes,omitempty"`
	Attributes    []string `yaml:"attributes,omitempty"`
	PseudoClasses []string `yaml:"pseudo_classes,omitempty"`
	PseudoElement string   `yaml:"pseudo_element,omitempty"`

	Combine *CombineSpec `yaml:"combine,omitempty"`
}

// CombineSpec joins two earlier selectors by name. The combinator is
// used verbatim, the usual tokens being " ", ">", "+" and "~".
type CombineSpec struct {
	Left       string `yaml:"left"`
	Combinator string `yaml:"combinator"`
	Right      string `yaml:"right"`
}

// Document is a list of selector specifications. Combinations may only
// refer to selectors defined earlier in the document.
type Document struct {
	Selectors []Spec `yaml:"selectors"`
}

// Rendered is a single assembled selector ready for output.
type Rendered struct {
	Name     string
	Selector string
}

// Load decodes a selector document, rejecting unknown fields.
func Load(data []byte) (*Document, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	var d Document
	if err := dec.Decode(&d); err != nil {
		return nil, fmt.Errorf("failed to decode selector document: %w", err)
	}
	return &d, nil
}

func (sp *Spec) hasParts() bool {
	return sp.Element != "" || sp.ID != "" || len(sp.Classes) > 0 ||
		len(sp.Attributes) > 0 || len(sp.PseudoClasses) > 0 || sp.PseudoElement != ""
}

// parts builds a selector from the part fields. Fields are applied in
// canonical order, so a well-formed spec cannot trip the ordering rule.
func (sp *Spec) parts() *selector.Selector {
	s := new(selector.Selector)
	if sp.Element != "" {
		s.Element(sp.Element)
	}
	if sp.ID != "" {
		s.ID(sp.ID)
	}
	for _, c := range sp.Classes {
		s.Class(c)
	}
	for _, a := range sp.Attributes {
		s.Attr(a)
	}
	for _, p := range sp.PseudoClasses {
		s.PseudoClass(p)
	}
	if sp.PseudoElement != "" {
		s.PseudoElement(sp.PseudoElement)
	}
	return s
}

// Assemble renders all selectors of the document in order.
func (d *Document) Assemble(log *zap.Logger) ([]Rendered, error) {
	if log == nil {
		log = zap.NewNop()
	}
	log = log.Named("compose")

	byName := make(map[string]*selector.Selector, len(d.Selectors))
	out := make([]Rendered, 0, len(d.Selectors))

	for i, sp := range d.Selectors {
		if sp.Name == "" {
			return nil, fmt.Errorf("selector %d: name is required", i)
		}
		if _, dup := byName[sp.Name]; dup {
			return nil, fmt.Errorf("selector %q defined more than once", sp.Name)
		}

		var s *selector.Selector
		switch {
		case sp.Combine != nil && sp.hasParts():
			return nil, fmt.Errorf("selector %q: parts and combine are mutually exclusive", sp.Name)
		case sp.Combine != nil:
			left, ok := byName[sp.Combine.Left]
			if !ok {
				return nil, fmt.Errorf("selector %q: unknown left operand %q", sp.Name, sp.Combine.Left)
			}
			right, ok := byName[sp.Combine.Right]
			if !ok {
				return nil, fmt.Errorf("selector %q: unknown right operand %q", sp.Name, sp.Combine.Right)
			}
			s = selector.Combine(left, sp.Combine.Combinator, right)
		case sp.hasParts():
			s = sp.parts()
		default:
			return nil, fmt.Errorf("selector %q has neither parts nor combine", sp.Name)
		}

		text, err := s.Render()
		if err != nil {
			return nil, fmt.Errorf("selector %q: %w", sp.Name, err)
		}
		log.Debug("Assembled selector", zap.String("name", sp.Name), zap.String("selector", text))

		byName[sp.Name] = s
		out = append(out, Rendered{Name: sp.Name, Selector: text})
	}
	return out, nil
}
