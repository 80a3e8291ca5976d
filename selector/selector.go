package selector

import (
	"io"
	"strings"

	"go.uber.org/multierr"
)

// Selector accumulates selector parts and renders them into a CSS
// selector string. The zero value is ready to use. Parts must be added
// in canonical order (element, id, class, attribute, pseudo-class,
// pseudo-element); element, id and pseudo-element may be set at most
// once. A violating call leaves the accumulated parts untouched and
// records the error instead, so chains stay fluent and the error
// surfaces from Render or Err.
type Selector struct {
	parts [numKinds][]string
	last  Kind // highest kind added so far, meaningful only when dirty
	dirty bool
	chain []string // set only by Combine
	err   error
}

// Element sets the element (tag) part.
func (s *Selector) Element(tag string) *Selector {
	return s.add(KindElement, tag)
}

// ID sets the id part, rendered as #value.
func (s *Selector) ID(value string) *Selector {
	return s.add(KindID, value)
}

// Class appends a class part, rendered as .value. Multiple classes are
// allowed and keep insertion order.
func (s *Selector) Class(value string) *Selector {
	return s.add(KindClass, value)
}

// Attr appends an attribute part, rendered as [value]. The attribute
// expression is taken verbatim and not validated.
func (s *Selector) Attr(value string) *Selector {
	return s.add(KindAttribute, value)
}

// PseudoClass appends a pseudo-class part, rendered as :value.
func (s *Selector) PseudoClass(value string) *Selector {
	return s.add(KindPseudoClass, value)
}

// PseudoElement sets the pseudo-element part, rendered as ::value.
func (s *Selector) PseudoElement(value string) *Selector {
	return s.add(KindPseudoElement, value)
}

// add applies the uniqueness and ordering checks before mutating
// anything, so a failing call leaves the selector exactly as it was.
func (s *Selector) add(k Kind, value string) *Selector {
	if k.scalar() && len(s.parts[k]) > 0 {
		s.err = multierr.Append(s.err, duplicatePartError(k))
		return s
	}
	if s.dirty && k < s.last {
		s.err = multierr.Append(s.err, orderViolationError(k, s.last))
		return s
	}
	s.parts[k] = append(s.parts[k], k.fragment(value))
	s.last = k
	s.dirty = true
	return s
}

// Combine joins two assembled selectors with a combinator token and
// returns a new selector. The combinator is placed verbatim between
// single spaces and is not validated. Fragments of both inputs are
// captured eagerly, so mutating left or right afterwards does not
// change the combined result. Errors recorded on either input carry
// over to the result, left first.
func Combine(left *Selector, combinator string, right *Selector) *Selector {
	c := &Selector{}
	c.chain = append(c.chain, left.rendered()...)
	c.chain = append(c.chain, " "+combinator+" ")
	c.chain = append(c.chain, right.rendered()...)
	c.err = multierr.Combine(left.err, right.err)
	return c
}

// rendered returns the fragments this selector contributes to a
// combined chain: the baked chain for combination results, otherwise
// the own parts in canonical order.
func (s *Selector) rendered() []string {
	if len(s.chain) > 0 {
		return s.chain
	}
	out := make([]string, 0, numKinds)
	for _, fragments := range s.parts {
		out = append(out, fragments...)
	}
	return out
}

// Err returns the violations recorded on the selector, if any.
func (s *Selector) Err() error {
	return s.err
}

// WriteTo writes the rendered selector to w, implementing io.WriterTo.
// It fails without writing anything if the selector is invalid.
func (s *Selector) WriteTo(w io.Writer) (int64, error) {
	if s.err != nil {
		return 0, s.err
	}
	var total int64
	for _, f := range s.rendered() {
		n, err := io.WriteString(w, f)
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// Render produces the final selector string: all fragments in canonical
// order with no separators, or the combined chain for selectors
// produced by Combine. It fails if any chained call violated the part
// ordering or uniqueness rules.
func (s *Selector) Render() (string, error) {
	var sb strings.Builder
	if _, err := s.WriteTo(&sb); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// String returns the rendered selector, or an empty string when the
// selector is invalid.
func (s *Selector) String() string {
	var sb strings.Builder
	s.WriteTo(&sb) //nolint:errcheck
	return sb.String()
}
