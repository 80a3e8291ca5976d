package selector

import (
	"go.uber.org/zap"
)

// Builder is the entry point for assembling selectors. Each part
// method starts a fresh Selector which is then extended with chained
// calls and finalized with Render.
type Builder struct {
	log *zap.Logger
}

// NewBuilder creates a new selector builder.
func NewBuilder(log *zap.Logger) *Builder {
	if log == nil {
		log = zap.NewNop()
	}
	return &Builder{log: log.Named("css-selector")}
}

// Element starts a selector from an element (tag) part.
func (b *Builder) Element(tag string) *Selector {
	return b.start(KindElement, tag)
}

// ID starts a selector from an id part.
func (b *Builder) ID(value string) *Selector {
	return b.start(KindID, value)
}

// Class starts a selector from a class part.
func (b *Builder) Class(value string) *Selector {
	return b.start(KindClass, value)
}

// Attr starts a selector from an attribute part.
func (b *Builder) Attr(value string) *Selector {
	return b.start(KindAttribute, value)
}

// PseudoClass starts a selector from a pseudo-class part.
func (b *Builder) PseudoClass(value string) *Selector {
	return b.start(KindPseudoClass, value)
}

// PseudoElement starts a selector from a pseudo-element part.
func (b *Builder) PseudoElement(value string) *Selector {
	return b.start(KindPseudoElement, value)
}

// Combine joins two assembled selectors with a combinator token.
func (b *Builder) Combine(left *Selector, combinator string, right *Selector) *Selector {
	b.log.Debug("Combining selectors", zap.Stringer("left", left), zap.String("combinator", combinator), zap.Stringer("right", right))
	return Combine(left, combinator, right)
}

func (b *Builder) start(k Kind, value string) *Selector {
	b.log.Debug("Starting selector", zap.Stringer("kind", k), zap.String("value", value))
	return new(Selector).add(k, value)
}
