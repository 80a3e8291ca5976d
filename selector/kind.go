// Package selector assembles CSS selector strings from individually
// specified parts and combinators, enforcing the canonical part order
// and uniqueness rules along the way.
package selector

// Kind identifies a selector part category. Declaration order is the
// canonical order parts must follow within a compound selector.
type Kind int

const (
	KindElement Kind = iota
	KindID
	KindClass
	KindAttribute
	KindPseudoClass
	KindPseudoElement

	numKinds // keep last
)

// String returns the human readable name of the part kind.
func (k Kind) String() string {
	switch k {
	case KindElement:
		return "element"
	case KindID:
		return "id"
	case KindClass:
		return "class"
	case KindAttribute:
		return "attribute"
	case KindPseudoClass:
		return "pseudo-class"
	case KindPseudoElement:
		return "pseudo-element"
	default:
		return "unknown"
	}
}

// scalar reports whether the kind admits at most one fragment per selector.
func (k Kind) scalar() bool {
	switch k {
	case KindElement, KindID, KindPseudoElement:
		return true
	default:
		return false
	}
}

// fragment renders a single part value using the kind's prefix convention.
func (k Kind) fragment(value string) string {
	switch k {
	case KindElement:
		return value
	case KindID:
		return "#" + value
	case KindClass:
		return "." + value
	case KindAttribute:
		return "[" + value + "]"
	case KindPseudoClass:
		return ":" + value
	case KindPseudoElement:
		return "::" + value
	default:
		// this should never happen
		panic("unknown selector part kind")
	}
}
