// Package world holds the content and character types shared by the resolvers,
// the engine and the repositories.
package world

// Attribute is one of the seven character attributes
type Attribute string

// Attributes
const (
	AttributeAgility      Attribute = "Agility"
	AttributeCoordination Attribute = "Coordination"
	AttributeIntellect    Attribute = "Intellect"
	AttributePresence     Attribute = "Presence"
	AttributeSensitivity  Attribute = "Sensitivity"
	AttributeSpirit       Attribute = "Spirit"
	AttributeVigor        Attribute = "Vigor"
)

var allAttributes = []Attribute{
	AttributeAgility,
	AttributeCoordination,
	AttributeIntellect,
	AttributePresence,
	AttributeSensitivity,
	AttributeSpirit,
	AttributeVigor,
}

var attributesByName = indexNames(allAttributes)

// AllAttributes returns every attribute in display order
func AllAttributes() []Attribute {
	return append([]Attribute(nil), allAttributes...)
}

// ParseAttribute matches s against the attribute names, ignoring case
func ParseAttribute(s string) (Attribute, bool) {
	a, ok := attributesByName[normalizeName(s)]
	return a, ok
}

// String returns the attribute name
func (a Attribute) String() string {
	return string(a)
}

// IsValid reports whether a is a known attribute
func (a Attribute) IsValid() bool {
	got, ok := ParseAttribute(string(a))
	return ok && got == a
}
