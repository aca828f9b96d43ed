package resolvers

import (
	"fmt"
	"maps"
	"strconv"

	"github.com/KirkDiggler/rpg-worlds/internal/entities/world"
	"github.com/KirkDiggler/rpg-worlds/internal/errors"
)

// BaseAttributesSelection is the attribute part of a creation payload
type BaseAttributesSelection struct {
	Scores   map[world.Attribute]int32
	Best     world.Attribute
	Worst    world.Attribute
	Optional []world.Attribute
	Extra    []world.Attribute
}

// ResolveBaseAttributesInput holds a selection and the content it draws from
type ResolveBaseAttributesInput struct {
	WorldID       string
	Selection     BaseAttributesSelection
	Aspects       []*world.Aspect
	Lineage       *world.Lineage
	ParentLineage *world.Lineage
}

// ResolveBaseAttributesOutput holds the validated selection
type ResolveBaseAttributesOutput struct {
	BaseAttributes *world.BaseAttributes
}

// attributePool is a multiset of attribute slots; each entry is consumed at most once
type attributePool []world.Attribute

func (p *attributePool) add(a *world.Attribute) {
	if a != nil {
		*p = append(*p, *a)
	}
}

// take removes one entry equal to a and reports whether there was one
func (p *attributePool) take(a world.Attribute) bool {
	for i, entry := range *p {
		if entry == a {
			*p = append((*p)[:i], (*p)[i+1:]...)
			return true
		}
	}
	return false
}

// ResolveBaseAttributes checks the attribute selection against the slots
// granted by the selected aspects and the lineage's extra attribute count.
//
// Best and Worst are each taken from the mandatory pool, then Optional
// entries from the optional pool left to right. Extra is compared by
// distinct values, so a duplicate shrinks the count rather than being
// reported as a repeat.
func ResolveBaseAttributes(input *ResolveBaseAttributesInput) (*ResolveBaseAttributesOutput, error) {
	if input.Lineage == nil {
		return nil, errors.InvalidArgument("lineage is required to resolve base attributes")
	}
	sel := input.Selection

	var mandatory, optional attributePool
	for _, aspect := range input.Aspects {
		mandatory.add(aspect.Mandatory1)
		mandatory.add(aspect.Mandatory2)
		optional.add(aspect.Optional1)
		optional.add(aspect.Optional2)
	}

	if !mandatory.take(sel.Best) {
		return nil, errors.Reject(errors.ReasonSelectionMismatch, input.WorldID, PropertyBest,
			"best attribute is not available in the mandatory aspect slots", string(sel.Best))
	}
	if !mandatory.take(sel.Worst) {
		return nil, errors.Reject(errors.ReasonSelectionMismatch, input.WorldID, PropertyWorst,
			"worst attribute is not available in the mandatory aspect slots", string(sel.Worst))
	}

	for i, a := range sel.Optional {
		if !optional.take(a) {
			return nil, errors.Reject(errors.ReasonSelectionMismatch, input.WorldID, optionalProperty(i),
				"optional attribute is not available in the optional aspect slots", string(a))
		}
	}

	extra := distinctAttributes(sel.Extra)
	for _, a := range extra {
		if !a.IsValid() {
			return nil, errors.Reject(errors.ReasonSelectionMismatch, input.WorldID, PropertyExtra,
				"extra attribute is not an attribute", string(a))
		}
	}

	expectedExtra := input.Lineage.ExtraAttributes
	if input.ParentLineage != nil {
		expectedExtra += input.ParentLineage.ExtraAttributes
	}
	if int32(len(extra)) != expectedExtra {
		return nil, errors.Reject(errors.ReasonSelectionMismatch, input.WorldID, PropertyExtra,
			fmt.Sprintf("expected %d distinct extra attributes, got %d", expectedExtra, len(extra)),
			strconv.Itoa(len(extra)))
	}

	return &ResolveBaseAttributesOutput{
		BaseAttributes: &world.BaseAttributes{
			Scores:    maps.Clone(sel.Scores),
			Best:      sel.Best,
			Worst:     sel.Worst,
			Mandatory: []world.Attribute(mandatory),
			Optional:  append([]world.Attribute(nil), sel.Optional...),
			Extra:     extra,
		},
	}, nil
}

func optionalProperty(i int) string {
	return fmt.Sprintf("%s[%d]", PropertyOptional, i)
}

func distinctAttributes(attrs []world.Attribute) []world.Attribute {
	seen := make(map[world.Attribute]struct{}, len(attrs))
	out := make([]world.Attribute, 0, len(attrs))
	for _, a := range attrs {
		if _, ok := seen[a]; ok {
			continue
		}
		seen[a] = struct{}{}
		out = append(out, a)
	}
	return out
}
