package resolvers_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-worlds/internal/entities/world"
	"github.com/KirkDiggler/rpg-worlds/internal/errors"
	"github.com/KirkDiggler/rpg-worlds/internal/resolvers"
	"github.com/KirkDiggler/rpg-worlds/internal/testutils"
)

type BaseAttributesTestSuite struct {
	suite.Suite
	world *testutils.World
}

func (s *BaseAttributesTestSuite) SetupTest() {
	s.world = testutils.NewWorld()
}

func (s *BaseAttributesTestSuite) resolve(
	sel resolvers.BaseAttributesSelection,
	aspects []*world.Aspect,
	lineage, parent *world.Lineage,
) (*world.BaseAttributes, error) {
	out, err := resolvers.ResolveBaseAttributes(&resolvers.ResolveBaseAttributesInput{
		WorldID:       testutils.TestWorldID,
		Selection:     sel,
		Aspects:       aspects,
		Lineage:       lineage,
		ParentLineage: parent,
	})
	if err != nil {
		return nil, err
	}
	return out.BaseAttributes, nil
}

func (s *BaseAttributesTestSuite) requireRejection(err error, property string, values ...string) {
	s.Require().Error(err)
	rejection, ok := errors.GetRejection(err)
	s.Require().True(ok, "expected a rejection, got %v", err)
	s.Equal(errors.ReasonSelectionMismatch, rejection.Reason)
	s.Equal(property, rejection.Property)
	if len(values) > 0 {
		s.Equal(values, rejection.Values)
	}
}

// noExtraLineage is a species that allots no extra attributes
func (s *BaseAttributesTestSuite) noExtraLineage() *world.Lineage {
	return &world.Lineage{ID: "lin_plain", WorldID: testutils.TestWorldID}
}

func (s *BaseAttributesTestSuite) TestBestAndWorstFromMandatoryPool() {
	warrior := []*world.Aspect{s.world.Warrior}

	s.Run("both available", func() {
		attrs, err := s.resolve(resolvers.BaseAttributesSelection{
			Best:  world.AttributeCoordination,
			Worst: world.AttributeSensitivity,
		}, warrior, s.noExtraLineage(), nil)
		s.Require().NoError(err)
		s.Equal(world.AttributeCoordination, attrs.Best)
		s.Equal(world.AttributeSensitivity, attrs.Worst)
		s.Empty(attrs.Mandatory)
	})

	s.Run("same attribute twice exhausts a single slot", func() {
		_, err := s.resolve(resolvers.BaseAttributesSelection{
			Best:  world.AttributeCoordination,
			Worst: world.AttributeCoordination,
		}, warrior, s.noExtraLineage(), nil)
		s.requireRejection(err, resolvers.PropertyWorst, "Coordination")
	})

	s.Run("same attribute twice when two aspects require it", func() {
		attrs, err := s.resolve(resolvers.BaseAttributesSelection{
			Best:  world.AttributeCoordination,
			Worst: world.AttributeCoordination,
		}, []*world.Aspect{s.world.Warrior, s.world.Scholar}, s.noExtraLineage(), nil)
		s.Require().NoError(err)
		s.Equal([]world.Attribute{world.AttributeSensitivity, world.AttributeIntellect}, attrs.Mandatory)
	})

	s.Run("best not granted", func() {
		_, err := s.resolve(resolvers.BaseAttributesSelection{
			Best:  world.AttributeSpirit,
			Worst: world.AttributeSensitivity,
		}, warrior, s.noExtraLineage(), nil)
		s.requireRejection(err, resolvers.PropertyBest, "Spirit")
	})

	s.Run("no aspects", func() {
		_, err := s.resolve(resolvers.BaseAttributesSelection{
			Best:  world.AttributeSpirit,
			Worst: world.AttributeVigor,
		}, nil, s.noExtraLineage(), nil)
		s.requireRejection(err, resolvers.PropertyBest)
	})
}

func (s *BaseAttributesTestSuite) TestOptionalConsumedLeftToRight() {
	base := resolvers.BaseAttributesSelection{
		Best:  world.AttributeCoordination,
		Worst: world.AttributeSensitivity,
	}

	s.Run("each optional slot used once", func() {
		sel := base
		sel.Optional = []world.Attribute{world.AttributeAgility, world.AttributeAgility}
		_, err := s.resolve(sel, []*world.Aspect{s.world.Warrior}, s.noExtraLineage(), nil)
		s.requireRejection(err, "BaseAttributes.Optional[1]", "Agility")
	})

	s.Run("a second aspect adds another slot", func() {
		sel := base
		sel.Optional = []world.Attribute{world.AttributeAgility, world.AttributeAgility, world.AttributeVigor}
		attrs, err := s.resolve(sel, []*world.Aspect{s.world.Warrior, s.world.Wanderer}, s.noExtraLineage(), nil)
		s.Require().NoError(err)
		s.Equal(sel.Optional, attrs.Optional)
		s.Equal([]world.Attribute{world.AttributeVigor}, attrs.Mandatory)
	})

	s.Run("first bad entry is named", func() {
		sel := base
		sel.Optional = []world.Attribute{world.AttributeVigor, world.AttributePresence, world.AttributeSpirit}
		_, err := s.resolve(sel, []*world.Aspect{s.world.Warrior}, s.noExtraLineage(), nil)
		s.requireRejection(err, "BaseAttributes.Optional[1]", "Presence")
	})
}

func (s *BaseAttributesTestSuite) TestExtraCountsDistinctValues() {
	base := resolvers.BaseAttributesSelection{
		Best:  world.AttributeCoordination,
		Worst: world.AttributeSensitivity,
	}
	warrior := []*world.Aspect{s.world.Warrior}

	testCases := []struct {
		name    string
		extra   []world.Attribute
		lineage *world.Lineage
		parent  *world.Lineage
		wantErr bool
		want    []world.Attribute
	}{
		{
			name:    "duplicate collapses below the allotment",
			extra:   []world.Attribute{world.AttributeIntellect, world.AttributeIntellect},
			lineage: s.world.Hillfolk,
			wantErr: true,
		},
		{
			name:    "distinct values fill the allotment",
			extra:   []world.Attribute{world.AttributeIntellect, world.AttributeVigor},
			lineage: s.world.Hillfolk,
			want:    []world.Attribute{world.AttributeIntellect, world.AttributeVigor},
		},
		{
			name:    "nation adds the species allotment",
			extra:   []world.Attribute{world.AttributeAgility, world.AttributeSpirit},
			lineage: s.world.Northman,
			parent:  s.world.Human,
			want:    []world.Attribute{world.AttributeAgility, world.AttributeSpirit},
		},
		{
			name:    "nation alone is not enough",
			extra:   []world.Attribute{world.AttributeAgility},
			lineage: s.world.Northman,
			parent:  s.world.Human,
			wantErr: true,
		},
		{
			name:    "too many",
			extra:   []world.Attribute{world.AttributeAgility, world.AttributeSpirit, world.AttributeVigor},
			lineage: s.world.Hillfolk,
			wantErr: true,
		},
		{name: "none expected", lineage: s.noExtraLineage(), want: []world.Attribute{}},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			sel := base
			sel.Extra = tc.extra
			attrs, err := s.resolve(sel, warrior, tc.lineage, tc.parent)
			if tc.wantErr {
				s.requireRejection(err, resolvers.PropertyExtra)
				return
			}
			s.Require().NoError(err)
			s.Equal(tc.want, attrs.Extra)
		})
	}
}

func (s *BaseAttributesTestSuite) TestExtraMustBeAttributes() {
	_, err := s.resolve(resolvers.BaseAttributesSelection{
		Best:  world.AttributeCoordination,
		Worst: world.AttributeSensitivity,
		Extra: []world.Attribute{"Luck", world.AttributeVigor},
	}, []*world.Aspect{s.world.Warrior}, s.world.Hillfolk, nil)
	s.requireRejection(err, resolvers.PropertyExtra, "Luck")
}

func (s *BaseAttributesTestSuite) TestScoresAreKept() {
	scores := map[world.Attribute]int32{world.AttributeVigor: 14, world.AttributeAgility: 9}
	attrs, err := s.resolve(resolvers.BaseAttributesSelection{
		Scores: scores,
		Best:   world.AttributeCoordination,
		Worst:  world.AttributeSensitivity,
	}, []*world.Aspect{s.world.Warrior}, s.noExtraLineage(), nil)
	s.Require().NoError(err)
	s.Equal(scores, attrs.Scores)

	scores[world.AttributeVigor] = 3
	s.Equal(int32(14), attrs.Scores[world.AttributeVigor])
}

func (s *BaseAttributesTestSuite) TestLineageRequired() {
	_, err := s.resolve(resolvers.BaseAttributesSelection{}, nil, nil, nil)
	s.True(errors.IsInvalidArgument(err))
	s.False(errors.IsRejection(err))
}

func TestBaseAttributesTestSuite(t *testing.T) {
	suite.Run(t, new(BaseAttributesTestSuite))
}
