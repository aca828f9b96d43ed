package character

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/rpg-worlds/internal/entities/world"
	"github.com/KirkDiggler/rpg-worlds/internal/errors"
	"github.com/KirkDiggler/rpg-worlds/internal/resolvers"
)

// selections holds what the independent resolvers returned. A rejection is
// kept next to its slot so it can be reported in build order; any other
// failure aborts the load.
type selections struct {
	lineage        *resolvers.ResolveLineageOutput
	lineageErr     error
	aspects        []*world.Aspect
	aspectsErr     error
	personality    *world.Personality
	personalityErr error
	nature         *world.Nature
	natureErr      error
	caste          *world.Caste
	casteErr       error
	education      *world.Education
	educationErr   error
	item           *world.Item
	itemErr        error
}

// keepRejection stores a rejection in slot and passes any other error through
func keepRejection(err error, slot *error) error {
	if err == nil || errors.IsRejection(err) {
		*slot = err
		return nil
	}
	return err
}

// Assemble runs every resolver over the request and returns the validated
// build without persisting it. Selections are checked in a fixed order
// (lineage, aspects, base attributes, languages, personality, nature,
// customizations, caste, education, talents, starting wealth) and the first
// rejection in that order is returned, however the lookups interleave.
func (o *Orchestrator) Assemble(ctx context.Context, input *AssembleInput) (*AssembleOutput, error) {
	if input == nil || input.Request == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	req := input.Request

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("worldID", req.WorldID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, errors.Canceled("assembly canceled")
	}

	s, err := o.loadSelections(ctx, req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, errors.Canceled("assembly canceled")
		}
		return nil, err
	}

	build, err := o.evaluate(ctx, req, s)
	if err != nil {
		return nil, err
	}

	o.logger.Debug("assembled build",
		zap.String("world_id", req.WorldID),
		zap.String("lineage_id", build.Lineage.ID),
		zap.Int("talents", len(build.Talents)))

	return &AssembleOutput{
		Build:     build,
		Character: newCharacter(req, build),
	}, nil
}

// loadSelections runs the resolvers that depend on nothing but the request
func (o *Orchestrator) loadSelections(ctx context.Context, req *BuildRequest) (*selections, error) {
	s := &selections{}
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		out, err := o.resolver.ResolveLineage(gctx, &resolvers.ResolveLineageInput{
			WorldID: req.WorldID,
			ID:      req.LineageID,
		})
		s.lineage = out
		return keepRejection(err, &s.lineageErr)
	})

	g.Go(func() error {
		out, err := o.resolver.ResolveAspects(gctx, &resolvers.ResolveAspectsInput{
			WorldID: req.WorldID,
			IDs:     req.AspectIDs,
		})
		if out != nil {
			s.aspects = out.Aspects
		}
		return keepRejection(err, &s.aspectsErr)
	})

	g.Go(func() error {
		var err error
		s.personality, err = o.resolver.ResolvePersonality(gctx, &resolvers.ResolveByIDInput{
			WorldID: req.WorldID,
			ID:      req.PersonalityID,
		})
		return keepRejection(err, &s.personalityErr)
	})

	g.Go(func() error {
		var err error
		s.nature, err = o.resolver.ResolveNature(gctx, &resolvers.ResolveByIDInput{
			WorldID: req.WorldID,
			ID:      req.NatureID,
		})
		return keepRejection(err, &s.natureErr)
	})

	g.Go(func() error {
		var err error
		s.caste, err = o.resolver.ResolveCaste(gctx, &resolvers.ResolveByIDInput{
			WorldID: req.WorldID,
			ID:      req.CasteID,
		})
		return keepRejection(err, &s.casteErr)
	})

	g.Go(func() error {
		var err error
		s.education, err = o.resolver.ResolveEducation(gctx, &resolvers.ResolveByIDInput{
			WorldID: req.WorldID,
			ID:      req.EducationID,
		})
		return keepRejection(err, &s.educationErr)
	})

	g.Go(func() error {
		var err error
		s.item, err = o.resolver.ResolveItem(gctx, &resolvers.ResolveByIDInput{
			WorldID: req.WorldID,
			ID:      req.StartingWealthItemID,
		})
		return keepRejection(err, &s.itemErr)
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return s, nil
}

// evaluate walks the selections in build order, running the dependent
// resolvers once their inputs are known to be valid
func (o *Orchestrator) evaluate(ctx context.Context, req *BuildRequest, s *selections) (*world.Build, error) {
	if s.lineageErr != nil {
		return nil, s.lineageErr
	}
	if s.aspectsErr != nil {
		return nil, s.aspectsErr
	}

	base, err := resolvers.ResolveBaseAttributes(&resolvers.ResolveBaseAttributesInput{
		WorldID:       req.WorldID,
		Selection:     req.BaseAttributes,
		Aspects:       s.aspects,
		Lineage:       s.lineage.Lineage,
		ParentLineage: s.lineage.ParentLineage,
	})
	if err != nil {
		return nil, err
	}

	languages, err := o.resolver.ResolveLanguages(ctx, &resolvers.ResolveLanguagesInput{
		WorldID:       req.WorldID,
		IDs:           req.LanguageIDs,
		Lineage:       s.lineage.Lineage,
		ParentLineage: s.lineage.ParentLineage,
	})
	if err != nil {
		return nil, err
	}

	if s.personalityErr != nil {
		return nil, s.personalityErr
	}
	if s.natureErr != nil {
		return nil, s.natureErr
	}

	customizations, err := o.resolver.ResolveCustomizations(ctx, &resolvers.ResolveCustomizationsInput{
		WorldID:     req.WorldID,
		IDs:         req.CustomizationIDs,
		Personality: s.personality,
		Nature:      s.nature,
	})
	if err != nil {
		return nil, err
	}

	if s.casteErr != nil {
		return nil, s.casteErr
	}
	if s.educationErr != nil {
		return nil, s.educationErr
	}

	talents, err := o.resolver.ResolveTalents(ctx, &resolvers.ResolveTalentsInput{
		WorldID:   req.WorldID,
		IDs:       req.TalentIDs,
		Caste:     s.caste,
		Education: s.education,
	})
	if err != nil {
		return nil, err
	}

	if s.itemErr != nil {
		return nil, s.itemErr
	}

	return &world.Build{
		Lineage:        s.lineage.Lineage,
		ParentLineage:  s.lineage.ParentLineage,
		Nature:         s.nature,
		Personality:    s.personality,
		Caste:          s.caste,
		Education:      s.education,
		Aspects:        s.aspects,
		Customizations: customizations.Customizations,
		Languages:      languages.Languages,
		Talents:        talents.Talents,
		StartingWealth: s.item,
		BaseAttributes: base.BaseAttributes,
	}, nil
}

// newCharacter creates the base record for a build. ID and timestamps are
// left for the caller that persists it.
func newCharacter(req *BuildRequest, build *world.Build) *world.Character {
	c := &world.Character{
		WorldID:          req.WorldID,
		PlayerID:         req.PlayerID,
		Name:             req.Name,
		Level:            1,
		LineageID:        build.Lineage.ID,
		PersonalityID:    build.Personality.ID,
		CasteID:          build.Caste.ID,
		EducationID:      build.Education.ID,
		Physical:         req.Physical,
		BaseAttributes:   *build.BaseAttributes,
		LanguageIDs:      idsOf(build.Languages),
		CustomizationIDs: idsOf(build.Customizations),
		AspectIDs:        idsOf(build.Aspects),
		TalentIDs:        idsOf(build.Talents),
		StartingWealth:   world.StartingWealth{ItemID: build.StartingWealth.ID},
	}
	if build.Nature != nil {
		c.NatureID = build.Nature.ID
	}
	return c
}

func idsOf[T world.Content](entities []T) []string {
	ids := make([]string, 0, len(entities))
	for _, e := range entities {
		ids = append(ids, e.GetID())
	}
	return ids
}
