package character

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/rpg-worlds/internal/engine"
	"github.com/KirkDiggler/rpg-worlds/internal/entities/world"
	"github.com/KirkDiggler/rpg-worlds/internal/errors"
	characterrepo "github.com/KirkDiggler/rpg-worlds/internal/repositories/character"
	contentrepo "github.com/KirkDiggler/rpg-worlds/internal/repositories/content"
	progressionrepo "github.com/KirkDiggler/rpg-worlds/internal/repositories/progression"
)

const maxNameLength = 64

// ValidateCharacter assembles the build without persisting it.
// Rejections are reported in the output; only faults are returned as errors.
func (o *Orchestrator) ValidateCharacter(
	ctx context.Context,
	input *ValidateCharacterInput,
) (*ValidateCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	out, err := o.Assemble(ctx, &AssembleInput{Request: input.Request})
	if err != nil {
		rejection, ok := errors.GetRejection(err)
		if !ok {
			return nil, err
		}
		return &ValidateCharacterOutput{
			Rejection: rejection,
			Message:   errors.GetMessage(err),
		}, nil
	}

	return &ValidateCharacterOutput{
		IsValid: true,
		Build:   out.Build,
	}, nil
}

// CreateCharacter assembles the build and persists it as a level 1 character.
// Nothing is written when any selection is rejected.
func (o *Orchestrator) CreateCharacter(
	ctx context.Context,
	input *CreateCharacterInput,
) (*CreateCharacterOutput, error) {
	if input == nil || input.Request == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	req := input.Request

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("name", req.Name, vb)
	errors.ValidateMaxLength("name", req.Name, maxNameLength, vb)
	errors.ValidateRequired("playerID", req.PlayerID, vb)
	errors.ValidateRequired("worldID", req.WorldID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	assembled, err := o.Assemble(ctx, &AssembleInput{Request: req})
	if err != nil {
		return nil, err
	}

	now := o.clock.Now().Unix()
	char := assembled.Character
	char.ID = o.idGenerator.Generate()
	char.CreatedAt = now
	char.UpdatedAt = now

	created, err := o.characterRepo.Create(ctx, characterrepo.CreateInput{Character: char})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create character")
	}

	o.logger.Info("character created",
		zap.String("character_id", char.ID),
		zap.String("player_id", char.PlayerID),
		zap.String("world_id", char.WorldID),
		zap.String("lineage_id", char.LineageID))

	return &CreateCharacterOutput{Character: created.Character}, nil
}

// GetCharacter loads a character and derives its stat block from the stored
// build, its progression history and the content it references
func (o *Orchestrator) GetCharacter(ctx context.Context, input *GetCharacterInput) (*GetCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument("character ID is required")
	}

	got, err := o.characterRepo.Get(ctx, characterrepo.GetInput{ID: input.CharacterID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get character")
	}
	char := got.Character

	calc := &engine.CalculateSheetInput{Character: char}
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		history, err := o.progressionRepo.Get(gctx, progressionrepo.GetInput{CharacterID: char.ID})
		if err != nil {
			return errors.Wrap(err, "failed to get progression")
		}
		calc.Bonuses = history.Bonuses
		calc.LevelUps = history.LevelUps
		calc.SkillRanks = history.SkillRanks
		return nil
	})

	g.Go(func() error {
		lineage, err := o.contentRepo.GetLineage(gctx, contentrepo.GetInput{ID: char.LineageID})
		if err != nil {
			return errors.Wrapf(err, "failed to get lineage %s", char.LineageID)
		}
		calc.Lineage = lineage.Lineage
		if lineage.Lineage.IsSpecies() {
			return nil
		}

		parent, err := o.contentRepo.GetLineage(gctx, contentrepo.GetInput{ID: lineage.Lineage.ParentID})
		if err != nil {
			return errors.Wrapf(err, "failed to get parent lineage %s", lineage.Lineage.ParentID)
		}
		calc.ParentLineage = parent.Lineage
		return nil
	})

	if char.NatureID != "" {
		g.Go(func() error {
			nature, err := o.contentRepo.GetNature(gctx, contentrepo.GetInput{ID: char.NatureID})
			if err != nil {
				return errors.Wrapf(err, "failed to get nature %s", char.NatureID)
			}
			calc.Nature = nature.Nature
			return nil
		})
	}

	g.Go(func() error {
		if len(char.TalentIDs) == 0 {
			calc.Talents = []*world.Talent{}
			return nil
		}
		talents, err := o.contentRepo.ListTalents(gctx, contentrepo.ListInput{IDs: char.TalentIDs})
		if err != nil {
			return errors.Wrap(err, "failed to list talents")
		}
		calc.Talents = talents.Talents
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	sheet, err := o.engine.CalculateSheet(ctx, calc)
	if err != nil {
		return nil, errors.Wrap(err, "failed to calculate sheet")
	}

	return &GetCharacterOutput{
		Character: char,
		Sheet:     sheet.Sheet,
	}, nil
}

// ListCharacters lists a player's characters, or a world's when no player is given
func (o *Orchestrator) ListCharacters(ctx context.Context, input *ListCharactersInput) (*ListCharactersOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	var (
		out *characterrepo.ListOutput
		err error
	)
	switch {
	case input.PlayerID != "":
		out, err = o.characterRepo.ListByPlayerID(ctx, characterrepo.ListByPlayerIDInput{PlayerID: input.PlayerID})
	case input.WorldID != "":
		out, err = o.characterRepo.ListByWorldID(ctx, characterrepo.ListByWorldIDInput{WorldID: input.WorldID})
	default:
		return nil, errors.InvalidArgument("player ID or world ID is required")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to list characters")
	}

	return &ListCharactersOutput{Characters: out.Characters}, nil
}

// DeleteCharacter deletes a character and its progression history
func (o *Orchestrator) DeleteCharacter(
	ctx context.Context,
	input *DeleteCharacterInput,
) (*DeleteCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument("character ID is required")
	}

	if _, err := o.characterRepo.Delete(ctx, characterrepo.DeleteInput{ID: input.CharacterID}); err != nil {
		return nil, errors.Wrap(err, "failed to delete character")
	}

	if _, err := o.progressionRepo.Delete(ctx, progressionrepo.DeleteInput{CharacterID: input.CharacterID}); err != nil {
		o.logger.Error("failed to delete progression",
			zap.String("character_id", input.CharacterID),
			zap.Error(err))
	}

	o.logger.Info("character deleted", zap.String("character_id", input.CharacterID))

	return &DeleteCharacterOutput{}, nil
}
