package character_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-worlds/internal/engine"
	enginemock "github.com/KirkDiggler/rpg-worlds/internal/engine/mock"
	"github.com/KirkDiggler/rpg-worlds/internal/entities/world"
	"github.com/KirkDiggler/rpg-worlds/internal/errors"
	"github.com/KirkDiggler/rpg-worlds/internal/orchestrators/character"
	"github.com/KirkDiggler/rpg-worlds/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-worlds/internal/pkg/idgen"
	characterrepo "github.com/KirkDiggler/rpg-worlds/internal/repositories/character"
	charactermock "github.com/KirkDiggler/rpg-worlds/internal/repositories/character/mock"
	contentrepo "github.com/KirkDiggler/rpg-worlds/internal/repositories/content"
	contentmock "github.com/KirkDiggler/rpg-worlds/internal/repositories/content/mock"
	progressionrepo "github.com/KirkDiggler/rpg-worlds/internal/repositories/progression"
	progressionmock "github.com/KirkDiggler/rpg-worlds/internal/repositories/progression/mock"
	"github.com/KirkDiggler/rpg-worlds/internal/resolvers"
	"github.com/KirkDiggler/rpg-worlds/internal/testutils"
	"github.com/KirkDiggler/rpg-worlds/internal/testutils/builders"
	"github.com/KirkDiggler/rpg-worlds/internal/testutils/mocks"
)

var testNow = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

type OrchestratorTestSuite struct {
	suite.Suite
	ctrl                *gomock.Controller
	mockContentRepo     *contentmock.MockRepository
	mockCharRepo        *charactermock.MockRepository
	mockProgressionRepo *progressionmock.MockRepository
	mockEngine          *enginemock.MockEngine
	orchestrator        *character.Orchestrator
	world               *testutils.World
	ctx                 context.Context
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockContentRepo = contentmock.NewMockRepository(s.ctrl)
	s.mockCharRepo = charactermock.NewMockRepository(s.ctrl)
	s.mockProgressionRepo = progressionmock.NewMockRepository(s.ctrl)
	s.mockEngine = enginemock.NewMockEngine(s.ctrl)
	s.world = testutils.NewWorld()
	s.ctx = context.Background()

	mocks.ExpectWorldContent(s.mockContentRepo, s.world)
	s.orchestrator = s.newOrchestrator(s.mockContentRepo)
}

func (s *OrchestratorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *OrchestratorTestSuite) newOrchestrator(contentRepo contentrepo.Repository) *character.Orchestrator {
	orchestrator, err := character.New(&character.Config{
		ContentRepo:     contentRepo,
		CharacterRepo:   s.mockCharRepo,
		ProgressionRepo: s.mockProgressionRepo,
		Engine:          s.mockEngine,
		IDGenerator:     idgen.NewSequential("char"),
		Clock:           &clock.Fixed{At: testNow},
	})
	s.Require().NoError(err)
	return orchestrator
}

// validRequest is a Northman warrior-scholar that every resolver accepts
func (s *OrchestratorTestSuite) validRequest() *character.BuildRequest {
	w := s.world
	return &character.BuildRequest{
		WorldID:     testutils.TestWorldID,
		PlayerID:    testutils.TestPlayerID,
		Name:        testutils.TestCharacterName,
		LineageID:   w.Northman.ID,
		Physical:    world.PhysicalStats{Age: 24, Height: 180, Weight: 80},
		LanguageIDs: []string{w.Elder.ID, w.Trade.ID},

		PersonalityID:    w.Stoic.ID,
		NatureID:         w.Stubborn.ID,
		CustomizationIDs: []string{w.Farsight.ID, w.Limp.ID},
		AspectIDs:        []string{w.Warrior.ID, w.Scholar.ID},
		BaseAttributes: resolvers.BaseAttributesSelection{
			Best:     world.AttributeCoordination,
			Worst:    world.AttributeSensitivity,
			Optional: []world.Attribute{world.AttributeAgility},
			Extra:    []world.Attribute{world.AttributeAgility, world.AttributeSpirit},
		},
		CasteID:              w.Smith.ID,
		EducationID:          w.Scribe.ID,
		TalentIDs:            []string{w.Shadow.ID, w.Blade.ID},
		StartingWealthItemID: w.Coin.ID,
	}
}

func (s *OrchestratorTestSuite) requireRejection(err error, reason errors.Reason, property string) *errors.Rejection {
	s.Require().Error(err)
	rejection, ok := errors.GetRejection(err)
	s.Require().True(ok, "expected a rejection, got %v", err)
	s.Equal(reason, rejection.Reason)
	s.Equal(property, rejection.Property)
	s.Equal(testutils.TestWorldID, rejection.WorldID)
	return rejection
}

func (s *OrchestratorTestSuite) TestNew_MissingDependencies() {
	_, err := character.New(&character.Config{})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))

	_, err = character.New(nil)
	s.Require().Error(err)
}

func (s *OrchestratorTestSuite) TestAssemble_ValidBuild() {
	out, err := s.orchestrator.Assemble(s.ctx, &character.AssembleInput{Request: s.validRequest()})
	s.Require().NoError(err)

	s.Equal(s.world.Northman, out.Build.Lineage)
	s.Equal(s.world.Human, out.Build.ParentLineage)
	s.Equal(s.world.Stubborn, out.Build.Nature)

	c := out.Character
	s.Empty(c.ID, "assemble does not assign an ID")
	s.Equal(int32(1), c.Level)
	s.Equal(s.world.Northman.ID, c.LineageID)
	s.Equal(s.world.Stubborn.ID, c.NatureID)
	s.Equal(s.world.Stoic.ID, c.PersonalityID)
	s.Equal(s.world.Smith.ID, c.CasteID)
	s.Equal(s.world.Scribe.ID, c.EducationID)
	s.Equal(int32(24), c.Physical.Age)
	s.Equal([]string{s.world.Warrior.ID, s.world.Scholar.ID}, c.AspectIDs)
	s.Equal([]string{s.world.Elder.ID, s.world.Trade.ID}, c.LanguageIDs)
	s.Equal([]string{s.world.Farsight.ID, s.world.Limp.ID}, c.CustomizationIDs)
	s.Equal([]string{s.world.Shadow.ID, s.world.Blade.ID}, c.TalentIDs)
	s.Equal(s.world.Coin.ID, c.StartingWealth.ItemID)

	s.Equal(world.AttributeCoordination, c.BaseAttributes.Best)
	s.Equal(world.AttributeSensitivity, c.BaseAttributes.Worst)
	s.ElementsMatch(
		[]world.Attribute{world.AttributeIntellect, world.AttributeCoordination},
		c.BaseAttributes.Mandatory)
	s.Equal([]world.Attribute{world.AttributeAgility, world.AttributeSpirit}, c.BaseAttributes.Extra)
}

func (s *OrchestratorTestSuite) TestAssemble_WithoutNature() {
	req := s.validRequest()
	req.NatureID = ""

	out, err := s.orchestrator.Assemble(s.ctx, &character.AssembleInput{Request: req})
	s.Require().NoError(err)
	s.Nil(out.Build.Nature)
	s.Empty(out.Character.NatureID)
}

func (s *OrchestratorTestSuite) TestAssemble_FirstRejectionWins() {
	testCases := []struct {
		name     string
		modify   func(req *character.BuildRequest)
		reason   errors.Reason
		property string
	}{
		{
			name: "lineage before starting wealth",
			modify: func(req *character.BuildRequest) {
				req.LineageID = "lin_missing"
				req.StartingWealthItemID = s.world.Sword.ID
			},
			reason:   errors.ReasonNotFound,
			property: resolvers.PropertyLineageID,
		},
		{
			name: "species with nations",
			modify: func(req *character.BuildRequest) {
				req.LineageID = s.world.Human.ID
			},
			reason:   errors.ReasonInvalidLineageChoice,
			property: resolvers.PropertyLineageID,
		},
		{
			name: "aspects before base attributes",
			modify: func(req *character.BuildRequest) {
				req.AspectIDs = []string{s.world.Warrior.ID, "asp_missing"}
				req.BaseAttributes.Best = world.AttributeSpirit
			},
			reason:   errors.ReasonNotFound,
			property: resolvers.PropertyAspectIDs,
		},
		{
			name: "base attributes before languages",
			modify: func(req *character.BuildRequest) {
				req.BaseAttributes.Worst = world.AttributeSpirit
				req.LanguageIDs = []string{s.world.Common.ID}
			},
			reason:   errors.ReasonSelectionMismatch,
			property: resolvers.PropertyWorst,
		},
		{
			name: "languages before personality",
			modify: func(req *character.BuildRequest) {
				req.LanguageIDs = []string{s.world.Elder.ID}
				req.PersonalityID = "per_missing"
			},
			reason:   errors.ReasonSelectionMismatch,
			property: resolvers.PropertyLanguageIDs,
		},
		{
			name: "personality before caste",
			modify: func(req *character.BuildRequest) {
				req.PersonalityID = "per_missing"
				req.CasteID = "cas_missing"
			},
			reason:   errors.ReasonNotFound,
			property: resolvers.PropertyPersonalityID,
		},
		{
			name: "nature before customizations",
			modify: func(req *character.BuildRequest) {
				req.NatureID = "nat_missing"
				req.CustomizationIDs = []string{s.world.Farsight.ID}
			},
			reason:   errors.ReasonNotFound,
			property: resolvers.PropertyNatureID,
		},
		{
			name: "customizations before talents",
			modify: func(req *character.BuildRequest) {
				req.CustomizationIDs = []string{s.world.Luck.ID, s.world.Limp.ID}
				req.TalentIDs = []string{s.world.Hammer.ID}
			},
			reason:   errors.ReasonConflictingSelection,
			property: resolvers.PropertyCustomizationIDs,
		},
		{
			name: "caste before education",
			modify: func(req *character.BuildRequest) {
				req.CasteID = "cas_missing"
				req.EducationID = "edu_missing"
			},
			reason:   errors.ReasonNotFound,
			property: resolvers.PropertyCasteID,
		},
		{
			name: "caste without a skill",
			modify: func(req *character.BuildRequest) {
				req.CasteID = s.world.Outcast.ID
			},
			reason:   errors.ReasonInvalidContentShape,
			property: resolvers.PropertyCasteID,
		},
		{
			name: "talents before starting wealth",
			modify: func(req *character.BuildRequest) {
				req.TalentIDs = []string{s.world.Hammer.ID}
				req.StartingWealthItemID = s.world.GoldBar.ID
			},
			reason:   errors.ReasonConflictingSelection,
			property: resolvers.PropertyTalentIDs,
		},
		{
			name: "starting wealth must be money of unit value",
			modify: func(req *character.BuildRequest) {
				req.StartingWealthItemID = s.world.GoldBar.ID
			},
			reason:   errors.ReasonInvalidContentShape,
			property: resolvers.PropertyStartingWealth,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			req := s.validRequest()
			tc.modify(req)

			_, err := s.orchestrator.Assemble(s.ctx, &character.AssembleInput{Request: req})
			s.requireRejection(err, tc.reason, tc.property)
		})
	}
}

func (s *OrchestratorTestSuite) TestAssemble_LookupFault() {
	faulty := contentmock.NewMockRepository(s.ctrl)
	faulty.EXPECT().
		GetCaste(gomock.Any(), gomock.Any()).
		Return(nil, errors.Internal("redis unavailable")).
		AnyTimes()
	mocks.ExpectWorldContent(faulty, s.world)

	req := s.validRequest()
	req.LineageID = "lin_missing"

	_, err := s.newOrchestrator(faulty).Assemble(s.ctx, &character.AssembleInput{Request: req})
	s.Require().Error(err)
	s.True(errors.IsInternal(err))
	s.False(errors.IsRejection(err), "a lookup fault is never reported as a rejection")
}

func (s *OrchestratorTestSuite) TestAssemble_Canceled() {
	ctx, cancel := context.WithCancel(s.ctx)
	cancel()

	_, err := s.orchestrator.Assemble(ctx, &character.AssembleInput{Request: s.validRequest()})
	s.Require().Error(err)
	s.Equal(errors.CodeCanceled, errors.GetCode(err))
}

func (s *OrchestratorTestSuite) TestAssemble_InvalidInput() {
	_, err := s.orchestrator.Assemble(s.ctx, nil)
	s.True(errors.IsInvalidArgument(err))

	req := s.validRequest()
	req.WorldID = ""
	_, err = s.orchestrator.Assemble(s.ctx, &character.AssembleInput{Request: req})
	s.True(errors.IsInvalidArgument(err))
	s.False(errors.IsRejection(err))
}

func (s *OrchestratorTestSuite) TestValidateCharacter() {
	s.Run("valid build", func() {
		out, err := s.orchestrator.ValidateCharacter(s.ctx, &character.ValidateCharacterInput{
			Request: s.validRequest(),
		})
		s.Require().NoError(err)
		s.True(out.IsValid)
		s.Nil(out.Rejection)
		s.NotNil(out.Build)
	})

	s.Run("rejected build is reported, not returned", func() {
		req := s.validRequest()
		req.TalentIDs = []string{"tal_missing", "tal_gone"}

		out, err := s.orchestrator.ValidateCharacter(s.ctx, &character.ValidateCharacterInput{Request: req})
		s.Require().NoError(err)
		s.False(out.IsValid)
		s.Require().NotNil(out.Rejection)
		s.Equal(errors.ReasonNotFound, out.Rejection.Reason)
		s.Equal(resolvers.PropertyTalentIDs, out.Rejection.Property)
		s.Equal([]string{"tal_gone", "tal_missing"}, out.Rejection.Values)
		s.NotEmpty(out.Message)
	})
}

func (s *OrchestratorTestSuite) TestCreateCharacter_Success() {
	mocks.ExpectCharacterCreate(s.ctx, s.mockCharRepo)

	out, err := s.orchestrator.CreateCharacter(s.ctx, &character.CreateCharacterInput{Request: s.validRequest()})
	s.Require().NoError(err)
	s.Equal("char_1", out.Character.ID)
	s.Equal(testNow.Unix(), out.Character.CreatedAt)
	s.Equal(testNow.Unix(), out.Character.UpdatedAt)
	s.Equal(int32(1), out.Character.Level)
	s.Equal(testutils.TestPlayerID, out.Character.PlayerID)
}

func (s *OrchestratorTestSuite) TestCreateCharacter_ValidationErrors() {
	testCases := []struct {
		name   string
		modify func(req *character.BuildRequest)
	}{
		{name: "missing name", modify: func(req *character.BuildRequest) { req.Name = "  " }},
		{name: "missing player", modify: func(req *character.BuildRequest) { req.PlayerID = "" }},
		{name: "missing world", modify: func(req *character.BuildRequest) { req.WorldID = "" }},
		{name: "name too long", modify: func(req *character.BuildRequest) {
			req.Name = strings.Repeat("a", 65)
		}},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			req := s.validRequest()
			tc.modify(req)

			_, err := s.orchestrator.CreateCharacter(s.ctx, &character.CreateCharacterInput{Request: req})
			s.Require().Error(err)
			s.True(errors.IsInvalidArgument(err))
		})
	}
}

func (s *OrchestratorTestSuite) TestCreateCharacter_RejectedBuildIsNotPersisted() {
	// no Create expectation: a call would fail the test
	req := s.validRequest()
	req.CustomizationIDs = []string{s.world.Farsight.ID}

	_, err := s.orchestrator.CreateCharacter(s.ctx, &character.CreateCharacterInput{Request: req})
	s.requireRejection(err, errors.ReasonImbalancedSelection, resolvers.PropertyCustomizationIDs)
}

func (s *OrchestratorTestSuite) TestCreateCharacter_RepositoryError() {
	s.mockCharRepo.EXPECT().
		Create(s.ctx, gomock.Any()).
		Return(nil, errors.Internal("write failed"))

	_, err := s.orchestrator.CreateCharacter(s.ctx, &character.CreateCharacterInput{Request: s.validRequest()})
	s.Require().Error(err)
	s.True(errors.IsInternal(err))
}

func (s *OrchestratorTestSuite) TestGetCharacter_Success() {
	c := builders.NewCharacterBuilder().
		WithLineage(s.world.Northman.ID).
		WithNature(s.world.Stubborn.ID).
		WithTalents(s.world.Shadow.ID, s.world.Blade.ID).
		Build()
	history := &progressionrepo.GetOutput{
		Bonuses:    []*world.Bonus{{ID: "b1", Category: world.BonusCategorySkill, Target: "Stealth", Value: 1}},
		LevelUps:   []*world.LevelUp{{Level: 2, Attribute: world.AttributeVigor}},
		SkillRanks: []*world.SkillRank{{Skill: world.SkillStealth, Rank: 2}},
	}
	sheet := &world.Sheet{Speeds: map[world.Speed]int32{world.SpeedWalk: 6}}

	mocks.ExpectCharacterGet(s.ctx, s.mockCharRepo, c.ID, c, nil)
	s.mockProgressionRepo.EXPECT().
		Get(gomock.Any(), progressionrepo.GetInput{CharacterID: c.ID}).
		Return(history, nil)
	s.mockEngine.EXPECT().
		CalculateSheet(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *engine.CalculateSheetInput) (*engine.CalculateSheetOutput, error) {
			s.Equal(c, input.Character)
			s.Equal(s.world.Northman, input.Lineage)
			s.Equal(s.world.Human, input.ParentLineage)
			s.Equal(s.world.Stubborn, input.Nature)
			s.ElementsMatch([]*world.Talent{s.world.Shadow, s.world.Blade}, input.Talents)
			s.Equal(history.Bonuses, input.Bonuses)
			s.Equal(history.LevelUps, input.LevelUps)
			s.Equal(history.SkillRanks, input.SkillRanks)
			return &engine.CalculateSheetOutput{Sheet: sheet}, nil
		})

	out, err := s.orchestrator.GetCharacter(s.ctx, &character.GetCharacterInput{CharacterID: c.ID})
	s.Require().NoError(err)
	s.Equal(c, out.Character)
	s.Equal(sheet, out.Sheet)
}

func (s *OrchestratorTestSuite) TestGetCharacter_SpeciesWithoutNature() {
	c := builders.NewCharacterBuilder().WithLineage(s.world.Hillfolk.ID).Build()

	mocks.ExpectCharacterGet(s.ctx, s.mockCharRepo, c.ID, c, nil)
	s.mockProgressionRepo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(&progressionrepo.GetOutput{}, nil)
	s.mockEngine.EXPECT().
		CalculateSheet(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *engine.CalculateSheetInput) (*engine.CalculateSheetOutput, error) {
			s.Equal(s.world.Hillfolk, input.Lineage)
			s.Nil(input.ParentLineage)
			s.Nil(input.Nature)
			s.Empty(input.Talents)
			return &engine.CalculateSheetOutput{Sheet: &world.Sheet{}}, nil
		})

	_, err := s.orchestrator.GetCharacter(s.ctx, &character.GetCharacterInput{CharacterID: c.ID})
	s.Require().NoError(err)
}

func (s *OrchestratorTestSuite) TestGetCharacter_Errors() {
	s.Run("missing ID", func() {
		_, err := s.orchestrator.GetCharacter(s.ctx, &character.GetCharacterInput{})
		s.True(errors.IsInvalidArgument(err))
	})

	s.Run("not found", func() {
		mocks.ExpectCharacterGet(s.ctx, s.mockCharRepo, "char-missing", nil, errors.NotFound("character not found"))

		_, err := s.orchestrator.GetCharacter(s.ctx, &character.GetCharacterInput{CharacterID: "char-missing"})
		s.True(errors.IsNotFound(err))
	})

	s.Run("progression failure", func() {
		c := builders.NewCharacterBuilder().WithLineage(s.world.Hillfolk.ID).Build()
		mocks.ExpectCharacterGet(s.ctx, s.mockCharRepo, c.ID, c, nil)
		s.mockProgressionRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(nil, errors.Internal("read failed"))

		_, err := s.orchestrator.GetCharacter(s.ctx, &character.GetCharacterInput{CharacterID: c.ID})
		s.True(errors.IsInternal(err))
	})
}

func (s *OrchestratorTestSuite) TestListCharacters() {
	c := builders.NewCharacterBuilder().Build()

	s.Run("by player", func() {
		s.mockCharRepo.EXPECT().
			ListByPlayerID(s.ctx, characterrepo.ListByPlayerIDInput{PlayerID: c.PlayerID}).
			Return(&characterrepo.ListOutput{Characters: []*world.Character{c}}, nil)

		out, err := s.orchestrator.ListCharacters(s.ctx, &character.ListCharactersInput{PlayerID: c.PlayerID})
		s.Require().NoError(err)
		s.Len(out.Characters, 1)
	})

	s.Run("by world", func() {
		s.mockCharRepo.EXPECT().
			ListByWorldID(s.ctx, characterrepo.ListByWorldIDInput{WorldID: c.WorldID}).
			Return(&characterrepo.ListOutput{Characters: []*world.Character{}}, nil)

		out, err := s.orchestrator.ListCharacters(s.ctx, &character.ListCharactersInput{WorldID: c.WorldID})
		s.Require().NoError(err)
		s.Empty(out.Characters)
	})

	s.Run("no filter", func() {
		_, err := s.orchestrator.ListCharacters(s.ctx, &character.ListCharactersInput{})
		s.True(errors.IsInvalidArgument(err))
	})
}

func (s *OrchestratorTestSuite) TestDeleteCharacter() {
	s.mockCharRepo.EXPECT().
		Delete(s.ctx, characterrepo.DeleteInput{ID: "char-1"}).
		Return(&characterrepo.DeleteOutput{}, nil)
	s.mockProgressionRepo.EXPECT().
		Delete(s.ctx, progressionrepo.DeleteInput{CharacterID: "char-1"}).
		Return(&progressionrepo.DeleteOutput{}, nil)

	_, err := s.orchestrator.DeleteCharacter(s.ctx, &character.DeleteCharacterInput{CharacterID: "char-1"})
	s.Require().NoError(err)
}

func (s *OrchestratorTestSuite) TestAddBonus_CanonicalTarget() {
	c := builders.NewCharacterBuilder().Build()
	mocks.ExpectCharacterGet(s.ctx, s.mockCharRepo, c.ID, c, nil)
	s.mockProgressionRepo.EXPECT().
		AppendBonus(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input progressionrepo.AppendBonusInput) (*progressionrepo.AppendBonusOutput, error) {
			s.Equal(c.ID, input.CharacterID)
			s.Equal("Stealth", input.Bonus.Target)
			return &progressionrepo.AppendBonusOutput{Count: 1}, nil
		})

	out, err := s.orchestrator.AddBonus(s.ctx, &character.AddBonusInput{
		CharacterID: c.ID,
		Category:    "skill",
		Target:      " stealth ",
		Value:       2,
		IsTemporary: true,
		Source:      "potion",
	})
	s.Require().NoError(err)
	s.Equal(world.BonusCategorySkill, out.Bonus.Category)
	s.Equal("Stealth", out.Bonus.Target)
	s.Equal("char_1", out.Bonus.ID)
	s.True(out.Bonus.IsTemporary)
	s.Equal(int64(1), out.Count)
}

func (s *OrchestratorTestSuite) TestAddBonus_Rejected() {
	s.Run("unknown target suggests the nearest", func() {
		_, err := s.orchestrator.AddBonus(s.ctx, &character.AddBonusInput{
			CharacterID: "char-1",
			Category:    "Skill",
			Target:      "Stelth",
			Value:       1,
		})
		s.Require().Error(err)
		s.True(errors.IsInvalidArgument(err))
		s.Equal("Stealth", errors.GetMeta(err)[character.MetaKeySuggestion])
	})

	s.Run("target of another category", func() {
		_, err := s.orchestrator.AddBonus(s.ctx, &character.AddBonusInput{
			CharacterID: "char-1",
			Category:    "Speed",
			Target:      "Agility",
			Value:       1,
		})
		s.True(errors.IsInvalidArgument(err))
	})

	s.Run("unknown category", func() {
		_, err := s.orchestrator.AddBonus(s.ctx, &character.AddBonusInput{
			CharacterID: "char-1",
			Category:    "Luck",
			Target:      "Agility",
		})
		s.True(errors.IsInvalidArgument(err))
	})

	s.Run("unknown character", func() {
		mocks.ExpectCharacterGet(s.ctx, s.mockCharRepo, "char-missing", nil, errors.NotFound("character not found"))

		_, err := s.orchestrator.AddBonus(s.ctx, &character.AddBonusInput{
			CharacterID: "char-missing",
			Category:    "Attribute",
			Target:      "Agility",
			Value:       1,
		})
		s.True(errors.IsNotFound(err))
	})
}

func (s *OrchestratorTestSuite) TestLevelUp_Success() {
	c := builders.NewCharacterBuilder().WithLevel(2).Build()
	mocks.ExpectCharacterGet(s.ctx, s.mockCharRepo, c.ID, c, nil)
	s.mockProgressionRepo.EXPECT().
		AppendLevelUp(s.ctx, progressionrepo.AppendLevelUpInput{
			CharacterID: c.ID,
			LevelUp: &world.LevelUp{
				Level:     3,
				Attribute: world.AttributeSpirit,
				Statistics: map[world.Statistic]float64{
					world.StatisticPower:        0.5,
					world.StatisticConstitution: 3,
				},
				CreatedAt: testNow.Unix(),
			},
		}).
		Return(&progressionrepo.AppendLevelUpOutput{Count: 2}, nil)
	mocks.ExpectCharacterUpdate(s.ctx, s.mockCharRepo)

	out, err := s.orchestrator.LevelUp(s.ctx, &character.LevelUpInput{
		CharacterID: c.ID,
		Attribute:   "spirit",
		Statistics:  map[string]float64{"power": 0.5, "Constitution": 3},
	})
	s.Require().NoError(err)
	s.Equal(int32(3), out.Character.Level)
	s.Equal(testNow.Unix(), out.Character.UpdatedAt)
	s.Equal(int32(3), out.LevelUp.Level)
}

func (s *OrchestratorTestSuite) TestLevelUp_ValidationErrors() {
	testCases := []struct {
		name  string
		input *character.LevelUpInput
	}{
		{name: "nil input"},
		{name: "unknown attribute", input: &character.LevelUpInput{CharacterID: "char-1", Attribute: "Luck"}},
		{name: "unknown statistic", input: &character.LevelUpInput{
			CharacterID: "char-1",
			Attribute:   "Vigor",
			Statistics:  map[string]float64{"Mana": 1},
		}},
		{name: "missing character", input: &character.LevelUpInput{Attribute: "Vigor"}},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := s.orchestrator.LevelUp(s.ctx, tc.input)
			s.Require().Error(err)
			s.True(errors.IsInvalidArgument(err))
		})
	}
}

func (s *OrchestratorTestSuite) TestTrainSkill() {
	s.Run("success", func() {
		c := builders.NewCharacterBuilder().Build()
		mocks.ExpectCharacterGet(s.ctx, s.mockCharRepo, c.ID, c, nil)
		s.mockProgressionRepo.EXPECT().
			AppendSkillRank(s.ctx, progressionrepo.AppendSkillRankInput{
				CharacterID: c.ID,
				SkillRank:   &world.SkillRank{Skill: world.SkillMelee, Rank: 3, CreatedAt: testNow.Unix()},
			}).
			Return(&progressionrepo.AppendSkillRankOutput{Count: 1}, nil)

		out, err := s.orchestrator.TrainSkill(s.ctx, &character.TrainSkillInput{
			CharacterID: c.ID,
			Skill:       "melee",
			Rank:        3,
		})
		s.Require().NoError(err)
		s.Equal(world.SkillMelee, out.SkillRank.Skill)
	})

	s.Run("rank must be positive", func() {
		_, err := s.orchestrator.TrainSkill(s.ctx, &character.TrainSkillInput{
			CharacterID: "char-1",
			Skill:       "Melee",
		})
		s.True(errors.IsInvalidArgument(err))
	})

	s.Run("unknown skill", func() {
		_, err := s.orchestrator.TrainSkill(s.ctx, &character.TrainSkillInput{
			CharacterID: "char-1",
			Skill:       "Juggling",
			Rank:        1,
		})
		s.True(errors.IsInvalidArgument(err))
	})
}

func (s *OrchestratorTestSuite) TestRollAttributeScores() {
	scores := map[world.Attribute]int32{world.AttributeAgility: 12}
	s.mockEngine.EXPECT().
		RollAttributeScores(s.ctx, &engine.RollAttributeScoresInput{Method: engine.RollMethodStraight}).
		Return(&engine.RollAttributeScoresOutput{Scores: scores}, nil)

	out, err := s.orchestrator.RollAttributeScores(s.ctx, &character.RollAttributeScoresInput{
		Method: engine.RollMethodStraight,
	})
	s.Require().NoError(err)
	s.Equal(scores, out.Scores)
}

func TestOrchestratorSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}
