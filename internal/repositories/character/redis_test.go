package character_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-worlds/internal/entities/world"
	"github.com/KirkDiggler/rpg-worlds/internal/errors"
	redisclient "github.com/KirkDiggler/rpg-worlds/internal/redis"
	"github.com/KirkDiggler/rpg-worlds/internal/repositories/character"
	"github.com/KirkDiggler/rpg-worlds/internal/testutils"
)

const (
	testCharID   = "char_123"
	testPlayerID = "player_456"
	testWorldID  = "world_ash"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	client  redisclient.Client
	cleanup func()
	repo    character.Repository
	ctx     context.Context
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	s.client, s.cleanup = testutils.CreateTestRedisClient(s.T())

	repo, err := character.NewRedis(&character.RedisConfig{Client: s.client})
	s.Require().NoError(err)
	s.repo = repo
	s.ctx = context.Background()
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.cleanup()
}

func (s *RedisRepositoryTestSuite) newCharacter(id, playerID string) *world.Character {
	return &world.Character{
		ID:        id,
		WorldID:   testWorldID,
		PlayerID:  playerID,
		Name:      "Ysolde",
		Level:     1,
		LineageID: "lin_north",
		BaseAttributes: world.BaseAttributes{
			Best:  world.AttributeVigor,
			Worst: world.AttributeIntellect,
		},
		TalentIDs: []string{"tal_1"},
	}
}

func (s *RedisRepositoryTestSuite) TestCreate() {
	s.Run("successful create", func() {
		out, err := s.repo.Create(s.ctx, character.CreateInput{Character: s.newCharacter(testCharID, testPlayerID)})
		s.Require().NoError(err)
		s.Equal(testCharID, out.Character.ID)

		got, err := s.repo.Get(s.ctx, character.GetInput{ID: testCharID})
		s.Require().NoError(err)
		s.Equal(world.AttributeVigor, got.Character.BaseAttributes.Best)
		s.Equal([]string{"tal_1"}, got.Character.TalentIDs)
	})

	s.Run("error when character already exists", func() {
		_, err := s.repo.Create(s.ctx, character.CreateInput{Character: s.newCharacter(testCharID, testPlayerID)})
		s.True(errors.IsAlreadyExists(err))
	})

	s.Run("validation errors", func() {
		testCases := []struct {
			name      string
			character *world.Character
		}{
			{name: "nil character", character: nil},
			{name: "empty ID", character: &world.Character{WorldID: testWorldID}},
			{name: "empty world", character: &world.Character{ID: "char_x"}},
		}
		for _, tc := range testCases {
			_, err := s.repo.Create(s.ctx, character.CreateInput{Character: tc.character})
			s.True(errors.IsInvalidArgument(err), tc.name)
		}
	})
}

func (s *RedisRepositoryTestSuite) TestGetNotFound() {
	_, err := s.repo.Get(s.ctx, character.GetInput{ID: "char_missing"})
	s.True(errors.IsNotFound(err))

	_, err = s.repo.Get(s.ctx, character.GetInput{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *RedisRepositoryTestSuite) TestUpdateMovesPlayerIndex() {
	c := s.newCharacter(testCharID, testPlayerID)
	_, err := s.repo.Create(s.ctx, character.CreateInput{Character: c})
	s.Require().NoError(err)

	c.PlayerID = "player_new"
	c.Level = 2
	_, err = s.repo.Update(s.ctx, character.UpdateInput{Character: c})
	s.Require().NoError(err)

	old, err := s.repo.ListByPlayerID(s.ctx, character.ListByPlayerIDInput{PlayerID: testPlayerID})
	s.Require().NoError(err)
	s.Empty(old.Characters)

	moved, err := s.repo.ListByPlayerID(s.ctx, character.ListByPlayerIDInput{PlayerID: "player_new"})
	s.Require().NoError(err)
	s.Require().Len(moved.Characters, 1)
	s.Equal(int32(2), moved.Characters[0].Level)
}

func (s *RedisRepositoryTestSuite) TestUpdateMissing() {
	_, err := s.repo.Update(s.ctx, character.UpdateInput{Character: s.newCharacter("char_missing", testPlayerID)})
	s.True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestDelete() {
	_, err := s.repo.Create(s.ctx, character.CreateInput{Character: s.newCharacter(testCharID, testPlayerID)})
	s.Require().NoError(err)

	_, err = s.repo.Delete(s.ctx, character.DeleteInput{ID: testCharID})
	s.Require().NoError(err)

	_, err = s.repo.Get(s.ctx, character.GetInput{ID: testCharID})
	s.True(errors.IsNotFound(err))

	byWorld, err := s.repo.ListByWorldID(s.ctx, character.ListByWorldIDInput{WorldID: testWorldID})
	s.Require().NoError(err)
	s.Empty(byWorld.Characters)

	_, err = s.repo.Delete(s.ctx, character.DeleteInput{ID: testCharID})
	s.True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestListByWorldIDSorted() {
	for _, id := range []string{"char_c", "char_a", "char_b"} {
		_, err := s.repo.Create(s.ctx, character.CreateInput{Character: s.newCharacter(id, "")})
		s.Require().NoError(err)
	}

	out, err := s.repo.ListByWorldID(s.ctx, character.ListByWorldIDInput{WorldID: testWorldID})
	s.Require().NoError(err)
	s.Require().Len(out.Characters, 3)
	s.Equal("char_a", out.Characters[0].ID)
	s.Equal("char_b", out.Characters[1].ID)
	s.Equal("char_c", out.Characters[2].ID)

	_, err = s.repo.ListByWorldID(s.ctx, character.ListByWorldIDInput{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *RedisRepositoryTestSuite) TestIndexCleanup() {
	_, err := s.repo.Create(s.ctx, character.CreateInput{Character: s.newCharacter(testCharID, testPlayerID)})
	s.Require().NoError(err)

	// Remove the record but leave the index entry behind
	s.Require().NoError(s.client.Del(s.ctx, "character:"+testCharID).Err())

	out, err := s.repo.ListByPlayerID(s.ctx, character.ListByPlayerIDInput{PlayerID: testPlayerID})
	s.Require().NoError(err)
	s.Empty(out.Characters)

	members, err := s.client.SMembers(s.ctx, "character:player:"+testPlayerID).Result()
	s.Require().NoError(err)
	s.Empty(members)
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}
