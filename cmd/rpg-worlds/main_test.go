package main

import (
	"context"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/KirkDiggler/rpg-worlds/internal/config"
	"github.com/KirkDiggler/rpg-worlds/internal/entities/world"
	"github.com/KirkDiggler/rpg-worlds/internal/errors"
	"github.com/KirkDiggler/rpg-worlds/internal/orchestrators/character"
	"github.com/KirkDiggler/rpg-worlds/internal/testutils"
)

func readTestdata(t *testing.T, name string) []byte {
	t.Helper()
	data, err := os.ReadFile("testdata/" + name)
	require.NoError(t, err)
	return data
}

func TestParseWorldFile(t *testing.T) {
	worldID, entities, err := parseWorldFile(readTestdata(t, "ashfall.json"))
	require.NoError(t, err)

	assert.Equal(t, "world_ashfall", worldID)
	assert.Len(t, entities, 20)
	for _, entity := range entities {
		assert.Equal(t, worldID, entity.GetWorldID(), "%s %s", entity.GetType(), entity.GetID())
	}

	northman, ok := entities[1].(*world.Lineage)
	require.True(t, ok)
	assert.Equal(t, "lin_human", northman.ParentID)
	assert.Equal(t, int32(3), northman.SpeedValue(world.SpeedClimb))
}

func TestParseWorldFile_Errors(t *testing.T) {
	testCases := []struct {
		name string
		data string
	}{
		{name: "no world id", data: `{"lineages": []}`},
		{name: "unknown field", data: `{"world_id": "w", "spells": []}`},
		{name: "not JSON", data: `lineages:`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := parseWorldFile([]byte(tc.data))
			require.Error(t, err)
			assert.True(t, errors.IsInvalidArgument(err))
		})
	}
}

func TestParseWorldFile_KeepsExplicitWorld(t *testing.T) {
	_, entities, err := parseWorldFile([]byte(`{
		"world_id": "world_ashfall",
		"languages": [{"id": "lang_far", "world_id": "world_elsewhere", "name": "Far"}, null]
	}`))
	require.NoError(t, err)
	require.Len(t, entities, 1)
	assert.Equal(t, "world_elsewhere", entities[0].GetWorldID())
}

func TestParseBuildFile(t *testing.T) {
	req, err := parseBuildFile(readTestdata(t, "ysolde.json"), "world_ashfall")
	require.NoError(t, err)

	assert.Equal(t, "world_ashfall", req.WorldID)
	assert.Equal(t, "lin_northman", req.LineageID)
	assert.Equal(t, int32(24), req.Physical.Age)
	assert.Equal(t, world.AttributeCoordination, req.BaseAttributes.Best)
	assert.Equal(t, []world.Attribute{world.AttributeAgility, world.AttributeSpirit}, req.BaseAttributes.Extra)
	assert.Equal(t, "item_coin", req.StartingWealthItemID)
}

func TestParseDeltas(t *testing.T) {
	deltas, err := parseDeltas(map[string]string{"Power": "0.5", "Constitution": "3"})
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"Power": 0.5, "Constitution": 3}, deltas)

	_, err = parseDeltas(map[string]string{"Power": "half"})
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestNewLogger(t *testing.T) {
	logger, err := newLogger(&config.Config{LogLevel: "debug", LogJSON: true})
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(zap.DebugLevel))

	_, err = newLogger(&config.Config{LogLevel: "loud"})
	assert.Error(t, err)
}

func TestReadFile_Stdin(t *testing.T) {
	data, err := readFile("-", strings.NewReader(`{"world_id": "w"}`))
	require.NoError(t, err)
	assert.Equal(t, `{"world_id": "w"}`, string(data))

	_, err = readFile("testdata/missing.json", nil)
	assert.Error(t, err)
}

func TestSeedAndCreate(t *testing.T) {
	ctx := context.Background()
	client, cleanup := testutils.CreateTestRedisClient(t)
	defer cleanup()

	a, err := wire(&config.Config{WorldID: "world_ashfall"}, zap.NewNop(), client)
	require.NoError(t, err)

	seeded, err := seedWorld(ctx, a.contentRepo, readTestdata(t, "ashfall.json"))
	require.NoError(t, err)
	assert.Equal(t, 20, seeded.Count)

	worldID, err := a.requireWorld()
	require.NoError(t, err)
	req, err := parseBuildFile(readTestdata(t, "ysolde.json"), worldID)
	require.NoError(t, err)

	created, err := a.orchestrator.CreateCharacter(ctx, &character.CreateCharacterInput{Request: req})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(created.Character.ID, "char_"))

	got, err := a.orchestrator.GetCharacter(ctx, &character.GetCharacterInput{CharacterID: created.Character.ID})
	require.NoError(t, err)
	assert.Equal(t, int32(5), got.Sheet.Attributes[world.AttributeCoordination].Score)
	assert.Equal(t, int32(6), got.Sheet.Speeds[world.SpeedWalk])
}

func TestRequireWorld(t *testing.T) {
	a := &app{cfg: &config.Config{}}
	_, err := a.requireWorld()
	assert.True(t, errors.IsInvalidArgument(err))
}
