package main

import (
	"context"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/KirkDiggler/rpg-worlds/internal/engine"
	"github.com/KirkDiggler/rpg-worlds/internal/errors"
	"github.com/KirkDiggler/rpg-worlds/internal/orchestrators/character"
	contentrepo "github.com/KirkDiggler/rpg-worlds/internal/repositories/content"
)

var (
	// list flags
	listPlayerID string

	// bonus flags
	bonusCategory  string
	bonusTarget    string
	bonusValue     int32
	bonusTemporary bool
	bonusSource    string

	// level-up flags
	levelUpAttribute  string
	levelUpStatistics map[string]string

	// train flags
	trainSkill string
	trainRank  int32

	// roll flags
	rollMethod string
)

var seedCmd = &cobra.Command{
	Use:   "seed [world-file]",
	Short: "Store the content of a world file",
	Long: `Store every lineage, aspect, personality, nature, customization, caste,
education, talent, language and item of a JSON world file, replacing earlier versions.

  Example: rpg-worlds seed worlds/ashfall.json`,
	Args: cobra.ExactArgs(1),
	RunE: withApp(runSeed),
}

var createCmd = &cobra.Command{
	Use:   "create [build-file|-]",
	Short: "Create a character from a build file",
	Args:  cobra.ExactArgs(1),
	RunE:  withApp(runCreate),
}

var validateCmd = &cobra.Command{
	Use:   "validate [build-file|-]",
	Short: "Check a build file without storing anything",
	Args:  cobra.ExactArgs(1),
	RunE:  withApp(runValidate),
}

var sheetCmd = &cobra.Command{
	Use:   "sheet [character-id]",
	Short: "Show a character and its derived stat block",
	Args:  cobra.ExactArgs(1),
	RunE:  withApp(runSheet),
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List a player's characters, or the active world's",
	Args:  cobra.NoArgs,
	RunE:  withApp(runList),
}

var deleteCmd = &cobra.Command{
	Use:   "delete [character-id]",
	Short: "Delete a character and its progression",
	Args:  cobra.ExactArgs(1),
	RunE:  withApp(runDelete),
}

var bonusCmd = &cobra.Command{
	Use:   "bonus [character-id]",
	Short: "Grant a bonus to a character",
	Long: `Grant a bonus to an attribute, skill, speed or statistic.

  Example: rpg-worlds bonus char_123 --category skill --target stealth --value 2 --temporary`,
	Args: cobra.ExactArgs(1),
	RunE: withApp(runBonus),
}

var levelUpCmd = &cobra.Command{
	Use:   "level-up [character-id]",
	Short: "Raise a character's level",
	Long: `Raise a character's level, adding one to an attribute and recording
statistic deltas as given.

  Example: rpg-worlds level-up char_123 --attribute vigor --stat Constitution=3 --stat Power=0.5`,
	Args: cobra.ExactArgs(1),
	RunE: withApp(runLevelUp),
}

var trainCmd = &cobra.Command{
	Use:   "train [character-id]",
	Short: "Spend skill points on a skill",
	Args:  cobra.ExactArgs(1),
	RunE:  withApp(runTrain),
}

var rollCmd = &cobra.Command{
	Use:   "roll",
	Short: "Roll a raw score for every attribute",
	Args:  cobra.NoArgs,
	RunE:  withApp(runRoll),
}

func init() {
	listCmd.Flags().StringVar(&listPlayerID, "player", "", "player whose characters to list")

	bonusCmd.Flags().StringVar(&bonusCategory, "category", "", "Attribute, Skill, Speed or Statistic")
	bonusCmd.Flags().StringVar(&bonusTarget, "target", "", "name of the attribute, skill, speed or statistic")
	bonusCmd.Flags().Int32Var(&bonusValue, "value", 1, "bonus value, may be negative")
	bonusCmd.Flags().BoolVar(&bonusTemporary, "temporary", false, "bonus is temporary")
	bonusCmd.Flags().StringVar(&bonusSource, "source", "", "where the bonus comes from")
	_ = bonusCmd.MarkFlagRequired("category")
	_ = bonusCmd.MarkFlagRequired("target")

	levelUpCmd.Flags().StringVar(&levelUpAttribute, "attribute", "", "attribute that gains a point")
	levelUpCmd.Flags().StringToStringVar(&levelUpStatistics, "stat", nil, "statistic delta, as Name=value")
	_ = levelUpCmd.MarkFlagRequired("attribute")

	trainCmd.Flags().StringVar(&trainSkill, "skill", "", "skill to train")
	trainCmd.Flags().Int32Var(&trainRank, "rank", 1, "skill points to spend")
	_ = trainCmd.MarkFlagRequired("skill")

	rollCmd.Flags().StringVar(&rollMethod, "method", string(engine.RollMethodFourDropLowest),
		"4d6-drop-lowest or 3d6")
}

// withApp wires the app before running fn and closes it after
func withApp(fn func(cmd *cobra.Command, a *app, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.close()

		return fn(cmd, a, args)
	}
}

func runSeed(cmd *cobra.Command, a *app, args []string) error {
	data, err := readFile(args[0], cmd.InOrStdin())
	if err != nil {
		return err
	}

	seeded, err := seedWorld(cmd.Context(), a.contentRepo, data)
	if err != nil {
		return err
	}

	a.logger.Info("world seeded", zap.String("world_id", seeded.WorldID), zap.Int("entities", seeded.Count))
	return writeJSON(cmd.OutOrStdout(), seeded)
}

type seedResult struct {
	WorldID string `json:"world_id"`
	Count   int    `json:"count"`
}

func seedWorld(ctx context.Context, repo contentrepo.Repository, data []byte) (*seedResult, error) {
	worldID, entities, err := parseWorldFile(data)
	if err != nil {
		return nil, err
	}

	for _, entity := range entities {
		if _, err := repo.Put(ctx, contentrepo.PutInput{Entity: entity}); err != nil {
			return nil, errors.Wrapf(err, "failed to store %s %s", entity.GetType(), entity.GetID())
		}
	}

	return &seedResult{WorldID: worldID, Count: len(entities)}, nil
}

func loadBuild(cmd *cobra.Command, a *app, path string) (*character.BuildRequest, error) {
	worldID, err := a.requireWorld()
	if err != nil {
		return nil, err
	}
	data, err := readFile(path, cmd.InOrStdin())
	if err != nil {
		return nil, err
	}
	return parseBuildFile(data, worldID)
}

func runCreate(cmd *cobra.Command, a *app, args []string) error {
	req, err := loadBuild(cmd, a, args[0])
	if err != nil {
		return err
	}

	out, err := a.orchestrator.CreateCharacter(cmd.Context(), &character.CreateCharacterInput{Request: req})
	if err != nil {
		return err
	}
	return writeJSON(cmd.OutOrStdout(), out.Character)
}

func runValidate(cmd *cobra.Command, a *app, args []string) error {
	req, err := loadBuild(cmd, a, args[0])
	if err != nil {
		return err
	}

	out, err := a.orchestrator.ValidateCharacter(cmd.Context(), &character.ValidateCharacterInput{Request: req})
	if err != nil {
		return err
	}
	return writeJSON(cmd.OutOrStdout(), map[string]any{
		"valid":     out.IsValid,
		"message":   out.Message,
		"rejection": out.Rejection,
	})
}

func runSheet(cmd *cobra.Command, a *app, args []string) error {
	out, err := a.orchestrator.GetCharacter(cmd.Context(), &character.GetCharacterInput{CharacterID: args[0]})
	if err != nil {
		return err
	}
	return writeJSON(cmd.OutOrStdout(), map[string]any{
		"character": out.Character,
		"sheet":     out.Sheet,
	})
}

func runList(cmd *cobra.Command, a *app, _ []string) error {
	input := &character.ListCharactersInput{PlayerID: listPlayerID}
	if input.PlayerID == "" {
		worldID, err := a.requireWorld()
		if err != nil {
			return err
		}
		input.WorldID = worldID
	}

	out, err := a.orchestrator.ListCharacters(cmd.Context(), input)
	if err != nil {
		return err
	}
	return writeJSON(cmd.OutOrStdout(), out.Characters)
}

func runDelete(cmd *cobra.Command, a *app, args []string) error {
	if _, err := a.orchestrator.DeleteCharacter(cmd.Context(), &character.DeleteCharacterInput{
		CharacterID: args[0],
	}); err != nil {
		return err
	}
	return writeJSON(cmd.OutOrStdout(), map[string]string{"deleted": args[0]})
}

func runBonus(cmd *cobra.Command, a *app, args []string) error {
	out, err := a.orchestrator.AddBonus(cmd.Context(), &character.AddBonusInput{
		CharacterID: args[0],
		Category:    bonusCategory,
		Target:      bonusTarget,
		Value:       bonusValue,
		IsTemporary: bonusTemporary,
		Source:      bonusSource,
	})
	if err != nil {
		return err
	}
	return writeJSON(cmd.OutOrStdout(), out.Bonus)
}

func runLevelUp(cmd *cobra.Command, a *app, args []string) error {
	deltas, err := parseDeltas(levelUpStatistics)
	if err != nil {
		return err
	}

	out, err := a.orchestrator.LevelUp(cmd.Context(), &character.LevelUpInput{
		CharacterID: args[0],
		Attribute:   levelUpAttribute,
		Statistics:  deltas,
	})
	if err != nil {
		return err
	}
	return writeJSON(cmd.OutOrStdout(), map[string]any{
		"character": out.Character,
		"level_up":  out.LevelUp,
	})
}

func parseDeltas(raw map[string]string) (map[string]float64, error) {
	deltas := make(map[string]float64, len(raw))
	for name, text := range raw {
		value, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return nil, errors.InvalidArgumentf("statistic %s: %q is not a number", name, text)
		}
		deltas[name] = value
	}
	return deltas, nil
}

func runTrain(cmd *cobra.Command, a *app, args []string) error {
	out, err := a.orchestrator.TrainSkill(cmd.Context(), &character.TrainSkillInput{
		CharacterID: args[0],
		Skill:       trainSkill,
		Rank:        trainRank,
	})
	if err != nil {
		return err
	}
	return writeJSON(cmd.OutOrStdout(), out.SkillRank)
}

func runRoll(cmd *cobra.Command, a *app, _ []string) error {
	out, err := a.orchestrator.RollAttributeScores(cmd.Context(), &character.RollAttributeScoresInput{
		Method: engine.RollMethod(rollMethod),
	})
	if err != nil {
		return err
	}
	return writeJSON(cmd.OutOrStdout(), map[string]any{
		"method": rollMethod,
		"scores": out.Scores,
		"dice":   out.Dice,
	})
}
