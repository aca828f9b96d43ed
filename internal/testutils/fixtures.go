package testutils

import (
	"github.com/KirkDiggler/rpg-worlds/internal/entities/world"
)

// Fixture world identifiers
const (
	TestWorldID    = "world_ashfall"
	ForeignWorldID = "world_elsewhere"
	TestPlayerID   = "player_test_001"

	// TestCharacterName is the default character name for test fixtures
	TestCharacterName = "Ysolde of the North"
)

// Attr returns a pointer to a, for optional attribute fields
func Attr(a world.Attribute) *world.Attribute {
	return &a
}

// SkillOf returns a pointer to s, for optional skill fields
func SkillOf(s world.Skill) *world.Skill {
	return &s
}

// World is a small but complete set of authored content.
//
// Humans have two nations, so the Human species itself cannot be chosen.
// Hillfolk are a species without nations. The personality and nature each
// grant a gift that a character cannot pick again.
type World struct {
	ID string

	Human     *world.Lineage
	Northman  *world.Lineage
	Southman  *world.Lineage
	Hillfolk  *world.Lineage
	Orphan    *world.Lineage // nation whose species was never authored
	Warrior   *world.Aspect
	Scholar   *world.Aspect
	Wanderer  *world.Aspect
	Stoic     *world.Personality
	Stubborn  *world.Nature
	Luck      *world.Customization
	IronSkin  *world.Customization
	Farsight  *world.Customization
	Limp      *world.Customization
	Fearful   *world.Customization
	Smith     *world.Caste
	Outcast   *world.Caste // no skill
	Scribe    *world.Education
	Forge     *world.Education // same skill as Smith
	Shadow    *world.Talent
	Blade     *world.Talent
	Hammer    *world.Talent // same skill as Smith
	Lore      *world.Talent // same skill as Scribe
	Knack     *world.Talent // no skill
	Common    *world.Language
	Northern  *world.Language
	Elder     *world.Language
	Trade     *world.Language
	Foreign   *world.Language // authored in another world
	Coin      *world.Item
	GoldBar   *world.Item
	Sword     *world.Item
}

// NewWorld builds the fixture world
func NewWorld() *World {
	w := &World{ID: TestWorldID}

	w.Human = &world.Lineage{
		ID: "lin_human", WorldID: w.ID, Name: "Human",
		Attributes: map[world.Attribute]int32{
			world.AttributeVigor:    1,
			world.AttributePresence: 1,
		},
		Speeds: map[world.Speed]int32{
			world.SpeedWalk: 6,
			world.SpeedSwim: 2,
		},
		ExtraAttributes: 1,
		Languages:       world.LineageLanguages{IDs: []string{"lang_common"}, Extra: 1},
	}
	w.Northman = &world.Lineage{
		ID: "lin_northman", WorldID: w.ID, Name: "Northman", ParentID: w.Human.ID,
		Attributes: map[world.Attribute]int32{
			world.AttributeAgility: 1,
			world.AttributeVigor:   0,
		},
		Speeds: map[world.Speed]int32{
			world.SpeedWalk:  5,
			world.SpeedClimb: 3,
		},
		ExtraAttributes: 1,
		Languages:       world.LineageLanguages{IDs: []string{"lang_northern"}, Extra: 1, Note: "one tongue of the coast"},
	}
	w.Southman = &world.Lineage{
		ID: "lin_southman", WorldID: w.ID, Name: "Southman", ParentID: w.Human.ID,
	}
	w.Hillfolk = &world.Lineage{
		ID: "lin_hillfolk", WorldID: w.ID, Name: "Hillfolk",
		Attributes: map[world.Attribute]int32{
			world.AttributeSpirit: 2,
			world.AttributeVigor:  -1,
		},
		Speeds:          map[world.Speed]int32{world.SpeedWalk: 4, world.SpeedBurrow: 1},
		ExtraAttributes: 2,
	}
	w.Orphan = &world.Lineage{
		ID: "lin_orphan", WorldID: w.ID, Name: "Orphan", ParentID: "lin_lost",
	}

	w.Warrior = &world.Aspect{
		ID: "asp_warrior", WorldID: w.ID, Name: "Warrior",
		Mandatory1: Attr(world.AttributeCoordination),
		Mandatory2: Attr(world.AttributeSensitivity),
		Optional1:  Attr(world.AttributeAgility),
		Optional2:  Attr(world.AttributeVigor),
		Skill1:     SkillOf(world.SkillMelee),
	}
	w.Scholar = &world.Aspect{
		ID: "asp_scholar", WorldID: w.ID, Name: "Scholar",
		Mandatory1: Attr(world.AttributeIntellect),
		Mandatory2: Attr(world.AttributeCoordination),
		Optional1:  Attr(world.AttributeSpirit),
		Skill1:     SkillOf(world.SkillKnowledge),
	}
	w.Wanderer = &world.Aspect{
		ID: "asp_wanderer", WorldID: w.ID, Name: "Wanderer",
		Mandatory1: Attr(world.AttributeVigor),
		Optional1:  Attr(world.AttributeAgility),
	}

	w.Luck = &world.Customization{ID: "cus_luck", WorldID: w.ID, Name: "Luck", Type: world.CustomizationGift}
	w.IronSkin = &world.Customization{ID: "cus_ironskin", WorldID: w.ID, Name: "Iron Skin", Type: world.CustomizationGift}
	w.Farsight = &world.Customization{ID: "cus_farsight", WorldID: w.ID, Name: "Farsight", Type: world.CustomizationGift}
	w.Limp = &world.Customization{ID: "cus_limp", WorldID: w.ID, Name: "Limp", Type: world.CustomizationDisability}
	w.Fearful = &world.Customization{
		ID: "cus_fearful", WorldID: w.ID, Name: "Fearful", Type: world.CustomizationDisability,
	}

	w.Stoic = &world.Personality{ID: "per_stoic", WorldID: w.ID, Name: "Stoic", GiftID: w.Luck.ID}
	w.Stubborn = &world.Nature{
		ID: "nat_stubborn", WorldID: w.ID, Name: "Stubborn",
		Attribute: Attr(world.AttributeVigor),
		GiftID:    w.IronSkin.ID,
	}

	w.Smith = &world.Caste{ID: "cas_smith", WorldID: w.ID, Name: "Smith", Skill: SkillOf(world.SkillCraft)}
	w.Outcast = &world.Caste{ID: "cas_outcast", WorldID: w.ID, Name: "Outcast"}
	w.Scribe = &world.Education{
		ID: "edu_scribe", WorldID: w.ID, Name: "Scribe", Skill: SkillOf(world.SkillLinguistics),
	}
	w.Forge = &world.Education{ID: "edu_forge", WorldID: w.ID, Name: "Forge", Skill: SkillOf(world.SkillCraft)}

	w.Shadow = &world.Talent{
		ID: "tal_shadow", WorldID: w.ID, Name: "Shadow Step", Skill: SkillOf(world.SkillStealth), Cost: 2,
	}
	w.Blade = &world.Talent{
		ID: "tal_blade", WorldID: w.ID, Name: "Blade Dancer", Skill: SkillOf(world.SkillMelee), Cost: 3,
	}
	w.Hammer = &world.Talent{
		ID: "tal_hammer", WorldID: w.ID, Name: "Hammer Hand", Skill: SkillOf(world.SkillCraft), Cost: 1,
	}
	w.Lore = &world.Talent{
		ID: "tal_lore", WorldID: w.ID, Name: "Old Lore", Skill: SkillOf(world.SkillLinguistics), Cost: 1,
	}
	w.Knack = &world.Talent{ID: "tal_knack", WorldID: w.ID, Name: "Knack", Cost: 1}

	w.Common = &world.Language{ID: "lang_common", WorldID: w.ID, Name: "Common"}
	w.Northern = &world.Language{ID: "lang_northern", WorldID: w.ID, Name: "Northern"}
	w.Elder = &world.Language{ID: "lang_elder", WorldID: w.ID, Name: "Elder"}
	w.Trade = &world.Language{ID: "lang_trade", WorldID: w.ID, Name: "Trade Cant"}
	w.Foreign = &world.Language{ID: "lang_foreign", WorldID: ForeignWorldID, Name: "Foreign"}

	w.Coin = &world.Item{ID: "item_coin", WorldID: w.ID, Name: "Copper Coin", Category: world.ItemCategoryMoney, Value: 1}
	w.GoldBar = &world.Item{
		ID: "item_goldbar", WorldID: w.ID, Name: "Gold Bar", Category: world.ItemCategoryMoney, Value: 100,
	}
	w.Sword = &world.Item{ID: "item_sword", WorldID: w.ID, Name: "Sword", Category: world.ItemCategoryWeapon, Value: 1}

	return w
}

// All returns every entity of the world, parents before children
func (w *World) All() []world.Content {
	return []world.Content{
		w.Human, w.Northman, w.Southman, w.Hillfolk, w.Orphan,
		w.Warrior, w.Scholar, w.Wanderer,
		w.Stoic, w.Stubborn,
		w.Luck, w.IronSkin, w.Farsight, w.Limp, w.Fearful,
		w.Smith, w.Outcast, w.Scribe, w.Forge,
		w.Shadow, w.Blade, w.Hammer, w.Lore, w.Knack,
		w.Common, w.Northern, w.Elder, w.Trade, w.Foreign,
		w.Coin, w.GoldBar, w.Sword,
	}
}

// Find returns the entity with the given type and ID
func (w *World) Find(kind, id string) (world.Content, bool) {
	for _, entity := range w.All() {
		if entity.GetType() == kind && entity.GetID() == id {
			return entity, true
		}
	}
	return nil, false
}

// ChildIDs returns the IDs of the lineages whose parent is id
func (w *World) ChildIDs(id string) []string {
	var children []string
	for _, entity := range w.All() {
		if lineage, ok := entity.(*world.Lineage); ok && lineage.ParentID == id {
			children = append(children, lineage.ID)
		}
	}
	return children
}
