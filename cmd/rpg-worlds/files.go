package main

import (
	"bytes"
	"encoding/json"
	"io"
	"os"

	"github.com/KirkDiggler/rpg-worlds/internal/entities/world"
	"github.com/KirkDiggler/rpg-worlds/internal/errors"
	"github.com/KirkDiggler/rpg-worlds/internal/orchestrators/character"
	"github.com/KirkDiggler/rpg-worlds/internal/resolvers"
)

// worldFile is the seed format: every entity of one world, grouped by kind.
// Entities without a world_id take the file's.
type worldFile struct {
	WorldID        string                 `json:"world_id"`
	Lineages       []*world.Lineage       `json:"lineages"`
	Aspects        []*world.Aspect        `json:"aspects"`
	Personalities  []*world.Personality   `json:"personalities"`
	Natures        []*world.Nature        `json:"natures"`
	Customizations []*world.Customization `json:"customizations"`
	Castes         []*world.Caste         `json:"castes"`
	Educations     []*world.Education     `json:"educations"`
	Talents        []*world.Talent        `json:"talents"`
	Languages      []*world.Language      `json:"languages"`
	Items          []*world.Item          `json:"items"`
}

// buildFile is the creation payload as a player writes it
type buildFile struct {
	PlayerID         string              `json:"PlayerId"`
	Name             string              `json:"Name"`
	LineageID        string              `json:"LineageId"`
	Physical         world.PhysicalStats `json:"Physical"`
	LanguageIDs      []string            `json:"LanguageIds"`
	PersonalityID    string              `json:"PersonalityId"`
	NatureID         string              `json:"NatureId"`
	CustomizationIDs []string            `json:"CustomizationIds"`
	AspectIDs        []string            `json:"AspectIds"`
	BaseAttributes   struct {
		Scores   map[world.Attribute]int32 `json:"Scores"`
		Best     world.Attribute           `json:"Best"`
		Worst    world.Attribute           `json:"Worst"`
		Optional []world.Attribute         `json:"Optional"`
		Extra    []world.Attribute         `json:"Extra"`
	} `json:"BaseAttributes"`
	CasteID        string   `json:"CasteId"`
	EducationID    string   `json:"EducationId"`
	TalentIDs      []string `json:"TalentIds"`
	StartingWealth struct {
		ItemID string `json:"ItemId"`
	} `json:"StartingWealth"`
}

// readFile reads path, or standard input when path is "-"
func readFile(path string, stdin io.Reader) ([]byte, error) {
	if path == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, errors.Wrap(err, "failed to read standard input")
		}
		return data, nil
	}

	data, err := os.ReadFile(path) // #nosec G304 -- path is an operator-supplied CLI argument
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %s", path)
	}
	return data, nil
}

func decodeStrict(data []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return errors.WrapWithCode(err, errors.CodeInvalidArgument, "malformed JSON")
	}
	return nil
}

// parseWorldFile decodes a seed file into the entities to store
func parseWorldFile(data []byte) (string, []world.Content, error) {
	var wf worldFile
	if err := decodeStrict(data, &wf); err != nil {
		return "", nil, err
	}
	if wf.WorldID == "" {
		return "", nil, errors.InvalidArgument("world file has no world_id")
	}

	var entities []world.Content
	entities = appendContent(entities, wf.WorldID, wf.Lineages, func(l *world.Lineage) *string { return &l.WorldID })
	entities = appendContent(entities, wf.WorldID, wf.Aspects, func(a *world.Aspect) *string { return &a.WorldID })
	entities = appendContent(entities, wf.WorldID, wf.Personalities,
		func(p *world.Personality) *string { return &p.WorldID })
	entities = appendContent(entities, wf.WorldID, wf.Natures, func(n *world.Nature) *string { return &n.WorldID })
	entities = appendContent(entities, wf.WorldID, wf.Customizations,
		func(c *world.Customization) *string { return &c.WorldID })
	entities = appendContent(entities, wf.WorldID, wf.Castes, func(c *world.Caste) *string { return &c.WorldID })
	entities = appendContent(entities, wf.WorldID, wf.Educations,
		func(e *world.Education) *string { return &e.WorldID })
	entities = appendContent(entities, wf.WorldID, wf.Talents, func(t *world.Talent) *string { return &t.WorldID })
	entities = appendContent(entities, wf.WorldID, wf.Languages,
		func(l *world.Language) *string { return &l.WorldID })
	entities = appendContent(entities, wf.WorldID, wf.Items, func(i *world.Item) *string { return &i.WorldID })

	return wf.WorldID, entities, nil
}

func appendContent[E any, T interface {
	*E
	world.Content
}](out []world.Content, worldID string, in []T, field func(T) *string) []world.Content {
	for _, entity := range in {
		if entity == nil {
			continue
		}
		if ptr := field(entity); *ptr == "" {
			*ptr = worldID
		}
		out = append(out, entity)
	}
	return out
}

// parseBuildFile decodes a creation payload for the given world
func parseBuildFile(data []byte, worldID string) (*character.BuildRequest, error) {
	var bf buildFile
	if err := decodeStrict(data, &bf); err != nil {
		return nil, err
	}

	return &character.BuildRequest{
		WorldID:          worldID,
		PlayerID:         bf.PlayerID,
		Name:             bf.Name,
		LineageID:        bf.LineageID,
		Physical:         bf.Physical,
		LanguageIDs:      bf.LanguageIDs,
		PersonalityID:    bf.PersonalityID,
		NatureID:         bf.NatureID,
		CustomizationIDs: bf.CustomizationIDs,
		AspectIDs:        bf.AspectIDs,
		BaseAttributes: resolvers.BaseAttributesSelection{
			Scores:   bf.BaseAttributes.Scores,
			Best:     bf.BaseAttributes.Best,
			Worst:    bf.BaseAttributes.Worst,
			Optional: bf.BaseAttributes.Optional,
			Extra:    bf.BaseAttributes.Extra,
		},
		CasteID:              bf.CasteID,
		EducationID:          bf.EducationID,
		TalentIDs:            bf.TalentIDs,
		StartingWealthItemID: bf.StartingWealth.ItemID,
	}, nil
}
