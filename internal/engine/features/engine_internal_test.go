package features

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-importer/internal/engine"
	"github.com/KirkDiggler/rpg-importer/internal/entities/ddb"
	"github.com/KirkDiggler/rpg-importer/internal/entities/foundry"
	"github.com/KirkDiggler/rpg-importer/internal/errors"
	"github.com/KirkDiggler/rpg-importer/internal/testutils/builders"
)

type EngineInternalTestSuite struct {
	suite.Suite
	lookup *stubLookup
	engine *Engine
	fixups *recordingFixups
}

func TestEngineInternalSuite(t *testing.T) {
	suite.Run(t, new(EngineInternalTestSuite))
}

func (s *EngineInternalTestSuite) SetupTest() {
	s.lookup = &stubLookup{
		background: &ddb.Trait{ID: 1, Name: "Acolyte", Description: "<p>Temple.</p>"},
		choices:    make(map[int64][]Choice),
		components: make(map[int64]*ddb.Component),
	}
	s.engine, s.fixups = newTestEngine(s.lookup)
}

func (s *EngineInternalTestSuite) TestIncluded() {
	testCases := []struct {
		name     string
		expected bool
	}{
		{name: "Proficiencies: Light Armor", expected: false},
		{name: "Ability Score Improvement", expected: false},
		{name: "Ability Score Increase", expected: false},
		{name: "Size", expected: false},
		{name: "Speed", expected: false},
		{name: "Hit Points", expected: false},
		{name: "Languages", expected: false},
		{name: "Bonus Proficiency", expected: false},
		{name: "Rage", expected: true},
		{name: "Darkvision", expected: true},
		{name: "speed", expected: true},
		{name: "Speedy Recovery", expected: true},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Assert().Equal(tc.expected, Included(tc.name))
		})
	}
}

func (s *EngineInternalTestSuite) TestComposeDescription() {
	testCases := []struct {
		name          string
		trait         Trait
		preferSnippet bool
		expected      foundry.Description
	}{
		{
			name:  "snippet restating the description is dropped from the value",
			trait: Trait{Snippet: "You can see in the dark.", Description: "<p>You can see in the dark.</p>"},
			expected: foundry.Description{
				Value: "<p>You can see in the dark.</p>",
				Chat:  "You can see in the dark.",
			},
		},
		{
			name:  "distinct snippet becomes a summary",
			trait: Trait{Snippet: "Short.", Description: "<p>Long text.</p>"},
			expected: foundry.Description{
				Value: "<p>Long text.</p><h3>Summary</h3>Short.",
				Chat:  "Short.",
			},
		},
		{
			name:     "snippet only",
			trait:    Trait{Snippet: "Short."},
			expected: foundry.Description{Value: "Short.", Chat: "Short."},
		},
		{
			name:     "description only",
			trait:    Trait{Description: "<p>Long.</p>"},
			expected: foundry.Description{Value: "<p>Long.</p>"},
		},
		{
			name:     "neither",
			trait:    Trait{},
			expected: foundry.Description{},
		},
		{
			name:          "prefer snippet",
			trait:         Trait{Snippet: "Short.", Description: "<p>Long.</p>"},
			preferSnippet: true,
			expected:      foundry.Description{Value: "Short.", Chat: "Short."},
		},
		{
			name:          "prefer snippet falls back when the snippet was redundant",
			trait:         Trait{Snippet: "You can see in the dark.", Description: "<p>You can see in the dark.</p>"},
			preferSnippet: true,
			expected: foundry.Description{
				Value: "<p>You can see in the dark.</p>",
				Chat:  "You can see in the dark.",
			},
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			e := s.engine
			if tc.preferSnippet {
				e, _ = newTestEngine(s.lookup, withPreferSnippet())
			}
			s.Assert().Equal(tc.expected, e.composeDescription(&ddb.Document{}, tc.trait))
		})
	}
}

func feature(name string, category foundry.Category, value string) *foundry.Feature {
	return &foundry.Feature{
		Name:  name,
		Type:  foundry.ItemTypeFeat,
		Data:  foundry.FeatureData{Description: foundry.Description{Value: value}},
		Flags: foundry.Flags{Type: category},
	}
}

func (s *EngineInternalTestSuite) TestMergeFeatureExactDuplicateCollapses() {
	items := []*foundry.Feature{feature("Rage", foundry.CategoryClass, "<p>Rage.</p>")}

	items = mergeFeature(items, feature("Rage", foundry.CategoryClass, "<p>Rage.</p>"), stageClassLevel)

	s.Require().Len(items, 1)
	s.Assert().Equal("<p>Rage.</p>", items[0].Data.Description.Value)
}

func (s *EngineInternalTestSuite) TestMergeFeatureSameNameAppendsUnderHeading() {
	items := []*foundry.Feature{feature("Darkvision", foundry.CategoryRace, "<p>60 feet.</p>")}

	items = mergeFeature(items, feature("Darkvision", foundry.CategoryRace, "<p>120 feet.</p>"), stageRace)

	s.Require().Len(items, 1)
	s.Assert().Equal("<p>60 feet.</p><h3>Racial Trait Addition</h3><p>120 feet.</p>", items[0].Data.Description.Value)
}

func (s *EngineInternalTestSuite) TestMergeFeatureOtherCategoryIsNew() {
	items := []*foundry.Feature{feature("Darkvision", foundry.CategoryRace, "<p>60 feet.</p>")}

	items = mergeFeature(items, feature("Darkvision", foundry.CategoryClass, "<p>120 feet.</p>"), stageClassIntoResult)

	s.Assert().Len(items, 2)
}

func (s *EngineInternalTestSuite) TestMergeHeadings() {
	item := feature("Extra Attack", foundry.CategoryClass, "x")
	item.Flags.DNDBeyond.Class = "Fighter"
	item.Flags.DNDBeyond.RequiredLevel = 5

	s.Assert().Equal("Racial Trait Addition", mergeHeadings[stageRace](item))
	s.Assert().Equal("Fighter: Level 5", mergeHeadings[stageClassLevel](item))
	s.Assert().Equal("Fighter: At Level 5", mergeHeadings[stageSubclassLevel](item))
	s.Assert().Equal("Fighter", mergeHeadings[stageClassIntoResult](item))
}

func (s *EngineInternalTestSuite) TestNormalizeTrait() {
	testCases := []struct {
		name     string
		raw      *ddb.Trait
		expected Trait
	}{
		{
			name:     "nil",
			expected: Trait{},
		},
		{
			name: "bare shape",
			raw:  &ddb.Trait{ID: 10, Name: "Rage", Description: "d", RequiredLevel: 1, DisplayOrder: 2, ClassID: 3},
			expected: Trait{
				ID: 10, ComponentID: 10, Name: "Rage", Description: "d",
				RequiredLevel: 1, DisplayOrder: 2, ClassID: 3,
			},
		},
		{
			name: "definition wins except for linking ids",
			raw: &ddb.Trait{
				ID:      10,
				Name:    "Bare",
				Snippet: "bare snippet",
				ClassID: 3,
				Definition: &ddb.TraitDefinition{
					ID: 20, Name: "Defined", RequiredLevel: 2, ClassID: 4, EntityTypeID: 99, HideInSheet: true,
				},
			},
			expected: Trait{
				ID: 20, ComponentID: 10, Name: "Defined", Snippet: "bare snippet",
				RequiredLevel: 2, EntityTypeID: 99, ClassID: 3, Hidden: true,
			},
		},
		{
			name: "definition only",
			raw:  &ddb.Trait{Definition: &ddb.TraitDefinition{ID: 20, Name: "Defined", ClassID: 4}},
			expected: Trait{
				ID: 20, ComponentID: 20, Name: "Defined", ClassID: 4,
			},
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Assert().Equal(tc.expected, NormalizeTrait(tc.raw))
		})
	}
}

func (s *EngineInternalTestSuite) TestWithChoice() {
	trait := Trait{Name: "Fighting Style", Description: "<p>Pick.</p>"}

	specialized := trait.withChoice(Choice{Label: "Archery", Description: "<p>+2.</p>"})

	s.Assert().Equal("<p>Pick.</p><h3>Archery</h3><p>+2.</p>", specialized.Description)
	s.Assert().Empty(specialized.Snippet)
	s.Assert().Equal("<p>Pick.</p>", trait.Description)
	s.Assert().Equal(trait, trait.withChoice(Choice{Label: "Defense"}))
}

func (s *EngineInternalTestSuite) fightingStyle() Trait {
	return Trait{ID: 300, ComponentID: 300, Name: "Fighting Style", Description: "<p>Pick a style.</p>"}
}

func (s *EngineInternalTestSuite) TestParseFeatureExpandsChoices() {
	s.lookup.choices[300] = []Choice{
		{Label: "Archery", Description: "<p>+2 ranged.</p>"},
		{Label: "Defense"},
		{Label: "Dueling"},
	}
	r := newRun(builders.NewDocumentBuilder().Build())

	items := s.engine.parseFeature(r, s.fightingStyle(), foundry.CategoryClass, "PHB")

	s.Require().Len(items, 3)
	s.Assert().Equal("Fighting Style: Archery", items[0].Name)
	s.Assert().Equal("Fighting Style: Defense", items[1].Name)
	s.Assert().Equal("Fighting Style: Dueling", items[2].Name)
	s.Assert().Equal("<p>Pick a style.</p><h3>Archery</h3><p>+2 ranged.</p>", items[0].Data.Description.Value)
	s.Assert().Equal("<p>Pick a style.</p>", items[1].Data.Description.Value)
	for i, item := range items {
		s.Assert().Equal("PHB", item.Data.Source)
		s.Require().Len(item.Effects, 1)
		s.Assert().Equal(s.lookup.choices[300][i].Label, item.Effects[0].Label)
	}
}

func (s *EngineInternalTestSuite) TestParseFeatureSkipsSelfNamedChoice() {
	s.lookup.choices[300] = []Choice{{Label: "Archery"}, {Label: "Fighting Style"}, {Label: "Dueling"}}
	r := newRun(builders.NewDocumentBuilder().Build())

	items := s.engine.parseFeature(r, s.fightingStyle(), foundry.CategoryClass, "PHB")

	s.Require().Len(items, 2)
	s.Assert().Equal("Fighting Style: Archery", items[0].Name)
	s.Assert().Equal("Fighting Style: Dueling", items[1].Name)
}

func (s *EngineInternalTestSuite) TestParseFeatureEmptyChoiceLabelKeepsName() {
	s.lookup.choices[300] = []Choice{{Label: ""}}
	r := newRun(builders.NewDocumentBuilder().Build())

	items := s.engine.parseFeature(r, s.fightingStyle(), foundry.CategoryClass, "PHB")

	s.Require().Len(items, 1)
	s.Assert().Equal("Fighting Style", items[0].Name)
}

func (s *EngineInternalTestSuite) TestParseFeatureLevelGate() {
	trait := Trait{ID: 1, ComponentID: 1, Name: "Extra Attack", RequiredLevel: 5, ClassID: 7}

	low := newRun(builders.NewDocumentBuilder().WithClass(7, "Fighter", 3).Build())
	s.Assert().Empty(s.engine.parseFeature(low, trait, foundry.CategoryClass, "Fighter"))

	high := newRun(builders.NewDocumentBuilder().WithClass(7, "Fighter", 5).Build())
	s.Assert().Len(s.engine.parseFeature(high, trait, foundry.CategoryClass, "Fighter"), 1)

	unknownClass := newRun(builders.NewDocumentBuilder().WithClass(8, "Rogue", 1).Build())
	s.Assert().Len(s.engine.parseFeature(unknownClass, trait, foundry.CategoryClass, "Fighter"), 1)
}

func (s *EngineInternalTestSuite) TestParseFeatureCopiesComponent() {
	fixed := 2
	s.lookup.components[50] = &ddb.Component{
		LevelScale: &ddb.LevelScale{Level: 3, FixedValue: &fixed},
		Definition: &ddb.ComponentDefinition{
			ID:         50,
			LimitedUse: []ddb.LimitedUse{{Level: 1, Uses: 1, ResetType: 1}},
		},
	}
	r := newRun(builders.NewDocumentBuilder().Build())

	items := s.engine.parseFeature(r, Trait{ID: 5, ComponentID: 50, Name: "Action Surge"}, foundry.CategoryClass, "Fighter")

	s.Require().Len(items, 1)
	flags := items[0].Flags.DNDBeyond
	s.Require().NotNil(flags.LevelScale)
	s.Assert().Equal(2, *flags.LevelScale.FixedValue)
	s.Assert().NotSame(s.lookup.components[50].LevelScale, flags.LevelScale)
	s.Assert().Equal([]ddb.LimitedUse{{Level: 1, Uses: 1, ResetType: 1}}, flags.LimitedUse)
}

func (s *EngineInternalTestSuite) TestParseBackgroundListsChoices() {
	s.lookup.choices[1] = []Choice{{Label: "Insight"}, {Label: "Religion"}}
	trait := NormalizeTrait(s.lookup.background)

	testCases := []struct {
		name    string
		policy  BackgroundEffectsPolicy
		effects []string
	}{
		{name: "accumulate", policy: BackgroundEffectsAccumulate, effects: []string{"Insight", "Religion"}},
		{name: "last choice", policy: BackgroundEffectsLastChoice, effects: []string{"Religion"}},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			e, _ := newTestEngine(s.lookup, withPolicy(tc.policy))

			items := e.parseFeature(newRun(&ddb.Document{}), trait, foundry.CategoryBackground, "PHB")

			s.Require().Len(items, 1)
			s.Assert().Equal("Acolyte", items[0].Name)
			s.Assert().Equal("<p>Temple.</p><h3>Choices</h3><ul><li>Insight</li><li>Religion</li></ul>",
				items[0].Data.Description.Value)

			var labels []string
			for _, effect := range items[0].Effects {
				labels = append(labels, effect.Label)
			}
			s.Assert().Equal(tc.effects, labels)
		})
	}
}

func (s *EngineInternalTestSuite) TestParseClassFeaturesFoldsLevelsAndSubclass() {
	doc := builders.NewDocumentBuilder().
		WithClass(5, "Cleric", 6).
		WithClassFeature(5, ddb.Trait{ID: 101, Name: "Spellcasting", RequiredLevel: 1, DisplayOrder: 1, Description: "<p>Cast.</p>"}).
		WithClassFeature(5, ddb.Trait{ID: 102, Name: "Channel Divinity", RequiredLevel: 2, DisplayOrder: 3, Description: "<p>Turn undead.</p>"}).
		WithClassFeature(5, ddb.Trait{ID: 103, Name: "Channel Divinity", RequiredLevel: 6, DisplayOrder: 4, Description: "<p>Two uses.</p>"}).
		WithClassFeature(5, ddb.Trait{ID: 104, Name: "Divine Intervention", RequiredLevel: 10, DisplayOrder: 9, Description: "<p>Call on your deity.</p>"}).
		WithSubclass(5, 50, "Life Domain",
			ddb.Trait{ID: 201, Name: "Spellcasting", RequiredLevel: 1, DisplayOrder: 1, Description: "<p>Cast.</p>"},
			ddb.Trait{ID: 202, Name: "Disciple of Life", RequiredLevel: 1, DisplayOrder: 2, Description: "<p>Heal more.</p>"},
			ddb.Trait{ID: 204, Name: "Channel Divinity", RequiredLevel: 2, DisplayOrder: 3, Description: "<p>Turn undead.</p>"},
			ddb.Trait{ID: 203, Name: "Channel Divinity", RequiredLevel: 2, DisplayOrder: 5, Description: "<p>Preserve Life.</p>"},
		).
		Build()

	items := s.engine.parseClassFeatures(newRun(doc))

	s.Require().Len(items, 3)
	s.Assert().Equal("Spellcasting", items[0].Name)
	s.Assert().Equal("Cleric", items[0].Flags.DNDBeyond.Class)

	s.Assert().Equal("Channel Divinity", items[1].Name)
	s.Assert().Equal(
		"<p>Turn undead.</p>"+
			"<h3>Cleric: Level 6</h3><p>Two uses.</p>"+
			"<h3>Cleric : Life Domain: At Level 2</h3><p>Preserve Life.</p>",
		items[1].Data.Description.Value,
	)

	s.Assert().Equal("Disciple of Life", items[2].Name)
	s.Assert().Equal("Cleric : Life Domain", items[2].Flags.DNDBeyond.Class)
	s.Assert().Equal("Cleric : Life Domain", items[2].Data.Source)
}

func (s *EngineInternalTestSuite) TestParseClassFeaturesSkipsFeaturesFoldedByEarlierClass() {
	doc := builders.NewDocumentBuilder().
		WithClass(1, "Fighter", 11).
		WithClassFeature(1, ddb.Trait{ID: 301, Name: "Extra Attack", RequiredLevel: 5, DisplayOrder: 1, Description: "<p>Attack twice.</p>"}).
		WithClassFeature(1, ddb.Trait{ID: 302, Name: "Extra Attack", RequiredLevel: 11, DisplayOrder: 2, Description: "<p>Attack three times.</p>"}).
		WithClass(2, "Paladin", 5).
		WithClassFeature(2, ddb.Trait{ID: 401, Name: "Extra Attack", RequiredLevel: 5, DisplayOrder: 1, Description: "<p>Attack twice.</p>"}).
		WithClassFeature(2, ddb.Trait{ID: 402, Name: "Divine Smite", RequiredLevel: 2, DisplayOrder: 2, Description: "<p>Smite.</p>"}).
		Build()

	items := s.engine.parseClassFeatures(newRun(doc))

	s.Require().Len(items, 2)
	s.Assert().Equal("Extra Attack", items[0].Name)
	s.Assert().Equal("<p>Attack twice.</p><h3>Fighter: Level 11</h3><p>Attack three times.</p>", items[0].Data.Description.Value)
	s.Assert().Equal("Divine Smite", items[1].Name)
	s.Assert().Equal("Paladin", items[1].Flags.DNDBeyond.Class)
}

func (s *EngineInternalTestSuite) TestParseClassFeaturesSortsByDisplayOrder() {
	doc := builders.NewDocumentBuilder().
		WithClass(1, "Rogue", 2).
		WithClassFeature(1, ddb.Trait{ID: 3, Name: "Cunning Action", RequiredLevel: 2, DisplayOrder: 7, Description: "c"}).
		WithClassFeature(1, ddb.Trait{ID: 1, Name: "Sneak Attack", RequiredLevel: 1, DisplayOrder: 2, Description: "a"}).
		WithClassFeature(1, ddb.Trait{ID: 2, Name: "Expertise", RequiredLevel: 1, DisplayOrder: 1, Description: "b"}).
		Build()

	items := s.engine.parseClassFeatures(newRun(doc))

	s.Require().Len(items, 3)
	s.Assert().Equal([]string{"Expertise", "Sneak Attack", "Cunning Action"},
		[]string{items[0].Name, items[1].Name, items[2].Name})
}

func (s *EngineInternalTestSuite) TestParseFeatures() {
	hidden := ddb.Trait{Definition: &ddb.TraitDefinition{ID: 1003, Name: "Creature Type", HideInSheet: true}}
	doc := builders.NewDocumentBuilder().
		WithRacialTrait(ddb.Trait{ID: 1001, Name: "Darkvision", Snippet: "You can see in the dark.", Description: "<p>You can see in the dark.</p>"}).
		WithRacialTrait(ddb.Trait{ID: 1002, Name: "Keen Senses", Description: "<p>Perception.</p>"}).
		WithRacialTrait(ddb.Trait{ID: 1004, Name: "Speed", Description: "<p>30 feet.</p>"}).
		WithRacialTrait(hidden).
		WithOptionalOrigin(9001, 1002).
		WithClass(9, "Warlock", 2).
		WithClassFeature(9, ddb.Trait{ID: 2001, Name: "Darkvision", RequiredLevel: 1, Snippet: "You can see in the dark.", Description: "<p>You can see in the dark.</p>"}).
		WithClassFeature(9, ddb.Trait{ID: 2002, Name: "Pact Magic", RequiredLevel: 1, DisplayOrder: 2, Description: "<p>Magic.</p>"}).
		WithClassFeature(9, ddb.Trait{ID: 2003, Name: "Fey Presence", RequiredLevel: 1, DisplayOrder: 3, Description: "<p>Charm.</p>"}).
		WithClassOption(ddb.Trait{ID: 3001, Name: "Pact Magic", Description: "<p>Magic.</p>"}, 2003).
		WithFeat(ddb.Trait{ID: 4001, Name: "Alert", Description: "<p>Always ready.</p>"}).
		Build()

	out, err := s.engine.ParseFeatures(context.Background(), &engine.ParseFeaturesInput{Document: doc})

	s.Require().NoError(err)
	var names []string
	var categories []foundry.Category
	for _, item := range out.Features {
		names = append(names, item.Name)
		categories = append(categories, item.Category())
	}
	s.Assert().Equal([]string{"Darkvision", "Pact Magic", "Pact Magic", "Alert", "Acolyte"}, names)
	s.Assert().Equal([]foundry.Category{
		foundry.CategoryRace,
		foundry.CategoryClass,
		foundry.CategoryClass,
		foundry.CategoryFeat,
		foundry.CategoryBackground,
	}, categories)
	s.Assert().Equal(out.Features, s.fixups.fixed)
}

func (s *EngineInternalTestSuite) TestParseFeaturesErrors() {
	testCases := []struct {
		name   string
		input  *engine.ParseFeaturesInput
		setup  func()
		isCode func(error) bool
	}{
		{
			name:   "nil input",
			isCode: errors.IsInvalidArgument,
		},
		{
			name:   "nil document",
			input:  &engine.ParseFeaturesInput{},
			isCode: errors.IsInvalidArgument,
		},
		{
			name: "class without definition",
			input: &engine.ParseFeaturesInput{Document: &ddb.Document{
				Character: ddb.Character{Classes: []ddb.Class{{Level: 1}}},
			}},
			isCode: errors.IsInvalidArgument,
		},
		{
			name:  "background lookup fails",
			input: &engine.ParseFeaturesInput{Document: &ddb.Document{}},
			setup: func() {
				s.lookup.backgroundErr = errors.NotFound("no background")
			},
			isCode: errors.IsFailedPrecondition,
		},
		{
			name:  "no background",
			input: &engine.ParseFeaturesInput{Document: &ddb.Document{}},
			setup: func() {
				s.lookup.background = nil
			},
			isCode: errors.IsFailedPrecondition,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.SetupTest()
			if tc.setup != nil {
				tc.setup()
			}

			out, err := s.engine.ParseFeatures(context.Background(), tc.input)

			s.Require().Error(err)
			s.Assert().Nil(out)
			s.Assert().True(tc.isCode(err), "unexpected error %v", err)
		})
	}
}

func (s *EngineInternalTestSuite) TestConfigValidate() {
	_, err := New(&Config{})
	s.Assert().True(errors.IsInvalidArgument(err))

	_, err = New(nil)
	s.Assert().Error(err)

	_, err = New(&Config{
		Renderer:          echoRenderer{},
		Fixups:            &recordingFixups{},
		Lookup:            s.lookup,
		BackgroundEffects: "first",
	})
	s.Assert().True(errors.IsInvalidArgument(err))
}
