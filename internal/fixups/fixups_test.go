package fixups_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-importer/internal/engine/features"
	"github.com/KirkDiggler/rpg-importer/internal/entities/ddb"
	"github.com/KirkDiggler/rpg-importer/internal/entities/foundry"
	"github.com/KirkDiggler/rpg-importer/internal/fixups"
	"github.com/KirkDiggler/rpg-importer/internal/testutils/builders"
)

type FixupsTestSuite struct {
	suite.Suite
	fixups *fixups.Fixups
	doc    *ddb.Document
}

func TestFixupsSuite(t *testing.T) {
	suite.Run(t, new(FixupsTestSuite))
}

func (s *FixupsTestSuite) SetupTest() {
	s.fixups = fixups.New(nil)
	s.doc = builders.NewDocumentBuilder().WithClass(1, "Fighter", 4).WithClass(2, "Monk", 2).Build()
}

func (s *FixupsTestSuite) TestStripHTML() {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "empty", input: "", expected: ""},
		{name: "paragraph", input: "<p>You can see in the dark.</p>", expected: "You can see in the dark."},
		{name: "nested", input: "<p>You <strong>can</strong> see.</p>\n", expected: "You can see."},
		{name: "entities", input: "<p>Sword &amp; Board</p>", expected: "Sword & Board"},
		{name: "plain text", input: "Just text", expected: "Just text"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Assert().Equal(tc.expected, s.fixups.StripHTML(tc.input))
		})
	}
}

func (s *FixupsTestSuite) TestAddEffectsWithoutEffectsReturnsSameFeature() {
	feature := &foundry.Feature{Name: "Darkvision", Flags: foundry.Flags{Type: foundry.CategoryRace}}

	out := s.fixups.AddEffects(s.doc, features.Trait{Name: "Darkvision"}, feature, nil, foundry.CategoryRace)

	s.Assert().Same(feature, out)
	s.Assert().Empty(out.Effects)
}

func (s *FixupsTestSuite) TestAddEffectsReturnsCopy() {
	feature := &foundry.Feature{Name: "Tough", Flags: foundry.Flags{ID: 77, Type: foundry.CategoryFeat}}

	out := s.fixups.AddEffects(s.doc, features.Trait{Name: "Tough"}, feature, nil, foundry.CategoryFeat)

	s.Assert().NotSame(feature, out)
	s.Assert().Empty(feature.Effects)
	s.Require().Len(out.Effects, 1)
	s.Assert().Equal("Tough", out.Effects[0].Label)
	s.Assert().Equal("ddb.feat.77", out.Effects[0].Origin)
	s.Assert().Equal([]foundry.EffectChange{
		{Key: "data.attributes.hp.bonuses.overall", Mode: foundry.EffectModeAdd, Value: "12"},
	}, out.Effects[0].Changes)
}

func (s *FixupsTestSuite) TestAddEffectsUnarmoredDefenseByClass() {
	feature := &foundry.Feature{Name: "Unarmored Defense"}
	feature.Flags.DNDBeyond.Class = "Monk"

	out := s.fixups.AddEffects(s.doc, features.Trait{Name: "Unarmored Defense"}, feature, nil, foundry.CategoryClass)

	s.Require().Len(out.Effects, 1)
	s.Assert().Equal("unarmoredMonk", out.Effects[0].Changes[0].Value)
}

func (s *FixupsTestSuite) TestAddEffectsBackgroundSkillChoices() {
	feature := &foundry.Feature{Name: "Acolyte", Flags: foundry.Flags{Type: foundry.CategoryBackground}}
	trait := features.Trait{Name: "Acolyte"}

	out := s.fixups.AddEffects(s.doc, trait, feature, &features.Choice{Label: "Insight"}, foundry.CategoryBackground)
	out = s.fixups.AddEffects(s.doc, trait, out, &features.Choice{Label: "Religion"}, foundry.CategoryBackground)
	out = s.fixups.AddEffects(s.doc, trait, out, &features.Choice{Label: "Shelter of the Faithful"}, foundry.CategoryBackground)

	s.Require().Len(out.Effects, 2)
	s.Assert().Equal("Acolyte: Insight", out.Effects[0].Label)
	s.Assert().Equal("data.skills.ins.value", out.Effects[0].Changes[0].Key)
	s.Assert().Equal("Acolyte: Religion", out.Effects[1].Label)
	s.Assert().Equal("data.skills.rel.value", out.Effects[1].Changes[0].Key)
}

func (s *FixupsTestSuite) TestAddEffectsSkillChoiceOutsideBackgroundIgnored() {
	feature := &foundry.Feature{Name: "Skilled: Insight"}

	out := s.fixups.AddEffects(s.doc, features.Trait{Name: "Skilled"}, feature, &features.Choice{Label: "Insight"}, foundry.CategoryFeat)

	s.Assert().Empty(out.Effects)
}

func (s *FixupsTestSuite) TestFixFeaturesBuildsSneakAttackDice() {
	sneak := &foundry.Feature{Name: "Sneak Attack"}
	sneak.Flags.DNDBeyond.LevelScale = &ddb.LevelScale{Dice: &ddb.Dice{DiceCount: 3, DiceValue: 6}}
	unscaled := &foundry.Feature{Name: "Sneak Attack"}
	unscaled.Flags.DNDBeyond.LevelScale = &ddb.LevelScale{Dice: &ddb.Dice{}}

	s.fixups.FixFeatures([]*foundry.Feature{sneak, unscaled})

	s.Assert().Equal([][2]string{{"3d6", ""}}, sneak.Data.Damage.Parts)
	s.Assert().Nil(unscaled.Data.Damage.Parts)
}

func (s *FixupsTestSuite) TestFixFeatures() {
	sneak := &foundry.Feature{Name: "Sneak Attack"}
	sneak.Flags.DNDBeyond.LevelScale = &ddb.LevelScale{Dice: &ddb.Dice{DiceString: "2d6"}}
	items := []*foundry.Feature{
		{Name: "Second Wind"},
		{Name: "Action Surge"},
		sneak,
		{Name: "Darkvision"},
	}

	s.fixups.FixFeatures(items)

	s.Assert().Equal(foundry.Activation{Type: fixups.ActivationBonusAction, Cost: 1}, items[0].Data.Activation)
	s.Assert().Equal([][2]string{{"1d10 + @classes.fighter.levels", "healing"}}, items[0].Data.Damage.Parts)
	s.Assert().Equal(fixups.ActivationSpecial, items[1].Data.Activation.Type)
	s.Assert().Equal([][2]string{{"2d6", ""}}, items[2].Data.Damage.Parts)
	s.Assert().Equal(foundry.FeatureData{}, items[3].Data)
}
