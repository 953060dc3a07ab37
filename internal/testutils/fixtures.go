package testutils

import (
	"github.com/KirkDiggler/rpg-importer/internal/entities/ddb"
	"github.com/KirkDiggler/rpg-importer/internal/testutils/builders"
)

// Fixture ids
const (
	FighterClassID      int64 = 2190885
	AcolyteBackgroundID int64 = 1
	DarkvisionTraitID   int64 = 1001
	SecondWindFeatureID int64 = 2000
	ShelterOptionID     int64 = 501
	LanguageOptionID    int64 = 502

	// TestCharacterName is the default character name for test fixtures
	TestCharacterName = "Thorin Oakenshield"
)

// Darkvision returns the racial Darkvision trait, in the nested definition shape
func Darkvision() ddb.Trait {
	return ddb.Trait{
		Definition: &ddb.TraitDefinition{
			ID:           DarkvisionTraitID,
			Name:         "Darkvision",
			Snippet:      "You can see in the dark.",
			Description:  "<p>You can see in the dark.</p>",
			DisplayOrder: 1,
			EntityTypeID: 1960452172,
			SourceID:     2,
		},
	}
}

// SecondWind returns the fighter's Second Wind feature, in the bare shape
func SecondWind() ddb.Trait {
	return ddb.Trait{
		ID:            SecondWindFeatureID,
		Name:          "Second Wind",
		Description:   "<p>You have a limited well of stamina.</p>",
		RequiredLevel: 1,
		DisplayOrder:  2,
		EntityTypeID:  12168134,
		ClassID:       FighterClassID,
		SourceID:      2,
	}
}

// Acolyte returns the Acolyte background definition
func Acolyte() *ddb.BackgroundDefinition {
	return &ddb.BackgroundDefinition{
		ID:                 AcolyteBackgroundID,
		EntityTypeID:       1669830167,
		Name:               "Acolyte",
		ShortDescription:   "<p>You have spent your life in the service of a temple.</p>",
		FeatureName:        "Shelter of the Faithful",
		FeatureDescription: "<p>You command the respect of those who share your faith.</p>",
		Sources:            []ddb.SourceRef{{SourceID: 2, PageNumber: 127}},
	}
}

// CreateTestDocument creates a level 1 fighter with Darkvision and the Acolyte
// background with two resolved choices
func CreateTestDocument() *ddb.Document {
	shelter, language := ShelterOptionID, LanguageOptionID
	return builders.NewDocumentBuilder().
		WithName(TestCharacterName).
		WithRace("Hill Dwarf").
		WithRacialTrait(Darkvision()).
		WithClass(FighterClassID, "Fighter", 1).
		WithClassFeature(FighterClassID, SecondWind()).
		WithBackground(Acolyte()).
		WithChoice(ddb.CategoryBackground, ddb.CharacterChoice{
			ID:          "bg-1",
			ComponentID: AcolyteBackgroundID,
			Type:        2,
			OptionValue: &shelter,
			Options:     []ddb.ChoiceOption{{ID: ShelterOptionID, Label: "Shelter of the Faithful"}},
		}).
		WithChoice(ddb.CategoryBackground, ddb.CharacterChoice{
			ID:          "bg-2",
			ComponentID: AcolyteBackgroundID,
			Type:        3,
			OptionValue: &language,
			Options:     []ddb.ChoiceOption{{ID: LanguageOptionID, Label: "—"}},
		}).
		Build()
}
