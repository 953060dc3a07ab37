package fixups

import (
	"strconv"

	"github.com/KirkDiggler/rpg-importer/internal/entities/ddb"
	"github.com/KirkDiggler/rpg-importer/internal/entities/foundry"
)

type effectBuilder func(doc *ddb.Document, feature *foundry.Feature) []foundry.EffectChange

// traitEffects is keyed by trait name
var traitEffects = map[string]effectBuilder{
	"Alert": func(*ddb.Document, *foundry.Feature) []foundry.EffectChange {
		return []foundry.EffectChange{add("data.attributes.init.bonus", "5")}
	},
	"Observant": func(*ddb.Document, *foundry.Feature) []foundry.EffectChange {
		return []foundry.EffectChange{
			add("data.skills.prc.bonuses.passive", "5"),
			add("data.skills.inv.bonuses.passive", "5"),
		}
	},
	"Tough": func(doc *ddb.Document, _ *foundry.Feature) []foundry.EffectChange {
		level := 1
		if doc != nil && doc.Character.TotalLevel() > 0 {
			level = doc.Character.TotalLevel()
		}
		return []foundry.EffectChange{add("data.attributes.hp.bonuses.overall", strconv.Itoa(2*level))}
	},
	"Mobile": func(*ddb.Document, *foundry.Feature) []foundry.EffectChange {
		return []foundry.EffectChange{add("data.attributes.movement.walk", "10")}
	},
	"Dwarven Toughness": func(*ddb.Document, *foundry.Feature) []foundry.EffectChange {
		return []foundry.EffectChange{add("data.attributes.hp.bonuses.level", "1")}
	},
	"Unarmored Defense": func(_ *ddb.Document, feature *foundry.Feature) []foundry.EffectChange {
		calc := "unarmoredBarb"
		if feature.Flags.DNDBeyond.Class == "Monk" {
			calc = "unarmoredMonk"
		}
		return []foundry.EffectChange{override("data.attributes.ac.calc", calc)}
	},
}

// skillKeys maps skill names, as they appear in choice labels, to skill keys
var skillKeys = map[string]string{
	"Acrobatics":      "acr",
	"Animal Handling": "ani",
	"Arcana":          "arc",
	"Athletics":       "ath",
	"Deception":       "dec",
	"History":         "his",
	"Insight":         "ins",
	"Intimidation":    "itm",
	"Investigation":   "inv",
	"Medicine":        "med",
	"Nature":          "nat",
	"Perception":      "prc",
	"Performance":     "prf",
	"Persuasion":      "per",
	"Religion":        "rel",
	"Sleight of Hand": "slt",
	"Stealth":         "ste",
	"Survival":        "sur",
}

func proficiency(skill string) foundry.EffectChange {
	return override("data.skills."+skill+".value", "1")
}

func add(key, value string) foundry.EffectChange {
	return foundry.EffectChange{Key: key, Mode: foundry.EffectModeAdd, Value: value}
}

func override(key, value string) foundry.EffectChange {
	return foundry.EffectChange{Key: key, Mode: foundry.EffectModeOverride, Value: value}
}

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}
