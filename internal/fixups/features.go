package fixups

import (
	"github.com/KirkDiggler/rpg-importer/internal/entities/foundry"
)

// Activation types
const (
	ActivationAction      = "action"
	ActivationBonusAction = "bonus"
	ActivationSpecial     = "special"
)

// featureFixes is keyed by the final record name
var featureFixes = map[string]func(item *foundry.Feature){
	"Second Wind": func(item *foundry.Feature) {
		item.Data.Activation = foundry.Activation{Type: ActivationBonusAction, Cost: 1}
		item.Data.Damage.Parts = [][2]string{{"1d10 + @classes.fighter.levels", "healing"}}
	},
	"Action Surge": func(item *foundry.Feature) {
		item.Data.Activation = foundry.Activation{Type: ActivationSpecial, Cost: 1}
	},
	"Rage": func(item *foundry.Feature) {
		item.Data.Activation = foundry.Activation{Type: ActivationBonusAction, Cost: 1}
	},
	"Bardic Inspiration": func(item *foundry.Feature) {
		item.Data.Activation = foundry.Activation{Type: ActivationBonusAction, Cost: 1}
	},
	"Channel Divinity": func(item *foundry.Feature) {
		item.Data.Activation = foundry.Activation{Type: ActivationAction, Cost: 1}
	},
	"Sneak Attack": func(item *foundry.Feature) {
		item.Data.Activation = foundry.Activation{Type: ActivationSpecial, Cost: 0, Condition: "Once per turn"}
		if scale := item.Flags.DNDBeyond.LevelScale; scale != nil {
			if notation := scale.Dice.Notation(); notation != "" {
				item.Data.Damage.Parts = [][2]string{{notation, ""}}
			}
		}
	},
}
