package ddb

import (
	"fmt"
	"strconv"

	"github.com/KirkDiggler/rpg-toolkit/dice"
)

// Component is a per-character class feature entry. It carries the data that
// depends on the character's current level.
type Component struct {
	LevelScale *LevelScale          `json:"levelScale,omitempty"`
	Definition *ComponentDefinition `json:"definition,omitempty"`
}

// ComponentDefinition is the definition side of a component
type ComponentDefinition struct {
	ID          int64        `json:"id"`
	Name        string       `json:"name,omitempty"`
	LevelScales []LevelScale `json:"levelScales,omitempty"`
	LimitedUse  []LimitedUse `json:"limitedUse,omitempty"`
}

// LevelScale is a value that grows with level, e.g. sneak attack dice
type LevelScale struct {
	ID          int64  `json:"id"`
	Level       int    `json:"level"`
	Description string `json:"description,omitempty"`
	FixedValue  *int   `json:"fixedValue,omitempty"`
	Dice        *Dice  `json:"dice,omitempty"`
}

// Dice is a dice expression
type Dice struct {
	DiceCount  int    `json:"diceCount"`
	DiceValue  int    `json:"diceValue"`
	FixedValue int    `json:"fixedValue,omitempty"`
	DiceString string `json:"diceString,omitempty"`
}

// LimitedUse describes uses per rest at a level
type LimitedUse struct {
	Level              int   `json:"level"`
	Uses               int   `json:"uses"`
	StatModifierUsesID int64 `json:"statModifierUsesId,omitempty"`
	ResetType          int   `json:"resetType,omitempty"`
}

// Notation returns the dice expression, e.g. "3d6" or "1d4+2". Documents that
// omit the dice string have it built from the count and die size. An invalid
// count or size yields "".
func (d *Dice) Notation() string {
	if d == nil {
		return ""
	}
	if d.DiceString != "" {
		return d.DiceString
	}
	if d.DiceCount <= 0 {
		return ""
	}
	if _, err := dice.NewRoll(d.DiceCount, d.DiceValue); err != nil {
		return ""
	}

	notation := fmt.Sprintf("%dd%d", d.DiceCount, d.DiceValue)
	if d.FixedValue > 0 {
		notation += "+" + strconv.Itoa(d.FixedValue)
	}
	return notation
}
