package features

import (
	"fmt"

	"github.com/KirkDiggler/rpg-importer/internal/entities/foundry"
)

// mergeStage identifies which collection pass is folding a record, and so which
// heading is used when its description is appended to an existing record
type mergeStage int

const (
	stageRace mergeStage = iota
	stageClassLevel
	stageSubclassLevel
	stageClassIntoResult
)

var mergeHeadings = map[mergeStage]func(item *foundry.Feature) string{
	stageRace: func(*foundry.Feature) string {
		return "Racial Trait Addition"
	},
	stageClassLevel: func(item *foundry.Feature) string {
		return fmt.Sprintf("%s: Level %d", item.Flags.DNDBeyond.Class, item.Flags.DNDBeyond.RequiredLevel)
	},
	stageSubclassLevel: func(item *foundry.Feature) string {
		return fmt.Sprintf("%s: At Level %d", item.Flags.DNDBeyond.Class, item.Flags.DNDBeyond.RequiredLevel)
	},
	stageClassIntoResult: func(item *foundry.Feature) string {
		return item.Flags.DNDBeyond.Class
	},
}

// isDuplicateFeature reports whether some entry has the same name and full description
func isDuplicateFeature(items []*foundry.Feature, item *foundry.Feature) bool {
	for _, existing := range items {
		if existing.Name == item.Name && existing.Data.Description.Value == item.Data.Description.Value {
			return true
		}
	}
	return false
}

// nameMatchedFeature returns the first entry with the same name and category
func nameMatchedFeature(items []*foundry.Feature, item *foundry.Feature) *foundry.Feature {
	for _, existing := range items {
		if existing.Name == item.Name && existing.Category() == item.Category() {
			return existing
		}
	}
	return nil
}

// mergeFeature folds item into items. Exact duplicates are dropped, name matches
// have the item's description appended under the stage heading, anything else is
// appended as a new entry.
func mergeFeature(items []*foundry.Feature, item *foundry.Feature, stage mergeStage) []*foundry.Feature {
	if isDuplicateFeature(items, item) {
		return items
	}

	if existing := nameMatchedFeature(items, item); existing != nil {
		heading := mergeHeadings[stage](item)
		existing.AppendDescription("<h3>" + heading + "</h3>" + item.Data.Description.Value)
		return items
	}

	return append(items, item)
}
