package features

import (
	"sort"

	"go.uber.org/zap"

	"github.com/KirkDiggler/rpg-importer/internal/entities/ddb"
	"github.com/KirkDiggler/rpg-importer/internal/entities/foundry"
)

// parseClassFeatures expands the features of every class and subclass. Features
// restated at several levels of one class are folded into one record, and
// subclass features that restate a class feature verbatim are dropped.
//
// The run's processed list holds every record as expanded and as merged, so a
// record is recognized as a restatement whether or not its original was later
// folded into another record.
func (e *Engine) parseClassFeatures(r *run) []*foundry.Feature {
	var result []*foundry.Feature

	for i := range r.doc.Character.Classes {
		class := &r.doc.Character.Classes[i]
		className := class.Definition.Name

		batch := e.expandClassFeatures(r, class, class.Definition.ClassFeatures, className)
		snapshot := cloneAll(batch)

		var classItems []*foundry.Feature
		for _, item := range batch {
			// already folded while processing an earlier class
			if isDuplicateFeature(r.processed, item) {
				continue
			}
			classItems = mergeFeature(classItems, item, stageClassLevel)
		}
		r.markProcessed(snapshot, batch)

		if sub := class.SubclassDefinition; sub != nil && len(sub.ClassFeatures) > 0 {
			subclassName := className + " : " + sub.Name
			subBatch := e.expandClassFeatures(r, class, sub.ClassFeatures, subclassName)
			subSnapshot := cloneAll(subBatch)

			var subclassItems []*foundry.Feature
			for _, item := range subBatch {
				// subclasses often restate class features verbatim
				if isDuplicateFeature(r.processed, item) {
					continue
				}
				subclassItems = mergeFeature(subclassItems, item, stageSubclassLevel)
			}
			r.markProcessed(subSnapshot, subBatch)

			for _, item := range subclassItems {
				classItems = mergeFeature(classItems, item, stageSubclassLevel)
			}
		}

		e.logger.Debug("parsed class features",
			zap.String("class", className),
			zap.Int("level", class.Level),
			zap.Int("features", len(classItems)))

		result = append(result, classItems...)
	}

	return result
}

// expandClassFeatures expands the features a class has reached, tags them with
// the class label and orders them by display order
func (e *Engine) expandClassFeatures(r *run, class *ddb.Class, traits []ddb.Trait, label string) []*foundry.Feature {
	var batch []*foundry.Feature

	for i := range traits {
		trait := NormalizeTrait(&traits[i])
		if !Included(trait.Name) || trait.RequiredLevel > class.Level {
			continue
		}
		if _, excluded := r.excludedClassFeatures[trait.ComponentID]; excluded {
			continue
		}

		for _, item := range e.parseFeature(r, trait, foundry.CategoryClass, label) {
			item.Flags.DNDBeyond.Class = label
			batch = append(batch, item)
		}
	}

	sort.SliceStable(batch, func(a, b int) bool {
		return batch[a].Flags.DNDBeyond.DisplayOrder < batch[b].Flags.DNDBeyond.DisplayOrder
	})

	return batch
}

func cloneAll(items []*foundry.Feature) []*foundry.Feature {
	out := make([]*foundry.Feature, len(items))
	for i, item := range items {
		out[i] = item.Clone()
	}
	return out
}
