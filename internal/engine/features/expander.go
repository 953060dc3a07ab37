package features

import (
	"strings"

	"go.uber.org/zap"

	"github.com/KirkDiggler/rpg-importer/internal/entities/foundry"
)

// parseFeature expands one trait into feature records. A trait with choices
// yields a record per choice, except backgrounds, which always yield exactly one
// record listing their choices. A trait above its class's current level or
// without a name yields none.
func (e *Engine) parseFeature(r *run, trait Trait, category foundry.Category, source string) []*foundry.Feature {
	if trait.Name == "" {
		e.logger.Debug("skipping unnamed trait", zap.Int64("id", trait.ID), zap.String("category", category.String()))
		return nil
	}

	item := &foundry.Feature{
		Name: trait.Name,
		Type: foundry.ItemTypeFeat,
		Data: e.lookup.Template(category),
		Flags: foundry.Flags{
			ID:           trait.ID,
			Type:         category,
			EntityTypeID: trait.EntityTypeID,
			DNDBeyond: foundry.DNDBeyondFlags{
				RequiredLevel: trait.RequiredLevel,
				DisplayOrder:  trait.DisplayOrder,
			},
		},
	}

	e.logger.Debug("parsing feature", zap.String("name", item.Name), zap.String("category", category.String()))

	item.ApplyComponent(e.lookup.Component(r.doc, trait.ComponentID))

	if trait.RequiredLevel > 0 && trait.ClassID != 0 {
		if class := r.doc.Character.ClassByDefinitionID(trait.ClassID); class != nil && trait.RequiredLevel > class.Level {
			return nil
		}
	}

	choices := e.lookup.Choices(r.doc, category, trait)

	switch {
	case category == foundry.CategoryBackground:
		return []*foundry.Feature{e.parseBackground(r, trait, item, choices, source)}
	case len(choices) > 0:
		return e.parseChoices(r, trait, item, choices, category, source)
	default:
		item.Data.Description = e.composeDescription(r.doc, trait)
		item.Data.Source = source
		return []*foundry.Feature{e.fixups.AddEffects(r.doc, trait, item, nil, category)}
	}
}

func (e *Engine) parseBackground(r *run, trait Trait, item *foundry.Feature, choices []Choice, source string) *foundry.Feature {
	item.Data.Description = e.composeDescription(r.doc, trait)
	item.Data.Source = source

	var list strings.Builder
	list.WriteString("<h3>Choices</h3><ul>")

	base := item
	for i := range choices {
		choice := choices[i]
		e.logger.Debug("adding background choice", zap.String("name", item.Name), zap.String("choice", choice.Label))

		from := item
		if e.backgroundEffects == BackgroundEffectsLastChoice {
			from = base
		}
		item = e.fixups.AddEffects(r.doc, trait, from.Clone(), &choice, foundry.CategoryBackground)

		list.WriteString("<li>" + choice.Label + "</li>")
	}
	list.WriteString("</ul>")

	item.AppendDescription(list.String())
	return item
}

func (e *Engine) parseChoices(
	r *run,
	trait Trait,
	item *foundry.Feature,
	choices []Choice,
	category foundry.Category,
	source string,
) []*foundry.Feature {
	features := make([]*foundry.Feature, 0, len(choices))

	for i := range choices {
		choice := choices[i]
		// a choice named after its own trait would duplicate the trait
		if choice.Label == item.Name {
			continue
		}
		e.logger.Debug("adding choice", zap.String("name", item.Name), zap.String("choice", choice.Label))

		choiceItem := item.Clone()
		choiceTrait := trait.withChoice(choice)

		if choice.Label != "" {
			choiceItem.Name = choiceItem.Name + ": " + choice.Label
		}
		choiceItem.Data.Description = e.composeDescription(r.doc, choiceTrait)
		choiceItem.Data.Source = source

		features = append(features, e.fixups.AddEffects(r.doc, trait, choiceItem, &choice, category))
	}

	return features
}
