// Package foundry holds the target document model the importer produces
package foundry

import (
	"github.com/KirkDiggler/rpg-importer/internal/entities/ddb"
)

// ItemTypeFeat is the item type of every feature record
const ItemTypeFeat = "feat"

// Category is the origin of a feature record
type Category string

// Origin categories
const (
	CategoryRace       Category = ddb.CategoryRace
	CategoryClass      Category = ddb.CategoryClass
	CategoryFeat       Category = ddb.CategoryFeat
	CategoryBackground Category = ddb.CategoryBackground
)

// String returns the category as a string
func (c Category) String() string {
	return string(c)
}

// Feature is a single feature item in the target document model
type Feature struct {
	Name    string      `json:"name" yaml:"name"`
	Type    string      `json:"type" yaml:"type"`
	Data    FeatureData `json:"data" yaml:"data"`
	Flags   Flags       `json:"flags" yaml:"flags"`
	Effects []Effect    `json:"effects,omitempty" yaml:"effects,omitempty"`
}

// FeatureData is the system data of a feature
type FeatureData struct {
	Description Description `json:"description" yaml:"description"`
	Source      string      `json:"source" yaml:"source"`
	Activation  Activation  `json:"activation" yaml:"activation"`
	Damage      Damage      `json:"damage" yaml:"damage"`
}

// Description holds the rendered HTML of a feature
type Description struct {
	Value        string `json:"value" yaml:"value"`
	Chat         string `json:"chat" yaml:"chat"`
	Unidentified string `json:"unidentified" yaml:"unidentified"`
}

// Activation describes how a feature is used
type Activation struct {
	Type      string `json:"type" yaml:"type"`
	Cost      int    `json:"cost" yaml:"cost"`
	Condition string `json:"condition" yaml:"condition"`
}

// Damage holds formula/type pairs
type Damage struct {
	Parts [][2]string `json:"parts" yaml:"parts"`
}

// Flags carry provenance back to the source document
type Flags struct {
	ID           int64          `json:"id" yaml:"id"`
	Type         Category       `json:"type" yaml:"type"`
	EntityTypeID int64          `json:"entityTypeId" yaml:"entityTypeId"`
	DNDBeyond    DNDBeyondFlags `json:"dndbeyond" yaml:"dndbeyond"`
}

// DNDBeyondFlags are the source-specific flags
type DNDBeyondFlags struct {
	RequiredLevel int              `json:"requiredLevel" yaml:"requiredLevel"`
	DisplayOrder  int              `json:"displayOrder" yaml:"displayOrder"`
	Class         string           `json:"class,omitempty" yaml:"class,omitempty"`
	LevelScale    *ddb.LevelScale  `json:"levelScale,omitempty" yaml:"levelScale,omitempty"`
	LevelScales   []ddb.LevelScale `json:"levelScales,omitempty" yaml:"levelScales,omitempty"`
	LimitedUse    []ddb.LimitedUse `json:"limitedUse,omitempty" yaml:"limitedUse,omitempty"`
}

// Effect is a mechanical change applied by a feature
type Effect struct {
	Label   string         `json:"label" yaml:"label"`
	Origin  string         `json:"origin,omitempty" yaml:"origin,omitempty"`
	Changes []EffectChange `json:"changes" yaml:"changes"`
}

// EffectChange modifies one attribute of the actor
type EffectChange struct {
	Key   string `json:"key" yaml:"key"`
	Mode  int    `json:"mode" yaml:"mode"`
	Value string `json:"value" yaml:"value"`
}

// Effect change modes
const (
	EffectModeAdd      = 2
	EffectModeOverride = 5
)

// Category returns the origin category of the feature
func (f *Feature) Category() Category {
	return f.Flags.Type
}

// AppendDescription appends html to the full description value
func (f *Feature) AppendDescription(html string) {
	f.Data.Description.Value += html
}

// ApplyComponent copies level scale and limited use data from a component
func (f *Feature) ApplyComponent(component *ddb.Component) {
	if component == nil {
		return
	}
	f.Flags.DNDBeyond.LevelScale = cloneLevelScale(component.LevelScale)
	if component.Definition != nil {
		f.Flags.DNDBeyond.LevelScales = cloneLevelScales(component.Definition.LevelScales)
		if component.Definition.LimitedUse != nil {
			f.Flags.DNDBeyond.LimitedUse = append([]ddb.LimitedUse(nil), component.Definition.LimitedUse...)
		}
	}
}

// Clone returns a deep copy. No slice or pointer is shared with the receiver.
func (f *Feature) Clone() *Feature {
	if f == nil {
		return nil
	}

	out := *f
	out.Data.Damage.Parts = cloneParts(f.Data.Damage.Parts)
	out.Flags.DNDBeyond.LevelScale = cloneLevelScale(f.Flags.DNDBeyond.LevelScale)
	out.Flags.DNDBeyond.LevelScales = cloneLevelScales(f.Flags.DNDBeyond.LevelScales)
	if f.Flags.DNDBeyond.LimitedUse != nil {
		out.Flags.DNDBeyond.LimitedUse = append([]ddb.LimitedUse(nil), f.Flags.DNDBeyond.LimitedUse...)
	}
	if f.Effects != nil {
		out.Effects = make([]Effect, len(f.Effects))
		for i, effect := range f.Effects {
			out.Effects[i] = effect
			out.Effects[i].Changes = append([]EffectChange(nil), effect.Changes...)
		}
	}

	return &out
}

func cloneParts(parts [][2]string) [][2]string {
	if parts == nil {
		return nil
	}
	return append([][2]string(nil), parts...)
}

func cloneLevelScale(scale *ddb.LevelScale) *ddb.LevelScale {
	if scale == nil {
		return nil
	}
	out := *scale
	if scale.FixedValue != nil {
		v := *scale.FixedValue
		out.FixedValue = &v
	}
	if scale.Dice != nil {
		d := *scale.Dice
		out.Dice = &d
	}
	return &out
}

func cloneLevelScales(scales []ddb.LevelScale) []ddb.LevelScale {
	if scales == nil {
		return nil
	}
	out := make([]ddb.LevelScale, len(scales))
	for i := range scales {
		out[i] = *cloneLevelScale(&scales[i])
	}
	return out
}
