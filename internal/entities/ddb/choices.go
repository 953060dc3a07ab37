package ddb

// Categories used to key options, choices and merge behavior
const (
	CategoryRace       = "race"
	CategoryClass      = "class"
	CategoryFeat       = "feat"
	CategoryBackground = "background"
)

// Options are the definitions of options the player picked, keyed by category
type Options struct {
	Race       []Option `json:"race,omitempty"`
	Class      []Option `json:"class,omitempty"`
	Feat       []Option `json:"feat,omitempty"`
	Background []Option `json:"background,omitempty"`
}

// Option is a picked option; ComponentID links it to the owning trait
type Option struct {
	ComponentID     int64           `json:"componentId"`
	ComponentTypeID int64           `json:"componentTypeId"`
	Definition      TraitDefinition `json:"definition"`
}

// Choices are the choice selections the player made, keyed by category
type Choices struct {
	Race              []CharacterChoice  `json:"race,omitempty"`
	Class             []CharacterChoice  `json:"class,omitempty"`
	Feat              []CharacterChoice  `json:"feat,omitempty"`
	Background        []CharacterChoice  `json:"background,omitempty"`
	ChoiceDefinitions []ChoiceDefinition `json:"choiceDefinitions,omitempty"`
}

// CharacterChoice is a single selection. OptionValue is nil until the player chooses.
type CharacterChoice struct {
	ID              string         `json:"id"`
	ComponentID     int64          `json:"componentId"`
	ComponentTypeID int64          `json:"componentTypeId"`
	Type            int            `json:"type"`
	Label           string         `json:"label,omitempty"`
	OptionValue     *int64         `json:"optionValue"`
	Options         []ChoiceOption `json:"options,omitempty"`
}

// ChoiceDefinition lists the options available to choices of one component type and
// choice type. Its ID is "<componentTypeId>-<type>".
type ChoiceDefinition struct {
	ID      string         `json:"id"`
	Options []ChoiceOption `json:"options"`
}

// ChoiceOption is one selectable option
type ChoiceOption struct {
	ID          int64  `json:"id"`
	Label       string `json:"label"`
	Description string `json:"description,omitempty"`
}

// ForCategory returns the options recorded for a category
func (o *Options) ForCategory(category string) []Option {
	switch category {
	case CategoryRace:
		return o.Race
	case CategoryClass:
		return o.Class
	case CategoryFeat:
		return o.Feat
	case CategoryBackground:
		return o.Background
	default:
		return nil
	}
}

// ForCategory returns the choices recorded for a category
func (c *Choices) ForCategory(category string) []CharacterChoice {
	switch category {
	case CategoryRace:
		return c.Race
	case CategoryClass:
		return c.Class
	case CategoryFeat:
		return c.Feat
	case CategoryBackground:
		return c.Background
	default:
		return nil
	}
}

// Definition finds a choice definition by id
func (c *Choices) Definition(id string) *ChoiceDefinition {
	for i := range c.ChoiceDefinitions {
		if c.ChoiceDefinitions[i].ID == id {
			return &c.ChoiceDefinitions[i]
		}
	}
	return nil
}
