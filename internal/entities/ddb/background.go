package ddb

// BackgroundInfo is the character's background: a published definition or a custom one
type BackgroundInfo struct {
	HasCustomBackground bool                  `json:"hasCustomBackground"`
	Definition          *BackgroundDefinition `json:"definition"`
	CustomBackground    *CustomBackground     `json:"customBackground,omitempty"`
}

// BackgroundDefinition is a published background
type BackgroundDefinition struct {
	ID                 int64       `json:"id"`
	EntityTypeID       int64       `json:"entityTypeId,omitempty"`
	Name               string      `json:"name"`
	Description        string      `json:"description,omitempty"`
	ShortDescription   string      `json:"shortDescription,omitempty"`
	Snippet            string      `json:"snippet,omitempty"`
	FeatureName        string      `json:"featureName,omitempty"`
	FeatureDescription string      `json:"featureDescription,omitempty"`
	Sources            []SourceRef `json:"sources,omitempty"`
}

// CustomBackground is a homebrew background built on the character sheet
type CustomBackground struct {
	ID                 int64                 `json:"id"`
	EntityTypeID       int64                 `json:"entityTypeId,omitempty"`
	Name               string                `json:"name"`
	Description        string                `json:"description,omitempty"`
	FeaturesBackground *BackgroundDefinition `json:"featuresBackground,omitempty"`
}
