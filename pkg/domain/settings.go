package domain

// SearchSettings is the free-text search configuration of an account. Every
// field is a comma separated list; a nil pointer means the value is absent.
type SearchSettings struct {
	// Keywords may contain spaces inside a token ("hair salon").
	Keywords *string `json:"keywords"`
	// Locations are reference location codes.
	Locations *string `json:"locations"`
	// Categories restrict which categories a search keeps.
	Categories *string `json:"categories"`
	// ExcludedCategories accumulate tags the user never wants to see.
	ExcludedCategories *string `json:"excludedCategories"`
}

// SettingsField names one tracked settings field.
type SettingsField string

const (
	FieldKeywords           SettingsField = "keywords"
	FieldLocations          SettingsField = "locations"
	FieldCategories         SettingsField = "categories"
	FieldExcludedCategories SettingsField = "excludedCategories"
)

// SettingsFields lists all tracked fields in display order.
func SettingsFields() []SettingsField {
	return []SettingsField{FieldKeywords, FieldLocations, FieldCategories, FieldExcludedCategories}
}

// AllowsSpaces reports whether tokens of the field may contain inner spaces.
func (f SettingsField) AllowsSpaces() bool { return f == FieldKeywords }

// Get returns the field value, or "" when absent.
func (s SearchSettings) Get(f SettingsField) string {
	var p *string
	switch f {
	case FieldKeywords:
		p = s.Keywords
	case FieldLocations:
		p = s.Locations
	case FieldCategories:
		p = s.Categories
	case FieldExcludedCategories:
		p = s.ExcludedCategories
	}
	if p == nil {
		return ""
	}

	return *p
}

// Set assigns the field; nil clears it.
func (s *SearchSettings) Set(f SettingsField, v *string) {
	switch f {
	case FieldKeywords:
		s.Keywords = v
	case FieldLocations:
		s.Locations = v
	case FieldCategories:
		s.Categories = v
	case FieldExcludedCategories:
		s.ExcludedCategories = v
	}
}

// Location is an entry of the reference location table.
type Location struct {
	Code        int    `json:"code"`
	Name        string `json:"name"`
	CountryCode string `json:"countryCode"`
	TargetType  string `json:"targetType"`
}

// SearchCombination is one keyword and location pair a search would run.
type SearchCombination struct {
	Keyword      string `json:"keyword"`
	LocationCode int    `json:"locationCode"`
	// Searched is true when the account already ran this combination.
	Searched bool `json:"searched"`
}
