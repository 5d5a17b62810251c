package domain

import (
	"regexp"
	"strings"
)

// customCategoriesPattern matches one or more groups of lowercase letters or
// underscores joined by single commas.
var customCategoriesPattern = regexp.MustCompile(`^[a-z_]+(,[a-z_]+)*$`) //nolint: gochecknoglobals

// categoryTokenPattern matches a single category token typed in settings.
var categoryTokenPattern = regexp.MustCompile(`^[A-Za-z_]+$`) //nolint: gochecknoglobals

// CategorySet is an ordered, deduplicated list of category tags. It is a
// value type: copies never observe each other's additions.
//
// Leads store categories space separated while account exclusion lists and
// dialog inputs are comma separated. Both representations are converted to a
// CategorySet at the boundary and never mixed as raw strings.
type CategorySet struct {
	items []string
	seen  map[string]struct{}
}

// NewCategorySet builds a set from tokens, skipping empty ones and duplicates.
func NewCategorySet(tokens ...string) CategorySet {
	var s CategorySet
	s.Add(tokens...)

	return s
}

// ParseSpaced parses the space separated representation used by leads.
func ParseSpaced(raw string) CategorySet {
	return NewCategorySet(strings.Fields(raw)...)
}

// ParseCommaSeparated parses the comma separated representation used by
// account exclusion lists. Tokens are trimmed and empties dropped.
func ParseCommaSeparated(raw string) CategorySet {
	parts := strings.Split(raw, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	return NewCategorySet(parts...)
}

// Add appends tokens that are not already present, in encounter order.
// The backing storage is copied before the first new tag is written, so
// copies of s taken earlier are not affected.
func (s *CategorySet) Add(tokens ...string) {
	owned := false
	for _, t := range tokens {
		if t == "" || s.Contains(t) {
			continue
		}
		if !owned {
			s.detach(len(tokens))
			owned = true
		}
		s.seen[t] = struct{}{}
		s.items = append(s.items, t)
	}
}

func (s *CategorySet) detach(extra int) {
	items := make([]string, len(s.items), len(s.items)+extra)
	copy(items, s.items)
	seen := make(map[string]struct{}, len(s.items)+extra)
	for k := range s.seen {
		seen[k] = struct{}{}
	}
	s.items, s.seen = items, seen
}

// Merge returns a new set with the receiver's entries first followed by the
// entries of other that were not seen yet.
func (s CategorySet) Merge(other CategorySet) CategorySet {
	out := NewCategorySet(s.items...)
	out.Add(other.items...)

	return out
}

// Contains reports whether the tag is in the set.
func (s CategorySet) Contains(tag string) bool {
	_, ok := s.seen[tag]

	return ok
}

// Len returns the number of tags.
func (s CategorySet) Len() int { return len(s.items) }

// IsEmpty reports whether the set has no tags.
func (s CategorySet) IsEmpty() bool { return len(s.items) == 0 }

// Items returns a copy of the tags in order.
func (s CategorySet) Items() []string {
	out := make([]string, len(s.items))
	copy(out, s.items)

	return out
}

// Spaced serializes the set using the lead representation.
func (s CategorySet) Spaced() string { return strings.Join(s.items, " ") }

// CommaSeparated serializes the set using the account representation.
func (s CategorySet) CommaSeparated() string { return strings.Join(s.items, ",") }

// ValidateCustomCategories checks a comma separated string typed in the
// exclusion dialog. The empty string is valid and contributes nothing.
func ValidateCustomCategories(raw string) bool {
	return raw == "" || customCategoriesPattern.MatchString(raw)
}

// InvalidCategoryTokens returns the tokens of a comma separated settings field
// that contain anything other than letters and underscores.
func InvalidCategoryTokens(raw string) []string {
	var invalid []string
	for _, part := range strings.Split(raw, ",") {
		token := strings.TrimSpace(part)
		if token == "" {
			continue
		}
		if !categoryTokenPattern.MatchString(token) {
			invalid = append(invalid, token)
		}
	}

	return invalid
}
