package settings

import (
	"leadgen/pkg/domain"
	"strings"
	"unicode"
)

// Normalize cleans a comma separated settings value: tokens are trimmed,
// empties and repeats dropped. Fields that do not allow spaces lose all
// whitespace inside each token. An empty result is nil so it persists as NULL.
func Normalize(field domain.SettingsField, raw *string) *string {
	if raw == nil {
		return nil
	}

	tokens := Tokens(field, *raw)
	if len(tokens) == 0 {
		return nil
	}
	out := strings.Join(tokens, ",")

	return &out
}

// Tokens splits a settings value into its normalized tokens, keeping the first
// occurrence of each.
func Tokens(field domain.SettingsField, raw string) []string {
	parts := strings.Split(raw, ",")
	for i, part := range parts {
		token := strings.TrimSpace(part)
		if !field.AllowsSpaces() {
			token = strings.Map(func(r rune) rune {
				if unicode.IsSpace(r) {
					return -1
				}

				return r
			}, token)
		}
		parts[i] = token
	}

	set := domain.NewCategorySet(parts...)
	if set.IsEmpty() {
		return nil
	}

	return set.Items()
}

// NormalizeAll normalizes every field of s.
func NormalizeAll(s domain.SearchSettings) domain.SearchSettings {
	var out domain.SearchSettings
	for _, f := range domain.SettingsFields() {
		v := s.Get(f)
		var p *string
		if v != "" {
			p = &v
		}
		out.Set(f, Normalize(f, p))
	}

	return out
}
