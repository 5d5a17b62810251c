package settings_test

import (
	"leadgen/internal/settings"
	"leadgen/pkg/domain"
	"testing"

	"github.com/stretchr/testify/require"
)

func ptr(s string) *string { return &s }

func TestNormalize(t *testing.T) {
	cases := []struct {
		name  string
		field domain.SettingsField
		in    *string
		want  *string
	}{
		{"nil stays nil", domain.FieldKeywords, nil, nil},
		{"empty becomes nil", domain.FieldKeywords, ptr(""), nil},
		{"only separators become nil", domain.FieldCategories, ptr(" , ,, "), nil},
		{"keywords keep inner spaces", domain.FieldKeywords, ptr(" hair salon ,  barber ,"), ptr("hair salon,barber")},
		{"locations strip all whitespace", domain.FieldLocations, ptr("28 40, 1023191 "), ptr("2840,1023191")},
		{"categories strip all whitespace", domain.FieldCategories, ptr("hair _salon,,plumber"), ptr("hair_salon,plumber")},
		{"excluded categories", domain.FieldExcludedCategories, ptr("roofer , plumber"), ptr("roofer,plumber")},
		{"excluded categories drop repeats", domain.FieldExcludedCategories, ptr("plumber,plumber,electrician"), ptr("plumber,electrician")},
		{"repeats compared after whitespace removal", domain.FieldCategories, ptr("hair_salon, hair _salon"), ptr("hair_salon")},
		{"keywords drop repeats", domain.FieldKeywords, ptr("plumber, plumber ,roofer"), ptr("plumber,roofer")},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, settings.Normalize(tc.field, tc.in))
		})
	}
}

func TestNormalizeAll(t *testing.T) {
	got := settings.NormalizeAll(domain.SearchSettings{
		Keywords:           ptr("plumber , hair salon"),
		Locations:          ptr(" "),
		ExcludedCategories: ptr("plumber,plumber, electrician"),
	})
	require.Equal(t, domain.SearchSettings{
		Keywords:           ptr("plumber,hair salon"),
		ExcludedCategories: ptr("plumber,electrician"),
	}, got)
}
