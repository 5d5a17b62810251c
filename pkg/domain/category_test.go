package domain_test

import (
	"leadgen/pkg/domain"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateCustomCategories(t *testing.T) {
	cases := []struct {
		in    string
		valid bool
	}{
		{"plumber,electrician", true},
		{"plumber, electrician", false},
		{"Plumber,electrician", false},
		{"plumber,electrician,", false},
		{"", true},
		{"hair_salon", true},
		{",plumber", false},
		{"plumber,,electrician", false},
		{" plumber", false},
		{"plumber1", false},
	}

	for _, tc := range cases {
		require.Equal(t, tc.valid, domain.ValidateCustomCategories(tc.in), "input %q", tc.in)
	}
}

func TestCategorySet_SeparatorsAreDistinct(t *testing.T) {
	spaced := domain.ParseSpaced("plumber  electrician plumber")
	require.Equal(t, []string{"plumber", "electrician"}, spaced.Items())
	require.Equal(t, "plumber electrician", spaced.Spaced())
	require.Equal(t, "plumber,electrician", spaced.CommaSeparated())

	comma := domain.ParseCommaSeparated(" roofer ,, hvac,roofer")
	require.Equal(t, []string{"roofer", "hvac"}, comma.Items())

	// a comma separated value must not be split on spaces and vice versa
	require.Equal(t, 1, domain.ParseSpaced("a,b").Len())
	require.Equal(t, 1, domain.ParseCommaSeparated("a b").Len())
}

func TestCategorySet_MergeKeepsExistingFirst(t *testing.T) {
	existing := domain.ParseCommaSeparated("dentist,plumber")
	added := domain.NewCategorySet("electrician", "plumber", "roofer", "electrician")

	merged := existing.Merge(added)
	require.Equal(t, "dentist,plumber,electrician,roofer", merged.CommaSeparated())
	// receiver untouched
	require.Equal(t, "dentist,plumber", existing.CommaSeparated())
	require.True(t, merged.Contains("roofer"))
	require.False(t, merged.Contains("bakery"))
}

func TestCategorySet_CopiesAreIndependent(t *testing.T) {
	a := domain.NewCategorySet("plumber")
	b := a
	b.Add("electrician")

	require.Equal(t, []string{"plumber"}, a.Items())
	require.False(t, a.Contains("electrician"))
	require.Equal(t, []string{"plumber", "electrician"}, b.Items())
	require.True(t, b.Contains("electrician"))

	// adding only known tags leaves the shared storage alone
	c := a
	c.Add("plumber", "")
	require.Equal(t, a.Items(), c.Items())
}

func TestCategorySet_Empty(t *testing.T) {
	var s domain.CategorySet
	require.True(t, s.IsEmpty())
	require.Empty(t, s.CommaSeparated())
	require.True(t, domain.ParseCommaSeparated("").IsEmpty())
	require.True(t, domain.ParseSpaced("   ").IsEmpty())
}

func TestInvalidCategoryTokens(t *testing.T) {
	require.Empty(t, domain.InvalidCategoryTokens("Plumber, hair_salon ,"))
	require.Equal(t, []string{"car-wash", "2nd"}, domain.InvalidCategoryTokens("car-wash,ok,2nd"))
}

func TestIsValidEmail(t *testing.T) {
	require.True(t, domain.IsValidEmail("a@b.co"))
	require.False(t, domain.IsValidEmail(""))
	require.False(t, domain.IsValidEmail("   "))
	require.False(t, domain.IsValidEmail("not found"))
	require.False(t, domain.IsValidEmail(" Not Found "))
}
