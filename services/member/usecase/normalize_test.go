package usecase

import (
	"testing"

	"memberhub/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBusinessProfiles(t *testing.T) {
	t.Run("serialized text form", func(t *testing.T) {
		profiles, err := ParseBusinessProfiles(`[{"company_name":"Acme","website":"acme.test"}]`)
		require.NoError(t, err)
		require.Len(t, profiles, 1)
		assert.Equal(t, "Acme", profiles[0].CompanyName)
		assert.Equal(t, "acme.test", profiles[0].Website)
	})

	t.Run("already structured form", func(t *testing.T) {
		profiles, err := ParseBusinessProfiles([]domain.BusinessProfileInput{{CompanyName: "Globex"}})
		require.NoError(t, err)
		require.Len(t, profiles, 1)
		assert.Equal(t, "Globex", profiles[0].CompanyName)
	})

	t.Run("decoded but untyped form", func(t *testing.T) {
		profiles, err := ParseBusinessProfiles([]interface{}{
			map[string]interface{}{"company_name": "Initech"},
		})
		require.NoError(t, err)
		require.Len(t, profiles, 1)
		assert.Equal(t, "Initech", profiles[0].CompanyName)
	})

	t.Run("missing list rejected", func(t *testing.T) {
		var vErr *domain.ValidationError
		_, err := ParseBusinessProfiles(nil)
		require.ErrorAs(t, err, &vErr)
	})

	t.Run("empty list rejected", func(t *testing.T) {
		var vErr *domain.ValidationError
		_, err := ParseBusinessProfiles("[]")
		require.ErrorAs(t, err, &vErr)
	})

	t.Run("malformed text rejected, not a crash", func(t *testing.T) {
		var vErr *domain.ValidationError
		_, err := ParseBusinessProfiles(`{"company_name":"not a list"}`)
		require.ErrorAs(t, err, &vErr)

		_, err = ParseBusinessProfiles("][")
		require.ErrorAs(t, err, &vErr)
	})
}

func TestParseFamilyDetails(t *testing.T) {
	t.Run("absent input yields empty record", func(t *testing.T) {
		family, err := ParseFamilyDetails(nil)
		require.NoError(t, err)
		assert.True(t, family.Empty())

		family, err = ParseFamilyDetails("")
		require.NoError(t, err)
		assert.True(t, family.Empty())
	})

	t.Run("empty object permitted", func(t *testing.T) {
		family, err := ParseFamilyDetails("{}")
		require.NoError(t, err)
		assert.True(t, family.Empty())
	})

	t.Run("serialized text form", func(t *testing.T) {
		family, err := ParseFamilyDetails(`{"father_name":"Joe","number_of_children":2,"children_names":["A","B"]}`)
		require.NoError(t, err)
		assert.Equal(t, "Joe", family.FatherName)
		assert.Equal(t, 2, family.NumberOfChildren)
		assert.Equal(t, []string{"A", "B"}, family.ChildrenNames)
		assert.False(t, family.Empty())
	})

	t.Run("malformed text rejected", func(t *testing.T) {
		var vErr *domain.ValidationError
		_, err := ParseFamilyDetails("}{")
		require.ErrorAs(t, err, &vErr)
	})
}
